package service

import (
	"context"
	"errors"
	"log/slog"

	"phonedrop/internal/convert"
	"phonedrop/internal/fetch"
	"phonedrop/internal/model"
	"phonedrop/internal/notify"
	"phonedrop/internal/storage"
)

// ErrNoItems is returned when a request yields nothing to store; no-op
// uploads are invalid, not silently accepted.
var ErrNoItems = errors.New("no items to process")

// Item-level failure codes reported back to the client.
const (
	CodeFetch      = "FETCH_ERROR"
	CodeConversion = "CONVERSION_ERROR"
	CodeWrite      = "WRITE_ERROR"
)

// Fetcher downloads the content behind a remote URL item.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*fetch.Result, error)
}

// UploadService runs the intake pipeline for one batch of items.
type UploadService interface {
	// Process handles items in order: fetch (remote items), normalize
	// HEIC/HEIF to JPEG, resolve a collision-free name, and write. Item
	// failures are collected per item; one bad item never aborts its
	// siblings. One notification is dispatched per batch with at least one
	// stored file.
	Process(ctx context.Context, items []model.UploadItem) (*model.BatchResult, error)
}

type uploadService struct {
	store       storage.FileStore
	fetcher     Fetcher
	notifier    notify.Notifier
	log         *slog.Logger
	jpegQuality int
	metrics     *Metrics
}

// NewUploadService constructs the upload pipeline. metrics may be nil.
func NewUploadService(store storage.FileStore, fetcher Fetcher, notifier notify.Notifier, log *slog.Logger, jpegQuality int, metrics *Metrics) UploadService {
	return &uploadService{
		store:       store,
		fetcher:     fetcher,
		notifier:    notifier,
		log:         log,
		jpegQuality: jpegQuality,
		metrics:     metrics,
	}
}

func (s *uploadService) Process(ctx context.Context, items []model.UploadItem) (*model.BatchResult, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	res := &model.BatchResult{Saved: []string{}}
	var stored []model.StoredFile
	var aborted error

	for _, it := range items {
		// A disconnected client aborts the remaining items; files already
		// written stay written.
		if err := ctx.Err(); err != nil {
			aborted = err
			break
		}

		sf, fail := s.processItem(ctx, it)
		if fail != nil {
			s.log.WarnContext(ctx, "item failed",
				slog.String("item", fail.Item),
				slog.String("code", fail.Code),
				slog.String("reason", fail.Reason))
			s.metrics.itemFailed(fail.Code)
			res.Failures = append(res.Failures, *fail)
			continue
		}
		s.log.InfoContext(ctx, "file stored",
			slog.String("name", sf.Name),
			slog.Int64("size", sf.Size))
		s.metrics.fileStored()
		stored = append(stored, sf)
		res.Saved = append(res.Saved, sf.Name)
	}

	if len(stored) > 0 {
		s.dispatchNotification(ctx, stored)
	}
	if aborted != nil {
		return res, aborted
	}
	return res, nil
}

// processItem runs one item through fetch, normalization, naming, and the
// store. A non-nil failure describes why the item was skipped.
func (s *uploadService) processItem(ctx context.Context, it model.UploadItem) (model.StoredFile, *model.ItemFailure) {
	label := it.Label()
	content := it.Content
	name := it.Name

	if it.Kind == model.SourceRemote {
		r, err := s.fetcher.Fetch(ctx, it.URL)
		if err != nil {
			return model.StoredFile{}, &model.ItemFailure{Item: label, Code: CodeFetch, Reason: err.Error()}
		}
		content = r.Content
		name = r.Name
	}

	class, mt := convert.Detect(content)
	isImage := class != convert.ClassOther
	converted := false

	if class == convert.ClassHEIC {
		jpg, err := convert.ToJPEG(content, s.jpegQuality)
		if err != nil {
			// Skip and report. Storing the raw bytes under a .jpg name
			// would hand the user a file nothing can open.
			return model.StoredFile{}, &model.ItemFailure{Item: label, Code: CodeConversion, Reason: err.Error()}
		}
		content = jpg
		converted = true
		if name == "" {
			name = storage.SynthesizeName(".jpg")
		} else {
			name = storage.ReplaceExt(name, ".jpg")
		}
		s.metrics.converted()
	} else if name == "" {
		name = storage.SynthesizeName(mt.Extension())
	}

	sf, err := s.store.Save(ctx, name, content)
	if err != nil {
		return model.StoredFile{}, &model.ItemFailure{Item: label, Code: CodeWrite, Reason: err.Error()}
	}
	sf.IsImage = isImage
	sf.Converted = converted
	return sf, nil
}

// dispatchNotification sends the batch summary. The files are already safely
// on disk, so a sink failure is logged and otherwise ignored. The parent
// context may already be cancelled (client gone); the notification still
// goes out.
func (s *uploadService) dispatchNotification(ctx context.Context, stored []model.StoredFile) {
	p := model.NotificationPayload{Count: len(stored)}
	var firstImage string
	for _, sf := range stored {
		p.Names = append(p.Names, sf.Name)
		// A converted JPEG makes the best preview; fall back to the first
		// stored image otherwise.
		if p.PreviewPath == "" && sf.Converted {
			p.PreviewPath = sf.Path
		}
		if firstImage == "" && sf.IsImage {
			firstImage = sf.Path
		}
	}
	if p.PreviewPath == "" {
		p.PreviewPath = firstImage
	}

	nctx := context.WithoutCancel(ctx)
	if err := s.notifier.Notify(nctx, p); err != nil {
		s.log.WarnContext(nctx, "notification dispatch failed", slog.String("error", err.Error()))
	}
}
