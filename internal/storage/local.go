package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"phonedrop/internal/model"
)

// maxNameAttempts bounds the collision-disambiguation loop so a pathological
// directory state cannot spin forever.
const maxNameAttempts = 10000

// LocalStore is a FileStore backed by one flat directory on local disk.
// It is safe for concurrent use: uniqueness is enforced by the filesystem
// itself, not by in-process locking. Save writes content to a temporary
// file in the destination directory and links it into place with
// os.Link, which fails (rather than overwrites) when the target already
// exists; a collision is treated as retryable and resolved by trying the
// next disambiguated name.
type LocalStore struct {
	dir string
}

// NewLocal creates the destination directory if needed and returns a store
// rooted there.
func NewLocal(dir string) (*LocalStore, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve save dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create save dir: %w", err)
	}
	return &LocalStore{dir: abs}, nil
}

// Dir returns the absolute destination directory.
func (s *LocalStore) Dir() string {
	return s.dir
}

// Save implements FileStore. The requested name is sanitized first; a name
// that sanitizes to nothing gets a synthesized timestamp name.
func (s *LocalStore) Save(ctx context.Context, name string, content []byte) (model.StoredFile, error) {
	name = SanitizeName(name)
	if name == "" {
		name = SynthesizeName("")
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return model.StoredFile{}, fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	// The temp file is always removed: on success the content lives on
	// under its final link, on failure nothing is left behind.
	defer os.Remove(tmpName)

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return model.StoredFile{}, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return model.StoredFile{}, fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return model.StoredFile{}, fmt.Errorf("chmod temp file: %w", err)
	}

	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return model.StoredFile{}, err
		}

		candidate := name
		if attempt > 0 {
			candidate = numberedName(name, attempt)
		}
		final := filepath.Join(s.dir, candidate)

		err := os.Link(tmpName, final)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return model.StoredFile{}, fmt.Errorf("store %s: %w", candidate, err)
		}
		return model.StoredFile{
			Name: candidate,
			Path: final,
			Size: int64(len(content)),
		}, nil
	}

	return model.StoredFile{}, fmt.Errorf("store %s: could not find a free name after %d attempts", name, maxNameAttempts)
}
