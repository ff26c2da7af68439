package model

// SourceKind tells where an upload item's bytes come from.
type SourceKind int

const (
	// SourceInline is a file carried directly in the request body.
	SourceInline SourceKind = iota
	// SourceRemote is a URL the service must fetch itself.
	SourceRemote
)

// UploadItem is one unit of work derived from an upload request: either an
// inline file part or a remote URL reference. Items have no identity beyond
// the file they eventually produce.
type UploadItem struct {
	Kind        SourceKind
	Name        string // client-supplied filename, may be empty, untrusted
	Content     []byte // nil for SourceRemote until fetched
	ContentType string // declared by the client, untrusted
	URL         string // set for SourceRemote only
}

// Label returns a short human-readable identifier for error reporting.
func (it UploadItem) Label() string {
	if it.Kind == SourceRemote {
		return it.URL
	}
	if it.Name != "" {
		return it.Name
	}
	return "(unnamed file)"
}

// StoredFile is the durable artifact produced for one successful item.
type StoredFile struct {
	Name      string `json:"name"`
	Path      string `json:"path"`
	Size      int64  `json:"size"`
	IsImage   bool   `json:"is_image"`
	Converted bool   `json:"converted,omitempty"` // re-encoded from HEIC/HEIF
}

// ItemFailure records why a single item was not stored. Sibling items in the
// same batch are unaffected.
type ItemFailure struct {
	Item   string `json:"item"`
	Code   string `json:"code"`
	Reason string `json:"reason"`
}

// BatchResult summarizes the outcome of one upload request. Partial success
// is an expected outcome, not an error.
type BatchResult struct {
	Saved    []string      `json:"saved"`
	Failures []ItemFailure `json:"failures,omitempty"`
}

// NotificationPayload is the summary handed to the notification sink after a
// batch with at least one stored file.
type NotificationPayload struct {
	Count       int
	Names       []string
	PreviewPath string // first stored image in the batch, empty if none
}
