package storage

import (
	"context"

	"phonedrop/internal/model"
)

// Package storage persists received files into a single flat directory.
// The core pipeline depends only on the FileStore interface so it can be
// tested against in-memory fakes.

// FileStore writes final file content under a destination namespace where no
// two stored files ever share a name. Implementations must never overwrite
// an existing file: a name collision is resolved by disambiguating, not by
// replacing.
type FileStore interface {
	// Save persists content under the requested filename, or a
	// disambiguated variant of it if the name is taken. The requested name
	// is untrusted client input; implementations sanitize it so the stored
	// file is always a direct child of the destination directory.
	Save(ctx context.Context, name string, content []byte) (model.StoredFile, error)
}
