package storage

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// timestampLayout matches the prefix format used for synthesized filenames.
const timestampLayout = "20060102-150405"

// SanitizeName reduces an untrusted client-supplied filename to a bare name
// with no directory components, so joining it to the destination directory
// can never escape it. Returns "" when nothing usable remains; callers then
// synthesize a name instead.
func SanitizeName(name string) string {
	// Windows clients may send backslash-separated paths.
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(path.Clean("/" + name))
	if name == "/" || name == "." {
		return ""
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r < 0x20 || r == 0x7f:
			// drop control characters
		case strings.ContainsRune(`<>:"|?*`, r):
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}
	// A name of only dots or spaces is not a usable filename.
	cleaned := strings.Trim(b.String(), ". ")
	return cleaned
}

// SynthesizeName builds a filename for an item that arrived without one:
// a timestamp plus a short random suffix and the extension matching the
// detected content type.
func SynthesizeName(ext string) string {
	ts := time.Now().Format(timestampLayout)
	suffix := uuid.NewString()[:8]
	return ts + "_" + suffix + ext
}

// ReplaceExt swaps the extension of name for ext (which includes the dot).
// A name without an extension just gains one.
func ReplaceExt(name, ext string) string {
	old := path.Ext(name)
	return strings.TrimSuffix(name, old) + ext
}

// numberedName inserts a numeric disambiguator before the extension:
// "photo.jpg" -> "photo_2.jpg".
func numberedName(name string, n int) string {
	ext := path.Ext(name)
	base := strings.TrimSuffix(name, ext)
	return fmt.Sprintf("%s_%d%s", base, n, ext)
}
