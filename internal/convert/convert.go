package convert

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gen2brain/heic"
)

// Package convert classifies uploaded content by magic bytes and normalizes
// HEIC/HEIF images to JPEG. Classification never trusts the filename
// extension or the declared content type; both are client-controlled.

// Class is the coarse content category the pipeline cares about.
type Class int

const (
	// ClassOther is any non-image content; it passes through untouched.
	ClassOther Class = iota
	// ClassImage is image content already in a widely supported format.
	ClassImage
	// ClassHEIC is HEIC/HEIF-family content that must be re-encoded.
	ClassHEIC
)

// heicTypes are the MIME types of the HEIC/HEIF container family.
var heicTypes = []string{
	"image/heic",
	"image/heic-sequence",
	"image/heif",
	"image/heif-sequence",
}

// Detect sniffs content and returns its class together with the detected
// MIME type. The MIME type's Extension is used when a filename has to be
// synthesized.
func Detect(data []byte) (Class, *mimetype.MIME) {
	m := mimetype.Detect(data)
	for _, t := range heicTypes {
		if m.Is(t) {
			return ClassHEIC, m
		}
	}
	if strings.HasPrefix(m.String(), "image/") {
		return ClassImage, m
	}
	return ClassOther, m
}

// ToJPEG decodes HEIC/HEIF content and re-encodes it as JPEG at the given
// quality. Corrupt input yields an error and no output; callers must never
// fall back to storing the raw bytes under a .jpg name.
func ToJPEG(data []byte, quality int) ([]byte, error) {
	img, err := heic.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode heic: %w", err)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
