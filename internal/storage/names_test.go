package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "photo.heic", "photo.heic"},
		{"traversal", "../../evil.txt", "evil.txt"},
		{"absolute", "/etc/passwd", "passwd"},
		{"windows path", `C:\Users\me\doc.txt`, "doc.txt"},
		{"nested", "a/b/c.txt", "c.txt"},
		{"dot only", ".", ""},
		{"dotdot only", "..", ""},
		{"empty", "", ""},
		{"control chars", "pho\x00to\n.jpg", "photo.jpg"},
		{"reserved chars", `re<po>rt:v1?.pdf`, "re_po_rt_v1_.pdf"},
		{"trailing dots", "name...", "name"},
		{"spaces kept inside", "my photo.jpg", "my photo.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeName(tt.in))
		})
	}
}

func TestSanitizeNameNeverContainsSeparator(t *testing.T) {
	for _, in := range []string{"../../x", "..\\..\\x", "a/../../b", "////x"} {
		got := SanitizeName(in)
		assert.NotContains(t, got, "/")
		assert.NotContains(t, got, "\\")
		assert.NotEqual(t, "..", got)
	}
}

func TestSynthesizeName(t *testing.T) {
	a := SynthesizeName(".jpg")
	b := SynthesizeName(".jpg")

	assert.True(t, strings.HasSuffix(a, ".jpg"))
	assert.NotEqual(t, a, b, "synthesized names must not repeat")
}

func TestReplaceExt(t *testing.T) {
	assert.Equal(t, "photo.jpg", ReplaceExt("photo.heic", ".jpg"))
	assert.Equal(t, "photo.jpg", ReplaceExt("photo", ".jpg"))
	assert.Equal(t, "a.b.jpg", ReplaceExt("a.b.heif", ".jpg"))
}

func TestNumberedName(t *testing.T) {
	assert.Equal(t, "doc_1.txt", numberedName("doc.txt", 1))
	assert.Equal(t, "archive_3.tar", numberedName("archive.tar", 3))
	assert.Equal(t, "noext_2", numberedName("noext", 2))
}
