// Package mimex infers the MIME type sent with an uploaded image.
//
// The default strategy is a filename heuristic: a trailing ".<ext>" maps to
// "image/<ext>" verbatim and anything else maps to the generic "image" type.
// The file content is never inspected unless content detection is requested.
package mimex

import (
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Detection modes.
const (
	ModeExtension = "extension"
	ModeContent   = "content"
)

// GenericImage is sent when the filename carries no recognizable extension.
const GenericImage = "image"

var extPattern = regexp.MustCompile(`\.(\w+)$`)

// FromFilename applies the suffix heuristic. The extension is used as-is,
// so "a.JPG" yields "image/JPG".
func FromFilename(name string) string {
	m := extPattern.FindStringSubmatch(name)
	if m == nil {
		return GenericImage
	}
	return "image/" + m[1]
}

// Detect returns the MIME type for the local file at path uploaded as name.
// In ModeContent the file is sniffed and the result is used when it is an
// image type; otherwise, and on any read error, the heuristic applies.
func Detect(path, name, mode string) string {
	if mode != ModeContent {
		return FromFilename(name)
	}
	m, err := mimetype.DetectFile(path)
	if err != nil || !strings.HasPrefix(m.String(), "image/") {
		return FromFilename(name)
	}
	return m.String()
}
