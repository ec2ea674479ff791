// Package source classifies user-supplied image sources.
//
// A source is either a filesystem path or a URL; either way it must carry a
// recognized image filename extension before the pipeline is allowed to
// fetch it.
package source

import (
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// ValidImageTypes is the allow-list of recognized image file extensions,
// compared case-insensitively with the leading dot.
var ValidImageTypes = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".bmp":  {},
	".tiff": {},
	".webp": {},
}

// IsValidImage reports whether the source names a file with a recognized
// image extension.
//
// Sources with a URL scheme have the extension taken from the URL's path
// component only, so query strings and fragments never affect the result.
// Everything else is treated as a filesystem path.
func IsValidImage(src string) bool {
	_, ok := ValidImageTypes[Ext(src)]
	return ok
}

// Ext returns the lower-cased filename extension of the source, including
// the leading dot, or the empty string if there is none.
func Ext(src string) string {
	if u, err := url.Parse(src); err == nil && u.Scheme != "" {
		return strings.ToLower(path.Ext(u.Path))
	}
	return strings.ToLower(filepath.Ext(src))
}

// IsURL reports whether the source should be fetched over HTTP rather than
// read from the local filesystem.
func IsURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}
