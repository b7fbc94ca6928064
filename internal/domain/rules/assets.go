// Package rules holds the pure shaping rules of the public contract:
// sharded upload URLs, per-field image defaults, and path normalization.
package rules

import (
	"fmt"
	"strings"

	"github.com/dn1t/dutlife-api/internal/domain/model"
)

// DefaultUserThumbPath is served when a user has no profile image. Cover
// images and project thumbnails have no default; they are simply absent.
const DefaultUserThumbPath = "/img/DefaultCardUserThmb.svg"

const uploadShardLen = 4

// UploadPath builds the sharded path for an uploaded file: the first two and
// next two characters of the filename become nested directory segments.
// Filenames shorter than four characters cannot be sharded.
func UploadPath(filename, imageType string) (string, bool) {
	if len(filename) < uploadShardLen || imageType == "" {
		return "", false
	}
	return fmt.Sprintf("/uploads/%s/%s/%s.%s", filename[0:2], filename[2:4], filename, imageType), true
}

// ProfileImageURL resolves a user thumbnail to an absolute URL, falling back
// to the default avatar.
func ProfileImageURL(origin string, ref *model.ImageRef) string {
	if ref != nil {
		if path, ok := UploadPath(ref.Filename, ref.ImageType); ok {
			return origin + path
		}
	}
	return origin + DefaultUserThumbPath
}

// CoverImageURL resolves a cover image to an absolute URL, or returns empty
// when the user has none.
func CoverImageURL(origin string, ref *model.ImageRef) string {
	if ref == nil {
		return ""
	}
	path, ok := UploadPath(ref.Filename, ref.ImageType)
	if !ok {
		return ""
	}
	return origin + path
}

// AbsoluteURL normalizes an upstream asset path: already-absolute URLs pass
// through, everything else is rooted at origin with exactly one slash.
func AbsoluteURL(origin, path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return origin + path
}
