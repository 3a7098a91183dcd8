package core

import "strings"

const (
	// MaxTextLength is the ceiling on text inputs and task descriptions,
	// in characters.
	MaxTextLength = 10000

	// MaxImageUploads is the ceiling on the number of images in one query.
	MaxImageUploads = 10

	// MaxImageSizeMB is the per-image ceiling on the canonical re-encoded
	// size.
	MaxImageSizeMB = 20.0
)

// SupportedImageExtensions lists the image file types the service accepts.
var SupportedImageExtensions = []string{"png", "jpeg", "jpg", "gif", "webp"}

// IsSupportedImageExtension reports whether ext is in the supported image
// format allowlist.
func IsSupportedImageExtension(ext string) bool {
	for _, supported := range SupportedImageExtensions {
		if strings.EqualFold(ext, supported) {
			return true
		}
	}
	return false
}
