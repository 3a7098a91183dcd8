package media

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"strings"
)

// NormalizeFileType reconciles extension aliases with the encoders
// available here: "jpg" becomes "jpeg", and "webp" becomes "png" since
// webp can be decoded but not re-encoded. Everything else passes through
// lowercased.
func NormalizeFileType(fileType string) string {
	switch normalized := strings.ToLower(fileType); normalized {
	case "jpg":
		return "jpeg"
	case "webp":
		return "png"
	default:
		return normalized
	}
}

// Normalize prepares an image for re-encoding as fileType: any alpha
// channel is flattened away and the file type alias is reconciled. The
// image is never resized or resampled.
func Normalize(img image.Image, fileType string) (image.Image, string) {
	return FlattenAlpha(img), NormalizeFileType(fileType)
}

// FlattenAlpha drops the alpha channel of img, keeping the color channels
// as-is rather than compositing onto a background. Fully opaque images are
// returned unchanged.
func FlattenAlpha(img image.Image) image.Image {
	if isOpaque(img) {
		return img
	}

	bounds := img.Bounds()
	flat := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pixel := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			pixel.A = 0xff
			flat.SetNRGBA(x, y, pixel)
		}
	}
	return flat
}

// Encode writes img in the named format to memory. The format is
// normalized first, so "jpg" and "webp" inputs encode as jpeg and png.
func Encode(img image.Image, fileType string) ([]byte, error) {
	var buf bytes.Buffer
	var err error

	switch normalized := NormalizeFileType(fileType); normalized {
	case "png":
		err = png.Encode(&buf, img)
	case "jpeg":
		err = jpeg.Encode(&buf, img, nil)
	case "gif":
		err = gif.Encode(&buf, img, nil)
	default:
		return nil, fmt.Errorf("media: no encoder for image type %q", fileType)
	}
	if err != nil {
		return nil, fmt.Errorf("media: encode %s image: %w", fileType, err)
	}

	return buf.Bytes(), nil
}

func isOpaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}

	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if _, _, _, alpha := img.At(x, y).RGBA(); alpha != 0xffff {
				return false
			}
		}
	}
	return true
}
