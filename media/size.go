package media

import (
	"bytes"
	"fmt"
	"image"
)

// EncodedSizeMB decodes data and re-encodes it in its detected format to
// measure the canonical delivered size in megabytes. The format sniffed
// from the content drives the re-encode, so an input whose declared type
// disagrees with its bytes is measured as what it actually is. Measuring
// the re-encoded form rather than the raw byte count guards against
// inputs whose on-the-wire length disagrees with their decoded content.
func EncodedSizeMB(data []byte) (float64, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("media: decode image: %w", err)
	}

	encoded, err := Encode(img, format)
	if err != nil {
		return 0, err
	}

	return float64(len(encoded)) / 1e6, nil
}
