package media

import (
	"bytes"
	"image"
	"testing"
)

func TestNormalizeFileType(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"jpg", "jpeg"},
		{"JPG", "jpeg"},
		{"jpeg", "jpeg"},
		{"webp", "png"},
		{"png", "png"},
		{"GIF", "gif"},
	}

	for _, tc := range cases {
		if got := NormalizeFileType(tc.in); got != tc.want {
			t.Fatalf("NormalizeFileType(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFlattenAlphaDropsTransparency(t *testing.T) {
	t.Parallel()

	raw := encodeTestPNG(t, false)
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("decode test image: %v", err)
	}
	if isOpaque(img) {
		t.Fatal("test image should carry an alpha channel")
	}

	flat := FlattenAlpha(img)
	if !isOpaque(flat) {
		t.Fatal("flattened image still carries an alpha channel")
	}

	// Alpha is dropped, not composited: color channels survive unchanged.
	r, g, b, _ := flat.At(1, 1).RGBA()
	if r>>8 != 0xc0 || g>>8 != 0x40 || b>>8 != 0x10 {
		t.Fatalf("unexpected flattened pixel (%d, %d, %d)", r>>8, g>>8, b>>8)
	}

	if _, err := Encode(flat, "jpeg"); err != nil {
		t.Fatalf("flattened image is not re-encodable: %v", err)
	}
}

func TestFlattenAlphaKeepsOpaqueImages(t *testing.T) {
	t.Parallel()

	raw := encodeTestPNG(t, true)
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("decode test image: %v", err)
	}

	if flat := FlattenAlpha(img); flat != img {
		t.Fatal("expected opaque image to be returned unchanged")
	}
}

func TestEncodeRejectsUnknownFormats(t *testing.T) {
	t.Parallel()

	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	if _, err := Encode(img, "tiff"); err == nil {
		t.Fatal("expected encode to reject an unknown format")
	}
}

func TestEncodedSizeMB(t *testing.T) {
	t.Parallel()

	raw := encodeTestPNG(t, true)
	size, err := EncodedSizeMB(raw)
	if err != nil {
		t.Fatalf("encoded size returned error: %v", err)
	}
	if size <= 0 {
		t.Fatalf("expected a positive size, got %f", size)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("decode test image: %v", err)
	}
	encoded, err := Encode(img, "png")
	if err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	if want := float64(len(encoded)) / 1e6; size != want {
		t.Fatalf("size %f does not match re-encoded length %f", size, want)
	}
}

func TestEncodedSizeMBRejectsInvalidBytes(t *testing.T) {
	t.Parallel()

	if _, err := EncodedSizeMB([]byte("not an image")); err == nil {
		t.Fatal("expected a decoding error for invalid bytes")
	}
}
