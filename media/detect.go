package media

import (
	"bytes"
	"context"
	"errors"
	"image"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/taskfn/go-taskfn/core"
)

const defaultProbeTimeout = 30 * time.Second

// ErrUnknownImageSource reports an input that is neither a base64 data
// URI, a publicly fetchable image URL nor a local image file.
var ErrUnknownImageSource = errors.New("media: images must be local paths, public URLs or base64 encoded strings")

// Detector classifies raw image inputs into their source kinds. The
// public-URL check probes the network and the local-path check reads the
// filesystem, so classification is not pure for those two kinds.
type Detector struct {
	HTTPClient *http.Client
}

// NewDetector creates a detector using the given HTTP client for URL
// probes and fetches.
func NewDetector(client *http.Client) *Detector {
	if client == nil {
		client = &http.Client{Timeout: defaultProbeTimeout}
	}
	return &Detector{HTTPClient: client}
}

// IsLocalImage reports whether path names an existing file whose content
// decodes as a raster image.
func (d *Detector) IsLocalImage(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}

	_, _, err = image.DecodeConfig(bytes.NewReader(data))
	return err == nil
}

// ProbeImageURL checks that value parses as a URL with a scheme and that a
// live HEAD probe answers 200 with an image content type. On success it
// returns the content-type subtype.
func (d *Detector) ProbeImageURL(ctx context.Context, value string) (string, bool) {
	parsed, err := url.Parse(value)
	if err != nil || parsed.Scheme == "" {
		return "", false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, value, nil)
	if err != nil {
		return "", false
	}

	resp, err := d.HTTPClient.Do(req)
	if err != nil {
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", false
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image") {
		return "", false
	}

	_, subtype, ok := strings.Cut(contentType, "/")
	if !ok {
		return "", false
	}
	subtype, _, _ = strings.Cut(subtype, ";")

	return strings.TrimSpace(subtype), true
}

// Classify determines the source kind and file type of one raw image
// input: a base64 data URI, a publicly fetchable image URL or a local
// filesystem path. Inputs matching none of the three kinds are invalid.
func (d *Detector) Classify(ctx context.Context, value string) (core.ImageDescriptor, error) {
	if uri, ok := ParseDataURI(value); ok {
		subtype := uri.Subtype()
		if subtype == "" {
			return core.ImageDescriptor{}, errors.New("media: image data URI carries no media subtype")
		}
		return core.ImageDescriptor{
			Raw:      value,
			Source:   core.SourceBase64,
			FileType: strings.ToLower(subtype),
		}, nil
	}

	if subtype, ok := d.ProbeImageURL(ctx, value); ok {
		if subtype == "" {
			return core.ImageDescriptor{}, errors.New("media: image URL reports no content-type subtype")
		}
		return core.ImageDescriptor{
			Raw:      value,
			Source:   core.SourcePublicURL,
			FileType: strings.ToLower(subtype),
		}, nil
	}

	if d.IsLocalImage(value) {
		ext := strings.TrimPrefix(filepath.Ext(value), ".")
		return core.ImageDescriptor{
			Raw:      value,
			Source:   core.SourceLocalPath,
			FileType: strings.ToLower(ext),
		}, nil
	}

	return core.ImageDescriptor{}, ErrUnknownImageSource
}
