package media

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/taskfn/go-taskfn/core"
)

// Bytes materializes the raw content of a classified image: base64 data
// URIs are decoded, URLs are fetched with a full GET and local paths are
// read from disk. The result is cached on the descriptor so a later upload
// of the same image does not repeat the fetch.
func (d *Detector) Bytes(ctx context.Context, desc *core.ImageDescriptor) ([]byte, error) {
	if len(desc.Data) > 0 {
		return desc.Data, nil
	}

	var data []byte
	switch desc.Source {
	case core.SourceBase64:
		uri, ok := ParseDataURI(desc.Raw)
		if !ok {
			return nil, errors.New("media: malformed image data URI")
		}
		decoded, err := decodeBase64(uri.Payload)
		if err != nil {
			return nil, fmt.Errorf("media: decode image payload: %w", err)
		}
		data = decoded

	case core.SourcePublicURL:
		fetched, err := d.fetch(ctx, desc.Raw)
		if err != nil {
			return nil, err
		}
		data = fetched

	case core.SourceLocalPath:
		read, err := os.ReadFile(desc.Raw)
		if err != nil {
			return nil, fmt.Errorf("media: read image file: %w", err)
		}
		data = read

	default:
		return nil, fmt.Errorf("media: unknown image source %v", desc.Source)
	}

	desc.Data = data
	return data, nil
}

func (d *Detector) fetch(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("media: build image request: %w", err)
	}

	resp, err := d.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("media: fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("media: fetch image: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("media: read image body: %w", err)
	}

	return data, nil
}

func decodeBase64(payload string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(payload)
	if err == nil {
		return data, nil
	}

	data, urlErr := base64.URLEncoding.DecodeString(payload)
	if urlErr != nil {
		return nil, err
	}
	return data, nil
}
