package taskfn

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/taskfn/go-taskfn/core"
	"github.com/taskfn/go-taskfn/media"
)

type uploadLinkEnvelope struct {
	URL string `json:"url"`
}

// uploadImage transfers one non-URL image to a presigned destination
// issued by the service and returns its public URL. Bytes cached on the
// descriptor during validation are reused rather than refetched.
//
// The transfer contract is a direct PUT of the encoded bytes; once it
// succeeds, the presigned URL doubles as the public address of the object.
func (c *Client) uploadImage(ctx context.Context, desc *core.ImageDescriptor) (string, error) {
	data, err := c.detector.Bytes(ctx, desc)
	if err != nil {
		return "", err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("taskfn: decode image: %w", err)
	}

	flat, fileType := media.Normalize(img, desc.FileType)
	encoded, err := media.Encode(flat, fileType)
	if err != nil {
		return "", err
	}

	payload := map[string]any{
		"file_type": fileType,
		"key":       uuid.NewString(),
	}

	var link uploadLinkEnvelope
	if err := c.postJSON(ctx, "upload_link", payload, &link); err != nil {
		return "", err
	}
	if strings.TrimSpace(link.URL) == "" {
		return "", errors.New("taskfn: upload link response did not include a destination URL")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, link.URL, bytes.NewReader(encoded))
	if err != nil {
		return "", fmt.Errorf("taskfn: build upload request: %w", err)
	}
	req.Header.Set("Content-Type", "image/"+fileType)

	c.logger.Debug().Str("file_type", fileType).Int("bytes", len(encoded)).Msg("uploading image")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("taskfn: upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		return "", &RequestError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return link.URL, nil
}
