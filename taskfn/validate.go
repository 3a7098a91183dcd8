package taskfn

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/taskfn/go-taskfn/core"
	"github.com/taskfn/go-taskfn/media"
)

// validateQuery enforces the query input limits and classifies each image,
// returning one descriptor per image in input order. The first violation
// aborts. The text, count and presence checks run before any image
// triggers network or filesystem I/O.
func (c *Client) validateQuery(ctx context.Context, text string, images []string) ([]core.ImageDescriptor, error) {
	if len(text) == 0 && len(images) == 0 {
		return nil, &core.ValidationError{
			Kind:    core.ValidationMissingInput,
			Index:   -1,
			Message: "either text or images or both must be provided as input",
		}
	}

	if utf8.RuneCountInString(text) > core.MaxTextLength {
		return nil, &core.ValidationError{
			Kind:    core.ValidationTextTooLong,
			Index:   -1,
			Message: fmt.Sprintf("text input must be at most %d characters", core.MaxTextLength),
		}
	}

	if len(images) > core.MaxImageUploads {
		return nil, &core.ValidationError{
			Kind:    core.ValidationTooManyImages,
			Index:   -1,
			Message: fmt.Sprintf("at most %d images may be provided", core.MaxImageUploads),
		}
	}

	descriptors := make([]core.ImageDescriptor, 0, len(images))
	for i, raw := range images {
		if strings.TrimSpace(raw) == "" {
			return nil, &core.ValidationError{
				Kind:    core.ValidationInvalidImage,
				Index:   i,
				Message: fmt.Sprintf("image at index %d is empty", i),
			}
		}

		desc, err := c.detector.Classify(ctx, raw)
		if err != nil {
			return nil, &core.ValidationError{
				Kind:    core.ValidationInvalidImage,
				Index:   i,
				Message: fmt.Sprintf("image at index %d: %v", i, err),
				Err:     err,
			}
		}

		if !core.IsSupportedImageExtension(desc.FileType) {
			return nil, &core.ValidationError{
				Kind:  core.ValidationUnsupportedType,
				Index: i,
				Message: fmt.Sprintf("image type %q at index %d is not supported, supported types are %s",
					desc.FileType, i, strings.Join(core.SupportedImageExtensions, ", ")),
			}
		}

		data, err := c.detector.Bytes(ctx, &desc)
		if err != nil {
			return nil, fmt.Errorf("taskfn: image at index %d: %w", i, err)
		}

		size, err := media.EncodedSizeMB(data)
		if err != nil {
			return nil, fmt.Errorf("taskfn: image at index %d: %w", i, err)
		}
		if size > core.MaxImageSizeMB {
			return nil, &core.ValidationError{
				Kind:    core.ValidationOversizeImage,
				Index:   i,
				Message: fmt.Sprintf("image at index %d exceeds the %.0f MB per-image limit", i, core.MaxImageSizeMB),
			}
		}
		desc.SizeMB = size

		descriptors = append(descriptors, desc)
	}

	return descriptors, nil
}
