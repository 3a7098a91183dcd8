package taskfn

import (
	"context"
	"errors"
	"fmt"

	"github.com/taskfn/go-taskfn/core"
)

// latestVersion is sent when the request does not pin a version number.
const latestVersion = -1

type queryEnvelope struct {
	Response        map[string]any `json:"response"`
	NumInputTokens  int64          `json:"num_input_tokens"`
	NumOutputTokens int64          `json:"num_output_tokens"`
	LatencyMS       float64        `json:"latency_ms"`
	ReasoningSteps  []string       `json:"reasoning_steps"`
	Warnings        []string       `json:"warnings"`
}

// Query invokes a hosted function. It validates the input, uploads any
// images that are not already public URLs and unwraps the service
// response into a typed result.
func (c *Client) Query(ctx context.Context, request *core.QueryRequest) (*core.QueryResponse, error) {
	if request == nil {
		return nil, errors.New("taskfn: query request is nil")
	}

	descriptors, err := c.validateQuery(ctx, request.Text, request.Images)
	if err != nil {
		return nil, err
	}

	// Image order is preserved end to end: descriptor i becomes URL i.
	imageURLs := make([]string, 0, len(descriptors))
	for i := range descriptors {
		desc := &descriptors[i]
		if desc.Source == core.SourcePublicURL {
			imageURLs = append(imageURLs, desc.Raw)
			continue
		}

		publicURL, err := c.uploadImage(ctx, desc)
		if err != nil {
			return nil, fmt.Errorf("taskfn: image at index %d: %w", i, err)
		}
		imageURLs = append(imageURLs, publicURL)
	}

	version := latestVersion
	if request.VersionNumber != nil {
		version = *request.VersionNumber
	}

	payload := map[string]any{
		"name":             request.FunctionName,
		"version_number":   version,
		"text":             request.Text,
		"images":           imageURLs,
		"return_reasoning": request.ReturnReasoning,
	}

	var envelope queryEnvelope
	if err := c.postJSON(ctx, "query", payload, &envelope); err != nil {
		return nil, err
	}

	c.emitWarnings(envelope.Warnings)

	return &core.QueryResponse{
		Output:         envelope.Response,
		InputTokens:    envelope.NumInputTokens,
		OutputTokens:   envelope.NumOutputTokens,
		LatencyMS:      envelope.LatencyMS,
		ReasoningSteps: envelope.ReasoningSteps,
	}, nil
}

// QueryOutcome carries the result of an asynchronous query.
type QueryOutcome struct {
	Response *core.QueryResponse
	Err      error
}

// QueryAsync runs Query on its own goroutine and delivers the outcome on
// the returned channel, which is closed after the single send.
func (c *Client) QueryAsync(ctx context.Context, request *core.QueryRequest) <-chan QueryOutcome {
	out := make(chan QueryOutcome, 1)

	go func() {
		defer close(out)
		response, err := c.Query(ctx, request)
		out <- QueryOutcome{Response: response, Err: err}
	}()

	return out
}
