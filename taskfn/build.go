package taskfn

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/taskfn/go-taskfn/core"
)

type buildEnvelope struct {
	FunctionName  string   `json:"function_name"`
	VersionNumber int      `json:"version_number"`
	Description   string   `json:"description"`
	Warnings      []string `json:"warnings"`
}

// Build creates a specialized function from a natural-language task
// description and returns its name, version number and description. Set
// multimodal when the function should accept image input.
func (c *Client) Build(ctx context.Context, taskDescription string, multimodal bool) (*core.BuildResult, error) {
	if len(taskDescription) == 0 {
		return nil, &core.ValidationError{
			Kind:    core.ValidationMissingInput,
			Index:   -1,
			Message: "a task description must be provided",
		}
	}
	if utf8.RuneCountInString(taskDescription) > core.MaxTextLength {
		return nil, &core.ValidationError{
			Kind:    core.ValidationTextTooLong,
			Index:   -1,
			Message: fmt.Sprintf("task description must be at most %d characters", core.MaxTextLength),
		}
	}

	payload := map[string]any{
		"request":    taskDescription,
		"multimodal": multimodal,
	}

	var envelope buildEnvelope
	if err := c.postJSON(ctx, "build", payload, &envelope); err != nil {
		return nil, err
	}

	c.emitWarnings(envelope.Warnings)

	return &core.BuildResult{
		FunctionName:  envelope.FunctionName,
		VersionNumber: envelope.VersionNumber,
		Description:   envelope.Description,
	}, nil
}

// BuildOutcome carries the result of an asynchronous build.
type BuildOutcome struct {
	Result *core.BuildResult
	Err    error
}

// BuildAsync runs Build on its own goroutine and delivers the outcome on
// the returned channel, which is closed after the single send.
func (c *Client) BuildAsync(ctx context.Context, taskDescription string, multimodal bool) <-chan BuildOutcome {
	out := make(chan BuildOutcome, 1)

	go func() {
		defer close(out)
		result, err := c.Build(ctx, taskDescription, multimodal)
		out <- BuildOutcome{Result: result, Err: err}
	}()

	return out
}
