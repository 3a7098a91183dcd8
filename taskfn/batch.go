package taskfn

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/taskfn/go-taskfn/core"
)

// BatchQuery issues one query per input against the same function. All
// queries run concurrently and the responses come back in input order, so
// total wall-clock time approximates the slowest single item.
//
// A failure in any one query fails the whole batch; there is no partial
// result and no per-item error isolation.
func (c *Client) BatchQuery(ctx context.Context, fnName string, inputs []core.BatchInput) ([]*core.QueryResponse, error) {
	names := make([]string, len(inputs))
	for i := range names {
		names[i] = fnName
	}
	return c.batchQuery(ctx, names, inputs)
}

// BatchQueryEach pairs each input with its own function name. The two
// slices must have the same length.
func (c *Client) BatchQueryEach(ctx context.Context, fnNames []string, inputs []core.BatchInput) ([]*core.QueryResponse, error) {
	if len(fnNames) != len(inputs) {
		return nil, &core.ValidationError{
			Kind:    core.ValidationNameCountMismatch,
			Index:   -1,
			Message: fmt.Sprintf("got %d function names for %d inputs", len(fnNames), len(inputs)),
		}
	}
	return c.batchQuery(ctx, fnNames, inputs)
}

func (c *Client) batchQuery(ctx context.Context, fnNames []string, inputs []core.BatchInput) ([]*core.QueryResponse, error) {
	responses := make([]*core.QueryResponse, len(inputs))

	group, groupCtx := errgroup.WithContext(ctx)
	for i := range inputs {
		i := i
		group.Go(func() error {
			response, err := c.Query(groupCtx, &core.QueryRequest{
				FunctionName:    fnNames[i],
				VersionNumber:   inputs[i].VersionNumber,
				Text:            inputs[i].Text,
				Images:          inputs[i].Images,
				ReturnReasoning: inputs[i].ReturnReasoning,
			})
			if err != nil {
				return err
			}
			responses[i] = response
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return responses, nil
}
