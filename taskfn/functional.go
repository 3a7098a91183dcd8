package taskfn

import (
	"context"

	"github.com/taskfn/go-taskfn/core"
)

// Build constructs a client from opts and builds a function in one call.
//
// Preferred usage is to create a Client once and reuse it; these package
// functions exist for one-off calls.
func Build(ctx context.Context, taskDescription string, multimodal bool, opts ...Option) (*core.BuildResult, error) {
	client, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return client.Build(ctx, taskDescription, multimodal)
}

// Query constructs a client from opts and queries a function in one call.
//
// Preferred usage is to create a Client once and reuse it; these package
// functions exist for one-off calls.
func Query(ctx context.Context, request *core.QueryRequest, opts ...Option) (*core.QueryResponse, error) {
	client, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return client.Query(ctx, request)
}

// BatchQuery constructs a client from opts and runs a uniform-name batch
// in one call.
//
// Preferred usage is to create a Client once and reuse it; these package
// functions exist for one-off calls.
func BatchQuery(ctx context.Context, fnName string, inputs []core.BatchInput, opts ...Option) ([]*core.QueryResponse, error) {
	client, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return client.BatchQuery(ctx, fnName, inputs)
}
