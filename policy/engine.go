// Package policy decides which request paths are public.
package policy

import (
	"context"
	"fmt"

	"github.com/open-policy-agent/opa/rego"
)

// Engine is the OPA route-access policy engine.
type Engine struct {
	query rego.PreparedEvalQuery
}

// NewEngine creates a new policy engine with the given policy content.
func NewEngine(ctx context.Context, policyContent string) (*Engine, error) {
	r := rego.New(
		rego.Query("data.access_policy.public"),
		rego.Module("access_policy.rego", policyContent),
	)

	query, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rego: %w", err)
	}

	return &Engine{query: query}, nil
}

// AccessInput describes an inbound request for policy evaluation.
type AccessInput struct {
	Path   string `json:"path"`
	Method string `json:"method"`
}

// IsPublic reports whether the request path is exempt from the API-key
// and rate-limit middleware. Unknown paths default to protected.
func (e *Engine) IsPublic(ctx context.Context, input AccessInput) (bool, error) {
	results, err := e.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return false, fmt.Errorf("failed to evaluate policy: %w", err)
	}

	if len(results) == 0 || len(results[0].Expressions) == 0 {
		return false, nil
	}

	public, ok := results[0].Expressions[0].Value.(bool)
	if !ok {
		return false, nil
	}
	return public, nil
}

// DefaultPolicy is the default route-access policy: everything is
// protected except health and API docs.
const DefaultPolicy = `
package access_policy

import rego.v1

default public := false

public if input.path == "/health"

public if startswith(input.path, "/docs")
`
