// Package ai talks to the text-generation backend. The backend is treated
// as an opaque, possibly slow, possibly failing remote call: callers pass
// a context with a deadline and get either usable text or an error.
package ai

import (
	"context"
	"errors"
)

// ErrNoText marks completions where the backend answered but produced
// nothing usable. Callers distinguish this from transport failures.
var ErrNoText = errors.New("no usable text in completion")

// Provider generates a completion for a single prompt.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
