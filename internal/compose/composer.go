// Package compose turns persona, conversation history, and incoming text
// into prompts, and interprets what comes back from the generation
// backend. It never sends anything itself; callers decide what a failure
// turns into.
package compose

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/time/rate"

	"froggy/internal/ai"
)

// ErrEmptyReply means the backend was reached but produced nothing worth
// showing. Callers use a different fallback for this than for outright
// failures.
var ErrEmptyReply = errors.New("compose: empty reply")

// ErrRateLimited means the local limiter refused the call before it was
// attempted.
var ErrRateLimited = errors.New("compose: generation rate limit exceeded")

// Composer builds prompts and cleans up completions.
type Composer struct {
	provider ai.Provider
	persona  string
	limiter  *rate.Limiter
}

// New creates a composer. The limiter caps outbound generation calls so a
// busy server cannot stampede the backend; denial counts as a generation
// failure.
func New(provider ai.Provider, persona string, limiter *rate.Limiter) *Composer {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 0)
	}
	return &Composer{provider: provider, persona: persona, limiter: limiter}
}

// Reply generates an in-character answer to incoming text, given the
// rendered conversation history.
func (c *Composer) Reply(ctx context.Context, history, incoming string) (string, error) {
	prompt := fmt.Sprintf("%s\n\n%s\nFriend: %s\nFroggy:", c.persona, history, incoming)
	return c.generate(ctx, prompt)
}

// Proactive generates a standalone follow-up from history alone. Callers
// must only invoke it with non-empty history; there is nothing to follow
// up on otherwise.
func (c *Composer) Proactive(ctx context.Context, history string) (string, error) {
	prompt := fmt.Sprintf("%s\n\nPrevious conversation:\n%s\nGenerate a natural follow-up comment or question to restart the conversation:", c.persona, history)
	return c.generate(ctx, prompt)
}

func (c *Composer) generate(ctx context.Context, prompt string) (string, error) {
	if !c.limiter.Allow() {
		return "", ErrRateLimited
	}

	out, err := c.provider.Generate(ctx, prompt)
	if err != nil {
		if errors.Is(err, ai.ErrNoText) {
			return "", fmt.Errorf("%w: %v", ErrEmptyReply, err)
		}
		return "", fmt.Errorf("compose: %w", err)
	}

	out = ai.CleanReply(out)
	if strings.TrimSpace(out) == "" {
		return "", ErrEmptyReply
	}
	return out, nil
}
