package wopr

import "context"

// Gateway is the boundary to the model backend. Implementations issue a
// single non-streaming chat request and either return the assistant text
// or fail; they never retry.
type Gateway interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}
