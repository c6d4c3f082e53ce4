package ai

import (
	"context"
)

// CompletionRequest is one generation round-trip with the text model.
// Temperature and MaxOutputTokens are fixed by the caller on every call so
// output stays deterministic-ish and bounded in size.
type CompletionRequest struct {
	System          string
	Prompt          string
	Temperature     float32
	MaxOutputTokens int32
}

// Completer is the contract for obtaining raw text from a generative model.
// This interface allows for swapping providers (OpenAI, Gemini, etc.) and
// for stubbing the model in tests.
type Completer interface {
	// Complete sends the prompt and returns the raw model text.
	// Fails with network/provider errors; callers decide how to degrade.
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
