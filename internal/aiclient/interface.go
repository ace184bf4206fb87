package aiclient

import "context"

// Message roles understood by all backends.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is one entry in an ordered chat prompt.
type Message struct {
	Role    string
	Content string
}

// Client generates text from an ordered list of chat messages using
// the named model. Implementations block until the backend responds
// and return an error on failure or empty generation.
type Client interface {
	Generate(ctx context.Context, messages []Message, model string) (string, error)
}
