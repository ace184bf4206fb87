package executor

import "context"

// Executor runs external commands, returning their stdout.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
}
