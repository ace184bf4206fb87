package watcher

import "context"

// Watcher monitors a directory for dropped transcript files.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one transcript file.
type EventHandler func(ctx context.Context, filePath string) error
