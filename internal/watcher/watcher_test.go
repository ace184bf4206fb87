package watcher

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/nguyentantai21042004/video-notes/internal/logger"
)

func testLogger() logger.Logger {
	return logger.NewWithWriter("error", &strings.Builder{})
}

func TestIsTranscriptFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"notes.txt", true},
		{"video.srt", true},
		{"captions.VTT", true},
		{"movie.mp4", false},
		{"summary.md", false},
		{"noextension", false},
	}

	for _, tt := range tests {
		if got := isTranscriptFile(tt.path); got != tt.want {
			t.Errorf("isTranscriptFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestNewInvalidDir(t *testing.T) {
	_, err := New("/nonexistent/path/for/watcher", func(context.Context, string) error { return nil }, testLogger(), 1)
	if err == nil {
		t.Fatal("New() should fail for a missing directory")
	}
}

func TestWatcherHandlesNewTranscript(t *testing.T) {
	dir := t.TempDir()

	var mu sync.Mutex
	var handled []string
	handler := func(ctx context.Context, path string) error {
		mu.Lock()
		handled = append(handled, path)
		mu.Unlock()
		return nil
	}

	w, err := New(dir, handler, testLogger(), 1)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = w.Start(ctx)
		close(done)
	}()

	// Give the watcher a moment to come up, then drop a file.
	time.Sleep(100 * time.Millisecond)
	path := filepath.Join(dir, "talk.txt")
	if err := os.WriteFile(path, []byte("transcript"), 0644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		mu.Lock()
		n := len(handled)
		mu.Unlock()
		if n > 0 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("handler was not invoked for the new transcript")
		case <-time.After(50 * time.Millisecond):
		}
	}

	cancel()
	<-done

	mu.Lock()
	defer mu.Unlock()
	if handled[0] != path {
		t.Errorf("handled %q, want %q", handled[0], path)
	}
}
