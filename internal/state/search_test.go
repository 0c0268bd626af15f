package state

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kk-code-lab/findfiles/internal/finder"
)

func TestSearchRunnerDispatchesCompletion(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hello world"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.txt"), []byte("goodbye"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	searcher := finder.NewSearcher()
	defer searcher.Close()

	actions := make(chan Action, 16)
	runner := NewSearchRunner(searcher, func(a Action) { actions <- a })
	token := runner.Start(finder.Request{Dir: dir, Pattern: "*.txt", Text: "hello"})

	deadline := time.After(2 * time.Second)
	sawProgress := false
	for {
		select {
		case action := <-actions:
			switch a := action.(type) {
			case SearchProgressAction:
				sawProgress = true
				if a.Token != token || a.Total != 2 {
					t.Fatalf("unexpected progress %+v", a)
				}
			case SearchCompleteAction:
				if a.Token != token {
					t.Fatalf("unexpected token %d", a.Token)
				}
				if len(a.Rows) != 1 || a.Rows[0].Name != "a.txt" {
					t.Fatalf("unexpected rows %+v", a.Rows)
				}
				if !sawProgress {
					t.Fatalf("expected progress before completion")
				}
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for completion")
		}
	}
}

func TestSearchRunnerThrottlesProgress(t *testing.T) {
	now := time.Unix(0, 0)
	runner := &searcherRunner{clock: func() time.Time { return now }}

	if !runner.shouldEmit(0, 100) {
		t.Fatalf("first report must pass")
	}
	if runner.shouldEmit(1, 100) {
		t.Fatalf("report inside the interval should be dropped")
	}
	now = now.Add(progressDispatchInterval)
	if !runner.shouldEmit(2, 100) {
		t.Fatalf("report after the interval should pass")
	}
	if !runner.shouldEmit(100, 100) {
		t.Fatalf("final report must pass")
	}
}
