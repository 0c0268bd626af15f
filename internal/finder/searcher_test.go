package finder

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitCompletion(t *testing.T, ch <-chan Completion) Completion {
	t.Helper()
	select {
	case c := <-ch:
		return c
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for search completion")
		return Completion{}
	}
}

func TestSearcherDeliversRows(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "hello world")
	writeFile(t, dir, "b.txt", "goodbye")

	s := NewSearcher()
	defer s.Close()

	done := make(chan Completion, 1)
	token := s.Start(Request{Dir: dir, Pattern: "*.txt", Text: "hello"}, nil, func(c Completion) {
		done <- c
	})

	c := waitCompletion(t, done)
	assert.Equal(t, token, c.Token)
	require.Len(t, c.Rows, 1)
	assert.Equal(t, "a.txt", c.Rows[0].Name)
	assert.Equal(t, int64(1), c.Rows[0].SizeKB)
}

func TestSearcherCancelDeliversPartialResult(t *testing.T) {
	started := make(chan struct{})
	s := NewSearcher()
	s.find = func(ctx context.Context, req Request, progress ProgressFunc) Result {
		progress(0, 10)
		close(started)
		<-ctx.Done()
		return Result{Dir: req.Dir, Total: 10, Scanned: 1, Cancelled: true}
	}
	defer s.Close()

	progressCh := make(chan Progress, 1)
	done := make(chan Completion, 1)
	s.Start(Request{Dir: "x"}, func(p Progress) { progressCh <- p }, func(c Completion) { done <- c })

	<-started
	assert.True(t, s.Running())
	s.Cancel()

	c := waitCompletion(t, done)
	assert.True(t, c.Result.Cancelled)
	assert.Equal(t, 10, (<-progressCh).Total)
	assert.False(t, s.Running())
}

func TestSearcherStartSupersedesPreviousRun(t *testing.T) {
	release := make(chan struct{})
	s := NewSearcher()
	s.find = func(ctx context.Context, req Request, _ ProgressFunc) Result {
		if req.Pattern == "slow" {
			<-ctx.Done()
			<-release
		}
		return Result{Dir: req.Pattern}
	}
	defer s.Close()

	done := make(chan Completion, 2)
	first := s.Start(Request{Pattern: "slow"}, nil, func(c Completion) { done <- c })
	second := s.Start(Request{Pattern: "fast"}, nil, func(c Completion) { done <- c })
	require.NotEqual(t, first, second)

	c := waitCompletion(t, done)
	assert.Equal(t, second, c.Token)
	assert.Equal(t, "fast", c.Result.Dir)

	close(release)
	select {
	case stale := <-done:
		t.Fatalf("superseded run delivered a completion: %+v", stale)
	case <-time.After(50 * time.Millisecond):
	}
}
