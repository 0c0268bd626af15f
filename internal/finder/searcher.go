package finder

import (
	"context"
	"sync"
)

// Progress is emitted while a Searcher run scans file contents.
type Progress struct {
	Token int
	Index int
	Total int
}

// Completion carries the outcome of a Searcher run, with table rows built.
type Completion struct {
	Token  int
	Result Result
	Rows   []Row
}

// Searcher runs one search at a time off the caller's goroutine.
type Searcher struct {
	mu     sync.Mutex
	token  int
	cancel context.CancelFunc
	wg     sync.WaitGroup
	find   func(context.Context, Request, ProgressFunc) Result
}

// NewSearcher returns an idle searcher.
func NewSearcher() *Searcher {
	return &Searcher{find: Find}
}

// Start supersedes any running search and launches req. Callbacks of a
// superseded run are dropped; a run stopped with Cancel still completes with
// its partial result. The returned token identifies the run in callbacks.
func (s *Searcher) Start(req Request, onProgress func(Progress), onDone func(Completion)) int {
	ctx, cancel := context.WithCancel(context.Background())

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.token++
	token := s.token
	s.cancel = cancel
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()

		progress := func(index, total int) {
			if onProgress != nil && s.isCurrent(token) {
				onProgress(Progress{Token: token, Index: index, Total: total})
			}
		}

		result := s.find(ctx, req, progress)
		rows := BuildRows(result.Matches)

		s.mu.Lock()
		current := s.token == token
		if current {
			s.cancel = nil
		}
		s.mu.Unlock()

		if current && onDone != nil {
			onDone(Completion{Token: token, Result: result, Rows: rows})
		}
	}()

	return token
}

// Cancel stops the running search, if any, at its next checkpoint.
func (s *Searcher) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
}

// Running reports whether a search is in flight.
func (s *Searcher) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}

// Close supersedes any running search and waits for its goroutine to exit.
func (s *Searcher) Close() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.token++
	s.mu.Unlock()
	s.wg.Wait()
}

func (s *Searcher) isCurrent(token int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token == token
}
