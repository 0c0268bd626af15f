package state

import (
	"sync"
	"time"

	"github.com/kk-code-lab/findfiles/internal/finder"
)

const progressDispatchInterval = 50 * time.Millisecond

// SearchRunner launches and cancels searches on behalf of the reducer.
type SearchRunner interface {
	Start(req finder.Request) int
	Cancel()
}

// NewSearchRunner adapts a finder.Searcher so that its callbacks arrive as
// actions. Progress is throttled; the first and last report always pass.
func NewSearchRunner(searcher *finder.Searcher, dispatch func(Action)) SearchRunner {
	return &searcherRunner{searcher: searcher, dispatch: dispatch, clock: time.Now}
}

type searcherRunner struct {
	searcher *finder.Searcher
	dispatch func(Action)
	clock    func() time.Time

	mu       sync.Mutex
	lastEmit time.Time
}

func (r *searcherRunner) Start(req finder.Request) int {
	r.mu.Lock()
	r.lastEmit = time.Time{}
	r.mu.Unlock()

	return r.searcher.Start(req, r.onProgress, func(c finder.Completion) {
		r.dispatch(SearchCompleteAction{Token: c.Token, Result: c.Result, Rows: c.Rows})
	})
}

func (r *searcherRunner) Cancel() {
	r.searcher.Cancel()
}

func (r *searcherRunner) onProgress(p finder.Progress) {
	if !r.shouldEmit(p.Index, p.Total) {
		return
	}
	r.dispatch(SearchProgressAction{Token: p.Token, Index: p.Index, Total: p.Total})
}

func (r *searcherRunner) shouldEmit(index, total int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.clock()
	if index == 0 || index >= total || now.Sub(r.lastEmit) >= progressDispatchInterval {
		r.lastEmit = now
		return true
	}
	return false
}
