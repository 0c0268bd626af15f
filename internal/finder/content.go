package finder

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"

	fsutil "github.com/kk-code-lab/findfiles/internal/fs"
)

// ContentOptions tunes FilterContent.
type ContentOptions struct {
	SkipBinary bool
	Progress   ProgressFunc
}

// ScanOutcome is what FilterContent found before finishing or being cancelled.
type ScanOutcome struct {
	Matches   []Candidate
	Scanned   int
	Cancelled bool
}

type openFunc func(path string) (io.ReadCloser, error)

func openFile(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

type contentScanner struct {
	needle     []byte
	skipBinary bool
	progress   ProgressFunc
	open       openFunc
}

// FilterContent keeps the candidates with at least one line containing text.
// ctx is checked before every file and every line; once it is done the scan
// stops and returns what matched so far. Files that cannot be opened or read
// count as non-matching.
func FilterContent(ctx context.Context, candidates []Candidate, text string, opts ContentOptions) ScanOutcome {
	scanner := contentScanner{
		needle:     []byte(text),
		skipBinary: opts.SkipBinary,
		progress:   opts.Progress,
		open:       openFile,
	}
	return scanner.run(ctx, candidates)
}

func (s contentScanner) run(ctx context.Context, candidates []Candidate) ScanOutcome {
	var out ScanOutcome
	total := len(candidates)

	for i, candidate := range candidates {
		s.report(i, total)
		if ctx.Err() != nil {
			out.Cancelled = true
			return out
		}

		out.Scanned++
		matched, err := s.scanFile(ctx, candidate.Path)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				out.Cancelled = true
				return out
			}
			debugLog("content filter: skip", "path", candidate.Path, "err", err)
			continue
		}
		if matched {
			out.Matches = append(out.Matches, candidate)
		}
	}

	s.report(total, total)
	return out
}

func (s contentScanner) report(index, total int) {
	if s.progress != nil {
		s.progress(index, total)
	}
}

func (s contentScanner) scanFile(ctx context.Context, path string) (bool, error) {
	f, err := s.open(path)
	if err != nil {
		return false, err
	}
	defer func() {
		_ = f.Close()
	}()

	lines := fsutil.NewLineReader(f)
	if s.skipBinary && lines.LooksBinary() {
		debugLog("content filter: binary", "path", path)
		return false, nil
	}
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		line, err := lines.Next()
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if bytes.Contains(line, s.needle) {
			return true, nil
		}
	}
}
