package finder

import "context"

// Find runs the name filter and, when req.Text is set, the content filter.
// It never fails: every problem degrades to fewer matches.
func Find(ctx context.Context, req Request, progress ProgressFunc) Result {
	dir := ResolveDir(req.Dir)
	candidates := FilterNames(dir, req.EffectivePattern(), NameOptions{
		CaseSensitive: req.CaseSensitive,
		IncludeHidden: req.IncludeHidden,
	})

	result := Result{
		Dir:   dir,
		Total: len(candidates),
	}
	if req.Text == "" {
		result.Matches = candidates
		return result
	}

	outcome := FilterContent(ctx, candidates, req.Text, ContentOptions{
		SkipBinary: req.SkipBinary,
		Progress:   progress,
	})
	result.Matches = outcome.Matches
	result.Scanned = outcome.Scanned
	result.Cancelled = outcome.Cancelled

	debugLog("find",
		"dir", dir,
		"pattern", req.EffectivePattern(),
		"text", req.Text,
		"candidates", result.Total,
		"matches", len(result.Matches),
		"cancelled", result.Cancelled)
	return result
}
