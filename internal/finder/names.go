package finder

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	fsutil "github.com/kk-code-lab/findfiles/internal/fs"
	"golang.org/x/text/unicode/norm"
)

// NameOptions tunes FilterNames.
type NameOptions struct {
	CaseSensitive bool
	IncludeHidden bool
}

// FilterNames lists the regular files in dir whose names match pattern,
// sorted by name without regard to case like the directory browser. Symlinks, directories and special files never match. A
// missing or unreadable directory, or a malformed pattern, yields nil.
func FilterNames(dir, pattern string, opts NameOptions) []Candidate {
	if strings.TrimSpace(pattern) == "" {
		pattern = DefaultPattern
	}
	if !opts.CaseSensitive {
		pattern = strings.ToLower(pattern)
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		debugLog("name filter: bad pattern", "pattern", pattern, "err", err)
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		debugLog("name filter: cannot read directory", "dir", dir, "err", err)
		return nil
	}

	var matches []Candidate
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}

		rawName := e.Name()
		fullPath := filepath.Join(dir, rawName)
		if fsutil.ShouldHideFromListing(fullPath, rawName) {
			continue
		}
		if !opts.IncludeHidden && fsutil.IsHidden(fullPath, rawName) {
			continue
		}

		name := norm.NFC.String(rawName)
		if !matchName(pattern, name, opts.CaseSensitive) {
			continue
		}
		matches = append(matches, Candidate{Name: name, Path: fullPath})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		a, b := strings.ToLower(matches[i].Name), strings.ToLower(matches[j].Name)
		if a != b {
			return a < b
		}
		return matches[i].Name < matches[j].Name
	})
	return matches
}

// MatchName reports whether name matches the glob pattern.
func MatchName(pattern, name string, caseSensitive bool) bool {
	if !caseSensitive {
		pattern = strings.ToLower(pattern)
	}
	return matchName(pattern, name, caseSensitive)
}

// matchName expects pattern to be lower-cased already when matching
// case-insensitively.
func matchName(pattern, name string, caseSensitive bool) bool {
	if !caseSensitive {
		name = strings.ToLower(name)
	}
	ok, err := filepath.Match(pattern, name)
	return err == nil && ok
}
