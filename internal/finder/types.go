package finder

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultPattern matches every name.
const DefaultPattern = "*"

// Request describes one search.
type Request struct {
	Dir           string // empty means the working directory
	Pattern       string // glob; empty means DefaultPattern
	Text          string // literal substring; empty disables the content scan
	CaseSensitive bool   // applies to the name pattern only
	IncludeHidden bool
	SkipBinary    bool
}

// Candidate is a file that passed the name filter.
type Candidate struct {
	Name string // display name (NFC)
	Path string // absolute path of the on-disk entry
}

// Result is the outcome of Find.
type Result struct {
	Dir       string
	Matches   []Candidate
	Total     int // candidates produced by the name filter
	Scanned   int // candidates whose content scan was started
	Cancelled bool
}

// Row is one line of the results table.
type Row struct {
	Name   string
	Path   string
	Size   int64
	SizeKB int64
}

// ProgressFunc observes the content scan. index counts files started so far.
type ProgressFunc func(index, total int)

// EffectivePattern returns the glob actually used for r.
func (r Request) EffectivePattern() string {
	if strings.TrimSpace(r.Pattern) == "" {
		return DefaultPattern
	}
	return r.Pattern
}

// ResolveDir turns a user-entered directory into an absolute path. An empty
// value is the working directory and a leading "~" is the home directory.
func ResolveDir(dir string) string {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		dir = "."
	}
	dir = ExpandUserPath(dir)
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return filepath.Clean(dir)
}

// ExpandUserPath replaces a leading "~" or "~/" with the home directory.
func ExpandUserPath(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	if len(path) > 1 && path[1] != '/' && path[1] != '\\' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if len(path) == 1 {
		return home
	}
	return filepath.Join(home, path[2:])
}
