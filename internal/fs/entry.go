package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Entry is a directory listed by the directory browser.
type Entry struct {
	Name      string
	FullPath  string
	IsSymlink bool
}

// IsHidden reports whether the entry should be treated as hidden.
func (e Entry) IsHidden() bool {
	return IsHidden(e.FullPath, e.Name)
}

// ListSubdirectories returns the directories directly below dir, sorted by
// name without regard to case. Symlinks pointing at directories are included
// and flagged.
func ListSubdirectories(dir string, includeHidden bool) ([]Entry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", dir, err)
	}

	dirs := make([]Entry, 0, len(entries))
	for _, e := range entries {
		rawName := e.Name()
		fullPath := filepath.Join(dir, rawName)

		if ShouldHideFromListing(fullPath, rawName) {
			continue
		}

		isSymlink := e.Type()&os.ModeSymlink != 0
		isDir := e.IsDir()
		if isSymlink {
			if target, err := os.Stat(fullPath); err == nil {
				isDir = target.IsDir()
			}
		}
		if !isDir {
			continue
		}

		entry := Entry{
			Name:      norm.NFC.String(rawName),
			FullPath:  fullPath,
			IsSymlink: isSymlink,
		}
		if !includeHidden && entry.IsHidden() {
			continue
		}
		dirs = append(dirs, entry)
	}

	sort.SliceStable(dirs, func(i, j int) bool {
		return strings.ToLower(dirs[i].Name) < strings.ToLower(dirs[j].Name)
	})
	return dirs, nil
}
