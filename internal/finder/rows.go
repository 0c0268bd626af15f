package finder

import (
	"fmt"
	"os"
)

// SizeKB rounds a byte count up to whole kibibytes.
func SizeKB(size int64) int64 {
	if size <= 0 {
		return 0
	}
	return (size + 1023) / 1024
}

// FormatSize renders the size column.
func FormatSize(sizeKB int64) string {
	return fmt.Sprintf("%d KB", sizeKB)
}

// StatusText renders the match count shown under the table.
func StatusText(count int) string {
	return fmt.Sprintf("%d file(s) found", count)
}

// BuildRows stats each match for the table. A file that vanished since the
// scan shows a size of zero.
func BuildRows(matches []Candidate) []Row {
	rows := make([]Row, 0, len(matches))
	for _, m := range matches {
		var size int64
		if info, err := os.Stat(m.Path); err == nil {
			size = info.Size()
		} else {
			debugLog("rows: stat failed", "path", m.Path, "err", err)
		}
		rows = append(rows, Row{
			Name:   m.Name,
			Path:   m.Path,
			Size:   size,
			SizeKB: SizeKB(size),
		})
	}
	return rows
}
