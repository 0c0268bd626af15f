package finder

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

const debugLogName = "findfiles-debug.log"

var (
	debugEnabled = os.Getenv("FINDFILES_DEBUG") == "1"
	debugMu      sync.Mutex
	debugPath    = filepath.Join(os.TempDir(), debugLogName)
)

// SetDebug toggles the diagnostic log.
func SetDebug(enabled bool) {
	debugMu.Lock()
	debugEnabled = enabled
	debugMu.Unlock()
}

// DebugLogPath reports where diagnostics are appended.
func DebugLogPath() string {
	debugMu.Lock()
	defer debugMu.Unlock()
	return debugPath
}

// debugLog appends one slog text record to the diagnostic log. The file is
// opened per record so a long-running dialog never holds it.
func debugLog(msg string, args ...any) {
	debugMu.Lock()
	defer debugMu.Unlock()
	if !debugEnabled {
		return
	}

	f, err := os.OpenFile(debugPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer func() {
		_ = f.Close()
	}()

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	logger.Debug(msg, args...)
}
