package app

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"unicode"

	"github.com/kk-code-lab/findfiles/internal/finder"
)

var lookPath = exec.LookPath

var errNoOpener = errors.New("no application found to open files (install xdg-open or set an opener)")

// detectOpener resolves the command that hands a file to the desktop's
// default application. A configured override wins over platform detection.
func detectOpener(goos, override string, lookPath func(string) (string, error)) ([]string, error) {
	if args := parseCommand(override); len(args) > 0 {
		resolved, err := lookPath(args[0])
		if err != nil {
			return nil, fmt.Errorf("opener %q not found: %w", args[0], err)
		}
		args[0] = resolved
		return args, nil
	}

	var candidates [][]string
	switch strings.ToLower(goos) {
	case "darwin":
		candidates = [][]string{{"open"}}
	case "windows":
		candidates = [][]string{{"rundll32", "url.dll,FileProtocolHandler"}}
	default:
		candidates = [][]string{
			{"xdg-open"},
			{"gio", "open"},
			{"wslview"},
		}
	}

	for _, candidate := range candidates {
		if resolved, err := lookPath(candidate[0]); err == nil && resolved != "" {
			return append([]string{resolved}, candidate[1:]...), nil
		}
	}
	return nil, errNoOpener
}

// parseCommand splits a command line on whitespace, honouring single and
// double quotes.
func parseCommand(cmd string) []string {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return nil
	}

	var args []string
	var current strings.Builder
	inSingle := false
	inDouble := false

	for _, r := range cmd {
		switch r {
		case '\'':
			if inDouble {
				current.WriteRune(r)
			} else {
				inSingle = !inSingle
			}
			continue
		case '"':
			if inSingle {
				current.WriteRune(r)
			} else {
				inDouble = !inDouble
			}
			continue
		default:
			if !inSingle && !inDouble && unicode.IsSpace(r) {
				if current.Len() > 0 {
					args = append(args, current.String())
					current.Reset()
				}
				continue
			}
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		args = append(args, current.String())
	}

	if len(args) > 0 {
		args[0] = finder.ExpandUserPath(args[0])
	}

	return args
}

// startDetached launches args without waiting for it; the child is reaped in
// the background so it never lingers as a zombie.
func startDetached(args []string) error {
	if len(args) == 0 {
		return errNoOpener
	}
	cmd := exec.Command(args[0], args[1:]...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}
