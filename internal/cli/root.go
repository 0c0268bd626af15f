package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/fatih/color"
	apppkg "github.com/kk-code-lab/findfiles/internal/app"
	"github.com/kk-code-lab/findfiles/internal/config"
	"github.com/kk-code-lab/findfiles/internal/finder"
	textutil "github.com/kk-code-lab/findfiles/internal/textutil"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "dev"

type rootOptions struct {
	configFile string
	text       string
	list       bool
}

// NewRootCommand builds the findfiles command.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "findfiles [DIR]",
		Short: "Find files by name and content",
		Long: `findfiles lists the regular files of a directory whose names match a
glob pattern and, optionally, whose contents contain a piece of text.

Without --list it opens an interactive dialog; the selected file is opened
with the desktop's default application. When stdout is not a terminal the
results are printed instead.`,
		Example: `  findfiles
  findfiles ~/notes --name '*.md' --text TODO
  findfiles . -n '*.go' -t context --list`,
		Args:    cobra.MaximumNArgs(1),
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "Path to a YAML config file (default "+config.DefaultConfigPath()+")")
	flags.StringP("name", "n", "", "Glob pattern the file names must match (default \"*\")")
	flags.StringVarP(&opts.text, "text", "t", "", "Text the files must contain")
	flags.Bool("case-sensitive", false, "Match names case-sensitively")
	flags.Bool("hidden", false, "Include hidden files")
	flags.Bool("skip-binary", false, "Skip binary files when searching for text")
	flags.String("opener", "", "Command used to open files (default: platform opener)")
	flags.Bool("debug", false, "Append diagnostics to "+finder.DebugLogPath())
	flags.BoolVarP(&opts.list, "list", "l", false, "Print the matching files instead of opening the dialog")

	return cmd
}

func runRoot(cmd *cobra.Command, args []string, opts *rootOptions) error {
	cfg, err := config.Load(cmd, opts.configFile)
	if err != nil {
		return err
	}
	finder.SetDebug(cfg.Debug)

	dir := ""
	if len(args) > 0 {
		dir = args[0]
	}

	req := finder.Request{
		Dir:           dir,
		Pattern:       cfg.Name,
		Text:          opts.text,
		CaseSensitive: cfg.CaseSensitive,
		IncludeHidden: cfg.Hidden,
		SkipBinary:    cfg.SkipBinary,
	}

	if opts.list || !isTerminal(cmd.OutOrStdout()) {
		return runList(cmd, req)
	}

	app, err := apppkg.NewApplication(apppkg.Options{
		Dir:           dir,
		Pattern:       req.Pattern,
		Text:          req.Text,
		CaseSensitive: req.CaseSensitive,
		IncludeHidden: req.IncludeHidden,
		SkipBinary:    req.SkipBinary,
		Opener:        cfg.Opener,
	})
	if err != nil {
		return fmt.Errorf("error initializing application: %w", err)
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()
	return nil
}

// runList runs one search and prints the table. Ctrl+C stops the scan and
// prints what was found so far.
func runList(cmd *cobra.Command, req finder.Request) error {
	resolved := finder.ResolveDir(req.Dir)
	info, err := os.Stat(resolved)
	if err != nil {
		return fmt.Errorf("cannot search %s: %w", resolved, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("cannot search %s: not a directory", resolved)
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	defer stop()

	result := finder.Find(ctx, req, nil)
	rows := finder.BuildRows(result.Matches)

	printRows(cmd.OutOrStdout(), rows)
	if result.Cancelled {
		warn := color.New(color.FgYellow)
		_, _ = warn.Fprintf(cmd.ErrOrStderr(), "search cancelled after %d of %d files\n", result.Scanned, result.Total)
	}
	return nil
}

// printRows writes name and size columns followed by the status line.
func printRows(w io.Writer, rows []finder.Row) {
	names := make([]string, len(rows))
	nameWidth := 0
	sizeWidth := 0
	for i, row := range rows {
		names[i] = textutil.SanitizeName(row.Name)
		if n := textutil.DisplayWidth(names[i]); n > nameWidth {
			nameWidth = n
		}
		if n := len(finder.FormatSize(row.SizeKB)); n > sizeWidth {
			sizeWidth = n
		}
	}

	size := color.New(color.FgCyan)
	for i, row := range rows {
		_, _ = fmt.Fprint(w, textutil.PadRight(names[i], nameWidth), "  ")
		_, _ = size.Fprintln(w, textutil.PadLeft(finder.FormatSize(row.SizeKB), sizeWidth))
	}

	bold := color.New(color.Bold)
	_, _ = bold.Fprintln(w, finder.StatusText(len(rows)))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
