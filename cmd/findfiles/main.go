package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/findfiles/internal/cli"
)

func main() {
	// UTF-8 fallback keeps non-ASCII file names readable on odd terminals.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	rootCmd := cli.NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
