package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"diffpage/internal/browser"
	"diffpage/internal/compare"
	"diffpage/internal/config"
)

func main() {
	opts := config.Options{}

	var (
		output   string
		openPage bool
	)

	pflag.StringVarP(&output, "output", "o", "diff.html", "Path of the generated HTML page.")
	pflag.StringVar(&opts.Theme, "theme", "", "Syntax color theme (default \"vs\").")
	pflag.IntVar(&opts.TabWidth, "tab-width", 0, "Tab stop width used when expanding tabs (default 8).")
	pflag.BoolVarP(&opts.Context, "context", "c", false, "Collapse long unchanged runs, keeping a window around each change.")
	pflag.IntVar(&opts.ContextLines, "context-lines", 0, "Unchanged lines kept around each change in context mode (default 5).")
	pflag.BoolVar(&opts.FixedWidth, "fixed-width", false, "Constrain the code panes to the 80-column layout instead of the full page width.")
	pflag.BoolVarP(&opts.Verbose, "verbose", "v", false, "Print the per-line diff classification to stderr.")
	pflag.StringVar(&opts.AssetDir, "assets", "", "Directory holding the css/js assets (default: assets next to the binary).")
	pflag.StringVar(&opts.Title, "name", "", "Page title (default: name of the modified file).")
	pflag.BoolVar(&openPage, "open", false, "Open the generated page in the default browser.")

	pflag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: diffpage [flags] FROM_FILE TO_FILE")
		fmt.Fprintln(os.Stderr, "\nRender a side-by-side, syntax-highlighted HTML diff of two files.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	args := pflag.Args()
	if len(args) != 2 {
		pflag.Usage()
		os.Exit(2)
	}

	fileCfg, _, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	opts = fileCfg.Apply(opts)

	cmp, err := compare.New(args[0], args[1], opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if err := cmp.Run(output); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if openPage {
		if err := browser.Open(context.Background(), output); err != nil {
			fmt.Fprintf(os.Stderr, "failed to open browser: %v\n", err)
			os.Exit(1)
		}
	}
}
