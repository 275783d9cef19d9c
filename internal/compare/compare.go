// Package compare runs the whole pipeline for one pair of files: read,
// align, highlight, render, assemble, write.
package compare

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"diffpage/internal/align"
	"diffpage/internal/config"
	"diffpage/internal/highlight"
	"diffpage/internal/render"
)

type Comparison struct {
	fromName string
	toName   string
	fromText string
	toText   string
	opts     config.Options
}

// New reads both input files. A file that cannot be read is fatal to the
// comparison; the error carries the path and the underlying cause.
func New(fromPath, toPath string, opts config.Options) (*Comparison, error) {
	fromText, err := readSource(fromPath)
	if err != nil {
		return nil, err
	}
	toText, err := readSource(toPath)
	if err != nil {
		return nil, err
	}

	c := NewFromText(fromPath, toPath, fromText, toText, opts)
	return c, nil
}

// NewFromText builds a comparison from in-memory sources. The names are
// virtual filenames used for language detection and the page title.
func NewFromText(fromName, toName, fromText, toText string, opts config.Options) *Comparison {
	return &Comparison{
		fromName: fromName,
		toName:   toName,
		fromText: fromText,
		toText:   toText,
		opts:     opts.Normalize(),
	}
}

// Run renders the comparison and writes the self-contained page to outPath.
// The document is assembled fully in memory first: a failing run leaves no
// partial output behind.
func (c *Comparison) Run(outPath string) error {
	doc, err := c.render()
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, doc, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	return nil
}

func (c *Comparison) render() ([]byte, error) {
	pairs := align.Align(splitLines(c.fromText), splitLines(c.toText), align.Options{
		Context:      c.opts.Context,
		ContextLines: c.opts.ContextLines,
		TabWidth:     c.opts.TabWidth,
	})

	if c.opts.Verbose {
		writeTrace(c.opts.TraceWriter, pairs)
	}

	// Highlighting runs over the original, untouched text; the aligner's
	// tab-expanded lines are only used for matching and raw fallbacks.
	leftHL := highlight.For(c.fromName, c.fromText, c.opts.Theme)
	rightHL := highlight.For(c.toName, c.toText, c.opts.Theme)

	leftLines, err := leftHL.Lines(c.fromText)
	if err != nil {
		return nil, fmt.Errorf("highlight %s: %w", c.fromName, err)
	}
	rightLines, err := rightHL.Lines(c.toText)
	if err != nil {
		return nil, fmt.Errorf("highlight %s: %w", c.toName, err)
	}

	left, err := render.PaneFor(render.PaneLeft, pairs, leftLines)
	if err != nil {
		return nil, fmt.Errorf("render left pane: %w", err)
	}
	right, err := render.PaneFor(render.PaneRight, pairs, rightLines)
	if err != nil {
		return nil, fmt.Errorf("render right pane: %w", err)
	}

	themeCSS, err := rightHL.CSS()
	if err != nil {
		return nil, err
	}

	assets, err := render.LoadAssets(c.opts.AssetDir)
	if err != nil {
		return nil, err
	}

	pageWidth := render.PageWidthFull
	if c.opts.FixedWidth {
		pageWidth = render.PageWidthFixed
	}

	return render.Page(render.PageData{
		Title:     c.title(),
		PageWidth: pageWidth,
		ResetCSS:  template.CSS(assets.ResetCSS),
		DiffCSS:   template.CSS(assets.DiffCSS),
		ThemeCSS:  template.CSS(themeCSS),
		DOMJS:     template.JS(assets.DOMJS),
		DiffJS:    template.JS(assets.DiffJS),
		Left:      template.HTML(left.Fragment()),
		Right:     template.HTML(right.Fragment()),
	})
}

func (c *Comparison) title() string {
	if c.opts.Title != "" {
		return c.opts.Title
	}
	return filepath.Base(c.toName)
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// splitLines splits after every newline, keeping the terminators so the
// aligner can strip them itself.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
