// Package highlight wraps chroma: it picks a lexer for a filename, renders
// one HTML fragment per source line, and emits the theme stylesheet.
package highlight

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

const DefaultTheme = "vs"

type Highlighter struct {
	lexer     chroma.Lexer
	style     *chroma.Style
	formatter *html.Formatter
	fallback  bool
}

// For selects a lexer by filename, then by content analysis. When neither
// matches it falls back to the plaintext lexer, which passes every line
// through as a single token. Unknown theme names fall back as well; For
// never fails.
func For(filename, source, theme string) *Highlighter {
	lexer := lexers.Match(filename)
	if lexer == nil {
		lexer = lexers.Analyse(source)
	}
	fallback := false
	if lexer == nil {
		lexer = lexers.Fallback
		fallback = true
	}

	style := styles.Get(theme)
	if style == nil {
		style = styles.Fallback
	}

	return &Highlighter{
		lexer:     chroma.Coalesce(lexer),
		style:     style,
		formatter: html.New(html.WithClasses(true), html.PreventSurroundingPre(true)),
		fallback:  fallback,
	}
}

// UsingFallback reports whether language detection failed and the plaintext
// lexer is in use.
func (h *Highlighter) UsingFallback() bool { return h.fallback }

// Lines tokenizes source in a single pass and returns one HTML fragment per
// input line. Each fragment keeps its trailing newline inside the final
// token span.
func (h *Highlighter) Lines(source string) ([]string, error) {
	it, err := h.lexer.Tokenise(nil, source)
	if err != nil {
		return nil, fmt.Errorf("tokenise: %w", err)
	}

	tokenLines := chroma.SplitTokensIntoLines(it.Tokens())
	out := make([]string, 0, len(tokenLines))
	for _, line := range tokenLines {
		var b strings.Builder
		if err := h.formatter.Format(&b, h.style, chroma.Literator(line...)); err != nil {
			return nil, fmt.Errorf("format line: %w", err)
		}
		out = append(out, b.String())
	}
	return out, nil
}

// CSS returns the class-based stylesheet for the selected theme.
func (h *Highlighter) CSS() (string, error) {
	var b strings.Builder
	if err := h.formatter.WriteCSS(&b, h.style); err != nil {
		return "", fmt.Errorf("write theme css: %w", err)
	}
	return b.String(), nil
}
