package render

import (
	"fmt"
	"html"
	"strings"

	"diffpage/internal/align"
)

type Pane int

const (
	PaneLeft Pane = iota
	PaneRight
)

func (p Pane) String() string {
	if p == PaneLeft {
		return "left"
	}
	return "right"
}

// RenderedPane is one side of the comparison: the code rows and the parallel
// line-number column, both one entry per aligned pair.
type RenderedPane struct {
	Side        Pane
	Code        string
	LineNumbers string
}

// PaneFor renders one side of the aligned sequence. highlighted holds one
// HTML fragment per line of the original file on this side; rows are looked
// up by the pair's line number for this side, not by sequence index, since
// one-sided pairs shift the correspondence. A line number past the end of
// the highlighted stream falls back to the pair's raw text. A pair with
// neither side present violates the aligner's contract and is reported as
// an error.
func PaneFor(side Pane, pairs []align.Pair, highlighted []string) (RenderedPane, error) {
	var code strings.Builder
	var nums strings.Builder

	for i, p := range pairs {
		this, other := p.Left, p.Right
		if side == PaneRight {
			this, other = p.Right, p.Left
		}
		if !this.Present() && !other.Present() {
			return RenderedPane{}, fmt.Errorf("pair %d has no line on either side", i)
		}

		code.WriteString(contentRow(side, this, other, p.Changed, highlighted))
		nums.WriteString(numberRow(side, this, other, p.Changed))
		nums.WriteByte('\n')
	}

	return RenderedPane{Side: side, Code: code.String(), LineNumbers: nums.String()}, nil
}

func contentRow(side Pane, this, other align.LineRef, changed bool, highlighted []string) string {
	row := rawRow(this.Text)
	if this.Present() && this.Number <= len(highlighted) {
		row = highlighted[this.Number-1]
		if !strings.HasSuffix(row, "\n") {
			row += "\n"
		}
	}

	if !changed {
		return row
	}

	var class string
	switch {
	case this.Present() && other.Present():
		class = side.String() + "_diff_change"
	case side == PaneLeft && this.Present():
		class = "left_diff_del"
	case side == PaneLeft:
		class = "left_diff_add"
	case this.Present():
		class = "right_diff_add"
	default:
		class = "right_diff_del"
	}
	return `<span class="` + class + `">` + row + `</span>`
}

func numberRow(side Pane, this, other align.LineRef, changed bool) string {
	if !changed {
		return fmt.Sprintf(`<span class="lineno_q">%d</span>`, this.Number)
	}

	var class string
	switch {
	case this.Present() && other.Present():
		class = "lineno_" + side.String() + "change"
	case side == PaneLeft && this.Present():
		class = "lineno_leftdel"
	case side == PaneLeft:
		class = "lineno_leftadd"
	case this.Present():
		class = "lineno_rightadd"
	default:
		class = "lineno_rightdel"
	}

	if !this.Present() {
		return `<span class="lineno_q ` + class + `">  </span>`
	}
	return fmt.Sprintf(`<span class="lineno_q %s">%d</span>`, class, this.Number)
}

// rawRow escapes text that has no highlighted counterpart: absent-side
// placeholders and lookups past the end of the highlighted stream.
func rawRow(text string) string {
	return html.EscapeString(text) + "\n"
}

// Fragment assembles the pane as a bordered two-column table: line numbers
// beside code, vertically aligned row for row.
func (p RenderedPane) Fragment() string {
	var b strings.Builder
	b.WriteString(`<table class="highlighttable"><tr>`)
	b.WriteString(`<td class="linenos"><div class="linenodiv"><pre>`)
	b.WriteString(p.LineNumbers)
	b.WriteString(`</pre></div></td>`)
	b.WriteString(`<td class="code"><div class="highlight"><pre class="chroma">`)
	b.WriteString(p.Code)
	b.WriteString("</pre></div></td>")
	b.WriteString(`</tr></table>`)
	return b.String()
}
