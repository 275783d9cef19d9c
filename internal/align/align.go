// Package align turns two line sequences into an ordered sequence of
// side-by-side pairs, each classified as unchanged, modified, inserted or
// deleted.
package align

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

const (
	DefaultTabWidth     = 8
	DefaultContextLines = 5
)

// Within a replace run, two lines pair up as a modification when their
// character-level similarity reaches this cutoff.
const similarityCutoff = 0.75

// LineRef is one side of a pair. Number is 1-based; zero means the line does
// not exist on this side.
type LineRef struct {
	Number int
	Text   string
}

func (r LineRef) Present() bool { return r.Number > 0 }

// Pair is one row of the side-by-side view. When Changed is false both sides
// are present and textually identical after tab expansion.
type Pair struct {
	Left    LineRef
	Right   LineRef
	Changed bool
}

type Options struct {
	// Context collapses long unchanged runs, keeping ContextLines lines
	// around each change. Off by default: every line appears in the output.
	Context      bool
	ContextLines int
	TabWidth     int
	// LineJunk filters lines ignored by the line-level matcher. Defaults to
	// IsLineJunk when nil.
	LineJunk func(string) bool
}

// IsLineJunk reports whether a line is blank or contains a lone '#', the
// lines excluded from correspondence matching.
func IsLineJunk(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || trimmed == "#"
}

func isCharJunk(s string) bool { return s == " " || s == "\t" }

// Align pairs every line of fromLines with every line of toLines in order.
// Lines are tab-expanded before matching; trailing newlines are stripped.
// Align never fails: unmatched lines become one-sided pairs.
func Align(fromLines, toLines []string, opts Options) []Pair {
	if opts.TabWidth <= 0 {
		opts.TabWidth = DefaultTabWidth
	}
	if opts.ContextLines <= 0 {
		opts.ContextLines = DefaultContextLines
	}
	junk := opts.LineJunk
	if junk == nil {
		junk = IsLineJunk
	}

	al := &aligner{
		a: expandAll(fromLines, opts.TabWidth),
		b: expandAll(toLines, opts.TabWidth),
	}

	m := difflib.NewMatcherWithJunk(al.a, al.b, true, junk)
	var pairs []Pair
	for _, op := range m.GetOpCodes() {
		switch op.Tag {
		case 'e':
			for k := 0; k < op.I2-op.I1; k++ {
				pairs = append(pairs, al.pair(op.I1+k, op.J1+k, false))
			}
		case 'd':
			pairs = append(pairs, al.deleted(op.I1, op.I2)...)
		case 'i':
			pairs = append(pairs, al.inserted(op.J1, op.J2)...)
		case 'r':
			pairs = append(pairs, al.replaced(op.I1, op.I2, op.J1, op.J2)...)
		}
	}

	if opts.Context {
		pairs = collapseContext(pairs, opts.ContextLines)
	}
	return pairs
}

type aligner struct {
	a []string
	b []string
}

func (al *aligner) pair(i, j int, changed bool) Pair {
	return Pair{
		Left:    LineRef{Number: i + 1, Text: al.a[i]},
		Right:   LineRef{Number: j + 1, Text: al.b[j]},
		Changed: changed,
	}
}

func (al *aligner) deleted(alo, ahi int) []Pair {
	pairs := make([]Pair, 0, ahi-alo)
	for i := alo; i < ahi; i++ {
		pairs = append(pairs, Pair{
			Left:    LineRef{Number: i + 1, Text: al.a[i]},
			Changed: true,
		})
	}
	return pairs
}

func (al *aligner) inserted(blo, bhi int) []Pair {
	pairs := make([]Pair, 0, bhi-blo)
	for j := blo; j < bhi; j++ {
		pairs = append(pairs, Pair{
			Right:   LineRef{Number: j + 1, Text: al.b[j]},
			Changed: true,
		})
	}
	return pairs
}

// replaced resolves a replace run. The most similar left/right line pair
// (character-level ratio, junk characters excluded) becomes the
// synchronization point; the regions before and after it are resolved
// recursively. An identical pair (possible when the lines were filtered as
// junk at the line level) synchronizes even below the cutoff. When no
// synchronization point exists the runs are zipped index-wise.
func (al *aligner) replaced(alo, ahi, blo, bhi int) []Pair {
	bestRatio := similarityCutoff - 0.01
	bestI, bestJ := -1, -1
	eqI, eqJ := -1, -1

	for j := blo; j < bhi; j++ {
		for i := alo; i < ahi; i++ {
			if al.a[i] == al.b[j] {
				if eqI < 0 {
					eqI, eqJ = i, j
				}
				continue
			}
			cr := charMatcher(al.a[i], al.b[j])
			if cr.RealQuickRatio() > bestRatio && cr.QuickRatio() > bestRatio {
				if r := cr.Ratio(); r > bestRatio {
					bestRatio, bestI, bestJ = r, i, j
				}
			}
		}
	}

	if bestRatio < similarityCutoff {
		if eqI < 0 {
			return al.zipReplace(alo, ahi, blo, bhi)
		}
		bestI, bestJ = eqI, eqJ
	}

	var pairs []Pair
	pairs = append(pairs, al.resolve(alo, bestI, blo, bestJ)...)
	pairs = append(pairs, al.pair(bestI, bestJ, al.a[bestI] != al.b[bestJ]))
	pairs = append(pairs, al.resolve(bestI+1, ahi, bestJ+1, bhi)...)
	return pairs
}

func (al *aligner) resolve(alo, ahi, blo, bhi int) []Pair {
	switch {
	case alo < ahi && blo < bhi:
		return al.replaced(alo, ahi, blo, bhi)
	case alo < ahi:
		return al.deleted(alo, ahi)
	case blo < bhi:
		return al.inserted(blo, bhi)
	}
	return nil
}

func (al *aligner) zipReplace(alo, ahi, blo, bhi int) []Pair {
	count := ahi - alo
	if bhi-blo > count {
		count = bhi - blo
	}
	pairs := make([]Pair, 0, count)
	for k := 0; k < count; k++ {
		p := Pair{Changed: true}
		if alo+k < ahi {
			p.Left = LineRef{Number: alo + k + 1, Text: al.a[alo+k]}
		}
		if blo+k < bhi {
			p.Right = LineRef{Number: blo + k + 1, Text: al.b[blo+k]}
		}
		pairs = append(pairs, p)
	}
	return pairs
}

func charMatcher(a, b string) *difflib.SequenceMatcher {
	return difflib.NewMatcherWithJunk(splitChars(a), splitChars(b), true, isCharJunk)
}

func splitChars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

func collapseContext(pairs []Pair, window int) []Pair {
	keep := make([]bool, len(pairs))
	for i, p := range pairs {
		if !p.Changed {
			continue
		}
		lo := i - window
		if lo < 0 {
			lo = 0
		}
		hi := i + window
		if hi > len(pairs)-1 {
			hi = len(pairs) - 1
		}
		for j := lo; j <= hi; j++ {
			keep[j] = true
		}
	}

	out := make([]Pair, 0, len(pairs))
	for i, p := range pairs {
		if keep[i] {
			out = append(out, p)
		}
	}
	return out
}
