// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"math"
	"strings"
)

// glyph is one positioned character from a page's content stream. X and Y
// are the baseline origin in PDF user space (Y grows upward).
type glyph struct {
	font string
	size float64
	x, y float64
	w    float64
	s    string

	// ascent is the font's ascender as a fraction of the em; zero when the
	// font declares none.
	ascent float64
}

// layoutConfig holds the grouping thresholds, each a fraction of the font
// size of the glyphs involved.
type layoutConfig struct {
	// LineTolerance is the largest baseline difference that still counts
	// as the same line (default 0.5).
	LineTolerance float64

	// SpaceGap is the smallest horizontal gap between two glyphs of a span
	// that is rendered as a space (default 0.125, half of the usual
	// quarter-em space width).
	SpaceGap float64

	// BlockGap is the largest baseline-to-baseline distance between two
	// consecutive lines of the same block (default 1.5).
	BlockGap float64

	// ColumnGap is the horizontal gap on a shared baseline beyond which the
	// next glyph starts a new line (default 3.0), so table cells and columns
	// stay apart.
	ColumnGap float64
}

var defaultLayout = layoutConfig{
	LineTolerance: 0.5,
	SpaceGap:      0.125,
	BlockGap:      1.5,
	ColumnGap:     3.0,
}

// pageFrame converts PDF user space to top-left-origin page space.
type pageFrame struct {
	left, top float64
}

func (f pageFrame) rect(x0, y0, x1, y1 float64) Rect {
	return Rect{
		X0: math.Min(x0, x1) - f.left,
		Y0: f.top - math.Max(y0, y1),
		X1: math.Max(x0, x1) - f.left,
		Y1: f.top - math.Min(y0, y1),
	}
}

type spanBuilder struct {
	font     string
	size     float64
	ascent   float64
	baseline float64
	x0, x1   float64
	text     strings.Builder
	last     glyph
}

type lineBuilder struct {
	baseline float64
	size     float64
	end      float64
	spans    []*spanBuilder
}

// layoutText groups glyphs, in content-stream order, into text blocks.
func layoutText(glyphs []glyph, frame pageFrame, cfg layoutConfig) []TextBlock {
	var (
		blocks []TextBlock
		cur    *lineBuilder
		prev   *lineBuilder
	)

	flush := func() {
		if cur == nil {
			return
		}
		line := cur.build(frame)
		if prev != nil && len(blocks) > 0 &&
			math.Abs(cur.baseline-prev.baseline) <= cfg.BlockGap*math.Max(cur.size, prev.size) {
			b := &blocks[len(blocks)-1]
			b.Lines = append(b.Lines, line)
			b.BBox = b.BBox.Union(line.BBox)
		} else {
			blocks = append(blocks, TextBlock{BBox: line.BBox, Lines: []Line{line}})
		}
		prev = cur
		cur = nil
	}

	for _, g := range glyphs {
		if g.s == "" {
			continue
		}
		if cur != nil && math.Abs(g.y-cur.baseline) <= cfg.LineTolerance*math.Max(g.size, cur.size) &&
			g.x-cur.end <= cfg.ColumnGap*g.size {
			cur.add(g, cfg)
			continue
		}
		flush()
		cur = &lineBuilder{baseline: g.y, size: g.size}
		cur.add(g, cfg)
	}
	flush()

	return blocks
}

func (l *lineBuilder) add(g glyph, cfg layoutConfig) {
	l.size = math.Max(l.size, g.size)
	l.end = g.x + g.w

	if n := len(l.spans); n > 0 {
		sp := l.spans[n-1]
		if sp.font == g.font && sp.size == g.size {
			gap := g.x - (sp.last.x + sp.last.w)
			if gap >= cfg.SpaceGap*g.size && !endsWithSpace(sp.last.s) && !startsWithSpace(g.s) {
				sp.text.WriteByte(' ')
			}
			sp.append(g)
			return
		}
	}

	sp := &spanBuilder{font: g.font, size: g.size, ascent: g.ascent, baseline: g.y, x0: g.x, x1: g.x}
	sp.append(g)
	l.spans = append(l.spans, sp)
}

func (s *spanBuilder) append(g glyph) {
	s.text.WriteString(g.s)
	s.x0 = math.Min(s.x0, g.x)
	s.x1 = math.Max(s.x1, g.x+g.w)
	s.last = g
}

func (l *lineBuilder) build(frame pageFrame) Line {
	line := Line{Spans: make([]Span, 0, len(l.spans))}
	for i, sp := range l.spans {
		span := Span{
			Text: sp.text.String(),
			Size: sp.size,
			Font: sp.font,
			BBox: frame.rect(sp.x0, sp.baseline, sp.x1, sp.baseline+sp.top()),
		}
		line.Spans = append(line.Spans, span)
		if i == 0 {
			line.BBox = span.BBox
		} else {
			line.BBox = line.BBox.Union(span.BBox)
		}
	}
	return line
}

// top returns the height of the span's top edge above its baseline: the
// font's ascender when known, one em otherwise.
func (s *spanBuilder) top() float64 {
	if s.ascent > 0 {
		return s.ascent * s.size
	}
	return s.size
}

func endsWithSpace(s string) bool {
	return strings.HasSuffix(s, " ")
}

func startsWithSpace(s string) bool {
	return strings.HasPrefix(s, " ")
}
