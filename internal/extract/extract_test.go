// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/heading-dataset/internal/document"
	"github.com/pdiddy/heading-dataset/pkg/types"
)

// --- fake document ---

type fakeDoc struct {
	encrypted bool
	pages     []document.Page
	errPage   int // 0-based page index that fails; -1 for none
}

func newDoc(pages ...document.Page) *fakeDoc {
	return &fakeDoc{pages: pages, errPage: -1}
}

func (d *fakeDoc) Encrypted() bool { return d.encrypted }
func (d *fakeDoc) NumPages() int   { return len(d.pages) }
func (d *fakeDoc) Close() error    { return nil }

func (d *fakeDoc) Page(i int) (document.Page, error) {
	if i == d.errPage {
		return document.Page{}, errors.New("broken content stream")
	}
	return d.pages[i], nil
}

func span(text string, size float64, font string, y float64) document.Span {
	return document.Span{Text: text, Size: size, Font: font, BBox: document.Rect{X0: 72, Y0: y, X1: 300, Y1: y + size}}
}

func line(spans ...document.Span) document.Line {
	return document.Line{Spans: spans}
}

func textPage(lines ...document.Line) document.Page {
	return document.Page{Blocks: []document.Block{document.TextBlock{Lines: lines}}}
}

// --- Lines ---

func TestLinesTwoSpanScenario(t *testing.T) {
	doc := newDoc(textPage(line(
		span("Intro", 14, "Bold", 100),
		span("Section", 12, "Regular", 100),
	)))

	got, err := Lines(doc, "intro.pdf", Options{})
	require.NoError(t, err)
	assert.Equal(t, []types.ExtractedLine{{
		Text:      "Intro Section",
		FontSize:  14,
		FontName:  "Bold",
		YCoord:    100,
		Page:      1,
		SourcePDF: "intro.pdf",
	}}, got)
}

func TestLinesEncrypted(t *testing.T) {
	doc := newDoc(textPage(line(span("hidden", 10, "Regular", 50))))
	doc.encrypted = true

	got, err := Lines(doc, "locked.pdf", Options{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLinesFiltering(t *testing.T) {
	tests := []struct {
		name     string
		line     document.Line
		maxChars int
		want     string // empty means dropped
	}{
		{"no spans", line(), 0, ""},
		{"whitespace only", line(span("   ", 10, "R", 0), span("\t", 10, "R", 0)), 0, ""},
		{"trimmed", line(span("  Heading ", 10, "R", 0)), 0, "Heading"},
		{"249 chars kept", line(span(strings.Repeat("a", 249), 10, "R", 0)), 0, strings.Repeat("a", 249)},
		{"250 chars dropped", line(span(strings.Repeat("a", 250), 10, "R", 0)), 0, ""},
		{"300 chars dropped", line(span(strings.Repeat("b", 300), 10, "R", 0)), 0, ""},
		{"joined length counts", line(span(strings.Repeat("a", 125), 10, "R", 0), span(strings.Repeat("a", 124), 10, "R", 0)), 0, ""},
		{"characters not bytes", line(span(strings.Repeat("é", 200), 10, "R", 0)), 0, strings.Repeat("é", 200)},
		{"custom limit", line(span("Chapter One", 10, "R", 0)), 11, ""},
		{"custom limit keeps shorter", line(span("Chapter 1", 10, "R", 0)), 11, "Chapter 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lines(newDoc(textPage(tt.line)), "doc.pdf", Options{MaxChars: tt.maxChars})
			require.NoError(t, err)
			if tt.want == "" {
				assert.Empty(t, got)
				return
			}
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0].Text)
		})
	}
}

func TestLinesJoinsEverySpan(t *testing.T) {
	doc := newDoc(textPage(line(
		span("1.", 12, "Bold", 40),
		span("Overview", 12, "Bold", 40),
		span("of", 9, "Italic", 42),
		span("results ", 11, "Regular", 41),
	)))

	got, err := Lines(doc, "a.pdf", Options{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1. Overview of results", got[0].Text)
	assert.Equal(t, 12.0, got[0].FontSize)
	assert.Equal(t, "Bold", got[0].FontName)
	assert.Equal(t, 40.0, got[0].YCoord)
}

func TestLinesFirstSpanMetadataWins(t *testing.T) {
	doc := newDoc(textPage(line(
		span("small", 8, "Light", 300),
		span("LARGE", 24, "Black", 280),
	)))

	got, err := Lines(doc, "a.pdf", Options{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 8.0, got[0].FontSize)
	assert.Equal(t, "Light", got[0].FontName)
	assert.Equal(t, 300.0, got[0].YCoord)
}

func TestLinesIgnoresNonTextBlocks(t *testing.T) {
	page := document.Page{Blocks: []document.Block{
		document.OtherBlock{Kind: document.KindImage},
		document.TextBlock{Lines: []document.Line{line(span("caption", 9, "R", 500))}},
		document.OtherBlock{Kind: document.KindDrawing},
	}}

	got, err := Lines(newDoc(page), "a.pdf", Options{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "caption", got[0].Text)
}

func TestLinesOrderAndPageNumbers(t *testing.T) {
	p1 := document.Page{Blocks: []document.Block{
		document.TextBlock{Lines: []document.Line{
			line(span("b1 l1", 10, "R", 10)),
			line(span("b1 l2", 10, "R", 20)),
		}},
		document.TextBlock{Lines: []document.Line{
			line(span("b2 l1", 10, "R", 30)),
		}},
	}}
	p2 := textPage(line(span("p2", 10, "R", 10)))
	p3 := document.Page{}
	p4 := textPage(line(span("p4", 10, "R", 10)))

	got, err := Lines(newDoc(p1, p2, p3, p4), "ordered.pdf", Options{})
	require.NoError(t, err)

	var texts []string
	var pages []int
	for _, l := range got {
		texts = append(texts, l.Text)
		pages = append(pages, l.Page)
		assert.Equal(t, "ordered.pdf", l.SourcePDF)
		assert.Empty(t, l.Label)
	}
	assert.Equal(t, []string{"b1 l1", "b1 l2", "b2 l1", "p2", "p4"}, texts)
	assert.Equal(t, []int{1, 1, 1, 2, 4}, pages)
}

func TestLinesPageErrorFailsDocument(t *testing.T) {
	doc := newDoc(
		textPage(line(span("first", 10, "R", 10))),
		textPage(line(span("second", 10, "R", 10))),
	)
	doc.errPage = 1

	got, err := Lines(doc, "broken.pdf", Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page 2")
	assert.Nil(t, got)
}

func TestLinesOnPage(t *testing.T) {
	doc := newDoc(
		document.Page{Blocks: []document.Block{
			document.OtherBlock{Kind: document.KindImage},
			document.TextBlock{Lines: []document.Line{line(span("x", 10, "R", 0))}},
		}},
		document.Page{},
	)

	type call struct{ page, blocks int }
	var calls []call
	_, err := Lines(doc, "a.pdf", Options{OnPage: func(page, blocks int) {
		calls = append(calls, call{page, blocks})
	}})
	require.NoError(t, err)
	assert.Equal(t, []call{{1, 2}, {2, 0}}, calls)
}
