// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract flattens a document's content tree into one labeled text
// record per line.
package extract

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/heading-dataset/internal/document"
	"github.com/pdiddy/heading-dataset/pkg/types"
)

// Options controls line extraction.
type Options struct {
	// MaxChars is the exclusive upper bound on a line's length in
	// characters. Zero means types.DefaultMaxChars.
	MaxChars int

	// OnPage, when set, is called once per page with the 1-based page
	// number and the page's block count, before its lines are extracted.
	OnPage func(page, blocks int)
}

// Lines extracts every qualifying text line of doc in page, block, line
// order. source is recorded as the SourcePDF of each record.
//
// An encrypted document yields no lines and no error. Only text blocks are
// read; lines without spans are skipped. A line's text is its spans joined
// by single spaces and trimmed, and its font size, font name and y
// coordinate come from its first span alone. Lines that are empty or at
// least MaxChars characters long are dropped. Any page error fails the
// whole document.
func Lines(doc document.Document, source string, opts Options) ([]types.ExtractedLine, error) {
	if doc.Encrypted() {
		return nil, nil
	}

	maxChars := opts.MaxChars
	if maxChars <= 0 {
		maxChars = types.DefaultMaxChars
	}

	var lines []types.ExtractedLine
	for i := 0; i < doc.NumPages(); i++ {
		page, err := doc.Page(i)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}
		if opts.OnPage != nil {
			opts.OnPage(i+1, len(page.Blocks))
		}

		for _, b := range page.Blocks {
			tb, ok := b.(document.TextBlock)
			if !ok {
				continue
			}
			for _, l := range tb.Lines {
				rec, ok := lineRecord(l, maxChars)
				if !ok {
					continue
				}
				rec.Page = i + 1
				rec.SourcePDF = source
				lines = append(lines, rec)
			}
		}
	}

	return lines, nil
}

// lineRecord builds the record for a single line, reporting false when the
// line has no spans or its text fails the length filter.
func lineRecord(l document.Line, maxChars int) (types.ExtractedLine, bool) {
	if len(l.Spans) == 0 {
		return types.ExtractedLine{}, false
	}

	parts := make([]string, len(l.Spans))
	for i, s := range l.Spans {
		parts[i] = s.Text
	}
	text := strings.TrimSpace(strings.Join(parts, " "))

	n := utf8.RuneCountInString(text)
	if n == 0 || n >= maxChars {
		return types.ExtractedLine{}, false
	}

	first := l.Spans[0]
	return types.ExtractedLine{
		Text:     text,
		FontSize: first.Size,
		FontName: first.Font,
		YCoord:   first.BBox.Y0,
	}, true
}
