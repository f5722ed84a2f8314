// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document defines the typed content tree of a parsed document
// (Document → Page → Block → Line → Span) and the collaborators that open
// files into it.
package document

// Rect is an axis-aligned box in top-left-origin page space: Y grows
// downward, so Y0 is the top edge.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Union returns the smallest Rect covering r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// Span is a run of text on a line sharing one font and size.
type Span struct {
	Text string
	Size float64
	Font string
	BBox Rect
}

// Line is a visually contiguous sequence of spans within a text block.
type Line struct {
	BBox  Rect
	Spans []Span
}

// Block is a content region on a page. The only implementations are
// TextBlock and OtherBlock.
type Block interface {
	block()
}

// TextBlock holds the text lines of a region, in reading order.
type TextBlock struct {
	BBox  Rect
	Lines []Line
}

// BlockKind names the non-text block variants.
type BlockKind string

const (
	KindImage   BlockKind = "image"
	KindDrawing BlockKind = "drawing"
)

// OtherBlock is a non-text region such as an image or a vector drawing.
type OtherBlock struct {
	Kind BlockKind
	BBox Rect
}

func (TextBlock) block()  {}
func (OtherBlock) block() {}

// Page is one page of a document. Index is 0-based.
type Page struct {
	Index  int
	Width  float64
	Height float64
	Blocks []Block
}

// Document is an open, parsed document. Callers must Close it.
type Document interface {
	// Encrypted reports whether the document could not be read without a
	// password. An encrypted Document has no pages.
	Encrypted() bool

	// NumPages returns the number of pages.
	NumPages() int

	// Page returns the content tree of the page at the 0-based index.
	Page(index int) (Page, error)

	// Close releases the underlying file.
	Close() error
}

// Opener opens a document by path.
type Opener interface {
	Open(path string) (Document, error)
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func(path string) (Document, error)

// Open calls f(path).
func (f OpenerFunc) Open(path string) (Document, error) {
	return f(path)
}
