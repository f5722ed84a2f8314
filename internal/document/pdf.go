// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
)

// baseFont drops a subset tag such as "ABCDEF+" from a font name.
func baseFont(name string) string {
	if len(name) < 8 || name[6] != '+' {
		return name
	}
	for i := 0; i < 6; i++ {
		if name[i] < 'A' || name[i] > 'Z' {
			return name
		}
	}
	return name[7:]
}

// letter is the MediaBox assumed when a page tree declares none.
var letter = [4]float64{0, 0, 612, 792}

// PDFOpener opens PDF files with github.com/ledongthuc/pdf and lays their
// glyphs out into the document tree.
type PDFOpener struct{}

// Open opens the PDF at path. A file that needs a non-empty password is
// returned as an encrypted Document rather than an error. The file handle
// is closed on every failure path; on success the caller owns it through
// Document.Close.
func (PDFOpener) Open(path string) (doc Document, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parsing %s: %v", path, r)
		}
		if err != nil {
			f.Close()
			doc = nil
		}
	}()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	r, err := pdf.NewReader(f, info.Size())
	switch {
	case errors.Is(err, pdf.ErrInvalidPassword):
		return &pdfDocument{f: f, encrypted: true}, nil
	case err != nil && unsupportedEncryption(err):
		data, derr := decrypt(f)
		if errors.Is(derr, errPasswordRequired) {
			return &pdfDocument{f: f, encrypted: true}, nil
		}
		if derr != nil {
			return nil, fmt.Errorf("decrypting %s: %w", path, derr)
		}
		r, err = pdf.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, fmt.Errorf("parsing decrypted %s: %w", path, err)
		}
	case err != nil:
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &pdfDocument{f: f, r: r}, nil
}

type pdfDocument struct {
	f         *os.File
	r         *pdf.Reader
	encrypted bool
}

func (d *pdfDocument) Encrypted() bool { return d.encrypted }

func (d *pdfDocument) NumPages() int {
	if d.r == nil {
		return 0
	}
	return d.r.NumPage()
}

func (d *pdfDocument) Close() error {
	return d.f.Close()
}

// Page lays out the page at the 0-based index. A page missing from the page
// tree yields an empty Page. Panics from the parser become errors.
func (d *pdfDocument) Page(index int) (page Page, err error) {
	if index < 0 || index >= d.NumPages() {
		return Page{}, fmt.Errorf("page index %d out of range (%d pages)", index, d.NumPages())
	}
	defer func() {
		if r := recover(); r != nil {
			page = Page{}
			err = fmt.Errorf("reading page %d: %v", index+1, r)
		}
	}()

	p := d.r.Page(index + 1)
	box := mediaBox(p.V)
	page = Page{
		Index:  index,
		Width:  box[2] - box[0],
		Height: box[3] - box[1],
	}
	if p.V.IsNull() {
		return page, nil
	}

	frame := pageFrame{left: box[0], top: box[3]}
	content := p.Content()
	ascents := fontAscents(p)

	glyphs := make([]glyph, 0, len(content.Text))
	for _, t := range content.Text {
		glyphs = append(glyphs, glyph{
			font:   baseFont(t.Font),
			size:   t.FontSize,
			x:      t.X,
			y:      t.Y,
			w:      t.W,
			s:      t.S,
			ascent: ascents[t.Font],
		})
	}
	for _, tb := range layoutText(glyphs, frame, defaultLayout) {
		page.Blocks = append(page.Blocks, tb)
	}
	for _, im := range imagePlacements(p) {
		page.Blocks = append(page.Blocks, OtherBlock{Kind: KindImage, BBox: frame.rect(im[0], im[1], im[2], im[3])})
	}
	for _, r := range content.Rect {
		page.Blocks = append(page.Blocks, OtherBlock{Kind: KindDrawing, BBox: frame.rect(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)})
	}

	return page, nil
}

// fontAscents maps the BaseFont of every font in the page resources to its
// FontDescriptor Ascent in ems. Fonts without a usable descriptor, such as
// the standard 14, are left out.
func fontAscents(p pdf.Page) map[string]float64 {
	ascents := make(map[string]float64)
	for _, name := range p.Fonts() {
		f := p.Font(name)
		v := f.V
		if v.Key("Subtype").Name() == "Type0" {
			v = v.Key("DescendantFonts").Index(0)
		}
		fd := v.Key("FontDescriptor")
		if fd.IsNull() {
			continue
		}
		if a := fd.Key("Ascent").Float64(); a > 0 {
			ascents[f.BaseFont()] = a / 1000
		}
	}
	return ascents
}

// mediaBox returns the page's MediaBox, inherited from the page tree when
// the page itself does not declare one.
func mediaBox(v pdf.Value) [4]float64 {
	for n := v; !n.IsNull(); n = n.Key("Parent") {
		mb := n.Key("MediaBox")
		if mb.Kind() != pdf.Array || mb.Len() != 4 {
			continue
		}
		var box [4]float64
		for i := range box {
			box[i] = mb.Index(i).Float64()
		}
		if box[2] > box[0] && box[3] > box[1] {
			return box
		}
	}
	return letter
}

// imagePlacements walks the page content stream and returns the user-space
// bounding box (x0, y0, x1, y1) of every image XObject it paints.
func imagePlacements(p pdf.Page) [][4]float64 {
	xobjects := p.Resources().Key("XObject")
	if xobjects.IsNull() {
		return nil
	}

	var (
		placed [][4]float64
		ctm    = identity
		saved  []matrix
	)
	pdf.Interpret(p.V.Key("Contents"), func(stk *pdf.Stack, op string) {
		n := stk.Len()
		args := make([]pdf.Value, n)
		for i := n - 1; i >= 0; i-- {
			args[i] = stk.Pop()
		}
		switch op {
		case "q":
			saved = append(saved, ctm)
		case "Q":
			if len(saved) > 0 {
				ctm = saved[len(saved)-1]
				saved = saved[:len(saved)-1]
			}
		case "cm":
			if n != 6 {
				return
			}
			var m matrix
			for i := range m {
				m[i] = args[i].Float64()
			}
			ctm = m.mul(ctm)
		case "Do":
			if n != 1 {
				return
			}
			if xobjects.Key(args[0].Name()).Key("Subtype").Name() != "Image" {
				return
			}
			placed = append(placed, ctm.unitSquare())
		}
	})
	return placed
}

// matrix is a PDF transformation matrix [a b c d e f].
type matrix [6]float64

var identity = matrix{1, 0, 0, 1, 0, 0}

// mul returns m followed by n.
func (m matrix) mul(n matrix) matrix {
	return matrix{
		m[0]*n[0] + m[1]*n[2],
		m[0]*n[1] + m[1]*n[3],
		m[2]*n[0] + m[3]*n[2],
		m[2]*n[1] + m[3]*n[3],
		m[4]*n[0] + m[5]*n[2] + n[4],
		m[4]*n[1] + m[5]*n[3] + n[5],
	}
}

func (m matrix) apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// unitSquare maps the image space unit square and returns its bounds.
func (m matrix) unitSquare() [4]float64 {
	box := [4]float64{}
	for i, c := range [][2]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		x, y := m.apply(c[0], c[1])
		if i == 0 {
			box = [4]float64{x, y, x, y}
			continue
		}
		box[0], box[1] = min(box[0], x), min(box[1], y)
		box[2], box[3] = max(box[2], x), max(box[3], y)
	}
	return box
}
