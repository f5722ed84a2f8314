// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftest builds small, valid PDF files for tests.
//
// Every document shares one resource dictionary: /F1 is Helvetica, /F2 is
// Helvetica-Bold, /F3 is the subset font ABCDEF+Georgia with a FontDescriptor
// whose Ascent is 750 (all three with a 500-unit width for every printable
// ASCII character) and /Im1 is a 1x1 grayscale image. Pages are US Letter.
package pdftest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func init() {
	api.DisableConfigDir()
}

// Options tweaks the generated document.
type Options struct {
	// Encrypted adds a standard security handler whose user password is not
	// empty, so readers cannot open the document without one.
	Encrypted bool
}

// Build returns a PDF with one page per content stream.
func Build(pages ...string) []byte {
	return BuildWithOptions(Options{}, pages...)
}

// BuildWithOptions returns a PDF with one page per content stream.
func BuildWithOptions(opts Options, pages ...string) []byte {
	const firstPageObj = 8

	widths := strings.TrimSpace(strings.Repeat("500 ", 126-32+1))
	font := func(base, extra string) string {
		return fmt.Sprintf("<< /Type /Font /Subtype /Type1 /BaseFont /%s /Encoding /WinAnsiEncoding /FirstChar 32 /LastChar 126 /Widths [%s]%s >>", base, widths, extra)
	}

	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", firstPageObj+2*i)
	}

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R /F2 4 0 R /F3 6 0 R >> /XObject << /Im1 5 0 R >> >> >>",
			strings.Join(kids, " "), len(pages)),
		font("Helvetica", ""),
		font("Helvetica-Bold", ""),
		"<< /Type /XObject /Subtype /Image /Width 1 /Height 1 /ColorSpace /DeviceGray /BitsPerComponent 8 /Length 1 >>\nstream\n\xff\nendstream",
		font("ABCDEF+Georgia", " /FontDescriptor 7 0 R"),
		"<< /Type /FontDescriptor /FontName /ABCDEF+Georgia /Flags 34 /FontBBox [-170 -220 1000 750] /ItalicAngle 0 /Ascent 750 /Descent -220 /CapHeight 690 /StemV 80 >>",
	}
	for i, content := range pages {
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /Contents %d 0 R >>", firstPageObj+2*i+1),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		)
	}

	trailer := ""
	if opts.Encrypted {
		zeros := strings.Repeat("00", 32)
		objects = append(objects, fmt.Sprintf("<< /Filter /Standard /V 1 /R 2 /Length 40 /O <%s> /U <%s> /P -4 >>", zeros, zeros))
		id := "<0123456789abcdef0123456789abcdef>"
		trailer = fmt.Sprintf(" /Encrypt %d 0 R /ID [%s %s]", len(objects), id, id)
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R%s >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, trailer, xref)

	return buf.Bytes()
}

// Write stores data as dir/name and returns the path.
func Write(t testing.TB, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// EncryptAES writes src to dst encrypted with AES-256 (V5/R6) and every
// permission granted. An empty userPW yields an owner-password-only file
// that opens without a password.
func EncryptAES(t testing.TB, src, dst, userPW, ownerPW string) string {
	t.Helper()
	conf := model.NewAESConfiguration(userPW, ownerPW, 256)
	conf.Permissions = model.PermissionsAll
	if err := api.EncryptFile(src, dst, conf); err != nil {
		t.Fatal(err)
	}
	return dst
}

// Text returns a content stream fragment that shows s in font (F1, F2 or F3)
// at size with its baseline origin at (x, y).
func Text(font string, size, x, y float64, s string) string {
	return fmt.Sprintf("BT /%s %g Tf %g %g Td (%s) Tj ET\n", font, size, x, y, s)
}
