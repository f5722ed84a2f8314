// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ExtractedLine is one visually distinct text line pulled from a PDF page,
// ready for manual heading annotation. Font and position metadata belong to
// the first span of the line only.
type ExtractedLine struct {
	// Text is the space-joined, trimmed text of every span on the line.
	Text string `json:"text" yaml:"text"`

	// FontSize is the point size of the line's first span.
	FontSize float64 `json:"font_size" yaml:"font_size"`

	// FontName is the font identifier of the line's first span.
	FontName string `json:"font_name" yaml:"font_name"`

	// YCoord is the top edge of the first span's bounding box, measured
	// from the top of the page.
	YCoord float64 `json:"y_coord" yaml:"y_coord"`

	// Page is the 1-based page number.
	Page int `json:"page" yaml:"page"`

	// SourcePDF is the base filename of the originating document.
	SourcePDF string `json:"source_pdf" yaml:"source_pdf"`

	// Label is left empty for manual labeling.
	Label string `json:"label" yaml:"label"`
}

// DocumentStatus records how a single document fared during a batch run.
type DocumentStatus string

const (
	DocumentExtracted DocumentStatus = "extracted"
	DocumentEncrypted DocumentStatus = "encrypted"
	DocumentFailed    DocumentStatus = "failed"
)
