// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

const (
	DefaultPDFDir    = "pdfs_to_label"
	DefaultOutput    = "sample_heading_dataset.csv"
	DefaultLimit     = 20
	DefaultMaxChars  = 250
	DefaultExtension = ".pdf"
)

// DatasetConfig holds settings for building a heading dataset.
type DatasetConfig struct {
	// PDFDir is the directory scanned for candidate documents.
	PDFDir string `json:"pdf_dir" yaml:"pdf_dir" mapstructure:"pdf_dir"`

	// Output is the path of the CSV file to write.
	Output string `json:"output" yaml:"output" mapstructure:"output"`

	// Limit caps how many documents are processed (default 20, <=0 means all).
	Limit int `json:"limit" yaml:"limit" mapstructure:"limit"`

	// MaxChars is the exclusive upper bound on line length in characters
	// (default 250). Longer lines are dropped, not truncated.
	MaxChars int `json:"max_chars" yaml:"max_chars" mapstructure:"max_chars"`

	// Extension selects candidate files, compared case-insensitively.
	Extension string `json:"extension" yaml:"extension" mapstructure:"extension"`
}

// DefaultDatasetConfig returns the settings the tool uses when nothing is
// configured.
func DefaultDatasetConfig() DatasetConfig {
	return DatasetConfig{
		PDFDir:    DefaultPDFDir,
		Output:    DefaultOutput,
		Limit:     DefaultLimit,
		MaxChars:  DefaultMaxChars,
		Extension: DefaultExtension,
	}
}

// WithDefaults fills zero-valued fields from DefaultDatasetConfig. Limit is
// left alone because zero is meaningful there.
func (c DatasetConfig) WithDefaults() DatasetConfig {
	d := DefaultDatasetConfig()
	if c.PDFDir == "" {
		c.PDFDir = d.PDFDir
	}
	if c.Output == "" {
		c.Output = d.Output
	}
	if c.MaxChars <= 0 {
		c.MaxChars = d.MaxChars
	}
	if c.Extension == "" {
		c.Extension = d.Extension
	}
	return c
}
