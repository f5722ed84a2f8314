// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatasetConfigWithDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   DatasetConfig
		want DatasetConfig
	}{
		{"zero value", DatasetConfig{}, DatasetConfig{
			PDFDir: DefaultPDFDir, Output: DefaultOutput, MaxChars: DefaultMaxChars, Extension: DefaultExtension,
		}},
		{"set fields kept", DatasetConfig{PDFDir: "in", Output: "out.csv", Limit: 5, MaxChars: 80, Extension: ".PDF"},
			DatasetConfig{PDFDir: "in", Output: "out.csv", Limit: 5, MaxChars: 80, Extension: ".PDF"}},
		{"negative max chars", DatasetConfig{MaxChars: -1, Limit: -1}, DatasetConfig{
			PDFDir: DefaultPDFDir, Output: DefaultOutput, Limit: -1, MaxChars: DefaultMaxChars, Extension: DefaultExtension,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.WithDefaults())
		})
	}
}

func TestDefaultDatasetConfig(t *testing.T) {
	cfg := DefaultDatasetConfig()
	assert.Equal(t, 20, cfg.Limit)
	assert.Equal(t, 250, cfg.MaxChars)
	assert.Equal(t, "pdfs_to_label", cfg.PDFDir)
}
