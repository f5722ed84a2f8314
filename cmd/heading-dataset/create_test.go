// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/heading-dataset/internal/document"
	"github.com/pdiddy/heading-dataset/internal/pdftest"
	"github.com/pdiddy/heading-dataset/pkg/types"
)

func TestCreateDataset(t *testing.T) {
	dir := t.TempDir()
	pdfDir := filepath.Join(dir, "pdfs")
	require.NoError(t, os.Mkdir(pdfDir, 0o755))
	pdftest.Write(t, pdfDir, "a.pdf", pdftest.Build(
		pdftest.Text("F3", 16, 72, 720, "Chapter One"),
	))
	pdftest.Write(t, pdfDir, "b.pdf", pdftest.Build(
		pdftest.Text("F1", 10, 72, 700, "Body text"),
	))

	cfg := types.DatasetConfig{PDFDir: pdfDir, Output: filepath.Join(dir, "out.csv"), Limit: 1}.WithDefaults()

	var out bytes.Buffer
	written, err := createDataset(cfg, document.PDFOpener{}, true, &out)
	require.NoError(t, err)
	assert.True(t, written)

	log := out.String()
	assert.Contains(t, log, "Found 2 PDFs in "+pdfDir)
	assert.Contains(t, log, "Using these 1 PDFs for this run:")
	assert.Contains(t, log, "page 1: 1 blocks")
	assert.Contains(t, log, "Done! Created: "+cfg.Output)

	data, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.Equal(t,
		"text,font_size,font_name,y_coord,page,source_pdf,label\n"+
			"Chapter One,16.0,Georgia,60.0,1,a.pdf,\n",
		string(data))
}

func TestCreateDatasetNoLines(t *testing.T) {
	dir := t.TempDir()
	cfg := types.DatasetConfig{PDFDir: dir, Output: filepath.Join(dir, "out.csv"), Limit: 20}.WithDefaults()

	var out bytes.Buffer
	written, err := createDataset(cfg, document.PDFOpener{}, false, &out)
	require.NoError(t, err)
	assert.False(t, written)
	assert.Contains(t, out.String(), "no valid lines found")
	assert.NoFileExists(t, cfg.Output)
}

func TestCreateDatasetMissingDir(t *testing.T) {
	cfg := types.DatasetConfig{PDFDir: filepath.Join(t.TempDir(), "missing")}.WithDefaults()
	_, err := createDataset(cfg, document.PDFOpener{}, false, &bytes.Buffer{})
	assert.Error(t, err)
}
