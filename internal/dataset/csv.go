// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pdiddy/heading-dataset/pkg/types"
)

// Header lists the CSV columns in output order.
var Header = []string{"text", "font_size", "font_name", "y_coord", "page", "source_pdf", "label"}

// WriteCSV writes lines to path as a header row plus one row per record.
// The table is written to a temporary file in the same directory and
// renamed into place, so a failed write never leaves a partial file.
func WriteCSV(path string, lines []types.ExtractedLine) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	cw := csv.NewWriter(tmp)
	if err := cw.Write(Header); err != nil {
		tmp.Close()
		return fmt.Errorf("writing header: %w", err)
	}
	for i, l := range lines {
		if err := cw.Write(record(l)); err != nil {
			tmp.Close()
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming to %s: %w", path, err)
	}
	return nil
}

func record(l types.ExtractedLine) []string {
	return []string{
		l.Text,
		formatFloat(l.FontSize),
		l.FontName,
		formatFloat(l.YCoord),
		strconv.Itoa(l.Page),
		l.SourcePDF,
		l.Label,
	}
}

// formatFloat writes the shortest representation of f, keeping a trailing
// ".0" on integral values so the column reads as floating point.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if strings.ContainsAny(s, ".NI") {
		return s
	}
	return s + ".0"
}
