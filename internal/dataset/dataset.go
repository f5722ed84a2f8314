// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset drives line extraction over a folder of documents and
// writes the collected records as a CSV labeling table.
package dataset

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/heading-dataset/internal/document"
	"github.com/pdiddy/heading-dataset/internal/extract"
	"github.com/pdiddy/heading-dataset/pkg/types"
)

// Listing is the outcome of scanning a directory for candidate documents.
type Listing struct {
	// Found is the number of matching files in the directory.
	Found int

	// Paths holds the selected files, in name order, truncated to the limit.
	Paths []string
}

// ListDocuments returns the regular files in dir whose extension matches
// ext case-insensitively, sorted by name and truncated to limit. A limit of
// zero or less selects every match.
func ListDocuments(dir, ext string, limit int) (Listing, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Listing{}, fmt.Errorf("reading document directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), ext) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}

	listing := Listing{Found: len(paths), Paths: paths}
	if limit > 0 && len(paths) > limit {
		listing.Paths = paths[:limit]
	}
	return listing, nil
}

// ExtractionError reports a document that could not be opened or read.
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extracting %s: %v", e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// DocumentResult holds the outcome of extracting one document.
type DocumentResult struct {
	Path   string
	Status types.DocumentStatus
	Lines  []types.ExtractedLine

	// Err is an *ExtractionError when Status is DocumentFailed.
	Err error
}

// Result holds the outcome of a batch run.
type Result struct {
	Documents []DocumentResult

	// Lines concatenates the lines of every document in processing order.
	Lines []types.ExtractedLine

	Extracted int
	Encrypted int
	Failed    int
}

// Total returns the number of documents processed.
func (r Result) Total() int {
	return r.Extracted + r.Encrypted + r.Failed
}

// HasFailures reports whether any document failed extraction.
func (r Result) HasFailures() bool {
	return r.Failed > 0
}

// ProcessDocument opens, extracts and closes a single document, writing
// progress to w. The document is closed on every exit path. Failures are
// reported in the result, never returned.
func ProcessDocument(opener document.Opener, path string, opts extract.Options, w io.Writer) DocumentResult {
	res := DocumentResult{Path: path}

	lines, status, err := processDocument(opener, path, opts, w)
	switch {
	case err != nil:
		res.Status = types.DocumentFailed
		res.Err = &ExtractionError{Path: path, Err: err}
		fmt.Fprintf(w, "error processing %s: %v\n", path, err)
	default:
		res.Status = status
		res.Lines = lines
	}

	fmt.Fprintf(w, "  extracted %d lines from %s\n", len(res.Lines), path)
	return res
}

func processDocument(opener document.Opener, path string, opts extract.Options, w io.Writer) (lines []types.ExtractedLine, status types.DocumentStatus, err error) {
	doc, err := opener.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer func() {
		if cerr := doc.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing: %w", cerr)
			lines = nil
		}
	}()
	fmt.Fprintf(w, "opened: %s\n", path)

	if doc.Encrypted() {
		fmt.Fprintf(w, "skipped encrypted PDF: %s\n", path)
		return nil, types.DocumentEncrypted, nil
	}

	lines, err = extract.Lines(doc, filepath.Base(path), opts)
	if err != nil {
		return nil, "", err
	}
	return lines, types.DocumentExtracted, nil
}

// Build processes paths in order and concatenates their lines. A document
// that fails contributes no lines and the batch continues.
func Build(opener document.Opener, paths []string, opts extract.Options, w io.Writer) Result {
	var result Result
	for _, p := range paths {
		fmt.Fprintf(w, " - %s\n", filepath.Base(p))
		dr := ProcessDocument(opener, p, opts, w)
		result.Documents = append(result.Documents, dr)
		result.Lines = append(result.Lines, dr.Lines...)
		switch dr.Status {
		case types.DocumentExtracted:
			result.Extracted++
		case types.DocumentEncrypted:
			result.Encrypted++
		case types.DocumentFailed:
			result.Failed++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d extracted, %d encrypted, %d failed (total: %d)\n",
		result.Extracted, result.Encrypted, result.Failed, result.Total())
	fmt.Fprintf(w, "Total lines extracted: %d\n", len(result.Lines))
	return result
}
