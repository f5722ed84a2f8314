// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package inspect previews candidate documents without extracting them:
// page count and whether a password blocks reading.
package inspect

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

func init() {
	// Keep pdfcpu from installing its configuration directory on first use.
	api.DisableConfigDir()
}

// Report describes one inspected document.
type Report struct {
	Path      string `json:"path" yaml:"path"`
	Pages     int    `json:"pages" yaml:"pages"`
	Encrypted bool   `json:"encrypted" yaml:"encrypted"`
	Err       error  `json:"-" yaml:"-"`
}

// PageCounter returns the page count of the document at path.
type PageCounter func(path string) (int, error)

// Inspector reads document summaries through a PageCounter.
type Inspector struct {
	count PageCounter
}

// New returns an Inspector backed by pdfcpu.
func New() *Inspector {
	return &Inspector{count: api.PageCountFile}
}

// Inspect returns one report per path, in order. A document pdfcpu cannot
// open because of a password is reported as encrypted, not failed.
func (in *Inspector) Inspect(paths []string) []Report {
	reports := make([]Report, len(paths))
	for i, p := range paths {
		reports[i] = Report{Path: p}
		n, err := in.count(p)
		switch {
		case err == nil:
			reports[i].Pages = n
		case strings.Contains(strings.ToLower(err.Error()), "password"):
			reports[i].Encrypted = true
		default:
			reports[i].Err = err
		}
	}
	return reports
}

// Print writes reports as an aligned table to w.
func Print(w io.Writer, reports []Report) {
	fmt.Fprintf(w, "%-40s  %5s  %-9s  %s\n", "File", "Pages", "Encrypted", "Error")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, r := range reports {
		name := filepath.Base(r.Path)
		if r := []rune(name); len(r) > 40 {
			name = string(r[:37]) + "..."
		}
		errText := ""
		if r.Err != nil {
			errText = r.Err.Error()
		}
		fmt.Fprintf(w, "%-40s  %5d  %-9t  %s\n", name, r.Pages, r.Encrypted, errText)
	}
	fmt.Fprintf(w, "\n%d documents\n", len(reports))
}
