// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/heading-dataset/internal/dataset"
	"github.com/pdiddy/heading-dataset/internal/document"
	"github.com/pdiddy/heading-dataset/internal/extract"
	"github.com/pdiddy/heading-dataset/pkg/types"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Extract text lines from PDFs into a CSV labeling table",
	Long: `Create scans --pdf-dir for PDFs, takes the first --limit of them in name
order, and extracts one row per text line: text, font_size, font_name,
y_coord, page, source_pdf, and an empty label column.

Encrypted PDFs are skipped and unreadable PDFs are reported; neither stops
the run. When no lines are found, no CSV is written.`,
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringP("output", "o", types.DefaultOutput, "path of the CSV file to write")
	createCmd.Flags().Int("max-chars", types.DefaultMaxChars, "drop lines with this many characters or more")
	createCmd.Flags().BoolP("verbose", "v", false, "print the block count of every page")

	bindFlag("output", createCmd.Flags().Lookup("output"))
	bindFlag("max_chars", createCmd.Flags().Lookup("max-chars"))

	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := datasetConfig()
	if err != nil {
		return err
	}
	verbose, _ := cmd.Flags().GetBool("verbose")

	_, err = createDataset(cfg, document.PDFOpener{}, verbose, cmd.OutOrStdout())
	return err
}

// createDataset lists, extracts, and writes the dataset described by cfg.
// It reports whether a CSV file was written.
func createDataset(cfg types.DatasetConfig, opener document.Opener, verbose bool, w io.Writer) (bool, error) {
	listing, err := dataset.ListDocuments(cfg.PDFDir, cfg.Extension, cfg.Limit)
	if err != nil {
		return false, err
	}
	fmt.Fprintf(w, "Found %d PDFs in %s\n", listing.Found, cfg.PDFDir)
	fmt.Fprintf(w, "Using these %d PDFs for this run:\n", len(listing.Paths))

	opts := extract.Options{MaxChars: cfg.MaxChars}
	if verbose {
		opts.OnPage = func(page, blocks int) {
			fmt.Fprintf(w, "  page %d: %d blocks\n", page, blocks)
		}
	}

	result := dataset.Build(opener, listing.Paths, opts, w)
	if len(result.Lines) == 0 {
		fmt.Fprintln(w, "warning: no valid lines found in the PDFs; no CSV written")
		return false, nil
	}

	if err := dataset.WriteCSV(cfg.Output, result.Lines); err != nil {
		return false, err
	}
	fmt.Fprintf(w, "Done! Created: %s (%d rows)\n", cfg.Output, len(result.Lines))
	return true, nil
}
