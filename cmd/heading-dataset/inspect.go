package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/heading-dataset/internal/dataset"
	"github.com/pdiddy/heading-dataset/internal/inspect"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "List the PDFs a create run would use, with page counts",
	Long: `Inspect lists the documents create would select from --pdf-dir and
reports each one's page count and whether it is password protected, without
extracting any text.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := datasetConfig()
		if err != nil {
			return err
		}
		listing, err := dataset.ListDocuments(cfg.PDFDir, cfg.Extension, cfg.Limit)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Found %d PDFs in %s, inspecting %d\n\n", listing.Found, cfg.PDFDir, len(listing.Paths))
		inspect.Print(out, inspect.New().Inspect(listing.Paths))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
