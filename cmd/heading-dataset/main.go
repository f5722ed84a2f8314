// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the heading-dataset CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/heading-dataset/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the heading-dataset CLI.
var rootCmd = &cobra.Command{
	Use:   "heading-dataset",
	Short: "Build heading-labeling datasets from folders of PDFs",
	Long: `heading-dataset walks a folder of PDF documents, extracts every text line
with its font size, font name, vertical position and page, and writes the
lines to a CSV file with an empty label column for manual annotation.

Use create to build the dataset, inspect to preview the folder, and config
to print the effective settings.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./heading-dataset.yaml or ~/.config/heading-dataset/config.yaml)")
	rootCmd.PersistentFlags().String("pdf-dir", types.DefaultPDFDir, "directory containing the PDFs to label")
	rootCmd.PersistentFlags().String("extension", types.DefaultExtension, "file extension of candidate documents (case-insensitive)")
	rootCmd.PersistentFlags().Int("limit", types.DefaultLimit, "maximum number of documents to process (0 = all)")

	bindFlag("pdf_dir", rootCmd.PersistentFlags().Lookup("pdf-dir"))
	bindFlag("extension", rootCmd.PersistentFlags().Lookup("extension"))
	bindFlag("limit", rootCmd.PersistentFlags().Lookup("limit"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("heading-dataset")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "heading-dataset"))
		}
	}

	viper.SetEnvPrefix("HEADING_DATASET")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
