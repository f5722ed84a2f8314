// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/heading-dataset/pkg/types"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Config resolves settings from flags, HEADING_DATASET_* environment
variables, the config file, and built-in defaults, and prints the result in
the same YAML shape the config file accepts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := datasetConfig()
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(&cfg)
		if err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// bindFlag binds a viper key to a flag. A nil flag is a programming error.
func bindFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding flag for %s: %v", key, err))
	}
}

// datasetConfig resolves the DatasetConfig from viper and fills defaults.
func datasetConfig() (types.DatasetConfig, error) {
	var cfg types.DatasetConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return types.DatasetConfig{}, fmt.Errorf("reading configuration: %w", err)
	}
	return cfg.WithDefaults(), nil
}
