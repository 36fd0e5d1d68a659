package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/karlmd/word2pdf/pkg/types"
)

const configFileName = "word2pdf.yaml"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the word2pdf configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a word2pdf.yaml with default settings to the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(configFileName); err == nil {
			return fmt.Errorf("%s already exists", configFileName)
		}

		data, err := yaml.Marshal(types.DefaultConvertConfig())
		if err != nil {
			return fmt.Errorf("encoding default config: %w", err)
		}
		if err := os.WriteFile(configFileName, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", configFileName, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configFileName)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
