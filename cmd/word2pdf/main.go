// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the word2pdf CLI: a thin shell
// around the installed document rendering engine that converts a Word
// document to PDF.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the word2pdf CLI.
var rootCmd = &cobra.Command{
	Use:   "word2pdf",
	Short: "Convert Word documents to PDF through the installed office suite",
	Long: `word2pdf drives the word-processing application already installed on this
host to export a .doc or .docx file as PDF. On Windows it automates
Microsoft Word; elsewhere it falls back to headless LibreOffice. The tool
itself does no document rendering: it validates the two paths, runs one
scoped automation session, and reports the outcome.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./word2pdf.yaml or ~/.config/word2pdf/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("word2pdf")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "word2pdf"))
		}
	}

	viper.SetEnvPrefix("WORD2PDF")
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
