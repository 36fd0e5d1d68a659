package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/karlmd/word2pdf/internal/office"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check which rendering engines are available on this host",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := office.Options{SofficePath: viper.GetString("soffice_path")}

		any := false
		for _, p := range office.Probe(opts) {
			mark := "missing"
			if p.Available {
				mark = "ok"
				any = true
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", p.Name, mark)
		}
		if !any {
			return fmt.Errorf("no rendering engine available: install Microsoft Word or LibreOffice")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
