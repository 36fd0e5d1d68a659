package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/karlmd/word2pdf/internal/convert"
	"github.com/karlmd/word2pdf/internal/paths"
	"github.com/karlmd/word2pdf/internal/prompt"
	"github.com/karlmd/word2pdf/internal/status"
	"github.com/karlmd/word2pdf/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [input.docx] [output.pdf]",
	Short: "Convert one Word document to PDF",
	Long: `Convert exports a .doc or .docx file as PDF through the installed
rendering engine. With no arguments it prompts for both paths; with one
argument the PDF is written next to the input. The source document is
opened read-only and never modified.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := resolveConfig(cmd)

		job, err := buildJob(cmd, args, cfg)
		if err != nil {
			return err
		}

		reporter := &status.Writer{W: cmd.OutOrStdout()}
		res := convert.New(cfg, reporter).Convert(job)
		if !res.Ok() {
			return res.Err
		}
		return nil
	},
}

func init() {
	convertCmd.Flags().String("backend", "", "rendering engine: auto, word, or soffice")
	convertCmd.Flags().Bool("overwrite", false, "replace an existing file at the output path")
	convertCmd.Flags().Bool("no-verify", false, "skip the structural check of the produced PDF")
	convertCmd.Flags().BoolP("interactive", "i", false, "prompt for both paths")

	rootCmd.AddCommand(convertCmd)
}

// resolveConfig layers defaults, the config file, and flags, flags last.
func resolveConfig(cmd *cobra.Command) types.ConvertConfig {
	cfg := types.DefaultConvertConfig()

	if viper.IsSet("backend") {
		cfg.Backend = types.Backend(viper.GetString("backend"))
	}
	if viper.IsSet("overwrite") {
		cfg.Overwrite = viper.GetBool("overwrite")
	}
	if viper.IsSet("verify") {
		cfg.Verify = viper.GetBool("verify")
	}
	if viper.IsSet("soffice_path") {
		cfg.SofficePath = viper.GetString("soffice_path")
	}

	f := cmd.Flags()
	if f.Changed("backend") {
		v, _ := f.GetString("backend")
		cfg.Backend = types.Backend(v)
	}
	if f.Changed("overwrite") {
		cfg.Overwrite, _ = f.GetBool("overwrite")
	}
	if f.Changed("no-verify") {
		noVerify, _ := f.GetBool("no-verify")
		cfg.Verify = !noVerify
	}
	return cfg
}

// buildJob assembles the conversion job from arguments or, when none are
// given, the interactive two-field flow.
func buildJob(cmd *cobra.Command, args []string, cfg types.ConvertConfig) (types.Job, error) {
	interactive, _ := cmd.Flags().GetBool("interactive")
	if interactive || len(args) == 0 {
		job, err := prompt.New().Collect()
		if err != nil {
			return types.Job{}, err
		}
		job.Backend = cfg.Backend
		job.Overwrite = job.Overwrite || cfg.Overwrite
		return job, nil
	}

	job := types.Job{
		InputPath: args[0],
		Backend:   cfg.Backend,
		Overwrite: cfg.Overwrite,
	}
	if len(args) == 2 {
		job.OutputPath = args[1]
	} else {
		job.OutputPath = paths.DeriveOutput(args[0])
	}
	return job, nil
}
