// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prompt collects the input/output path pair interactively. It is
// the two-field front surface of the tool: one prompt per path with
// inline validation, a suggested save location derived from the input,
// and an overwrite confirmation when the destination exists.
package prompt

import (
	"errors"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/karlmd/word2pdf/internal/paths"
	"github.com/karlmd/word2pdf/pkg/types"
)

// ErrAborted is returned when the user interrupts or declines a prompt.
var ErrAborted = errors.New("aborted")

// InputConfig configures a single text prompt.
type InputConfig struct {
	Message   string
	Default   string
	Help      string
	Validator func(string) error
}

// Driver abstracts the terminal prompt implementation so the collection
// flow can be tested without a real terminal.
type Driver interface {
	Input(cfg InputConfig) (string, error)
	Confirm(message string, def bool) (bool, error)
}

type surveyDriver struct{}

func (d *surveyDriver) Input(cfg InputConfig) (string, error) {
	var out string
	p := &survey.Input{
		Message: cfg.Message,
		Default: cfg.Default,
		Help:    cfg.Help,
	}
	var opts []survey.AskOpt
	if cfg.Validator != nil {
		opts = append(opts, survey.WithValidator(func(v interface{}) error {
			s, _ := v.(string)
			return cfg.Validator(s)
		}))
	}
	if err := survey.AskOne(p, &out, opts...); err != nil {
		return "", translateErr(err)
	}
	return out, nil
}

func (d *surveyDriver) Confirm(message string, def bool) (bool, error) {
	var out bool
	if err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &out); err != nil {
		return false, translateErr(err)
	}
	return out, nil
}

func translateErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

// Collector runs the interactive path collection flow.
type Collector struct {
	driver Driver
}

// New returns a Collector backed by terminal prompts.
func New() *Collector {
	return &Collector{driver: &surveyDriver{}}
}

// Collect asks for the document to convert and where to save the PDF,
// returning a job ready for the orchestrator. An existing destination
// triggers a confirmation; declining aborts with ErrAborted.
func (c *Collector) Collect() (types.Job, error) {
	input, err := c.driver.Input(InputConfig{
		Message: "Word document to convert:",
		Help:    "Path to an existing .doc or .docx file.",
		Validator: func(s string) error {
			_, err := paths.CheckInput(s)
			return err
		},
	})
	if err != nil {
		return types.Job{}, err
	}

	output, err := c.driver.Input(InputConfig{
		Message: "Save PDF as:",
		Default: paths.DeriveOutput(input),
		Help:    "Destination path ending in .pdf; the directory must exist.",
		Validator: func(s string) error {
			// Existence at the destination is handled by the
			// confirmation below, not the validator.
			_, err := paths.CheckOutput(s, true)
			return err
		},
	})
	if err != nil {
		return types.Job{}, err
	}

	job := types.Job{InputPath: input, OutputPath: output}

	if _, err := os.Stat(output); err == nil {
		replace, err := c.driver.Confirm(output+" already exists. Replace it?", false)
		if err != nil {
			return types.Job{}, err
		}
		if !replace {
			return types.Job{}, ErrAborted
		}
		job.Overwrite = true
	}

	return job, nil
}
