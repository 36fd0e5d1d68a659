// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package paths collects and validates the input/output path pair for a
// conversion attempt. Validation runs before any automation session is
// acquired, so bad paths never cost a rendering-engine launch.
package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for the two validation failure kinds. Callers classify
// with errors.Is; the wrapped detail carries the offending path.
var (
	// ErrInvalidInput marks a missing, unreadable, or non-Word input path.
	ErrInvalidInput = errors.New("invalid input path")

	// ErrInvalidOutput marks an unwritable or malformed output path.
	ErrInvalidOutput = errors.New("invalid output path")
)

// probeName is the temporary file written to confirm directory write access.
const probeName = ".word2pdf-write-probe"

// inputExts lists the accepted input document extensions, lower-cased.
var inputExts = map[string]bool{
	".doc":  true,
	".docx": true,
}

// Pair holds the validated source document and destination PDF paths.
type Pair struct {
	Input  string
	Output string
}

// Validate checks both paths and returns a Pair with absolute paths on
// success. Input failures wrap ErrInvalidInput, output failures wrap
// ErrInvalidOutput. When overwrite is false an existing file at the output
// path is a validation failure.
func Validate(input, output string, overwrite bool) (Pair, error) {
	in, err := CheckInput(input)
	if err != nil {
		return Pair{}, err
	}
	out, err := CheckOutput(output, overwrite)
	if err != nil {
		return Pair{}, err
	}
	return Pair{Input: in, Output: out}, nil
}

// DeriveOutput suggests a destination for input: a sibling file with the
// same base name and a .pdf extension.
func DeriveOutput(input string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(filepath.Dir(input), base+".pdf")
}

// CheckInput validates the input document path alone and returns it
// absolute. Failures wrap ErrInvalidInput.
func CheckInput(input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", fmt.Errorf("%w: no input document selected", ErrInvalidInput)
	}

	abs, err := filepath.Abs(input)
	if err != nil {
		return "", fmt.Errorf("%w: resolving %s: %v", ErrInvalidInput, input, err)
	}

	ext := strings.ToLower(filepath.Ext(abs))
	if !inputExts[ext] {
		return "", fmt.Errorf("%w: %s is not a .doc or .docx file", ErrInvalidInput, abs)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %s does not exist", ErrInvalidInput, abs)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrInvalidInput, abs)
	}

	f, err := os.Open(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %s is not readable: %v", ErrInvalidInput, abs, err)
	}
	f.Close()

	return abs, nil
}

// CheckOutput validates the destination path alone and returns it
// absolute. Failures wrap ErrInvalidOutput.
func CheckOutput(output string, overwrite bool) (string, error) {
	if strings.TrimSpace(output) == "" {
		return "", fmt.Errorf("%w: no save location selected", ErrInvalidOutput)
	}

	abs, err := filepath.Abs(output)
	if err != nil {
		return "", fmt.Errorf("%w: resolving %s: %v", ErrInvalidOutput, output, err)
	}

	if strings.ToLower(filepath.Ext(abs)) != ".pdf" {
		return "", fmt.Errorf("%w: %s does not end in .pdf", ErrInvalidOutput, abs)
	}

	dir := filepath.Dir(abs)
	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("%w: directory %s does not exist", ErrInvalidOutput, dir)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrInvalidOutput, dir)
	}

	if err := probeWritable(dir); err != nil {
		return "", fmt.Errorf("%w: directory %s is not writable: %v", ErrInvalidOutput, dir, err)
	}

	if _, err := os.Stat(abs); err == nil && !overwrite {
		return "", fmt.Errorf("%w: %s already exists (enable overwrite to replace it)", ErrInvalidOutput, abs)
	}

	return abs, nil
}

// probeWritable confirms write access by creating and removing a temporary
// file, the same check the permission bits alone cannot give on every
// filesystem.
func probeWritable(dir string) error {
	probe := filepath.Join(dir, probeName)
	f, err := os.Create(probe)
	if err != nil {
		return err
	}
	f.Close()
	return os.Remove(probe)
}
