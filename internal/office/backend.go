// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package office implements detection and driving of the installed
// document rendering engines: Microsoft Word over its automation
// interface, and headless LibreOffice. Both sit behind one Backend
// interface so the orchestrator never touches engine specifics.
package office

import (
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/karlmd/word2pdf/pkg/types"
)

// ErrUnavailable marks failures to reach a rendering engine at all, as
// opposed to an engine that ran and rejected the document.
var ErrUnavailable = errors.New("automation service unavailable")

// Backend converts a Word document to PDF through one rendering engine.
// Convert owns the full engine session for the attempt: acquire, export,
// and release on every exit path.
type Backend interface {
	// Name returns the backend name ("word" or "soffice").
	Name() string

	// Available reports whether the engine can be reached on this host.
	Available() bool

	// Convert renders the document at input to a PDF at output. Both
	// paths must be absolute. One call is one engine session.
	Convert(input, output string) error
}

// Options carries host-specific overrides for backend construction.
type Options struct {
	// SofficePath overrides the LibreOffice binary looked up on PATH.
	SofficePath string
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(stdout io.Writer, name string, args ...string) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Run(stdout io.Writer, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stdout
	return cmd.Run()
}

var defaultExec executor = &osExecutor{}

// ProbeResult reports whether one engine can be reached on this host.
type ProbeResult struct {
	Name      string
	Available bool
}

// Probe checks every known engine. Used by the doctor command; Detect is
// the conversion path.
func Probe(opts Options) []ProbeResult {
	word := newWordBackend()
	soffice := newSofficeBackend(defaultExec, opts.SofficePath)
	return []ProbeResult{
		{Name: word.Name(), Available: word.Available()},
		{Name: soffice.Name(), Available: soffice.Available()},
	}
}

// Detect returns the backend for kind. BackendAuto prefers Word and falls
// back to LibreOffice; an explicit kind is returned only if it is
// available. Wraps ErrUnavailable when no engine can serve.
func Detect(kind types.Backend, opts Options) (Backend, error) {
	return detect(kind, newWordBackend(), newSofficeBackend(defaultExec, opts.SofficePath))
}

func detect(kind types.Backend, word, soffice Backend) (Backend, error) {
	switch kind {
	case types.BackendWord:
		if !word.Available() {
			return nil, fmt.Errorf("%w: Word automation not present on this host", ErrUnavailable)
		}
		return word, nil

	case types.BackendSoffice:
		if !soffice.Available() {
			return nil, fmt.Errorf("%w: LibreOffice not found", ErrUnavailable)
		}
		return soffice, nil

	case types.BackendAuto, "":
		if word.Available() {
			return word, nil
		}
		if soffice.Available() {
			return soffice, nil
		}
		return nil, fmt.Errorf(
			"%w: neither Word automation nor LibreOffice is available", ErrUnavailable)

	default:
		return nil, fmt.Errorf("%w: unknown backend %q", ErrUnavailable, kind)
	}
}
