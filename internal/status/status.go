// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package status maps conversion states to the user-facing status line.
// It holds no logic beyond the mapping; the orchestrator decides when a
// state changes, this package decides only what the user reads.
package status

import (
	"fmt"
	"io"

	"github.com/karlmd/word2pdf/pkg/types"
)

// Message returns the status line for a state. detail carries the output
// path on success and the failure reason on failure; it is ignored for
// the other states.
func Message(s types.State, detail string) string {
	switch s {
	case types.StateIdle:
		return "Ready. Select files to begin."
	case types.StateConverting:
		return "Converting... Please wait."
	case types.StateSucceeded:
		if detail == "" {
			return "Conversion complete."
		}
		return fmt.Sprintf("Conversion complete. PDF saved to %s.", detail)
	case types.StateFailed:
		if detail == "" {
			return "Conversion failed."
		}
		return fmt.Sprintf("Conversion failed: %s", detail)
	default:
		return string(s)
	}
}

// Reporter receives state transitions from the orchestrator.
type Reporter interface {
	Report(s types.State, detail string)
}

// Writer is a Reporter printing one status line per transition.
type Writer struct {
	W io.Writer
}

func (w *Writer) Report(s types.State, detail string) {
	fmt.Fprintln(w.W, Message(s, detail))
}

// nopReporter discards transitions.
type nopReporter struct{}

func (nopReporter) Report(types.State, string) {}

// Nop returns a Reporter that discards every transition.
func Nop() Reporter { return nopReporter{} }
