// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data structures for word2pdf: the
// conversion job, its lifecycle states, and typed configuration.
package types

// State tracks the lifecycle of a conversion attempt. Terminal states
// return to StateIdle on the next user action.
type State string

const (
	StateIdle       State = "idle"
	StateConverting State = "converting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// Job is the transient input to one conversion attempt. Nothing about a
// job survives the invocation that carries it.
type Job struct {
	// InputPath is the Word document to convert. Must exist and carry a
	// .doc or .docx extension.
	InputPath string `json:"input_path" yaml:"input_path"`

	// OutputPath is the destination PDF. Its parent directory must exist
	// and be writable.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Backend names the rendering engine for this job.
	Backend Backend `json:"backend" yaml:"backend"`

	// Overwrite allows replacing an existing file at OutputPath.
	Overwrite bool `json:"overwrite" yaml:"overwrite"`
}
