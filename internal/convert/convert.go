// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert runs one guarded conversion attempt: validate the path
// pair, acquire a rendering backend, export, verify, and report the
// outcome. The orchestrator owns the single-flight guarantee; at most one
// automation session exists at a time.
package convert

import (
	"errors"
	"sync"

	"github.com/karlmd/word2pdf/internal/office"
	"github.com/karlmd/word2pdf/internal/paths"
	"github.com/karlmd/word2pdf/internal/pdfverify"
	"github.com/karlmd/word2pdf/internal/status"
	"github.com/karlmd/word2pdf/pkg/types"
)

// ErrBusy rejects a request arriving while another conversion is running.
// The rejected request is never queued; the caller re-initiates.
var ErrBusy = errors.New("a conversion is already in progress")

// FailureKind classifies a failed attempt. Exactly one kind applies.
type FailureKind string

const (
	FailureNone               FailureKind = ""
	FailureInvalidInput       FailureKind = "invalid_input"
	FailureInvalidOutput      FailureKind = "invalid_output"
	FailureServiceUnavailable FailureKind = "service_unavailable"
	FailureConversionFailed   FailureKind = "conversion_failed"
	FailureBusy               FailureKind = "busy"
)

// Result is the outcome of one conversion attempt.
type Result struct {
	// Output is the absolute destination path. Set only on success.
	Output string

	// Backend names the engine that served the attempt, when one was
	// reached.
	Backend string

	// Kind classifies the failure; FailureNone on success.
	Kind FailureKind

	// Err is the underlying error; nil on success.
	Err error
}

// Ok reports whether the attempt succeeded.
func (r Result) Ok() bool { return r.Kind == FailureNone }

// Orchestrator executes conversion attempts one at a time and pushes
// state transitions to a status reporter. The state machine is
// Idle -> Converting -> {Succeeded, Failed}; a terminal state returns to
// converting on the next accepted request.
type Orchestrator struct {
	cfg      types.ConvertConfig
	reporter status.Reporter

	// detect and verify are seams for tests; production wiring uses
	// office.Detect and pdfverify.Verify.
	detect func(kind types.Backend) (office.Backend, error)
	verify func(path string) error

	// run serializes attempts; a request finding it held is rejected.
	run sync.Mutex

	mu    sync.Mutex
	state types.State
}

// New builds an orchestrator for cfg reporting transitions to reporter.
func New(cfg types.ConvertConfig, reporter status.Reporter) *Orchestrator {
	if reporter == nil {
		reporter = status.Nop()
	}
	o := &Orchestrator{
		cfg:      cfg,
		reporter: reporter,
		detect: func(kind types.Backend) (office.Backend, error) {
			return office.Detect(kind, office.Options{SofficePath: cfg.SofficePath})
		},
		state: types.StateIdle,
	}
	if cfg.Verify {
		o.verify = pdfverify.Verify
	}
	return o
}

// State returns the current lifecycle state.
func (o *Orchestrator) State() types.State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Convert performs exactly one attempt for job. Validation runs before
// any automation session is acquired; the session never outlives the
// call. A request arriving while another runs gets FailureBusy without
// disturbing the in-flight attempt.
func (o *Orchestrator) Convert(job types.Job) Result {
	if !o.run.TryLock() {
		return Result{Kind: FailureBusy, Err: ErrBusy}
	}
	defer o.run.Unlock()

	o.setState(types.StateConverting, "")

	pair, err := paths.Validate(job.InputPath, job.OutputPath, job.Overwrite)
	if err != nil {
		return o.fail(classifyValidation(err), err)
	}

	kind := job.Backend
	if kind == "" {
		kind = o.cfg.Backend
	}
	backend, err := o.detect(kind)
	if err != nil {
		return o.fail(FailureServiceUnavailable, err)
	}

	if err := backend.Convert(pair.Input, pair.Output); err != nil {
		res := o.fail(classifyConvert(err), err)
		res.Backend = backend.Name()
		return res
	}

	if o.verify != nil {
		if err := o.verify(pair.Output); err != nil {
			res := o.fail(FailureConversionFailed, err)
			res.Backend = backend.Name()
			return res
		}
	}

	o.setState(types.StateSucceeded, pair.Output)
	return Result{Output: pair.Output, Backend: backend.Name()}
}

func (o *Orchestrator) fail(kind FailureKind, err error) Result {
	o.setState(types.StateFailed, err.Error())
	return Result{Kind: kind, Err: err}
}

func (o *Orchestrator) setState(s types.State, detail string) {
	o.mu.Lock()
	o.state = s
	o.mu.Unlock()
	o.reporter.Report(s, detail)
}

func classifyValidation(err error) FailureKind {
	if errors.Is(err, paths.ErrInvalidOutput) {
		return FailureInvalidOutput
	}
	return FailureInvalidInput
}

func classifyConvert(err error) FailureKind {
	if errors.Is(err, office.ErrUnavailable) {
		return FailureServiceUnavailable
	}
	return FailureConversionFailed
}
