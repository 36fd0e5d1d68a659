// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build !windows

package office

import "fmt"

// wordBackend on non-Windows hosts: Word automation does not exist here,
// so the backend reports itself unavailable and Detect falls through to
// LibreOffice.
type wordBackend struct{}

func newWordBackend() Backend { return &wordBackend{} }

func (w *wordBackend) Name() string { return "word" }

func (w *wordBackend) Available() bool { return false }

func (w *wordBackend) Convert(input, output string) error {
	return fmt.Errorf("%w: Word automation requires Windows", ErrUnavailable)
}
