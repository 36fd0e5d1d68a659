// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdfverify checks an exported PDF before the conversion is
// reported as a success: the file must exist, be non-empty, and parse as
// a PDF. The rendering engine reporting success is necessary but not
// sufficient; LibreOffice in particular can exit zero around a truncated
// write.
package pdfverify

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Verify returns nil when path holds a structurally valid, non-empty PDF.
func Verify(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("exported PDF missing at %s: %w", path, err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("exported PDF at %s is empty", path)
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if err := api.ValidateFile(path, conf); err != nil {
		return fmt.Errorf("exported file at %s is not a valid PDF: %w", path, err)
	}
	return nil
}
