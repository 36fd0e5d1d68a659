// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Backend identifies the document rendering engine driven for conversion.
type Backend string

const (
	// BackendAuto selects Word automation when available, LibreOffice otherwise.
	BackendAuto Backend = "auto"

	// BackendWord drives the installed Microsoft Word application through
	// its automation interface. Windows only.
	BackendWord Backend = "word"

	// BackendSoffice renders through a headless LibreOffice process.
	BackendSoffice Backend = "soffice"
)

// ConvertConfig holds settings for a conversion attempt.
type ConvertConfig struct {
	// Backend selects the rendering engine: auto, word, or soffice.
	Backend Backend `json:"backend" yaml:"backend"`

	// Overwrite allows replacing an existing file at the output path.
	// When false, an existing output file fails validation.
	Overwrite bool `json:"overwrite" yaml:"overwrite"`

	// Verify runs a structural check on the produced PDF after export.
	Verify bool `json:"verify" yaml:"verify"`

	// SofficePath overrides the LibreOffice binary looked up on PATH.
	SofficePath string `json:"soffice_path,omitempty" yaml:"soffice_path,omitempty"`
}

// DefaultConvertConfig returns the configuration used when no config file
// or flags override it.
func DefaultConvertConfig() ConvertConfig {
	return ConvertConfig{
		Backend:   BackendAuto,
		Overwrite: false,
		Verify:    true,
	}
}
