// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Backend identifies the office application that performs the export.
type Backend string

const (
	BackendAuto        Backend = "auto"
	BackendWord        Backend = "word"
	BackendLibreOffice Backend = "libreoffice"
)

// ConverterConfig holds settings shared by the GUI and the headless convert
// command. Values come from flags, the config file, and WORD2PDF_* env vars.
type ConverterConfig struct {
	// Backend selects the office application: auto, word, or libreoffice.
	Backend Backend `json:"backend" yaml:"backend"`

	// SofficePath overrides the LibreOffice binary looked up on PATH.
	SofficePath string `json:"soffice,omitempty" yaml:"soffice,omitempty"`

	// OutputDir is the initial output folder. Empty means "directory of the
	// first added file".
	OutputDir string `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`

	// LogLevel is the diagnostic log level (trace, debug, info, warn, error).
	LogLevel string `json:"log_level" yaml:"log_level"`
}
