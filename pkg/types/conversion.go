// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ConversionStatus indicates the outcome of converting one document.
type ConversionStatus string

const (
	ConversionDone   ConversionStatus = "converted"
	ConversionFailed ConversionStatus = "failed"
)

// ConversionResult is the outcome for a single input document.
type ConversionResult struct {
	// SourcePath is the input document as it appeared in the file list.
	SourcePath string `json:"source_path" yaml:"source_path"`

	// OutputPath is the absolute path of the written PDF. Empty on failure.
	OutputPath string `json:"output_path,omitempty" yaml:"output_path,omitempty"`

	Status ConversionStatus `json:"status" yaml:"status"`

	// Error holds the failure message when Status is ConversionFailed.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failure pairs a failed input with the reason it failed.
type Failure struct {
	Path   string `json:"path" yaml:"path"`
	Reason string `json:"reason" yaml:"reason"`
}

// Summary aggregates the results of one run.
type Summary struct {
	Total     int                `json:"total" yaml:"total"`
	Converted int                `json:"converted" yaml:"converted"`
	Failures  []Failure          `json:"failures,omitempty" yaml:"failures,omitempty"`
	Results   []ConversionResult `json:"results" yaml:"results"`
}

// Record appends a result and updates the counters.
func (s *Summary) Record(r ConversionResult) {
	s.Results = append(s.Results, r)
	if r.Status == ConversionDone {
		s.Converted++
		return
	}
	s.Failures = append(s.Failures, Failure{Path: r.SourcePath, Reason: r.Error})
}

// HasFailures reports whether any document failed conversion.
func (s Summary) HasFailures() bool {
	return len(s.Failures) > 0
}

// Message returns the one-line run summary shown in the status bar.
func (s Summary) Message() string {
	msg := fmt.Sprintf("Converted %d of %d file(s).", s.Converted, s.Total)
	if s.HasFailures() {
		msg += " Check log for details."
	}
	return msg
}

// FailureDetails lists each failure as "- <basename>: <reason>", one per line.
func (s Summary) FailureDetails() string {
	lines := make([]string, len(s.Failures))
	for i, f := range s.Failures {
		lines[i] = fmt.Sprintf("- %s: %s", filepath.Base(f.Path), f.Reason)
	}
	return strings.Join(lines, "\n")
}
