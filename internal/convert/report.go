// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/word2pdf/pkg/types"
)

// Report is the YAML document written by the headless convert command.
type Report struct {
	GeneratedAt   time.Time `yaml:"generated_at"`
	Application   string    `yaml:"application"`
	OutputDir     string    `yaml:"output_dir"`
	types.Summary `yaml:",inline"`
}

// WriteReport marshals the report to YAML at path.
func WriteReport(path string, r Report) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
