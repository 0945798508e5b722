// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the diagnostic logger shared by all subsystems.
package logging

import (
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// New returns a logger named word2pdf writing to w at the given level.
// Unknown levels fall back to info.
func New(level string, w io.Writer) hclog.Logger {
	lvl := hclog.LevelFromString(strings.TrimSpace(level))
	if lvl == hclog.NoLevel {
		lvl = hclog.Info
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "word2pdf",
		Level:  lvl,
		Output: w,
		Color:  hclog.AutoColor,
	})
}
