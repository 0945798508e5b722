// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logging

import (
	"bytes"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level string
		want  hclog.Level
	}{
		{"debug", hclog.Debug},
		{"WARN", hclog.Warn},
		{" error ", hclog.Error},
		{"", hclog.Info},
		{"chatty", hclog.Info},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			l := New(tt.level, &buf)
			assert.Equal(t, tt.want, l.GetLevel())
			assert.Equal(t, "word2pdf", l.Name())
		})
	}
}

func TestNewWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	New("info", &buf).Named("runner").Info("run finished", "converted", 2)
	assert.Contains(t, buf.String(), "word2pdf.runner: run finished")
	assert.Contains(t, buf.String(), "converted=2")
}
