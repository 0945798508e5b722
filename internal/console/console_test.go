// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package console

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/word2pdf/internal/controller"
	"github.com/pdiddy/word2pdf/internal/convert"
	"github.com/pdiddy/word2pdf/pkg/types"
)

// scriptedRunner replays events and then returns summary or err.
type scriptedRunner struct {
	events  []convert.Event
	summary types.Summary
	err     error
}

func (s *scriptedRunner) Run(ctx context.Context, files []string, outDir string, rep convert.Reporter) (types.Summary, error) {
	for _, e := range s.events {
		rep.Report(e)
	}
	return s.summary, s.err
}

func startRun(t *testing.T, r controller.Runner) *controller.Controller {
	t.Helper()
	dir := t.TempDir()
	ctrl := controller.New(r, nil)
	_, err := ctrl.AddFiles([]string{filepath.Join(dir, "a.docx"), filepath.Join(dir, "b.docx")})
	require.NoError(t, err)
	require.NoError(t, ctrl.Start(context.Background()))
	return ctrl
}

func TestPrint(t *testing.T) {
	ctrl := startRun(t, &scriptedRunner{
		events: []convert.Event{
			{Kind: convert.EventLog, Text: "[OK] Saved: /out/a.pdf"},
			{Kind: convert.EventLog, Text: "[ERROR] Failed: b.docx -> corrupt"},
			{Kind: convert.EventProgress, Progress: 100},
			{Kind: convert.EventNotice, Notice: convert.Notice{
				Level: convert.NoticeWarning, Title: "Conversion completed with errors", Message: "- b.docx: corrupt",
			}},
		},
		summary: types.Summary{Total: 2, Converted: 1, Failures: []types.Failure{{Path: "b.docx", Reason: "corrupt"}}},
	})

	var out bytes.Buffer
	summary := Print(&out, ctrl)
	require.NotNil(t, summary)
	assert.Equal(t, 1, summary.Converted)
	assert.Equal(t, controller.Idle, ctrl.State())
	assert.Equal(t, 100.0, ctrl.Progress())

	text := out.String()
	assert.Contains(t, text, "[OK] Saved: /out/a.pdf")
	assert.Contains(t, text, "[ERROR] Failed: b.docx -> corrupt")
	assert.Contains(t, text, "Conversion completed with errors")
}

func TestPrintSkipsInfoNotice(t *testing.T) {
	ctrl := startRun(t, &scriptedRunner{
		events: []convert.Event{
			{Kind: convert.EventNotice, Notice: convert.Notice{Level: convert.NoticeInfo, Title: "Conversion complete"}},
		},
		summary: types.Summary{Total: 2, Converted: 2},
	})

	var out bytes.Buffer
	require.NotNil(t, Print(&out, ctrl))
	assert.NotContains(t, out.String(), "Conversion complete")
}

func TestPrintAborted(t *testing.T) {
	ctrl := startRun(t, &scriptedRunner{err: errors.New("cannot start Word")})

	var out bytes.Buffer
	assert.Nil(t, Print(&out, ctrl))
	assert.Contains(t, out.String(), "Unexpected error during conversion: cannot start Word")
	assert.Contains(t, out.String(), "Conversion error")
}
