// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ui

import (
	"context"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/word2pdf/internal/controller"
	"github.com/pdiddy/word2pdf/internal/convert"
	"github.com/pdiddy/word2pdf/pkg/types"
)

type runnerFunc func(ctx context.Context, files []string, outDir string, rep convert.Reporter) (types.Summary, error)

func (f runnerFunc) Run(ctx context.Context, files []string, outDir string, rep convert.Reporter) (types.Summary, error) {
	return f(ctx, files, outDir, rep)
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	ctrl := controller.New(runnerFunc(func(_ context.Context, files []string, _ string, _ convert.Reporter) (types.Summary, error) {
		return types.Summary{Total: len(files), Converted: len(files)}, nil
	}), nil)
	return New(test.NewTempApp(t), ctrl, types.ConverterConfig{}, nil)
}

// labels returns the text of every label laid out under o.
func labels(o fyne.CanvasObject) []string {
	var out []string
	for _, obj := range test.LaidOutObjects(o) {
		if l, ok := obj.(*widget.Label); ok {
			out = append(out, l.Text)
		}
	}
	return out
}

func TestFinishedReenablesControls(t *testing.T) {
	a := newTestApp(t)
	buttons := []*widget.Button{a.addBtn, a.addFolderBtn, a.startBtn, a.clearBtn, a.browseBtn}

	a.setControlsEnabled(false)
	for _, b := range buttons {
		require.True(t, b.Disabled(), b.Text)
	}

	a.apply(convert.Event{Kind: convert.EventFinished})
	for _, b := range buttons {
		assert.False(t, b.Disabled(), b.Text)
	}
	assert.Equal(t, controller.Idle, a.ctrl.State())
}

func TestApplyUpdatesWidgets(t *testing.T) {
	a := newTestApp(t)

	a.apply(convert.Event{Kind: convert.EventStatus, Text: "Converted 1 of 2 file(s)."})
	a.apply(convert.Event{Kind: convert.EventProgress, Progress: 50})

	assert.Equal(t, "Converted 1 of 2 file(s).", a.statusLabel.Text)
	assert.InDelta(t, 50.0, a.progressBar.Value, 1e-9)
}

func TestErrorNoticeKeepsTitle(t *testing.T) {
	a := newTestApp(t)

	a.showNotice(convert.Notice{
		Level:   convert.NoticeError,
		Title:   "Conversion error",
		Message: "Unexpected error during conversion: launch failed",
	})

	top := a.window.Canvas().Overlays().Top()
	require.NotNil(t, top)
	got := labels(top)
	assert.Contains(t, got, "Conversion error")
	assert.Contains(t, got, "Unexpected error during conversion: launch failed")
}

func TestAddPathsWithoutDocuments(t *testing.T) {
	a := newTestApp(t)

	a.addPaths([]string{t.TempDir()})

	assert.Equal(t, "No Word documents found.", a.ctrl.Status())
	assert.Equal(t, "No Word documents found.", a.statusLabel.Text)
	assert.Empty(t, a.ctrl.Files())

	a.refresh()
	assert.Equal(t, "No Word documents found.", a.statusLabel.Text)
}
