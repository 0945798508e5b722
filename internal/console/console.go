// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package console renders controller events on a terminal for headless runs.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/pdiddy/word2pdf/internal/controller"
	"github.com/pdiddy/word2pdf/internal/convert"
	"github.com/pdiddy/word2pdf/pkg/types"
)

var (
	okColor     = color.New(color.FgGreen)
	failColor   = color.New(color.FgRed)
	noticeColor = color.New(color.FgYellow, color.Bold)
)

// Print drains the controller queue until the run finishes, printing log
// lines and non-informational notices to w. It returns the run summary, or
// nil when the run was aborted.
func Print(w io.Writer, ctrl *controller.Controller) *types.Summary {
	for e := range ctrl.Events() {
		ctrl.Apply(e)
		switch e.Kind {
		case convert.EventLog:
			switch {
			case strings.HasPrefix(e.Text, "[OK]"):
				okColor.Fprintln(w, e.Text)
			case strings.HasPrefix(e.Text, "[ERROR]"):
				failColor.Fprintln(w, e.Text)
			default:
				fmt.Fprintln(w, e.Text)
			}
		case convert.EventNotice:
			if e.Notice.Level == convert.NoticeInfo {
				continue
			}
			fmt.Fprintln(w)
			noticeColor.Fprintln(w, e.Notice.Title)
			fmt.Fprintln(w, e.Notice.Message)
		case convert.EventFinished:
			ctrl.Wait()
			return e.Summary
		}
	}
	return nil
}
