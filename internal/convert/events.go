// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import "github.com/pdiddy/word2pdf/pkg/types"

// EventKind identifies what an Event carries.
type EventKind int

const (
	// EventLog appends Text to the run log.
	EventLog EventKind = iota
	// EventStatus replaces the status line with Text.
	EventStatus
	// EventProgress sets the progress bar to Progress (0-100).
	EventProgress
	// EventNotice asks the UI to show Notice as a dialog.
	EventNotice
	// EventFinished marks the end of a run, on every exit path.
	EventFinished
)

// NoticeLevel selects the dialog style.
type NoticeLevel int

const (
	NoticeInfo NoticeLevel = iota
	NoticeWarning
	NoticeError
)

// Notice is the payload of a blocking dialog.
type Notice struct {
	Level   NoticeLevel
	Title   string
	Message string
}

// Event is a UI update posted by the worker. Workers never touch UI state
// directly; they post Events and the UI applies them on its own thread.
type Event struct {
	Kind     EventKind
	Text     string
	Progress float64
	Notice   Notice
	// Summary is set on EventFinished when the batch loop completed.
	Summary *types.Summary
}

// Reporter receives Events from a run.
type Reporter interface {
	Report(Event)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(Event)

func (f ReporterFunc) Report(e Event) { f(e) }

func logLine(r Reporter, text string) {
	r.Report(Event{Kind: EventLog, Text: text})
}

func status(r Reporter, text string) {
	r.Report(Event{Kind: EventStatus, Text: text})
}

func progress(r Reporter, pct float64) {
	r.Report(Event{Kind: EventProgress, Progress: pct})
}

func notice(r Reporter, level NoticeLevel, title, msg string) {
	r.Report(Event{Kind: EventNotice, Notice: Notice{Level: level, Title: title, Message: msg}})
}
