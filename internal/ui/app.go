// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ui is the Fyne window in front of the controller. Widgets read
// controller state; worker events arrive on the controller's queue and are
// applied inside fyne.Do so every widget update happens on the UI thread.
package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/hashicorp/go-hclog"

	"github.com/pdiddy/word2pdf/internal/controller"
	"github.com/pdiddy/word2pdf/internal/convert"
	"github.com/pdiddy/word2pdf/internal/document"
	"github.com/pdiddy/word2pdf/pkg/types"
)

// AppID identifies the application to the Fyne runtime.
const AppID = "io.github.pdiddy.word2pdf"

const (
	windowTitle  = "Word to PDF Converter"
	windowWidth  = 600
	windowHeight = 480
)

// App is the desktop front end.
type App struct {
	ctrl   *controller.Controller
	logger hclog.Logger
	ctx    context.Context

	window fyne.Window

	files       []string
	fileList    *widget.List
	logList     *widget.List
	outputEntry *widget.Entry
	progressBar *widget.ProgressBar
	statusLabel *widget.Label

	addBtn       *widget.Button
	addFolderBtn *widget.Button
	startBtn     *widget.Button
	clearBtn     *widget.Button
	browseBtn    *widget.Button
}

// New builds the window for ctrl inside fa. cfg.OutputDir, when set,
// preselects the output folder.
func New(fa fyne.App, ctrl *controller.Controller, cfg types.ConverterConfig, logger hclog.Logger) *App {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if _, err := ctrl.SetOutputDir(cfg.OutputDir); err != nil {
		logger.Warn("ignoring configured output folder", "error", err)
	}
	a := &App{ctrl: ctrl, logger: logger.Named("ui"), ctx: context.Background()}

	a.window = fa.NewWindow(windowTitle)
	a.window.Resize(fyne.NewSize(windowWidth, windowHeight))
	a.window.SetFixedSize(true)
	a.window.SetContent(a.build())
	a.window.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		paths := make([]string, len(uris))
		for i, u := range uris {
			paths[i] = u.Path()
		}
		a.addPaths(paths)
	})
	a.refresh()
	return a
}

// Run shows the window and blocks until it is closed. Runs started from
// the window use ctx.
func (a *App) Run(ctx context.Context) {
	a.ctx = ctx
	go a.pump()
	a.window.ShowAndRun()
}

// pump forwards worker events to the UI thread in order.
func (a *App) pump() {
	for e := range a.ctrl.Events() {
		fyne.Do(func() { a.apply(e) })
	}
}

func (a *App) apply(e convert.Event) {
	a.ctrl.Apply(e)
	switch e.Kind {
	case convert.EventLog:
		a.logList.Refresh()
		a.logList.ScrollToBottom()
	case convert.EventStatus:
		a.statusLabel.SetText(a.ctrl.Status())
	case convert.EventProgress:
		a.progressBar.SetValue(a.ctrl.Progress())
	case convert.EventNotice:
		a.showNotice(e.Notice)
	case convert.EventFinished:
		a.setControlsEnabled(true)
	}
}

func (a *App) build() fyne.CanvasObject {
	a.addBtn = widget.NewButtonWithIcon("Add Word Files", theme.FileIcon(), a.chooseFile)
	a.addFolderBtn = widget.NewButtonWithIcon("Add Folder", theme.FolderOpenIcon(), a.chooseFolder)
	a.startBtn = widget.NewButtonWithIcon("Start Conversion", theme.MediaPlayIcon(), a.start)
	a.clearBtn = widget.NewButtonWithIcon("Clear List", theme.DeleteIcon(), a.clear)
	a.browseBtn = widget.NewButton("Browse", a.chooseOutputDir)

	a.fileList = widget.NewList(
		func() int { return len(a.files) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, o fyne.CanvasObject) { o.(*widget.Label).SetText(a.files[id]) },
	)
	a.logList = widget.NewList(
		func() int { return len(a.ctrl.Log()) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, o fyne.CanvasObject) {
			lines := a.ctrl.Log()
			if id < len(lines) {
				o.(*widget.Label).SetText(lines[id])
			}
		},
	)

	a.outputEntry = widget.NewEntry()
	a.outputEntry.Disable()

	a.progressBar = widget.NewProgressBar()
	a.progressBar.Max = 100

	a.statusLabel = widget.NewLabel("")

	buttons := container.NewHBox(a.addBtn, a.addFolderBtn, a.startBtn, a.clearBtn)
	outputRow := container.NewBorder(nil, nil, widget.NewLabel("Output Folder:"), a.browseBtn, a.outputEntry)
	lower := container.NewBorder(
		container.NewVBox(outputRow, a.progressBar, a.statusLabel),
		nil, nil, nil,
		widget.NewCard("Log", "", a.logList),
	)
	return container.NewBorder(buttons, nil, nil, nil,
		container.NewGridWithRows(2, widget.NewCard("Selected Files", "", a.fileList), lower))
}

func (a *App) chooseFile() {
	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if r == nil {
			return
		}
		defer r.Close()
		a.addPaths([]string{r.URI().Path()})
	}, a.window)
	d.SetFilter(storage.NewExtensionFileFilter(document.Extensions))
	d.Show()
}

func (a *App) chooseFolder() {
	dialog.ShowFolderOpen(func(dir fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if dir == nil {
			return
		}
		a.addPaths([]string{dir.Path()})
	}, a.window)
}

// addPaths expands folders and adds the result to the list.
func (a *App) addPaths(paths []string) {
	docs, err := document.Collect(paths)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	if len(paths) > 0 && len(docs) == 0 {
		a.ctrl.NoDocumentsFound()
		a.refresh()
		return
	}
	if _, err := a.ctrl.AddFiles(docs); err != nil {
		a.showNotice(controller.NoticeFor(err))
		return
	}
	a.refresh()
}

func (a *App) clear() {
	if err := a.ctrl.ClearFiles(); err != nil {
		a.showNotice(controller.NoticeFor(err))
		return
	}
	a.refresh()
}

func (a *App) chooseOutputDir() {
	dialog.ShowFolderOpen(func(dir fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if dir == nil {
			return
		}
		if _, err := a.ctrl.SetOutputDir(dir.Path()); err != nil {
			a.showNotice(controller.NoticeFor(err))
			return
		}
		a.refresh()
	}, a.window)
}

func (a *App) start() {
	if err := a.ctrl.Start(a.ctx); err != nil {
		a.showNotice(controller.NoticeFor(err))
		return
	}
	a.setControlsEnabled(false)
	a.refresh()
}

// refresh redraws every widget from controller state.
func (a *App) refresh() {
	a.files = a.ctrl.Files()
	a.fileList.Refresh()
	a.logList.Refresh()
	a.outputEntry.SetText(a.ctrl.OutputDir())
	a.progressBar.SetValue(a.ctrl.Progress())
	a.statusLabel.SetText(a.ctrl.Status())
}

func (a *App) setControlsEnabled(enabled bool) {
	for _, b := range []*widget.Button{a.addBtn, a.addFolderBtn, a.startBtn, a.clearBtn, a.browseBtn} {
		if enabled {
			b.Enable()
		} else {
			b.Disable()
		}
	}
}

func (a *App) showNotice(n convert.Notice) {
	switch n.Level {
	case convert.NoticeError:
		a.logger.Error(n.Title, "message", n.Message)
		dialog.ShowCustom(n.Title, "OK", container.NewHBox(
			widget.NewIcon(theme.ErrorIcon()), widget.NewLabel(n.Message)), a.window)
	case convert.NoticeWarning:
		a.logger.Warn(n.Title, "message", n.Message)
		dialog.ShowCustom(n.Title, "OK", container.NewHBox(
			widget.NewIcon(theme.WarningIcon()), widget.NewLabel(n.Message)), a.window)
	default:
		dialog.ShowInformation(n.Title, n.Message, a.window)
	}
}
