// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build windows

package office

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

const (
	wordProgID = "Word.Application"

	// wdExportFormatPDF is WdExportFormat.wdExportFormatPDF.
	wdExportFormatPDF = 17
	// wdAlertsNone is WdAlertLevel.wdAlertsNone.
	wdAlertsNone = 0
)

// wordLauncher drives Microsoft Word over COM. The COM apartment belongs to
// the OS thread, so Launch locks the calling goroutine to its thread and
// Quit must be called from that same goroutine.
type wordLauncher struct{}

func newWordLauncher() *wordLauncher { return &wordLauncher{} }

func (w *wordLauncher) Name() string { return "Microsoft Word" }

func (w *wordLauncher) Available() bool {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := coInitialize(); err != nil {
		return false
	}
	defer ole.CoUninitialize()

	_, err := ole.ClassIDFrom(wordProgID)
	return err == nil
}

func (w *wordLauncher) Launch(ctx context.Context) (app Application, err error) {
	runtime.LockOSThread()
	if err := coInitialize(); err != nil {
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("initializing COM: %w", err)
	}
	defer func() {
		if err != nil {
			ole.CoUninitialize()
			runtime.UnlockOSThread()
		}
	}()

	unknown, err := oleutil.CreateObject(wordProgID)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", wordProgID, err)
	}
	word, err := unknown.QueryInterface(ole.IID_IDispatch)
	unknown.Release()
	if err != nil {
		return nil, fmt.Errorf("querying IDispatch: %w", err)
	}

	if err := discard(oleutil.PutProperty(word, "Visible", false)); err != nil {
		quitWord(word)
		return nil, fmt.Errorf("hiding Word: %w", err)
	}
	if err := discard(oleutil.PutProperty(word, "DisplayAlerts", wdAlertsNone)); err != nil {
		quitWord(word)
		return nil, fmt.Errorf("disabling Word alerts: %w", err)
	}

	docs, err := oleutil.GetProperty(word, "Documents")
	if err != nil {
		quitWord(word)
		return nil, fmt.Errorf("getting Documents: %w", err)
	}
	return &wordApp{word: word, docs: docs.ToIDispatch()}, nil
}

// coInitialize enters a single-threaded apartment. S_FALSE means the
// thread was already initialized, which still needs a matching uninit.
func coInitialize() error {
	err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED)
	var oleErr *ole.OleError
	if errors.As(err, &oleErr) && oleErr.Code() == 1 {
		return nil
	}
	return err
}

func quitWord(word *ole.IDispatch) {
	discard(oleutil.CallMethod(word, "Quit", false))
	word.Release()
}

// discard frees a call result nobody reads.
func discard(v *ole.VARIANT, err error) error {
	if v != nil {
		v.Clear()
	}
	return err
}

type wordApp struct {
	word *ole.IDispatch
	docs *ole.IDispatch
	quit bool
}

func (a *wordApp) Open(path string) (Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	// Documents.Open(FileName, ConfirmConversions, ReadOnly)
	v, err := oleutil.CallMethod(a.docs, "Open", abs, false, true)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", abs, err)
	}
	// v holds the only reference to the document; Close releases it.
	return &wordDoc{doc: v.ToIDispatch()}, nil
}

func (a *wordApp) Quit() error {
	if a.quit {
		return nil
	}
	a.quit = true
	defer runtime.UnlockOSThread()
	defer ole.CoUninitialize()

	a.docs.Release()
	err := discard(oleutil.CallMethod(a.word, "Quit", false))
	a.word.Release()
	if err != nil {
		return fmt.Errorf("quitting Word: %w", err)
	}
	return nil
}

type wordDoc struct {
	doc *ole.IDispatch
}

func (d *wordDoc) ExportPDF(dst string) error {
	if err := discard(oleutil.CallMethod(d.doc, "ExportAsFixedFormat", dst, wdExportFormatPDF)); err != nil {
		return fmt.Errorf("exporting PDF: %w", err)
	}
	return nil
}

func (d *wordDoc) Close() error {
	defer d.doc.Release()
	if err := discard(oleutil.CallMethod(d.doc, "Close", false)); err != nil {
		return fmt.Errorf("closing document: %w", err)
	}
	return nil
}
