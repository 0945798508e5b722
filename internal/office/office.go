// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package office drives an external office application to export documents
// as PDF. Two backends exist: Microsoft Word over COM automation (Windows
// only) and LibreOffice in headless mode.
package office

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/pdiddy/word2pdf/pkg/types"
)

// ErrUnsupported is returned by backends that cannot run on this platform.
var ErrUnsupported = errors.New("backend not supported on this platform")

// Launcher starts an application instance. A Launcher holds no process
// state; each Launch yields an independent instance.
type Launcher interface {
	// Name returns a human readable application name ("Microsoft Word").
	Name() string

	// Available reports whether the application can be launched here.
	Available() bool

	// Launch starts a hidden application instance. The caller must Quit it.
	Launch(ctx context.Context) (Application, error)
}

// Application is a running office application instance.
type Application interface {
	// Open opens the document at path read-only.
	Open(path string) (Document, error)

	// Quit terminates the instance and releases everything it holds.
	Quit() error
}

// Document is an open source document.
type Document interface {
	// ExportPDF writes a fixed-format PDF rendering of the document to dst.
	ExportPDF(dst string) error

	// Close closes the document, discarding any changes.
	Close() error
}

// Detect returns the launcher for the configured backend. BackendAuto picks
// Word when it is usable and falls back to LibreOffice.
func Detect(cfg types.ConverterConfig) (Launcher, error) {
	return detect(cfg, defaultExec)
}

func detect(cfg types.ConverterConfig, exec executor) (Launcher, error) {
	word := newWordLauncher()
	lo := newLibreOffice(cfg.SofficePath, exec)

	switch cfg.Backend {
	case types.BackendWord:
		if !word.Available() {
			return nil, fmt.Errorf("%s is not available on %s: %w", word.Name(), runtime.GOOS, ErrUnsupported)
		}
		return word, nil
	case types.BackendLibreOffice:
		if !lo.Available() {
			return nil, fmt.Errorf("%s binary %q not found on PATH", lo.Name(), lo.bin())
		}
		return lo, nil
	case types.BackendAuto, "":
		if word.Available() {
			return word, nil
		}
		if lo.Available() {
			return lo, nil
		}
		return nil, fmt.Errorf(
			"no office application available: neither %s nor %s found",
			word.Name(), lo.Name(),
		)
	default:
		return nil, fmt.Errorf("unknown backend %q (want auto, word, or libreoffice)", cfg.Backend)
	}
}

// Launchers returns every known backend, for listing availability.
func Launchers(cfg types.ConverterConfig) []Launcher {
	return []Launcher{newWordLauncher(), newLibreOffice(cfg.SofficePath, defaultExec)}
}

// Unavailable returns a Launcher whose Launch always fails with err. The
// GUI uses it when detection fails so the failure surfaces when a run starts
// instead of preventing the window from opening.
func Unavailable(name string, err error) Launcher {
	return &unavailable{name: name, err: err}
}

type unavailable struct {
	name string
	err  error
}

func (u *unavailable) Name() string    { return u.name }
func (u *unavailable) Available() bool { return false }

func (u *unavailable) Launch(ctx context.Context) (Application, error) {
	return nil, u.err
}
