// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package controller holds the selection and run state behind the GUI.
// All methods except Report are meant to be called from the UI thread. The
// conversion worker only posts events; the UI drains Events and folds each
// one back in with Apply.
package controller

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"slices"
	"sync"

	"github.com/hashicorp/go-hclog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/pdiddy/word2pdf/internal/convert"
	"github.com/pdiddy/word2pdf/pkg/types"
)

// RunState tells whether a conversion is in flight.
type RunState int

const (
	Idle RunState = iota
	Running
)

func (s RunState) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

var (
	ErrRunActive        = errors.New("a conversion is already running")
	ErrNoFiles          = errors.New("no files selected")
	ErrNoOutputDir      = errors.New("no output folder selected")
	ErrOutputDirMissing = errors.New("output folder does not exist")
)

const (
	initialStatus = "Select Word files to begin."
	eventBuffer   = 256
	errPrefix     = "Unexpected error during conversion"
)

// Runner converts a snapshot of files into outDir, posting events to rep.
type Runner interface {
	Run(ctx context.Context, files []string, outDir string, rep convert.Reporter) (types.Summary, error)
}

// Controller owns the file list, output folder, progress, status, log and
// run state.
type Controller struct {
	runner Runner
	logger hclog.Logger
	events chan convert.Event
	wg     sync.WaitGroup

	mu        sync.Mutex
	files     []string
	seen      map[string]struct{}
	outputDir string
	progress  float64
	status    string
	log       []string
	state     RunState
}

// New creates an idle Controller that starts runs with r.
func New(r Runner, logger hclog.Logger) *Controller {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Controller{
		runner: r,
		logger: logger.Named("controller"),
		events: make(chan convert.Event, eventBuffer),
		seen:   make(map[string]struct{}),
		status: initialStatus,
	}
}

// AddFiles appends the paths not already listed, compared after
// normalization, and returns how many were added. The first file's
// directory becomes the output folder if none is set.
func (c *Controller) AddFiles(paths []string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Running {
		return 0, ErrRunActive
	}

	added := 0
	for _, p := range paths {
		norm := filepath.Clean(p)
		if _, dup := c.seen[norm]; dup {
			continue
		}
		c.seen[norm] = struct{}{}
		c.files = append(c.files, norm)
		added++
	}

	if len(c.files) > 0 && c.outputDir == "" {
		c.outputDir = filepath.Dir(c.files[0])
	}

	switch {
	case added > 0:
		c.status = fmt.Sprintf("Loaded %d new file(s). Total: %d", added, len(c.files))
	case len(paths) > 0:
		c.status = "No new files added (duplicates skipped)."
	}
	return added, nil
}

// ClearFiles empties the file list and resets progress.
func (c *Controller) ClearFiles() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Running {
		return ErrRunActive
	}
	c.files = nil
	c.seen = make(map[string]struct{})
	c.progress = 0
	c.status = "Cleared file list."
	return nil
}

// NoDocumentsFound records that a selection held no Word documents.
func (c *Controller) NoDocumentsFound() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = "No Word documents found."
}

// SetOutputDir sets the output folder. An empty dir is ignored and reports
// false; existence is checked only when a run starts.
func (c *Controller) SetOutputDir(dir string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Running {
		return false, ErrRunActive
	}
	if dir == "" {
		return false, nil
	}
	c.outputDir = filepath.Clean(dir)
	c.status = "Output folder set to: " + c.outputDir
	return true, nil
}

// Start validates the selection and launches a run on its own goroutine.
// A validation error leaves every field untouched.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	if err := c.validate(); err != nil {
		c.mu.Unlock()
		return err
	}
	files := slices.Clone(c.files)
	outDir := c.outputDir
	c.progress = 0
	c.log = nil
	c.status = "Starting conversion..."
	c.state = Running
	c.wg.Add(1)
	c.mu.Unlock()

	c.logger.Debug("starting run", "files", len(files), "output_dir", outDir)
	go c.run(ctx, files, outDir)
	return nil
}

func (c *Controller) validate() error {
	if c.state == Running {
		return ErrRunActive
	}
	if len(c.files) == 0 {
		return ErrNoFiles
	}
	if c.outputDir == "" {
		return ErrNoOutputDir
	}
	info, err := os.Stat(c.outputDir)
	if err != nil || !info.IsDir() {
		return ErrOutputDirMissing
	}
	return nil
}

// run is the worker. EventFinished is posted on every exit path, including
// a panic inside the runner.
func (c *Controller) run(ctx context.Context, files []string, outDir string) {
	var summary *types.Summary
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("panic in conversion worker", "recover", r, "stack", string(debug.Stack()))
			convert.ReportError(c, errPrefix, goerr.New(fmt.Sprintf("panic: %v", r)))
		}
		c.Report(convert.Event{Kind: convert.EventFinished, Summary: summary})
		c.wg.Done()
	}()

	s, err := c.runner.Run(ctx, files, outDir, c)
	if err != nil {
		c.logger.Error("conversion aborted", "error", err)
		convert.ReportError(c, errPrefix, err)
		return
	}
	summary = &s
}

// Report queues e for the UI thread. It is the only method the worker uses.
func (c *Controller) Report(e convert.Event) {
	c.events <- e
}

// Events is the queue the UI drains.
func (c *Controller) Events() <-chan convert.Event {
	return c.events
}

// Apply folds a worker event into the controller state. EventFinished
// returns the controller to Idle unconditionally.
func (c *Controller) Apply(e convert.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch e.Kind {
	case convert.EventLog:
		c.log = append(c.log, e.Text)
	case convert.EventStatus:
		c.status = e.Text
	case convert.EventProgress:
		c.progress = e.Progress
	case convert.EventFinished:
		c.state = Idle
	}
}

// Wait blocks until the current worker, if any, has exited.
func (c *Controller) Wait() {
	c.wg.Wait()
}

func (c *Controller) Files() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.files)
}

func (c *Controller) OutputDir() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.outputDir
}

func (c *Controller) Progress() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.progress
}

func (c *Controller) Status() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

func (c *Controller) Log() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.log)
}

func (c *Controller) State() RunState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}
