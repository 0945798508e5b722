// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert runs a batch of documents through an office application,
// producing one PDF per input. Per-file failures are recorded and the batch
// continues; only a failure to start the application aborts a run.
package convert

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/pdiddy/word2pdf/internal/office"
	"github.com/pdiddy/word2pdf/pkg/types"
)

const (
	titleComplete   = "Conversion complete"
	titlePartial    = "Conversion completed with errors"
	titleError      = "Conversion error"
	partialPreamble = "Some files could not be converted.\n\n"
)

// OutputPath returns the PDF path for src inside outDir:
// <outDir>/<basename without extension>.pdf.
func OutputPath(src, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	return filepath.Join(outDir, base+".pdf")
}

// ConvertFile exports src to dst through app and returns the absolute PDF
// path. A file already at dst is removed first. The source document is
// closed without saving whether or not the export succeeded.
func ConvertFile(app office.Application, src, dst string) (pdfPath string, err error) {
	srcAbs, err := filepath.Abs(src)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", src, err)
	}
	dstAbs, err := filepath.Abs(dst)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dst, err)
	}

	if info, err := os.Stat(dstAbs); err == nil {
		if !info.Mode().IsRegular() {
			return "", fmt.Errorf("%s exists and is not a regular file", dstAbs)
		}
		if err := os.Remove(dstAbs); err != nil {
			return "", fmt.Errorf("removing existing %s: %w", dstAbs, err)
		}
	}

	doc, err := app.Open(srcAbs)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := doc.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := doc.ExportPDF(dstAbs); err != nil {
		return "", err
	}
	return dstAbs, nil
}

// Runner converts batches with a single application instance per run.
type Runner struct {
	launcher office.Launcher
	logger   hclog.Logger
}

// NewRunner creates a Runner that launches applications through l.
func NewRunner(l office.Launcher, logger hclog.Logger) *Runner {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Runner{launcher: l, logger: logger.Named("runner")}
}

// Run converts files into outDir in list order, posting log lines, progress,
// status and a completion notice to rep. The application instance is quit
// on every exit path. The returned error is non-nil only when the run could
// not proceed at all; per-file failures are reported in the Summary.
func (r *Runner) Run(ctx context.Context, files []string, outDir string, rep Reporter) (types.Summary, error) {
	summary := types.Summary{Total: len(files)}

	logLine(rep, fmt.Sprintf("Launching %s...", r.launcher.Name()))
	app, err := r.launcher.Launch(ctx)
	if err != nil {
		return summary, goerr.Wrap(err, "failed to launch office application",
			goerr.V("application", r.launcher.Name()))
	}
	defer func() {
		if err := app.Quit(); err != nil {
			r.logger.Warn("quitting application", "error", err)
			logLine(rep, fmt.Sprintf("[WARN] %v", err))
		}
	}()

	total := len(files)
	if total == 0 {
		logLine(rep, "No files to convert.")
		status(rep, "No files to convert.")
		return summary, nil
	}

	logLine(rep, fmt.Sprintf("Converting %d file(s)...", total))
	r.logger.Info("run started", "files", total, "output_dir", outDir)

	for i, src := range files {
		logLine(rep, fmt.Sprintf("Converting: %s", src))
		res := types.ConversionResult{SourcePath: src}

		pdfPath, err := ConvertFile(app, src, OutputPath(src, outDir))
		if err != nil {
			res.Status = types.ConversionFailed
			res.Error = err.Error()
			r.logger.Debug("conversion failed", "file", src, "error", err)
			logLine(rep, fmt.Sprintf("[ERROR] Failed: %s -> %s", src, res.Error))
		} else {
			res.Status = types.ConversionDone
			res.OutputPath = pdfPath
			logLine(rep, fmt.Sprintf("[OK] Saved: %s", pdfPath))
		}
		summary.Record(res)
		progress(rep, float64(i+1)/float64(total)*100.0)
	}

	msg := summary.Message()
	logLine(rep, msg)
	status(rep, msg)
	r.logger.Info("run finished", "converted", summary.Converted, "total", summary.Total)

	if summary.HasFailures() {
		notice(rep, NoticeWarning, titlePartial, partialPreamble+summary.FailureDetails())
	} else {
		notice(rep, NoticeInfo, titleComplete, msg)
	}
	return summary, nil
}

// ReportError posts a systemic failure: the message and its stack trace go
// to the run log, the message becomes the status, and an error notice is
// shown.
func ReportError(rep Reporter, prefix string, err error) {
	msg := fmt.Sprintf("%s: %v", prefix, err)
	logLine(rep, msg)
	for _, line := range traceLines(err) {
		logLine(rep, line)
	}
	status(rep, msg)
	notice(rep, NoticeError, titleError, msg)
}

// traceLines renders err with its stack, one line per entry.
func traceLines(err error) []string {
	trace := strings.TrimSpace(fmt.Sprintf("%+v", err))
	if trace == "" || trace == err.Error() {
		return nil
	}
	return strings.Split(trace, "\n")
}
