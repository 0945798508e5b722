package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/word2pdf/internal/console"
	"github.com/pdiddy/word2pdf/internal/controller"
	"github.com/pdiddy/word2pdf/internal/convert"
	"github.com/pdiddy/word2pdf/internal/document"
	"github.com/pdiddy/word2pdf/internal/logging"
)

var convertCmd = &cobra.Command{
	Use:   "convert [files or folders...]",
	Short: "Convert documents to PDF without opening the window",
	Long: `Convert exports each document to <output-dir>/<name>.pdf, replacing any
PDF already there. Folders are searched recursively for Word documents.
Failed files are reported and the batch continues; the command exits
non-zero when any file failed.`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringP("output-dir", "o", "", "output folder (default: folder of the first document)")
	convertCmd.Flags().String("report", "", "write a YAML run report to this file")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide one or more documents or folders")
	}

	cfg := loadConfig()
	if dir, _ := cmd.Flags().GetString("output-dir"); dir != "" {
		cfg.OutputDir = dir
	}
	reportPath, _ := cmd.Flags().GetString("report")

	logger := logging.New(cfg.LogLevel, os.Stderr)
	runner, launcher, err := newRunner(cfg, logger)
	if err != nil {
		return err
	}

	files, err := document.Collect(args)
	if err != nil {
		return err
	}

	ctrl := controller.New(runner, logger)
	if _, err := ctrl.AddFiles(files); err != nil {
		return err
	}
	if _, err := ctrl.SetOutputDir(cfg.OutputDir); err != nil {
		return err
	}
	if err := ctrl.Start(cmd.Context()); err != nil {
		n := controller.NoticeFor(err)
		return fmt.Errorf("%s: %s", n.Title, n.Message)
	}

	summary := console.Print(cmd.OutOrStdout(), ctrl)
	if summary == nil {
		return errors.New("conversion aborted")
	}

	if reportPath != "" {
		r := convert.Report{
			GeneratedAt: time.Now().UTC(),
			Application: launcher.Name(),
			OutputDir:   ctrl.OutputDir(),
			Summary:     *summary,
		}
		if err := convert.WriteReport(reportPath, r); err != nil {
			return err
		}
	}

	if summary.HasFailures() {
		return fmt.Errorf("%d file(s) failed conversion", len(summary.Failures))
	}
	return nil
}
