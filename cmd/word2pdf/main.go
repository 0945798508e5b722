// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for word2pdf. Without a subcommand it
// opens the converter window; convert runs the same batch headless.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	fyneApp "fyne.io/fyne/v2/app"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/word2pdf/internal/controller"
	"github.com/pdiddy/word2pdf/internal/convert"
	"github.com/pdiddy/word2pdf/internal/logging"
	"github.com/pdiddy/word2pdf/internal/office"
	"github.com/pdiddy/word2pdf/internal/ui"
	"github.com/pdiddy/word2pdf/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd opens the GUI.
var rootCmd = &cobra.Command{
	Use:   "word2pdf",
	Short: "Batch convert Word documents to PDF",
	Long: `word2pdf converts word-processing documents to PDF by driving an office
application: Microsoft Word over COM automation on Windows, or LibreOffice in
headless mode anywhere else.

Run without arguments to open the converter window. Use "word2pdf convert"
for scripted, headless batches.`,
	SilenceUsage: true,
	RunE:         runGUI,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./word2pdf.yaml or ~/.config/word2pdf/word2pdf.yaml)")
	rootCmd.PersistentFlags().String("backend", string(types.BackendAuto), "office application: auto, word, or libreoffice")
	rootCmd.PersistentFlags().String("soffice", "", "LibreOffice binary (default: soffice on PATH)")
	rootCmd.PersistentFlags().String("log-level", "info", "diagnostic log level: trace, debug, info, warn, error")
	rootCmd.Flags().String("output-dir", "", "initial output folder")

	for _, name := range []string{"backend", "soffice", "log-level"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
	_ = viper.BindPFlag("output-dir", rootCmd.Flags().Lookup("output-dir"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("word2pdf")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "word2pdf"))
		}
	}

	viper.SetEnvPrefix("WORD2PDF")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig reads the merged flag, file and environment settings.
func loadConfig() types.ConverterConfig {
	return types.ConverterConfig{
		Backend:     types.Backend(viper.GetString("backend")),
		SofficePath: viper.GetString("soffice"),
		OutputDir:   viper.GetString("output-dir"),
		LogLevel:    viper.GetString("log-level"),
	}
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	logger := logging.New(cfg.LogLevel, os.Stderr)

	launcher, err := office.Detect(cfg)
	if err != nil {
		logger.Warn("no office application detected", "error", err)
		launcher = office.Unavailable("office application", err)
	}

	ctrl := controller.New(convert.NewRunner(launcher, logger), logger)
	ui.New(fyneApp.NewWithID(ui.AppID), ctrl, cfg, logger).Run(cmd.Context())
	return nil
}

// newRunner detects the configured backend for headless commands.
func newRunner(cfg types.ConverterConfig, logger hclog.Logger) (*convert.Runner, office.Launcher, error) {
	launcher, err := office.Detect(cfg)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("using office application", "name", launcher.Name())
	return convert.NewRunner(launcher, logger), launcher, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
