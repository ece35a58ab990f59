// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the affilscan CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/affilscan/internal/report"
	"github.com/pdiddy/affilscan/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds values loaded from .secrets/ at startup.
var loadedSecrets secrets.Secrets

// rootCmd is the base command for the affilscan CLI.
var rootCmd = &cobra.Command{
	Use:   "affilscan",
	Short: "Count journal articles whose first author is at a Chinese institution",
	Long: `affilscan lists a journal's works for a publication window from the
Crossref REST API, decides for each article whether the first author is
affiliated with a Chinese institution, and writes a spreadsheet report.

Affiliations come from the listing or, when absent, from a per-DOI lookup.
Authors without a matching affiliation fall back to name heuristics.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(secrets.DefaultDir, os.Stderr)
		if err != nil {
			return &configError{err: err}
		}
		loadedSecrets = s
		if len(s) > 0 {
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", s.Keys())
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./affilscan.yaml or ~/.config/affilscan/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	// A missing .env is normal; values already in the environment win.
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("affilscan")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "affilscan"))
		}
	}

	viper.SetEnvPrefix("AFFILSCAN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// Exit codes.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error
	ExitConfigError = 2 // Invalid configuration or reference data
	ExitWriteError  = 3 // Report could not be written
)

// configError marks errors caused by configuration rather than the run.
type configError struct {
	err error
}

func (e *configError) Error() string { return "configuration: " + e.err.Error() }

func (e *configError) Unwrap() error { return e.err }

// exitCode maps an error returned by a command to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ce *configError
	if errors.As(err, &ce) {
		return ExitConfigError
	}
	var we *report.WriteError
	if errors.As(err, &we) {
		return ExitWriteError
	}
	return ExitError
}
