package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wildmatch/wildmatch/pkg/logging"
)

var (
	// Persistent flags available to all subcommands
	logLevel  string
	logFormat string
	logFile   string

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// logger is rebuilt from the persistent flags before every command run.
var logger = logging.Nop()

// ErrNoMatch marks a clean mismatch verdict, as opposed to a usage or I/O
// error. Execute maps it to exit code 1.
var ErrNoMatch = errors.New("no match")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wildmatch",
	Short: "wildmatch compares structured documents against wildcard patterns",
	Long: `wildmatch is a structural pattern matcher for nested data.

It compares a pattern document (JSON or YAML) against value documents,
honoring a wildcard token and optional relaxations for extra mapping keys,
extra set elements, and trailing sequence elements.`,
	SilenceUsage:  true,
	SilenceErrors: true, // We handle errors in Execute()
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := logging.Config{
			Level:  logging.ParseLevel(logLevel),
			Format: logging.ParseFormat(logFormat),
		}
		if logFile != "" {
			f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			cfg.Extra = f
		}
		logger = logging.New(cfg)
		return nil
	},
}

// Execute runs the root command and maps the outcome to an exit code:
// 0 match, 1 mismatch, 2 anything else. Called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, ErrNoMatch) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also append logs to this file")
}
