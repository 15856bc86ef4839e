// Package cli implements the stubwire command-line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/stubwire/stubwire/internal/cliconfig"
	"github.com/stubwire/stubwire/pkg/logging"
)

var (
	fixturePath string
	unitName    string
	logLevel    string
	logFormat   string
)

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "stubwire",
	Short: "stubwire resolves test-fixture routing configuration and dry-runs requests through it",
	Long: `stubwire builds a request router from a fixture file the same way the test
harness does: declarative endpoint entries, provider references and fallback
policy are resolved under the standard precedence rules. Requests are routed
offline; no server is started.

Settings can come from flags or STUBWIRE_* environment variables, with an
optional YAML settings file named by STUBWIRE_SETTINGS.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cfg, err := cliconfig.Load()
	if err != nil {
		cfg = cliconfig.Defaults()
	}

	rootCmd.PersistentFlags().StringVarP(&fixturePath, "fixture", "f", cfg.Fixture, "Fixture file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&unitName, "unit", cfg.Unit, "Nested unit scope to resolve (default: fixture root)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", cfg.LogFormat, "Log format (text, json)")
}

func newLogger() *slog.Logger {
	return logging.New(logging.Config{
		Level:  logging.ParseLevel(logLevel),
		Format: logging.ParseFormat(logFormat),
		Output: os.Stderr,
	})
}
