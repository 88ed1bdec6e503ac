// root.go - Root command, global flags and shared setup

package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"go-shop-admin/config"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	logLevel string
)

// rootCmd represents the base command; without a subcommand it serves.
var rootCmd = &cobra.Command{
	Use:   "shopadmin",
	Short: "Shop admin API for products, reviews and users",
	Long: `shopadmin runs the admin REST API of the shop.

Commands:
  serve    - Start the HTTP server (default)
  migrate  - Create or update the database tables
  seed     - Fill an empty database with demo data

Configuration is read from the environment and an optional .env file.`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides LOG_LEVEL")
}

// loadConfig reads and validates the configuration, applying flag overrides.
func loadConfig() (*config.Config, error) {
	cfg := config.Load()
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
