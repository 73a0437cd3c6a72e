package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexiusacademia/gocivil/internal/config"
	"github.com/alexiusacademia/gocivil/internal/version"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configFile string

	// cfg is loaded before any subcommand runs
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "gocivil",
	Short: "Structural and energy sizing calculations",
	Long: `gocivil - Go Civil Engineering Calculations

A CLI tool for everyday structural and energy calculations:
  - Concrete-encased composite column design (EN 1994-1-1)
  - EN 1993-1-1 buckling curves
  - I-profile section properties
  - Continuous beam analysis (direct stiffness method)
  - Rooftop PV sizing from NASA POWER irradiance

Settings are read from --config, a .env file and GOCIVIL_* variables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v := viper.New()
		if err := v.BindPFlag("log.level", cmd.Flags().Lookup("log-level")); err != nil {
			return err
		}
		if err := v.BindPFlag("log.format", cmd.Flags().Lookup("log-format")); err != nil {
			return err
		}

		loaded, err := config.Load(v, configFile)
		if err != nil {
			return err
		}
		cfg = loaded

		initLogging(cfg.Log.Level, cfg.Log.Format)
		slog.Debug("configuration loaded", "file", configFile, "command", cmd.CommandPath())
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gocivil v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Civil Engineering Calculations                       ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Composite column buckling and M-N interaction diagram")
		fmt.Println("    • Buckling reduction factors for curves a to d")
		fmt.Println("    • I-profile area, inertia and plastic modulus")
		fmt.Println("    • Continuous beam shear and moment diagrams")
		fmt.Println("    • PV area sizing for household and EV demand")
		fmt.Println()
		fmt.Println("  Use 'gocivil --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (yaml, json or toml)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")
}

// initLogging installs the default logger. Logs go to stderr so reports on
// stdout stay clean.
func initLogging(logLevel string, logFormat string) {
	switch logFormat {
	case "text":
		slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:   slogLevel(logLevel),
			NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
		})))
	case "json":
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slogLevel(logLevel),
		})))
	}
}

func slogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
