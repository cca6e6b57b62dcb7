package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"modmap/internal/config"
	"modmap/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "modmap",
	Short: "Clang module map inspector",
	Long:  `modmap tokenizes and parses Clang module.modulemap files and reports their structure`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(headersCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// settings is the merged view of modmap.toml and command-line flags.
// Flags win when set. Color is decided per destination stream: results
// go to stdout, diagnostics to stderr, and with color=auto each stream
// styles only when it is itself a terminal.
type settings struct {
	cfg            config.Config
	colorStdout    bool
	colorStderr    bool
	quiet          bool
	maxDiagnostics int
}

// colorEnabled resolves one stream's color mode against its TTY state.
func colorEnabled(mode string, tty bool) (bool, error) {
	switch mode {
	case "on", "always":
		return true, nil
	case "off", "never":
		return false, nil
	case "auto", "":
		return tty, nil
	default:
		return false, fmt.Errorf("unknown color mode: %s", mode)
	}
}

func resolveSettings(cmd *cobra.Command) (settings, error) {
	cfg, _, err := config.Load(".")
	if err != nil {
		return settings{}, err
	}

	s := settings{cfg: cfg}

	colorMode := cfg.Output.Color
	if cmd.Root().PersistentFlags().Changed("color") {
		colorMode, err = cmd.Root().PersistentFlags().GetString("color")
		if err != nil {
			return settings{}, err
		}
	}
	if s.colorStdout, err = colorEnabled(colorMode, isTerminal(os.Stdout)); err != nil {
		return settings{}, err
	}
	if s.colorStderr, err = colorEnabled(colorMode, isTerminal(os.Stderr)); err != nil {
		return settings{}, err
	}

	s.quiet, err = cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return settings{}, err
	}

	s.maxDiagnostics = cfg.Output.MaxDiagnostics
	if cmd.Root().PersistentFlags().Changed("max-diagnostics") {
		s.maxDiagnostics, err = cmd.Root().PersistentFlags().GetInt("max-diagnostics")
		if err != nil {
			return settings{}, err
		}
	}
	if s.maxDiagnostics <= 0 {
		s.maxDiagnostics = config.Default().Output.MaxDiagnostics
	}

	return s, nil
}

// outputFormat picks the per-command --format flag, falling back to the
// config file's choice.
func outputFormat(cmd *cobra.Command, s settings) (string, error) {
	if cmd.Flags().Changed("format") {
		return cmd.Flags().GetString("format")
	}
	return s.cfg.Output.Format, nil
}
