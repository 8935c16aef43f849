// Package main provides the entry point for the lifpdoc CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/lifpdoc/internal/output"
)

// Build info set via ldflags at build time.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run(os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := fang.Execute(context.Background(), cmd,
		fang.WithVersion(buildVersion()),
		// "man" is a documentation mode, not a request for this CLI's own page.
		fang.WithoutManpage(),
		fang.WithErrorHandler(handleError),
	)
	return output.GetExitCode(err)
}

// handleError lets fang render errors cobra raised itself, such as unknown
// flags. ExitErrors were already reported by the command's Printer.
func handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// newRootCmd creates the root command for the lifpdoc CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lifpdoc <web|man|repl>",
		Short: "Generate lifp standard library documentation",
		Long: `lifpdoc - documentation generator for the lifp standard library.

It reads the /** ... */ docblocks in lifp/std/*.c and lifp/specials.c and
renders exactly one artifact set per run:

  web   markdown index (docs/index.md), plus JSON and HTML when configured
  man   troff manual page (artifacts/lifp.1)
  repl  C header with the REPL documentation table (artifacts/docs.h)

VERSION and SHA from the environment (or .env.local / .env) are stamped into
the rendered titles; they default to v0.0.0 and dev.

Examples:
  lifpdoc web
  VERSION=v1.2.0 SHA=$(git rev-parse --short HEAD) lifpdoc man
  lifpdoc repl --root ../lifp`,
		Args:          cobra.ArbitraryArgs,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGenerate,
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", output.ColorAuto, "Colorize output: auto, always, never")
	cmd.PersistentFlags().String("root", ".", "Repository root that source and output paths are relative to")
	cmd.PersistentFlags().String("config", "", "Config file (default: <root>/.lifpdoc.yaml, then the global lifpdoc.yaml)")

	lipgloss.SetHasDarkBackground(true)

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newServeCmd())

	return cmd
}

// lookupFlag finds a flag on the command or, failing that, on the root's
// persistent flags.
func lookupFlag(cmd *cobra.Command, name string) string {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup(name)
	}
	if flag == nil {
		return ""
	}
	return flag.Value.String()
}

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	return lookupFlag(cmd, "json") == "true"
}

// newPrinter builds the printer for a command from --json and --color.
func newPrinter(cmd *cobra.Command) (*output.Printer, error) {
	colorMode, err := output.ParseColorMode(lookupFlag(cmd, "color"))
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), colorMode).
		WithStderr(cmd.ErrOrStderr())
	if err != nil {
		printer.Error(err)
		return nil, err
	}
	return printer, nil
}
