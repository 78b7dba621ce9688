package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	file     string
	logLevel string
}

// newRootCmd builds a fresh command tree so tests can run it in isolation.
func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	root := &cobra.Command{
		Use:   "gridroute",
		Short: "Route nets across a grid lattice",
		Long: `Build a lattice from a YAML problem file and route its nets with A*.

Subcommands:
  render  - print the lattice as an ASCII grid
  route   - route every net and print routes and edit tapes

Examples:
  gridroute render -f board.yaml
  gridroute route -f board.yaml --heuristic zero
  gridroute route -f board.yaml --diagonal --json`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&flags.file, "file", "f", "",
		"Problem file (YAML)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn",
		"Log level: debug, info, warn, error")
	_ = root.MarkPersistentFlagRequired("file")

	root.AddCommand(newRenderCmd(flags), newRouteCmd(flags))

	return root
}

// newLogger writes text logs to w at the named level.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
