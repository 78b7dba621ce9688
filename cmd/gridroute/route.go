package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridroute/astar"
	"github.com/katalvlaran/gridroute/internal/problem"
)

type routeFlags struct {
	heuristic string
	diagonal  bool
	jsonOut   bool
	trace     bool
	parallel  int
}

func newRouteCmd(flags *globalFlags) *cobra.Command {
	rf := &routeFlags{}
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Route every net of the problem",
		Long: `Route every net of the problem independently with A*.

Each net is routed on the same lattice snapshot; routes do not block each
other. A net without a route is reported, not treated as an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRoute(cmd, flags, rf)
		},
	}
	cmd.Flags().StringVar(&rf.heuristic, "heuristic", "",
		"Override the heuristic: manhattan, euclidean, octile, chebyshev, zero\n(default: the file's, else octile on diagonal lattices, else manhattan)")
	cmd.Flags().BoolVar(&rf.diagonal, "diagonal", false,
		"Force octilinear connectivity")
	cmd.Flags().BoolVar(&rf.jsonOut, "json", false,
		"Output as JSON for scripting")
	cmd.Flags().BoolVar(&rf.trace, "trace", false,
		"Print OpenTelemetry spans to stderr")
	cmd.Flags().IntVar(&rf.parallel, "parallel", 0,
		"Maximum concurrent searches (0 = GOMAXPROCS)")

	return cmd
}

func runRoute(cmd *cobra.Command, flags *globalFlags, rf *routeFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger, err := newLogger(cmd.ErrOrStderr(), flags.logLevel)
	if err != nil {
		return err
	}

	p, err := problem.Load(flags.file)
	if err != nil {
		return err
	}
	if rf.heuristic != "" {
		p.Heuristic = rf.heuristic
	}
	if rf.diagonal {
		p.Diagonal = true
	}
	if err := p.Validate(); err != nil {
		return err
	}

	opts := []astar.Option{
		astar.WithHeuristic(p.HeuristicValue()),
		astar.WithLogger(logger),
	}
	if rf.trace {
		tp, err := newTracerProvider(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Warn("trace shutdown failed", "error", err)
			}
		}()
		opts = append(opts, astar.WithTracerProvider(tp))
	}

	l := p.Lattice()
	g := l.ToUndirectedCSR()
	logger.Info("lattice ready",
		"columns", l.Columns(),
		"rows", l.Rows(),
		"present", l.Len(),
		"edges", g.EdgeCount(),
		"heuristic", p.HeuristicValue().String(),
	)

	results, err := astar.ComputeAll(ctx, astar.New(opts...), p.Requests(l, g), rf.parallel)
	if err != nil {
		return err
	}

	reports := buildReports(p, results)
	if rf.jsonOut {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}
	printReports(cmd.OutOrStdout(), reports)

	return nil
}

// routeReport is the printable outcome of one net.
type routeReport struct {
	Net      int          `json:"net"`
	Source   string       `json:"source"`
	Target   string       `json:"target"`
	Found    bool         `json:"found"`
	Steps    int          `json:"steps"`
	Turns    int          `json:"turns"`
	Expanded int          `json:"expanded"`
	Path     []string     `json:"path,omitempty"`
	Tape     []tapeReport `json:"tape,omitempty"`
}

type tapeReport struct {
	Op   string `json:"op"`
	Cell string `json:"cell"`
	Kind string `json:"kind"`
	Cost int    `json:"cost"`
}

func buildReports(p problem.Problem, results []*astar.Result) []routeReport {
	reports := make([]routeReport, len(results))
	for i, res := range results {
		n := p.Routes[i]
		rep := routeReport{
			Net:      n.Net,
			Source:   n.Source.Vertex().String(),
			Target:   n.Target.Vertex().String(),
			Found:    res.Found(),
			Steps:    res.Cost,
			Turns:    res.Turns,
			Expanded: res.Expanded,
		}
		for _, v := range res.Path {
			rep.Path = append(rep.Path, v.String())
		}
		for _, it := range res.Tape {
			rep.Tape = append(rep.Tape, tapeReport{
				Op:   it.Kind.String(),
				Cell: it.Key.String(),
				Kind: it.Value.Kind.String(),
				Cost: it.Value.Cost,
			})
		}
		reports[i] = rep
	}

	return reports
}

func printReports(w io.Writer, reports []routeReport) {
	for _, rep := range reports {
		if !rep.Found {
			fmt.Fprintf(w, "net %d %s -> %s: no route\n", rep.Net, rep.Source, rep.Target)
			continue
		}
		fmt.Fprintf(w, "net %d %s -> %s: %d steps, %d turns\n", rep.Net, rep.Source, rep.Target, rep.Steps, rep.Turns)
		fmt.Fprintf(w, "  path: %v\n", rep.Path)
		for _, t := range rep.Tape {
			fmt.Fprintf(w, "  %s %s %s cost=%d\n", t.Op, t.Cell, t.Kind, t.Cost)
		}
	}
}
