// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algs4/dijkstra"
	"github.com/katalvlaran/algs4/graph"
	"github.com/katalvlaran/algs4/render"
	"github.com/katalvlaran/algs4/stats"
)

type spOptions struct {
	queueFlags
	source      int
	maxDistance float64
	svg         string
}

func (c *CLI) spCommand() *cobra.Command {
	var opts spOptions

	cmd := &cobra.Command{
		Use:   "sp FILE",
		Short: "Shortest paths from one source in an edge-weighted digraph",
		Long: `Runs Dijkstra's algorithm from --source and prints one line per vertex:

  s to v (d.dd)  path edges...
  s to v         no path

followed by summary statistics over the reachable distances.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSP(cmd, args[0], opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().IntVarP(&opts.source, "source", "s", 0, "source vertex")
	cmd.Flags().Float64Var(&opts.maxDistance, "max-distance", math.Inf(1), "do not explore beyond this distance")
	cmd.Flags().StringVar(&opts.svg, "svg", "", "write the graph with the shortest-path tree highlighted as SVG")

	return cmd
}

func (c *CLI) runSP(cmd *cobra.Command, path string, opts spOptions) error {
	kind, arity, err := opts.resolve(cmd, c.Config)
	if err != nil {
		return err
	}
	if opts.maxDistance < 0 || math.IsNaN(opts.maxDistance) {
		return fmt.Errorf("%w: %v", dijkstra.ErrBadMaxDistance, opts.maxDistance)
	}

	g, err := readFile(path, graph.ReadDigraph)
	if err != nil {
		return err
	}
	c.Logger.Debug("read digraph", "file", path, "V", g.V(), "E", g.E())

	prog := newProgress(c.Logger)
	sp, err := dijkstra.Dijkstra(g, opts.source,
		dijkstra.WithQueue(kind),
		dijkstra.WithArity(arity),
		dijkstra.WithMaxDistance(opts.maxDistance),
	)
	if err != nil {
		return err
	}
	prog.done("shortest paths", "queue", kind, "source", opts.source)

	if err := writeShortestPaths(cmd.OutOrStdout(), g, sp); err != nil {
		return err
	}
	if opts.svg == "" {
		return nil
	}

	dot, err := render.DOT("sp", true, g.V(), render.DigraphArcs(g, sp.Tree()))
	if err != nil {
		return err
	}
	return c.writeSVG(cmd.Context(), opts.svg, dot)
}

func writeShortestPaths(w io.Writer, g *graph.EdgeWeightedDigraph, sp *dijkstra.ShortestPaths) error {
	s := sp.Source()
	var acc stats.Accumulator
	for v := range g.V() {
		if !sp.HasPathTo(v) {
			if _, err := fmt.Fprintf(w, "%d to %d         no path\n", s, v); err != nil {
				return err
			}
			continue
		}

		dist, err := sp.DistTo(v)
		if err != nil {
			return err
		}
		path, err := sp.PathTo(v)
		if err != nil {
			return err
		}
		acc.Add(dist)

		var sb strings.Builder
		fmt.Fprintf(&sb, "%d to %d (%.2f)", s, v, dist)
		for _, e := range path {
			sb.WriteString("  ")
			sb.WriteString(e.String())
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "reachable: %s\n", acc.String())
	return err
}

// readFile opens path and parses it with read.
func readFile[G any](path string, read func(io.Reader) (G, error)) (G, error) {
	var zero G
	f, err := os.Open(path)
	if err != nil {
		return zero, err
	}
	defer f.Close()

	g, err := read(f)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// writeSVG renders dot and writes it to path.
func (c *CLI) writeSVG(ctx context.Context, path, dot string) error {
	prog := newProgress(c.Logger)
	svg, err := render.SVG(ctx, dot)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, svg, 0o644); err != nil {
		return err
	}
	prog.done("wrote svg", "file", path, "bytes", len(svg))
	return nil
}
