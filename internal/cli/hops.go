// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algs4/bfs"
	"github.com/katalvlaran/algs4/graph"
)

func (c *CLI) hopsCommand() *cobra.Command {
	var (
		source   int
		maxDepth int
	)

	cmd := &cobra.Command{
		Use:   "hops FILE",
		Short: "Fewest-edge paths from one source in a digraph",
		Long: `Runs a breadth-first search from --source, ignoring weights, and prints
one line per vertex:

  s to v [h]  s  ...  v
  s to v      not reached`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readFile(args[0], graph.ReadDigraph)
			if err != nil {
				return err
			}

			prog := newProgress(c.Logger)
			res, err := bfs.BFS(g, source, bfs.WithContext(cmd.Context()), bfs.WithMaxDepth(maxDepth))
			if err != nil {
				return err
			}
			prog.done("breadth-first search", "source", source, "reached", len(res.Order))

			return writeHops(cmd.OutOrStdout(), g.V(), res)
		},
	}

	cmd.Flags().IntVarP(&source, "source", "s", 0, "source vertex")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "do not go deeper than this many edges (0 = no limit)")

	return cmd
}

func writeHops(w io.Writer, n int, res *bfs.BFSResult) error {
	for v := range n {
		path, err := res.PathTo(v)
		if err != nil {
			if _, err := fmt.Fprintf(w, "%d to %d      not reached\n", res.Source, v); err != nil {
				return err
			}
			continue
		}
		hops := make([]string, len(path))
		for i, u := range path {
			hops[i] = fmt.Sprint(u)
		}
		if _, err := fmt.Fprintf(w, "%d to %d [%d]  %s\n", res.Source, v, res.Depth[v], strings.Join(hops, "  ")); err != nil {
			return err
		}
	}
	return nil
}
