// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algs4/graph"
	"github.com/katalvlaran/algs4/prim_kruskal"
	"github.com/katalvlaran/algs4/render"
)

type mstOptions struct {
	queueFlags
	method string
	root   int
	svg    string
}

func (c *CLI) mstCommand() *cobra.Command {
	var opts mstOptions

	cmd := &cobra.Command{
		Use:   "mst FILE",
		Short: "Minimum spanning tree of an edge-weighted graph",
		Long: `Computes a minimum spanning tree with Prim's or Kruskal's algorithm and
prints its edges followed by the total weight.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runMST(cmd, args[0], opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.method, "method", "m", prim_kruskal.MethodPrim,
		fmt.Sprintf("algorithm: %s or %s", prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal))
	cmd.Flags().IntVar(&opts.root, "root", 0, "start vertex for Prim")
	cmd.Flags().StringVar(&opts.svg, "svg", "", "write the graph with the tree highlighted as SVG")

	return cmd
}

func (c *CLI) runMST(cmd *cobra.Command, path string, opts mstOptions) error {
	if opts.method != prim_kruskal.MethodPrim && opts.method != prim_kruskal.MethodKruskal {
		return fmt.Errorf("unknown method %q", opts.method)
	}
	kind, arity, err := opts.resolve(cmd, c.Config)
	if err != nil {
		return err
	}

	g, err := readFile(path, graph.ReadGraph)
	if err != nil {
		return err
	}
	c.Logger.Debug("read graph", "file", path, "V", g.V(), "E", g.E())

	prog := newProgress(c.Logger)
	edges, total, err := prim_kruskal.Compute(g, prim_kruskal.MSTOptions{
		Method: opts.method,
		Root:   opts.root,
		Queue:  kind,
		Arity:  arity,
	})
	if err != nil {
		return err
	}
	prog.done("spanning tree", "method", opts.method, "edges", len(edges))

	if err := writeMST(cmd.OutOrStdout(), edges, total); err != nil {
		return err
	}
	if opts.svg == "" {
		return nil
	}

	dot, err := render.DOT("mst", false, g.V(), render.GraphArcs(g, edges))
	if err != nil {
		return err
	}
	return c.writeSVG(cmd.Context(), opts.svg, dot)
}

func writeMST(w io.Writer, edges []graph.Edge, total float64) error {
	for _, e := range edges {
		if _, err := fmt.Fprintln(w, e); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%.5f\n", total)
	return err
}
