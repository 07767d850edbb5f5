// SPDX-License-Identifier: MIT

// Package render turns graphs and algorithm results into Graphviz DOT text
// and renders DOT to SVG.
//
// DOT is pure string building and has no dependencies beyond the standard
// library. SVG runs the embedded Graphviz engine from goccy/go-graphviz, so
// no dot binary has to be installed.
package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"
)

// ErrBadArc indicates an arc whose endpoint is outside [0, vertices).
var ErrBadArc = errors.New("render: arc endpoint out of range")

// Arc is one edge of the drawing. Highlighted arcs are drawn bold and red,
// which is how a shortest-path tree or a spanning tree stands out against
// the rest of the graph.
type Arc struct {
	From      int
	To        int
	Weight    float64
	Highlight bool
}

// DOT renders vertices 0..vertices-1 and arcs as a Graphviz graph named name.
// Directed graphs use "digraph" and "->"; undirected ones "graph" and "--".
// Weights are printed with two decimals as edge labels.
func DOT(name string, directed bool, vertices int, arcs []Arc) (string, error) {
	kind, op := "graph", "--"
	if directed {
		kind, op = "digraph", "->"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s %q {\n", kind, name)
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=12];\n")
	buf.WriteString("  edge [fontsize=10];\n")
	buf.WriteString("\n")

	for v := range vertices {
		fmt.Fprintf(&buf, "  %d;\n", v)
	}

	buf.WriteString("\n")
	for _, a := range arcs {
		if a.From < 0 || a.From >= vertices || a.To < 0 || a.To >= vertices {
			return "", fmt.Errorf("%w: %d %s %d with %d vertices", ErrBadArc, a.From, op, a.To, vertices)
		}
		attrs := fmt.Sprintf("label=%q", strconv.FormatFloat(a.Weight, 'f', 2, 64))
		if a.Highlight {
			attrs += ", color=red, penwidth=2.5"
		}
		fmt.Fprintf(&buf, "  %d %s %d [%s];\n", a.From, op, a.To, attrs)
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

// SVG renders a DOT document to SVG with the embedded Graphviz engine.
func SVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the Graphviz <svg> tag with one whose viewBox
// starts at the origin and whose size matches it, so browsers scale it.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
