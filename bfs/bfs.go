// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/algs4/graph"
	"github.com/katalvlaran/algs4/queue"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *graph.EdgeWeightedDigraph
	opts  BFSOptions
	ctx   context.Context
	queue *queue.Queue[queueItem]
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from source, following edges
// regardless of weight, and applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS(g *graph.EdgeWeightedDigraph, source int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.V()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrStartVertexNotFound, source, n)
	}

	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: queue.New[queueItem](),
		res: &BFSResult{
			Source: source,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := range n {
		w.res.Depth[v] = -1
		w.res.Parent[v] = -1
	}

	w.enqueue(source, 0, -1)
	return w.res, w.loop()
}

// enqueue marks v reached at depth d from parent, calls OnEnqueue, and
// adds it to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.opts.OnEnqueue(v, d)
	w.queue.Enqueue(queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for !w.queue.IsEmpty() {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		item, err := w.queue.Dequeue()
		if err != nil {
			return err
		}
		w.opts.OnDequeue(item.v, item.depth)

		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen
// head of an edge leaving item.v.
func (w *walker) enqueueNeighbors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}

	adj, err := w.graph.Adj(item.v)
	if err != nil {
		return err
	}
	for _, e := range adj {
		if !w.opts.FilterEdge(e) {
			continue
		}
		if to := e.To(); w.res.Depth[to] < 0 {
			w.enqueue(to, next, item.v)
		}
	}
	return nil
}
