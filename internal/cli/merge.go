// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algs4/indexpq"
	"github.com/katalvlaran/algs4/queue"
)

func (c *CLI) mergeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "merge FILE...",
		Short: "Merge sorted word files into one sorted sequence",
		Long: `Reads whitespace-separated words from each file, each file already in
ascending order, and prints their merge on one line. An indexed priority
queue holds the current word of every stream.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			streams := make([]io.Reader, len(args))
			for i, path := range args {
				f, err := os.Open(path)
				if err != nil {
					return err
				}
				defer f.Close()
				streams[i] = f
			}

			merged, err := Merge(streams...)
			if err != nil {
				return err
			}
			c.Logger.Debug("merged", "streams", len(streams), "words", merged.Size())

			_, err = fmt.Fprintln(cmd.OutOrStdout(), merged)
			return err
		},
	}
}

// Merge reads words from every stream and returns them in ascending order,
// assuming each stream is itself sorted. Stream i occupies slot i of an
// IndexMinPQ, so equal words come out in stream order.
func Merge(streams ...io.Reader) (*queue.Queue[string], error) {
	scanners := make([]*bufio.Scanner, len(streams))
	pq, err := indexpq.NewIndexMinPQ[string](len(streams))
	if err != nil {
		return nil, err
	}

	advance := func(i int) error {
		if scanners[i].Scan() {
			return pq.Insert(i, scanners[i].Text())
		}
		return scanners[i].Err()
	}

	for i, r := range streams {
		scanners[i] = bufio.NewScanner(r)
		scanners[i].Split(bufio.ScanWords)
		if err := advance(i); err != nil {
			return nil, err
		}
	}

	out := queue.New[string]()
	for !pq.IsEmpty() {
		word, err := pq.MinKey()
		if err != nil {
			return nil, err
		}
		out.Enqueue(word)
		i, err := pq.DelMin()
		if err != nil {
			return nil, err
		}
		if err := advance(i); err != nil {
			return nil, err
		}
	}

	return out, nil
}
