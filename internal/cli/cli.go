// SPDX-License-Identifier: MIT

// Package cli implements the algs4 command-line interface.
//
// Commands:
//   - sp:    single-source shortest paths over an edge-weighted digraph file
//   - mst:   minimum spanning tree of an edge-weighted graph file
//   - hops:  fewest-edge paths from one source, ignoring weights
//   - merge: multiway merge of sorted word files
//   - pq:    sorts words through a selectable indexed priority queue
//
// Graph files use the algs4 text format: V, E, then E lines "v w weight".
//
// All commands accept --config FILE (TOML, see Config) and --verbose (-v).
// Flags override the file. Logs go to the error writer through
// charmbracelet/log; results go to the command's output writer.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/algs4/indexpq"
)

const appName = "algs4"

// version is overridden at build time with -ldflags "-X ...cli.version=v1.2.3".
var version = "dev"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config
}

// New creates a CLI that logs to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: DefaultConfig(),
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		configPath string
		verbose    bool
	)

	root := &cobra.Command{
		Use:           appName,
		Short:         "algs4 runs indexed priority queue graph algorithms",
		Long:          `algs4 runs shortest-path and spanning-tree algorithms on algs4 graph files, with a selectable indexed priority queue (Fibonacci, binomial, binary or d-ary heap) as the frontier.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				cfg, err := LoadConfig(configPath)
				if err != nil {
					return err
				}
				c.Config = cfg
				c.Logger.Debug("loaded config", "path", configPath)
			}
			level, err := c.Config.level()
			if err != nil {
				return err
			}
			if verbose {
				level = log.DebugLevel
			}
			c.Logger.SetLevel(level)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "TOML configuration file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.spCommand())
	root.AddCommand(c.mstCommand())
	root.AddCommand(c.hopsCommand())
	root.AddCommand(c.mergeCommand())
	root.AddCommand(c.pqCommand())

	return root
}

// queueFlags registers --queue and --arity on cmd. Unset flags fall back
// to the loaded Config in resolve.
type queueFlags struct {
	queue string
	arity int
}

func (q *queueFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&q.queue, "queue", "", fmt.Sprintf("priority queue kind %v (default from config)", indexpq.Kinds()))
	cmd.Flags().IntVar(&q.arity, "arity", 0, "branching factor of the multiway queue (default from config)")
}

// resolve returns the queue kind and arity for cmd, preferring flags.
func (q *queueFlags) resolve(cmd *cobra.Command, cfg Config) (indexpq.Kind, int, error) {
	name, arity := cfg.Queue, cfg.Arity
	if cmd.Flags().Changed("queue") {
		name = q.queue
	}
	if cmd.Flags().Changed("arity") {
		arity = q.arity
	}

	kind, err := indexpq.ParseKind(name)
	if err != nil {
		return "", 0, err
	}
	if arity < 2 {
		return "", 0, fmt.Errorf("%w: arity must be at least 2, got %d", indexpq.ErrInvalidArgument, arity)
	}

	return kind, arity, nil
}
