// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algs4/indexpq"
)

func (c *CLI) pqCommand() *cobra.Command {
	var flags queueFlags

	cmd := &cobra.Command{
		Use:   "pq WORD...",
		Short: "Print words in ascending order through an indexed priority queue",
		Long: `Inserts argument i under slot i of the selected queue and drains it,
printing "slot word" per line. Handy for comparing queue kinds.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, arity, err := flags.resolve(cmd, c.Config)
			if err != nil {
				return err
			}
			pq, err := indexpq.New[string](kind, len(args), indexpq.WithArity(arity))
			if err != nil {
				return err
			}
			for i, word := range args {
				if err := pq.Insert(i, word); err != nil {
					return err
				}
			}
			c.Logger.Debug("filled queue", "queue", kind, "size", pq.Size())

			out := cmd.OutOrStdout()
			for i, word := range pq.All() {
				if _, err := fmt.Fprintln(out, i, word); err != nil {
					return err
				}
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
