package main

import (
	"fmt"
	"strconv"

	"github.com/ib-77/staticflow/pkg/flow"
	"github.com/ib-77/staticflow/pkg/flow/loop"
	"github.com/spf13/cobra"
)

func newSumCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sum [ints...]",
		Short: "Add integers until the sentinel is seen",
		RunE: func(cmd *cobra.Command, args []string) error {
			sentinel, _ := cmd.Flags().GetInt("sentinel")

			visited := 0
			res := loop.Run(cmd.Context(), func(s loop.State[int], arg string) (loop.State[int], error) {
				visited++
				x, err := strconv.Atoi(arg)
				if err != nil {
					return s, fmt.Errorf("element %d: %w", s.Iteration(), err)
				}
				if x == sentinel {
					return s.Break(), nil
				}
				return s.ContinueWith(s.Accumulator() + x), nil
			}, 0, args)

			sum, err := flow.Unwrap[int](res)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "sum=%d visited=%d\n", sum, visited)
			return nil
		},
	}

	cmd.Flags().Int("sentinel", -999, "Value that stops the summation")
	return cmd
}
