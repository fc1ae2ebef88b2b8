package main

import (
	"fmt"
	"math"

	"github.com/daniacca/genchem/internal/genchem"
	"github.com/spf13/cobra"
)

func newEnumerateCmd(a *app) *cobra.Command {
	var (
		n         int
		maxOrder  int
		countOnly bool
	)
	cmd := &cobra.Command{
		Use:   "enumerate",
		Short: "Print every coefficient vector of n species up to a maximum order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if countOnly {
				count := genchem.EnumerationCount(n, maxOrder)
				if count == 0 {
					return fmt.Errorf("%w: n and max order must be >= 1, got %d and %d", genchem.ErrInvalidArgument, n, maxOrder)
				}
				if count == math.MaxInt {
					return fmt.Errorf("%w: vector count for n=%d and max order %d overflows int", genchem.ErrInvalidArgument, n, maxOrder)
				}
				_, err := fmt.Fprintln(a.out, count)
				return err
			}
			vectors, err := genchem.Enumerate(n, maxOrder)
			if err != nil {
				return err
			}
			for _, v := range vectors {
				if _, err := fmt.Fprintln(a.out, v); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&n, "n", 3, "number of species")
	cmd.Flags().IntVarP(&maxOrder, "max-order", "k", genchem.DefaultMaxOrder, "largest coefficient sum")
	cmd.Flags().BoolVar(&countOnly, "count", false, "print only the number of vectors")
	return cmd
}
