package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/opd-ai/swatch/pkg/swatch"
)

func newColorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "color",
		Short: "Parse and compose color values",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "parse <value>",
		Short: "Decompose a color value into hex and opacity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := swatch.ParseColor(args[0])
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "hex:       %s\n", c.Hex)
			fmt.Fprintf(out, "opacity:   %s\n", strconv.FormatFloat(c.Opacity, 'f', -1, 64))
			fmt.Fprintf(out, "canonical: %s\n", c)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "compose <hex> [opacity]",
		Short: "Build a color value from hex and opacity",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opacity := 1.0
			if len(args) == 2 {
				v, err := strconv.ParseFloat(args[1], 64)
				if err != nil {
					return fmt.Errorf("invalid opacity %q: %w", args[1], err)
				}
				opacity = v
			}
			fmt.Fprintln(cmd.OutOrStdout(), swatch.ComposeColor(args[0], opacity))
			return nil
		},
	})

	return cmd
}
