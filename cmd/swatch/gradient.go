package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opd-ai/swatch/pkg/swatch"
)

func newGradientCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gradient",
		Short: "Parse and compose gradient values",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "parse <value>",
		Short: "Decompose a gradient value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec := a.cfg.Codec()
			g := codec.Parse(args[0])
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "type:      %s\n", g.Type)
			fmt.Fprintf(out, "degree:    %d\n", g.Degree)
			fmt.Fprintf(out, "colors:    %s\n", strings.Join(g.Colors, " "))
			fmt.Fprintf(out, "opacity:   %g\n", g.Opacity)
			fmt.Fprintf(out, "canonical: %s\n", codec.Compose(g.Type, g.Degree, g.Colors, g.Opacity))
			return nil
		},
	})

	var (
		typeName string
		degree   int
		opacity  float64
	)
	compose := &cobra.Command{
		Use:   "compose <color>...",
		Short: "Build a gradient value from its parts",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := swatch.ParseGradientType(typeName)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.cfg.Codec().Compose(t, degree, args, opacity))
			return nil
		},
	}
	compose.Flags().StringVar(&typeName, "type", "linear", "Gradient type (linear, radial, conic)")
	compose.Flags().IntVar(&degree, "degree", swatch.DefaultDegree, "Angle in degrees")
	compose.Flags().Float64Var(&opacity, "opacity", 1, "Opacity applied to hex colors")
	cmd.AddCommand(compose)

	return cmd
}
