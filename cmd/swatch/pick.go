package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/opd-ai/swatch/internal/render"
	"github.com/opd-ai/swatch/pkg/swatch"
)

func newPickCmd(a *app) *cobra.Command {
	var (
		opacity float64
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Print the color of the pixel under the X11 pointer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return pick(cmd, a, render.NewX11Sampler(), opacity, timeout)
		},
	}
	cmd.Flags().Float64Var(&opacity, "opacity", 1, "Opacity applied to the sampled color")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "Give up after this long")
	return cmd
}

func pick(cmd *cobra.Command, a *app, sampler swatch.ScreenSampler, opacity float64, timeout time.Duration) error {
	p := swatch.NewColorPicker(swatch.DefaultHex, nil,
		swatch.WithPalette(a.cfg.Palette),
		swatch.WithLogger(a.logger),
		swatch.WithSampler(sampler),
	)
	p.SetOpacity(opacity)

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()
	if err := p.Sample(ctx); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), p.Composed())
	return nil
}
