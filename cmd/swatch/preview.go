package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opd-ai/swatch/internal/fields"
	"github.com/opd-ai/swatch/internal/render"
)

func newPreviewCmd(a *app) *cobra.Command {
	var (
		output   string
		kindName string
		width    int
		height   int
		noLabel  bool
	)

	cmd := &cobra.Command{
		Use:   "preview <value>",
		Short: "Render a color or gradient value to a PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value := args[0]
			kind, err := previewKind(kindName, value)
			if err != nil {
				return err
			}

			opts := render.PreviewOptions{
				Width:  a.cfg.Preview.Width,
				Height: a.cfg.Preview.Height,
				Label:  a.cfg.Preview.Label && !noLabel,
				Codec:  a.cfg.Codec(),
			}
			if width > 0 {
				opts.Width = width
			}
			if height > 0 {
				opts.Height = height
			}

			img, canonical, err := render.Preview(value, kind, opts)
			if err != nil {
				return err
			}
			if err := render.SavePNG(output, img); err != nil {
				return err
			}
			a.logger.Info("preview written", "path", output, "kind", kind, "value", canonical)
			fmt.Fprintln(cmd.OutOrStdout(), canonical)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "swatch.png", "Output PNG path")
	cmd.Flags().StringVar(&kindName, "kind", "", "Value kind (color or gradient); detected when empty")
	cmd.Flags().IntVar(&width, "width", 0, "Override the configured width")
	cmd.Flags().IntVar(&height, "height", 0, "Override the configured height")
	cmd.Flags().BoolVar(&noLabel, "no-label", false, "Omit the caption band")
	return cmd
}

// previewKind resolves --kind, falling back to a guess from the value.
func previewKind(name, value string) (fields.Kind, error) {
	if name != "" {
		return fields.ParseKind(name)
	}
	if strings.Contains(strings.ToLower(value), "gradient(") {
		return fields.KindGradient, nil
	}
	return fields.KindColor, nil
}
