package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/opd-ai/swatch/internal/document"
	"github.com/opd-ai/swatch/internal/fields"
	"github.com/opd-ai/swatch/internal/watch"
)

func newNormalizeCmd(a *app) *cobra.Command {
	var write, watchFile bool

	cmd := &cobra.Command{
		Use:   "normalize <document.json>",
		Short: "Rewrite every field of a content document in canonical form",
		Long: `normalize parses every schema field stored in a JSON content document and
re-composes it. Fields that are absent or empty are left alone. Without
--write the changes are only reported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			schema, err := a.cfg.Schema()
			if err != nil {
				return err
			}
			n := &normalizer{
				path:   path,
				write:  write || watchFile,
				schema: schema,
				app:    a,
				out:    cmd.OutOrStdout(),
			}
			if err := n.run(); err != nil {
				return err
			}
			if !watchFile {
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return n.watch(ctx)
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write the normalized document back")
	cmd.Flags().BoolVar(&watchFile, "watch", false, "Keep running and normalize on every change (implies --write)")
	return cmd
}

type normalizer struct {
	path   string
	write  bool
	schema *fields.Schema
	app    *app
	out    io.Writer
}

// run normalizes the document once and reports the result.
func (n *normalizer) run() error {
	doc, err := document.ParseFile(n.path)
	if err != nil {
		return err
	}

	var sink fields.Sink
	if n.write {
		sink = doc
	}
	report := fields.Normalize(n.schema, n.app.cfg.Codec(), doc, sink)

	for _, c := range report.Changed {
		fmt.Fprintf(n.out, "%s: %s -> %s\n", c.Field, c.Before, c.After)
	}
	n.app.logger.Info("document normalized",
		"path", n.path,
		"changed", len(report.Changed),
		"unchanged", report.Unchanged,
		"unset", len(report.Unset),
	)

	// Skipping the write when nothing changed lets a watcher settle after
	// its own save.
	if !n.write || len(report.Changed) == 0 {
		return nil
	}
	if err := doc.WriteFile(n.path); err != nil {
		return err
	}
	n.app.logger.Debug("document written", "path", n.path)
	return nil
}

func (n *normalizer) watch(ctx context.Context) error {
	w, err := watch.New(n.path, n.run,
		watch.WithDebounce(n.app.cfg.Watch.Debounce),
		watch.WithLogger(n.app.logger),
		watch.WithErrorHandler(func(err error) {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}),
	)
	if err != nil {
		return err
	}
	fmt.Fprintf(n.out, "watching %s\n", n.path)
	if err := w.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
