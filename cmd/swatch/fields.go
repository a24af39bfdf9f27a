package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newFieldsCmd(a *app) *cobra.Command {
	var section string

	cmd := &cobra.Command{
		Use:   "fields",
		Short: "List the field schema with its defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			schema, err := a.cfg.Schema()
			if err != nil {
				return err
			}

			specs := schema.Specs()
			if section != "" {
				filtered := specs[:0:0]
				for _, s := range specs {
					if string(s.Section) == section {
						filtered = append(filtered, s)
					}
				}
				if len(filtered) == 0 {
					return fmt.Errorf("unknown section: %s", section)
				}
				specs = filtered
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tSECTION\tKIND\tDEFAULT")
			for _, s := range specs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.ID, s.Section, s.Kind, s.Default)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&section, "section", "", "Only list fields of this section")
	return cmd
}
