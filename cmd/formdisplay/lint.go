package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formdisplay/pkg/model"
)

func newLintCmd(in *input) *cobra.Command {
	var repair bool

	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Check the display's structural invariants",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, store, err := in.load(cmd.Context())
			if err != nil {
				return err
			}

			if err := model.Lint(m); err != nil {
				if !repair {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "repairing:\n%v\n", err)
				return in.emit(cmd.Context(), cmd, m.Normalize(), store)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
	cmd.Flags().BoolVar(&repair, "repair", false, "normalize the document instead of failing")
	return cmd
}
