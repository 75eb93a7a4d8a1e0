package main

import (
	"github.com/spf13/cobra"
)

func newReorderCmd(in *input) *cobra.Command {
	var scope string

	cmd := &cobra.Command{
		Use:   "reorder <name>...",
		Short: "Reorder siblings within a group (or at root with no --group)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, store, err := in.load(cmd.Context())
			if err != nil {
				return err
			}
			return in.emit(cmd.Context(), cmd, m.ReorderChildren(scope, args), store)
		},
	}
	cmd.Flags().StringVar(&scope, "group", "", "group whose children are reordered; empty for root")
	return cmd
}
