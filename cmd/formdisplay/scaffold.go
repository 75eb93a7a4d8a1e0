package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	formdisplay "github.com/goliatone/go-formdisplay"
	internalloader "github.com/goliatone/go-formdisplay/internal/display/loader"
	"github.com/goliatone/go-formdisplay/pkg/scaffold"
)

func newScaffoldCmd(in *input) *cobra.Command {
	var (
		schemaPath string
		schemaName string
	)

	cmd := &cobra.Command{
		Use:   "scaffold",
		Short: "Seed a fresh display from an OpenAPI component schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if schemaPath == "" || schemaName == "" {
				return errors.New("--schema and --component are required")
			}
			if in.entity == "" || in.bundle == "" {
				return errors.New("--entity and --bundle are required")
			}

			raw, err := os.ReadFile(schemaPath)
			if err != nil {
				return err
			}

			m, err := scaffold.New().FromSchema(cmd.Context(), raw, schemaName, in.entity, in.bundle)
			if err != nil {
				return err
			}

			// Scaffolding starts from nothing, so there is no document to
			// load; open the store only when the result should be persisted.
			var store *internalloader.Store
			if in.write && in.dir != "" {
				store, err = formdisplay.NewStore(in.dir, formdisplay.WithStorePrefix(in.prefix))
				if err != nil {
					return err
				}
			}
			return in.emit(cmd.Context(), cmd, m, store)
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", "", "OpenAPI document path")
	cmd.Flags().StringVar(&schemaName, "component", "", "component schema name to scaffold from")
	return cmd
}
