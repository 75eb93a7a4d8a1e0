package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	formdisplay "github.com/goliatone/go-formdisplay"
	internalloader "github.com/goliatone/go-formdisplay/internal/display/loader"
	"github.com/goliatone/go-formdisplay/pkg/display"
	"github.com/goliatone/go-formdisplay/pkg/model"
)

// input carries the document-selection flags shared by every subcommand.
type input struct {
	file   string
	dir    string
	entity string
	bundle string
	mode   string
	prefix string
	write  bool
}

func (in *input) register(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&in.file, "file", "", "display document path (overrides --dir)")
	flags.StringVar(&in.dir, "dir", "", "config directory holding display documents")
	flags.StringVar(&in.entity, "entity", "", "target entity type (with --dir)")
	flags.StringVar(&in.bundle, "bundle", "", "bundle name (with --dir)")
	flags.StringVar(&in.mode, "mode", "default", "display mode")
	flags.StringVar(&in.prefix, "prefix", internalloader.DefaultStorePrefix, "document file name prefix (with --dir)")
	flags.BoolVar(&in.write, "write", false, "persist the result instead of printing it")
}

// load resolves the selected document into a model, returning the store when
// the directory form was used so writes can go back through it.
func (in *input) load(ctx context.Context) (model.Model, *internalloader.Store, error) {
	if in.file != "" {
		data, err := os.ReadFile(in.file)
		if err != nil {
			return model.Model{}, nil, fmt.Errorf("read %s: %w", in.file, err)
		}
		doc, err := display.Decode(data)
		if err != nil {
			return model.Model{}, nil, err
		}
		m, err := formdisplay.Parse(doc)
		if err != nil {
			return model.Model{}, nil, err
		}
		return m, nil, nil
	}

	if in.dir == "" || in.entity == "" || in.bundle == "" {
		return model.Model{}, nil, errors.New("either --file or --dir with --entity and --bundle is required")
	}

	store, err := formdisplay.NewStore(in.dir, formdisplay.WithStorePrefix(in.prefix))
	if err != nil {
		return model.Model{}, nil, err
	}
	doc, err := store.Read(ctx, in.entity, in.bundle, in.mode)
	if err != nil {
		if errors.Is(err, display.ErrNotFound) {
			return model.Model{}, nil, fmt.Errorf("no form display configured for %s.%s.%s", in.entity, in.bundle, in.mode)
		}
		return model.Model{}, nil, err
	}
	m, err := formdisplay.Parse(doc)
	if err != nil {
		return model.Model{}, nil, err
	}
	return m, store, nil
}

// emit regenerates the document and either persists it through the store or
// writes the encoded YAML to stdout.
func (in *input) emit(ctx context.Context, cmd *cobra.Command, m model.Model, store *internalloader.Store) error {
	doc := formdisplay.Generate(m)

	if in.write {
		switch {
		case store != nil:
			return store.Write(ctx, doc)
		case in.file != "":
			data, err := display.Encode(doc)
			if err != nil {
				return err
			}
			return os.WriteFile(in.file, data, 0o644)
		default:
			return errors.New("--write needs --file or --dir")
		}
	}

	data, err := display.Encode(doc)
	if err != nil {
		return err
	}
	cmd.OutOrStdout().Write(data)
	return nil
}

func newRootCmd() *cobra.Command {
	in := &input{}

	root := &cobra.Command{
		Use:           "formdisplay",
		Short:         "Inspect and rearrange form display documents",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	in.register(root)

	root.AddCommand(
		newTreeCmd(in),
		newReportCmd(in),
		newPreviewCmd(in),
		newReorderCmd(in),
		newGroupCmd(in),
		newFieldCmd(in),
		newScaffoldCmd(in),
		newLintCmd(in),
	)
	return root
}
