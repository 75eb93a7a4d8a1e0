package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formdisplay/pkg/render"
	"github.com/goliatone/go-formdisplay/pkg/renderers/html"
	"github.com/goliatone/go-formdisplay/pkg/renderers/markdown"
	"github.com/goliatone/go-formdisplay/pkg/renderers/tree"
)

func newTreeCmd(in *input) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the arrangement as an ASCII tree",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, _, err := in.load(cmd.Context())
			if err != nil {
				return err
			}

			out, err := tree.New().Render(cmd.Context(), m, render.Options{})
			if err != nil {
				return err
			}
			cmd.OutOrStdout().Write(out)
			return nil
		},
	}
}

func newReportCmd(in *input) *cobra.Command {
	var showEmpty bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print a markdown arrangement report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, _, err := in.load(cmd.Context())
			if err != nil {
				return err
			}

			renderer, err := markdown.New()
			if err != nil {
				return err
			}
			out, err := renderer.Render(cmd.Context(), m, render.Options{ShowEmptyGroups: showEmpty})
			if err != nil {
				return err
			}
			cmd.OutOrStdout().Write(out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&showEmpty, "show-empty", false, "include groups without children")
	return cmd
}

func newPreviewCmd(in *input) *cobra.Command {
	var (
		output    string
		showEmpty bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render a static HTML preview of the form",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, _, err := in.load(cmd.Context())
			if err != nil {
				return err
			}

			renderer, err := html.New()
			if err != nil {
				return err
			}
			out, err := renderer.Render(cmd.Context(), m, render.Options{ShowEmptyGroups: showEmpty})
			if err != nil {
				return err
			}

			if output != "" {
				return writeFile(output, out)
			}
			cmd.OutOrStdout().Write(out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the preview to a file")
	cmd.Flags().BoolVar(&showEmpty, "show-empty", false, "include groups without children")
	return cmd
}

func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}
