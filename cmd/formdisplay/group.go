package main

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formdisplay/pkg/model"
)

var formatKinds = []string{
	string(model.FormatTabs),
	string(model.FormatTab),
	string(model.FormatDetails),
	string(model.FormatDetailsSidebar),
	string(model.FormatFieldset),
}

func newGroupCmd(in *input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Create, delete, update, or move groups",
	}
	cmd.AddCommand(
		newGroupCreateCmd(in),
		newGroupDeleteCmd(in),
		newGroupUpdateCmd(in),
		newGroupMoveCmd(in),
	)
	return cmd
}

func newGroupCreateCmd(in *input) *cobra.Command {
	var (
		label  string
		name   string
		format string
		parent string
		weight int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a new group (interactive when --label is omitted)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, store, err := in.load(cmd.Context())
			if err != nil {
				return err
			}

			if label == "" {
				if err := promptGroup(m, &label, &format, &parent); err != nil {
					return err
				}
			}
			if format == "" {
				format = string(model.FormatFieldset)
			}

			next := m.AddGroup(model.Group{
				Name:   name,
				Label:  label,
				Parent: parent,
				Weight: weight,
				Format: model.Format(format),
			})
			if len(next.Groups) == len(m.Groups) {
				return fmt.Errorf("group for label %q was not created (name taken or parent missing)", label)
			}
			return in.emit(cmd.Context(), cmd, next, store)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&label, "label", "", "display label; the group name derives from it unless --name is set")
	flags.StringVar(&name, "name", "", "explicit machine name (group_ prefix recommended)")
	flags.StringVar(&format, "format", "", fmt.Sprintf("format kind %v", formatKinds))
	flags.StringVar(&parent, "parent", "", "parent group name (empty for root)")
	flags.IntVar(&weight, "weight", 0, "sibling weight")
	return cmd
}

// promptGroup runs the interactive wizard used when no label flag is given.
func promptGroup(m model.Model, label, format, parent *string) error {
	if err := survey.AskOne(&survey.Input{Message: "Group label:"}, label, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	if err := survey.AskOne(&survey.Select{
		Message: "Format:",
		Options: formatKinds,
		Default: string(model.FormatFieldset),
	}, format); err != nil {
		return err
	}

	parents := []string{"(root)"}
	for _, g := range m.Groups {
		parents = append(parents, g.Name)
	}
	var chosen string
	if err := survey.AskOne(&survey.Select{
		Message: "Parent:",
		Options: parents,
		Default: "(root)",
	}, &chosen); err != nil {
		return err
	}
	if chosen != "(root)" {
		*parent = chosen
	}
	return nil
}

func newGroupDeleteCmd(in *input) *cobra.Command {
	var keepInParent bool

	cmd := &cobra.Command{
		Use:   "delete <group>",
		Short: "Remove a group, re-parenting its children",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, store, err := in.load(cmd.Context())
			if err != nil {
				return err
			}
			if !m.HasGroup(args[0]) {
				return fmt.Errorf("group %q not found", args[0])
			}
			return in.emit(cmd.Context(), cmd, m.DeleteGroup(args[0], keepInParent), store)
		},
	}
	cmd.Flags().BoolVar(&keepInParent, "to-parent", true, "move children to the deleted group's parent instead of root")
	return cmd
}

func newGroupUpdateCmd(in *input) *cobra.Command {
	var (
		label  string
		format string
		weight int
	)

	cmd := &cobra.Command{
		Use:   "update <group>",
		Short: "Change a group's label, format, or weight",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, store, err := in.load(cmd.Context())
			if err != nil {
				return err
			}
			if !m.HasGroup(args[0]) {
				return fmt.Errorf("group %q not found", args[0])
			}

			patch := model.GroupPatch{Label: label, Format: model.Format(format)}
			if cmd.Flags().Changed("weight") {
				patch.Weight = &weight
			}
			return in.emit(cmd.Context(), cmd, m.UpdateGroup(args[0], patch), store)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&label, "label", "", "new display label")
	flags.StringVar(&format, "format", "", fmt.Sprintf("new format kind %v", formatKinds))
	flags.IntVar(&weight, "weight", 0, "new sibling weight")
	return cmd
}

func newGroupMoveCmd(in *input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <group> [parent]",
		Short: "Re-parent a group; omit parent to move it to root",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, store, err := in.load(cmd.Context())
			if err != nil {
				return err
			}
			if !m.HasGroup(args[0]) {
				return fmt.Errorf("group %q not found", args[0])
			}

			parent := ""
			if len(args) == 2 {
				parent = args[1]
			}
			next, err := m.MoveGroupToParent(args[0], parent)
			if err != nil {
				if errors.Is(err, model.ErrCycle) {
					return fmt.Errorf("cannot move %q into its own subtree", args[0])
				}
				return err
			}
			return in.emit(cmd.Context(), cmd, next, store)
		},
	}
	return cmd
}
