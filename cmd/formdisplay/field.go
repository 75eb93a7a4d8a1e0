package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFieldCmd(in *input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "field",
		Short: "Move fields, toggle visibility, change widgets or settings",
	}
	cmd.AddCommand(
		newFieldMoveCmd(in),
		newFieldToggleCmd(in),
		newFieldWidgetCmd(in),
		newFieldSettingsCmd(in),
	)
	return cmd
}

func newFieldMoveCmd(in *input) *cobra.Command {
	return &cobra.Command{
		Use:   "move <field> [group]",
		Short: "Move a field into a group; omit group to move it to root",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, store, err := in.load(cmd.Context())
			if err != nil {
				return err
			}
			if !m.HasField(args[0]) {
				return fmt.Errorf("field %q not found", args[0])
			}

			group := ""
			if len(args) == 2 {
				group = args[1]
				if !m.HasGroup(group) {
					return fmt.Errorf("group %q not found", group)
				}
			}
			return in.emit(cmd.Context(), cmd, m.MoveFieldToGroup(args[0], group), store)
		},
	}
}

func newFieldToggleCmd(in *input) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <field>",
		Short: "Flip a field in or out of the hidden set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, store, err := in.load(cmd.Context())
			if err != nil {
				return err
			}
			return in.emit(cmd.Context(), cmd, m.ToggleFieldVisibility(args[0]), store)
		},
	}
}

func newFieldWidgetCmd(in *input) *cobra.Command {
	return &cobra.Command{
		Use:   "widget <field> <widget>",
		Short: "Change the widget rendering a field",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, store, err := in.load(cmd.Context())
			if err != nil {
				return err
			}
			next, err := m.SetFieldWidget(args[0], args[1])
			if err != nil {
				return err
			}
			return in.emit(cmd.Context(), cmd, next, store)
		},
	}
}

func newFieldSettingsCmd(in *input) *cobra.Command {
	var settings map[string]string

	cmd := &cobra.Command{
		Use:   "settings <field>",
		Short: "Merge key=value pairs onto a field's widget settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(settings) == 0 {
				return fmt.Errorf("at least one --set key=value is required")
			}
			m, store, err := in.load(cmd.Context())
			if err != nil {
				return err
			}

			patch := make(map[string]any, len(settings))
			for key, value := range settings {
				patch[key] = value
			}
			next, err := m.UpdateFieldSettings(args[0], patch)
			if err != nil {
				return err
			}
			return in.emit(cmd.Context(), cmd, next, store)
		},
	}
	cmd.Flags().StringToStringVar(&settings, "set", nil, "setting to merge, repeatable (key=value)")
	return cmd
}
