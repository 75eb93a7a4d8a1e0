package model

import (
	"regexp"
	"strings"
)

// GroupNamePrefix is the fixed prefix every derived group name carries.
const GroupNamePrefix = "group_"

var machineNameRuns = regexp.MustCompile(`[^a-z0-9]+`)

// MachineName converts a display label into a machine-safe identifier:
// lowercase, non-alphanumeric runs collapsed to single underscores, edge
// underscores trimmed.
func MachineName(label string) string {
	lowered := strings.ToLower(strings.TrimSpace(label))
	collapsed := machineNameRuns.ReplaceAllString(lowered, "_")
	return strings.Trim(collapsed, "_")
}

// GroupName derives a group name from a label by prefixing its machine name.
// Returns empty string when the label yields no usable identifier.
func GroupName(label string) string {
	machine := MachineName(label)
	if machine == "" {
		return ""
	}
	return GroupNamePrefix + machine
}
