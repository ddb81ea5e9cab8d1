package commands

import (
	"strings"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/apperr"

	"github.com/spf13/cobra"
)

// Switch names shared by several verbs.
const (
	flagToolKit       = "toolkit"
	flagComponent     = "component"
	flagChangeRequest = "cr"
	flagBranch        = "branch"
	flagStatus        = "status"
	flagName          = "name"
	flagDescription   = "description"
	flagRelease       = "release"
	flagStage         = "stage"
	flagType          = "type"
	flagPlatform      = "platform"
	flagLogin         = "login"
	flagLimit         = "limit"
)

// requireString returns a trimmed switch value, failing when it is empty.
func requireString(cmd *cobra.Command, name string) (string, error) {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", apperr.Wrap(apperr.CodeInvalidInput, err, "invalid --%s", name)
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return "", apperr.InvalidInput("--%s is required", name)
	}
	return v, nil
}

// optionalString returns a trimmed switch value, possibly empty.
func optionalString(cmd *cobra.Command, name string) (string, error) {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", apperr.Wrap(apperr.CodeInvalidInput, err, "invalid --%s", name)
	}
	return strings.TrimSpace(v), nil
}

// changedString returns a pointer to the switch value when it was given on
// the command line, nil otherwise.
func changedString(cmd *cobra.Command, name string) (*string, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}
	v, err := optionalString(cmd, name)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// splitCSV splits a comma separated switch value, dropping empty items.
func splitCSV(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
