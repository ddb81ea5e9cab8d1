package models

import "strings"

const listSeparator = ","

func joinList(values []string) string {
	return strings.Join(values, listSeparator)
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, listSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// All lists every model for schema migration.
func All() []interface{} {
	return []interface{}{
		&ReleaseModel{},
		&ToolKitModel{},
		&ComponentTypeModel{},
		&ComponentModel{},
		&ComponentVersionModel{},
		&PlatformModel{},
		&ReleasePackageModel{},
		&BranchModel{},
		&UserModel{},
		&ChangeRequestModel{},
		&ChangeRequestHistoryModel{},
		&LocationEventModel{},
	}
}
