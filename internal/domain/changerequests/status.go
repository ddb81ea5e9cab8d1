package changerequests

import (
	"strconv"
	"strings"
)

// Status is the lifecycle state of a change request.
type Status string

// Change request statuses
const (
	StatusSubmitted Status = "SUBMITTED"
	StatusReviewed  Status = "REVIEWED"
	StatusApproved  Status = "APPROVED"
	StatusComplete  Status = "COMPLETE"
)

// Statuses lists every status in lifecycle order.
func Statuses() []Status {
	return []Status{StatusSubmitted, StatusReviewed, StatusApproved, StatusComplete}
}

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	switch s {
	case StatusSubmitted, StatusReviewed, StatusApproved, StatusComplete:
		return true
	default:
		return false
	}
}

// ParseStatus converts user input into a Status.
func ParseStatus(value string) (Status, bool) {
	s := Status(strings.ToUpper(strings.TrimSpace(value)))
	return s, s.IsValid()
}

// Type classifies a change request.
type Type string

// Change request types. TypeDevelopment requests bypass the status gate
// when checked for readiness against development branches.
const (
	TypeDefect      Type = "DEFECT"
	TypeFeature     Type = "FEATURE"
	TypeDevelopment Type = "DEV"
)

// ParseType converts user input into a Type.
func ParseType(value string) (Type, bool) {
	t := Type(strings.ToUpper(strings.TrimSpace(value)))
	switch t {
	case TypeDefect, TypeFeature, TypeDevelopment:
		return t, true
	case "DEVELOPMENT":
		return TypeDevelopment, true
	default:
		return t, false
	}
}

// Severity ranks a change request from 1 (critical) to 4 (low).
type Severity int

// Severity bounds
const (
	SeverityCritical Severity = 1
	SeverityLow      Severity = 4
)

// ParseSeverity converts user input into a Severity.
func ParseSeverity(value string) (Severity, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, false
	}
	s := Severity(n)
	return s, s >= SeverityCritical && s <= SeverityLow
}
