// Package branches defines source-control branches bound to a component in
// one or more tool kits, classified as production or development.
package branches

import (
	"strings"
	"time"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/validators"
)

// Type classifies a branch.
type Type string

// Branch types
const (
	TypeProduction  Type = "PRODUCTION"
	TypeDevelopment Type = "DEVELOPMENT"
)

// ParseType converts user input such as "prod" or "development" into a Type.
func ParseType(value string) (Type, bool) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "PROD", string(TypeProduction):
		return TypeProduction, true
	case "DEV", string(TypeDevelopment):
		return TypeDevelopment, true
	default:
		return "", false
	}
}

// Branch binds a branch name to a component in a tool kit. The same branch
// name may be bound to a component in several tool kits.
type Branch struct {
	Name          string `validate:"required,etreename,max=128"`
	ComponentName string `validate:"required,etreename"`
	ToolKitName   string `validate:"required,version"`
	Type          Type   `validate:"required,oneof=PRODUCTION DEVELOPMENT"`
	Description   string `validate:"max=255"`
	CreatedBy     string `validate:"required,login"`
	CreatedAt     time.Time
}

// Validate for validating Branch struct
func (b *Branch) Validate() error {
	return validators.Struct(b)
}

// IsProduction reports whether the branch is a production branch.
func (b *Branch) IsProduction() bool {
	return b.Type == TypeProduction
}

// BranchQuery filters branch listings. Empty fields match everything.
type BranchQuery struct {
	Name          string
	ComponentName string
	ToolKitName   string
}

// BranchUpdate carries the mutable fields of a branch; nil means unchanged.
type BranchUpdate struct {
	Type        *Type
	Description *string
}
