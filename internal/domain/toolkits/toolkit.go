package toolkits

import (
	"time"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/validators"
)

// Release is a named product release that groups tool kits.
type Release struct {
	Name        string `validate:"required,version"`
	Description string `validate:"max=255"`
	CreatedBy   string `validate:"required,login"`
	CreatedAt   time.Time
}

// Validate for validating Release struct
func (r *Release) Validate() error {
	return validators.Struct(r)
}

// ToolKit is a versioned release container at a given stage.
type ToolKit struct {
	Name        string `validate:"required,version,tkrelease"`
	ReleaseName string `validate:"required,version"`
	Stage       Stage  `validate:"required,oneof=DEVELOPMENT PREVIEW READY SHIP PRODUCTION XTINCT"`
	Description string `validate:"max=255"`
	CreatedBy   string `validate:"required,login"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate for validating ToolKit struct
func (t *ToolKit) Validate() error {
	return validators.Struct(t)
}

// IsDevelopment reports whether the tool kit is still in development.
func (t *ToolKit) IsDevelopment() bool {
	return t.Stage == StageDevelopment
}

// ToolKitQuery filters tool kit listings.
type ToolKitQuery struct {
	ReleaseName string
	Stage       Stage
}
