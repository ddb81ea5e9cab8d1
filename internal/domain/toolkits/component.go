package toolkits

import (
	"time"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/validators"
)

// ComponentType classifies components (e.g. TOOL, LIBRARY, DATA).
type ComponentType struct {
	Name        string `validate:"required,etreename,max=32"`
	Description string `validate:"max=255"`
}

// Validate for validating ComponentType struct
func (c *ComponentType) Validate() error {
	return validators.Struct(c)
}

// Component is a named subsystem tracked within tool kits.
type Component struct {
	Name              string `validate:"required,etreename,max=64"`
	ComponentTypeName string `validate:"required,etreename"`
	Description       string `validate:"max=255"`
	CreatedBy         string `validate:"required,login"`
	CreatedAt         time.Time
}

// Validate for validating Component struct
func (c *Component) Validate() error {
	return validators.Struct(c)
}

// ComponentVersion binds a component into a tool kit.
type ComponentVersion struct {
	ToolKitName   string `validate:"required,version"`
	ComponentName string `validate:"required,etreename"`
	Owner         string `validate:"omitempty,login"`
	CreatedAt     time.Time
}

// Validate for validating ComponentVersion struct
func (c *ComponentVersion) Validate() error {
	return validators.Struct(c)
}
