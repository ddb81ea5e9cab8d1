package toolkits

import (
	"time"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/validators"
)

// Platform is a build/ship target such as 64-rh7.
type Platform struct {
	Name        string `validate:"required,etreename,max=32"`
	ShortName   string `validate:"required,etreename,max=8"`
	Description string `validate:"max=255"`
}

// Validate for validating Platform struct
func (p *Platform) Validate() error {
	return validators.Struct(p)
}

// ReleasePackage is a shippable bundle of components of one tool kit built
// for one platform.
type ReleasePackage struct {
	ID           string   `validate:"required,uuid4"`
	Name         string   `validate:"required,etreename,max=128"`
	ToolKitName  string   `validate:"required,version"`
	PlatformName string   `validate:"required,etreename"`
	Components   []string `validate:"required,min=1,dive,etreename"`
	CreatedBy    string   `validate:"required,login"`
	CreatedAt    time.Time
}

// Validate for validating ReleasePackage struct
func (p *ReleasePackage) Validate() error {
	return validators.Struct(p)
}
