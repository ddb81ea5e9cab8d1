package changerequests

import (
	"time"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/validators"
)

// DevSentinel is the legacy change request name accepted by readiness
// checks in place of a stored development request.
//
// Deprecated: store a request of TypeDevelopment instead.
const DevSentinel = "DEV"

// ChangeRequest is a tracked unit of change against a component of a tool kit.
type ChangeRequest struct {
	ID               string   `validate:"required,uuid4"`
	Name             string   `validate:"required,etreename,max=32"`
	Description      string   `validate:"required,max=1024"`
	Status           Status   `validate:"required,oneof=SUBMITTED REVIEWED APPROVED COMPLETE"`
	Type             Type     `validate:"required,oneof=DEFECT FEATURE DEV"`
	Severity         Severity `validate:"min=1,max=4"`
	ImpactedCustomer string   `validate:"max=128"`
	ToolKitName      string   `validate:"required,version"`
	ComponentName    string   `validate:"required,etreename"`
	CreatedBy        string   `validate:"required,login"`
	UpdatedBy        string   `validate:"omitempty,login"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Validate for validating ChangeRequest struct
func (c *ChangeRequest) Validate() error {
	return validators.Struct(c)
}

// IsDevelopment reports whether the request is a development request.
func (c *ChangeRequest) IsDevelopment() bool {
	return c.Type == TypeDevelopment
}

// DevelopmentRequest returns the in-memory request standing in for the
// DevSentinel name. It is never persisted.
func DevelopmentRequest(componentName string) *ChangeRequest {
	return &ChangeRequest{
		Name:          DevSentinel,
		Description:   "development change request",
		Type:          TypeDevelopment,
		ComponentName: componentName,
	}
}

// History records one applied status transition.
type History struct {
	ID              string `validate:"required,uuid4"`
	ChangeRequestID string `validate:"required,uuid4"`
	FromStatus      Status `validate:"required"`
	ToStatus        Status `validate:"required"`
	Action          Action `validate:"required"`
	Actor           string `validate:"required,login"`
	CreatedAt       time.Time
}

// Validate for validating History struct
func (h *History) Validate() error {
	return validators.Struct(h)
}

// ChangeRequestQuery filters change request listings. Empty fields match
// everything; Limit <= 0 means no limit.
type ChangeRequestQuery struct {
	ToolKitName   string
	ComponentName string
	Status        Status
	Type          Type
	Limit         int
}

// ChangeRequestUpdate carries the mutable descriptive fields of a change
// request; nil means unchanged. Status is changed only through the workflow.
type ChangeRequestUpdate struct {
	Description      *string
	Severity         *Severity
	ImpactedCustomer *string
}

// Apply merges the update into c.
func (u *ChangeRequestUpdate) Apply(c *ChangeRequest) {
	if u.Description != nil {
		c.Description = *u.Description
	}
	if u.Severity != nil {
		c.Severity = *u.Severity
	}
	if u.ImpactedCustomer != nil {
		c.ImpactedCustomer = *u.ImpactedCustomer
	}
}

// IsEmpty reports whether the update changes nothing.
func (u *ChangeRequestUpdate) IsEmpty() bool {
	return u.Description == nil && u.Severity == nil && u.ImpactedCustomer == nil
}
