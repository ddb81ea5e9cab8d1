package models

import (
	"time"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/changerequests"
)

// ChangeRequestModel is the GORM database model for change requests
type ChangeRequestModel struct {
	ID               string    `gorm:"primaryKey;type:varchar(36)"`
	Name             string    `gorm:"not null;uniqueIndex;type:varchar(32)"`
	Description      string    `gorm:"not null;type:varchar(1024)"`
	Status           string    `gorm:"not null;index;type:varchar(16)"`
	Type             string    `gorm:"not null;type:varchar(16)"`
	Severity         int       `gorm:"not null"`
	ImpactedCustomer string    `gorm:"type:varchar(128)"`
	ToolKitName      string    `gorm:"not null;index:idx_cr_tk_comp;type:varchar(32)"`
	ComponentName    string    `gorm:"not null;index:idx_cr_tk_comp;type:varchar(64)"`
	CreatedBy        string    `gorm:"not null;type:varchar(64)"`
	UpdatedBy        string    `gorm:"type:varchar(64)"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time
}

// TableName specifies the table name for GORM
func (ChangeRequestModel) TableName() string {
	return "change_requests"
}

// ToDomain converts GORM model to domain entity
func (m *ChangeRequestModel) ToDomain() *changerequests.ChangeRequest {
	return &changerequests.ChangeRequest{
		ID:               m.ID,
		Name:             m.Name,
		Description:      m.Description,
		Status:           changerequests.Status(m.Status),
		Type:             changerequests.Type(m.Type),
		Severity:         changerequests.Severity(m.Severity),
		ImpactedCustomer: m.ImpactedCustomer,
		ToolKitName:      m.ToolKitName,
		ComponentName:    m.ComponentName,
		CreatedBy:        m.CreatedBy,
		UpdatedBy:        m.UpdatedBy,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ChangeRequestModel) FromDomain(c *changerequests.ChangeRequest) {
	m.ID = c.ID
	m.Name = c.Name
	m.Description = c.Description
	m.Status = string(c.Status)
	m.Type = string(c.Type)
	m.Severity = int(c.Severity)
	m.ImpactedCustomer = c.ImpactedCustomer
	m.ToolKitName = c.ToolKitName
	m.ComponentName = c.ComponentName
	m.CreatedBy = c.CreatedBy
	m.UpdatedBy = c.UpdatedBy
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt
}

// ChangeRequestHistoryModel is the GORM database model for applied status transitions
type ChangeRequestHistoryModel struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)"`
	ChangeRequestID string    `gorm:"not null;index;type:varchar(36)"`
	FromStatus      string    `gorm:"not null;type:varchar(16)"`
	ToStatus        string    `gorm:"not null;type:varchar(16)"`
	Action          string    `gorm:"not null;type:varchar(16)"`
	Actor           string    `gorm:"not null;type:varchar(64)"`
	CreatedAt       time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (ChangeRequestHistoryModel) TableName() string {
	return "change_request_history"
}

// ToDomain converts GORM model to domain entity
func (m *ChangeRequestHistoryModel) ToDomain() *changerequests.History {
	return &changerequests.History{
		ID:              m.ID,
		ChangeRequestID: m.ChangeRequestID,
		FromStatus:      changerequests.Status(m.FromStatus),
		ToStatus:        changerequests.Status(m.ToStatus),
		Action:          changerequests.Action(m.Action),
		Actor:           m.Actor,
		CreatedAt:       m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ChangeRequestHistoryModel) FromDomain(h *changerequests.History) {
	m.ID = h.ID
	m.ChangeRequestID = h.ChangeRequestID
	m.FromStatus = string(h.FromStatus)
	m.ToStatus = string(h.ToStatus)
	m.Action = string(h.Action)
	m.Actor = h.Actor
	m.CreatedAt = h.CreatedAt
}
