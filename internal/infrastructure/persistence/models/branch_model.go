package models

import (
	"time"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/branches"
)

// BranchModel is the GORM database model for branch bindings
type BranchModel struct {
	Name          string    `gorm:"primaryKey;type:varchar(128)"`
	ComponentName string    `gorm:"primaryKey;type:varchar(64)"`
	ToolKitName   string    `gorm:"primaryKey;type:varchar(32)"`
	Type          string    `gorm:"not null;type:varchar(16)"`
	Description   string    `gorm:"type:varchar(255)"`
	CreatedBy     string    `gorm:"not null;type:varchar(64)"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (BranchModel) TableName() string {
	return "branches"
}

// ToDomain converts GORM model to domain entity
func (m *BranchModel) ToDomain() *branches.Branch {
	return &branches.Branch{
		Name:          m.Name,
		ComponentName: m.ComponentName,
		ToolKitName:   m.ToolKitName,
		Type:          branches.Type(m.Type),
		Description:   m.Description,
		CreatedBy:     m.CreatedBy,
		CreatedAt:     m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *BranchModel) FromDomain(b *branches.Branch) {
	m.Name = b.Name
	m.ComponentName = b.ComponentName
	m.ToolKitName = b.ToolKitName
	m.Type = string(b.Type)
	m.Description = b.Description
	m.CreatedBy = b.CreatedBy
	m.CreatedAt = b.CreatedAt
}
