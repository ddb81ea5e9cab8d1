package models

import (
	"time"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/toolkits"
)

// ReleaseModel is the GORM database model for releases
type ReleaseModel struct {
	Name        string    `gorm:"primaryKey;type:varchar(32)"`
	Description string    `gorm:"type:varchar(255)"`
	CreatedBy   string    `gorm:"not null;type:varchar(64)"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ReleaseModel) TableName() string {
	return "releases"
}

// ToDomain converts GORM model to domain entity
func (m *ReleaseModel) ToDomain() *toolkits.Release {
	return &toolkits.Release{
		Name:        m.Name,
		Description: m.Description,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ReleaseModel) FromDomain(r *toolkits.Release) {
	m.Name = r.Name
	m.Description = r.Description
	m.CreatedBy = r.CreatedBy
	m.CreatedAt = r.CreatedAt
}

// ToolKitModel is the GORM database model for tool kits
type ToolKitModel struct {
	Name        string    `gorm:"primaryKey;type:varchar(32)"`
	ReleaseName string    `gorm:"not null;index;type:varchar(32)"`
	Stage       string    `gorm:"not null;index;type:varchar(16)"`
	Description string    `gorm:"type:varchar(255)"`
	CreatedBy   string    `gorm:"not null;type:varchar(64)"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (ToolKitModel) TableName() string {
	return "tool_kits"
}

// ToDomain converts GORM model to domain entity
func (m *ToolKitModel) ToDomain() *toolkits.ToolKit {
	return &toolkits.ToolKit{
		Name:        m.Name,
		ReleaseName: m.ReleaseName,
		Stage:       toolkits.Stage(m.Stage),
		Description: m.Description,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ToolKitModel) FromDomain(t *toolkits.ToolKit) {
	m.Name = t.Name
	m.ReleaseName = t.ReleaseName
	m.Stage = string(t.Stage)
	m.Description = t.Description
	m.CreatedBy = t.CreatedBy
	m.CreatedAt = t.CreatedAt
	m.UpdatedAt = t.UpdatedAt
}

// ComponentTypeModel is the GORM database model for component types
type ComponentTypeModel struct {
	Name        string `gorm:"primaryKey;type:varchar(32)"`
	Description string `gorm:"type:varchar(255)"`
}

// TableName specifies the table name for GORM
func (ComponentTypeModel) TableName() string {
	return "component_types"
}

// ToDomain converts GORM model to domain entity
func (m *ComponentTypeModel) ToDomain() *toolkits.ComponentType {
	return &toolkits.ComponentType{Name: m.Name, Description: m.Description}
}

// FromDomain converts domain entity to GORM model
func (m *ComponentTypeModel) FromDomain(c *toolkits.ComponentType) {
	m.Name = c.Name
	m.Description = c.Description
}

// ComponentModel is the GORM database model for components
type ComponentModel struct {
	Name              string    `gorm:"primaryKey;type:varchar(64)"`
	ComponentTypeName string    `gorm:"not null;index;type:varchar(32)"`
	Description       string    `gorm:"type:varchar(255)"`
	CreatedBy         string    `gorm:"not null;type:varchar(64)"`
	CreatedAt         time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ComponentModel) TableName() string {
	return "components"
}

// ToDomain converts GORM model to domain entity
func (m *ComponentModel) ToDomain() *toolkits.Component {
	return &toolkits.Component{
		Name:              m.Name,
		ComponentTypeName: m.ComponentTypeName,
		Description:       m.Description,
		CreatedBy:         m.CreatedBy,
		CreatedAt:         m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ComponentModel) FromDomain(c *toolkits.Component) {
	m.Name = c.Name
	m.ComponentTypeName = c.ComponentTypeName
	m.Description = c.Description
	m.CreatedBy = c.CreatedBy
	m.CreatedAt = c.CreatedAt
}

// ComponentVersionModel is the GORM database model binding a component into a tool kit
type ComponentVersionModel struct {
	ToolKitName   string    `gorm:"primaryKey;type:varchar(32)"`
	ComponentName string    `gorm:"primaryKey;type:varchar(64)"`
	Owner         string    `gorm:"type:varchar(64)"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ComponentVersionModel) TableName() string {
	return "component_versions"
}

// ToDomain converts GORM model to domain entity
func (m *ComponentVersionModel) ToDomain() *toolkits.ComponentVersion {
	return &toolkits.ComponentVersion{
		ToolKitName:   m.ToolKitName,
		ComponentName: m.ComponentName,
		Owner:         m.Owner,
		CreatedAt:     m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ComponentVersionModel) FromDomain(c *toolkits.ComponentVersion) {
	m.ToolKitName = c.ToolKitName
	m.ComponentName = c.ComponentName
	m.Owner = c.Owner
	m.CreatedAt = c.CreatedAt
}

// PlatformModel is the GORM database model for platforms
type PlatformModel struct {
	Name        string `gorm:"primaryKey;type:varchar(32)"`
	ShortName   string `gorm:"not null;uniqueIndex;type:varchar(8)"`
	Description string `gorm:"type:varchar(255)"`
}

// TableName specifies the table name for GORM
func (PlatformModel) TableName() string {
	return "platforms"
}

// ToDomain converts GORM model to domain entity
func (m *PlatformModel) ToDomain() *toolkits.Platform {
	return &toolkits.Platform{Name: m.Name, ShortName: m.ShortName, Description: m.Description}
}

// FromDomain converts domain entity to GORM model
func (m *PlatformModel) FromDomain(p *toolkits.Platform) {
	m.Name = p.Name
	m.ShortName = p.ShortName
	m.Description = p.Description
}

// ReleasePackageModel is the GORM database model for release packages
type ReleasePackageModel struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)"`
	Name         string    `gorm:"not null;uniqueIndex;type:varchar(128)"`
	ToolKitName  string    `gorm:"not null;index;type:varchar(32)"`
	PlatformName string    `gorm:"not null;type:varchar(32)"`
	Components   string    `gorm:"type:text"`
	CreatedBy    string    `gorm:"not null;type:varchar(64)"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ReleasePackageModel) TableName() string {
	return "release_packages"
}

// ToDomain converts GORM model to domain entity
func (m *ReleasePackageModel) ToDomain() *toolkits.ReleasePackage {
	return &toolkits.ReleasePackage{
		ID:           m.ID,
		Name:         m.Name,
		ToolKitName:  m.ToolKitName,
		PlatformName: m.PlatformName,
		Components:   splitList(m.Components),
		CreatedBy:    m.CreatedBy,
		CreatedAt:    m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ReleasePackageModel) FromDomain(p *toolkits.ReleasePackage) {
	m.ID = p.ID
	m.Name = p.Name
	m.ToolKitName = p.ToolKitName
	m.PlatformName = p.PlatformName
	m.Components = joinList(p.Components)
	m.CreatedBy = p.CreatedBy
	m.CreatedAt = p.CreatedAt
}
