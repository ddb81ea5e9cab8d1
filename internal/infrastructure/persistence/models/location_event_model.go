package models

import (
	"time"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/events"
)

// LocationEventModel is the GORM database model for location events
type LocationEventModel struct {
	ID            string    `gorm:"primaryKey;type:varchar(36)"`
	ToolKitName   string    `gorm:"not null;index:idx_event_tk_comp;type:varchar(32)"`
	ComponentName string    `gorm:"not null;index:idx_event_tk_comp;type:varchar(64)"`
	Location      string    `gorm:"not null;type:varchar(8)"`
	Event         string    `gorm:"not null;type:varchar(64)"`
	Message       string    `gorm:"type:varchar(1024)"`
	User          string    `gorm:"not null;type:varchar(64)"`
	CreatedAt     time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (LocationEventModel) TableName() string {
	return "location_events"
}

// ToDomain converts GORM model to domain entity
func (m *LocationEventModel) ToDomain() *events.LocationEvent {
	return &events.LocationEvent{
		ID:            m.ID,
		ToolKitName:   m.ToolKitName,
		ComponentName: m.ComponentName,
		Location:      events.Location(m.Location),
		Event:         m.Event,
		Message:       m.Message,
		User:          m.User,
		CreatedAt:     m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *LocationEventModel) FromDomain(e *events.LocationEvent) {
	m.ID = e.ID
	m.ToolKitName = e.ToolKitName
	m.ComponentName = e.ComponentName
	m.Location = string(e.Location)
	m.Event = e.Event
	m.Message = e.Message
	m.User = e.User
	m.CreatedAt = e.CreatedAt
}
