package models

import (
	"time"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/users"
)

// UserModel is the GORM database model for users. Roles are stored as a
// comma separated list.
type UserModel struct {
	Login     string    `gorm:"primaryKey;type:varchar(64)"`
	Name      string    `gorm:"not null;type:varchar(128)"`
	Email     string    `gorm:"type:varchar(255)"`
	Roles     string    `gorm:"type:varchar(255)"`
	Active    bool      `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *users.User {
	var roles []users.Role
	for _, r := range splitList(m.Roles) {
		roles = append(roles, users.Role(r))
	}
	return &users.User{
		Login:     m.Login,
		Name:      m.Name,
		Email:     m.Email,
		Roles:     roles,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *users.User) {
	roles := make([]string, len(u.Roles))
	for i, r := range u.Roles {
		roles[i] = string(r)
	}
	m.Login = u.Login
	m.Name = u.Name
	m.Email = u.Email
	m.Roles = joinList(roles)
	m.Active = u.Active
	m.CreatedAt = u.CreatedAt
	m.UpdatedAt = u.UpdatedAt
}
