// Package model contains the GORM persistence models. IDs are assigned in
// BeforeCreate hooks so the models behave the same on PostgreSQL and on the
// sqlite databases the tests run against.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientModel mirrors the 'clients' table.
type ClientModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email          string    `gorm:"type:varchar(255);index"`
	PhoneNumber    string    `gorm:"type:varchar(32);index"`
	PasswordHash   string    `gorm:"type:varchar(255)"`
	Name           string    `gorm:"type:varchar(100)"`
	DateOfBirth    *time.Time
	Address        string `gorm:"type:text"`
	Bio            string `gorm:"type:text"`
	ProfilePicture string `gorm:"type:varchar(512)"`
	Gender         string `gorm:"type:varchar(1)"`
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time `gorm:"index"`

	Roles []RoleModel `gorm:"many2many:client_roles"`
}

// TableName explicitly sets the table name for GORM.
func (ClientModel) TableName() string {
	return "clients"
}

// BeforeCreate assigns the primary key when the caller did not.
func (m *ClientModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// RoleModel mirrors the 'roles' table.
type RoleModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time `gorm:"index"`

	Permissions []PermissionModel `gorm:"many2many:role_permissions"`
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}

// BeforeCreate assigns the primary key when the caller did not.
func (m *RoleModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// PermissionModel mirrors the 'permissions' table.
type PermissionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null;index"`
	Description string    `gorm:"type:text"`
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (PermissionModel) TableName() string {
	return "permissions"
}

// BeforeCreate assigns the primary key when the caller did not.
func (m *PermissionModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
