package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SupportModel mirrors the 'supports' table. ClientID is optional because
// tickets can be opened anonymously.
type SupportModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ClientID    *uuid.UUID `gorm:"type:uuid;index"`
	Message     string     `gorm:"type:text;not null"`
	FullName    string     `gorm:"type:varchar(255)"`
	Email       string     `gorm:"type:varchar(255)"`
	PhoneNumber string     `gorm:"type:varchar(50)"`
	Status      string     `gorm:"type:varchar(16);not null"`
	ParentID    *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (SupportModel) TableName() string {
	return "supports"
}

// BeforeCreate assigns the primary key when the caller did not.
func (m *SupportModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
