package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GlobalVarModel mirrors the 'global_vars' table.
type GlobalVarModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Key         string    `gorm:"column:key;type:varchar(100);uniqueIndex;not null"`
	Description string    `gorm:"type:text"`
	Value       string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (GlobalVarModel) TableName() string {
	return "global_vars"
}

// BeforeCreate assigns the primary key when the caller did not.
func (m *GlobalVarModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
