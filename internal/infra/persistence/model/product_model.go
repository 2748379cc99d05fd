package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Price       float64
	CategoryID  *uuid.UUID `gorm:"type:uuid;index"`
	CurrencyID  *uuid.UUID `gorm:"type:uuid;index"`
	Status      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time `gorm:"index"`

	Documents       []DocumentModel       `gorm:"foreignKey:ProductID"`
	Characteristics []CharacteristicModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// BeforeCreate assigns the primary key when the caller did not.
func (m *ProductModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// DocumentModel mirrors the 'documents' table. Path holds the blob locator
// of the stored file.
type DocumentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Path      string    `gorm:"type:varchar(512)"`
	ProductID uuid.UUID `gorm:"type:uuid;index;not null"`
	Type      string    `gorm:"type:varchar(16)"`
	Size      int64
	Dimension string `gorm:"type:varchar(32)"`
	Status    bool
	IsMain    bool
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (DocumentModel) TableName() string {
	return "documents"
}

// BeforeCreate assigns the primary key when the caller did not.
func (m *DocumentModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// CharacteristicModel mirrors the 'characteristics' table.
type CharacteristicModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Key       string    `gorm:"column:key;type:varchar(100);not null"`
	Value     string    `gorm:"type:text"`
	ProductID uuid.UUID `gorm:"type:uuid;index;not null"`
	ParentID  *uuid.UUID `gorm:"type:uuid;index"`
	Status    bool
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (CharacteristicModel) TableName() string {
	return "characteristics"
}

// BeforeCreate assigns the primary key when the caller did not.
func (m *CharacteristicModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
