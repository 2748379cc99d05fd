package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog entry. A product starts unpublished (Status false)
// and is only published through the explicit validation workflow, which
// requires a category, a currency, at least one image document with a main
// image among them, and at least one characteristic.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       float64
	CategoryID  *uuid.UUID
	CurrencyID  *uuid.UUID
	Status      bool // false until validated
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// DocumentType classifies an uploaded product document.
type DocumentType string

const (
	DocumentImage DocumentType = "Image"
	DocumentVideo DocumentType = "Video"
	DocumentPDF   DocumentType = "PDF"
)

// IsValid checks if the DocumentType is a valid value.
func (t DocumentType) IsValid() bool {
	switch t {
	case DocumentImage, DocumentVideo, DocumentPDF:
		return true
	default:
		return false
	}
}

// Document is an uploaded file attached to a product. Path is the locator
// of the stored bytes in the file store; deleting a document relocates the
// stored file into the deleted area, and the soft delete only happens when
// that relocation succeeds.
type Document struct {
	ID        uuid.UUID
	Name      string
	Path      string
	ProductID uuid.UUID
	Type      DocumentType
	Size      int64
	Dimension string
	Status    bool
	IsMain    bool
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// Characteristic is a key/value attribute of a product, optionally nested
// through the parent reference.
type Characteristic struct {
	ID        uuid.UUID
	Key       string
	Value     string
	ProductID uuid.UUID
	ParentID  *uuid.UUID
	Status    bool
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
