package entity

import (
	"time"

	"github.com/google/uuid"
)

// SupportStatus is the handling state of a support ticket.
type SupportStatus string

const (
	SupportPending  SupportStatus = "Pending"
	SupportResolved SupportStatus = "Resolved"
	SupportClosed   SupportStatus = "Closed"
)

// IsValid checks if the SupportStatus is a valid value.
func (s SupportStatus) IsValid() bool {
	switch s {
	case SupportPending, SupportResolved, SupportClosed:
		return true
	default:
		return false
	}
}

// Support is a support ticket. Anonymous visitors may open one, so the
// client reference is optional; replies thread through the parent field.
type Support struct {
	ID          uuid.UUID
	ClientID    *uuid.UUID
	Message     string
	FullName    string
	Email       string
	PhoneNumber string
	Status      SupportStatus
	ParentID    *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}
