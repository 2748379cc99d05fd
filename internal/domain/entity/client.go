// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Gender is the single-letter gender marker carried on a client profile.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "O"
)

// IsValid checks if the Gender is a valid value.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}

// Client is the account identity of the system: the actor behind every
// authenticated request. It combines login credentials with profile fields
// and the roles that drive permission checks.
type Client struct {
	ID             uuid.UUID
	Email          string
	PhoneNumber    string
	PasswordHash   string
	Name           string
	DateOfBirth    *time.Time
	Address        string
	Bio            string
	ProfilePicture string // blob locator of the uploaded picture
	Gender         Gender
	Active         bool
	Roles          Roles
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}

// IsDeleted reports whether the client has been soft-deleted.
func (c *Client) IsDeleted() bool {
	return c.DeletedAt != nil
}
