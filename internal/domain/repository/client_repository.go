// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer. List operations exclude soft-deleted rows;
// FindByID keeps returning them so deleted records stay auditable.
package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrClientNotFound is returned when a client does not exist.
var ErrClientNotFound = errors.New("client not found")

// ClientRepository defines the standard operations for client persistence.
// Clients are always loaded with their roles and role permissions attached,
// since every authorization check needs them.
type ClientRepository interface {
	// List retrieves all non-deleted clients.
	List(ctx context.Context) ([]*entity.Client, error)

	// FindByID retrieves a single client by ID, soft-deleted included.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)

	// FindByEmail retrieves a non-deleted client by email.
	FindByEmail(ctx context.Context, email string) (*entity.Client, error)

	// FindByPhone retrieves a non-deleted client by phone number.
	FindByPhone(ctx context.Context, phone string) (*entity.Client, error)

	// Create persists a new client.
	Create(ctx context.Context, client *entity.Client) error

	// Update modifies an existing client.
	Update(ctx context.Context, client *entity.Client) error

	// SoftDelete marks the client deleted and clears its active flag.
	SoftDelete(ctx context.Context, client *entity.Client) error
}
