// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"scout/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRecruiterNotFound is a domain-specific error returned when a recruiter is not found.
var ErrRecruiterNotFound = errors.New("recruiter not found")

// RecruiterRepository defines the standard operations for recruiter persistence.
// The application layer depends on this interface, not the concrete implementation.
type RecruiterRepository interface {
	// FindByID retrieves a single recruiter by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Recruiter, error)

	// FindByEmail retrieves a single recruiter by their lower-cased email address.
	FindByEmail(ctx context.Context, email string) (*entity.Recruiter, error)

	// Create persists a new recruiter entity to the storage.
	Create(ctx context.Context, recruiter *entity.Recruiter) error

	// Update modifies an existing recruiter entity in the storage.
	Update(ctx context.Context, recruiter *entity.Recruiter) error
}
