// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"errors"

	"github.com/modelprof/modelprof/schema"
)

// ErrProfileNotFound indicates a profile name with no saved entry in the
// store.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileStore defines persistent storage for saved profiles.
// This allows the executors to be tested without a real database.
type ProfileStore interface {
	// Save inserts or replaces the profile under its name.
	Save(profile *schema.Profile) error

	// Load returns the profile saved under name, or ErrProfileNotFound.
	Load(name string) (*schema.Profile, error)

	// List returns a listing row per saved profile, newest first.
	List() ([]schema.StoredProfile, error)

	// GetStatus returns status information about the store.
	GetStatus() (schema.StoreStatus, error)

	// Close releases the underlying database handle.
	Close() error
}
