package services

import (
	"context"
	"errors"

	"github.com/makmour/WasteBinTracker/internal/models"
)

// ErrNotFound is returned when an operation addresses an id that does not
// exist. Callers must compare with errors.Is and report it distinctly from
// storage faults.
var ErrNotFound = errors.New("record not found")

// EntryStore is the persistence contract for survey entries and the minimal
// user record. Two implementations exist: an ephemeral in-memory store and a
// GORM-backed relational store. Callers must not depend on which one is
// active; both assign ids and creation timestamps themselves, order listings
// by datetime descending, and normalize absent optional fields the same way.
type EntryStore interface {
	// Create persists a new entry, assigning its id and datetime and
	// starting it unsynced. The returned record includes the generated
	// fields.
	Create(ctx context.Context, ins models.InsertEntry) (*models.BinSurveyEntry, error)
	// GetAll returns every entry, most recent first.
	GetAll(ctx context.Context) ([]models.BinSurveyEntry, error)
	// GetByID returns one entry, or ErrNotFound.
	GetByID(ctx context.Context, id uint) (*models.BinSurveyEntry, error)
	// Update merges the non-nil patch fields onto an existing entry and
	// returns the result, or ErrNotFound.
	Update(ctx context.Context, id uint, patch models.UpdateEntry) (*models.BinSurveyEntry, error)
	// Delete removes an entry and reports whether it existed.
	Delete(ctx context.Context, id uint) (bool, error)
	// DeleteByStreet removes every entry whose street matches exactly
	// (case-sensitive) and returns the count removed.
	DeleteByStreet(ctx context.Context, street string) (int64, error)
	// GetUnsynced returns the entries still waiting to be synced, most
	// recent first.
	GetUnsynced(ctx context.Context) ([]models.BinSurveyEntry, error)
	// MarkSynced flips an entry's synced flag to true, idempotently, and
	// reports whether the entry existed. The flag never reverts.
	MarkSynced(ctx context.Context, id uint) (bool, error)

	CreateUser(ctx context.Context, ins models.InsertUser) (*models.User, error)
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// normalizeOptional collapses nil and empty strings to nil so that "no
// photo" never round-trips as an empty-string photo.
func normalizeOptional(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// normalizeInsert applies the creation defaults shared by both backends.
func normalizeInsert(ins models.InsertEntry) models.InsertEntry {
	if ins.Municipality == "" {
		ins.Municipality = models.DefaultMunicipality
	}
	ins.PhotoURI = normalizeOptional(ins.PhotoURI)
	ins.Comments = normalizeOptional(ins.Comments)
	return ins
}

// coordValue unwraps an optional coordinate; validation of presence is the
// boundary's job, the store just must not dereference nil.
func coordValue(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// applyPatch merges the non-nil fields of patch onto entry.
func applyPatch(entry *models.BinSurveyEntry, patch models.UpdateEntry) {
	if patch.Municipality != nil {
		entry.Municipality = *patch.Municipality
	}
	if patch.Street != nil {
		entry.Street = *patch.Street
	}
	if patch.Latitude != nil {
		entry.Latitude = *patch.Latitude
	}
	if patch.Longitude != nil {
		entry.Longitude = *patch.Longitude
	}
	if patch.BinTypes != nil {
		entry.BinTypes = patch.BinTypes
	}
	if patch.Quantity != nil {
		entry.Quantity = *patch.Quantity
	}
	if patch.PhotoURI != nil {
		entry.PhotoURI = normalizeOptional(patch.PhotoURI)
	}
	if patch.Comments != nil {
		entry.Comments = normalizeOptional(patch.Comments)
	}
}
