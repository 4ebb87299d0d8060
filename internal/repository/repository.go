package repository

import (
	"context"
	"errors"
	"time"

	"github.com/rishimulani16/QR-Code/internal/models"
)

var ErrNotFound = errors.New("record not found")

// Repository stores QR code records. Every read and delete is scoped to the
// owner; a record is never visible to anyone but the user who created it.
type Repository interface {
	// Create persists rec, assigning its ID and GeneratedAt.
	Create(ctx context.Context, rec *models.QRCode) (*models.QRCode, error)
	// ListByOwner returns one 1-indexed page of ownerID's records sorted by
	// GeneratedAt descending, plus the total number of matching records.
	// A non-nil [from, to] window restricts GeneratedAt inclusively.
	ListByOwner(ctx context.Context, ownerID string, page, pageSize int, from, to *time.Time) ([]models.QRCode, int, error)
	// FindByIDAndOwner returns the record or ErrNotFound.
	FindByIDAndOwner(ctx context.Context, id, ownerID string) (*models.QRCode, error)
	// DeleteByIDAndOwner removes the record if ownerID owns it and reports
	// whether anything was deleted.
	DeleteByIDAndOwner(ctx context.Context, id, ownerID string) (bool, error)
	Ping(ctx context.Context) error
	Close() error
}
