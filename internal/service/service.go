package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/rishimulani16/QR-Code/internal/models"
	"github.com/rishimulani16/QR-Code/internal/repository"
	"go.uber.org/zap"
)

var (
	ErrEmptyText        = errors.New("empty text")
	ErrInvalidPage      = errors.New("invalid page parameters")
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrInvalidEmail     = errors.New("invalid recipient email")
	ErrNotFound         = errors.New("qr code not found")
	ErrEncoding         = errors.New("failed to encode qr code")
	ErrDelivery         = errors.New("failed to deliver email")
	ErrStorage          = errors.New("storage unavailable")
)

// Codec wraps the external QR encode/decode libraries.
type Codec interface {
	Encode(text string) (string, error)
	Decode(frame []byte) (string, bool, error)
}

// Mailer delivers a record's text and image to a recipient address.
// At-most-once: a failed delivery is surfaced, never retried.
type Mailer interface {
	Send(qr *models.QRCode, recipientEmail string) error
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type QRService struct {
	repo   repository.Repository
	codec  Codec
	mailer Mailer
	logger *zap.Logger

	defaultPageSize int
}

func NewQRService(repo repository.Repository, codec Codec, mailer Mailer, defaultPageSize int, logger *zap.Logger) *QRService {
	return &QRService{
		repo:            repo,
		codec:           codec,
		mailer:          mailer,
		defaultPageSize: defaultPageSize,
		logger:          logger,
	}
}

func (s *QRService) DefaultPageSize() int {
	return s.defaultPageSize
}

// Generate encodes text into a QR image and persists the record for ownerID.
// isUrl is derived once here and stored; it is never recomputed on read.
// Encoding happens before persistence, so an encoding failure leaves nothing
// behind.
func (s *QRService) Generate(ctx context.Context, text, ownerID string) (*models.QRCode, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		s.logger.Warn("Attempt to generate QR code for empty text")
		return nil, ErrEmptyText
	}

	isURL := strings.HasPrefix(text, "http://") || strings.HasPrefix(text, "https://")

	imageURL, err := s.codec.Encode(text)
	if err != nil {
		s.logger.Error("Failed to encode QR code", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}

	rec := &models.QRCode{
		OwnerID:  ownerID,
		Text:     text,
		ImageURL: imageURL,
		IsURL:    isURL,
	}

	created, err := s.repo.Create(ctx, rec)
	if err != nil {
		s.logger.Error("Failed to persist QR code", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return created, nil
}

// List returns one page of ownerID's history, newest first, plus the total
// page count. The date window applies only when both bounds are present,
// matching the behavior history consumers rely on.
func (s *QRService) List(ctx context.Context, ownerID string, page, pageSize int, startDate, endDate string) (*models.ListResponse, error) {
	if page < 1 || pageSize < 1 {
		return nil, ErrInvalidPage
	}

	from, to, err := parseDateWindow(startDate, endDate)
	if err != nil {
		return nil, err
	}

	records, total, err := s.repo.ListByOwner(ctx, ownerID, page, pageSize, from, to)
	if err != nil {
		s.logger.Error("Failed to list QR codes",
			zap.String("ownerID", ownerID),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return &models.ListResponse{
		QRCodes:     records,
		TotalPages:  int(math.Ceil(float64(total) / float64(pageSize))),
		CurrentPage: page,
	}, nil
}

// Delete removes the record if ownerID owns it. A missing record and a
// record owned by somebody else are indistinguishable to the caller.
func (s *QRService) Delete(ctx context.Context, id, ownerID string) error {
	deleted, err := s.repo.DeleteByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		s.logger.Error("Failed to delete QR code",
			zap.String("id", id),
			zap.Error(err))
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// Share emails the record to recipientEmail. The ownership check runs before
// the mailer is ever invoked.
func (s *QRService) Share(ctx context.Context, id, ownerID, recipientEmail string) error {
	if !emailPattern.MatchString(recipientEmail) {
		return ErrInvalidEmail
	}

	rec, err := s.repo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		s.logger.Error("Failed to look up QR code for sharing",
			zap.String("id", id),
			zap.Error(err))
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}

	if err := s.mailer.Send(rec, recipientEmail); err != nil {
		s.logger.Error("Failed to send share email",
			zap.String("id", id),
			zap.Error(err))
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	return nil
}

// Decode attempts to read one QR code out of a raster frame. A frame with no
// code in it is a normal outcome, not an error.
func (s *QRService) Decode(frame []byte) (string, bool, error) {
	return s.codec.Decode(frame)
}

func (s *QRService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// parseDateWindow turns the startDate/endDate query parameters into an
// inclusive [from, to] window. Both bounds must be present for the filter to
// apply. Date-only bounds extend the end to the last instant of that day so
// records generated during the end date are not silently cut off.
func parseDateWindow(startDate, endDate string) (*time.Time, *time.Time, error) {
	if startDate == "" || endDate == "" {
		return nil, nil, nil
	}

	from, _, err := parseDate(startDate)
	if err != nil {
		return nil, nil, ErrInvalidDateRange
	}
	to, toDateOnly, err := parseDate(endDate)
	if err != nil {
		return nil, nil, ErrInvalidDateRange
	}

	if toDateOnly {
		to = to.Add(24*time.Hour - time.Nanosecond)
	}

	if from.After(to) {
		return nil, nil, ErrInvalidDateRange
	}

	return &from, &to, nil
}

func parseDate(value string) (time.Time, bool, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, true, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	return t, false, err
}
