package repository

import (
	"context"
	"encoding/json"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rishimulani16/QR-Code/internal/models"
	"go.uber.org/zap"
)

// MemoryRepository keeps records in a map, optionally snapshotting them to a
// JSON file so history survives restarts without a database.
type MemoryRepository struct {
	mu          sync.RWMutex
	saveMu      sync.Mutex
	records     map[string]models.QRCode
	storagePath string
	logger      *zap.Logger
}

func NewMemoryRepository(storagePath string, logger *zap.Logger) *MemoryRepository {
	repo := &MemoryRepository{
		records:     make(map[string]models.QRCode),
		storagePath: storagePath,
		logger:      logger,
	}

	if storagePath != "" {
		repo.loadFromFile()
	}

	return repo
}

func (m *MemoryRepository) Create(ctx context.Context, rec *models.QRCode) (*models.QRCode, error) {
	created := *rec
	created.ID = uuid.New().String()
	created.GeneratedAt = time.Now().UTC()

	m.mu.Lock()
	m.records[created.ID] = created
	m.mu.Unlock()

	if m.storagePath != "" {
		go m.saveToFile()
	}

	return &created, nil
}

func (m *MemoryRepository) ListByOwner(ctx context.Context, ownerID string, page, pageSize int, from, to *time.Time) ([]models.QRCode, int, error) {
	m.mu.RLock()
	matching := make([]models.QRCode, 0)
	for _, rec := range m.records {
		if rec.OwnerID != ownerID {
			continue
		}
		if from != nil && to != nil {
			if rec.GeneratedAt.Before(*from) || rec.GeneratedAt.After(*to) {
				continue
			}
		}
		matching = append(matching, rec)
	}
	m.mu.RUnlock()

	sort.Slice(matching, func(i, j int) bool {
		return matching[i].GeneratedAt.After(matching[j].GeneratedAt)
	})

	total := len(matching)

	start := (page - 1) * pageSize
	if start >= total {
		return []models.QRCode{}, total, nil
	}

	end := start + pageSize
	if end > total {
		end = total
	}

	return matching[start:end], total, nil
}

func (m *MemoryRepository) FindByIDAndOwner(ctx context.Context, id, ownerID string) (*models.QRCode, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, exists := m.records[id]
	if !exists || rec.OwnerID != ownerID {
		return nil, ErrNotFound
	}

	return &rec, nil
}

func (m *MemoryRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID string) (bool, error) {
	m.mu.Lock()
	rec, exists := m.records[id]
	if !exists || rec.OwnerID != ownerID {
		m.mu.Unlock()
		return false, nil
	}
	delete(m.records, id)
	m.mu.Unlock()

	if m.storagePath != "" {
		go m.saveToFile()
	}

	return true, nil
}

func (m *MemoryRepository) Ping(ctx context.Context) error {
	return nil
}

func (m *MemoryRepository) Close() error {
	if m.storagePath != "" {
		m.saveToFile()
	}
	return nil
}

// snapshotRecord carries the owner id, which the API model hides from JSON.
type snapshotRecord struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Text        string    `json:"text"`
	ImageURL    string    `json:"image_url"`
	IsURL       bool      `json:"is_url"`
	GeneratedAt time.Time `json:"generated_at"`
}

func (m *MemoryRepository) saveToFile() {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.mu.RLock()
	records := make([]snapshotRecord, 0, len(m.records))
	for _, rec := range m.records {
		records = append(records, snapshotRecord{
			ID:          rec.ID,
			OwnerID:     rec.OwnerID,
			Text:        rec.Text,
			ImageURL:    rec.ImageURL,
			IsURL:       rec.IsURL,
			GeneratedAt: rec.GeneratedAt,
		})
	}
	m.mu.RUnlock()

	jsonData, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		m.logger.Error("Failed to marshal records for saving", zap.Error(err))
		return
	}

	if err := os.WriteFile(m.storagePath, jsonData, 0644); err != nil {
		m.logger.Error("Failed to write storage file", zap.Error(err))
	}
}

func (m *MemoryRepository) loadFromFile() {
	data, err := os.ReadFile(m.storagePath)
	if err != nil {
		return
	}

	var records []snapshotRecord
	if err := json.Unmarshal(data, &records); err != nil {
		m.logger.Error("Failed to parse storage file", zap.Error(err))
		return
	}

	m.mu.Lock()
	for _, rec := range records {
		m.records[rec.ID] = models.QRCode{
			ID:          rec.ID,
			OwnerID:     rec.OwnerID,
			Text:        rec.Text,
			ImageURL:    rec.ImageURL,
			IsURL:       rec.IsURL,
			GeneratedAt: rec.GeneratedAt,
		}
	}
	m.mu.Unlock()
}
