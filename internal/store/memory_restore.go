package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/clumio-bot/models"
)

// DefaultMemoryCapacity bounds the in-memory audit log.
const DefaultMemoryCapacity = 1000

// memoryRestoreStorage keeps the newest records in a slice. It is used when
// no database is configured, e.g. on serverless deployments, so history only
// lives as long as the process.
type memoryRestoreStorage struct {
	mu       sync.RWMutex
	nextID   int64
	records  []models.RestoreRecord
	capacity int
}

// NewMemoryRestoreStorage returns a [RestoreStorage] holding at most capacity
// records; the oldest records are evicted first. A non-positive capacity
// uses [DefaultMemoryCapacity].
func NewMemoryRestoreStorage(capacity int) RestoreStorage {
	if capacity <= 0 {
		capacity = DefaultMemoryCapacity
	}
	return &memoryRestoreStorage{
		nextID:   1,
		records:  make([]models.RestoreRecord, 0, 16),
		capacity: capacity,
	}
}

func (s *memoryRestoreStorage) Save(ctx context.Context, rec models.RestoreRecord) (models.RestoreRecord, error) {
	if err := ctx.Err(); err != nil {
		return models.RestoreRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	rec.CreatedAt = rec.CreatedAt.UTC()
	rec.ID = s.nextID
	s.nextID++

	s.records = append(s.records, rec)
	if over := len(s.records) - s.capacity; over > 0 {
		s.records = append(s.records[:0:0], s.records[over:]...)
	}

	return rec, nil
}

func (s *memoryRestoreStorage) List(ctx context.Context, limit int) ([]models.RestoreRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	records := make([]models.RestoreRecord, len(s.records))
	copy(records, s.records)
	s.mu.RUnlock()

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].ID > records[j].ID
		}
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	return records, nil
}

func (s *memoryRestoreStorage) DeleteOlderThan(ctx context.Context, t time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.records[:0]
	var deleted int64
	for _, rec := range s.records {
		if rec.CreatedAt.Before(t) {
			deleted++
			continue
		}
		kept = append(kept, rec)
	}
	s.records = kept

	return deleted, nil
}

func (s *memoryRestoreStorage) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *memoryRestoreStorage) Close() error {
	return nil
}
