package kvdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/meghashyamc/advocates/logger"
	"github.com/meghashyamc/advocates/models"
)

// SourceName identifies the snapshot as a record source.
const SourceName = "snapshot"

const (
	advocatesKey     = "advocates"
	advocatesMetaKey = "advocates_meta"
)

// SnapshotStore keeps a JSON copy of the full advocate record set so the API can serve it without postgres.
type SnapshotStore struct {
	db     DB
	logger logger.Logger
}

func NewSnapshotStore(logger logger.Logger, db DB) *SnapshotStore {
	return &SnapshotStore{db: db, logger: logger}
}

func (s *SnapshotStore) Save(ctx context.Context, source string, advocates []models.Advocate) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(advocates)
	if err != nil {
		s.logger.Error("failed to marshal advocates for snapshot", "err", err.Error())
		return fmt.Errorf("failed to marshal advocates: %w", err)
	}

	metadata, err := json.Marshal(SnapshotMetadata{
		TakenAt: time.Now().UTC(),
		Source:  source,
		Count:   len(advocates),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot metadata: %w", err)
	}

	if err := s.db.Set(SnapshotsBucket, advocatesKey, string(data)); err != nil {
		return err
	}

	return s.db.Set(MetadataBucket, advocatesMetaKey, string(metadata))
}

// FetchAll returns ErrNotFound when no snapshot has been taken yet.
func (s *SnapshotStore) FetchAll(ctx context.Context) ([]models.Advocate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	value, err := s.db.Get(SnapshotsBucket, advocatesKey)
	if err != nil {
		return nil, err
	}

	var advocates []models.Advocate
	if err := json.Unmarshal([]byte(value), &advocates); err != nil {
		s.logger.Error("failed to unmarshal advocates snapshot", "err", err.Error())
		return nil, fmt.Errorf("failed to unmarshal advocates snapshot: %w", err)
	}

	return advocates, nil
}

func (s *SnapshotStore) Metadata() (*SnapshotMetadata, error) {
	value, err := s.db.Get(MetadataBucket, advocatesMetaKey)
	if err != nil {
		return nil, err
	}

	var metadata SnapshotMetadata
	if err := json.Unmarshal([]byte(value), &metadata); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot metadata: %w", err)
	}

	return &metadata, nil
}

// Clear removes the snapshot so the API falls back to seed data.
func (s *SnapshotStore) Clear() error {
	if err := s.db.Delete(SnapshotsBucket, advocatesKey); err != nil {
		return err
	}
	return s.db.Delete(MetadataBucket, advocatesMetaKey)
}
