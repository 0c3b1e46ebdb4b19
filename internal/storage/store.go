package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"
)

// RecordStore loads and saves the progression record under StateKey.
// Load never fails and Save never reports errors: both log and carry on so
// gameplay continues when storage is broken, full or disabled.
type RecordStore struct {
	db     *sql.DB
	repo   *StateRepo
	logger hclog.Logger
	now    func() time.Time
}

func NewRecordStore(db *sql.DB, logger hclog.Logger) *RecordStore {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &RecordStore{
		db:     db,
		repo:   NewStateRepo(db),
		logger: logger.Named("store"),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *RecordStore) Load(ctx context.Context) *ProgressionRecord {
	payload, ok, err := s.repo.Get(ctx, StateKey)
	if err != nil {
		s.logger.Warn("load failed, using defaults", "key", StateKey, "error", fmt.Errorf("%w: %v", ErrStorageUnavailable, err))
		return DefaultRecord()
	}
	if !ok {
		s.logger.Debug("no stored record, using defaults", "key", StateKey)
		return DefaultRecord()
	}
	rec, err := DecodeRecord([]byte(payload))
	if err != nil {
		s.logger.Warn("stored record is unreadable, using defaults", "key", StateKey, "error", err)
		return DefaultRecord()
	}
	return rec
}

func (s *RecordStore) Save(ctx context.Context, rec *ProgressionRecord) {
	if err := s.save(ctx, rec); err != nil {
		s.logger.Error("save failed, continuing in memory", "key", StateKey, "error", err)
	}
}

func (s *RecordStore) save(ctx context.Context, rec *ProgressionRecord) error {
	data, err := EncodeRecord(rec)
	if err != nil {
		return err
	}
	return WithTx(ctx, s.db, func(tx *sql.Tx) error {
		return s.repo.Put(ctx, tx, StateKey, string(data), s.now())
	})
}

// MemoryStore keeps the serialized record in memory. It backs the engine when
// the database cannot be opened, and in tests.
type MemoryStore struct {
	payload []byte
	Saves   int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(_ context.Context) *ProgressionRecord {
	if m.payload == nil {
		return DefaultRecord()
	}
	rec, err := DecodeRecord(m.payload)
	if err != nil {
		return DefaultRecord()
	}
	return rec
}

func (m *MemoryStore) Save(_ context.Context, rec *ProgressionRecord) {
	data, err := EncodeRecord(rec)
	if err != nil {
		return
	}
	m.payload = data
	m.Saves++
}

// EncodeRecord serializes the whole record.
func EncodeRecord(rec *ProgressionRecord) ([]byte, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	return data, nil
}

// DecodeRecord parses a stored payload on top of defaults, so missing fields
// keep their default value and unknown fields are ignored.
func DecodeRecord(data []byte) (*ProgressionRecord, error) {
	rec := DefaultRecord()
	if err := json.Unmarshal(data, rec); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	rec.Normalize()
	return rec, nil
}
