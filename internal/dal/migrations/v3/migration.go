package v3

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"go.etcd.io/bbolt"
)

// SubscriberV3 mirrors dal.Subscriber as of this migration
type SubscriberV3 struct {
	ChatID       int64     `json:"chat_id"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

// MigrationV3 imports chat ids from the JSON file kept by the previous bot implementation.
// A missing or malformed file is skipped: those chats can always subscribe again.
type MigrationV3 struct {
	path string
	log  *slog.Logger
}

// Version returns the migration version
func (m *MigrationV3) Version() int {
	return 3 //nolint:mnd // version 3
}

// Description returns a human-readable description of the migration
func (m *MigrationV3) Description() string {
	return "Import legacy JSON chat ids"
}

// Up performs the migration
func (m *MigrationV3) Up(db *bbolt.DB) error {
	if m.path == "" {
		return nil
	}

	data, err := os.ReadFile(m.path)
	if errors.Is(err, fs.ErrNotExist) {
		m.log.Info("Legacy chat ids file not found, nothing to import", "path", m.path)
		return nil
	}
	if err != nil {
		m.log.Warn("Failed to read legacy chat ids file, skipping import", "path", m.path, "error", err)
		return nil
	}

	var chatIDs []int64
	if err := json.Unmarshal(data, &chatIDs); err != nil {
		m.log.Warn("Legacy chat ids file is malformed, skipping import", "path", m.path, "error", err)
		return nil
	}

	now := time.Now()
	imported := 0
	err = db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte("subscribers"))
		if err != nil {
			return fmt.Errorf("create subscribers bucket: %w", err)
		}

		for _, chatID := range chatIDs {
			key := []byte(fmt.Sprintf("%d", chatID))
			if b.Get(key) != nil {
				continue
			}

			value, err := json.Marshal(SubscriberV3{ChatID: chatID, SubscribedAt: now})
			if err != nil {
				return fmt.Errorf("marshal subscriber for chatID=%d: %w", chatID, err)
			}
			if err := b.Put(key, value); err != nil {
				return fmt.Errorf("put subscriber for chatID=%d: %w", chatID, err)
			}
			imported++
		}

		return nil
	})
	if err != nil {
		return err
	}

	m.log.Info("Imported legacy chat ids", "path", m.path, "imported", imported, "total", len(chatIDs))
	return nil
}

// New creates a new instance of MigrationV3
func New(path string, log *slog.Logger) *MigrationV3 {
	return &MigrationV3{
		path: path,
		log:  log,
	}
}
