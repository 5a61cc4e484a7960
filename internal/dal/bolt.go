package dal

import (
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

type BoltDB struct {
	db  *bbolt.DB
	now func() time.Time
}

// NewBoltDB wraps an already migrated database
func NewBoltDB(db *bbolt.DB) (*BoltDB, error) {
	err := db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(subscribersBucket)) == nil {
			return fmt.Errorf("bucket %q not found, were migrations applied?", subscribersBucket)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &BoltDB{
		db:  db,
		now: time.Now,
	}, nil
}

func (s *BoltDB) Close() error {
	return s.db.Close()
}

func i64tob(id int64) []byte {
	return []byte(fmt.Sprintf("%d", id))
}
