package dal

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const subscribersBucket = "subscribers"

type Subscriber struct {
	ChatID       int64     `json:"chat_id"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

func (s *BoltDB) CountSubscribers() (int, error) {
	var res int
	err := s.db.View(func(tx *bbolt.Tx) error {
		res = tx.Bucket([]byte(subscribersBucket)).Stats().KeyN
		return nil
	})
	return res, err
}

func (s *BoltDB) GetAllSubscribers() ([]Subscriber, error) {
	var res []Subscriber

	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket([]byte(subscribersBucket)).Cursor()

		for k, v := c.First(); k != nil; k, v = c.Next() {
			var sub Subscriber
			if err := json.Unmarshal(v, &sub); err != nil {
				return fmt.Errorf("unmarshal subscriber %s: %w", k, err)
			}
			res = append(res, sub)
		}

		return nil
	})

	return res, err
}

// LoadSubscribers returns chat ids of all persisted subscribers
func (s *BoltDB) LoadSubscribers() ([]int64, error) {
	subs, err := s.GetAllSubscribers()
	if err != nil {
		return nil, err
	}

	res := make([]int64, 0, len(subs))
	for _, sub := range subs {
		res = append(res, sub.ChatID)
	}
	return res, nil
}

// SaveSubscribers replaces the persisted set with chatIDs in a single transaction.
// SubscribedAt of chats that were already present is kept.
func (s *BoltDB) SaveSubscribers(chatIDs []int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		subscribedAt := make(map[int64]time.Time)
		err := tx.Bucket([]byte(subscribersBucket)).ForEach(func(k, v []byte) error {
			var sub Subscriber
			if err := json.Unmarshal(v, &sub); err != nil {
				// corrupted records are overwritten below
				return nil //nolint:nilerr // it's ok
			}
			subscribedAt[sub.ChatID] = sub.SubscribedAt
			return nil
		})
		if err != nil {
			return fmt.Errorf("read existing subscribers: %w", err)
		}

		if err := tx.DeleteBucket([]byte(subscribersBucket)); err != nil {
			return fmt.Errorf("delete subscribers bucket: %w", err)
		}
		b, err := tx.CreateBucket([]byte(subscribersBucket))
		if err != nil {
			return fmt.Errorf("create subscribers bucket: %w", err)
		}

		now := s.now()
		for _, chatID := range chatIDs {
			sub := Subscriber{ChatID: chatID, SubscribedAt: now}
			if at, ok := subscribedAt[chatID]; ok && !at.IsZero() {
				sub.SubscribedAt = at
			}

			data, err := json.Marshal(&sub)
			if err != nil {
				return fmt.Errorf("marshal subscriber for chatID=%d: %w", chatID, err)
			}
			if err := b.Put(i64tob(chatID), data); err != nil {
				return fmt.Errorf("put subscriber for chatID=%d: %w", chatID, err)
			}
		}

		return nil
	})
}
