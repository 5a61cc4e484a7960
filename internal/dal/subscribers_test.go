package dal

import (
	"time"

	"go.etcd.io/bbolt"
)

func (s *BoltDBTestSuite) TestBoltDB_SaveSubscribers() {
	s.Require().NoError(s.store.SaveSubscribers([]int64{3, 1, 2}))

	actual, err := s.store.LoadSubscribers()
	s.Require().NoError(err, "error loading subscribers")
	s.ElementsMatch([]int64{1, 2, 3}, actual)

	count, err := s.store.CountSubscribers()
	s.Require().NoError(err, "error counting subscribers")
	s.Equal(3, count)
}

func (s *BoltDBTestSuite) TestBoltDB_SaveSubscribers_Overwrites() {
	s.Require().NoError(s.store.SaveSubscribers([]int64{1, 2, 3}))
	s.Require().NoError(s.store.SaveSubscribers([]int64{2, 4}))

	actual, err := s.store.LoadSubscribers()
	s.Require().NoError(err)
	s.ElementsMatch([]int64{2, 4}, actual)

	s.Require().NoError(s.store.SaveSubscribers(nil))
	actual, err = s.store.LoadSubscribers()
	s.Require().NoError(err)
	s.Empty(actual)
}

func (s *BoltDBTestSuite) TestBoltDB_SaveSubscribers_KeepsSubscribedAt() {
	firstAt := time.Date(2026, time.October, 17, 9, 30, 0, 0, time.UTC)
	secondAt := firstAt.Add(24 * time.Hour)

	s.now.Set(firstAt)
	s.Require().NoError(s.store.SaveSubscribers([]int64{1}))

	s.now.Set(secondAt)
	s.Require().NoError(s.store.SaveSubscribers([]int64{1, 2}))

	actual, err := s.store.GetAllSubscribers()
	s.Require().NoError(err)
	s.Equal([]Subscriber{
		{ChatID: 1, SubscribedAt: firstAt},
		{ChatID: 2, SubscribedAt: secondAt},
	}, actual)
}

func (s *BoltDBTestSuite) TestBoltDB_SaveSubscribers_ReplacesCorruptedRecords() {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(subscribersBucket)).Put(i64tob(7), []byte("{broken"))
	})
	s.Require().NoError(err)

	_, err = s.store.LoadSubscribers()
	s.ErrorContains(err, "unmarshal subscriber 7")

	s.Require().NoError(s.store.SaveSubscribers([]int64{7}))
	actual, err := s.store.LoadSubscribers()
	s.Require().NoError(err)
	s.Equal([]int64{7}, actual)
}

func (s *BoltDBTestSuite) TestBoltDB_LoadSubscribers_Empty() {
	actual, err := s.store.LoadSubscribers()
	s.Require().NoError(err)
	s.Empty(actual)
}
