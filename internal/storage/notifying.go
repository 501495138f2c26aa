package storage

import (
	"context"

	"github.com/finrec/finrec/internal/logger"
)

// NotifyingStore decorates a Store with a push-based "all records" feed.
// Every successful mutation re-queries the full set and publishes it, so
// subscribers always observe the store's canonical ordering. A failed
// mutation publishes nothing and the last snapshot stays valid.
type NotifyingStore struct {
	Store

	feed   *Feed
	logger *logger.Logger
}

func NewNotifying(store Store, log *logger.Logger) *NotifyingStore {
	return &NotifyingStore{
		Store:  store,
		feed:   NewFeed(),
		logger: log,
	}
}

// Subscribe returns a channel receiving the full record set after each
// mutation, plus a cancel func that must be called on teardown.
func (s *NotifyingStore) Subscribe() (<-chan []Record, func()) {
	return s.feed.Subscribe()
}

func (s *NotifyingStore) InsertRecord(ctx context.Context, record Record) (int64, error) {
	id, err := s.Store.InsertRecord(ctx, record)
	if err != nil {
		return 0, err
	}

	s.publish(ctx)
	return id, nil
}

func (s *NotifyingStore) UpdateRecord(ctx context.Context, record Record) (int64, error) {
	count, err := s.Store.UpdateRecord(ctx, record)
	if err != nil {
		return 0, err
	}

	s.publish(ctx)
	return count, nil
}

func (s *NotifyingStore) DeleteRecord(ctx context.Context, id int64) (int64, error) {
	count, err := s.Store.DeleteRecord(ctx, id)
	if err != nil {
		return 0, err
	}

	s.publish(ctx)
	return count, nil
}

func (s *NotifyingStore) SetFavorite(ctx context.Context, id int64, favorite bool) error {
	if err := s.Store.SetFavorite(ctx, id, favorite); err != nil {
		return err
	}

	s.publish(ctx)
	return nil
}

func (s *NotifyingStore) publish(ctx context.Context) {
	records, err := s.Store.GetRecords(ctx)
	if err != nil {
		s.logger.Error("Unable to refresh record feed", "error", err)
		return
	}

	s.feed.Publish(records)
}
