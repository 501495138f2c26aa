package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/finrec/finrec/internal/logger"
)

// stubStore is an in-memory Store used to exercise the notifying
// decorator without sqlite.
type stubStore struct {
	records []Record
	nextID  int64
	failAll bool
}

var errStub = errors.New("stub failure")

func (s *stubStore) ApplyMigrations(context.Context, *logger.Logger) error { return nil }

func (s *stubStore) GetRecordByID(_ context.Context, id int64) (Record, error) {
	for _, rec := range s.records {
		if rec.ID() == id {
			return rec, nil
		}
	}
	return nil, &NotFoundError{}
}

func (s *stubStore) InsertRecord(_ context.Context, rec Record) (int64, error) {
	if s.failAll {
		return 0, errStub
	}
	s.nextID++
	s.records = append(s.records, WithID(rec, s.nextID))
	return s.nextID, nil
}

func (s *stubStore) UpdateRecord(_ context.Context, rec Record) (int64, error) {
	if s.failAll {
		return 0, errStub
	}
	for i, existing := range s.records {
		if existing.ID() == rec.ID() {
			s.records[i] = rec
			return 1, nil
		}
	}
	return 0, nil
}

func (s *stubStore) DeleteRecord(_ context.Context, id int64) (int64, error) {
	if s.failAll {
		return 0, errStub
	}
	for i, existing := range s.records {
		if existing.ID() == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *stubStore) SetFavorite(_ context.Context, id int64, favorite bool) error {
	if s.failAll {
		return errStub
	}
	for i, existing := range s.records {
		if existing.ID() == id {
			s.records[i] = NewRecord(id, existing.Description(), existing.Category(),
				existing.Amount(), existing.Date(), existing.Type(), favorite)
			return nil
		}
	}
	return &NotFoundError{}
}

func (s *stubStore) GetRecords(context.Context) ([]Record, error) {
	records := make([]Record, len(s.records))
	copy(records, s.records)
	return records, nil
}

func (s *stubStore) DistinctCategories(context.Context) ([]string, error) {
	return []string{}, nil
}

func (s *stubStore) Close() error { return nil }

func discardLogger() *logger.Logger {
	return logger.New(logger.Config{Output: "discard"})
}

func TestNotifyingStorePublishesAfterMutations(t *testing.T) {
	stub := &stubStore{}
	store := NewNotifying(stub, discardLogger())

	ch, cancel := store.Subscribe()
	defer cancel()

	ctx := context.Background()

	id, err := store.InsertRecord(ctx, testRecord(0, "Coffee"))
	if err != nil {
		t.Fatalf("Failed to insert record: %v", err)
	}
	if id != 1 {
		t.Errorf("Expected assigned id 1, got %d", id)
	}
	if got := receive(t, ch); len(got) != 1 {
		t.Fatalf("Expected snapshot with 1 record after insert, got %d", len(got))
	}

	if err = store.SetFavorite(ctx, id, true); err != nil {
		t.Fatalf("Failed to set favorite: %v", err)
	}
	got := receive(t, ch)
	if len(got) != 1 || !got[0].IsFavorite() {
		t.Error("Expected snapshot with the favorite flag set")
	}

	if _, err = store.DeleteRecord(ctx, id); err != nil {
		t.Fatalf("Failed to delete record: %v", err)
	}
	if got = receive(t, ch); len(got) != 0 {
		t.Errorf("Expected empty snapshot after delete, got %d records", len(got))
	}
}

func TestNotifyingStoreDoesNotPublishOnFailure(t *testing.T) {
	stub := &stubStore{failAll: true}
	store := NewNotifying(stub, discardLogger())

	ch, cancel := store.Subscribe()
	defer cancel()

	_, err := store.InsertRecord(context.Background(), testRecord(0, "Coffee"))
	if !errors.Is(err, errStub) {
		t.Fatalf("Expected the stub failure, got %v", err)
	}

	select {
	case <-ch:
		t.Error("Expected no snapshot after a failed mutation")
	default:
	}
}
