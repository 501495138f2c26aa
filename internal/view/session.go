// Package view wires the store feed, filter state and summary together
// into a reactive session for a presentation layer.
package view

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finrec/finrec/internal/filter"
	"github.com/finrec/finrec/internal/logger"
	"github.com/finrec/finrec/internal/storage"
	"github.com/finrec/finrec/internal/summary"
	"github.com/finrec/finrec/internal/util"
)

// Snapshot is what observers receive after every recompute: the filtered
// ordered records and their totals.
type Snapshot struct {
	Records []storage.Record
	Totals  summary.Summary
}

// Session owns the filter state for one view and recomputes the visible
// records whenever the record set or any criterion changes. Recomputes
// are full passes over the set; at personal-finance scale that is cheap
// enough that no incremental diffing is attempted.
type Session struct {
	store  *storage.NotifyingStore
	logger *logger.Logger

	mu      sync.Mutex
	filter  *filter.Filter
	all     []storage.Record
	visible []storage.Record
	totals  summary.Summary
	subs    map[int]chan Snapshot
	nextSub int
	closed  bool

	cancelFeed func()
}

func NewSession(ctx context.Context, store *storage.NotifyingStore, log *logger.Logger) (*Session, error) {
	records, err := store.GetRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load records: %w", err)
	}

	s := &Session{
		store:  store,
		logger: log,
		filter: filter.New(),
		all:    records,
		subs:   make(map[int]chan Snapshot),
	}

	s.mu.Lock()
	s.recompute()
	s.mu.Unlock()

	updates, cancel := store.Subscribe()
	s.cancelFeed = cancel
	go s.watch(updates)

	return s, nil
}

func (s *Session) watch(updates <-chan []storage.Record) {
	for records := range updates {
		s.logger.Debug("Record set changed", "count", len(records))

		s.mu.Lock()
		s.all = records
		s.recompute()
		s.mu.Unlock()
	}
}

// recompute runs the filter pipeline and notifies observers. Callers
// must hold s.mu.
func (s *Session) recompute() {
	s.visible = filter.Apply(s.all, s.filter)
	s.totals = summary.Compute(s.visible)

	if s.closed {
		return
	}

	snap := Snapshot{Records: s.visible, Totals: s.totals}
	for _, ch := range s.subs {
		select {
		case ch <- snap:
		default:
			// Replace a stale unconsumed snapshot with the latest.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}

func (s *Session) updateFilter(mutate func(*filter.Filter)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mutate(s.filter)
	s.recompute()
}

func (s *Session) SetSearchQuery(query string) {
	s.updateFilter(func(f *filter.Filter) { f.SearchQuery = query })
}

func (s *Session) SetCategory(category *string) {
	s.updateFilter(func(f *filter.Filter) { f.Category = category })
}

func (s *Session) SetType(recordType *storage.RecordType) {
	s.updateFilter(func(f *filter.Filter) { f.Type = recordType })
}

func (s *Session) SetFavoritesOnly(favoritesOnly bool) {
	s.updateFilter(func(f *filter.Filter) { f.FavoritesOnly = favoritesOnly })
}

func (s *Session) SetSortOrder(order filter.SortOrder) {
	s.updateFilter(func(f *filter.Filter) { f.Sort = order })
}

// SetStartDate normalizes the bound to start-of-day, so a user picking
// the same day for both bounds sees every record on that day.
func (s *Session) SetStartDate(date *time.Time) {
	s.updateFilter(func(f *filter.Filter) {
		if date == nil {
			f.StartDate = nil
			return
		}
		start := util.StartOfDay(*date)
		f.StartDate = &start
	})
}

// SetEndDate normalizes the bound to end-of-day.
func (s *Session) SetEndDate(date *time.Time) {
	s.updateFilter(func(f *filter.Filter) {
		if date == nil {
			f.EndDate = nil
			return
		}
		end := util.EndOfDay(*date)
		f.EndDate = &end
	})
}

func (s *Session) SetMinAmount(minAmount *decimal.Decimal) {
	s.updateFilter(func(f *filter.Filter) { f.MinAmount = minAmount })
}

func (s *Session) SetMaxAmount(maxAmount *decimal.Decimal) {
	s.updateFilter(func(f *filter.Filter) { f.MaxAmount = maxAmount })
}

func (s *Session) ClearFilters() {
	s.updateFilter(func(f *filter.Filter) { f.Clear() })
}

// Visible returns the current filtered, ordered records.
func (s *Session) Visible() []storage.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]storage.Record, len(s.visible))
	copy(records, s.visible)
	return records
}

// Totals returns the summary of the currently visible records.
func (s *Session) Totals() summary.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.totals
}

// Subscribe registers an observer for recompute snapshots. The cancel
// func must be called on teardown.
func (s *Session) Subscribe() (<-chan Snapshot, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++

	ch := make(chan Snapshot, 1)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}

	return ch, cancel
}

// Save inserts a new record (ID 0) or updates an existing one. A store
// failure leaves the visible view untouched; the feed only publishes
// after successful mutations.
func (s *Session) Save(ctx context.Context, rec storage.Record) (int64, error) {
	if rec.ID() == 0 {
		id, err := s.store.InsertRecord(ctx, rec)
		if err != nil {
			return 0, fmt.Errorf("unable to save record: %w", err)
		}
		return id, nil
	}

	count, err := s.store.UpdateRecord(ctx, rec)
	if err != nil {
		return 0, fmt.Errorf("unable to update record: %w", err)
	}
	if count == 0 {
		return 0, &storage.NotFoundError{}
	}

	return rec.ID(), nil
}

func (s *Session) Delete(ctx context.Context, id int64) error {
	count, err := s.store.DeleteRecord(ctx, id)
	if err != nil {
		return fmt.Errorf("unable to delete record: %w", err)
	}
	if count == 0 {
		return &storage.NotFoundError{}
	}

	return nil
}

func (s *Session) SetFavorite(ctx context.Context, id int64, favorite bool) error {
	return s.store.SetFavorite(ctx, id, favorite)
}

// Categories lists the distinct category labels across all records.
func (s *Session) Categories(ctx context.Context) ([]string, error) {
	return s.store.DistinctCategories(ctx)
}

// Close detaches the session from the store feed and releases observers.
func (s *Session) Close() {
	s.cancelFeed()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
}
