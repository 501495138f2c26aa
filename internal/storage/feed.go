package storage

import "sync"

// Feed fans the full record set out to subscribers. Delivery is
// latest-wins: a subscriber that has not consumed the previous snapshot
// gets it replaced by the newer one, never a growing backlog. That is
// safe because every snapshot is a complete restatement of the set.
type Feed struct {
	mu     sync.Mutex
	subs   map[int]chan []Record
	nextID int
}

func NewFeed() *Feed {
	return &Feed{
		subs: make(map[int]chan []Record),
	}
}

// Subscribe registers a new subscriber. The returned cancel func must be
// called on teardown, otherwise the subscriber channel leaks.
func (f *Feed) Subscribe() (<-chan []Record, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextID
	f.nextID++

	ch := make(chan []Record, 1)
	f.subs[id] = ch

	cancel := func() {
		f.mu.Lock()
		defer f.mu.Unlock()

		if sub, ok := f.subs[id]; ok {
			delete(f.subs, id)
			close(sub)
		}
	}

	return ch, cancel
}

// Publish delivers a snapshot to every subscriber without blocking.
func (f *Feed) Publish(records []Record) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, ch := range f.subs {
		select {
		case ch <- records:
		default:
			// Drop the stale snapshot and retry with the fresh one.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- records:
			default:
			}
		}
	}
}
