package storage

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func testRecord(id int64, description string) Record {
	return NewRecord(id, description, "General", decimal.NewFromInt(10),
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), ExpenseRecord, false)
}

func receive(t *testing.T, ch <-chan []Record) []Record {
	t.Helper()

	select {
	case records, ok := <-ch:
		if !ok {
			t.Fatal("Subscription channel closed unexpectedly")
		}
		return records
	case <-time.After(time.Second):
		t.Fatal("Timed out waiting for a snapshot")
	}
	return nil
}

func TestFeedPublish(t *testing.T) {
	feed := NewFeed()

	ch, cancel := feed.Subscribe()
	defer cancel()

	feed.Publish([]Record{testRecord(1, "Coffee")})

	records := receive(t, ch)
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if records[0].Description() != "Coffee" {
		t.Errorf("Expected description 'Coffee', got '%s'", records[0].Description())
	}
}

func TestFeedLatestWins(t *testing.T) {
	feed := NewFeed()

	ch, cancel := feed.Subscribe()
	defer cancel()

	// Publish twice without the subscriber consuming; only the newest
	// snapshot should be delivered.
	feed.Publish([]Record{testRecord(1, "Stale")})
	feed.Publish([]Record{testRecord(1, "Fresh"), testRecord(2, "Extra")})

	records := receive(t, ch)
	if len(records) != 2 {
		t.Fatalf("Expected the latest snapshot with 2 records, got %d", len(records))
	}
	if records[0].Description() != "Fresh" {
		t.Errorf("Expected description 'Fresh', got '%s'", records[0].Description())
	}
}

func TestFeedUnsubscribe(t *testing.T) {
	feed := NewFeed()

	ch, cancel := feed.Subscribe()
	cancel()

	if _, ok := <-ch; ok {
		t.Error("Expected the channel to be closed after cancel")
	}

	// Publishing after cancel must not panic or deliver anything.
	feed.Publish([]Record{testRecord(1, "Coffee")})

	// Cancelling twice is a no-op.
	cancel()
}

func TestFeedMultipleSubscribers(t *testing.T) {
	feed := NewFeed()

	first, cancelFirst := feed.Subscribe()
	defer cancelFirst()
	second, cancelSecond := feed.Subscribe()
	defer cancelSecond()

	feed.Publish([]Record{testRecord(1, "Coffee")})

	if got := receive(t, first); len(got) != 1 {
		t.Errorf("Expected first subscriber to get 1 record, got %d", len(got))
	}
	if got := receive(t, second); len(got) != 1 {
		t.Errorf("Expected second subscriber to get 1 record, got %d", len(got))
	}
}
