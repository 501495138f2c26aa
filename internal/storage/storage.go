package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finrec/finrec/internal/logger"
)

type NotFoundError struct{}

func (e *NotFoundError) Error() string {
	return "record not found"
}

// RecordType is the closed set of financial record kinds. Call sites
// switch over it exhaustively; never compare against raw ints.
type RecordType int

const (
	ExpenseRecord RecordType = iota
	IncomeRecord
)

func (t RecordType) String() string {
	switch t {
	case ExpenseRecord:
		return "expense"
	case IncomeRecord:
		return "income"
	}
	return "unknown"
}

func ParseRecordType(s string) (RecordType, error) {
	switch s {
	case "expense":
		return ExpenseRecord, nil
	case "income":
		return IncomeRecord, nil
	}
	return ExpenseRecord, fmt.Errorf("invalid record type: %q (must be income or expense)", s)
}

// Record is an immutable financial entry. ID 0 means the record has not
// been persisted yet; the store assigns the key on insert.
type Record interface {
	ID() int64
	Description() string
	Amount() decimal.Decimal
	Date() time.Time
	Category() string
	Type() RecordType
	IsFavorite() bool
}

type record struct {
	id          int64
	description string
	amount      decimal.Decimal
	date        time.Time
	category    string
	recordType  RecordType
	favorite    bool
}

func NewRecord(
	id int64,
	description, category string,
	amount decimal.Decimal,
	date time.Time,
	recordType RecordType,
	favorite bool,
) Record {
	return &record{
		id:          id,
		description: description,
		amount:      amount,
		date:        date,
		category:    category,
		recordType:  recordType,
		favorite:    favorite,
	}
}

func (r *record) ID() int64 {
	return r.id
}

func (r *record) Description() string {
	return r.description
}

func (r *record) Amount() decimal.Decimal {
	return r.amount
}

func (r *record) Date() time.Time {
	return r.date
}

func (r *record) Category() string {
	return r.category
}

func (r *record) Type() RecordType {
	return r.recordType
}

func (r *record) IsFavorite() bool {
	return r.favorite
}

// WithID returns a copy of rec carrying the given persistent key.
func WithID(rec Record, id int64) Record {
	return NewRecord(id, rec.Description(), rec.Category(), rec.Amount(), rec.Date(), rec.Type(), rec.IsFavorite())
}

type Store interface {
	// Migrations
	ApplyMigrations(ctx context.Context, logger *logger.Logger) error

	// Records
	GetRecordByID(ctx context.Context, id int64) (Record, error)
	InsertRecord(ctx context.Context, record Record) (int64, error)
	UpdateRecord(ctx context.Context, record Record) (int64, error)
	DeleteRecord(ctx context.Context, id int64) (int64, error)
	SetFavorite(ctx context.Context, id int64, favorite bool) error
	// GetRecords returns every record ordered by date descending with id
	// as tie-break. The filter engine's stable sort depends on this order
	// being deterministic.
	GetRecords(ctx context.Context) ([]Record, error)

	// Categories are derived from the records themselves, there is no
	// category table.
	DistinctCategories(ctx context.Context) ([]string, error)

	// Resource managment
	Close() error
}
