package filter

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finrec/finrec/internal/storage"
)

// SortOrder is the total order applied after filtering.
type SortOrder string

const (
	SortDateDesc   SortOrder = "date:desc"
	SortAmountAsc  SortOrder = "amount:asc"
	SortAmountDesc SortOrder = "amount:desc"
)

// Filter holds the current combination of criteria. Optional criteria
// are pointers to distinguish "not set" from zero values; an unset
// criterion always matches. Sort is always active and defaults to
// SortDateDesc.
type Filter struct {
	// SearchQuery matches case-insensitively against description or
	// category; empty means inactive.
	SearchQuery   string
	Category      *string
	Type          *storage.RecordType
	FavoritesOnly bool
	// Date bounds are inclusive and may be set independently.
	StartDate *time.Time
	EndDate   *time.Time
	// Amount bounds are inclusive but only activate together; a single
	// bound is inert.
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	Sort      SortOrder
}

func New() *Filter {
	return &Filter{
		Sort: SortDateDesc,
	}
}

// Clear resets every criterion to its default.
func (f *Filter) Clear() {
	*f = Filter{Sort: SortDateDesc}
}
