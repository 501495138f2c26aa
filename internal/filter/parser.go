package filter

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finrec/finrec/internal/storage"
	"github.com/finrec/finrec/internal/util"
)

const dateLayout = "2006-01-02"

// Options carries raw string inputs for every criterion, as collected
// from CLI flags or query parameters. Empty strings mean "not set".
type Options struct {
	Search        string
	Category      string
	Type          string
	FavoritesOnly bool
	StartDate     string
	EndDate       string
	MinAmount     string
	MaxAmount     string
	Sort          string
}

// ParseAmount converts a decimal amount string such as "10.50".
func ParseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, fmt.Errorf("amount cannot be empty")
	}

	value, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount format: %w", err)
	}

	return value, nil
}

// ParseSortOrder validates a sort token like "amount:asc".
func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(s) {
	case SortDateDesc, SortAmountAsc, SortAmountDesc:
		return SortOrder(s), nil
	}
	return SortDateDesc, fmt.Errorf("invalid sort order: %s (must be date:desc, amount:asc or amount:desc)", s)
}

// Parse converts raw criterion strings into a Filter. Date bounds are
// day-granular here, so the start is normalized to start-of-day and the
// end to end-of-day; selecting the same day for both bounds therefore
// covers every record on that day.
func Parse(opts Options) (*Filter, error) {
	f := New()

	f.SearchQuery = opts.Search
	f.FavoritesOnly = opts.FavoritesOnly

	if opts.Category != "" {
		category := opts.Category
		f.Category = &category
	}

	if opts.Type != "" {
		recordType, err := storage.ParseRecordType(opts.Type)
		if err != nil {
			return nil, err
		}
		f.Type = &recordType
	}

	if opts.StartDate != "" {
		val, err := time.Parse(dateLayout, opts.StartDate)
		if err != nil {
			return nil, fmt.Errorf("invalid start date: %w", err)
		}
		start := util.StartOfDay(val)
		f.StartDate = &start
	}

	if opts.EndDate != "" {
		val, err := time.Parse(dateLayout, opts.EndDate)
		if err != nil {
			return nil, fmt.Errorf("invalid end date: %w", err)
		}
		end := util.EndOfDay(val)
		f.EndDate = &end
	}

	if opts.MinAmount != "" {
		val, err := ParseAmount(opts.MinAmount)
		if err != nil {
			return nil, fmt.Errorf("invalid minimum amount: %w", err)
		}
		f.MinAmount = &val
	}

	if opts.MaxAmount != "" {
		val, err := ParseAmount(opts.MaxAmount)
		if err != nil {
			return nil, fmt.Errorf("invalid maximum amount: %w", err)
		}
		f.MaxAmount = &val
	}

	if opts.Sort != "" {
		sortOrder, err := ParseSortOrder(opts.Sort)
		if err != nil {
			return nil, err
		}
		f.Sort = sortOrder
	}

	return f, nil
}
