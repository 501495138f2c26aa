package filter

import (
	"sort"
	"strings"

	"github.com/finrec/finrec/internal/storage"
)

// Apply returns the records satisfying every active criterion, in the
// filter's sort order. Active criteria combine conjunctively. The input
// slice is never mutated; ties keep the input's relative order.
func Apply(records []storage.Record, f *Filter) []storage.Record {
	result := make([]storage.Record, 0, len(records))
	for _, rec := range records {
		if matches(rec, f) {
			result = append(result, rec)
		}
	}

	sortRecords(result, f.Sort)

	return result
}

func matches(rec storage.Record, f *Filter) bool {
	if f.SearchQuery != "" {
		query := strings.ToLower(f.SearchQuery)
		if !strings.Contains(strings.ToLower(rec.Description()), query) &&
			!strings.Contains(strings.ToLower(rec.Category()), query) {
			return false
		}
	}

	if f.Category != nil && rec.Category() != *f.Category {
		return false
	}

	if f.Type != nil && rec.Type() != *f.Type {
		return false
	}

	if f.FavoritesOnly && !rec.IsFavorite() {
		return false
	}

	if f.StartDate != nil && rec.Date().Before(*f.StartDate) {
		return false
	}

	if f.EndDate != nil && rec.Date().After(*f.EndDate) {
		return false
	}

	// The amount range only activates with both bounds present; a single
	// bound is inert. Asymmetric amount bounds are unsupported.
	if f.MinAmount != nil && f.MaxAmount != nil {
		if rec.Amount().LessThan(*f.MinAmount) || rec.Amount().GreaterThan(*f.MaxAmount) {
			return false
		}
	}

	return true
}

func sortRecords(records []storage.Record, order SortOrder) {
	switch order {
	case SortAmountAsc:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Amount().LessThan(records[j].Amount())
		})
	case SortAmountDesc:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Amount().GreaterThan(records[j].Amount())
		})
	case SortDateDesc:
		fallthrough
	default:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Date().After(records[j].Date())
		})
	}
}
