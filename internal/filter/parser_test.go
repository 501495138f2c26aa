package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finrec/finrec/internal/storage"
)

func TestParseSortOrder(t *testing.T) {
	tests := []struct {
		input   string
		want    SortOrder
		wantErr bool
	}{
		{input: "date:desc", want: SortDateDesc},
		{input: "amount:asc", want: SortAmountAsc},
		{input: "amount:desc", want: SortAmountDesc},
		{input: "date:asc", wantErr: true},
		{input: "amount", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSortOrder(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "10", want: "10"},
		{input: "10.50", want: "10.5"},
		{input: "0.001", want: "0.001"},
		{input: "abc", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseDefaults(t *testing.T) {
	f, err := Parse(Options{})

	require.NoError(t, err)
	assert.Equal(t, New(), f)
}

func TestParseAllOptions(t *testing.T) {
	f, err := Parse(Options{
		Search:        "coffee",
		Category:      "Eating out",
		Type:          "expense",
		FavoritesOnly: true,
		StartDate:     "2024-01-01",
		EndDate:       "2024-01-31",
		MinAmount:     "5",
		MaxAmount:     "10.50",
		Sort:          "amount:desc",
	})

	require.NoError(t, err)
	assert.Equal(t, "coffee", f.SearchQuery)
	require.NotNil(t, f.Category)
	assert.Equal(t, "Eating out", *f.Category)
	require.NotNil(t, f.Type)
	assert.Equal(t, storage.ExpenseRecord, *f.Type)
	assert.True(t, f.FavoritesOnly)
	require.NotNil(t, f.MinAmount)
	assert.Equal(t, "5", f.MinAmount.String())
	require.NotNil(t, f.MaxAmount)
	assert.Equal(t, "10.5", f.MaxAmount.String())
	assert.Equal(t, SortAmountDesc, f.Sort)
}

// Day-granular bounds widen to the full day: start-of-day for the lower
// bound, end-of-day for the upper bound.
func TestParseNormalizesDateBounds(t *testing.T) {
	f, err := Parse(Options{StartDate: "2024-06-10", EndDate: "2024-06-10"})

	require.NoError(t, err)
	require.NotNil(t, f.StartDate)
	require.NotNil(t, f.EndDate)
	assert.Equal(t, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC), *f.StartDate)
	assert.Equal(t, time.Date(2024, time.June, 10, 23, 59, 59, 0, time.UTC), *f.EndDate)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{name: "invalid type", opts: Options{Type: "transfer"}},
		{name: "invalid start date", opts: Options{StartDate: "not-a-date"}},
		{name: "invalid end date", opts: Options{EndDate: "2024-13-45"}},
		{name: "invalid min amount", opts: Options{MinAmount: "abc"}},
		{name: "invalid max amount", opts: Options{MaxAmount: "ten"}},
		{name: "invalid sort", opts: Options{Sort: "date:asc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.opts)
			assert.Error(t, err)
		})
	}
}
