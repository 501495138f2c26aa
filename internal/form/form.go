// Package form validates draft record input before it reaches the store.
package form

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finrec/finrec/internal/storage"
)

// Validation messages, in rule declaration order.
const (
	ErrDescriptionRequired = "description required"
	ErrAmountRequired      = "amount required"
	ErrAmountNotANumber    = "amount must be a valid number"
	ErrAmountNotPositive   = "amount must be greater than zero"
	ErrCategoryRequired    = "category required"
)

// Draft is a record under entry. Description, Amount and Category are
// raw user strings; the remaining fields come from typed inputs. ID 0
// means a new record, anything else an edit.
type Draft struct {
	ID          int64
	Description string
	Amount      string
	Category    string
	Date        time.Time
	Type        storage.RecordType
	Favorite    bool
}

// Validate checks every rule and returns either the normalized record or
// the full list of human-readable errors. Rules never short-circuit, so
// one pass reports everything; identical input always yields the
// identical error list.
func (d Draft) Validate() (storage.Record, []string) {
	var errs []string

	description := strings.TrimSpace(d.Description)
	if description == "" {
		errs = append(errs, ErrDescriptionRequired)
	}

	amount := decimal.Zero
	amountInput := strings.TrimSpace(d.Amount)
	if amountInput == "" {
		errs = append(errs, ErrAmountRequired)
	} else {
		parsed, err := decimal.NewFromString(amountInput)
		switch {
		case err != nil:
			errs = append(errs, ErrAmountNotANumber)
		case !parsed.IsPositive():
			errs = append(errs, ErrAmountNotPositive)
		default:
			amount = parsed
		}
	}

	category := strings.TrimSpace(d.Category)
	if category == "" {
		errs = append(errs, ErrCategoryRequired)
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return storage.NewRecord(d.ID, description, category, amount, d.Date, d.Type, d.Favorite), nil
}
