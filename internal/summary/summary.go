// Package summary aggregates totals over a filtered record view. It
// always operates on what is currently visible, not on the full set.
package summary

import (
	"github.com/shopspring/decimal"

	"github.com/finrec/finrec/internal/storage"
)

type Summary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// Compute sums income and expense amounts and derives the balance.
// Decimal arithmetic keeps Income - Expense == Balance exact.
func Compute(records []storage.Record) Summary {
	income := decimal.Zero
	expense := decimal.Zero

	for _, rec := range records {
		switch rec.Type() {
		case storage.IncomeRecord:
			income = income.Add(rec.Amount())
		case storage.ExpenseRecord:
			expense = expense.Add(rec.Amount())
		}
	}

	return Summary{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}
