package storage

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestRecordTypeString(t *testing.T) {
	if ExpenseRecord.String() != "expense" {
		t.Errorf("Expected 'expense', got '%s'", ExpenseRecord.String())
	}
	if IncomeRecord.String() != "income" {
		t.Errorf("Expected 'income', got '%s'", IncomeRecord.String())
	}
}

func TestParseRecordType(t *testing.T) {
	tests := []struct {
		input   string
		want    RecordType
		wantErr bool
	}{
		{input: "expense", want: ExpenseRecord},
		{input: "income", want: IncomeRecord},
		{input: "Income", wantErr: true},
		{input: "transfer", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRecordType(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestWithID(t *testing.T) {
	original := NewRecord(0, "Coffee", "Eating out", decimal.RequireFromString("4.50"),
		time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), ExpenseRecord, true)

	persisted := WithID(original, 7)

	if persisted.ID() != 7 {
		t.Errorf("Expected id 7, got %d", persisted.ID())
	}
	if persisted.Description() != original.Description() {
		t.Errorf("Expected description to carry over, got '%s'", persisted.Description())
	}
	if !persisted.Amount().Equal(original.Amount()) {
		t.Errorf("Expected amount to carry over, got %s", persisted.Amount())
	}
	if !persisted.IsFavorite() {
		t.Error("Expected favorite flag to carry over")
	}
	if original.ID() != 0 {
		t.Error("Expected the original record to stay untouched")
	}
}
