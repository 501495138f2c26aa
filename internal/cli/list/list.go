package list

import (
	"context"
	"flag"
	"fmt"

	"github.com/finrec/finrec/internal/cli"
	"github.com/finrec/finrec/internal/filter"
	"github.com/finrec/finrec/internal/logger"
	"github.com/finrec/finrec/internal/storage"
	"github.com/finrec/finrec/internal/summary"
	"github.com/finrec/finrec/internal/util"
)

type listCommand struct {
}

func NewCommand() cli.Command {
	return listCommand{}
}

func (c listCommand) Description() string {
	return "List records matching the given filters, with totals"
}

var search string
var category string
var recordType string
var favoritesOnly bool
var startDate string
var endDate string
var minAmount string
var maxAmount string
var sortOrder string

func (c listCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&search, "q", "", "search description and category")
	fs.StringVar(&category, "cat", "", "filter by exact category")
	fs.StringVar(&recordType, "t", "", "filter by type (income or expense)")
	fs.BoolVar(&favoritesOnly, "fav", false, "show favorites only")
	fs.StringVar(&startDate, "from", "", "start date as YYYY-MM-DD (inclusive)")
	fs.StringVar(&endDate, "to", "", "end date as YYYY-MM-DD (inclusive)")
	fs.StringVar(&minAmount, "min", "", "minimum amount (only applied together with -max)")
	fs.StringVar(&maxAmount, "max", "", "maximum amount (only applied together with -min)")
	fs.StringVar(&sortOrder, "sort", "", "sort order: date:desc, amount:asc or amount:desc")
}

func (c listCommand) Run(ctx context.Context, store *storage.NotifyingStore, _ *logger.Logger) error {
	f, err := filter.Parse(filter.Options{
		Search:        search,
		Category:      category,
		Type:          recordType,
		FavoritesOnly: favoritesOnly,
		StartDate:     startDate,
		EndDate:       endDate,
		MinAmount:     minAmount,
		MaxAmount:     maxAmount,
		Sort:          sortOrder,
	})
	if err != nil {
		return err
	}

	records, err := store.GetRecords(ctx)
	if err != nil {
		return fmt.Errorf("unable to load records: %w", err)
	}

	visible := filter.Apply(records, f)

	for _, rec := range visible {
		fmt.Println(formatRecord(rec))
	}

	if len(visible) == 0 {
		fmt.Println("no records match the current filters")
	}

	printSummary(summary.Compute(visible))

	return nil
}

func formatRecord(rec storage.Record) string {
	amount := util.FormatMoney(rec.Amount(), ",", ".")
	if rec.Type() == storage.ExpenseRecord {
		amount = util.ColorOutput("-"+amount, "red")
	} else {
		amount = util.ColorOutput(amount, "green")
	}

	star := " "
	if rec.IsFavorite() {
		star = util.ColorOutput("*", "yellow")
	}

	return fmt.Sprintf("%4d %s %s  %-30s %-15s %s",
		rec.ID(), star, rec.Date().Format("2006-01-02"), rec.Description(), rec.Category(), amount)
}

func printSummary(totals summary.Summary) {
	fmt.Println()
	fmt.Printf("income:  %s\n", util.ColorOutput(util.FormatMoney(totals.Income, ",", "."), "green"))
	fmt.Printf("expense: %s\n", util.ColorOutput(util.FormatMoney(totals.Expense, ",", "."), "red"))

	balance := util.FormatMoney(totals.Balance, ",", ".")
	if totals.Balance.IsNegative() {
		balance = util.ColorOutput(balance, "red", "bold")
	} else {
		balance = util.ColorOutput(balance, "green", "bold")
	}
	fmt.Printf("balance: %s\n", balance)
}
