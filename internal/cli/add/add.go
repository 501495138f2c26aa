package add

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/finrec/finrec/internal/cli"
	"github.com/finrec/finrec/internal/form"
	"github.com/finrec/finrec/internal/logger"
	"github.com/finrec/finrec/internal/storage"
	"github.com/finrec/finrec/internal/util"
)

type addCommand struct {
}

func NewCommand() cli.Command {
	return addCommand{}
}

func (c addCommand) Description() string {
	return "Add a new income or expense record"
}

var description string
var amount string
var category string
var recordType string
var dateInput string
var favorite bool

func (c addCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&description, "d", "", "record description")
	fs.StringVar(&amount, "a", "", "record amount, e.g. 10.50")
	fs.StringVar(&category, "cat", "", "record category")
	fs.StringVar(&recordType, "t", "expense", "record type (income or expense)")
	fs.StringVar(&dateInput, "date", "", "record date as YYYY-MM-DD (defaults to today)")
	fs.BoolVar(&favorite, "fav", false, "mark the record as favorite")
}

func (c addCommand) Run(ctx context.Context, store *storage.NotifyingStore, _ *logger.Logger) error {
	recType, err := storage.ParseRecordType(recordType)
	if err != nil {
		return err
	}

	date := time.Now()
	if dateInput != "" {
		date, err = time.Parse("2006-01-02", dateInput)
		if err != nil {
			return fmt.Errorf("invalid date: %w", err)
		}
	}

	draft := form.Draft{
		Description: description,
		Amount:      amount,
		Category:    category,
		Date:        date,
		Type:        recType,
		Favorite:    favorite,
	}

	record, validationErrs := draft.Validate()
	if len(validationErrs) > 0 {
		for _, msg := range validationErrs {
			fmt.Println(util.ColorOutput(msg, "red"))
		}
		return fmt.Errorf("record was not saved")
	}

	id, err := store.InsertRecord(ctx, record)
	if err != nil {
		return fmt.Errorf("unable to save record: %w", err)
	}

	fmt.Printf("record %d saved\n", id)

	return nil
}
