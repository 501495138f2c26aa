package edit

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strconv"
	"time"

	"github.com/finrec/finrec/internal/cli"
	"github.com/finrec/finrec/internal/form"
	"github.com/finrec/finrec/internal/logger"
	"github.com/finrec/finrec/internal/storage"
	"github.com/finrec/finrec/internal/util"
)

type editCommand struct {
}

func NewCommand() cli.Command {
	return editCommand{}
}

func (c editCommand) Description() string {
	return "Edit an existing record"
}

var id int64
var description string
var amount string
var category string
var recordType string
var dateInput string
var favorite string

func (c editCommand) SetFlags(fs *flag.FlagSet) {
	fs.Int64Var(&id, "id", 0, "id of the record to edit")
	fs.StringVar(&description, "d", "", "new description (keeps current when omitted)")
	fs.StringVar(&amount, "a", "", "new amount (keeps current when omitted)")
	fs.StringVar(&category, "cat", "", "new category (keeps current when omitted)")
	fs.StringVar(&recordType, "t", "", "new type, income or expense (keeps current when omitted)")
	fs.StringVar(&dateInput, "date", "", "new date as YYYY-MM-DD (keeps current when omitted)")
	fs.StringVar(&favorite, "fav", "", "true or false (keeps current when omitted)")
}

func (c editCommand) Run(ctx context.Context, store *storage.NotifyingStore, _ *logger.Logger) error {
	if id == 0 {
		return fmt.Errorf("you must provide the id of the record to edit")
	}

	current, err := store.GetRecordByID(ctx, id)
	if err != nil {
		var notFound *storage.NotFoundError
		if errors.As(err, &notFound) {
			return fmt.Errorf("record %d does not exist", id)
		}
		return fmt.Errorf("unable to load record: %w", err)
	}

	draft, err := overlay(current)
	if err != nil {
		return err
	}

	record, validationErrs := draft.Validate()
	if len(validationErrs) > 0 {
		for _, msg := range validationErrs {
			fmt.Println(util.ColorOutput(msg, "red"))
		}
		return fmt.Errorf("record was not updated")
	}

	if _, err = store.UpdateRecord(ctx, record); err != nil {
		return fmt.Errorf("unable to update record: %w", err)
	}

	fmt.Printf("record %d updated\n", id)

	return nil
}

// overlay builds a draft from the stored record with any provided flag
// values replacing the current ones.
func overlay(current storage.Record) (form.Draft, error) {
	draft := form.Draft{
		ID:          current.ID(),
		Description: current.Description(),
		Amount:      current.Amount().String(),
		Category:    current.Category(),
		Date:        current.Date(),
		Type:        current.Type(),
		Favorite:    current.IsFavorite(),
	}

	if description != "" {
		draft.Description = description
	}

	if amount != "" {
		draft.Amount = amount
	}

	if category != "" {
		draft.Category = category
	}

	if recordType != "" {
		recType, err := storage.ParseRecordType(recordType)
		if err != nil {
			return draft, err
		}
		draft.Type = recType
	}

	if dateInput != "" {
		date, err := time.Parse("2006-01-02", dateInput)
		if err != nil {
			return draft, fmt.Errorf("invalid date: %w", err)
		}
		draft.Date = date
	}

	if favorite != "" {
		fav, err := strconv.ParseBool(favorite)
		if err != nil {
			return draft, fmt.Errorf("invalid favorite value: %w", err)
		}
		draft.Favorite = fav
	}

	return draft, nil
}
