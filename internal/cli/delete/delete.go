package delete

import (
	"context"
	"flag"
	"fmt"

	"github.com/finrec/finrec/internal/cli"
	"github.com/finrec/finrec/internal/logger"
	"github.com/finrec/finrec/internal/storage"
)

type deleteCommand struct {
}

func NewCommand() cli.Command {
	return deleteCommand{}
}

func (c deleteCommand) Description() string {
	return "Delete a record"
}

var id int64

func (c deleteCommand) SetFlags(fs *flag.FlagSet) {
	fs.Int64Var(&id, "id", 0, "id of the record to delete")
}

func (c deleteCommand) Run(ctx context.Context, store *storage.NotifyingStore, _ *logger.Logger) error {
	if id == 0 {
		return fmt.Errorf("you must provide the id of the record to delete")
	}

	count, err := store.DeleteRecord(ctx, id)
	if err != nil {
		return fmt.Errorf("unable to delete record: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("record %d does not exist", id)
	}

	fmt.Printf("record %d deleted\n", id)

	return nil
}
