package favorite

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/finrec/finrec/internal/cli"
	"github.com/finrec/finrec/internal/logger"
	"github.com/finrec/finrec/internal/storage"
)

type favoriteCommand struct {
}

func NewCommand() cli.Command {
	return favoriteCommand{}
}

func (c favoriteCommand) Description() string {
	return "Mark or unmark a record as favorite"
}

var id int64
var unset bool

func (c favoriteCommand) SetFlags(fs *flag.FlagSet) {
	fs.Int64Var(&id, "id", 0, "id of the record")
	fs.BoolVar(&unset, "unset", false, "remove the favorite mark instead of setting it")
}

func (c favoriteCommand) Run(ctx context.Context, store *storage.NotifyingStore, _ *logger.Logger) error {
	if id == 0 {
		return fmt.Errorf("you must provide the id of the record")
	}

	if err := store.SetFavorite(ctx, id, !unset); err != nil {
		var notFound *storage.NotFoundError
		if errors.As(err, &notFound) {
			return fmt.Errorf("record %d does not exist", id)
		}
		return fmt.Errorf("unable to update favorite: %w", err)
	}

	if unset {
		fmt.Printf("record %d is no longer a favorite\n", id)
	} else {
		fmt.Printf("record %d marked as favorite\n", id)
	}

	return nil
}
