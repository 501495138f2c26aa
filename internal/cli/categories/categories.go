package categories

import (
	"context"
	"flag"
	"fmt"

	"github.com/finrec/finrec/internal/cli"
	"github.com/finrec/finrec/internal/logger"
	"github.com/finrec/finrec/internal/storage"
)

type categoriesCommand struct {
}

func NewCommand() cli.Command {
	return categoriesCommand{}
}

func (c categoriesCommand) Description() string {
	return "List the distinct categories across all records"
}

func (c categoriesCommand) SetFlags(*flag.FlagSet) {
}

func (c categoriesCommand) Run(ctx context.Context, store *storage.NotifyingStore, _ *logger.Logger) error {
	categories, err := store.DistinctCategories(ctx)
	if err != nil {
		return fmt.Errorf("unable to load categories: %w", err)
	}

	if len(categories) == 0 {
		fmt.Println("no categories yet")
		return nil
	}

	for _, category := range categories {
		fmt.Println(category)
	}

	return nil
}
