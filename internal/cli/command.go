package cli

import (
	"context"
	"flag"

	"github.com/finrec/finrec/internal/logger"
	"github.com/finrec/finrec/internal/storage"
)

type Command interface {
	SetFlags(fset *flag.FlagSet)
	Description() string
	Run(ctx context.Context, store *storage.NotifyingStore, logger *logger.Logger) error
}
