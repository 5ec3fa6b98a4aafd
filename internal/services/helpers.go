package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"job-board-api/internal/storage"

	"github.com/jackc/pgx/v5"
)

// TxBeginner is the slice of pgxpool.Pool the services need for transactions.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// mapRepoError maps storage errors to service errors.
func mapRepoError(err error, operation string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	}
	if errors.Is(err, storage.ErrConflict) {
		return fmt.Errorf("%w: %s (%v)", ErrConflict, operation, err)
	}
	// Log other unexpected errors
	log.Printf("Unexpected repository error during %s: %v", operation, err)
	return fmt.Errorf("internal error during %s: %w", operation, err)
}
