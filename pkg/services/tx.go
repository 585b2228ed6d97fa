package services

import (
	"context"
	stdsql "database/sql"
	"fmt"

	"github.com/monadical-sas/reflector/ent"
)

// WithTx runs fn inside a serializable transaction, committing on success and
// rolling back on error or panic. Callers must use it around any multi-field
// mutation with a co-located event append so subscribers never observe one
// without the other. Keep network calls out of fn; transactions are held only
// around local DB work.
func WithTx(ctx context.Context, client *ent.Client, fn func(tx *ent.Tx) error) error {
	tx, err := client.BeginTx(ctx, &stdsql.TxOptions{Isolation: stdsql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("%w: rolling back transaction: %v", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
