package load

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	embedsql "github.com/gyeh/eircode/internal/sql"
)

// Cleanup deletes rows left by earlier loads of the same source file.
func Cleanup(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, pf *PreflightResult) error {
	start := time.Now()

	tag, err := pool.Exec(ctx, embedsql.DeleteSupersededBatches, pf.SourceFileID, pf.LoadBatchID)
	if err != nil {
		return err
	}

	log.Info().
		Int64("rows_deleted", tag.RowsAffected()).
		Dur("duration", time.Since(start)).
		Msg("superseded batch cleanup complete")

	return nil
}

// DeleteBatch deletes the rows of a single load batch (cleanup of failed runs).
func DeleteBatch(ctx context.Context, pool *pgxpool.Pool, batchID uuid.UUID) error {
	_, err := pool.Exec(ctx,
		"DELETE FROM eircode.addresses WHERE load_batch_id = $1",
		batchID,
	)
	return err
}
