package load

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	embedsql "github.com/gyeh/eircode/internal/sql"
)

// Finalize records the run's counts on the source file, marks it loaded,
// refreshes planner statistics and returns the loaded row count per routing
// key.
func Finalize(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, pf *PreflightResult, mode string, sr *StageResult) (map[string]int64, error) {
	if _, err := pool.Exec(ctx, embedsql.FinalizeSourceFile,
		pf.SourceFileID, mode, sr.RowsRead, sr.RowsLoaded, sr.RowsRejected, sr.RowsFiltered,
	); err != nil {
		return nil, fmt.Errorf("update source file: %w", err)
	}

	byRouting, err := RoutingKeyCounts(ctx, pool, pf)
	if err != nil {
		return nil, err
	}

	if _, err := pool.Exec(ctx, "ANALYZE eircode.addresses"); err != nil {
		return nil, fmt.Errorf("analyze addresses: %w", err)
	}
	log.Info().Int64("source_file_id", pf.SourceFileID).Msg("source file marked loaded")

	return byRouting, nil
}

// RoutingKeyCounts returns how many rows of this run landed in each routing key.
func RoutingKeyCounts(ctx context.Context, pool *pgxpool.Pool, pf *PreflightResult) (map[string]int64, error) {
	rows, err := pool.Query(ctx, embedsql.RoutingKeyCounts, pf.LoadBatchID)
	if err != nil {
		return nil, fmt.Errorf("routing key counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var rk string
		var n int64
		if err := rows.Scan(&rk, &n); err != nil {
			return nil, fmt.Errorf("scan routing key count: %w", err)
		}
		counts[rk] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("routing key counts: %w", err)
	}
	return counts, nil
}
