package load

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/eircode"
	"github.com/gyeh/eircode/internal/db"
	"github.com/gyeh/eircode/internal/model"
	"github.com/gyeh/eircode/internal/normalize"
	"github.com/gyeh/eircode/internal/parquetread"
)

const readBatchSize = 1024

// StageResult holds metrics from the staging phase.
type StageResult struct {
	RowsRead     int64
	RowsLoaded   int64
	RowsRejected int64
	RowsFiltered int64
	Duration     time.Duration
}

// Stage streams rows from the Parquet file, validates and normalises their
// eircodes under opts, and COPY-loads the accepted rows into
// eircode.addresses. Rows whose routing key fails allow are counted as
// filtered and skipped.
func Stage(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, pf *PreflightResult, opts eircode.Options, allow func(routingKey string) bool) (*StageResult, error) {
	start := time.Now()

	reader, err := parquetread.Open(pf.FilePath)
	if err != nil {
		return nil, fmt.Errorf("stage open: %w", err)
	}
	defer reader.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ch := make(chan *model.AddressRecord, readBatchSize)
	errCh := make(chan error, 1)

	var rowsRead, rowsRejected, rowsFiltered int64

	// Producer: read Parquet → normalise → push to channel
	go func() {
		defer close(ch)
		buf := make([]model.AddressRow, readBatchSize)
		var rowNum int64

		for {
			n, readErr := reader.Read(buf)
			for i := 0; i < n; i++ {
				rowNum++
				rowsRead++

				rec, normErr := normalize.ToAddressRecord(&buf[i], pf.LoadBatchID, pf.SourceFileID, rowNum, opts)
				if normErr != nil {
					if !errors.Is(normErr, eircode.ErrInvalidEircode) && !errors.Is(normErr, normalize.ErrMissingEircode) {
						errCh <- fmt.Errorf("normalise row %d: %w", rowNum, normErr)
						return
					}
					rowsRejected++
					log.Debug().Err(normErr).Int64("row", rowNum).Msg("row rejected")
					continue
				}
				if !allow(rec.RoutingKey) {
					rowsFiltered++
					continue
				}

				select {
				case ch <- rec:
				case <-ctx.Done():
					errCh <- ctx.Err()
					return
				}
			}
			if readErr == io.EOF {
				break
			}
			if readErr != nil {
				errCh <- fmt.Errorf("read parquet at row %d: %w", rowNum, readErr)
				return
			}
		}
		errCh <- nil
	}()

	source := db.NewChannelSource(ch)
	rowsLoaded, copyErr := pool.CopyFrom(ctx,
		pgx.Identifier{"eircode", "addresses"},
		model.AddressColumns(),
		source,
	)
	if copyErr != nil {
		// Unblock the producer if COPY stopped consuming.
		cancel()
		for range ch {
		}
	}

	prodErr := <-errCh
	if copyErr != nil {
		return nil, fmt.Errorf("stage copy: %w", copyErr)
	}
	if prodErr != nil {
		return nil, fmt.Errorf("stage producer: %w", prodErr)
	}

	dur := time.Since(start)
	log.Info().
		Int64("rows_read", rowsRead).
		Int64("rows_loaded", rowsLoaded).
		Int64("rows_rejected", rowsRejected).
		Int64("rows_filtered", rowsFiltered).
		Str("duration", dur.String()).
		Float64("rows_per_sec", float64(rowsLoaded)/dur.Seconds()).
		Msg("staging complete")

	return &StageResult{
		RowsRead:     rowsRead,
		RowsLoaded:   rowsLoaded,
		RowsRejected: rowsRejected,
		RowsFiltered: rowsFiltered,
		Duration:     dur,
	}, nil
}
