package load

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/eircode/internal/normalize"
	"github.com/gyeh/eircode/internal/parquetread"
	embedsql "github.com/gyeh/eircode/internal/sql"
)

// PreflightResult holds all context resolved during the preflight phase.
type PreflightResult struct {
	// FilePath is the original path passed to Preflight, stored as-is.
	FilePath string
	// FileSHA256 is the hex-encoded SHA-256 digest of the file. It identifies
	// the source file across runs.
	FileSHA256 string
	FileSize   int64
	// SourceFileID is the eircode.source_files primary key, inserted or
	// looked up by hash.
	SourceFileID int64
	// LoadBatchID tags every address row written by this run so rows from
	// earlier loads of the same file can be removed afterwards.
	LoadBatchID uuid.UUID
	NumRows     int64
	// AlreadyLoaded is true when the hash is already recorded with status
	// "loaded" and force mode is off.
	AlreadyLoaded bool
}

// Preflight hashes the file, validates its schema and registers it.
func Preflight(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, filePath, mode string, force bool) (*PreflightResult, error) {
	start := time.Now()

	sha, err := normalize.FileHash(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight hash: %w", err)
	}

	stat, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight stat: %w", err)
	}

	reader, err := parquetread.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight open: %w", err)
	}
	numRows := reader.NumRows()
	schemaErr := parquetread.ValidateSchema(reader.Schema())
	reader.Close()
	if schemaErr != nil {
		return nil, fmt.Errorf("preflight validate: %w", schemaErr)
	}

	log.Info().
		Str("file", filepath.Base(filePath)).
		Str("sha256", sha).
		Int64("rows", numRows).
		Dur("duration", time.Since(start)).
		Msg("preflight complete")

	sourceFileID, alreadyLoaded, err := registerSourceFile(ctx, pool, filepath.Base(filePath), sha, stat.Size(), mode, force)
	if err != nil {
		return nil, fmt.Errorf("preflight register file: %w", err)
	}

	return &PreflightResult{
		FilePath:      filePath,
		FileSHA256:    sha,
		FileSize:      stat.Size(),
		SourceFileID:  sourceFileID,
		LoadBatchID:   uuid.New(),
		NumRows:       numRows,
		AlreadyLoaded: alreadyLoaded,
	}, nil
}

func registerSourceFile(ctx context.Context, pool *pgxpool.Pool, name, sha string, size int64, mode string, force bool) (int64, bool, error) {
	var id int64
	err := pool.QueryRow(ctx, embedsql.RegisterSourceFile, name, sha, size, mode).Scan(&id)
	if err == nil {
		return id, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, false, fmt.Errorf("register source file: %w", err)
	}

	// ON CONFLICT DO NOTHING returned no row: the hash is already known.
	var status string
	if err := pool.QueryRow(ctx, embedsql.LookupSourceFile, sha).Scan(&id, &status); err != nil {
		return 0, false, fmt.Errorf("lookup existing source file: %w", err)
	}
	if !force && status == "loaded" {
		return id, true, nil
	}

	if err := UpdateStatus(ctx, pool, id, "pending"); err != nil {
		return 0, false, fmt.Errorf("reset source status: %w", err)
	}
	return id, false, nil
}

// UpdateStatus updates the source file status.
func UpdateStatus(ctx context.Context, pool *pgxpool.Pool, sourceFileID int64, status string) error {
	_, err := pool.Exec(ctx, embedsql.UpdateSourceStatus, sourceFileID, status)
	return err
}
