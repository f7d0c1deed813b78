package load

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/eircode/internal/config"
	"github.com/gyeh/eircode/internal/model"
)

// Pipeline phases, reported in PipelineError.Phase.
const (
	PhasePreflight = "preflight"
	PhaseStage     = "stage"
	PhaseFinalize  = "finalize"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Run executes the load pipeline: preflight → stage → finalize → cleanup.
func Run(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, cfg *config.Config) (*model.LoadSummary, error) {
	totalStart := time.Now()

	opts, err := cfg.Options()
	if err != nil {
		return nil, &PipelineError{Phase: PhasePreflight, Err: err}
	}

	log.Info().Str("file", cfg.FilePath).Str("mode", ModeName(opts)).Msg("starting preflight")
	pf, err := Preflight(ctx, pool, log, cfg.FilePath, ModeName(opts), cfg.Force)
	if err != nil {
		return nil, &PipelineError{Phase: PhasePreflight, Err: err}
	}

	if pf.AlreadyLoaded {
		log.Info().
			Int64("source_file_id", pf.SourceFileID).
			Str("sha256", pf.FileSHA256).
			Msg("file already loaded, skipping (use --force to reload)")
		return &model.LoadSummary{
			FilePath:      pf.FilePath,
			FileSHA256:    pf.FileSHA256,
			SourceFileID:  pf.SourceFileID,
			LoadBatchID:   pf.LoadBatchID.String(),
			AlreadyLoaded: true,
			DurationTotal: time.Since(totalStart),
		}, nil
	}

	log.Info().Msg("starting staging")
	if err := UpdateStatus(ctx, pool, pf.SourceFileID, "staging"); err != nil {
		return nil, &PipelineError{Phase: PhaseStage, Err: err}
	}

	stageResult, err := Stage(ctx, pool, log, pf, opts, cfg.AllowsRoutingKey)
	if err != nil {
		fail(ctx, pool, log, pf)
		return nil, &PipelineError{Phase: PhaseStage, Err: err}
	}

	log.Info().Msg("finalizing")
	byRouting, err := Finalize(ctx, pool, log, pf, ModeName(opts), stageResult)
	if err != nil {
		fail(ctx, pool, log, pf)
		return nil, &PipelineError{Phase: PhaseFinalize, Err: err}
	}

	if err := Cleanup(ctx, pool, log, pf); err != nil {
		log.Warn().Err(err).Msg("superseded batch cleanup failed (non-fatal)")
	}

	summary := &model.LoadSummary{
		FilePath:      pf.FilePath,
		FileSHA256:    pf.FileSHA256,
		SourceFileID:  pf.SourceFileID,
		LoadBatchID:   pf.LoadBatchID.String(),
		RowsRead:      stageResult.RowsRead,
		RowsLoaded:    stageResult.RowsLoaded,
		RowsRejected:  stageResult.RowsRejected,
		RowsFiltered:  stageResult.RowsFiltered,
		RowsByRouting: byRouting,
		DurationStage: stageResult.Duration,
		DurationTotal: time.Since(totalStart),
	}

	log.Info().
		Int64("rows_read", summary.RowsRead).
		Int64("rows_loaded", summary.RowsLoaded).
		Int64("rows_rejected", summary.RowsRejected).
		Int64("rows_filtered", summary.RowsFiltered).
		Int("routing_keys", len(byRouting)).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("load pipeline complete")

	return summary, nil
}

// fail marks the source file failed and removes whatever this run wrote.
func fail(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, pf *PreflightResult) {
	_ = UpdateStatus(ctx, pool, pf.SourceFileID, "failed")
	if err := DeleteBatch(ctx, pool, pf.LoadBatchID); err != nil {
		log.Warn().Err(err).Str("batch", pf.LoadBatchID.String()).Msg("failed batch cleanup failed")
	}
}
