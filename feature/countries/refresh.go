package countries

import (
	"context"
	"errors"
	"time"

	"country-currency/core/metrics"
	"country-currency/core/reconcile"
	"country-currency/feature/countries/models"
	"country-currency/feature/countries/sources"
	"country-currency/feature/summary"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// Stage is a step of the refresh pipeline.
type Stage string

const (
	StageIdle                 Stage = "idle"
	StageFetchingCountries    Stage = "fetching_countries"
	StageFetchingRates        Stage = "fetching_rates"
	StageReconciling          Stage = "reconciling"
	StagePersisting           Stage = "persisting"
	StageUpdatingMetadata     Stage = "updating_metadata"
	StageRegeneratingArtifact Stage = "regenerating_artifact"
	StageDone                 Stage = "done"
)

var stageGauge = map[Stage]float64{
	StageIdle:                 0,
	StageFetchingCountries:    1,
	StageFetchingRates:        2,
	StageReconciling:          3,
	StagePersisting:           4,
	StageUpdatingMetadata:     5,
	StageRegeneratingArtifact: 6,
	StageDone:                 7,
}

const refreshKey = "refresh"

// ArtifactGenerator regenerates and serves the summary image.
type ArtifactGenerator interface {
	Generate(ctx context.Context, s summary.Summary) error
	Image(ctx context.Context) ([]byte, error)
}

// Refresher runs the refresh pipeline: fetch both sources, merge, reconcile
// and persist with the metadata in one transaction, then regenerate the
// summary image.
type Refresher struct {
	db        *gorm.DB
	fetcher   sources.Fetcher
	artifacts ArtifactGenerator
	repo      *Repository
	metadata  *MetadataTracker
	merger    *Merger
	adapter   *Adapter
	logger    *zap.Logger
	group     singleflight.Group
	now       func() time.Time
}

// NewRefresher creates a new refresh orchestrator. artifacts may be nil, in
// which case the image step is skipped.
func NewRefresher(db *gorm.DB, fetcher sources.Fetcher, artifacts ArtifactGenerator, logger *zap.Logger) *Refresher {
	return &Refresher{
		db:        db,
		fetcher:   fetcher,
		artifacts: artifacts,
		repo:      NewRepository(db),
		metadata:  NewMetadataTracker(db),
		merger:    NewMerger(DefaultRand, logger),
		adapter:   NewAdapter(),
		logger:    logger,
		now:       time.Now,
	}
}

// Refresh runs one refresh. Concurrent callers join the refresh already in
// flight and receive its result. The pipeline is detached from ctx; a caller
// giving up only stops waiting.
func (r *Refresher) Refresh(ctx context.Context) (*models.RefreshResult, error) {
	detached := context.WithoutCancel(ctx)
	ch := r.group.DoChan(refreshKey, func() (any, error) {
		return r.run(detached)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Shared {
			metrics.RefreshJoined.Inc()
			r.logger.Info("Refresh result shared with concurrent callers")
		}
		if res.Err != nil {
			return nil, res.Err
		}
		result := *res.Val.(*models.RefreshResult)
		return &result, nil
	}
}

func (r *Refresher) run(ctx context.Context) (_ *models.RefreshResult, err error) {
	startedAt := r.now().UTC().Truncate(time.Millisecond)
	start := time.Now()
	l := r.logger.With(zap.Time("refresh_started_at", startedAt))

	defer func() {
		outcome := "success"
		var srcErr *sources.ExternalSourceError
		switch {
		case errors.As(err, &srcErr):
			outcome = "upstream_error"
		case err != nil:
			outcome = "internal_error"
		}
		metrics.RefreshDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
		r.enter(l, StageIdle)
	}()

	raw, rates, err := r.fetch(ctx, l)
	if err != nil {
		l.Error("Refresh aborted, upstream fetch failed", zap.Error(err))
		return nil, err
	}

	merged := r.merger.MergeAll(raw, rates)
	l.Info("Merged upstream data",
		zap.Int("raw", len(raw)),
		zap.Int("rates", len(rates)),
		zap.Int("merged", len(merged)))

	result := &models.RefreshResult{RefreshedAt: startedAt}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := r.repo.WithTx(tx)

		r.enter(l, StageReconciling)
		persisted, err := repo.LoadAll(ctx)
		if err != nil {
			return err
		}
		plan := reconcile.Reconcile(r.adapter, reconcile.Index(r.adapter, persisted), merged, startedAt)

		r.enter(l, StagePersisting)
		if err := repo.Persist(ctx, plan.Inserts, plan.Updates); err != nil {
			return err
		}

		r.enter(l, StageUpdatingMetadata)
		total, err := repo.Count(ctx)
		if err != nil {
			return err
		}
		if err := r.metadata.RecordRefresh(tx, startedAt, total); err != nil {
			return err
		}

		result.Inserted = plan.Summary.Inserted
		result.Updated = plan.Summary.Updated
		result.Total = total
		if plan.Summary.Duplicates > 0 {
			l.Warn("Duplicate country names in upstream data", zap.Int("duplicates", plan.Summary.Duplicates))
		}
		return nil
	})
	if err != nil {
		l.Error("Refresh rolled back", zap.Error(err))
		return nil, err
	}

	metrics.ReconciledRecords.WithLabelValues(string(reconcile.ActionInsert)).Add(float64(result.Inserted))
	metrics.ReconciledRecords.WithLabelValues(string(reconcile.ActionUpdate)).Add(float64(result.Updated))

	r.enter(l, StageRegeneratingArtifact)
	if genErr := r.regenerate(ctx, startedAt, result.Total); genErr != nil {
		metrics.ArtifactGenerationFailures.Inc()
		l.Warn("Summary image regeneration failed, refresh kept", zap.Error(genErr))
	} else {
		result.ArtifactGenerated = r.artifacts != nil
	}

	r.enter(l, StageDone)
	l.Info("Refresh completed",
		zap.Int("inserted", result.Inserted),
		zap.Int("updated", result.Updated),
		zap.Int64("total", result.Total),
		zap.Bool("artifact_generated", result.ArtifactGenerated),
		zap.Duration("duration", time.Since(start)))
	return result, nil
}

// fetch retrieves both sources concurrently and waits for both.
func (r *Refresher) fetch(ctx context.Context, l *zap.Logger) ([]models.RawCountry, map[string]decimal.Decimal, error) {
	var (
		raw   []models.RawCountry
		rates map[string]decimal.Decimal
	)
	g, gctx := errgroup.WithContext(ctx)

	r.enter(l, StageFetchingCountries)
	g.Go(func() error {
		var err error
		raw, err = r.fetcher.FetchCountries(gctx)
		return err
	})

	r.enter(l, StageFetchingRates)
	g.Go(func() error {
		var err error
		rates, err = r.fetcher.FetchExchangeRates(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return raw, rates, nil
}

// regenerate builds the summary from the committed state and hands it to
// the artifact generator. Errors are *summary.GenerationError.
func (r *Refresher) regenerate(ctx context.Context, refreshedAt time.Time, total int64) error {
	if r.artifacts == nil {
		return nil
	}

	top, err := r.repo.TopByGDP(ctx, summary.TopCount)
	if err != nil {
		return &summary.GenerationError{Stage: "load", Err: err}
	}

	sum := summary.Summary{
		TotalCount:      total,
		Top:             make([]summary.Ranked, 0, len(top)),
		LastRefreshedAt: refreshedAt,
	}
	for _, c := range top {
		sum.Top = append(sum.Top, summary.Ranked{Name: c.Name, GDP: c.EstimatedGDP.Decimal})
	}

	if err := r.artifacts.Generate(ctx, sum); err != nil {
		var genErr *summary.GenerationError
		if errors.As(err, &genErr) {
			return err
		}
		return &summary.GenerationError{Stage: "generate", Err: err}
	}
	return nil
}

func (r *Refresher) enter(l *zap.Logger, stage Stage) {
	metrics.RefreshStage.Set(stageGauge[stage])
	l.Debug("Refresh stage", zap.String("stage", string(stage)))
}
