package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/epeers/gardenfeed/internal/cache"
	"github.com/epeers/gardenfeed/internal/metrics"
	"github.com/epeers/gardenfeed/internal/models"
	"github.com/epeers/gardenfeed/internal/nutrients"
	"github.com/epeers/gardenfeed/internal/repository"
	"github.com/epeers/gardenfeed/internal/util"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidInput       = errors.New("invalid feed input")
	ErrFeedLogUnavailable = errors.New("feed log is not configured")
)

const (
	// FeedLogWriteTimeout bounds each background feed log write.
	FeedLogWriteTimeout = 5 * time.Second
	// MaxBatchConcurrency caps the number of batch items computed at once.
	MaxBatchConcurrency = 8

	DefaultFeedLogLimit = 20
	MaxFeedLogLimit     = 100
)

// FeedLogStore is the persistence the service needs. *repository.FeedLogRepository satisfies it.
type FeedLogStore interface {
	Create(ctx context.Context, l *models.FeedLog) error
	GetLatestByZone(ctx context.Context, zoneID int64) (*models.FeedLog, error)
	ListByZone(ctx context.Context, zoneID int64, limit int) ([]models.FeedLogListItem, error)
}

// DosingService wraps the nutrients engine with feed history and logging
type DosingService struct {
	store        FeedLogStore // nil when no database is configured
	memCache     *cache.MemoryCache
	metrics      *metrics.DosingMetrics
	writeTimeout time.Duration
	now          func() time.Time

	pending sync.WaitGroup
}

// NewDosingService creates a new DosingService. store and m may be nil.
func NewDosingService(store FeedLogStore, memCache *cache.MemoryCache, m *metrics.DosingMetrics) *DosingService {
	return &DosingService{
		store:        store,
		memCache:     memCache,
		metrics:      m,
		writeTimeout: FeedLogWriteTimeout,
		now:          time.Now,
	}
}

// FeedLogEnabled reports whether feeds can be recorded
func (s *DosingService) FeedLogEnabled() bool {
	return s.store != nil
}

// Calculate runs one feed calculation. When the request names a zone but no
// last feed reading, the zone's history supplies it. A requested record is
// written in the background after the response is built.
func (s *DosingService) Calculate(ctx context.Context, req *models.CalculateRequest, growerID *int64) (*models.CalculateResponse, error) {
	defer TrackTime("Calculate", time.Now())

	if err := req.Input.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	warnCtx, wc := NewWarningContext(ctx)
	// The feed log and host warnings use the same cleaned input the engine sees.
	cleaned := *req
	cleaned.Input = req.Input.Normalized()
	in := cleaned.Input
	resp := &models.CalculateResponse{ZoneID: req.ZoneID}

	if in.LastFeedPPM != nil {
		resp.LastFeedSource = models.LastFeedFromRequest
	} else if req.ZoneID != 0 {
		if ppm, source, ok := s.lookupLastFeed(warnCtx, req.ZoneID); ok {
			in.LastFeedPPM = &ppm
			resp.LastFeedSource = source
		}
	}

	resp.Output = nutrients.Compute(in)
	if s.metrics != nil {
		s.metrics.RecordCalculation(in, &resp.Output)
	}

	if in.Volume <= 0 {
		AddWarning(warnCtx, models.Warning{
			Code:    models.WarnNonPositiveVolume,
			Message: fmt.Sprintf("volume %.2f is not positive, no nutrients were dosed", in.Volume),
		})
	}
	if resp.TargetPPM > 0 && in.SourcePPM > float64(resp.TargetPPM) {
		AddWarning(warnCtx, models.Warning{
			Code: models.WarnSourceAboveTarget,
			Message: fmt.Sprintf("source water at %.0f PPM is above the %d PPM target; dilute with lower PPM water instead of dosing",
				in.SourcePPM, resp.TargetPPM),
		})
	}

	if req.Record {
		resp.FeedLogQueued = s.queueFeedLog(warnCtx, &cleaned, &resp.Output, growerID)
	}

	resp.HostWarnings = wc.GetWarnings()
	return resp, nil
}

// CalculateBatch computes several requests concurrently. Every request is
// validated before any is computed, so a bad item records nothing.
func (s *DosingService) CalculateBatch(ctx context.Context, reqs []models.CalculateRequest, growerID *int64) ([]models.CalculateResponse, error) {
	defer TrackTime("CalculateBatch", time.Now())

	for i := range reqs {
		if err := reqs[i].Input.Validate(); err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrInvalidInput, i, err)
		}
	}

	results := make([]models.CalculateResponse, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(MaxBatchConcurrency)
	for i := range reqs {
		g.Go(func() error {
			resp, err := s.Calculate(gctx, &reqs[i], growerID)
			if err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
			results[i] = *resp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Transition runs the transition advisor on its own
func (s *DosingService) Transition(req *models.TransitionRequest) (nutrients.TransitionAdvice, error) {
	if !req.Stage.Valid() {
		return nutrients.TransitionAdvice{}, fmt.Errorf("%w: unknown grow stage %q", ErrInvalidInput, req.Stage)
	}
	scale := req.Scale
	if scale == 0 {
		scale = nutrients.Scale500
	}
	if !scale.Valid() {
		return nutrients.TransitionAdvice{}, fmt.Errorf("%w: unknown reporting scale %d", ErrInvalidInput, req.Scale)
	}
	return nutrients.AdviseTransition(nutrients.TransitionParams{
		Stage:             req.Stage,
		Scale:             scale,
		LastFeedPPM:       req.LastFeedPPM,
		FirstWaterOfStage: req.FirstWaterOfStage,
	}), nil
}

// Stages returns the reference stage profiles in grow order
func (s *DosingService) Stages() []nutrients.StageProfile {
	return nutrients.Profiles()
}

// ListFeedLogs returns a zone's most recent feeds, newest first
func (s *DosingService) ListFeedLogs(ctx context.Context, zoneID int64, limit int) ([]models.FeedLogListItem, error) {
	defer TrackTime("ListFeedLogs", time.Now())

	if s.store == nil {
		return nil, ErrFeedLogUnavailable
	}
	if limit <= 0 {
		limit = DefaultFeedLogLimit
	}
	limit = min(limit, MaxFeedLogLimit)
	return s.store.ListByZone(ctx, zoneID, limit)
}

// Wait blocks until every queued feed log write has finished
func (s *DosingService) Wait() {
	s.pending.Wait()
}

// lookupLastFeed finds a zone's last feed reading, cache first.
func (s *DosingService) lookupLastFeed(ctx context.Context, zoneID int64) (float64, models.LastFeedSource, bool) {
	if s.memCache != nil {
		if feed, ok := s.memCache.GetLastFeed(zoneID); ok {
			return feed.FinalPPM, models.LastFeedFromCache, true
		}
	}
	if s.store == nil {
		return 0, "", false
	}

	latest, err := s.store.GetLatestByZone(ctx, zoneID)
	if errors.Is(err, repository.ErrFeedLogNotFound) {
		return 0, "", false
	}
	if err != nil {
		log.WithError(err).WithField("zone_id", zoneID).Warn("Failed to look up last feed")
		AddWarning(ctx, models.Warning{
			Code:    models.WarnLastFeedLookupFailed,
			Message: fmt.Sprintf("zone %d: feed history unavailable, no transition advice", zoneID),
		})
		return 0, "", false
	}

	ppm := latest.FinalPPMFloat()
	if s.memCache != nil {
		s.memCache.SetLastFeed(zoneID, cache.LastFeed{FinalPPM: ppm, FedOn: latest.FedOn.Time})
	}
	return ppm, models.LastFeedFromHistory, true
}

// queueFeedLog starts the background write of a calculation. It reports
// whether a write was queued.
func (s *DosingService) queueFeedLog(ctx context.Context, req *models.CalculateRequest, out *nutrients.Output, growerID *int64) bool {
	if req.ZoneID == 0 {
		AddWarning(ctx, models.Warning{
			Code:    models.WarnFeedLogWithoutZone,
			Message: "record requested without zone_id, feed was not logged",
		})
		return false
	}
	if s.store == nil {
		AddWarning(ctx, models.Warning{
			Code:    models.WarnFeedLogDisabled,
			Message: "record requested but no feed log is configured",
		})
		return false
	}

	fedOn := util.FeedDate(s.now(), req.TimeZone)
	if req.FedOn != nil && !req.FedOn.IsZero() {
		fedOn = req.FedOn.Time
	}
	entry := models.NewFeedLog(req, out, growerID, fedOn)

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		writeCtx, cancel := context.WithTimeout(context.Background(), s.writeTimeout)
		defer cancel()

		err := s.store.Create(writeCtx, entry)
		if s.metrics != nil {
			s.metrics.RecordFeedLogWrite(err)
		}
		if err != nil {
			log.WithError(err).WithField("zone_id", entry.ZoneID).Error("Failed to write feed log")
			return
		}
		if s.memCache != nil {
			s.memCache.SetLastFeed(entry.ZoneID, cache.LastFeed{
				FinalPPM: entry.FinalPPMFloat(),
				FedOn:    entry.FedOn.Time,
			})
		}
		log.WithFields(log.Fields{"zone_id": entry.ZoneID, "feed_log_id": entry.ID}).Debug("Feed log written")
	}()
	return true
}
