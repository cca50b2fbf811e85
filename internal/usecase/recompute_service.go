package usecase

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"

	"github.com/petiteligue/ligue-api/internal/domain/season"
	"github.com/petiteligue/ligue-api/internal/platform/logging"
)

const (
	recomputeStatusSuccess = "success"
	recomputeStatusFailed  = "failed"

	defaultRecomputeWorkers = 4
	maxRecomputeWorkers     = 16
)

type RecomputeInput struct {
	// Season narrows the run to one season; empty means every season.
	Season     string
	MaxWorkers int
}

type RecomputeResult struct {
	SeasonCount  int                     `json:"season_count"`
	SuccessCount int                     `json:"success_count"`
	FailedCount  int                     `json:"failed_count"`
	WorkerCount  int                     `json:"worker_count"`
	Seasons      []RecomputeSeasonResult `json:"seasons"`
}

type RecomputeSeasonResult struct {
	Season         string `json:"season"`
	Status         string `json:"status"`
	Teams          int    `json:"teams"`
	SkippedMatches int    `json:"skipped_matches"`
	DurationMs     int64  `json:"duration_ms"`
	Message        string `json:"message,omitempty"`
}

// RecomputeService replays every season's ratings from scratch across a
// worker pool. It backs the internal maintenance endpoint.
type RecomputeService struct {
	seasonRepo season.Repository
	ratings    *RatingService
	logger     *logging.Logger
}

func NewRecomputeService(seasonRepo season.Repository, ratings *RatingService, logger *logging.Logger) *RecomputeService {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &RecomputeService{
		seasonRepo: seasonRepo,
		ratings:    ratings,
		logger:     logger,
	}
}

func (s *RecomputeService) Run(ctx context.Context, input RecomputeInput) (RecomputeResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecomputeService.Run")
	defer span.End()

	targets, err := s.resolveTargets(ctx, input.Season)
	if err != nil {
		return RecomputeResult{}, err
	}

	workerCount := normalizeRecomputeWorkerCount(input.MaxWorkers, len(targets))
	result := RecomputeResult{
		SeasonCount: len(targets),
		WorkerCount: workerCount,
		Seasons:     make([]RecomputeSeasonResult, 0, len(targets)),
	}
	if len(targets) == 0 {
		return result, nil
	}

	results := make(chan RecomputeSeasonResult, len(targets))

	var successCount atomic.Int32
	var failedCount atomic.Int32

	p, err := ants.NewPool(workerCount)
	if err != nil {
		return RecomputeResult{}, errors.Wrap(err, "create worker pool")
	}
	defer p.Release()

	var workers sync.WaitGroup
	for _, target := range targets {
		target := target
		workers.Add(1)
		if err := p.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := RecomputeSeasonResult{Season: target}

			stats, err := s.ratings.Recompute(ctx, target)
			row.DurationMs = time.Since(start).Milliseconds()
			if err != nil {
				row.Status = recomputeStatusFailed
				row.Message = err.Error()
				failedCount.Add(1)
				s.logger.ErrorContext(ctx, "season recompute failed", "season", target, "error", err)
			} else {
				row.Status = recomputeStatusSuccess
				row.Teams = stats.Teams
				row.SkippedMatches = stats.SkippedMatches
				successCount.Add(1)
			}

			results <- row
		}); err != nil {
			workers.Done()
			failedCount.Add(1)
			results <- RecomputeSeasonResult{
				Season:  target,
				Status:  recomputeStatusFailed,
				Message: errors.Wrap(err, "submit recompute task").Error(),
			}
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Seasons = append(result.Seasons, row)
	}
	sort.Slice(result.Seasons, func(i, j int) bool { return result.Seasons[i].Season < result.Seasons[j].Season })

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())

	return result, nil
}

func (s *RecomputeService) resolveTargets(ctx context.Context, seasonName string) ([]string, error) {
	if seasonName != "" {
		if _, exists, err := s.seasonRepo.GetByName(ctx, seasonName); err != nil {
			return nil, errors.Wrap(err, "get season")
		} else if !exists {
			return nil, errors.Wrapf(ErrNotFound, "season=%s", seasonName)
		}
		return []string{seasonName}, nil
	}

	seasons, err := s.seasonRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list seasons")
	}

	targets := make([]string, 0, len(seasons))
	for _, item := range seasons {
		targets = append(targets, item.Name)
	}

	return targets, nil
}

func normalizeRecomputeWorkerCount(requested, taskCount int) int {
	count := requested
	if count <= 0 {
		count = defaultRecomputeWorkers
	}
	if count > maxRecomputeWorkers {
		count = maxRecomputeWorkers
	}
	if taskCount > 0 && count > taskCount {
		count = taskCount
	}
	if count < 1 {
		count = 1
	}
	return count
}
