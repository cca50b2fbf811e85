package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/petiteligue/ligue-api/internal/domain/match"
	"github.com/petiteligue/ligue-api/internal/domain/rating"
	"github.com/petiteligue/ligue-api/internal/domain/season"
	"github.com/petiteligue/ligue-api/internal/domain/team"
	"github.com/petiteligue/ligue-api/internal/platform/cache"
	"github.com/petiteligue/ligue-api/internal/platform/logging"
)

// RatingService exposes replay-derived ratings. Match history is the only
// ground truth; every read replays the season (through the cache) and the
// stored snapshot exists purely for external consumers.
type RatingService struct {
	seasonRepo   season.Repository
	teamRepo     team.Repository
	matchRepo    match.Repository
	snapshotRepo rating.Repository
	cache        *cache.Store
	logger       *logging.Logger
}

func NewRatingService(
	seasonRepo season.Repository,
	teamRepo team.Repository,
	matchRepo match.Repository,
	snapshotRepo rating.Repository,
	store *cache.Store,
	logger *logging.Logger,
) *RatingService {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &RatingService{
		seasonRepo:   seasonRepo,
		teamRepo:     teamRepo,
		matchRepo:    matchRepo,
		snapshotRepo: snapshotRepo,
		cache:        store,
		logger:       logger,
	}
}

// RankingEntry is one row of the rating table.
type RankingEntry struct {
	Rank   int
	Team   team.Team
	Rating int
	Played int
}

type seasonReplay struct {
	roster  []team.Team
	ratings map[int64]*rating.TeamRating
	skipped []rating.SkippedMatch
}

// Rankings returns the season's teams ordered by current rating.
func (s *RatingService) Rankings(ctx context.Context, seasonName string) ([]RankingEntry, []rating.SkippedMatch, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RatingService.Rankings")
	defer span.End()

	replay, err := s.replay(ctx, seasonName)
	if err != nil {
		return nil, nil, err
	}

	entries := make([]RankingEntry, 0, len(replay.roster))
	for _, item := range replay.roster {
		tr := replay.ratings[item.ID]
		if tr == nil {
			continue
		}
		entries = append(entries, RankingEntry{
			Team:   item,
			Rating: tr.Rating,
			Played: len(tr.History),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Rating != entries[j].Rating {
			return entries[i].Rating > entries[j].Rating
		}
		return entries[i].Team.Name < entries[j].Team.Name
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries, replay.skipped, nil
}

// History returns the team's per-match rating trajectory for the season.
func (s *RatingService) History(ctx context.Context, seasonName string, teamID int64) ([]rating.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RatingService.History")
	defer span.End()

	tr, err := s.teamRating(ctx, seasonName, teamID)
	if err != nil {
		return nil, err
	}

	return tr.History, nil
}

// Form runs the form analyzer over the team's trailing rating events.
func (s *RatingService) Form(ctx context.Context, seasonName string, teamID int64, window int) (rating.FormReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RatingService.Form")
	defer span.End()

	tr, err := s.teamRating(ctx, seasonName, teamID)
	if err != nil {
		return rating.FormReport{}, err
	}

	return rating.FormModifier(tr.History, window), nil
}

// Predict estimates outcome probabilities for a hypothetical fixture between
// two teams at their current ratings.
func (s *RatingService) Predict(ctx context.Context, seasonName string, homeTeamID, awayTeamID int64) (rating.Prediction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RatingService.Predict")
	defer span.End()

	if homeTeamID == awayTeamID {
		return rating.Prediction{}, fmt.Errorf("%w: a team cannot play itself", ErrInvalidInput)
	}

	home, err := s.teamRating(ctx, seasonName, homeTeamID)
	if err != nil {
		return rating.Prediction{}, err
	}
	away, err := s.teamRating(ctx, seasonName, awayTeamID)
	if err != nil {
		return rating.Prediction{}, err
	}

	return rating.Predict(home.Rating, away.Rating), nil
}

// RecomputeStats summarizes one forced season recomputation.
type RecomputeStats struct {
	Teams          int
	SkippedMatches int
}

// Recompute drops the season's cached views, replays from scratch and
// refreshes the stored snapshot.
func (s *RatingService) Recompute(ctx context.Context, seasonName string) (RecomputeStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RatingService.Recompute")
	defer span.End()

	invalidateSeason(ctx, s.cache, seasonName)

	replay, err := s.replay(ctx, seasonName)
	if err != nil {
		return RecomputeStats{}, err
	}

	return RecomputeStats{
		Teams:          len(replay.ratings),
		SkippedMatches: len(replay.skipped),
	}, nil
}

func (s *RatingService) teamRating(ctx context.Context, seasonName string, teamID int64) (*rating.TeamRating, error) {
	if teamID <= 0 {
		return nil, fmt.Errorf("%w: team id must be positive", ErrInvalidInput)
	}

	replay, err := s.replay(ctx, seasonName)
	if err != nil {
		return nil, err
	}

	tr := replay.ratings[teamID]
	if tr == nil {
		return nil, fmt.Errorf("%w: team %d is not part of season %s", ErrNotFound, teamID, seasonName)
	}

	return tr, nil
}

func (s *RatingService) replay(ctx context.Context, seasonName string) (seasonReplay, error) {
	if seasonName == "" {
		return seasonReplay{}, fmt.Errorf("%w: season name is required", ErrInvalidInput)
	}

	key := "ratings:" + seasonName + ":replay"
	value, err := s.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.replayFresh(ctx, seasonName)
	})
	if err != nil {
		return seasonReplay{}, err
	}

	replay, ok := value.(seasonReplay)
	if !ok {
		return seasonReplay{}, fmt.Errorf("unexpected cache entry for %s", key)
	}

	return replay, nil
}

func (s *RatingService) replayFresh(ctx context.Context, seasonName string) (seasonReplay, error) {
	seasonItem, exists, err := s.seasonRepo.GetByName(ctx, seasonName)
	if err != nil {
		return seasonReplay{}, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return seasonReplay{}, fmt.Errorf("%w: season=%s", ErrNotFound, seasonName)
	}

	roster, err := s.seasonRoster(ctx, seasonItem)
	if err != nil {
		return seasonReplay{}, err
	}

	matches, err := s.matchRepo.ListBySeason(ctx, seasonName)
	if err != nil {
		return seasonReplay{}, fmt.Errorf("list matches: %w", err)
	}

	ratings, skipped := rating.Replay(roster, matches)
	for _, skip := range skipped {
		s.logger.WarnContext(ctx, "match skipped during rating replay",
			"season", seasonName, "match_id", skip.MatchID, "reason", skip.Reason)
	}

	s.persistSnapshot(ctx, seasonName, roster, ratings)

	return seasonReplay{roster: roster, ratings: ratings, skipped: skipped}, nil
}

// seasonRoster resolves the season's registered teams in registration order.
func (s *RatingService) seasonRoster(ctx context.Context, seasonItem season.Season) ([]team.Team, error) {
	all, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	byID := make(map[int64]team.Team, len(all))
	for _, item := range all {
		byID[item.ID] = item
	}

	roster := make([]team.Team, 0, len(seasonItem.TeamIDs))
	for _, teamID := range seasonItem.TeamIDs {
		item, ok := byID[teamID]
		if !ok {
			s.logger.WarnContext(ctx, "season references unknown team",
				"season", seasonItem.Name, "team_id", teamID)
			continue
		}
		roster = append(roster, item)
	}

	return roster, nil
}

// persistSnapshot refreshes the materialized snapshot. Failures are logged
// and ignored; the replay result is still authoritative.
func (s *RatingService) persistSnapshot(ctx context.Context, seasonName string, roster []team.Team, ratings map[int64]*rating.TeamRating) {
	if s.snapshotRepo == nil {
		return
	}

	snapshot := make([]rating.TeamRating, 0, len(roster))
	for _, item := range roster {
		if tr := ratings[item.ID]; tr != nil {
			snapshot = append(snapshot, *tr)
		}
	}

	if err := s.snapshotRepo.ReplaceBySeason(ctx, seasonName, snapshot); err != nil {
		s.logger.ErrorContext(ctx, "persist rating snapshot", "season", seasonName, "error", err)
	}
}
