package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/petiteligue/ligue-api/internal/domain/match"
	qb "github.com/petiteligue/ligue-api/internal/platform/querybuilder"
)

const matchColumns = "id, season, match_day, date, home_team_id, away_team_id, final_home, final_away, halftime_score, goals"

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) ListBySeason(ctx context.Context, season string) ([]match.Match, error) {
	query, args, err := qb.Select(matchColumns).
		From("matches").
		Where(qb.Eq("season", season)).
		OrderBy("match_day", "date", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		item, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}

	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID int64) (match.Match, bool, error) {
	query, args, err := qb.Select(matchColumns).
		From("matches").
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build select match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("select match: %w", err)
	}

	item, err := row.toDomain()
	if err != nil {
		return match.Match{}, false, err
	}

	return item, true, nil
}

func (r *MatchRepository) Upsert(ctx context.Context, item match.Match) (match.Match, error) {
	goals, err := encodeGoals(item.Goals)
	if err != nil {
		return match.Match{}, err
	}

	var finalHome, finalAway sql.NullInt64
	if item.FinalScore != nil {
		finalHome = sql.NullInt64{Int64: int64(item.FinalScore.Home), Valid: true}
		finalAway = sql.NullInt64{Int64: int64(item.FinalScore.Away), Valid: true}
	}
	var halftime sql.NullString
	if item.HalftimeScore != "" {
		halftime = sql.NullString{String: item.HalftimeScore, Valid: true}
	}

	if item.ID == 0 {
		query, args, err := qb.InsertInto("matches").
			Columns("season", "match_day", "date", "home_team_id", "away_team_id", "final_home", "final_away", "halftime_score", "goals").
			Values(item.Season, item.MatchDay, item.Date, item.HomeTeamID, item.AwayTeamID, finalHome, finalAway, halftime, goals).
			Suffix("RETURNING id").
			ToSQL()
		if err != nil {
			return match.Match{}, fmt.Errorf("build insert match query: %w", err)
		}

		if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&item.ID); err != nil {
			return match.Match{}, fmt.Errorf("insert match: %w", err)
		}

		return item, nil
	}

	query, args, err := qb.InsertInto("matches").
		Columns("id", "season", "match_day", "date", "home_team_id", "away_team_id", "final_home", "final_away", "halftime_score", "goals").
		Values(item.ID, item.Season, item.MatchDay, item.Date, item.HomeTeamID, item.AwayTeamID, finalHome, finalAway, halftime, goals).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			season = EXCLUDED.season,
			match_day = EXCLUDED.match_day,
			date = EXCLUDED.date,
			home_team_id = EXCLUDED.home_team_id,
			away_team_id = EXCLUDED.away_team_id,
			final_home = EXCLUDED.final_home,
			final_away = EXCLUDED.final_away,
			halftime_score = EXCLUDED.halftime_score,
			goals = EXCLUDED.goals`).
		ToSQL()
	if err != nil {
		return match.Match{}, fmt.Errorf("build upsert match query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return match.Match{}, fmt.Errorf("upsert match: %w", err)
	}

	return item, nil
}

func (r *MatchRepository) Delete(ctx context.Context, matchID int64) error {
	query, args, err := qb.DeleteFrom("matches").Where(qb.Eq("id", matchID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete match query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}

	return nil
}

func (r *MatchRepository) DeleteBySeason(ctx context.Context, season string) error {
	query, args, err := qb.DeleteFrom("matches").Where(qb.Eq("season", season)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete season matches query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete season matches: %w", err)
	}

	return nil
}
