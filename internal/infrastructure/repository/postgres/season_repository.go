package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/petiteligue/ligue-api/internal/domain/season"
	qb "github.com/petiteligue/ligue-api/internal/platform/querybuilder"
)

const seasonColumns = "name, start_date, end_date, is_active, team_ids"

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) List(ctx context.Context) ([]season.Season, error) {
	query, args, err := qb.Select(seasonColumns).
		From("seasons").
		OrderBy("start_date").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select seasons query: %w", err)
	}

	var rows []seasonTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select seasons: %w", err)
	}

	out := make([]season.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *SeasonRepository) GetByName(ctx context.Context, name string) (season.Season, bool, error) {
	query, args, err := qb.Select(seasonColumns).
		From("seasons").
		Where(qb.Eq("name", name)).
		ToSQL()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build select season query: %w", err)
	}

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("select season: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *SeasonRepository) GetActive(ctx context.Context) (season.Season, bool, error) {
	query, args, err := qb.Select(seasonColumns).
		From("seasons").
		Where(qb.Eq("is_active", true)).
		Limit(1).
		ToSQL()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build select active season query: %w", err)
	}

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("select active season: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *SeasonRepository) Upsert(ctx context.Context, item season.Season) error {
	query, args, err := qb.InsertInto("seasons").
		Columns("name", "start_date", "end_date", "is_active", "team_ids").
		Values(item.Name, item.StartDate, item.EndDate, item.IsActive, pq.Int64Array(item.TeamIDs)).
		Suffix(`ON CONFLICT (name) DO UPDATE SET
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			is_active = EXCLUDED.is_active,
			team_ids = EXCLUDED.team_ids`).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert season query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert season: %w", err)
	}

	return nil
}

func (r *SeasonRepository) Delete(ctx context.Context, name string) error {
	query, args, err := qb.DeleteFrom("seasons").Where(qb.Eq("name", name)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete season query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete season: %w", err)
	}

	return nil
}
