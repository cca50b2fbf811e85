package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/petiteligue/ligue-api/internal/domain/rating"
	qb "github.com/petiteligue/ligue-api/internal/platform/querybuilder"
)

// RatingRepository stores replay snapshots per season. The snapshot is a
// materialized view for external consumers; services never read it back as
// ground truth.
type RatingRepository struct {
	db *sqlx.DB
}

func NewRatingRepository(db *sqlx.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

func (r *RatingRepository) ListBySeason(ctx context.Context, season string) ([]rating.TeamRating, error) {
	query, args, err := qb.Select("season", "team_id", "rating", "history").
		From("team_ratings").
		Where(qb.Eq("season", season)).
		OrderBy("rating DESC", "team_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select ratings query: %w", err)
	}

	var rows []ratingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select ratings: %w", err)
	}

	out := make([]rating.TeamRating, 0, len(rows))
	for _, row := range rows {
		item, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}

	return out, nil
}

func (r *RatingRepository) ReplaceBySeason(ctx context.Context, season string, ratings []rating.TeamRating) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace ratings: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	deleteQuery, deleteArgs, err := qb.DeleteFrom("team_ratings").Where(qb.Eq("season", season)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete ratings query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("delete ratings: %w", err)
	}

	if len(ratings) > 0 {
		builder := qb.InsertInto("team_ratings").Columns("season", "team_id", "rating", "history")
		for _, item := range ratings {
			history, err := encodeHistory(item.History)
			if err != nil {
				return err
			}
			builder.Values(season, item.TeamID, item.Rating, history)
		}

		insertQuery, insertArgs, err := builder.ToSQL()
		if err != nil {
			return fmt.Errorf("build insert ratings query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("insert ratings: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace ratings: %w", err)
	}

	return nil
}
