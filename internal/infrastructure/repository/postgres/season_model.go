package postgres

import (
	"time"

	"github.com/lib/pq"

	"github.com/petiteligue/ligue-api/internal/domain/season"
)

type seasonTableModel struct {
	Name      string        `db:"name"`
	StartDate time.Time     `db:"start_date"`
	EndDate   *time.Time    `db:"end_date"`
	IsActive  bool          `db:"is_active"`
	TeamIDs   pq.Int64Array `db:"team_ids"`
}

func (m seasonTableModel) toDomain() season.Season {
	return season.Season{
		Name:      m.Name,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		IsActive:  m.IsActive,
		TeamIDs:   []int64(m.TeamIDs),
	}
}
