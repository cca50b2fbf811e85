package postgres

import "github.com/petiteligue/ligue-api/internal/domain/team"

type teamTableModel struct {
	ID        int64  `db:"id"`
	Name      string `db:"name"`
	ShortName string `db:"short_name"`
	City      string `db:"city"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:        m.ID,
		Name:      m.Name,
		ShortName: m.ShortName,
		City:      m.City,
	}
}
