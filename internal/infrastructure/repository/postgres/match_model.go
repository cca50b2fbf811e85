package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/bytedance/sonic"

	"github.com/petiteligue/ligue-api/internal/domain/match"
)

type matchTableModel struct {
	ID            int64          `db:"id"`
	Season        string         `db:"season"`
	MatchDay      int            `db:"match_day"`
	Date          time.Time      `db:"date"`
	HomeTeamID    int64          `db:"home_team_id"`
	AwayTeamID    int64          `db:"away_team_id"`
	FinalHome     sql.NullInt64  `db:"final_home"`
	FinalAway     sql.NullInt64  `db:"final_away"`
	HalftimeScore sql.NullString `db:"halftime_score"`
	Goals         []byte         `db:"goals"`
}

// goalRecord is the JSONB shape of one goal inside the goals column.
type goalRecord struct {
	TeamID    int64  `json:"teamId"`
	Scorer    string `json:"scorer,omitempty"`
	Minute    int    `json:"minute"`
	ExtraTime int    `json:"extraTime,omitempty"`
}

func (m matchTableModel) toDomain() (match.Match, error) {
	item := match.Match{
		ID:         m.ID,
		Season:     m.Season,
		MatchDay:   m.MatchDay,
		Date:       m.Date,
		HomeTeamID: m.HomeTeamID,
		AwayTeamID: m.AwayTeamID,
	}
	if m.FinalHome.Valid && m.FinalAway.Valid {
		item.FinalScore = &match.Score{Home: int(m.FinalHome.Int64), Away: int(m.FinalAway.Int64)}
	}
	if m.HalftimeScore.Valid {
		item.HalftimeScore = m.HalftimeScore.String
	}

	if len(m.Goals) > 0 {
		var records []goalRecord
		if err := sonic.Unmarshal(m.Goals, &records); err != nil {
			return match.Match{}, fmt.Errorf("decode goals for match %d: %w", m.ID, err)
		}
		item.Goals = make([]match.Goal, 0, len(records))
		for _, record := range records {
			item.Goals = append(item.Goals, match.Goal{
				TeamID:    record.TeamID,
				Scorer:    record.Scorer,
				Minute:    record.Minute,
				ExtraTime: record.ExtraTime,
			})
		}
	}

	return item, nil
}

func encodeGoals(goals []match.Goal) ([]byte, error) {
	records := make([]goalRecord, 0, len(goals))
	for _, goal := range goals {
		records = append(records, goalRecord{
			TeamID:    goal.TeamID,
			Scorer:    goal.Scorer,
			Minute:    goal.Minute,
			ExtraTime: goal.ExtraTime,
		})
	}

	payload, err := sonic.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode goals: %w", err)
	}

	return payload, nil
}
