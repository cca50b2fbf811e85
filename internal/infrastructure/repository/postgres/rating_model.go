package postgres

import (
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/petiteligue/ligue-api/internal/domain/rating"
)

type ratingTableModel struct {
	Season  string `db:"season"`
	TeamID  int64  `db:"team_id"`
	Rating  int    `db:"rating"`
	History []byte `db:"history"`
}

// ratingEventRecord is the JSONB shape of one history entry.
type ratingEventRecord struct {
	MatchDay     int     `json:"matchDay"`
	Rating       int     `json:"rating"`
	Change       int     `json:"change"`
	Opponent     string  `json:"opponent"`
	Result       string  `json:"result"`
	GoalsFor     int     `json:"goalsFor"`
	GoalsAgainst int     `json:"goalsAgainst"`
	Multiplier   float64 `json:"multiplier"`
}

func (m ratingTableModel) toDomain() (rating.TeamRating, error) {
	item := rating.TeamRating{
		TeamID: m.TeamID,
		Rating: m.Rating,
	}

	if len(m.History) > 0 {
		var records []ratingEventRecord
		if err := sonic.Unmarshal(m.History, &records); err != nil {
			return rating.TeamRating{}, fmt.Errorf("decode rating history for team %d: %w", m.TeamID, err)
		}
		item.History = make([]rating.Event, 0, len(records))
		for _, record := range records {
			item.History = append(item.History, rating.Event{
				MatchDay:     record.MatchDay,
				Rating:       record.Rating,
				Change:       record.Change,
				Opponent:     record.Opponent,
				Result:       rating.Result(record.Result),
				GoalsFor:     record.GoalsFor,
				GoalsAgainst: record.GoalsAgainst,
				Multiplier:   record.Multiplier,
			})
		}
	}

	return item, nil
}

func encodeHistory(history []rating.Event) ([]byte, error) {
	records := make([]ratingEventRecord, 0, len(history))
	for _, event := range history {
		records = append(records, ratingEventRecord{
			MatchDay:     event.MatchDay,
			Rating:       event.Rating,
			Change:       event.Change,
			Opponent:     event.Opponent,
			Result:       string(event.Result),
			GoalsFor:     event.GoalsFor,
			GoalsAgainst: event.GoalsAgainst,
			Multiplier:   event.Multiplier,
		})
	}

	payload, err := sonic.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode rating history: %w", err)
	}

	return payload, nil
}
