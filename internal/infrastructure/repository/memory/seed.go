package memory

import (
	"time"

	"github.com/petiteligue/ligue-api/internal/domain/match"
	"github.com/petiteligue/ligue-api/internal/domain/season"
	"github.com/petiteligue/ligue-api/internal/domain/team"
)

const SeedSeasonName = "2025-2026"

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: 1, Name: "Olympique Nord", ShortName: "OLN", City: "Lille"},
		{ID: 2, Name: "Racing Sud", ShortName: "RCS", City: "Marseille"},
		{ID: 3, Name: "Stade Ouest", ShortName: "STO", City: "Nantes"},
		{ID: 4, Name: "AS Levant", ShortName: "ASL", City: "Lyon"},
	}
}

func SeedSeasons() []season.Season {
	return []season.Season{
		{
			Name:      SeedSeasonName,
			StartDate: time.Date(2025, 8, 9, 0, 0, 0, 0, time.UTC),
			IsActive:  true,
			TeamIDs:   []int64{1, 2, 3, 4},
		},
	}
}

func SeedMatches() []match.Match {
	return []match.Match{
		{
			ID:         1,
			Season:     SeedSeasonName,
			MatchDay:   1,
			Date:       time.Date(2025, 8, 9, 19, 0, 0, 0, time.UTC),
			HomeTeamID: 1,
			AwayTeamID: 2,
			FinalScore: &match.Score{Home: 2, Away: 0},
			Goals: []match.Goal{
				{TeamID: 1, Scorer: "Lucas Perrin", Minute: 23},
				{TeamID: 1, Scorer: "Malik Sow", Minute: 78},
			},
		},
		{
			ID:         2,
			Season:     SeedSeasonName,
			MatchDay:   1,
			Date:       time.Date(2025, 8, 10, 15, 0, 0, 0, time.UTC),
			HomeTeamID: 3,
			AwayTeamID: 4,
			FinalScore: &match.Score{Home: 1, Away: 1},
			Goals: []match.Goal{
				{TeamID: 3, Scorer: "Theo Garnier", Minute: 41},
				{TeamID: 4, Scorer: "Adama Diallo", Minute: 90, ExtraTime: 3},
			},
		},
		{
			ID:         3,
			Season:     SeedSeasonName,
			MatchDay:   2,
			Date:       time.Date(2025, 8, 16, 19, 0, 0, 0, time.UTC),
			HomeTeamID: 2,
			AwayTeamID: 3,
			FinalScore: &match.Score{Home: 3, Away: 1},
			Goals: []match.Goal{
				{TeamID: 2, Scorer: "Enzo Morel", Minute: 12},
				{TeamID: 3, Scorer: "Theo Garnier", Minute: 34},
				{TeamID: 2, Scorer: "Enzo Morel", Minute: 55},
				{TeamID: 2, Scorer: "Bastien Leroy", Minute: 89},
			},
		},
		{
			ID:         4,
			Season:     SeedSeasonName,
			MatchDay:   2,
			Date:       time.Date(2025, 8, 17, 15, 0, 0, 0, time.UTC),
			HomeTeamID: 4,
			AwayTeamID: 1,
			FinalScore: &match.Score{Home: 0, Away: 1},
			Goals: []match.Goal{
				{TeamID: 1, Scorer: "Malik Sow", Minute: 67},
			},
		},
		{
			ID:         5,
			Season:     SeedSeasonName,
			MatchDay:   3,
			Date:       time.Date(2025, 8, 23, 19, 0, 0, 0, time.UTC),
			HomeTeamID: 1,
			AwayTeamID: 3,
			FinalScore: &match.Score{Home: 2, Away: 2},
			Goals: []match.Goal{
				{TeamID: 1, Scorer: "Lucas Perrin", Minute: 8},
				{TeamID: 3, Scorer: "Hugo Blanc", Minute: 45},
				{TeamID: 3, Scorer: "Theo Garnier", Minute: 72},
				{TeamID: 1, Scorer: "Malik Sow", Minute: 90, ExtraTime: 2},
			},
		},
		{
			ID:         6,
			Season:     SeedSeasonName,
			MatchDay:   3,
			Date:       time.Date(2025, 8, 24, 15, 0, 0, 0, time.UTC),
			HomeTeamID: 2,
			AwayTeamID: 4,
			FinalScore: &match.Score{Home: 1, Away: 0},
			Goals: []match.Goal{
				{TeamID: 2, Scorer: "Bastien Leroy", Minute: 51},
			},
		},
	}
}
