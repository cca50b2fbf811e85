package httpapi

import (
	"time"

	"github.com/petiteligue/ligue-api/internal/domain/match"
	"github.com/petiteligue/ligue-api/internal/domain/rating"
	"github.com/petiteligue/ligue-api/internal/domain/season"
	"github.com/petiteligue/ligue-api/internal/domain/team"
	"github.com/petiteligue/ligue-api/internal/usecase"
)

type teamDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName,omitempty"`
	City      string `json:"city,omitempty"`
}

func teamToDTO(item team.Team) teamDTO {
	return teamDTO{
		ID:        item.ID,
		Name:      item.Name,
		ShortName: item.ShortName,
		City:      item.City,
	}
}

type teamUpsertRequest struct {
	ID        int64  `json:"id" validate:"required,gt=0"`
	Name      string `json:"name" validate:"required"`
	ShortName string `json:"shortName"`
	City      string `json:"city"`
}

type seasonDTO struct {
	Name      string     `json:"name"`
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	IsActive  bool       `json:"isActive"`
	TeamIDs   []int64    `json:"teamIds"`
}

func seasonToDTO(item season.Season) seasonDTO {
	return seasonDTO{
		Name:      item.Name,
		StartDate: item.StartDate,
		EndDate:   item.EndDate,
		IsActive:  item.IsActive,
		TeamIDs:   item.TeamIDs,
	}
}

type seasonStartRequest struct {
	Name      string    `json:"name" validate:"required"`
	StartDate time.Time `json:"startDate" validate:"required"`
	TeamIDs   []int64   `json:"teamIds" validate:"required,min=2,dive,gt=0"`
}

type scoreDTO struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

type goalDTO struct {
	TeamID    int64  `json:"teamId" validate:"required,gt=0"`
	Scorer    string `json:"scorer,omitempty"`
	Minute    int    `json:"minute" validate:"required,min=1,max=90"`
	ExtraTime int    `json:"extraTime,omitempty" validate:"min=0,max=15"`
}

type matchDTO struct {
	ID            int64     `json:"id"`
	Season        string    `json:"season"`
	MatchDay      int       `json:"matchDay"`
	Date          time.Time `json:"date"`
	HomeTeamID    int64     `json:"homeTeamId"`
	AwayTeamID    int64     `json:"awayTeamId"`
	FinalScore    *scoreDTO `json:"finalScore,omitempty"`
	HalftimeScore string    `json:"halftimeScore,omitempty"`
	Goals         []goalDTO `json:"goals,omitempty"`
}

func matchToDTO(item match.Match) matchDTO {
	dto := matchDTO{
		ID:            item.ID,
		Season:        item.Season,
		MatchDay:      item.MatchDay,
		Date:          item.Date,
		HomeTeamID:    item.HomeTeamID,
		AwayTeamID:    item.AwayTeamID,
		HalftimeScore: item.HalftimeScore,
	}
	if item.FinalScore != nil {
		dto.FinalScore = &scoreDTO{Home: item.FinalScore.Home, Away: item.FinalScore.Away}
	}
	for _, goal := range item.Goals {
		dto.Goals = append(dto.Goals, goalDTO{
			TeamID:    goal.TeamID,
			Scorer:    goal.Scorer,
			Minute:    goal.Minute,
			ExtraTime: goal.ExtraTime,
		})
	}
	return dto
}

type matchUpsertRequest struct {
	MatchDay      int       `json:"matchDay" validate:"required,gt=0"`
	Date          time.Time `json:"date" validate:"required"`
	HomeTeamID    int64     `json:"homeTeamId" validate:"required,gt=0"`
	AwayTeamID    int64     `json:"awayTeamId" validate:"required,gt=0"`
	FinalScore    *scoreDTO `json:"finalScore"`
	HalftimeScore string    `json:"halftimeScore"`
	Goals         []goalDTO `json:"goals" validate:"dive"`
}

func (req matchUpsertRequest) toDomain(seasonName string, matchID int64) match.Match {
	item := match.Match{
		ID:            matchID,
		Season:        seasonName,
		MatchDay:      req.MatchDay,
		Date:          req.Date,
		HomeTeamID:    req.HomeTeamID,
		AwayTeamID:    req.AwayTeamID,
		HalftimeScore: req.HalftimeScore,
	}
	if req.FinalScore != nil {
		item.FinalScore = &match.Score{Home: req.FinalScore.Home, Away: req.FinalScore.Away}
	}
	for _, goal := range req.Goals {
		item.Goals = append(item.Goals, match.Goal{
			TeamID:    goal.TeamID,
			Scorer:    goal.Scorer,
			Minute:    goal.Minute,
			ExtraTime: goal.ExtraTime,
		})
	}
	return item
}

type standingRowDTO struct {
	Rank           int      `json:"rank"`
	Team           teamDTO  `json:"team"`
	Played         int      `json:"played"`
	Won            int      `json:"won"`
	Drawn          int      `json:"drawn"`
	Lost           int      `json:"lost"`
	GoalsFor       int      `json:"goalsFor"`
	GoalsAgainst   int      `json:"goalsAgainst"`
	GoalDifference int      `json:"goalDifference"`
	Points         int      `json:"points"`
	Form           []string `json:"form"`
	Streak         string   `json:"streak"`
}

func standingToDTO(entry usecase.TableEntry) standingRowDTO {
	form := make([]string, 0, len(entry.RecentForm))
	for _, result := range entry.RecentForm {
		form = append(form, string(result))
	}

	return standingRowDTO{
		Rank:           entry.Rank,
		Team:           teamToDTO(entry.Team),
		Played:         entry.Row.Played,
		Won:            entry.Row.Won,
		Drawn:          entry.Row.Drawn,
		Lost:           entry.Row.Lost,
		GoalsFor:       entry.Row.GoalsFor,
		GoalsAgainst:   entry.Row.GoalsAgainst,
		GoalDifference: entry.Row.GoalDifference,
		Points:         entry.Row.Points,
		Form:           form,
		Streak:         entry.Streak.Text,
	}
}

type rankingDTO struct {
	Rank   int     `json:"rank"`
	Team   teamDTO `json:"team"`
	Rating int     `json:"rating"`
	Played int     `json:"played"`
}

type skippedMatchDTO struct {
	MatchID int64  `json:"matchId"`
	Reason  string `json:"reason"`
}

type rankingsResponseDTO struct {
	Season         string            `json:"season"`
	Rankings       []rankingDTO      `json:"rankings"`
	SkippedMatches []skippedMatchDTO `json:"skippedMatches,omitempty"`
}

type ratingEventDTO struct {
	MatchDay     int     `json:"matchDay"`
	Rating       int     `json:"rating"`
	Change       int     `json:"change"`
	Opponent     string  `json:"opponent"`
	Result       string  `json:"result"`
	GoalsFor     int     `json:"goalsFor"`
	GoalsAgainst int     `json:"goalsAgainst"`
	Multiplier   float64 `json:"multiplier"`
}

func ratingEventToDTO(event rating.Event) ratingEventDTO {
	return ratingEventDTO{
		MatchDay:     event.MatchDay,
		Rating:       event.Rating,
		Change:       event.Change,
		Opponent:     event.Opponent,
		Result:       string(event.Result),
		GoalsFor:     event.GoalsFor,
		GoalsAgainst: event.GoalsAgainst,
		Multiplier:   event.Multiplier,
	}
}

type formReportDTO struct {
	Modifier      int      `json:"modifier"`
	Status        string   `json:"status"`
	Details       []string `json:"details"`
	RecentResults []string `json:"recentResults"`
}

func formReportToDTO(report rating.FormReport) formReportDTO {
	results := make([]string, 0, len(report.RecentResults))
	for _, result := range report.RecentResults {
		results = append(results, string(result))
	}

	return formReportDTO{
		Modifier:      report.Modifier,
		Status:        report.Status,
		Details:       report.Details,
		RecentResults: results,
	}
}

type streakDTO struct {
	Type  string `json:"type,omitempty"`
	Count int    `json:"count"`
	Text  string `json:"text"`
}

type predictionDTO struct {
	HomeWinPct int `json:"homeWinPct"`
	DrawPct    int `json:"drawPct"`
	AwayWinPct int `json:"awayWinPct"`
}
