package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/petiteligue/ligue-api/internal/usecase"
)

func (h *Handler) GetRankings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRankings")
	defer span.End()

	seasonName := r.PathValue("season")
	entries, skipped, err := h.ratingService.Rankings(ctx, seasonName)
	if err != nil {
		h.logger.WarnContext(ctx, "rating rankings failed", "season", seasonName, "error", err)
		writeError(ctx, w, err)
		return
	}

	response := rankingsResponseDTO{
		Season:   seasonName,
		Rankings: make([]rankingDTO, 0, len(entries)),
	}
	for _, entry := range entries {
		response.Rankings = append(response.Rankings, rankingDTO{
			Rank:   entry.Rank,
			Team:   teamToDTO(entry.Team),
			Rating: entry.Rating,
			Played: entry.Played,
		})
	}
	for _, skip := range skipped {
		response.SkippedMatches = append(response.SkippedMatches, skippedMatchDTO{
			MatchID: skip.MatchID,
			Reason:  skip.Reason,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, response)
}

func (h *Handler) GetTeamHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamHistory")
	defer span.End()

	teamID, err := parsePathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	history, err := h.ratingService.History(ctx, r.PathValue("season"), teamID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items := make([]ratingEventDTO, 0, len(history))
	for _, event := range history {
		items = append(items, ratingEventToDTO(event))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeamForm(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamForm")
	defer span.End()

	teamID, err := parsePathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	window, err := parseQueryInt(r, "window")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	report, err := h.ratingService.Form(ctx, r.PathValue("season"), teamID, window)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, formReportToDTO(report))
}

func (h *Handler) PredictFixture(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PredictFixture")
	defer span.End()

	homeTeamID, err := parseTeamQuery(r, "home")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	awayTeamID, err := parseTeamQuery(r, "away")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	prediction, err := h.ratingService.Predict(ctx, r.PathValue("season"), homeTeamID, awayTeamID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, predictionDTO{
		HomeWinPct: prediction.HomeWinPct,
		DrawPct:    prediction.DrawPct,
		AwayWinPct: prediction.AwayWinPct,
	})
}

func parseTeamQuery(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: query parameter %s must be a positive team id", usecase.ErrInvalidInput, name)
	}
	return id, nil
}
