package httpapi

import (
	"net/http"
)

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	seasonName := r.PathValue("season")
	opts, err := parseStandingsOptions(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	entries, err := h.standingsService.Table(ctx, seasonName, opts)
	if err != nil {
		h.logger.WarnContext(ctx, "build standings failed", "season", seasonName, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]standingRowDTO, 0, len(entries))
	for _, entry := range entries {
		items = append(items, standingToDTO(entry))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeamStreak(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamStreak")
	defer span.End()

	teamID, err := parsePathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	opts, err := parseStandingsOptions(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	streak, err := h.standingsService.Streak(ctx, r.PathValue("season"), teamID, opts)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, streakDTO{
		Type:  string(streak.Type),
		Count: streak.Count,
		Text:  streak.Text,
	})
}
