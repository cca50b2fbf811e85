package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("POST /v1/teams", handler.UpsertTeam)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("DELETE /v1/teams/{teamID}", handler.DeleteTeam)

	mux.HandleFunc("GET /v1/seasons", handler.ListSeasons)
	mux.HandleFunc("POST /v1/seasons", handler.StartSeason)
	mux.HandleFunc("GET /v1/seasons/active", handler.GetActiveSeason)
	mux.HandleFunc("GET /v1/seasons/{season}", handler.GetSeason)
	mux.HandleFunc("DELETE /v1/seasons/{season}", handler.DeleteSeason)

	mux.HandleFunc("GET /v1/seasons/{season}/matches", handler.ListMatches)
	mux.HandleFunc("POST /v1/seasons/{season}/matches", handler.CreateMatch)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("PUT /v1/matches/{matchID}", handler.UpdateMatch)
	mux.HandleFunc("DELETE /v1/matches/{matchID}", handler.DeleteMatch)

	mux.HandleFunc("GET /v1/seasons/{season}/standings", handler.GetStandings)
	mux.HandleFunc("GET /v1/seasons/{season}/ratings", handler.GetRankings)
	mux.HandleFunc("GET /v1/seasons/{season}/predictions", handler.PredictFixture)
	mux.HandleFunc("GET /v1/seasons/{season}/teams/{teamID}/history", handler.GetTeamHistory)
	mux.HandleFunc("GET /v1/seasons/{season}/teams/{teamID}/form", handler.GetTeamForm)
	mux.HandleFunc("GET /v1/seasons/{season}/teams/{teamID}/streak", handler.GetTeamStreak)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/recompute-ratings", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunRecomputeRatingsJob)))
}
