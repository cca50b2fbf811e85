package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/petiteligue/ligue-api/internal/domain/standings"
	"github.com/petiteligue/ligue-api/internal/platform/logging"
	"github.com/petiteligue/ligue-api/internal/usecase"
)

type Handler struct {
	teamService      *usecase.TeamService
	seasonService    *usecase.SeasonService
	matchService     *usecase.MatchService
	ratingService    *usecase.RatingService
	standingsService *usecase.StandingsService
	recomputeService *usecase.RecomputeService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	teamService *usecase.TeamService,
	seasonService *usecase.SeasonService,
	matchService *usecase.MatchService,
	ratingService *usecase.RatingService,
	standingsService *usecase.StandingsService,
	recomputeService *usecase.RecomputeService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamService:      teamService,
		seasonService:    seasonService,
		matchService:     matchService,
		ratingService:    ratingService,
		standingsService: standingsService,
		recomputeService: recomputeService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// decode unmarshals the request body into dst and runs struct validation.
func (h *Handler) decode(r *http.Request, dst any) error {
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: malformed json body", usecase.ErrInvalidInput)
	}
	if err := h.validator.Struct(dst); err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func parsePathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}

func parseQueryInt(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", usecase.ErrInvalidInput, name)
	}
	return value, nil
}

// parseStandingsOptions reads the view, matchday window and location filters
// shared by the standings, form and streak endpoints.
func parseStandingsOptions(r *http.Request) (standings.Options, error) {
	from, err := parseQueryInt(r, "from")
	if err != nil {
		return standings.Options{}, err
	}
	upTo, err := parseQueryInt(r, "to")
	if err != nil {
		return standings.Options{}, err
	}

	return standings.Options{
		View:         standings.ParseView(r.URL.Query().Get("view")),
		FromMatchDay: from,
		UpToMatchDay: upTo,
		Location:     standings.ParseLocation(r.URL.Query().Get("location")),
	}, nil
}
