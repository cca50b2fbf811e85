package httpapi

import (
	"net/http"

	"github.com/petiteligue/ligue-api/internal/usecase"
)

type recomputeJobRequest struct {
	Season     string `json:"season"`
	MaxWorkers int    `json:"maxWorkers" validate:"min=0,max=64"`
}

// RunRecomputeRatingsJob replays rating history, either for one season or
// for all of them. It sits behind the internal job token.
func (h *Handler) RunRecomputeRatingsJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunRecomputeRatingsJob")
	defer span.End()

	var req recomputeJobRequest
	if r.ContentLength > 0 {
		if err := h.decode(r, &req); err != nil {
			writeError(ctx, w, err)
			return
		}
	}

	result, err := h.recomputeService.Run(ctx, usecase.RecomputeInput{
		Season:     req.Season,
		MaxWorkers: req.MaxWorkers,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "recompute job failed", "season", req.Season, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "recompute job finished",
		"seasons", result.SeasonCount,
		"success", result.SuccessCount,
		"failed", result.FailedCount,
	)
	writeSuccess(ctx, w, http.StatusOK, result)
}
