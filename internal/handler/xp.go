package handler

import (
	"net/http"

	"github.com/playverse/PlayQuest_Go/internal/domain"
	"github.com/playverse/PlayQuest_Go/internal/quest"
)

type XPHandler struct {
	service quest.Service
}

func NewXPHandler(service quest.Service) *XPHandler {
	return &XPHandler{service: service}
}

// XPPreviewRequest describes a hypothetical session for XP estimation
type XPPreviewRequest struct {
	GameID            string  `json:"game_id" validate:"required,game_id"`
	Score             int     `json:"score" validate:"gte=0"`
	DurationSeconds   int     `json:"duration_seconds" validate:"gte=0"`
	IsNewHighScore    bool    `json:"is_new_high_score"`
	UserMultiplier    float64 `json:"user_multiplier" validate:"gte=0"`
	PreviousHighScore int     `json:"previous_high_score" validate:"gte=0"`
}

// HandlePreviewXP estimates XP for a session without recording anything
// @Summary Preview XP for a session
// @Description Runs the XP calculation for the given session values without persisting or publishing
// @Tags xp
// @Accept json
// @Produce json
// @Param request body XPPreviewRequest true "Session values"
// @Success 200 {object} domain.XPCalculationResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /xp/preview [post]
func (h *XPHandler) HandlePreviewXP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req XPPreviewRequest
	if err := DecodeAndValidateRequest(r, w, &req, "XP preview"); err != nil {
		return
	}

	sctx, err := domain.NewSessionContext(req.GameID, req.Score, req.DurationSeconds,
		req.IsNewHighScore, req.UserMultiplier, req.PreviousHighScore, 0, 0, nil)
	if err != nil {
		respondServiceError(w, r, "XP preview", err)
		return
	}

	result, err := h.service.PreviewSessionXP(ctx, sctx)
	if err != nil {
		respondServiceError(w, r, "XP preview", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
