package handler

import (
	"net/http"

	"github.com/playverse/PlayQuest_Go/internal/domain"
	"github.com/playverse/PlayQuest_Go/internal/logger"
	"github.com/playverse/PlayQuest_Go/internal/quest"
)

type SessionHandler struct {
	service quest.Service
}

func NewSessionHandler(service quest.Service) *SessionHandler {
	return &SessionHandler{service: service}
}

// SessionCompleteRequest represents a finished game session
type SessionCompleteRequest struct {
	UserID            string         `json:"user_id" validate:"required,max=64"`
	GameID            string         `json:"game_id" validate:"required,game_id"`
	Score             int            `json:"score" validate:"gte=0"`
	DurationSeconds   int            `json:"duration_seconds" validate:"gte=0"`
	IsNewHighScore    bool           `json:"is_new_high_score"`
	UserMultiplier    float64        `json:"user_multiplier" validate:"gte=0"`
	PreviousHighScore int            `json:"previous_high_score" validate:"gte=0"`
	LevelsCompleted   int            `json:"levels_completed" validate:"gte=0"`
	Distance          float64        `json:"distance" validate:"gte=0"`
	Extra             map[string]any `json:"extra,omitempty"`
}

// SessionCompleteResponse reports the XP awarded and quest movement for a session
type SessionCompleteResponse struct {
	Message        string                      `json:"message"`
	XP             *domain.XPCalculationResult `json:"xp"`
	TotalXP        float64                     `json:"total_xp"`
	Level          int                         `json:"level"`
	NewlyCompleted []domain.Quest              `json:"newly_completed"`
}

// HandleSessionComplete processes a finished game session: awards XP and
// advances quest progress.
// @Summary Complete a game session
// @Description Records a finished session, awards XP per the active rules, and advances the user's quests
// @Tags session
// @Accept json
// @Produce json
// @Param request body SessionCompleteRequest true "Session details"
// @Success 200 {object} SessionCompleteResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /session/complete [post]
func (h *SessionHandler) HandleSessionComplete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	var req SessionCompleteRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Session complete"); err != nil {
		return
	}

	sctx, err := domain.NewSessionContext(req.GameID, req.Score, req.DurationSeconds,
		req.IsNewHighScore, req.UserMultiplier, req.PreviousHighScore,
		req.LevelsCompleted, req.Distance, req.Extra)
	if err != nil {
		respondServiceError(w, r, "Session complete", err)
		return
	}

	result, err := h.service.ProcessSessionEnd(ctx, req.UserID, sctx)
	if err != nil {
		respondServiceError(w, r, "Session complete", err)
		return
	}

	log.Info("Session processed",
		"user_id", req.UserID,
		"game_id", req.GameID,
		"xp_awarded", result.XP.TotalXP,
		"quests_completed", len(result.NewlyCompleted))

	respondJSON(w, http.StatusOK, SessionCompleteResponse{
		Message:        "Session recorded",
		XP:             result.XP,
		TotalXP:        result.TotalXP,
		Level:          result.Level,
		NewlyCompleted: result.NewlyCompleted,
	})
}
