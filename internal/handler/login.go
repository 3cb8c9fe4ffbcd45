package handler

import (
	"net/http"
	"time"

	"github.com/playverse/PlayQuest_Go/internal/domain"
	"github.com/playverse/PlayQuest_Go/internal/logger"
	"github.com/playverse/PlayQuest_Go/internal/quest"
)

type LoginHandler struct {
	service quest.Service
}

func NewLoginHandler(service quest.Service) *LoginHandler {
	return &LoginHandler{service: service}
}

// LoginRequest records a user login
type LoginRequest struct {
	UserID string `json:"user_id" validate:"required,max=64"`
}

// LoginResponse reports the streak after the login and any quests it completed
type LoginResponse struct {
	Message        string         `json:"message"`
	LoginStreak    int            `json:"login_streak"`
	NewlyCompleted []domain.Quest `json:"newly_completed"`
}

// HandleLogin records a login, updates the streak, and advances login quests
// @Summary Record a login
// @Description Updates the user's consecutive-day login streak and advances login-based quests
// @Tags login
// @Accept json
// @Produce json
// @Param request body LoginRequest true "User"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /login [post]
func (h *LoginHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	var req LoginRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Login"); err != nil {
		return
	}

	result, err := h.service.ProcessLogin(ctx, req.UserID, time.Now().UTC())
	if err != nil {
		respondServiceError(w, r, "Login", err)
		return
	}

	log.Info("Login recorded", "user_id", req.UserID, "login_streak", result.LoginStreak)

	respondJSON(w, http.StatusOK, LoginResponse{
		Message:        "Login recorded",
		LoginStreak:    result.LoginStreak,
		NewlyCompleted: result.NewlyCompleted,
	})
}
