package handler

import (
	"net/http"

	"github.com/playverse/PlayQuest_Go/internal/logger"
	"github.com/playverse/PlayQuest_Go/internal/quest"
)

type QuestHandler struct {
	service quest.Service
}

func NewQuestHandler(service quest.Service) *QuestHandler {
	return &QuestHandler{service: service}
}

// GetActiveQuests returns the currently active quest definitions
// @Summary List active quests
// @Description Returns the quest definitions currently open to all users
// @Tags quest
// @Produce json
// @Success 200 {array} domain.Quest
// @Failure 500 {object} ErrorResponse
// @Router /quest/active [get]
func (h *QuestHandler) GetActiveQuests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	quests, err := h.service.GetActiveQuests(ctx)
	if err != nil {
		respondServiceError(w, r, "Get active quests", err)
		return
	}

	respondJSON(w, http.StatusOK, quests)
}

// GetUserQuestProgress returns a user's progress against the active quests
// @Summary Get quest progress
// @Description Returns the user's progress record and state for each active quest
// @Tags quest
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {array} quest.QuestStatus
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /quest/progress [get]
func (h *QuestHandler) GetUserQuestProgress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	progress, err := h.service.GetUserQuestProgress(ctx, userID)
	if err != nil {
		log.Error("Failed to get quest progress", "error", err)
		respondServiceError(w, r, "Get quest progress", err)
		return
	}

	respondJSON(w, http.StatusOK, progress)
}

// ClaimQuestRequest claims a completed quest's reward
type ClaimQuestRequest struct {
	UserID  string `json:"user_id" validate:"required,max=64"`
	QuestID int    `json:"quest_id" validate:"required,gt=0"`
}

// ClaimQuestResponse reports the reward issued for a claim
type ClaimQuestResponse struct {
	Message    string `json:"message"`
	QuestID    int    `json:"quest_id"`
	Title      string `json:"title"`
	XPReward   int    `json:"xp_reward"`
	CoinReward int    `json:"coin_reward"`
}

// ClaimQuestReward claims a completed quest's reward
// @Summary Claim a quest reward
// @Description Marks a completed quest claimed and credits its XP and coin rewards to the user
// @Tags quest
// @Accept json
// @Produce json
// @Param request body ClaimQuestRequest true "Claim"
// @Success 200 {object} ClaimQuestResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /quest/claim [post]
func (h *QuestHandler) ClaimQuestReward(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	var req ClaimQuestRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Claim quest reward"); err != nil {
		return
	}

	result, err := h.service.ClaimQuestReward(ctx, req.UserID, req.QuestID)
	if err != nil {
		respondServiceError(w, r, "Claim quest reward", err)
		return
	}

	log.Info("Quest reward claimed",
		"user_id", req.UserID,
		"quest_id", result.QuestID,
		"xp_reward", result.XPReward,
		"coin_reward", result.CoinReward)

	respondJSON(w, http.StatusOK, ClaimQuestResponse{
		Message:    "Quest reward claimed successfully",
		QuestID:    result.QuestID,
		Title:      result.Title,
		XPReward:   result.XPReward,
		CoinReward: result.CoinReward,
	})
}
