package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/playverse/PlayQuest_Go/internal/domain"
	"github.com/playverse/PlayQuest_Go/internal/quest"
)

func TestGetActiveQuests(t *testing.T) {
	mockSvc := new(MockQuestService)
	mockSvc.On("GetActiveQuests", mock.Anything).Return([]domain.Quest{
		{QuestID: 1, Title: "Play 5 Games", Type: domain.QuestPlayGames, TargetValue: 5, IsActive: true},
		{QuestID: 2, Title: "Marathon", Type: domain.QuestPlayTimeDaily, TargetValue: 600, IsActive: true},
	}, nil)

	h := NewQuestHandler(mockSvc)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/quest/active", nil)
	rec := httptest.NewRecorder()

	h.GetActiveQuests(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var quests []domain.Quest
	err := json.Unmarshal(rec.Body.Bytes(), &quests)
	assert.NoError(t, err)
	assert.Len(t, quests, 2)
	assert.Equal(t, "Play 5 Games", quests[0].Title)
}

func TestGetActiveQuests_ServiceError(t *testing.T) {
	mockSvc := new(MockQuestService)
	mockSvc.On("GetActiveQuests", mock.Anything).Return(nil, assert.AnError)

	h := NewQuestHandler(mockSvc)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/quest/active", nil)
	rec := httptest.NewRecorder()

	h.GetActiveQuests(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetUserQuestProgress(t *testing.T) {
	mockSvc := new(MockQuestService)
	mockSvc.On("GetUserQuestProgress", mock.Anything, "user-1").Return([]quest.QuestStatus{
		{
			Quest:    domain.Quest{QuestID: 1, Title: "Play 5 Games", TargetValue: 5},
			Progress: &domain.UserQuestProgress{UserID: "user-1", QuestID: 1, CurrentProgress: 3},
			State:    domain.ProgressInProgress,
		},
	}, nil)

	h := NewQuestHandler(mockSvc)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/quest/progress?user_id=user-1", nil)
	rec := httptest.NewRecorder()

	h.GetUserQuestProgress(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var statuses []quest.QuestStatus
	err := json.Unmarshal(rec.Body.Bytes(), &statuses)
	assert.NoError(t, err)
	assert.Len(t, statuses, 1)
	assert.Equal(t, 3, statuses[0].Progress.CurrentProgress)
	assert.Equal(t, domain.ProgressInProgress, statuses[0].State)
}

func TestGetUserQuestProgress_MissingUserID(t *testing.T) {
	h := NewQuestHandler(new(MockQuestService))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/quest/progress", nil)
	rec := httptest.NewRecorder()

	h.GetUserQuestProgress(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "user_id")
}

func TestClaimQuestReward(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockQuestService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: ClaimQuestRequest{UserID: "user-1", QuestID: 3},
			setupMock: func(m *MockQuestService) {
				m.On("ClaimQuestReward", mock.Anything, "user-1", 3).Return(&quest.ClaimResult{
					QuestID: 3, Title: "Daily Grind", XPReward: 100, CoinReward: 25,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "Quest reward claimed successfully",
		},
		{
			name:           "Missing quest_id",
			requestBody:    ClaimQuestRequest{UserID: "user-1"},
			setupMock:      func(m *MockQuestService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
		{
			name:        "Unknown quest",
			requestBody: ClaimQuestRequest{UserID: "user-1", QuestID: 99},
			setupMock: func(m *MockQuestService) {
				m.On("ClaimQuestReward", mock.Anything, "user-1", 99).Return(nil, domain.ErrQuestNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgQuestNotFoundError,
		},
		{
			name:        "Not claimable yet",
			requestBody: ClaimQuestRequest{UserID: "user-1", QuestID: 3},
			setupMock: func(m *MockQuestService) {
				m.On("ClaimQuestReward", mock.Anything, "user-1", 3).Return(nil, domain.ErrQuestNotClaimable)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgQuestNotClaimable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockQuestService)
			tt.setupMock(mockSvc)
			h := NewQuestHandler(mockSvc)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/quest/claim", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			h.ClaimQuestReward(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			mockSvc.AssertExpectations(t)
		})
	}
}
