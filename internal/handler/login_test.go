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

func TestHandleLogin(t *testing.T) {
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
			requestBody: LoginRequest{UserID: "user-1"},
			setupMock: func(m *MockQuestService) {
				m.On("ProcessLogin", mock.Anything, "user-1", mock.Anything).Return(&quest.LoginResult{
					LoginStreak: 4,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "Login recorded",
		},
		{
			name:        "Completes a streak quest",
			requestBody: LoginRequest{UserID: "user-2"},
			setupMock: func(m *MockQuestService) {
				m.On("ProcessLogin", mock.Anything, "user-2", mock.Anything).Return(&quest.LoginResult{
					LoginStreak: 7,
					NewlyCompleted: []domain.Quest{
						{QuestID: 9, Title: "Week of Logins", Type: domain.QuestLoginStreak, TargetValue: 7},
					},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "Week of Logins",
		},
		{
			name:           "Missing user_id",
			requestBody:    LoginRequest{},
			setupMock:      func(m *MockQuestService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
		{
			name:        "Service error",
			requestBody: LoginRequest{UserID: "user-1"},
			setupMock: func(m *MockQuestService) {
				m.On("ProcessLogin", mock.Anything, "user-1", mock.Anything).Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   assert.AnError.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockQuestService)
			tt.setupMock(mockSvc)
			h := NewLoginHandler(mockSvc)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/login", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			h.HandleLogin(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			mockSvc.AssertExpectations(t)
		})
	}
}
