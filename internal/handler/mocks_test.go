package handler

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/playverse/PlayQuest_Go/internal/domain"
	"github.com/playverse/PlayQuest_Go/internal/quest"
)

// MockQuestService mocks the quest.Service interface
type MockQuestService struct {
	mock.Mock
}

func (m *MockQuestService) ProcessSessionEnd(ctx context.Context, userID string, sctx *domain.SessionContext) (*quest.SessionResult, error) {
	args := m.Called(ctx, userID, sctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quest.SessionResult), args.Error(1)
}

func (m *MockQuestService) ProcessLogin(ctx context.Context, userID string, at time.Time) (*quest.LoginResult, error) {
	args := m.Called(ctx, userID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quest.LoginResult), args.Error(1)
}

func (m *MockQuestService) ProcessRankRecompute(ctx context.Context, at time.Time) (int, error) {
	args := m.Called(ctx, at)
	return args.Int(0), args.Error(1)
}

func (m *MockQuestService) PreviewSessionXP(ctx context.Context, sctx *domain.SessionContext) (*domain.XPCalculationResult, error) {
	args := m.Called(ctx, sctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.XPCalculationResult), args.Error(1)
}

func (m *MockQuestService) GetActiveQuests(ctx context.Context) ([]domain.Quest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quest), args.Error(1)
}

func (m *MockQuestService) GetUserQuestProgress(ctx context.Context, userID string) ([]quest.QuestStatus, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]quest.QuestStatus), args.Error(1)
}

func (m *MockQuestService) ClaimQuestReward(ctx context.Context, userID string, questID int) (*quest.ClaimResult, error) {
	args := m.Called(ctx, userID, questID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quest.ClaimResult), args.Error(1)
}
