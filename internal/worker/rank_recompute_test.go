package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/playverse/PlayQuest_Go/internal/domain"
	"github.com/playverse/PlayQuest_Go/internal/quest"
)

type stubQuestService struct {
	quest.Service

	recomputeCalls int
	recomputeErr   error
}

func (s *stubQuestService) ProcessRankRecompute(ctx context.Context, at time.Time) (int, error) {
	s.recomputeCalls++
	if s.recomputeErr != nil {
		return 0, s.recomputeErr
	}
	return 5, nil
}

func (s *stubQuestService) GetActiveQuests(ctx context.Context) ([]domain.Quest, error) {
	return nil, nil
}

func TestRankRecomputeJob(t *testing.T) {
	svc := &stubQuestService{}
	job := NewRankRecomputeJob(svc)

	err := job.Process(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, svc.recomputeCalls)
}

func TestRankRecomputeJob_PropagatesError(t *testing.T) {
	svc := &stubQuestService{recomputeErr: assert.AnError}
	job := NewRankRecomputeJob(svc)

	err := job.Process(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}
