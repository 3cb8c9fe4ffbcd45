package worker

import (
	"context"
	"time"

	"github.com/playverse/PlayQuest_Go/internal/logger"
	"github.com/playverse/PlayQuest_Go/internal/quest"
)

// RankRecomputeJob re-evaluates leaderboard-rank quests for every ranked user.
// The scoring pipeline writes weekly ranks out of band; this job folds the
// latest ranks into quest progress on a fixed schedule.
type RankRecomputeJob struct {
	questService quest.Service
}

func NewRankRecomputeJob(questService quest.Service) *RankRecomputeJob {
	return &RankRecomputeJob{questService: questService}
}

func (j *RankRecomputeJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRankRecomputeStarting)

	start := time.Now()
	usersEvaluated, err := j.questService.ProcessRankRecompute(ctx, time.Now().UTC())
	if err != nil {
		log.Error(LogMsgRankRecomputeFailed, "error", err)
		return err
	}

	log.Info(LogMsgRankRecomputeCompleted,
		"users_evaluated", usersEvaluated,
		"duration", time.Since(start))
	return nil
}
