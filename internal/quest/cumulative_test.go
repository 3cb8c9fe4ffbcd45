package quest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playverse/PlayQuest_Go/internal/domain"
)

func sevenSession(t *testing.T, score int, won bool, sevens int) *domain.SessionContext {
	t.Helper()
	s, err := domain.NewSessionContext(domain.GameSeven, score, 60, false, 1.0, 0, 0, 0, map[string]any{
		extraKeyWon:          won,
		extraKeySevensRolled: sevens,
	})
	require.NoError(t, err)
	return s
}

func TestUpdateCumulative_SevenCounters(t *testing.T) {
	state := domain.NewCumulativeState(domain.GameSeven)

	updateCumulative(state, sevenSession(t, 120, true, 2))
	updateCumulative(state, sevenSession(t, 80, true, 1))
	updateCumulative(state, sevenSession(t, 200, false, 3))

	c := state.Seven
	require.NotNil(t, c)
	assert.Equal(t, 6, c.SevensRolled)
	assert.Equal(t, 2, c.GamesWon)
	assert.Equal(t, 0, c.WinStreak, "loss resets the running streak")
	assert.Equal(t, 2, c.BestWinStreak, "best streak survives the loss")
	assert.Equal(t, 200, c.HighScore)
}

func TestUpdateCumulative_WinStreakRecovery(t *testing.T) {
	state := domain.NewCumulativeState(domain.GameSeven)

	for _, won := range []bool{true, true, true, false, true} {
		updateCumulative(state, sevenSession(t, 50, won, 0))
	}

	assert.Equal(t, 1, state.Seven.WinStreak)
	assert.Equal(t, 3, state.Seven.BestWinStreak)
	assert.Equal(t, 3, metricValue(state, domain.MetricWinStreak), "win_streak metric reads the best, not the running streak")
}

func TestUpdateCumulative_RunnerDistances(t *testing.T) {
	state := domain.NewCumulativeState(domain.GameRunner)

	for _, d := range []float64{120.5, 340.0, 80.25} {
		s, err := domain.NewSessionContext(domain.GameRunner, 0, 60, false, 1.0, 0, 0, d, nil)
		require.NoError(t, err)
		updateCumulative(state, s)
	}

	require.NotNil(t, state.Runner)
	assert.InDelta(t, 540.75, state.Runner.TotalDistance, 1e-9)
	assert.InDelta(t, 340.0, state.Runner.BestDistance, 1e-9)
	assert.Equal(t, 540, metricValue(state, domain.MetricTotalDistance))
	assert.Equal(t, 340, metricValue(state, domain.MetricBestDistance))
}

func TestUpdateCumulative_BlastCounters(t *testing.T) {
	state := domain.NewCumulativeState(domain.GameBlast)

	s, err := domain.NewSessionContext(domain.GameBlast, 900, 300, false, 1.0, 0, 4, 0, map[string]any{
		extraKeyBlocksCleared: 57,
		extraKeyWon:           true,
	})
	require.NoError(t, err)
	updateCumulative(state, s)

	require.NotNil(t, state.Blast)
	assert.Equal(t, 4, state.Blast.LevelsCompleted)
	assert.Equal(t, 57, state.Blast.BlocksCleared)
	assert.Equal(t, 4, metricValue(state, domain.MetricLevelsCompleted))
	assert.Equal(t, 57, metricValue(state, domain.MetricBlocksCleared))
}

func TestUpdateCumulative_YatziCounters(t *testing.T) {
	state := domain.NewCumulativeState(domain.GameYatzi)

	s, err := domain.NewSessionContext(domain.GameYatzi, 310, 240, false, 1.0, 0, 0, 0, map[string]any{
		extraKeyYatzisRolled: 2,
		extraKeyFullHouses:   1,
		extraKeyWon:          true,
	})
	require.NoError(t, err)
	updateCumulative(state, s)

	require.NotNil(t, state.Yatzi)
	assert.Equal(t, 2, metricValue(state, domain.MetricRollYatzi))
	assert.Equal(t, 1, metricValue(state, domain.MetricFullHouse))
	assert.Equal(t, 310, metricValue(state, domain.MetricHighScore))
}

func TestMetricValue_NilAndUnknown(t *testing.T) {
	assert.Equal(t, 0, metricValue(nil, domain.MetricGamesWon))

	state := domain.NewCumulativeState(domain.GameSeven)
	assert.Equal(t, 0, metricValue(state, "no_such_metric"))
}
