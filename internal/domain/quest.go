package domain

import "time"

// QuestType identifies how a quest's progress counter is computed.
type QuestType string

// Known quest types
const (
	QuestPlayGames             QuestType = "play_games"
	QuestPlayGamesWeekly       QuestType = "play_games_weekly"
	QuestPlayTime              QuestType = "play_time"
	QuestPlayTimeDaily         QuestType = "play_time_daily"
	QuestPlayTimeCumulative    QuestType = "play_time_cumulative"
	QuestPlaySameGame          QuestType = "play_same_game"
	QuestScoreThresholdPerGame QuestType = "score_threshold_per_game"
	QuestScoreEndsWith         QuestType = "score_ends_with"
	QuestReachLevel            QuestType = "reach_level"
	QuestXPDaily               QuestType = "xp_daily"
	QuestXPWeekly              QuestType = "xp_weekly"
	QuestLoginStreak           QuestType = "login_streak"
	QuestLoginAfter24h         QuestType = "login_after_24h"
	QuestLeaderboardTop        QuestType = "leaderboard_top"
	QuestCompleteQuests        QuestType = "complete_quests"
	QuestGameSpecific          QuestType = "game_specific"
)

// ResetPeriod is the calendar window after which a quest's counter is zeroed.
type ResetPeriod string

const (
	ResetNone   ResetPeriod = "none"
	ResetDaily  ResetPeriod = "daily"
	ResetWeekly ResetPeriod = "weekly"
)

// Known game identifiers for game-scoped quests and cumulative tracking.
const (
	GameSeven  = "seven"
	GameYatzi  = "yatzi"
	GameRunner = "runner"
	GameBlast  = "blast"
)

// Game-specific metric discriminators (QuestConfig.Metric for game_specific quests).
const (
	MetricWinStreak       = "win_streak"
	MetricGamesWon        = "games_won"
	MetricHighScore       = "high_score"
	MetricRollSeven       = "roll_seven"
	MetricRollYatzi       = "roll_yatzi"
	MetricFullHouse       = "full_house"
	MetricTotalDistance   = "total_distance"
	MetricBestDistance    = "best_distance"
	MetricLevelsCompleted = "levels_completed"
	MetricBlocksCleared   = "blocks_cleared"
)

// QuestConfig carries per-quest tracking configuration.
type QuestConfig struct {
	GameID          string      `json:"game_id,omitempty"`
	Metric          string      `json:"metric,omitempty"` // sub-discriminator for game_specific quests
	ResetPeriod     ResetPeriod `json:"reset_period,omitempty"`
	ResetOnComplete bool        `json:"reset_on_complete,omitempty"`
	MinScore        int         `json:"min_score,omitempty"` // for score_threshold_per_game
	Digit           *int        `json:"digit,omitempty"`     // for score_ends_with; nil falls back to target_value%10
}

// Quest is a platform-wide or game-scoped progression goal.
type Quest struct {
	QuestID     int         `json:"quest_id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Type        QuestType   `json:"type"`
	TargetValue int         `json:"target_value"`
	XPReward    int         `json:"xp_reward"`
	CoinReward  int         `json:"coin_reward"`
	IsActive    bool        `json:"is_active"`
	Config      QuestConfig `json:"config"`
}

// ProgressState is the lifecycle state of a (user, quest) pair.
type ProgressState string

const (
	ProgressNotStarted ProgressState = "not_started"
	ProgressInProgress ProgressState = "in_progress"
	ProgressCompleted  ProgressState = "completed"
	ProgressClaimed    ProgressState = "claimed"
)

// UserQuestProgress is the per-(user, quest) mutable record. Only the quest
// tracker mutates it; persistence is delegated to the progress store.
type UserQuestProgress struct {
	UserID          string        `json:"user_id"`
	QuestID         int           `json:"quest_id"`
	CurrentProgress int           `json:"current_progress"`
	IsCompleted     bool          `json:"is_completed"`
	CompletedAt     *time.Time    `json:"completed_at,omitempty"`
	IsClaimed       bool          `json:"is_claimed"`
	ClaimedAt       *time.Time    `json:"claimed_at,omitempty"`
	StartedAt       time.Time     `json:"started_at"`
	Extra           ProgressExtra `json:"extra"`

	// Version implements the optimistic concurrency check in the store.
	// Zero means the row has never been persisted.
	Version int `json:"-"`
}

// State derives the lifecycle state. IsClaimed implies IsCompleted.
func (p *UserQuestProgress) State() ProgressState {
	switch {
	case p.IsClaimed:
		return ProgressClaimed
	case p.IsCompleted:
		return ProgressCompleted
	case p.CurrentProgress > 0 || p.Extra.LastResetDate != "" || p.Extra.LastResetWeek != "":
		return ProgressInProgress
	default:
		return ProgressNotStarted
	}
}

// ProgressExtra holds reset markers and the nested per-game cumulative
// counters. It round-trips through persistence as a JSON blob; field order is
// fixed so re-serialization is byte-stable.
type ProgressExtra struct {
	LastResetDate      string           `json:"last_reset_date,omitempty"` // UTC calendar day, "2006-01-02"
	LastResetWeek      string           `json:"last_reset_week,omitempty"` // ISO week, "2006-W01"
	LastCompletionDate string           `json:"last_completion_date,omitempty"`
	LastLoginBonusDate string           `json:"last_login_bonus_date,omitempty"` // login_after_24h once-per-day latch
	Cumulative         *CumulativeState `json:"cumulative,omitempty"`
}

// CumulativeState is the tagged union of per-game counter sets. Exactly one
// variant is populated, selected by Game. Several quests scoped to the same
// game share one state; each reads the single field it cares about.
type CumulativeState struct {
	Game   string            `json:"game"`
	Seven  *SevenCumulative  `json:"seven,omitempty"`
	Yatzi  *YatziCumulative  `json:"yatzi,omitempty"`
	Runner *RunnerCumulative `json:"runner,omitempty"`
	Blast  *BlastCumulative  `json:"blast,omitempty"`
}

// NewCumulativeState seeds a zero-valued counter set for a game. Unknown
// games get a bare state with no variant, which every metric reads as zero.
func NewCumulativeState(game string) *CumulativeState {
	s := &CumulativeState{Game: game}
	switch game {
	case GameSeven:
		s.Seven = &SevenCumulative{}
	case GameYatzi:
		s.Yatzi = &YatziCumulative{}
	case GameRunner:
		s.Runner = &RunnerCumulative{}
	case GameBlast:
		s.Blast = &BlastCumulative{}
	}
	return s
}

// SevenCumulative tracks the dice game's counters.
type SevenCumulative struct {
	SevensRolled  int `json:"sevens_rolled"`
	GamesWon      int `json:"games_won"`
	WinStreak     int `json:"win_streak"`
	BestWinStreak int `json:"best_win_streak"`
	HighScore     int `json:"high_score"`
}

// YatziCumulative tracks the yatzi game's counters.
type YatziCumulative struct {
	YatzisRolled  int `json:"yatzis_rolled"`
	FullHouses    int `json:"full_houses"`
	GamesWon      int `json:"games_won"`
	WinStreak     int `json:"win_streak"`
	BestWinStreak int `json:"best_win_streak"`
	HighScore     int `json:"high_score"`
}

// RunnerCumulative tracks the endless-runner counters.
type RunnerCumulative struct {
	TotalDistance float64 `json:"total_distance"`
	BestDistance  float64 `json:"best_distance"`
	GamesWon      int     `json:"games_won"`
	WinStreak     int     `json:"win_streak"`
	BestWinStreak int     `json:"best_win_streak"`
}

// BlastCumulative tracks the block-puzzle counters.
type BlastCumulative struct {
	LevelsCompleted int `json:"levels_completed"`
	BlocksCleared   int `json:"blocks_cleared"`
	GamesWon        int `json:"games_won"`
	WinStreak       int `json:"win_streak"`
	BestWinStreak   int `json:"best_win_streak"`
	HighScore       int `json:"high_score"`
}
