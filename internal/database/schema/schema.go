package schema

// SchemaSQL contains the full database schema initialization script. The
// goose migrations under migrations/ are the source of truth for upgrades;
// this script exists for one-shot dev setup and container-based tests.
const SchemaSQL = `
-- Game session history

CREATE TABLE IF NOT EXISTS game_sessions (
    session_id BIGSERIAL PRIMARY KEY,
    user_id TEXT NOT NULL,
    game_id TEXT NOT NULL,
    score INTEGER NOT NULL DEFAULT 0,
    duration_seconds INTEGER NOT NULL DEFAULT 0,
    is_new_high_score BOOLEAN NOT NULL DEFAULT FALSE,
    distance DOUBLE PRECISION NOT NULL DEFAULT 0,
    levels_completed INTEGER NOT NULL DEFAULT 0,
    extra JSONB,
    xp_awarded DOUBLE PRECISION NOT NULL DEFAULT 0,
    ended_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_game_sessions_user_ended ON game_sessions (user_id, ended_at);
CREATE INDEX IF NOT EXISTS idx_game_sessions_user_game ON game_sessions (user_id, game_id);

-- Quest progress

CREATE TABLE IF NOT EXISTS user_quest_progress (
    user_id TEXT NOT NULL,
    quest_id INTEGER NOT NULL,
    current_progress INTEGER NOT NULL DEFAULT 0,
    is_completed BOOLEAN NOT NULL DEFAULT FALSE,
    completed_at TIMESTAMPTZ,
    is_claimed BOOLEAN NOT NULL DEFAULT FALSE,
    claimed_at TIMESTAMPTZ,
    started_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    extra JSONB NOT NULL DEFAULT '{}',
    version INTEGER NOT NULL DEFAULT 1,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    PRIMARY KEY (user_id, quest_id)
);

CREATE INDEX IF NOT EXISTS idx_quest_progress_completed ON user_quest_progress (user_id, is_completed);

-- Reward rule configuration

CREATE TABLE IF NOT EXISTS xp_rules (
    rule_id SERIAL PRIMARY KEY,
    game_id TEXT NOT NULL DEFAULT '',
    rule_name TEXT NOT NULL,
    rule_type TEXT NOT NULL,
    parameters JSONB NOT NULL DEFAULT '{}',
    priority INTEGER NOT NULL DEFAULT 0,
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_xp_rules_game_active ON xp_rules (game_id, is_active);

INSERT INTO xp_rules (game_id, rule_name, rule_type, parameters, priority)
VALUES
    ('', 'Base score reward', 'score_multiplier', '{"multiplier": 0.01}', 100),
    ('', 'Time on platform', 'time_bonus', '{"xp_per_minute": 0.1, "max_minutes": 10}', 90),
    ('', 'New high score', 'high_score_bonus', '{"bonus_xp": 10}', 80)
ON CONFLICT DO NOTHING;

-- Weekly leaderboard snapshot

CREATE TABLE IF NOT EXISTS weekly_ranks (
    user_id TEXT NOT NULL,
    iso_year INTEGER NOT NULL,
    iso_week INTEGER NOT NULL,
    rank INTEGER NOT NULL,
    computed_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    PRIMARY KEY (user_id, iso_year, iso_week)
);

CREATE INDEX IF NOT EXISTS idx_weekly_ranks_week ON weekly_ranks (iso_year, iso_week, rank);

-- Login tracking

CREATE TABLE IF NOT EXISTS user_logins (
    user_id TEXT PRIMARY KEY,
    last_login_at TIMESTAMPTZ NOT NULL,
    login_streak INTEGER NOT NULL DEFAULT 1,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Reward issuance

CREATE TABLE IF NOT EXISTS user_wallets (
    user_id TEXT PRIMARY KEY,
    coins BIGINT NOT NULL DEFAULT 0,
    bonus_xp BIGINT NOT NULL DEFAULT 0,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS reward_ledger (
    entry_id BIGSERIAL PRIMARY KEY,
    user_id TEXT NOT NULL,
    quest_id INTEGER NOT NULL,
    xp_reward INTEGER NOT NULL DEFAULT 0,
    coin_reward INTEGER NOT NULL DEFAULT 0,
    issued_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_reward_ledger_user ON reward_ledger (user_id, issued_at);

-- Event audit trail

CREATE TABLE IF NOT EXISTS event_log (
    entry_id BIGSERIAL PRIMARY KEY,
    event_type TEXT NOT NULL,
    user_id TEXT,
    payload JSONB NOT NULL DEFAULT '{}',
    metadata JSONB,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_event_log_created ON event_log (created_at);
CREATE INDEX IF NOT EXISTS idx_event_log_user ON event_log (user_id, created_at);
CREATE INDEX IF NOT EXISTS idx_event_log_type ON event_log (event_type, created_at);
`
