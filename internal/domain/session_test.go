package domain

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestNewSessionContextValidation(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		duration int
		mult     float64
		prevHigh int
		levels   int
		distance float64
		wantErr  bool
	}{
		{"valid minimal", 0, 0, 0, 0, 0, 0, false},
		{"valid typical", 1500, 320, 1.5, 1200, 3, 420.5, false},
		{"negative score", -1, 0, 1, 0, 0, 0, true},
		{"negative duration", 0, -10, 1, 0, 0, 0, true},
		{"negative multiplier", 0, 0, -0.1, 0, 0, 0, true},
		{"negative previous high", 0, 0, 1, -5, 0, 0, true},
		{"negative levels", 0, 0, 1, 0, -1, 0, true},
		{"negative distance", 0, 0, 1, 0, 0, -2.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, err := NewSessionContext(GameSeven, tt.score, tt.duration, false, tt.mult, tt.prevHigh, tt.levels, tt.distance, nil)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ctx.Score != tt.score {
				t.Errorf("score = %d, want %d", ctx.Score, tt.score)
			}
		})
	}
}

func TestSessionContextExtraCopied(t *testing.T) {
	extra := map[string]any{"won": true, "sevens_rolled": 2}
	ctx, err := NewSessionContext(GameSeven, 10, 60, false, 1, 0, 0, 0, extra)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	extra["won"] = false
	if !ctx.ExtraBool("won") {
		t.Error("mutating the input map must not affect the built context")
	}
	if got := ctx.ExtraInt("sevens_rolled"); got != 2 {
		t.Errorf("ExtraInt = %d, want 2", got)
	}
	if got := ctx.ExtraInt("missing"); got != 0 {
		t.Errorf("ExtraInt for missing key = %d, want 0", got)
	}
}

func TestProgressExtraRoundTrip(t *testing.T) {
	extra := ProgressExtra{
		LastResetDate:      "2026-08-28",
		LastResetWeek:      "2026-W35",
		LastCompletionDate: "2026-08-27",
		Cumulative: &CumulativeState{
			Game:  GameSeven,
			Seven: &SevenCumulative{SevensRolled: 4, WinStreak: 2, BestWinStreak: 5, GamesWon: 9, HighScore: 310},
		},
	}

	first, err := json.Marshal(extra)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded ProgressExtra
	if err := json.Unmarshal(first, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	second, err := json.Marshal(decoded)
	if err != nil {
		t.Fatalf("re-marshal: %v", err)
	}

	// The blob must survive persistence byte-for-byte.
	if string(first) != string(second) {
		t.Errorf("round trip not byte-identical:\n%s\n%s", first, second)
	}
}

func TestProgressState(t *testing.T) {
	p := &UserQuestProgress{}
	if got := p.State(); got != ProgressNotStarted {
		t.Errorf("State() = %s, want %s", got, ProgressNotStarted)
	}

	p.CurrentProgress = 3
	if got := p.State(); got != ProgressInProgress {
		t.Errorf("State() = %s, want %s", got, ProgressInProgress)
	}

	p.IsCompleted = true
	if got := p.State(); got != ProgressCompleted {
		t.Errorf("State() = %s, want %s", got, ProgressCompleted)
	}

	p.IsClaimed = true
	if got := p.State(); got != ProgressClaimed {
		t.Errorf("State() = %s, want %s", got, ProgressClaimed)
	}
}
