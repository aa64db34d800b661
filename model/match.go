package model

import (
	"strings"
	"time"
)

type MatchStatus string

const (
	MatchScheduled  MatchStatus = "scheduled"
	MatchInProgress MatchStatus = "in_progress"
	MatchCompleted  MatchStatus = "completed"
)

func ParseMatchStatus(s string) MatchStatus {
	switch strings.ToLower(s) {
	case "scheduled":
		return MatchScheduled
	case "in_progress":
		return MatchInProgress
	case "completed":
		return MatchCompleted
	default:
		return ""
	}
}

// Match is a single fixture between two distinct teams. Scores are only
// meaningful once Status is MatchCompleted.
type Match struct {
	ID         int32
	SeasonID   int32
	HomeTeamID int32
	AwayTeamID int32
	HomeScore  int32
	AwayScore  int32
	Overtime   bool
	Status     MatchStatus
	PlayedAt   time.Time
	Created    time.Time
	Updated    time.Time
}

func (m *Match) IsCompleted() bool {
	return m.Status == MatchCompleted
}

// Valid reports whether a completed match record is usable for standings.
// Matches that never completed are not errors, they are simply skipped.
func (m *Match) Valid() bool {
	if m.HomeTeamID == m.AwayTeamID {
		return false
	}
	if m.IsCompleted() && (m.HomeScore < 0 || m.AwayScore < 0) {
		return false
	}
	return true
}

func (m *Match) FormattedPlayedAt() string {
	if m.PlayedAt.IsZero() {
		return "TBD"
	}
	return m.PlayedAt.Format(time.DateTime)
}

// CanTransition reports whether a match may move from its current status to
// next. Completed is terminal.
func (m *Match) CanTransition(next MatchStatus) bool {
	switch m.Status {
	case MatchScheduled:
		return next == MatchInProgress || next == MatchCompleted
	case MatchInProgress:
		return next == MatchCompleted
	default:
		return false
	}
}
