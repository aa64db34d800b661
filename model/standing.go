package model

import "fmt"

// TeamStanding is a derived row in the league table. It is computed fresh on
// every invocation of the standings engine and never persisted or mutated in
// place.
type TeamStanding struct {
	TeamID       int32
	TeamName     string
	LogoURL      string
	Conference   *Conference
	Wins         int32
	Losses       int32
	OTLosses     int32
	Draws        int32
	GamesPlayed  int32
	Points       int32
	GoalsFor     int32
	GoalsAgainst int32
	GoalDiff     int32
}

// FormattedRecord renders the standard W-L-OTL record column.
func (s *TeamStanding) FormattedRecord() string {
	return fmt.Sprintf("%d-%d-%d", s.Wins, s.Losses, s.OTLosses)
}

func (s *TeamStanding) FormattedGoalDiff() string {
	if s.GoalDiff > 0 {
		return fmt.Sprintf("+%d", s.GoalDiff)
	}
	return fmt.Sprintf("%d", s.GoalDiff)
}

func (s *TeamStanding) ConferenceKey() string {
	if s.Conference == nil {
		return NoConference
	}
	return s.Conference.Name
}
