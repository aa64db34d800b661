package statsfeed

import (
	"fmt"
	"time"

	"github.com/zjm/league_manager/model"
)

type scheduleResponse struct {
	SeasonID int32       `json:"season_id"`
	Matches  []feedMatch `json:"matches"`
}

// feedMatch is the raw fixture shape returned by the provider. It is
// validated and converted at this boundary so nothing loosely typed escapes
// the package.
type feedMatch struct {
	ID         int32  `json:"id"`
	HomeTeamID int32  `json:"home_team_id"`
	AwayTeamID int32  `json:"away_team_id"`
	StartTime  string `json:"start_time"`
	Status     string `json:"status"`
}

func (fm *feedMatch) toMatch(seasonID int32) (*model.Match, error) {
	if fm.ID <= 0 {
		return nil, fmt.Errorf("feed match has no id")
	}
	if fm.HomeTeamID == fm.AwayTeamID {
		return nil, fmt.Errorf("feed match %d references the same team twice", fm.ID)
	}

	status := model.ParseMatchStatus(fm.Status)
	if status == "" {
		status = model.MatchScheduled
	}

	m := &model.Match{
		ID:         fm.ID,
		SeasonID:   seasonID,
		HomeTeamID: fm.HomeTeamID,
		AwayTeamID: fm.AwayTeamID,
		Status:     status,
	}

	if fm.StartTime != "" {
		t, err := time.Parse(time.RFC3339, fm.StartTime)
		if err != nil {
			return nil, fmt.Errorf("error parsing start time for match %d: %w", fm.ID, err)
		}
		m.PlayedAt = t.UTC()
	}

	return m, nil
}
