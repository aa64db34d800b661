package controller

import (
	"context"
	"fmt"
	"log"
	"slices"

	"github.com/zjm/league_manager/model"
)

// TieRule decides how a completed match with a level score is classified.
// The legacy behavior records an overtime loss for both sides. The corrected
// semantics record a true draw worth one point. The rule is named and
// injected so the two can be swapped without changing the engine's shape.
type TieRule string

const (
	TieRuleOvertimeLoss TieRule = "otl"
	TieRuleDraw         TieRule = "draw"
)

// StandingsPolicy is the per-deployment configuration for the standings
// engine. PointsPerWin is 2 in hockey-style leagues and 3 in soccer-style
// leagues; overtime losses and draws are always worth 1.
type StandingsPolicy struct {
	PointsPerWin int32
	TieRule      TieRule
}

func DefaultStandingsPolicy() StandingsPolicy {
	return StandingsPolicy{
		PointsPerWin: 2,
		TieRule:      TieRuleOvertimeLoss,
	}
}

// ComputeStandings derives the league table from a set of match records. It
// is a pure function of its inputs: identical inputs always produce
// identical output, and the input slices are never modified.
//
// Only completed matches contribute. Malformed matches and matches that
// reference unknown team ids are skipped, never fatal; the number of skipped
// records is returned for diagnostics. Teams with no matches still appear
// with zeroed stats. Ties after all sort keys are exhausted keep the input
// order of the teams slice.
func ComputeStandings(teams []model.Team, matches []model.Match, policy StandingsPolicy) ([]model.TeamStanding, int) {
	standings := make([]model.TeamStanding, 0, len(teams))
	index := make(map[int32]int, len(teams))
	for _, t := range teams {
		if _, dup := index[t.ID]; dup {
			continue
		}
		index[t.ID] = len(standings)
		standings = append(standings, model.TeamStanding{
			TeamID:     t.ID,
			TeamName:   t.Name,
			LogoURL:    t.LogoURL,
			Conference: t.Conference,
		})
	}

	skipped := 0
	for _, m := range matches {
		if !m.IsCompleted() {
			continue
		}
		if !m.Valid() {
			skipped++
			continue
		}

		if i, ok := index[m.HomeTeamID]; ok {
			tallyMatch(&standings[i], m.HomeScore, m.AwayScore, m.Overtime, policy)
		}
		if i, ok := index[m.AwayTeamID]; ok {
			tallyMatch(&standings[i], m.AwayScore, m.HomeScore, m.Overtime, policy)
		}
	}

	for i := range standings {
		s := &standings[i]
		s.GamesPlayed = s.Wins + s.Losses + s.OTLosses + s.Draws
		s.GoalDiff = s.GoalsFor - s.GoalsAgainst
		s.Points = s.Wins*policy.PointsPerWin + s.OTLosses + s.Draws
	}

	slices.SortStableFunc(standings, compareStandings)

	return standings, skipped
}

// tallyMatch attributes one completed match to a single team's row, given
// that team's goals scored and conceded.
func tallyMatch(s *model.TeamStanding, scored, conceded int32, overtime bool, policy StandingsPolicy) {
	s.GoalsFor += scored
	s.GoalsAgainst += conceded

	switch {
	case scored > conceded:
		s.Wins++
	case scored < conceded:
		if overtime {
			s.OTLosses++
		} else {
			s.Losses++
		}
	default:
		// A level score with no overtime indicator. Under the legacy rule
		// both sides take an overtime loss; under the draw rule both sides
		// take a draw.
		if policy.TieRule == TieRuleDraw {
			s.Draws++
		} else {
			s.OTLosses++
		}
	}
}

func compareStandings(a, b model.TeamStanding) int {
	if a.Points != b.Points {
		return int(b.Points - a.Points)
	}
	if a.Wins != b.Wins {
		return int(b.Wins - a.Wins)
	}
	if a.GoalDiff != b.GoalDiff {
		return int(b.GoalDiff - a.GoalDiff)
	}
	if a.GoalsFor != b.GoalsFor {
		return int(b.GoalsFor - a.GoalsFor)
	}
	return 0
}

// GroupByConference buckets standings rows by conference name, preserving
// the ranked order within each bucket. Teams without a conference land in
// the model.NoConference bucket; no team is ever dropped.
func GroupByConference(standings []model.TeamStanding) map[string][]model.TeamStanding {
	grouped := make(map[string][]model.TeamStanding)
	for _, s := range standings {
		key := s.ConferenceKey()
		grouped[key] = append(grouped[key], s)
	}
	return grouped
}

func (c *controller) GetStandings(ctx context.Context, seasonID int32) ([]model.TeamStanding, error) {
	if cached, ok := c.standingsCache.Get(ctx, seasonID); ok {
		return cached, nil
	}

	teams, err := c.db.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing teams for standings: %w", err)
	}

	matches, err := c.db.ListMatches(ctx, seasonID, model.MatchCompleted)
	if err != nil {
		return nil, fmt.Errorf("error listing matches for standings: %w", err)
	}

	standings, skipped := ComputeStandings(teams, matches, c.policy)
	if skipped > 0 {
		log.Printf("standings for season %d skipped %d malformed matches", seasonID, skipped)
	}

	c.standingsCache.Set(ctx, seasonID, standings)

	return standings, nil
}

func (c *controller) GetConferenceStandings(ctx context.Context, seasonID int32) (map[string][]model.TeamStanding, error) {
	standings, err := c.GetStandings(ctx, seasonID)
	if err != nil {
		return nil, err
	}
	return GroupByConference(standings), nil
}
