package controller

import (
	"context"
	"fmt"

	"github.com/zjm/league_manager/model"
)

func (c *controller) ListMatches(ctx context.Context, seasonID int32) ([]model.Match, error) {
	return c.db.ListMatches(ctx, seasonID, "")
}

func (c *controller) GetMatch(ctx context.Context, id int32) (*model.Match, error) {
	return c.db.GetMatch(ctx, id)
}

func (c *controller) RecordMatchResult(ctx context.Context, matchID, homeScore, awayScore int32, overtime bool) error {
	if homeScore < 0 || awayScore < 0 {
		return fmt.Errorf("error scores must be non-negative, got %d-%d", homeScore, awayScore)
	}

	m, err := c.db.GetMatch(ctx, matchID)
	if err != nil {
		return err
	}

	if !m.CanTransition(model.MatchCompleted) {
		return fmt.Errorf("error match %d cannot be completed from status %s", matchID, m.Status)
	}

	m.HomeScore = homeScore
	m.AwayScore = awayScore
	m.Overtime = overtime
	m.Status = model.MatchCompleted

	if err := c.db.SaveMatch(ctx, m); err != nil {
		return fmt.Errorf("error saving match result: %w", err)
	}

	// A new result changes the table, so drop the cached snapshot.
	c.standingsCache.Invalidate(ctx, m.SeasonID)

	return nil
}
