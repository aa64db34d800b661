package controller

import (
	"context"
	"fmt"
	"log"
	"time"
)

// ImportSchedule pulls the season's fixtures from the stats feed and upserts
// them into the store. Matches that already have a result are left alone by
// the db layer.
func (c *controller) ImportSchedule(ctx context.Context, seasonID int32) (int, error) {
	start := time.Now()
	log.Printf("schedule import for season %d starting at %v", seasonID, start.Format(time.DateTime))

	matches, err := c.feed.LoadSchedule(ctx, seasonID)
	if err != nil {
		return 0, fmt.Errorf("error loading schedule from stats feed: %w", err)
	}

	count := 0
	for _, m := range matches {
		if !m.Valid() {
			log.Printf("skipping malformed feed match %d (%d vs %d)", m.ID, m.HomeTeamID, m.AwayTeamID)
			continue
		}
		if err := c.db.SaveMatch(ctx, &m); err != nil {
			return count, fmt.Errorf("error saving match %d: %w", m.ID, err)
		}
		count++
	}

	log.Printf("schedule import finished, %d matches, took %v", count, time.Since(start))
	return count, nil
}
