package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/zjm/league_manager/model"
)

func (c *controller) ListTeams(ctx context.Context) ([]model.Team, error) {
	return c.db.ListTeams(ctx)
}

func (c *controller) GetTeam(ctx context.Context, id int32) (*model.Team, error) {
	return c.db.GetTeam(ctx, id)
}

func (c *controller) AddTeam(ctx context.Context, name, logoURL string, conferenceID *int32) (*model.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("error team name must not be empty")
	}

	t := &model.Team{
		Name:    name,
		LogoURL: logoURL,
	}
	if conferenceID != nil {
		conf, err := c.db.GetConference(ctx, *conferenceID)
		if err != nil {
			return nil, fmt.Errorf("error looking up conference %d: %w", *conferenceID, err)
		}
		t.Conference = conf
	}

	if err := c.db.AddTeam(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}
