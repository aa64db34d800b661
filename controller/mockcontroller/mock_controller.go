package mockcontroller

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/zjm/league_manager/model"
)

type C struct {
	mock.Mock
}

func (c *C) GetStandings(ctx context.Context, seasonID int32) ([]model.TeamStanding, error) {
	args := c.Called(ctx, seasonID)

	var res []model.TeamStanding
	if args.Get(0) != nil {
		res = args.Get(0).([]model.TeamStanding)
	}
	return res, args.Error(1)
}

func (c *C) GetConferenceStandings(ctx context.Context, seasonID int32) (map[string][]model.TeamStanding, error) {
	args := c.Called(ctx, seasonID)

	var res map[string][]model.TeamStanding
	if args.Get(0) != nil {
		res = args.Get(0).(map[string][]model.TeamStanding)
	}
	return res, args.Error(1)
}

func (c *C) ListTeams(ctx context.Context) ([]model.Team, error) {
	args := c.Called(ctx)

	var res []model.Team
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Team)
	}
	return res, args.Error(1)
}

func (c *C) GetTeam(ctx context.Context, id int32) (*model.Team, error) {
	args := c.Called(ctx, id)

	var t *model.Team
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Team)
	}
	return t, args.Error(1)
}

func (c *C) AddTeam(ctx context.Context, name, logoURL string, conferenceID *int32) (*model.Team, error) {
	args := c.Called(ctx, name, logoURL, conferenceID)

	var t *model.Team
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Team)
	}
	return t, args.Error(1)
}

func (c *C) ListMatches(ctx context.Context, seasonID int32) ([]model.Match, error) {
	args := c.Called(ctx, seasonID)

	var res []model.Match
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Match)
	}
	return res, args.Error(1)
}

func (c *C) GetMatch(ctx context.Context, id int32) (*model.Match, error) {
	args := c.Called(ctx, id)

	var m *model.Match
	if args.Get(0) != nil {
		m = args.Get(0).(*model.Match)
	}
	return m, args.Error(1)
}

func (c *C) RecordMatchResult(ctx context.Context, matchID, homeScore, awayScore int32, overtime bool) error {
	args := c.Called(ctx, matchID, homeScore, awayScore, overtime)
	return args.Error(0)
}

func (c *C) ImportSchedule(ctx context.Context, seasonID int32) (int, error) {
	args := c.Called(ctx, seasonID)
	return args.Int(0), args.Error(1)
}

func (c *C) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	args := c.Called(ctx, id)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}
	return p, args.Error(1)
}

func (c *C) ListPlayers(ctx context.Context) ([]model.Player, error) {
	args := c.Called(ctx)

	var res []model.Player
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Player)
	}
	return res, args.Error(1)
}

func (c *C) PlaceBid(ctx context.Context, playerID string, teamID int32, amount int64) (*model.Bid, error) {
	args := c.Called(ctx, playerID, teamID, amount)

	var b *model.Bid
	if args.Get(0) != nil {
		b = args.Get(0).(*model.Bid)
	}
	return b, args.Error(1)
}

func (c *C) CancelBid(ctx context.Context, bidID string) error {
	args := c.Called(ctx, bidID)
	return args.Error(0)
}

func (c *C) ListActiveBids(ctx context.Context) ([]model.Bid, error) {
	args := c.Called(ctx)

	var res []model.Bid
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Bid)
	}
	return res, args.Error(1)
}

func (c *C) ListBidsForPlayer(ctx context.Context, playerID string) ([]model.Bid, error) {
	args := c.Called(ctx, playerID)

	var res []model.Bid
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Bid)
	}
	return res, args.Error(1)
}

func (c *C) RunBidSettlement(ctx context.Context) (model.SettlementReport, error) {
	args := c.Called(ctx)

	var r model.SettlementReport
	if args.Get(0) != nil {
		r = args.Get(0).(model.SettlementReport)
	}
	return r, args.Error(1)
}

func (c *C) RunPeriodicBidSettlement(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
}

func (c *C) GetUser(ctx context.Context, username string) (*model.User, error) {
	args := c.Called(ctx, username)

	var u *model.User
	if args.Get(0) != nil {
		u = args.Get(0).(*model.User)
	}
	return u, args.Error(1)
}
