package mockdb

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/zjm/league_manager/model"
)

type DB struct {
	mock.Mock
}

func (db *DB) ListTeams(ctx context.Context) ([]model.Team, error) {
	args := db.Called(ctx)

	var r []model.Team
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Team)
	}
	return r, args.Error(1)
}

func (db *DB) GetTeam(ctx context.Context, id int32) (*model.Team, error) {
	args := db.Called(ctx, id)

	var t *model.Team
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Team)
	}
	return t, args.Error(1)
}

func (db *DB) AddTeam(ctx context.Context, t *model.Team) error {
	args := db.Called(ctx, t)
	return args.Error(0)
}

func (db *DB) GetConference(ctx context.Context, id int32) (*model.Conference, error) {
	args := db.Called(ctx, id)

	var c *model.Conference
	if args.Get(0) != nil {
		c = args.Get(0).(*model.Conference)
	}
	return c, args.Error(1)
}

func (db *DB) AddConference(ctx context.Context, c *model.Conference) error {
	args := db.Called(ctx, c)
	return args.Error(0)
}

func (db *DB) ListConferences(ctx context.Context) ([]model.Conference, error) {
	args := db.Called(ctx)

	var r []model.Conference
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Conference)
	}
	return r, args.Error(1)
}

func (db *DB) ListMatches(ctx context.Context, seasonID int32, status model.MatchStatus) ([]model.Match, error) {
	args := db.Called(ctx, seasonID, status)

	var r []model.Match
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Match)
	}
	return r, args.Error(1)
}

func (db *DB) GetMatch(ctx context.Context, id int32) (*model.Match, error) {
	args := db.Called(ctx, id)

	var m *model.Match
	if args.Get(0) != nil {
		m = args.Get(0).(*model.Match)
	}
	return m, args.Error(1)
}

func (db *DB) SaveMatch(ctx context.Context, m *model.Match) error {
	args := db.Called(ctx, m)
	return args.Error(0)
}

func (db *DB) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	args := db.Called(ctx, id)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}
	return p, args.Error(1)
}

func (db *DB) SavePlayer(ctx context.Context, p *model.Player) error {
	args := db.Called(ctx, p)
	return args.Error(0)
}

func (db *DB) ListPlayers(ctx context.Context) ([]model.Player, error) {
	args := db.Called(ctx)

	var r []model.Player
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Player)
	}
	return r, args.Error(1)
}

func (db *DB) GetBid(ctx context.Context, id string) (*model.Bid, error) {
	args := db.Called(ctx, id)

	var b *model.Bid
	if args.Get(0) != nil {
		b = args.Get(0).(*model.Bid)
	}
	return b, args.Error(1)
}

func (db *DB) AddBid(ctx context.Context, b *model.Bid) error {
	args := db.Called(ctx, b)
	return args.Error(0)
}

func (db *DB) CancelBid(ctx context.Context, id string) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) ListBids(ctx context.Context, status model.BidStatus) ([]model.Bid, error) {
	args := db.Called(ctx, status)

	var r []model.Bid
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Bid)
	}
	return r, args.Error(1)
}

func (db *DB) ListBidsForPlayer(ctx context.Context, playerID string) ([]model.Bid, error) {
	args := db.Called(ctx, playerID)

	var r []model.Bid
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Bid)
	}
	return r, args.Error(1)
}

func (db *DB) ListActiveBidsForPlayer(ctx context.Context, playerID string) ([]model.Bid, error) {
	args := db.Called(ctx, playerID)

	var r []model.Bid
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Bid)
	}
	return r, args.Error(1)
}

func (db *DB) ListExpiredActiveBids(ctx context.Context, now time.Time) ([]model.Bid, error) {
	args := db.Called(ctx, now)

	var r []model.Bid
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Bid)
	}
	return r, args.Error(1)
}

func (db *DB) CommitTransfer(ctx context.Context, r model.BidResolution) error {
	args := db.Called(ctx, r)
	return args.Error(0)
}

func (db *DB) GetUser(ctx context.Context, username string) (*model.User, error) {
	args := db.Called(ctx, username)

	var u *model.User
	if args.Get(0) != nil {
		u = args.Get(0).(*model.User)
	}
	return u, args.Error(1)
}

func (db *DB) AddUser(ctx context.Context, username string, role model.Role) error {
	args := db.Called(ctx, username, role)
	return args.Error(0)
}
