package controller

import (
	"context"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/zjm/league_manager/db"
	"github.com/zjm/league_manager/model"
	"github.com/zjm/league_manager/notify"
	"github.com/zjm/league_manager/platforms/statsfeed"
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	// Standings are computed fresh from completed matches on every call,
	// modulo the read cache. They are never persisted.
	GetStandings(ctx context.Context, seasonID int32) ([]model.TeamStanding, error)
	GetConferenceStandings(ctx context.Context, seasonID int32) (map[string][]model.TeamStanding, error)

	ListTeams(ctx context.Context) ([]model.Team, error)
	GetTeam(ctx context.Context, id int32) (*model.Team, error)
	AddTeam(ctx context.Context, name, logoURL string, conferenceID *int32) (*model.Team, error)

	ListMatches(ctx context.Context, seasonID int32) ([]model.Match, error)
	GetMatch(ctx context.Context, id int32) (*model.Match, error)
	// Records a final score for a match and completes it. Returns an error
	// if the match is already completed or the scores are invalid.
	RecordMatchResult(ctx context.Context, matchID, homeScore, awayScore int32, overtime bool) error
	// Pulls the season's fixtures from the external stats feed and upserts
	// them. Returns the number of matches imported.
	ImportSchedule(ctx context.Context, seasonID int32) (int, error)

	GetPlayer(ctx context.Context, id string) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]model.Player, error)

	// Places a new bid on a player. The bid must beat the player's current
	// highest active bid and expires after the configured bid window.
	PlaceBid(ctx context.Context, playerID string, teamID int32, amount int64) (*model.Bid, error)
	CancelBid(ctx context.Context, bidID string) error
	ListActiveBids(ctx context.Context) ([]model.Bid, error)
	ListBidsForPlayer(ctx context.Context, playerID string) ([]model.Bid, error)

	// Settles every expired bid group once. Safe to re-run; already
	// finalized bids are ignored.
	RunBidSettlement(ctx context.Context) (model.SettlementReport, error)
	RunPeriodicBidSettlement(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)

	GetUser(ctx context.Context, username string) (*model.User, error)
}

// StandingsCache is a read-side cache for computed standings snapshots. The
// cache is always advisory: a miss falls through to computation and a write
// failure is ignored.
type StandingsCache interface {
	Get(ctx context.Context, seasonID int32) ([]model.TeamStanding, bool)
	Set(ctx context.Context, seasonID int32, standings []model.TeamStanding)
	Invalidate(ctx context.Context, seasonID int32)
}

type controller struct {
	clock          clock.Clock
	db             db.DB
	feed           statsfeed.Client
	notifier       notify.Notifier
	standingsCache StandingsCache
	policy         StandingsPolicy
	bidWindow      time.Duration
}

func New(clock clock.Clock, db db.DB, feed statsfeed.Client, notifier notify.Notifier, cache StandingsCache, policy StandingsPolicy, bidWindow time.Duration) (C, error) {
	c := &controller{
		clock:          clock,
		db:             db,
		feed:           feed,
		notifier:       notifier,
		standingsCache: cache,
		policy:         policy,
		bidWindow:      bidWindow,
	}
	return c, nil
}

func (c *controller) GetUser(ctx context.Context, username string) (*model.User, error) {
	return c.db.GetUser(ctx, username)
}
