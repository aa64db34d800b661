package db

import (
	"context"
	"time"

	"github.com/zjm/league_manager/model"
)

type DB interface {
	ListTeams(ctx context.Context) ([]model.Team, error)
	GetTeam(ctx context.Context, id int32) (*model.Team, error)
	AddTeam(ctx context.Context, t *model.Team) error
	GetConference(ctx context.Context, id int32) (*model.Conference, error)
	AddConference(ctx context.Context, c *model.Conference) error
	ListConferences(ctx context.Context) ([]model.Conference, error)

	// ListMatches returns the season's matches ordered by play time. An
	// empty status returns matches in every status.
	ListMatches(ctx context.Context, seasonID int32, status model.MatchStatus) ([]model.Match, error)
	GetMatch(ctx context.Context, id int32) (*model.Match, error)
	// SaveMatch inserts the match or updates it in place. A match that has
	// already completed is never overwritten by an upsert.
	SaveMatch(ctx context.Context, m *model.Match) error

	GetPlayer(ctx context.Context, id string) (*model.Player, error)
	SavePlayer(ctx context.Context, p *model.Player) error
	ListPlayers(ctx context.Context) ([]model.Player, error)

	GetBid(ctx context.Context, id string) (*model.Bid, error)
	AddBid(ctx context.Context, b *model.Bid) error
	CancelBid(ctx context.Context, id string) error
	ListBids(ctx context.Context, status model.BidStatus) ([]model.Bid, error)
	ListBidsForPlayer(ctx context.Context, playerID string) ([]model.Bid, error)
	ListActiveBidsForPlayer(ctx context.Context, playerID string) ([]model.Bid, error)
	ListExpiredActiveBids(ctx context.Context, now time.Time) ([]model.Bid, error)

	// CommitTransfer atomically finalizes the winning bid, assigns the
	// player to the winning team and marks the losing bids outbid. The
	// finalize update is conditional on the winning bid not being finalized
	// yet; a concurrent settlement run that loses the race gets
	// ErrBidAlreadyFinalized and must discard its result.
	CommitTransfer(ctx context.Context, r model.BidResolution) error

	GetUser(ctx context.Context, username string) (*model.User, error)
	AddUser(ctx context.Context, username string, role model.Role) error
}
