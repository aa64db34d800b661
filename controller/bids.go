package controller

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/zjm/league_manager/model"
)

func (c *controller) PlaceBid(ctx context.Context, playerID string, teamID int32, amount int64) (*model.Bid, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("error bid amount must be positive, got %d", amount)
	}

	if _, err := c.db.GetPlayer(ctx, playerID); err != nil {
		return nil, fmt.Errorf("error looking up player %s: %w", playerID, err)
	}
	if _, err := c.db.GetTeam(ctx, teamID); err != nil {
		return nil, fmt.Errorf("error looking up team %d: %w", teamID, err)
	}

	// A new bid has to beat the player's current highest active bid.
	// Uniqueness of the winner is still enforced at settlement time, this is
	// only a usability guard.
	existing, err := c.db.ListActiveBidsForPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("error listing active bids for player %s: %w", playerID, err)
	}
	for _, b := range existing {
		if amount <= b.Amount {
			return nil, fmt.Errorf("error bid of $%d does not beat the current high bid of $%d", amount, b.Amount)
		}
	}

	now := c.clock.Now().UTC()
	bid := &model.Bid{
		ID:        uuid.NewString(),
		PlayerID:  playerID,
		TeamID:    teamID,
		Amount:    amount,
		ExpiresAt: now.Add(c.bidWindow),
		Status:    model.BidActive,
		Created:   now,
	}

	if err := c.db.AddBid(ctx, bid); err != nil {
		return nil, fmt.Errorf("error saving bid: %w", err)
	}

	return bid, nil
}

func (c *controller) CancelBid(ctx context.Context, bidID string) error {
	b, err := c.db.GetBid(ctx, bidID)
	if err != nil {
		return err
	}

	if !b.CanTransition(model.BidCancelled) {
		return fmt.Errorf("error bid %s cannot be cancelled from status %s", bidID, b.Status)
	}

	return c.db.CancelBid(ctx, bidID)
}

func (c *controller) ListActiveBids(ctx context.Context) ([]model.Bid, error) {
	return c.db.ListBids(ctx, model.BidActive)
}

func (c *controller) ListBidsForPlayer(ctx context.Context, playerID string) ([]model.Bid, error) {
	return c.db.ListBidsForPlayer(ctx, playerID)
}
