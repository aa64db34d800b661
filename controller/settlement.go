package controller

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/zjm/league_manager/model"
	"github.com/zjm/league_manager/notify"
)

// TransferCommitter atomically moves the player to the winning team and
// finalizes the winning bid group in the store. The store implementation is
// responsible for rejecting a commit whose winning bid was already finalized
// by a concurrent run, so a settlement pass never double-awards a player.
type TransferCommitter func(ctx context.Context, r model.BidResolution) error

// ResolveExpiredBids settles every player whose bids have passed their
// expiry. For each player the highest bid wins; ties go to the bid created
// first, then to the lowest bid id, so the outcome is deterministic for any
// input order.
//
// The commit collaborator is authoritative: if it fails, nothing for that
// player is considered settled and the whole group is retried on the next
// pass. Other players in the batch are unaffected. Notification failures are
// logged and swallowed, never rolled back against a committed transfer.
// Bids that are already finalized, not yet expired, or in a terminal status
// are filtered out up front, which makes re-running the settlement over the
// same data a no-op.
func ResolveExpiredBids(ctx context.Context, bids []model.Bid, now time.Time, commit TransferCommitter, notifier notify.Notifier) model.SettlementReport {
	report := model.SettlementReport{}

	// Group eligible bids by player, preserving the order players first
	// appear in the input so the settlement order is stable.
	groups := make(map[string][]model.Bid)
	playerOrder := make([]string, 0)
	for _, b := range bids {
		if b.PlayerID == "" || b.TeamID == 0 || b.Amount <= 0 {
			report.Skipped++
			continue
		}
		if b.Status != model.BidActive || b.Finalized || !b.Expired(now) {
			continue
		}
		if _, seen := groups[b.PlayerID]; !seen {
			playerOrder = append(playerOrder, b.PlayerID)
		}
		groups[b.PlayerID] = append(groups[b.PlayerID], b)
	}

	for _, playerID := range playerOrder {
		group := groups[playerID]
		winner := selectWinner(group)

		res := model.BidResolution{
			PlayerID:      playerID,
			WinningTeamID: winner.TeamID,
			WinningBidID:  winner.ID,
			Amount:        winner.Amount,
		}
		for _, b := range group {
			if b.ID != winner.ID {
				res.LosingBidIDs = append(res.LosingBidIDs, b.ID)
			}
		}

		if err := commit(ctx, res); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("player %s: %v", playerID, err))
			continue
		}

		report.Processed++
		report.Resolutions = append(report.Resolutions, res)

		notice := notify.NewTransferNotice(playerID, winner.TeamID, winner.Amount, now)
		if err := notifier.NotifyTransfer(ctx, notice); err != nil {
			log.Printf("error notifying transfer of player %s: %v", playerID, err)
		}
	}

	return report
}

// selectWinner picks the winning bid from a non-empty group: highest amount,
// then earliest creation time, then lowest bid id.
func selectWinner(group []model.Bid) model.Bid {
	winner := group[0]
	for _, b := range group[1:] {
		switch {
		case b.Amount > winner.Amount:
			winner = b
		case b.Amount == winner.Amount && b.Created.Before(winner.Created):
			winner = b
		case b.Amount == winner.Amount && b.Created.Equal(winner.Created) && b.ID < winner.ID:
			winner = b
		}
	}
	return winner
}

func (c *controller) RunBidSettlement(ctx context.Context) (model.SettlementReport, error) {
	now := c.clock.Now().UTC()

	bids, err := c.db.ListExpiredActiveBids(ctx, now)
	if err != nil {
		return model.SettlementReport{}, fmt.Errorf("error listing expired bids: %w", err)
	}

	report := ResolveExpiredBids(ctx, bids, now, c.db.CommitTransfer, c.notifier)
	if report.Skipped > 0 {
		log.Printf("bid settlement skipped %d malformed bids", report.Skipped)
	}

	return report, nil
}

func (c *controller) RunPeriodicBidSettlement(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	ticker := time.NewTicker(frequency)
	defer wg.Done()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			report, err := c.RunBidSettlement(ctx)
			if err != nil {
				log.Printf("%v", err)
				continue
			}
			if report.Processed > 0 || len(report.Errors) > 0 {
				log.Printf("bid settlement processed %d players, %d errors", report.Processed, len(report.Errors))
			}
		}
	}
}
