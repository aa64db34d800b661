package notify

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
)

// TransferNotice is the message published when a bid is won. The Discord bot
// and any other downstream consumers read it off the queue; none of them are
// part of this process.
type TransferNotice struct {
	ID        string    `json:"id"`
	PlayerID  string    `json:"player_id"`
	TeamID    int32     `json:"team_id"`
	Amount    int64     `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

func NewTransferNotice(playerID string, teamID int32, amount int64, now time.Time) TransferNotice {
	return TransferNotice{
		ID:        uuid.NewString(),
		PlayerID:  playerID,
		TeamID:    teamID,
		Amount:    amount,
		Timestamp: now,
	}
}

// Notifier delivers settlement notifications. Delivery is best-effort: a
// failed notification must never affect an already-committed transfer, so
// callers log returned errors and move on.
type Notifier interface {
	NotifyTransfer(ctx context.Context, n TransferNotice) error
	Close() error
}

// LogNotifier is the fallback used when no message broker is configured.
type LogNotifier struct{}

func (LogNotifier) NotifyTransfer(_ context.Context, n TransferNotice) error {
	log.Printf("transfer: player %s to team %d for $%d", n.PlayerID, n.TeamID, n.Amount)
	return nil
}

func (LogNotifier) Close() error {
	return nil
}
