package model

import (
	"strings"
	"time"
)

type BidStatus string

const (
	BidActive    BidStatus = "active"
	BidOutbid    BidStatus = "outbid"
	BidCancelled BidStatus = "cancelled"
	BidFinalized BidStatus = "finalized"
)

func ParseBidStatus(s string) BidStatus {
	switch strings.ToLower(s) {
	case "active":
		return BidActive
	case "outbid":
		return BidOutbid
	case "cancelled":
		return BidCancelled
	case "finalized":
		return BidFinalized
	default:
		return ""
	}
}

// Bid is a single team's offer on a player. Amount is whole dollars.
type Bid struct {
	ID        string
	PlayerID  string
	TeamID    int32
	Amount    int64
	ExpiresAt time.Time
	Status    BidStatus
	Finalized bool
	Created   time.Time
}

// Expired reports whether the bid's auction window has passed.
func (b *Bid) Expired(now time.Time) bool {
	return !b.ExpiresAt.After(now)
}

// CanTransition reports whether a bid may move from its current status to
// next. outbid, cancelled and finalized are terminal; nothing leaves them.
func (b *Bid) CanTransition(next BidStatus) bool {
	if b.Status != BidActive {
		return false
	}
	switch next {
	case BidOutbid, BidCancelled, BidFinalized:
		return true
	default:
		return false
	}
}

// BidResolution is the outcome of settling one player's bid group.
type BidResolution struct {
	PlayerID      string
	WinningTeamID int32
	WinningBidID  string
	Amount        int64
	LosingBidIDs  []string
}

// SettlementReport aggregates one settlement pass. It is plain data so the
// caller can decide whether anything in it is worth alerting on.
type SettlementReport struct {
	Processed   int
	Resolutions []BidResolution
	Errors      []string
	Skipped     int
}
