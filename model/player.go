package model

import "time"

// Player is a league player who can be assigned to a team and put under
// transfer bids. TeamID is nil for free agents.
type Player struct {
	ID        string
	FirstName string
	LastName  string
	Position  string
	TeamID    *int32
	Salary    int64
	Active    bool
	Created   time.Time
	Updated   time.Time
}

func (p *Player) FullName() string {
	return p.FirstName + " " + p.LastName
}

func (p *Player) FormattedCreatedTime() string {
	if p.Created.IsZero() {
		return "unknown"
	}
	return p.Created.Format(time.DateTime)
}
