package model

import "time"

// Team is a club registered in the league. Conference is nil for teams that
// have not been placed into a conference yet.
type Team struct {
	ID         int32
	Name       string
	LogoURL    string
	Conference *Conference
	Created    time.Time
	Updated    time.Time
}

type Conference struct {
	ID    int32
	Name  string
	Color string
}

// ConferenceKey returns the grouping key used for conference standings.
// Teams without a conference all share the NoConference bucket.
func (t *Team) ConferenceKey() string {
	if t.Conference == nil {
		return NoConference
	}
	return t.Conference.Name
}

// NoConference is the synthetic bucket for teams without a conference
// assignment. Grouping never drops a team.
const NoConference = "No Conference"
