package db

import (
	"context"
	"fmt"
	"testing"

	"github.com/zjm/league_manager/model"
)

func insertPlayer(t *testing.T, active bool) *model.Player {
	t.Helper()

	p := &model.Player{
		ID:        fmt.Sprintf("p%d", nextID()),
		FirstName: "Austin",
		LastName:  fmt.Sprintf("Reed%d", nextID()),
		Position:  "C",
		Active:    active,
	}
	if err := testDB.SavePlayer(context.Background(), p); err != nil {
		t.Fatalf("error saving player: %v", err)
	}
	return p
}

func TestPlayer_saveAndLoad(t *testing.T) {
	ctx := context.Background()
	p := insertPlayer(t, true)

	res, err := testDB.GetPlayer(ctx, p.ID)
	assertFatalf(t, err == nil, "error retrieving player: %v", err)
	assertEquals(t, "ID", p.ID, res.ID)
	assertEquals(t, "FirstName", p.FirstName, res.FirstName)
	assertEquals(t, "LastName", p.LastName, res.LastName)
	assertEquals(t, "Position", p.Position, res.Position)
	assertTrue(t, "free agent", res.TeamID == nil)
	assertEquals(t, "Salary", int64(0), res.Salary)
	assertEquals(t, "Active", true, res.Active)

	// Saving again with a team assignment updates the row in place.
	team := insertTeam(t, nil)
	p.TeamID = &team.ID
	p.Salary = 650000
	err = testDB.SavePlayer(ctx, p)
	assertFatalf(t, err == nil, "error updating player: %v", err)

	res, err = testDB.GetPlayer(ctx, p.ID)
	assertFatalf(t, err == nil, "error retrieving player: %v", err)
	assertFatalf(t, res.TeamID != nil, "expected the player to have a team")
	assertEquals(t, "TeamID", team.ID, *res.TeamID)
	assertEquals(t, "Salary", int64(650000), res.Salary)

	_, err = testDB.GetPlayer(ctx, "missing")
	assertError(t, "unknown player", ErrPlayerNotFound, err)
}

func TestPlayer_listOnlyActive(t *testing.T) {
	ctx := context.Background()
	active := insertPlayer(t, true)
	retired := insertPlayer(t, false)

	list, err := testDB.ListPlayers(ctx)
	assertFatalf(t, err == nil, "error listing players: %v", err)

	var foundActive, foundRetired bool
	for _, p := range list {
		if p.ID == active.ID {
			foundActive = true
		}
		if p.ID == retired.ID {
			foundRetired = true
		}
	}
	assertTrue(t, "active player listed", foundActive)
	assertTrue(t, "retired player not listed", !foundRetired)
}
