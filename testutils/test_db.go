package testutils

import (
	"context"
	"log"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/zjm/league_manager/containers"
	"github.com/zjm/league_manager/db"
	"github.com/zjm/league_manager/model"
)

// SeasonID is the season every seeded match belongs to.
const SeasonID int32 = 1

var (
	EastConference = &model.Conference{ID: 1, Name: "East", Color: "#1d4ed8"}
	WestConference = &model.Conference{ID: 2, Name: "West", Color: "#b91c1c"}

	// Teams are seeded in this order, so their serial ids are stable.
	IceHawks = &model.Team{ID: 1, Name: "Aurora Ice Hawks", Conference: EastConference}
	Bears    = &model.Team{ID: 2, Name: "Boulder Bears", Conference: EastConference}
	Comets   = &model.Team{ID: 3, Name: "Cascade Comets", Conference: WestConference}
	Drakes   = &model.Team{ID: 4, Name: "Delta Drakes"}

	ReedID     = "p100"
	VasilyevID = "p200"
	OkaforID   = "p300"
)

type TestDB struct {
	container *containers.DBContainer
	DB        db.DB
	Clock     *clock.Mock
}

func NewTestDB() *TestDB {
	container := containers.NewDBContainer()

	clock := clock.NewMock()
	clock.Set(time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC))

	db, err := db.New(context.Background(), container.ConnectionString(), clock)
	if err != nil {
		log.Fatalf("error connecting to db in test container: %v", err)
	}

	if err := InsertTestData(db); err != nil {
		log.Fatalf("error populating db in test container: %v", err)
	}

	return &TestDB{
		container: container,
		DB:        db,
		Clock:     clock,
	}
}

func (db *TestDB) Shutdown() {
	db.container.Shutdown()
}

// InsertTestData seeds the conferences, teams, players and users that the
// integration tests rely on. Rows are inserted in a fixed order into a fresh
// database, so the serial ids above are deterministic.
func InsertTestData(d db.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, c := range []*model.Conference{EastConference, WestConference} {
		conf := &model.Conference{Name: c.Name, Color: c.Color}
		if err := d.AddConference(ctx, conf); err != nil {
			return err
		}
	}

	for _, t := range []*model.Team{IceHawks, Bears, Comets, Drakes} {
		team := &model.Team{Name: t.Name, LogoURL: t.LogoURL, Conference: t.Conference}
		if err := d.AddTeam(ctx, team); err != nil {
			return err
		}
	}

	players := []*model.Player{
		{ID: ReedID, FirstName: "Austin", LastName: "Reed", Position: "C", Active: true},
		{ID: VasilyevID, FirstName: "Dmitri", LastName: "Vasilyev", Position: "G", Active: true},
		{ID: OkaforID, FirstName: "Chuma", LastName: "Okafor", Position: "RW", Active: true},
	}
	for _, p := range players {
		if err := d.SavePlayer(ctx, p); err != nil {
			return err
		}
	}

	users := map[string]model.Role{
		"commissioner": model.RoleAdmin,
		"gm":           model.RoleManager,
		"fan":          model.RoleViewer,
	}
	for username, role := range users {
		if err := d.AddUser(ctx, username, role); err != nil {
			return err
		}
	}

	return nil
}
