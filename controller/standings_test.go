package controller

import (
	"reflect"
	"testing"

	"github.com/zjm/league_manager/model"
)

var (
	east = &model.Conference{ID: 1, Name: "East", Color: "#00f"}
	west = &model.Conference{ID: 2, Name: "West", Color: "#f00"}

	standingsTeams = []model.Team{
		{ID: 1, Name: "Ice Hawks", Conference: east},
		{ID: 2, Name: "Bears", Conference: east},
		{ID: 3, Name: "Comets", Conference: west},
		{ID: 4, Name: "Drakes"},
	}
)

func completedMatch(home, away, homeScore, awayScore int32, overtime bool) model.Match {
	return model.Match{
		HomeTeamID: home,
		AwayTeamID: away,
		HomeScore:  homeScore,
		AwayScore:  awayScore,
		Overtime:   overtime,
		Status:     model.MatchCompleted,
	}
}

func TestComputeStandingsNoMatches(t *testing.T) {
	standings, skipped := ComputeStandings(standingsTeams, nil, DefaultStandingsPolicy())
	if skipped != 0 {
		t.Errorf("expected 0 skipped, got %d", skipped)
	}
	if len(standings) != len(standingsTeams) {
		t.Fatalf("expected %d rows, got %d", len(standingsTeams), len(standings))
	}

	// Every team appears with zero stats, in the original input order.
	for i, s := range standings {
		if s.TeamID != standingsTeams[i].ID {
			t.Errorf("row %d: expected team %d, got %d", i, standingsTeams[i].ID, s.TeamID)
		}
		if s.Wins != 0 || s.Losses != 0 || s.OTLosses != 0 || s.GamesPlayed != 0 ||
			s.Points != 0 || s.GoalsFor != 0 || s.GoalsAgainst != 0 || s.GoalDiff != 0 {
			t.Errorf("row %d: expected zero stats, got %+v", i, s)
		}
	}
}

func TestComputeStandingsBasic(t *testing.T) {
	matches := []model.Match{
		completedMatch(1, 2, 3, 1, false), // Ice Hawks beat Bears
		completedMatch(3, 1, 2, 2, false), // tie, both sides take an OTL
		completedMatch(2, 3, 1, 4, false), // Comets beat Bears
		completedMatch(4, 1, 2, 3, true),  // Ice Hawks win in OT, Drakes take an OTL
		{HomeTeamID: 2, AwayTeamID: 4, Status: model.MatchScheduled}, // not completed, ignored
	}

	standings, skipped := ComputeStandings(standingsTeams, matches, DefaultStandingsPolicy())
	if skipped != 0 {
		t.Errorf("expected 0 skipped, got %d", skipped)
	}

	expected := []model.TeamStanding{
		{TeamID: 1, TeamName: "Ice Hawks", Conference: east, Wins: 2, OTLosses: 1, GamesPlayed: 3, Points: 5, GoalsFor: 8, GoalsAgainst: 5, GoalDiff: 3},
		{TeamID: 3, TeamName: "Comets", Conference: west, Wins: 1, OTLosses: 1, GamesPlayed: 2, Points: 3, GoalsFor: 6, GoalsAgainst: 3, GoalDiff: 3},
		{TeamID: 4, TeamName: "Drakes", OTLosses: 1, GamesPlayed: 1, Points: 1, GoalsFor: 2, GoalsAgainst: 3, GoalDiff: -1},
		{TeamID: 2, TeamName: "Bears", Conference: east, Losses: 2, GamesPlayed: 2, GoalsFor: 2, GoalsAgainst: 7, GoalDiff: -5},
	}
	if !reflect.DeepEqual(expected, standings) {
		t.Errorf("standings were not as expected - actual: %+v", standings)
	}
}

// A 3-1 win plus a 2-2 tie with no overtime indicator leaves a team at one
// win and one overtime loss under the default policy.
func TestComputeStandingsWinAndTie(t *testing.T) {
	teams := []model.Team{{ID: 1, Name: "X"}, {ID: 2, Name: "Y"}, {ID: 3, Name: "Z"}}
	matches := []model.Match{
		completedMatch(1, 2, 3, 1, false),
		completedMatch(3, 1, 2, 2, false),
	}

	standings, _ := ComputeStandings(teams, matches, DefaultStandingsPolicy())

	x := standings[0]
	if x.TeamID != 1 {
		t.Fatalf("expected team 1 on top, got %d", x.TeamID)
	}
	expected := model.TeamStanding{
		TeamID: 1, TeamName: "X", Wins: 1, OTLosses: 1, GamesPlayed: 2,
		Points: 1*2 + 1, GoalsFor: 5, GoalsAgainst: 3, GoalDiff: 2,
	}
	if !reflect.DeepEqual(expected, x) {
		t.Errorf("standing was not as expected - actual: %+v", x)
	}
}

func TestComputeStandingsDrawRule(t *testing.T) {
	teams := []model.Team{{ID: 1, Name: "X"}, {ID: 2, Name: "Y"}}
	matches := []model.Match{completedMatch(1, 2, 2, 2, false)}

	policy := StandingsPolicy{PointsPerWin: 3, TieRule: TieRuleDraw}
	standings, _ := ComputeStandings(teams, matches, policy)

	for _, s := range standings {
		if s.Draws != 1 || s.OTLosses != 0 || s.Points != 1 || s.GamesPlayed != 1 {
			t.Errorf("team %d: expected a single 1-point draw, got %+v", s.TeamID, s)
		}
	}
}

func TestComputeStandingsPointsPerWin(t *testing.T) {
	teams := []model.Team{{ID: 1, Name: "X"}, {ID: 2, Name: "Y"}}
	matches := []model.Match{completedMatch(1, 2, 1, 0, false)}

	for _, ppw := range []int32{2, 3} {
		policy := StandingsPolicy{PointsPerWin: ppw, TieRule: TieRuleOvertimeLoss}
		standings, _ := ComputeStandings(teams, matches, policy)
		if standings[0].Points != ppw {
			t.Errorf("points per win %d: expected %d points, got %d", ppw, ppw, standings[0].Points)
		}
	}
}

func TestComputeStandingsSortStability(t *testing.T) {
	// Both teams end with identical points, wins, goal diff and goals for,
	// so they must keep their input order.
	teams := []model.Team{
		{ID: 10, Name: "First"},
		{ID: 20, Name: "Second"},
		{ID: 30, Name: "Filler A"},
		{ID: 40, Name: "Filler B"},
	}
	matches := []model.Match{
		completedMatch(10, 30, 2, 1, false),
		completedMatch(20, 40, 2, 1, false),
	}

	standings, _ := ComputeStandings(teams, matches, DefaultStandingsPolicy())
	if standings[0].TeamID != 10 || standings[1].TeamID != 20 {
		t.Errorf("tied teams did not keep input order: %d, %d", standings[0].TeamID, standings[1].TeamID)
	}
}

func TestComputeStandingsDeterministic(t *testing.T) {
	matches := []model.Match{
		completedMatch(1, 2, 3, 1, false),
		completedMatch(3, 1, 2, 2, false),
		completedMatch(2, 3, 1, 4, true),
	}

	first, _ := ComputeStandings(standingsTeams, matches, DefaultStandingsPolicy())
	second, _ := ComputeStandings(standingsTeams, matches, DefaultStandingsPolicy())
	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different standings")
	}
}

func TestComputeStandingsSkipsMalformed(t *testing.T) {
	matches := []model.Match{
		completedMatch(1, 1, 2, 2, false),  // same team on both sides
		completedMatch(1, 99, 4, 0, false), // 99 is unknown, only team 1 is credited
	}

	standings, skipped := ComputeStandings(standingsTeams, matches, DefaultStandingsPolicy())
	if skipped != 1 {
		t.Errorf("expected 1 skipped match, got %d", skipped)
	}

	if standings[0].TeamID != 1 || standings[0].Wins != 1 || standings[0].GoalsFor != 4 {
		t.Errorf("team 1 was not credited for the match against the unknown team: %+v", standings[0])
	}
	for _, s := range standings[1:] {
		if s.GamesPlayed != 0 {
			t.Errorf("team %d should have no games played: %+v", s.TeamID, s)
		}
	}
}

func TestComputeStandingsDuplicateTeam(t *testing.T) {
	teams := []model.Team{{ID: 1, Name: "X"}, {ID: 1, Name: "X again"}, {ID: 2, Name: "Y"}}
	standings, _ := ComputeStandings(teams, nil, DefaultStandingsPolicy())
	if len(standings) != 2 {
		t.Errorf("expected duplicate team id to be dropped, got %d rows", len(standings))
	}
}

func TestGroupByConference(t *testing.T) {
	matches := []model.Match{completedMatch(1, 3, 5, 0, false)}
	standings, _ := ComputeStandings(standingsTeams, matches, DefaultStandingsPolicy())

	grouped := GroupByConference(standings)
	if len(grouped) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(grouped))
	}

	if len(grouped["East"]) != 2 {
		t.Errorf("expected 2 teams in East, got %d", len(grouped["East"]))
	}
	if len(grouped["West"]) != 1 {
		t.Errorf("expected 1 team in West, got %d", len(grouped["West"]))
	}
	if len(grouped[model.NoConference]) != 1 {
		t.Errorf("expected 1 team in the %q bucket, got %d", model.NoConference, len(grouped[model.NoConference]))
	}

	total := 0
	for _, rows := range grouped {
		total += len(rows)
	}
	if total != len(standings) {
		t.Errorf("grouping dropped teams: %d != %d", total, len(standings))
	}
}
