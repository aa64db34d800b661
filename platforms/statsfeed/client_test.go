package statsfeed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/zjm/league_manager/model"
)

const scheduleJSON = `{
	"season_id": 3,
	"matches": [
		{"id": 101, "home_team_id": 1, "away_team_id": 2, "start_time": "2026-01-10T19:00:00Z", "status": "scheduled"},
		{"id": 102, "home_team_id": 2, "away_team_id": 3, "start_time": "2026-01-11T19:00:00Z"},
		{"id": 103, "home_team_id": 4, "away_team_id": 4, "start_time": "2026-01-12T19:00:00Z", "status": "scheduled"},
		{"id": 0, "home_team_id": 1, "away_team_id": 3, "start_time": "2026-01-13T19:00:00Z", "status": "scheduled"},
		{"id": 104, "home_team_id": 3, "away_team_id": 1, "start_time": "not-a-time", "status": "scheduled"}
	]
}`

func TestLoadSchedule(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/seasons/3/schedule" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(scheduleJSON))
	}))
	defer server.Close()

	c := NewForTest(server.URL)
	matches, err := c.LoadSchedule(context.Background(), 3)
	if err != nil {
		t.Fatalf("error loading schedule: %v", err)
	}

	// The same-team, missing-id and bad-time rows are dropped.
	expected := []model.Match{
		{
			ID:         101,
			SeasonID:   3,
			HomeTeamID: 1,
			AwayTeamID: 2,
			Status:     model.MatchScheduled,
			PlayedAt:   time.Date(2026, 1, 10, 19, 0, 0, 0, time.UTC),
		},
		{
			ID:         102,
			SeasonID:   3,
			HomeTeamID: 2,
			AwayTeamID: 3,
			Status:     model.MatchScheduled,
			PlayedAt:   time.Date(2026, 1, 11, 19, 0, 0, 0, time.UTC),
		},
	}
	if !reflect.DeepEqual(expected, matches) {
		t.Errorf("matches were not as expected - actual: %v", matches)
	}
}

func TestLoadScheduleErrors(t *testing.T) {
	tests := map[string]struct {
		handler http.HandlerFunc
	}{
		"server error": {handler: func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		"bad json": {handler: func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"matches": `))
		}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			c := NewForTest(server.URL)
			if _, err := c.LoadSchedule(context.Background(), 3); err == nil {
				t.Error("expected an error, got nil instead")
			}
		})
	}
}
