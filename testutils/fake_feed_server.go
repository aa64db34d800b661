package testutils

import (
	"fmt"
	"net/http"
	"net/http/httptest"
)

const feedScheduleResponse = `{
	"season_id": 1,
	"matches": [
		{"id": 501, "home_team_id": 1, "away_team_id": 2, "start_time": "2026-03-01T19:00:00Z", "status": "scheduled"},
		{"id": 502, "home_team_id": 3, "away_team_id": 4, "start_time": "2026-03-02T19:00:00Z", "status": "scheduled"},
		{"id": 503, "home_team_id": 2, "away_team_id": 3, "start_time": "2026-03-03T19:00:00Z", "status": "scheduled"}
	]
}`

// FakeFeedServer stands in for the league stats provider in tests.
type FakeFeedServer struct {
	server *httptest.Server
}

func NewFakeFeedServer() *FakeFeedServer {
	mux := http.NewServeMux()
	mux.HandleFunc("/v2/seasons/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, feedScheduleResponse)
	})

	return &FakeFeedServer{
		server: httptest.NewServer(mux),
	}
}

func (f *FakeFeedServer) URL() string {
	return f.server.URL
}

func (f *FakeFeedServer) Close() {
	f.server.Close()
}
