package controller

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/zjm/league_manager/db"
	"github.com/zjm/league_manager/db/mockdb"
	"github.com/zjm/league_manager/model"
)

func TestRecordMatchResult(t *testing.T) {
	tests := map[string]struct {
		match     *model.Match
		getErr    error
		home      int32
		away      int32
		wantErr   bool
		wantSaved bool
	}{
		"scheduled match": {
			match:     &model.Match{ID: 10, SeasonID: 1, HomeTeamID: 1, AwayTeamID: 2, Status: model.MatchScheduled},
			home:      3,
			away:      1,
			wantSaved: true,
		},
		"in progress match": {
			match:     &model.Match{ID: 10, SeasonID: 1, HomeTeamID: 1, AwayTeamID: 2, Status: model.MatchInProgress},
			home:      2,
			away:      2,
			wantSaved: true,
		},
		"already completed": {
			match:   &model.Match{ID: 10, SeasonID: 1, HomeTeamID: 1, AwayTeamID: 2, Status: model.MatchCompleted},
			home:    3,
			away:    1,
			wantErr: true,
		},
		"negative score": {
			home:    -1,
			away:    2,
			wantErr: true,
		},
		"match not found": {
			getErr:  db.ErrMatchNotFound,
			home:    3,
			away:    1,
			wantErr: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			mockDB := &mockdb.DB{}
			if tc.getErr != nil {
				mockDB.On("GetMatch", mock.Anything, int32(10)).Return(nil, tc.getErr)
			} else if tc.match != nil {
				mockDB.On("GetMatch", mock.Anything, int32(10)).Return(tc.match, nil)
			}
			if tc.wantSaved {
				mockDB.On("SaveMatch", mock.Anything, mock.Anything).Return(nil)
			}
			ctrl := newMockedController(t, mockDB)

			err := ctrl.RecordMatchResult(context.Background(), 10, tc.home, tc.away, false)
			if tc.wantErr != (err != nil) {
				t.Errorf("wanted error=%t, got: %v", tc.wantErr, err)
			}
			if tc.wantSaved {
				if tc.match.Status != model.MatchCompleted || tc.match.HomeScore != tc.home || tc.match.AwayScore != tc.away {
					t.Errorf("match was not completed as expected: %+v", tc.match)
				}
			} else {
				mockDB.AssertNotCalled(t, "SaveMatch", mock.Anything, mock.Anything)
			}
			mockDB.AssertExpectations(t)
		})
	}
}

func TestGetStandingsServedFromCache(t *testing.T) {
	cached := []model.TeamStanding{{TeamID: 1, TeamName: "Ice Hawks", Points: 8}}

	// No expectations on the mock: a cache hit must never touch the store.
	mockDB := &mockdb.DB{}
	cache := newFakeCache()
	cache.data[1] = cached

	ctrl, err := New(testDB.Clock, mockDB, nil, nil, cache, DefaultStandingsPolicy(), testBidWindow)
	if err != nil {
		t.Fatalf("error constructing controller: %v", err)
	}

	standings, err := ctrl.GetStandings(context.Background(), 1)
	if err != nil {
		t.Fatalf("error getting standings: %v", err)
	}
	if !reflect.DeepEqual(cached, standings) {
		t.Errorf("expected the cached snapshot, got %+v", standings)
	}
	mockDB.AssertNotCalled(t, "ListTeams", mock.Anything)
	mockDB.AssertNotCalled(t, "ListMatches", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetStandingsCacheMiss(t *testing.T) {
	teams := []model.Team{{ID: 1, Name: "Ice Hawks"}, {ID: 2, Name: "Bears"}}
	matches := []model.Match{
		{ID: 10, SeasonID: 1, HomeTeamID: 1, AwayTeamID: 2, HomeScore: 3, AwayScore: 1, Status: model.MatchCompleted},
	}

	mockDB := &mockdb.DB{}
	mockDB.On("ListTeams", mock.Anything).Return(teams, nil)
	mockDB.On("ListMatches", mock.Anything, int32(1), model.MatchCompleted).Return(matches, nil)

	cache := newFakeCache()
	ctrl, err := New(testDB.Clock, mockDB, nil, nil, cache, DefaultStandingsPolicy(), testBidWindow)
	if err != nil {
		t.Fatalf("error constructing controller: %v", err)
	}

	standings, err := ctrl.GetStandings(context.Background(), 1)
	if err != nil {
		t.Fatalf("error getting standings: %v", err)
	}
	if standings[0].TeamID != 1 || standings[0].Points != 2 {
		t.Errorf("standings were not as expected: %+v", standings)
	}
	if !reflect.DeepEqual(standings, cache.data[1]) {
		t.Error("expected the computed standings to be written to the cache")
	}
	mockDB.AssertExpectations(t)
}
