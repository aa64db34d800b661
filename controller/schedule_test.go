package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/zjm/league_manager/db/mockdb"
	"github.com/zjm/league_manager/model"
	"github.com/zjm/league_manager/platforms/statsfeed"
	"github.com/zjm/league_manager/testutils"
)

func newScheduleController(t *testing.T, mockDB *mockdb.DB, feed statsfeed.Client) C {
	t.Helper()

	ctrl, err := New(testDB.Clock, mockDB, feed, &testutils.CaptureNotifier{}, newFakeCache(), DefaultStandingsPolicy(), testBidWindow)
	if err != nil {
		t.Fatalf("error constructing controller: %v", err)
	}
	return ctrl
}

func TestImportSchedule(t *testing.T) {
	fakeFeed := testutils.NewFakeFeedServer()
	defer fakeFeed.Close()

	saved := make([]int32, 0, 3)
	mockDB := &mockdb.DB{}
	mockDB.On("SaveMatch", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		m := args.Get(1).(*model.Match)
		saved = append(saved, m.ID)
	}).Return(nil)

	ctrl := newScheduleController(t, mockDB, statsfeed.NewForTest(fakeFeed.URL()))

	count, err := ctrl.ImportSchedule(context.Background(), 1)
	if err != nil {
		t.Fatalf("error importing schedule: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 matches imported, got %d", count)
	}

	expected := []int32{501, 502, 503}
	for i, id := range expected {
		if saved[i] != id {
			t.Errorf("expected match %d at position %d, got %d", id, i, saved[i])
		}
	}
}

func TestImportScheduleFeedDown(t *testing.T) {
	fakeFeed := testutils.NewFakeFeedServer()
	url := fakeFeed.URL()
	fakeFeed.Close()

	mockDB := &mockdb.DB{}
	ctrl := newScheduleController(t, mockDB, statsfeed.NewForTest(url))

	if _, err := ctrl.ImportSchedule(context.Background(), 1); err == nil {
		t.Error("expected an error when the feed is unreachable")
	}
	mockDB.AssertNotCalled(t, "SaveMatch", mock.Anything, mock.Anything)
}

func TestImportScheduleSaveFailure(t *testing.T) {
	fakeFeed := testutils.NewFakeFeedServer()
	defer fakeFeed.Close()

	mockDB := &mockdb.DB{}
	mockDB.On("SaveMatch", mock.Anything, mock.Anything).Return(errors.New("connection lost"))

	ctrl := newScheduleController(t, mockDB, statsfeed.NewForTest(fakeFeed.URL()))

	count, err := ctrl.ImportSchedule(context.Background(), 1)
	if err == nil {
		t.Error("expected the import to fail when the store does")
	}
	if count != 0 {
		t.Errorf("expected 0 matches imported, got %d", count)
	}
}
