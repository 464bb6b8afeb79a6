package controller

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/xSunnyyy/VetoCity/sleeper"
	"github.com/xSunnyyy/VetoCity/sleeper/mocksleeper"
)

func TestFetchSeasonBundle(t *testing.T) {
	mockSleeper := &mocksleeper.Client{}
	mockSleeper.On("GetUsers", "L1").Return([]sleeper.User{namedUser("u1", "One")}, nil)
	mockSleeper.On("GetRosters", "L1").Return([]sleeper.Roster{rosterLine(1, "u1", 0, 0, 0, 0, 0, 0, 0)}, nil)
	mockSleeper.On("GetMatchups", "L1", 1).Return([]sleeper.Matchup{scored(1, 1, 100)}, nil)
	mockSleeper.On("GetMatchups", "L1", 2).Return([]sleeper.Matchup{scored(1, 1, 110)}, nil)
	mockSleeper.On("GetWinnersBracket", "L1").Return([]sleeper.BracketGame{bracketRow(1, 1)}, nil)
	mockSleeper.On("GetLosersBracket", "L1").Return(nil, nil)

	c := &controller{sleeper: mockSleeper, log: zap.NewNop()}

	b, err := c.fetchSeasonBundle(context.Background(), sleeper.League{LeagueID: "L1"}, bundleRequest{
		matchupsFrom: 1,
		matchupsTo:   2,
		brackets:     true,
	})
	if err != nil {
		t.Fatalf("error fetching bundle: %v", err)
	}

	if len(b.users) != 1 || len(b.rosters) != 1 {
		t.Errorf("unexpected users/rosters: %d/%d", len(b.users), len(b.rosters))
	}
	if len(b.weeks) != 2 {
		t.Fatalf("expected 2 week slots, got: %d", len(b.weeks))
	}
	// Weeks stay in ascending order regardless of fetch completion order.
	if b.weeks[0].Week != 1 || b.weeks[1].Week != 2 {
		t.Errorf("week order broken: %d, %d", b.weeks[0].Week, b.weeks[1].Week)
	}
	if b.weeks[1].Entries[0].Points.Float() != 110 {
		t.Errorf("week 2 entries landed in the wrong slot: %+v", b.weeks[1].Entries)
	}
	if len(b.winners) != 1 {
		t.Errorf("expected 1 winners bracket row, got: %d", len(b.winners))
	}
	if len(b.txns) != 0 {
		t.Errorf("transactions were not requested, got: %d slots", len(b.txns))
	}

	mockSleeper.AssertNotCalled(t, "GetTransactions", "L1", 1)
}

func TestFetchSeasonBundle_leafFailuresAreEmpty(t *testing.T) {
	mockSleeper := &mocksleeper.Client{}
	mockSleeper.On("GetUsers", "L1").Return(nil, errors.New("upstream 500"))
	mockSleeper.On("GetRosters", "L1").Return([]sleeper.Roster{rosterLine(1, "u1", 0, 0, 0, 0, 0, 0, 0)}, nil)
	mockSleeper.On("GetMatchups", "L1", 1).Return(nil, errors.New("upstream 500"))
	mockSleeper.On("GetMatchups", "L1", 2).Return([]sleeper.Matchup{scored(1, 1, 90)}, nil)

	c := &controller{sleeper: mockSleeper, log: zap.NewNop()}

	b, err := c.fetchSeasonBundle(context.Background(), sleeper.League{LeagueID: "L1"}, bundleRequest{
		matchupsFrom: 1,
		matchupsTo:   2,
	})
	if err != nil {
		t.Fatalf("a leaf failure must not fail the bundle: %v", err)
	}

	if b.users != nil {
		t.Errorf("expected an empty users slot, got: %+v", b.users)
	}
	if len(b.weeks[0].Entries) != 0 {
		t.Errorf("expected an empty week 1, got: %+v", b.weeks[0].Entries)
	}
	if len(b.weeks[1].Entries) != 1 {
		t.Errorf("expected week 2 to fetch fine, got: %+v", b.weeks[1].Entries)
	}
	if len(b.rosters) != 1 {
		t.Errorf("expected rosters to fetch fine, got: %d", len(b.rosters))
	}
}

func TestFetchBundles_preservesChainOrder(t *testing.T) {
	mockSleeper := &mocksleeper.Client{}
	mockSleeper.On("GetLeague", "L1").Return(testLeague("L1", "2024", "L2"), nil)
	mockSleeper.On("GetLeague", "L2").Return(testLeague("L2", "2023", ""), nil)
	for _, id := range []string{"L1", "L2"} {
		mockSleeper.On("GetUsers", id).Return(nil, nil)
		mockSleeper.On("GetRosters", id).Return(nil, nil)
	}

	c := &controller{sleeper: mockSleeper, log: zap.NewNop(), leagueID: "L1", maxSeasons: defaultMaxSeasons}

	bundles, err := c.fetchBundles(context.Background(), bundleRequest{})
	if err != nil {
		t.Fatalf("error fetching bundles: %v", err)
	}
	if len(bundles) != 2 {
		t.Fatalf("expected 2 bundles, got: %d", len(bundles))
	}
	if bundles[0].league.Season != "2024" || bundles[1].league.Season != "2023" {
		t.Errorf("bundle order broken: %s, %s", bundles[0].league.Season, bundles[1].league.Season)
	}
}
