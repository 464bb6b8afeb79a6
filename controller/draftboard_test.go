package controller

import (
	"context"
	"testing"

	"github.com/xSunnyyy/VetoCity/testutils"
)

func TestGetDraftBoard(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()
	ctrl := newFixtureController(t, fakeSleeper)

	payload, err := ctrl.GetDraftBoard(context.Background())
	if err != nil {
		t.Fatalf("error getting draft board: %v", err)
	}

	if len(payload.Seasons) != 2 {
		t.Fatalf("expected 2 seasons, got: %d", len(payload.Seasons))
	}

	s2024 := payload.Seasons[0]
	if s2024.Season != "2024" {
		t.Fatalf("expected the newest season first, got: %s", s2024.Season)
	}
	// The league record names its draft directly.
	if s2024.DraftID != "d1111" || s2024.Rounds != 2 || s2024.Slots != 4 {
		t.Errorf("unexpected draft header: %+v", s2024)
	}
	if len(s2024.Picks) != 2 {
		t.Fatalf("expected 2 picks, got: %d", len(s2024.Picks))
	}
	first := s2024.Picks[0]
	if first.PickNo != 1 || first.PlayerName != "Tyreek Hill" || first.Position != "WR" {
		t.Errorf("unexpected first pick: %+v", first)
	}
	if first.Team.Name != "Alice Aces" {
		t.Errorf("unexpected drafting team: %q", first.Team.Name)
	}

	// The 2023 league record has no draft id; the board picks the larger of
	// the two listed drafts, ignoring the small mock one.
	s2023 := payload.Seasons[1]
	if s2023.DraftID != "d2222a" {
		t.Errorf("expected the real draft, got: %q", s2023.DraftID)
	}
	if len(s2023.Picks) != 1 || s2023.Picks[0].PlayerName != "Justin Jefferson" {
		t.Errorf("unexpected 2023 picks: %+v", s2023.Picks)
	}
	if s2023.Picks[0].Team.Name != "Alice Army" {
		t.Errorf("unexpected 2023 drafting team: %q", s2023.Picks[0].Team.Name)
	}
}
