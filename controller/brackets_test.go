package controller

import (
	"testing"

	"github.com/xSunnyyy/VetoCity/sleeper"
)

func bracketRow(round, winner int) sleeper.BracketGame {
	return sleeper.BracketGame{
		Round:  sleeper.NewFlexInt(round),
		Winner: sleeper.NewFlexInt(winner),
	}
}

func placementRow(round, winner, placement int) sleeper.BracketGame {
	g := bracketRow(round, winner)
	g.Placement = sleeper.NewFlexInt(placement)
	return g
}

func TestBracketWinnerRosterID(t *testing.T) {
	tests := map[string]struct {
		games    []sleeper.BracketGame
		exRoster int
		exFound  bool
	}{
		"placement row wins": {
			games: []sleeper.BracketGame{
				bracketRow(1, 4),
				placementRow(2, 3, 3),
				placementRow(2, 7, 1),
			},
			exRoster: 7,
			exFound:  true,
		},
		"no placement falls back to highest round": {
			games: []sleeper.BracketGame{
				bracketRow(1, 4),
				bracketRow(2, 5),
				bracketRow(3, 2),
				bracketRow(2, 6),
			},
			exRoster: 2,
			exFound:  true,
		},
		"placement row without winner is skipped": {
			games: []sleeper.BracketGame{
				{Round: sleeper.NewFlexInt(2), Placement: sleeper.NewFlexInt(1)},
				bracketRow(1, 4),
			},
			exRoster: 4,
			exFound:  true,
		},
		"empty bracket": {
			games:   nil,
			exFound: false,
		},
		"nothing resolved": {
			games: []sleeper.BracketGame{
				{Round: sleeper.NewFlexInt(1)},
				{Round: sleeper.NewFlexInt(2)},
			},
			exFound: false,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			rid, found := bracketWinnerRosterID(tc.games)
			if found != tc.exFound {
				t.Fatalf("expected found=%t, got: %t", tc.exFound, found)
			}
			if found && rid != tc.exRoster {
				t.Errorf("expected roster %d, got: %d", tc.exRoster, rid)
			}
		})
	}
}

func TestResolveChampion(t *testing.T) {
	bracket := []sleeper.BracketGame{placementRow(3, 7, 1)}

	tests := map[string]struct {
		league   sleeper.League
		winners  []sleeper.BracketGame
		exRoster int
		exFound  bool
	}{
		"bracket first": {
			league: sleeper.League{
				Settings: sleeper.LeagueSettings{WinnerRosterID: sleeper.NewFlexInt(2)},
			},
			winners:  bracket,
			exRoster: 7,
			exFound:  true,
		},
		"settings winner fallback": {
			league: sleeper.League{
				Settings: sleeper.LeagueSettings{WinnerRosterID: sleeper.NewFlexInt(2)},
			},
			exRoster: 2,
			exFound:  true,
		},
		"metadata fallback": {
			league: sleeper.League{
				Metadata: sleeper.LeagueMetadata{LatestLeagueWinnerRosterID: sleeper.NewFlexInt(5)},
			},
			exRoster: 5,
			exFound:  true,
		},
		"unresolved": {
			league:  sleeper.League{},
			exFound: false,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			rid, found := resolveChampion(tc.league, tc.winners)
			if found != tc.exFound {
				t.Fatalf("expected found=%t, got: %t", tc.exFound, found)
			}
			if found && rid != tc.exRoster {
				t.Errorf("expected roster %d, got: %d", tc.exRoster, rid)
			}
		})
	}
}
