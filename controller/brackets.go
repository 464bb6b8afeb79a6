package controller

import "github.com/xSunnyyy/VetoCity/sleeper"

// bracketWinnerRosterID determines the winner of an elimination bracket.
// Preference order: the row flagged as the final placement game (p == 1)
// with a resolved winner, otherwise the highest-round row with a resolved
// winner. Returns false when neither exists; never guesses.
func bracketWinnerRosterID(games []sleeper.BracketGame) (int, bool) {
	for _, g := range games {
		if g.Placement.Valid() && g.Placement.Int() == 1 && g.Winner.Valid() {
			return g.Winner.Int(), true
		}
	}

	best := 0
	found := false
	var winner int
	for _, g := range games {
		if !g.Round.Valid() || !g.Winner.Valid() {
			continue
		}
		if !found || g.Round.Int() > best {
			best = g.Round.Int()
			winner = g.Winner.Int()
			found = true
		}
	}
	return winner, found
}

// resolveChampion extends the bracket resolution with two league-level
// fallbacks: the settings winner field, then the "latest winner" metadata
// field some archived seasons carry.
func resolveChampion(league sleeper.League, winners []sleeper.BracketGame) (int, bool) {
	if rid, ok := bracketWinnerRosterID(winners); ok {
		return rid, true
	}
	if league.Settings.WinnerRosterID.Valid() {
		return league.Settings.WinnerRosterID.Int(), true
	}
	if league.Metadata.LatestLeagueWinnerRosterID.Valid() {
		return league.Metadata.LatestLeagueWinnerRosterID.Int(), true
	}
	return 0, false
}
