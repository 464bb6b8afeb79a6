package controller

import (
	"context"
	"fmt"
	"sort"

	"github.com/xSunnyyy/VetoCity/model"
	"github.com/xSunnyyy/VetoCity/sleeper"
)

func (c *controller) GetStandings(ctx context.Context) (*model.StandingsPayload, error) {
	v, err := c.cache.GetOrLoad(ctx, "standings:"+c.leagueID, func(ctx context.Context) (any, error) {
		league, err := c.sleeper.GetLeague(ctx, c.leagueID)
		if err != nil {
			return nil, fmt.Errorf("error loading league %s: %w", c.leagueID, err)
		}

		b, err := c.fetchSeasonBundle(ctx, *league, bundleRequest{
			matchupsFrom: 1,
			matchupsTo:   maxScanWeek,
		})
		if err != nil {
			return nil, err
		}

		id := buildIdentity(b.users, b.rosters)
		currentWeek := latestScoredWeek(b.weeks)

		weeks := make([]model.WeekMatchups, 0, currentWeek)
		for _, wk := range b.weeks {
			if wk.Week > currentWeek {
				break
			}
			weeks = append(weeks, model.WeekMatchups{
				Week:  wk.Week,
				Games: normalizeGames(wk.Entries, id),
			})
		}

		payload := &model.StandingsPayload{
			LeagueID:    league.LeagueID,
			LeagueName:  league.Name,
			Season:      league.Season,
			CurrentWeek: currentWeek,
			Teams:       standingsTable(b.rosters, id),
			Weeks:       weeks,
			FetchedAt:   c.clock.Now().UTC(),
		}
		return payload, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.StandingsPayload), nil
}

// latestScoredWeek is the last week with a real game in it: some roster
// posted a score inside an identified pairing. Probing scores, not the
// schedule, keeps this correct during the playoffs when most rosters sit
// idle.
func latestScoredWeek(weeks []weekOf[sleeper.Matchup]) int {
	latest := 1
	for _, wk := range weeks {
		for _, m := range wk.Entries {
			if m.MatchupID.Valid() && m.Points.Valid() && m.Points.Float() > 0 {
				latest = wk.Week
				break
			}
		}
	}
	return latest
}

func standingsTable(rosters []sleeper.Roster, id *identity) []model.StandingsTeam {
	teams := make([]model.StandingsTeam, 0, len(rosters))
	for _, r := range rosters {
		if !r.RosterID.Valid() {
			continue
		}
		t := id.team(r.RosterID.Int())
		s := r.Settings
		teams = append(teams, model.StandingsTeam{
			RosterID:      r.RosterID.Int(),
			Name:          t.TeamName,
			Avatar:        t.Avatar,
			Wins:          s.Wins.Int(),
			Losses:        s.Losses.Int(),
			Ties:          s.Ties.Int(),
			PointsFor:     s.PointsFor(),
			PointsAgainst: s.PointsAgainst(),
		})
	}

	sort.SliceStable(teams, func(i, j int) bool {
		a, b := teams[i], teams[j]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.Ties != b.Ties {
			return a.Ties > b.Ties
		}
		if a.PointsFor != b.PointsFor {
			return a.PointsFor > b.PointsFor
		}
		return a.Losses < b.Losses
	})

	return teams
}

// normalizeGames converts a week's raw matchup entries into resolved games,
// ordered by pairing id.
func normalizeGames(entries []sleeper.Matchup, id *identity) []model.MatchupGame {
	games := groupPairings(entries)
	out := make([]model.MatchupGame, 0, len(games))
	for _, g := range games {
		sides := make([]model.MatchupSide, 0, len(g.entries))
		for _, e := range g.entries {
			t := id.team(e.rid)
			sides = append(sides, model.MatchupSide{
				RosterID: e.rid,
				Name:     t.TeamName,
				Avatar:   t.Avatar,
				Points:   e.pts,
			})
		}
		out = append(out, model.MatchupGame{MatchupID: g.matchupID, Entries: sides})
	}
	return out
}
