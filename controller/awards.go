package controller

import (
	"context"
	"sort"

	"github.com/xSunnyyy/VetoCity/model"
	"github.com/xSunnyyy/VetoCity/sleeper"
)

func (c *controller) GetSeasonAwards(ctx context.Context) (*model.AwardsPayload, error) {
	v, err := c.cache.GetOrLoad(ctx, "awards:"+c.leagueID, func(ctx context.Context) (any, error) {
		bundles, err := c.fetchBundles(ctx, bundleRequest{brackets: true})
		if err != nil {
			return nil, err
		}

		payload := &model.AwardsPayload{
			Seasons:   compileSeasonAwards(bundles),
			FetchedAt: c.clock.Now().UTC(),
		}
		return payload, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.AwardsPayload), nil
}

func compileSeasonAwards(bundles []*seasonBundle) []model.SeasonAwards {
	seasons := make([]model.SeasonAwards, 0, len(bundles))

	for _, b := range bundles {
		id := buildIdentity(b.users, b.rosters)

		var champRid *int
		if rid, ok := resolveChampion(b.league, b.winners); ok {
			champRid = intPtr(rid)
		}

		var toiletRid *int
		if rid, ok := bracketWinnerRosterID(b.losers); ok {
			toiletRid = intPtr(rid)
		}

		seasons = append(seasons, model.SeasonAwards{
			Season:        orDash(b.league.Season),
			LeagueID:      b.league.LeagueID,
			LeagueName:    b.league.Name,
			Status:        b.league.Status,
			Champion:      id.teamRef(champRid),
			RegularSeason: id.teamRef(regularSeasonChampion(b.rosters)),
			PointsLeader:  id.teamRef(pointsLeader(b.rosters)),
			ToiletBowl:    id.teamRef(toiletRid),
		})
	}

	return seasons
}

// regularSeasonChampion is the roster with the best regular-season record:
// wins desc, then ties desc, then points-for desc, then losses asc.
func regularSeasonChampion(rosters []sleeper.Roster) *int {
	ranked := validRosters(rosters)
	if len(ranked) == 0 {
		return nil
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i].Settings, ranked[j].Settings
		if a.Wins.Int() != b.Wins.Int() {
			return a.Wins.Int() > b.Wins.Int()
		}
		if a.Ties.Int() != b.Ties.Int() {
			return a.Ties.Int() > b.Ties.Int()
		}
		if a.PointsFor() != b.PointsFor() {
			return a.PointsFor() > b.PointsFor()
		}
		return a.Losses.Int() < b.Losses.Int()
	})

	return intPtr(ranked[0].RosterID.Int())
}

// pointsLeader is the roster with the highest reconstructed season
// points-for.
func pointsLeader(rosters []sleeper.Roster) *int {
	ranked := validRosters(rosters)
	if len(ranked) == 0 {
		return nil
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Settings.PointsFor() > ranked[j].Settings.PointsFor()
	})

	return intPtr(ranked[0].RosterID.Int())
}

func validRosters(rosters []sleeper.Roster) []sleeper.Roster {
	out := make([]sleeper.Roster, 0, len(rosters))
	for _, r := range rosters {
		if r.RosterID.Valid() {
			out = append(out, r)
		}
	}
	return out
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
