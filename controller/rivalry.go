package controller

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/xSunnyyy/VetoCity/model"
)

func (c *controller) GetRivalry(ctx context.Context, ownerA, ownerB string) (*model.RivalryPayload, error) {
	ownerA = strings.TrimSpace(ownerA)
	ownerB = strings.TrimSpace(ownerB)
	if ownerA == "" || ownerB == "" {
		return nil, errors.New("both owner ids must be provided")
	}
	if ownerA == ownerB {
		return nil, errors.New("rivalry requires two different owners")
	}

	key := fmt.Sprintf("rivalry:%s:%s:%s", c.leagueID, ownerA, ownerB)
	v, err := c.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		bundles, err := c.fetchBundles(ctx, bundleRequest{
			matchupsFrom: 1,
			matchupsTo:   maxScanWeek,
		})
		if err != nil {
			return nil, err
		}

		games := compileRivalry(bundles, ownerA, ownerB)
		payload := &model.RivalryPayload{
			LeagueID:  c.leagueID,
			OwnerA:    ownerA,
			OwnerB:    ownerB,
			Games:     games,
			Summary:   summarizeRivalry(games),
			FetchedAt: c.clock.Now().UTC(),
		}
		return payload, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.RivalryPayload), nil
}

// compileRivalry replays every season's weeks and collects the pairings
// where one roster resolves to owner A and another to owner B. A season in
// which either owner has no roster contributes nothing; absence is not a
// forfeit. Display info prefers the newest season the owner appears in.
func compileRivalry(bundles []*seasonBundle, ownerA, ownerB string) []model.GameRow {
	canonical := make(map[string]ownerDisplay)
	for _, b := range bundles {
		id := buildIdentity(b.users, b.rosters)
		for ownerID, d := range id.displayByOwner {
			if _, ok := canonical[ownerID]; !ok {
				canonical[ownerID] = d
			}
		}
	}

	display := func(ownerID string) ownerDisplay {
		if d, ok := canonical[ownerID]; ok {
			return d
		}
		return ownerDisplay{Name: ownerID}
	}

	var out []model.GameRow
	for _, b := range bundles {
		id := buildIdentity(b.users, b.rosters)

		for _, wk := range b.weeks {
			for _, game := range groupPairings(wk.Entries) {
				var aScore, bScore float64
				var haveA, haveB bool
				for _, e := range game.entries {
					switch id.ownerByRoster[e.rid] {
					case ownerA:
						aScore, haveA = e.pts, true
					case ownerB:
						bScore, haveB = e.pts, true
					}
				}
				if !haveA || !haveB {
					continue
				}

				aDisp := display(ownerA)
				bDisp := display(ownerB)
				out = append(out, model.GameRow{
					Season:    orDash(b.league.Season),
					Week:      wk.Week,
					MatchupID: game.matchupID,
					A: model.RivalrySide{
						OwnerID: ownerA, Name: aDisp.Name, Avatar: aDisp.Avatar, Score: aScore,
					},
					B: model.RivalrySide{
						OwnerID: ownerB, Name: bDisp.Name, Avatar: bDisp.Avatar, Score: bScore,
					},
				})
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		si, sj := seasonYear(out[i].Season), seasonYear(out[j].Season)
		if si != sj {
			return si > sj
		}
		if out[i].Week != out[j].Week {
			return out[i].Week > out[j].Week
		}
		return out[i].MatchupID < out[j].MatchupID
	})

	return out
}

func summarizeRivalry(games []model.GameRow) model.RivalrySummary {
	s := model.RivalrySummary{Games: len(games)}

	for _, g := range games {
		s.PointsA += g.A.Score
		s.PointsB += g.B.Score
		switch {
		case g.A.Score > g.B.Score:
			s.AWins++
		case g.B.Score > g.A.Score:
			s.BWins++
		default:
			s.Ties++
		}
	}
	s.Diff = s.PointsA - s.PointsB

	// Win rate is over all games played, ties included in the denominator.
	if len(games) > 0 {
		s.AWinPct = float64(s.AWins) / float64(len(games))
		s.BWinPct = float64(s.BWins) / float64(len(games))
	}

	return s
}

func seasonYear(season string) int {
	n, err := strconv.Atoi(season)
	if err != nil {
		return 0
	}
	return n
}
