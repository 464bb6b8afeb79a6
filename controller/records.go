package controller

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/xSunnyyy/VetoCity/model"
	"github.com/xSunnyyy/VetoCity/sleeper"
)

// The record book only scans the regular season; playoff weeks would skew
// the weekly lists toward the handful of teams still alive.
const (
	recordWeekMin = 1
	recordWeekMax = 14
)

func (c *controller) GetRecordBook(ctx context.Context) (*model.RecordsPayload, error) {
	key := fmt.Sprintf("records:%s:w%d-%d", c.leagueID, recordWeekMin, recordWeekMax)
	v, err := c.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		bundles, err := c.fetchBundles(ctx, bundleRequest{
			matchupsFrom: recordWeekMin,
			matchupsTo:   recordWeekMax,
		})
		if err != nil {
			return nil, err
		}

		payload := &model.RecordsPayload{
			LeagueID:     c.leagueID,
			SeasonsCount: len(bundles),
			WeekRange:    model.WeekRange{Min: recordWeekMin, Max: recordWeekMax},
			Lists:        compileRecordLists(bundles),
			FetchedAt:    c.clock.Now().UTC(),
		}
		return payload, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.RecordsPayload), nil
}

func compileRecordLists(bundles []*seasonBundle) model.RecordLists {
	var (
		highestWeekScore []model.RecordEntry
		lowestWeekScore  []model.RecordEntry
		biggestBlowout   []model.RecordEntry
		closestWin       []model.RecordEntry
		highestCombined  []model.RecordEntry

		mostSeasonPF      []model.RecordEntry
		leastSeasonPA     []model.RecordEntry
		mostSeasonPA      []model.RecordEntry
		bestSeasonRecord  []model.RecordEntry
		worstSeasonRecord []model.RecordEntry
	)

	for _, b := range bundles {
		id := buildIdentity(b.users, b.rosters)
		season := orDash(b.league.Season)

		for _, r := range b.rosters {
			if !r.RosterID.Valid() {
				continue
			}
			team := id.team(r.RosterID.Int())

			s := r.Settings
			wins, losses, ties := s.Wins.Int(), s.Losses.Int(), s.Ties.Int()
			pf := s.PointsFor()
			pa := s.PointsAgainst()
			recordNote := "Record: " + recordString(wins, losses, ties)

			mostSeasonPF = append(mostSeasonPF, model.RecordEntry{
				Season: season, Value: pf, Label: fmt.Sprintf("%.1f", pf), Team: team, Note: recordNote,
			})
			leastSeasonPA = append(leastSeasonPA, model.RecordEntry{
				Season: season, Value: pa, Label: fmt.Sprintf("%.1f", pa), Team: team, Note: recordNote,
			})
			mostSeasonPA = append(mostSeasonPA, model.RecordEntry{
				Season: season, Value: pa, Label: fmt.Sprintf("%.1f", pa), Team: team, Note: recordNote,
			})

			pct := winPct(wins, losses, ties)
			recordEntry := model.RecordEntry{
				Season: season,
				Value:  pct,
				Label:  recordString(wins, losses, ties),
				Team:   team,
				Note:   fmt.Sprintf("Win%% %.1f%%", pct*100),
			}
			bestSeasonRecord = append(bestSeasonRecord, recordEntry)
			worstSeasonRecord = append(worstSeasonRecord, recordEntry)
		}

		for _, wk := range b.weeks {
			for _, m := range wk.Entries {
				if !m.RosterID.Valid() || !m.Points.Valid() {
					continue
				}
				pts := m.Points.Float()
				entry := model.RecordEntry{
					Season: season,
					Week:   wk.Week,
					Value:  pts,
					Label:  fmt.Sprintf("%.2f", pts),
					Team:   id.team(m.RosterID.Int()),
				}
				highestWeekScore = append(highestWeekScore, entry)
				lowestWeekScore = append(lowestWeekScore, entry)
			}

			for _, game := range groupPairings(wk.Entries) {
				// The two highest-scoring entries in a pairing define the game.
				a, b2 := game.entries[0], game.entries[1]

				winner := id.team(a.rid)
				loser := id.team(b2.rid)
				combined := a.pts + b2.pts
				diff := math.Abs(a.pts - b2.pts)
				note := fmt.Sprintf("%.2f – %.2f", a.pts, b2.pts)

				highestCombined = append(highestCombined, model.RecordEntry{
					Season: season, Week: wk.Week, Value: combined,
					Label: fmt.Sprintf("%.2f", combined),
					Team:  winner, Opponent: &loser, Note: note,
				})
				biggestBlowout = append(biggestBlowout, model.RecordEntry{
					Season: season, Week: wk.Week, Value: diff,
					Label: fmt.Sprintf("%.2f", diff),
					Team:  winner, Opponent: &loser, Note: note,
				})
				// A true tie is not a win, so it never makes the closest-win list.
				if diff > 0 {
					closestWin = append(closestWin, model.RecordEntry{
						Season: season, Week: wk.Week, Value: diff,
						Label: fmt.Sprintf("%.2f", diff),
						Team:  winner, Opponent: &loser, Note: note,
					})
				}
			}
		}
	}

	return model.RecordLists{
		HighestWeekScore:  top10(highestWeekScore, descending),
		LowestWeekScore:   top10(lowestWeekScore, ascending),
		BiggestBlowout:    top10(biggestBlowout, descending),
		ClosestWin:        top10(closestWin, ascending),
		HighestCombined:   top10(highestCombined, descending),
		MostSeasonPF:      top10(mostSeasonPF, descending),
		LeastSeasonPA:     top10(leastSeasonPA, ascending),
		MostSeasonPA:      top10(mostSeasonPA, descending),
		BestSeasonRecord:  top10(bestSeasonRecord, descending),
		WorstSeasonRecord: top10(worstSeasonRecord, ascending),
	}
}

// pairingGame is one week's game: the pairing's entries sorted by score
// descending. The first two define the game for record purposes; rare
// formats can put more than two rosters under one pairing id.
type pairingGame struct {
	matchupID int
	entries   []scoredEntry
}

type scoredEntry struct {
	rid int
	pts float64
}

// groupPairings groups a week's matchup entries by pairing id and keeps the
// games with at least two scored entries. Output is ordered by pairing id so
// downstream lists are deterministic.
func groupPairings(entries []sleeper.Matchup) []pairingGame {
	byID := make(map[int][]scoredEntry)
	for _, m := range entries {
		if !m.MatchupID.Valid() || !m.RosterID.Valid() || !m.Points.Valid() {
			continue
		}
		mid := m.MatchupID.Int()
		byID[mid] = append(byID[mid], scoredEntry{rid: m.RosterID.Int(), pts: m.Points.Float()})
	}

	ids := make([]int, 0, len(byID))
	for mid := range byID {
		ids = append(ids, mid)
	}
	sort.Ints(ids)

	games := make([]pairingGame, 0, len(ids))
	for _, mid := range ids {
		rows := byID[mid]
		if len(rows) < 2 {
			continue
		}
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].pts > rows[j].pts })
		games = append(games, pairingGame{matchupID: mid, entries: rows})
	}
	return games
}

func descending(a, b model.RecordEntry) bool { return a.Value > b.Value }
func ascending(a, b model.RecordEntry) bool  { return a.Value < b.Value }

// top10 sorts a copy by the given order, keeping the original append order
// on ties, and truncates to ten rows.
func top10(entries []model.RecordEntry, less func(a, b model.RecordEntry) bool) []model.RecordEntry {
	out := make([]model.RecordEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	if len(out) > 10 {
		out = out[:10]
	}
	return out
}

func recordString(wins, losses, ties int) string {
	if ties > 0 {
		return fmt.Sprintf("%d-%d-%d", wins, losses, ties)
	}
	return fmt.Sprintf("%d-%d", wins, losses)
}

// winPct counts a tie as half a win.
func winPct(wins, losses, ties int) float64 {
	games := wins + losses + ties
	if games == 0 {
		return 0
	}
	return (float64(wins) + float64(ties)*0.5) / float64(games)
}
