package controller

import (
	"context"
	"sort"
	"strings"

	"github.com/xSunnyyy/VetoCity/model"
	"github.com/xSunnyyy/VetoCity/sleeper"
)

// The transaction scan covers every week a season can reach, not just the
// regular season; trades happen during the playoffs too.
const (
	txnWeekMin = 1
	txnWeekMax = maxScanWeek
)

func (c *controller) GetManagerCareers(ctx context.Context) (*model.ManagersPayload, error) {
	v, err := c.cache.GetOrLoad(ctx, "managers:"+c.leagueID, func(ctx context.Context) (any, error) {
		bundles, err := c.fetchBundles(ctx, bundleRequest{
			transactionsFrom: txnWeekMin,
			transactionsTo:   txnWeekMax,
		})
		if err != nil {
			return nil, err
		}

		rows := compileManagerCareers(bundles)
		payload := &model.ManagersPayload{
			LeagueID:      c.leagueID,
			ManagersCount: len(rows),
			Rows:          rows,
			FetchedAt:     c.clock.Now().UTC(),
		}
		return payload, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.ManagersPayload), nil
}

// careerTotals accumulates one owner's line across seasons. Only seasons in
// which the owner actually fielded a roster contribute; absence is not a
// string of losses.
type careerTotals struct {
	name   string
	avatar *string

	wins, losses, ties int

	pointsFor, pointsAgainst, possiblePoints float64

	trades, waivers int
}

func compileManagerCareers(bundles []*seasonBundle) []model.ManagerCareer {
	managers := make(map[string]*careerTotals)

	get := func(ownerID string) *careerTotals {
		m, ok := managers[ownerID]
		if !ok {
			m = &careerTotals{}
			managers[ownerID] = m
		}
		return m
	}

	for _, b := range bundles {
		id := buildIdentity(b.users, b.rosters)

		for _, r := range b.rosters {
			if !r.RosterID.Valid() {
				continue
			}
			ownerID := strings.TrimSpace(r.OwnerID)
			if ownerID == "" {
				// Orphaned roster: it displays fine per-season, but there is
				// no stable identity to accumulate a career under.
				continue
			}

			m := get(ownerID)

			// Bundles run newest to oldest, so the first real display info
			// seen is the most recent. Synthesized roster placeholders are
			// skipped so an older season's actual name can still win.
			if m.name == "" {
				if d, ok := id.displayByOwner[ownerID]; ok && d.Resolved {
					m.name = d.Name
					m.avatar = d.Avatar
				}
			}

			s := r.Settings
			m.wins += s.Wins.Int()
			m.losses += s.Losses.Int()
			m.ties += s.Ties.Int()
			m.pointsFor += s.PointsFor()
			m.pointsAgainst += s.PointsAgainst()
			m.possiblePoints += s.PossiblePoints()
		}

		for _, wk := range b.txns {
			for _, t := range wk.Entries {
				countTransaction(t, id, get)
			}
		}
	}

	rows := make([]model.ManagerCareer, 0, len(managers))
	for ownerID, m := range managers {
		games := m.wins + m.losses + m.ties

		ppg := 0.0
		if games > 0 {
			ppg = m.pointsFor / float64(games)
		}
		lineupIQ := 0.0
		if m.possiblePoints > 0 {
			lineupIQ = m.pointsFor / m.possiblePoints * 100
		}

		name := m.name
		if name == "" {
			name = "Manager " + ownerID
		}

		rows = append(rows, model.ManagerCareer{
			ManagerID:      ownerID,
			ManagerName:    name,
			Avatar:         m.avatar,
			Wins:           m.wins,
			Losses:         m.losses,
			Ties:           m.ties,
			WinPct:         winPct(m.wins, m.losses, m.ties),
			PointsFor:      m.pointsFor,
			PointsAgainst:  m.pointsAgainst,
			PointsPerGame:  ppg,
			PossiblePoints: m.possiblePoints,
			LineupIQ:       lineupIQ,
			Trades:         m.trades,
			Waivers:        m.waivers,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].ManagerName != rows[j].ManagerName {
			return rows[i].ManagerName < rows[j].ManagerName
		}
		return rows[i].ManagerID < rows[j].ManagerID
	})

	return rows
}

// countTransaction attributes a transaction to owner counters. A trade
// counts once per participating roster. Waivers and free-agent pickups also
// count per participant; when a transaction names no participant rosters at
// all, it is attributed to the roster receiving the added player with the
// lowest player id, so repeated scans agree on the same roster. That
// fallback is a heuristic inherited from the upstream data model and can
// misattribute multi-party moves; the upstream data doesn't specify
// anything better.
func countTransaction(t sleeper.Transaction, id *identity, get func(string) *careerTotals) {
	switch t.Type {
	case sleeper.TransactionTrade:
		for _, rid := range t.RosterIDs {
			if ownerID, ok := id.ownerByRoster[rid]; ok {
				get(ownerID).trades++
			}
		}
	case sleeper.TransactionWaiver, sleeper.TransactionFreeAgent:
		rosterIDs := t.RosterIDs
		if len(rosterIDs) == 0 && len(t.Adds) > 0 {
			players := make([]string, 0, len(t.Adds))
			for playerID := range t.Adds {
				players = append(players, playerID)
			}
			sort.Strings(players)
			rosterIDs = []int{t.Adds[players[0]]}
		}
		for _, rid := range rosterIDs {
			if ownerID, ok := id.ownerByRoster[rid]; ok {
				get(ownerID).waivers++
			}
		}
	}
}
