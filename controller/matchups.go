package controller

import (
	"context"
	"fmt"

	"github.com/xSunnyyy/VetoCity/model"
	"github.com/xSunnyyy/VetoCity/sleeper"
)

// GetWeekMatchups serves one week's games plus the season-to-date transaction
// log. A week of zero or less means "the current NFL week".
func (c *controller) GetWeekMatchups(ctx context.Context, week int) (*model.MatchupsPayload, error) {
	key := fmt.Sprintf("matchups:%s:w%d", c.leagueID, week)
	v, err := c.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		league, err := c.sleeper.GetLeague(ctx, c.leagueID)
		if err != nil {
			return nil, fmt.Errorf("error loading league %s: %w", c.leagueID, err)
		}

		if week <= 0 {
			week = c.currentNFLWeek(ctx)
		}

		// Allow browsing past the regular season even when settings.leg is
		// shorter.
		maxWeek := maxScanWeek
		if leg := league.Settings.Leg.Int(); leg > maxWeek {
			maxWeek = leg
		}
		w := clamp(week, 1, maxWeek)

		b, err := c.fetchSeasonBundle(ctx, *league, bundleRequest{
			matchupsFrom:     w,
			matchupsTo:       w,
			transactionsFrom: 1,
			transactionsTo:   maxScanWeek,
		})
		if err != nil {
			return nil, err
		}

		id := buildIdentity(b.users, b.rosters)

		txnWeek := 1
		var transactions []model.TransactionSummary
		for _, wk := range b.txns {
			if len(wk.Entries) > 0 {
				txnWeek = wk.Week
			}
			for _, t := range wk.Entries {
				transactions = append(transactions, normalizeTransaction(t, wk.Week))
			}
		}

		var games []model.MatchupGame
		if len(b.weeks) > 0 {
			games = normalizeGames(b.weeks[0].Entries, id)
		}

		payload := &model.MatchupsPayload{
			LeagueID:     league.LeagueID,
			Week:         w,
			MaxWeek:      maxWeek,
			TxnWeek:      txnWeek,
			Games:        games,
			Transactions: transactions,
			FetchedAt:    c.clock.Now().UTC(),
		}
		return payload, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.MatchupsPayload), nil
}

// currentNFLWeek asks the state endpoint what week it is; a failure falls
// back to week 1 rather than failing the whole request.
func (c *controller) currentNFLWeek(ctx context.Context) int {
	state, err := c.sleeper.GetNFLState(ctx)
	if err != nil {
		c.warnFetch(ctx, "nfl_state", c.leagueID, err)
		return 1
	}
	if !state.Week.Valid() || state.Week.Int() < 1 {
		return 1
	}
	return state.Week.Int()
}

func normalizeTransaction(t sleeper.Transaction, week int) model.TransactionSummary {
	picks := make([]model.TradedPick, 0, len(t.DraftPicks))
	for _, p := range t.DraftPicks {
		picks = append(picks, model.TradedPick{
			Season:        p.Season,
			Round:         p.Round.Int(),
			OriginalOwner: p.RosterID.Int(),
			CurrentOwner:  p.OwnerID.Int(),
		})
	}

	return model.TransactionSummary{
		Type:       t.Type,
		Status:     t.Status,
		Week:       week,
		RosterIDs:  t.RosterIDs,
		Adds:       t.Adds,
		Drops:      t.Drops,
		DraftPicks: picks,
	}
}

func clamp(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}
