package controller

import (
	"context"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/xSunnyyy/VetoCity/sleeper"
)

const (
	// weeklyFetchLimit bounds the concurrent per-week fetches within one season.
	weeklyFetchLimit = 8
	// maxScanWeek is the last week any NFL fantasy season can reach.
	maxScanWeek = 18
)

// weekOf pairs a week number with whatever that week's fetch produced.
type weekOf[T any] struct {
	Week    int
	Entries []T
}

// seasonBundle is one season's fetched data, normalized to "empty on
// failure" for every leaf. Weeks are ordered ascending.
type seasonBundle struct {
	league  sleeper.League
	users   []sleeper.User
	rosters []sleeper.Roster
	weeks   []weekOf[sleeper.Matchup]
	txns    []weekOf[sleeper.Transaction]
	winners []sleeper.BracketGame
	losers  []sleeper.BracketGame
}

// bundleRequest selects which sub-fetches a consumer needs. A zero week
// range skips that fetch family entirely.
type bundleRequest struct {
	matchupsFrom, matchupsTo         int
	transactionsFrom, transactionsTo int
	brackets                         bool
}

// fetchSeasonBundle retrieves one season's data with a bounded fan-out.
// Every leaf fetch is independently fault-tolerant: a failure is logged and
// the slot stays empty rather than failing the season. The only error
// returned is context cancellation.
func (c *controller) fetchSeasonBundle(ctx context.Context, league sleeper.League, req bundleRequest) (*seasonBundle, error) {
	b := &seasonBundle{league: league}

	if req.matchupsFrom > 0 {
		b.weeks = make([]weekOf[sleeper.Matchup], 0, req.matchupsTo-req.matchupsFrom+1)
		for w := req.matchupsFrom; w <= req.matchupsTo; w++ {
			b.weeks = append(b.weeks, weekOf[sleeper.Matchup]{Week: w})
		}
	}
	if req.transactionsFrom > 0 {
		b.txns = make([]weekOf[sleeper.Transaction], 0, req.transactionsTo-req.transactionsFrom+1)
		for w := req.transactionsFrom; w <= req.transactionsTo; w++ {
			b.txns = append(b.txns, weekOf[sleeper.Transaction]{Week: w})
		}
	}

	p := pool.New().WithContext(ctx).WithMaxGoroutines(weeklyFetchLimit)

	p.Go(func(ctx context.Context) error {
		users, err := c.sleeper.GetUsers(ctx, league.LeagueID)
		if err != nil {
			c.warnFetch(ctx, "users", league.LeagueID, err)
			return nil
		}
		b.users = users
		return nil
	})

	p.Go(func(ctx context.Context) error {
		rosters, err := c.sleeper.GetRosters(ctx, league.LeagueID)
		if err != nil {
			c.warnFetch(ctx, "rosters", league.LeagueID, err)
			return nil
		}
		b.rosters = rosters
		return nil
	})

	if req.brackets {
		p.Go(func(ctx context.Context) error {
			games, err := c.sleeper.GetWinnersBracket(ctx, league.LeagueID)
			if err != nil {
				c.warnFetch(ctx, "winners_bracket", league.LeagueID, err)
				return nil
			}
			b.winners = games
			return nil
		})
		p.Go(func(ctx context.Context) error {
			games, err := c.sleeper.GetLosersBracket(ctx, league.LeagueID)
			if err != nil {
				c.warnFetch(ctx, "losers_bracket", league.LeagueID, err)
				return nil
			}
			b.losers = games
			return nil
		})
	}

	// Each goroutine owns exactly one slot, so no locking is needed.
	for i := range b.weeks {
		i := i
		p.Go(func(ctx context.Context) error {
			entries, err := c.sleeper.GetMatchups(ctx, league.LeagueID, b.weeks[i].Week)
			if err != nil {
				c.warnFetch(ctx, "matchups", league.LeagueID, err)
				return nil
			}
			b.weeks[i].Entries = entries
			return nil
		})
	}
	for i := range b.txns {
		i := i
		p.Go(func(ctx context.Context) error {
			entries, err := c.sleeper.GetTransactions(ctx, league.LeagueID, b.txns[i].Week)
			if err != nil {
				c.warnFetch(ctx, "transactions", league.LeagueID, err)
				return nil
			}
			b.txns[i].Entries = entries
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return nil, err
	}
	return b, nil
}

// fetchBundles walks the chain and fetches every season in parallel,
// preserving chain order (newest first) in the result.
func (c *controller) fetchBundles(ctx context.Context, req bundleRequest) ([]*seasonBundle, error) {
	chain, err := c.walkSeasonChain(ctx)
	if err != nil {
		return nil, err
	}

	bundles := make([]*seasonBundle, len(chain))
	p := pool.New().WithContext(ctx)
	for i, league := range chain {
		i, league := i, league
		p.Go(func(ctx context.Context) error {
			b, err := c.fetchSeasonBundle(ctx, league, req)
			if err != nil {
				return err
			}
			bundles[i] = b
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return bundles, nil
}

func (c *controller) warnFetch(ctx context.Context, kind, leagueID string, err error) {
	// Cancellation isn't a data problem, don't report it as one.
	if ctx.Err() != nil {
		return
	}
	c.log.Warn("substituting empty result for failed fetch",
		zap.String("kind", kind),
		zap.String("league_id", leagueID),
		zap.Error(err))
}
