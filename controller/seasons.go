package controller

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/xSunnyyy/VetoCity/sleeper"
)

// walkSeasonChain discovers the league's history, newest first, by following
// each season's previous-league pointer. Termination is guaranteed twice
// over: a seen-set stops the walk the moment an id repeats, and maxSeasons
// bounds the depth even if the upstream data somehow defeats the seen-set.
//
// A metadata failure on the seed league is fatal. A failure further down the
// chain means "no more history available" and truncates the walk there.
func (c *controller) walkSeasonChain(ctx context.Context) ([]sleeper.League, error) {
	seen := make(map[string]bool)
	chain := make([]sleeper.League, 0, c.maxSeasons)

	cur := c.leagueID
	for cur != "" && !seen[cur] && len(chain) < c.maxSeasons {
		seen[cur] = true

		l, err := c.sleeper.GetLeague(ctx, cur)
		if err != nil {
			if len(chain) == 0 {
				return nil, fmt.Errorf("error loading league %s: %w", cur, err)
			}
			c.log.Warn("season chain truncated",
				zap.String("league_id", cur),
				zap.Error(err))
			break
		}

		chain = append(chain, *l)
		cur = strings.TrimSpace(l.PreviousLeagueID)
	}

	return chain, nil
}
