package mocksleeper

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/xSunnyyy/VetoCity/sleeper"
)

type Client struct {
	mock.Mock
}

func (c *Client) GetLeague(ctx context.Context, leagueID string) (*sleeper.League, error) {
	args := c.Called(leagueID)

	var res *sleeper.League
	if args.Get(0) != nil {
		res = args.Get(0).(*sleeper.League)
	}

	return res, args.Error(1)
}

func (c *Client) GetUsers(ctx context.Context, leagueID string) ([]sleeper.User, error) {
	args := c.Called(leagueID)

	var res []sleeper.User
	if args.Get(0) != nil {
		res = args.Get(0).([]sleeper.User)
	}

	return res, args.Error(1)
}

func (c *Client) GetRosters(ctx context.Context, leagueID string) ([]sleeper.Roster, error) {
	args := c.Called(leagueID)

	var res []sleeper.Roster
	if args.Get(0) != nil {
		res = args.Get(0).([]sleeper.Roster)
	}

	return res, args.Error(1)
}

func (c *Client) GetMatchups(ctx context.Context, leagueID string, week int) ([]sleeper.Matchup, error) {
	args := c.Called(leagueID, week)

	var res []sleeper.Matchup
	if args.Get(0) != nil {
		res = args.Get(0).([]sleeper.Matchup)
	}

	return res, args.Error(1)
}

func (c *Client) GetTransactions(ctx context.Context, leagueID string, week int) ([]sleeper.Transaction, error) {
	args := c.Called(leagueID, week)

	var res []sleeper.Transaction
	if args.Get(0) != nil {
		res = args.Get(0).([]sleeper.Transaction)
	}

	return res, args.Error(1)
}

func (c *Client) GetWinnersBracket(ctx context.Context, leagueID string) ([]sleeper.BracketGame, error) {
	args := c.Called(leagueID)

	var res []sleeper.BracketGame
	if args.Get(0) != nil {
		res = args.Get(0).([]sleeper.BracketGame)
	}

	return res, args.Error(1)
}

func (c *Client) GetLosersBracket(ctx context.Context, leagueID string) ([]sleeper.BracketGame, error) {
	args := c.Called(leagueID)

	var res []sleeper.BracketGame
	if args.Get(0) != nil {
		res = args.Get(0).([]sleeper.BracketGame)
	}

	return res, args.Error(1)
}

func (c *Client) GetDrafts(ctx context.Context, leagueID string) ([]sleeper.Draft, error) {
	args := c.Called(leagueID)

	var res []sleeper.Draft
	if args.Get(0) != nil {
		res = args.Get(0).([]sleeper.Draft)
	}

	return res, args.Error(1)
}

func (c *Client) GetDraft(ctx context.Context, draftID string) (*sleeper.Draft, error) {
	args := c.Called(draftID)

	var res *sleeper.Draft
	if args.Get(0) != nil {
		res = args.Get(0).(*sleeper.Draft)
	}

	return res, args.Error(1)
}

func (c *Client) GetDraftPicks(ctx context.Context, draftID string) ([]sleeper.DraftPick, error) {
	args := c.Called(draftID)

	var res []sleeper.DraftPick
	if args.Get(0) != nil {
		res = args.Get(0).([]sleeper.DraftPick)
	}

	return res, args.Error(1)
}

func (c *Client) GetNFLState(ctx context.Context) (*sleeper.NFLState, error) {
	args := c.Called()

	var res *sleeper.NFLState
	if args.Get(0) != nil {
		res = args.Get(0).(*sleeper.NFLState)
	}

	return res, args.Error(1)
}
