package sleeper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const SleeperURL = "https://api.sleeper.app"

// Client covers the read-only Sleeper endpoints the aggregation engine needs.
// Every call honors ctx cancellation so fan-outs can be abandoned early.
type Client interface {
	GetLeague(ctx context.Context, leagueID string) (*League, error)
	GetUsers(ctx context.Context, leagueID string) ([]User, error)
	GetRosters(ctx context.Context, leagueID string) ([]Roster, error)
	GetMatchups(ctx context.Context, leagueID string, week int) ([]Matchup, error)
	GetTransactions(ctx context.Context, leagueID string, week int) ([]Transaction, error)
	GetWinnersBracket(ctx context.Context, leagueID string) ([]BracketGame, error)
	GetLosersBracket(ctx context.Context, leagueID string) ([]BracketGame, error)
	GetDrafts(ctx context.Context, leagueID string) ([]Draft, error)
	GetDraft(ctx context.Context, draftID string) (*Draft, error)
	GetDraftPicks(ctx context.Context, draftID string) ([]DraftPick, error)
	GetNFLState(ctx context.Context) (*NFLState, error)
}

type client struct {
	url        string
	httpClient *http.Client
}

func New() (Client, error) {
	c := &client{
		url: SleeperURL,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
	}
	return c, nil
}

// NewForTest returns a client pointed at a fake server.
func NewForTest(url string) Client {
	return &client{
		url: url,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+path, nil)
	if err != nil {
		return fmt.Errorf("error creating http request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error parsing response from sleeper: %w", err)
	}
	return nil
}

func (c *client) GetLeague(ctx context.Context, leagueID string) (*League, error) {
	var l *League
	if err := c.get(ctx, fmt.Sprintf("/v1/league/%s", leagueID), &l); err != nil {
		return nil, err
	}
	// Sleeper returns a 200 with "null" for unknown league ids.
	if l == nil || l.LeagueID == "" {
		return nil, fmt.Errorf("league %s not found", leagueID)
	}
	return l, nil
}

func (c *client) GetUsers(ctx context.Context, leagueID string) ([]User, error) {
	var users []User
	if err := c.get(ctx, fmt.Sprintf("/v1/league/%s/users", leagueID), &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *client) GetRosters(ctx context.Context, leagueID string) ([]Roster, error) {
	var rosters []Roster
	if err := c.get(ctx, fmt.Sprintf("/v1/league/%s/rosters", leagueID), &rosters); err != nil {
		return nil, err
	}
	return rosters, nil
}

func (c *client) GetMatchups(ctx context.Context, leagueID string, week int) ([]Matchup, error) {
	var matchups []Matchup
	if err := c.get(ctx, fmt.Sprintf("/v1/league/%s/matchups/%d", leagueID, week), &matchups); err != nil {
		return nil, err
	}
	return matchups, nil
}

func (c *client) GetTransactions(ctx context.Context, leagueID string, week int) ([]Transaction, error) {
	var txns []Transaction
	if err := c.get(ctx, fmt.Sprintf("/v1/league/%s/transactions/%d", leagueID, week), &txns); err != nil {
		return nil, err
	}
	return txns, nil
}

func (c *client) GetWinnersBracket(ctx context.Context, leagueID string) ([]BracketGame, error) {
	var games []BracketGame
	if err := c.get(ctx, fmt.Sprintf("/v1/league/%s/winners_bracket", leagueID), &games); err != nil {
		return nil, err
	}
	return games, nil
}

func (c *client) GetLosersBracket(ctx context.Context, leagueID string) ([]BracketGame, error) {
	var games []BracketGame
	if err := c.get(ctx, fmt.Sprintf("/v1/league/%s/losers_bracket", leagueID), &games); err != nil {
		return nil, err
	}
	return games, nil
}

func (c *client) GetDrafts(ctx context.Context, leagueID string) ([]Draft, error) {
	var drafts []Draft
	if err := c.get(ctx, fmt.Sprintf("/v1/league/%s/drafts", leagueID), &drafts); err != nil {
		return nil, err
	}
	return drafts, nil
}

func (c *client) GetDraft(ctx context.Context, draftID string) (*Draft, error) {
	var d *Draft
	if err := c.get(ctx, fmt.Sprintf("/v1/draft/%s", draftID), &d); err != nil {
		return nil, err
	}
	if d == nil || d.DraftID == "" {
		return nil, fmt.Errorf("draft %s not found", draftID)
	}
	return d, nil
}

func (c *client) GetDraftPicks(ctx context.Context, draftID string) ([]DraftPick, error) {
	var picks []DraftPick
	if err := c.get(ctx, fmt.Sprintf("/v1/draft/%s/picks", draftID), &picks); err != nil {
		return nil, err
	}
	return picks, nil
}

func (c *client) GetNFLState(ctx context.Context) (*NFLState, error) {
	var state *NFLState
	if err := c.get(ctx, "/v1/state/nfl", &state); err != nil {
		return nil, err
	}
	if state == nil {
		return nil, fmt.Errorf("empty nfl state response")
	}
	return state, nil
}
