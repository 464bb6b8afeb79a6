package model

import "time"

// TeamRef identifies a roster and the owner display info resolved for it.
// RosterID is nil when the underlying award or slot could not be resolved.
type TeamRef struct {
	RosterID *int    `json:"rosterId"`
	Name     string  `json:"name"`
	Avatar   *string `json:"avatar"`
}

// SeasonAwards holds the headline results for a single season of the league.
type SeasonAwards struct {
	Season     string `json:"season"`
	LeagueID   string `json:"leagueId"`
	LeagueName string `json:"leagueName"`
	Status     string `json:"status"`

	Champion      TeamRef `json:"champion"`
	RegularSeason TeamRef `json:"regSeason"`
	PointsLeader  TeamRef `json:"pointsLeader"`
	ToiletBowl    TeamRef `json:"toiletBowl"`
}

// AwardsPayload lists every season of the league, newest first.
type AwardsPayload struct {
	Seasons   []SeasonAwards `json:"seasons"`
	FetchedAt time.Time      `json:"fetchedAt"`
}

// StandingsTeam is one roster's season-to-date line in the standings.
type StandingsTeam struct {
	RosterID      int     `json:"rosterId"`
	Name          string  `json:"name"`
	Avatar        *string `json:"avatar"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties"`
	PointsFor     float64 `json:"pointsFor"`
	PointsAgainst float64 `json:"pointsAgainst"`
}

// MatchupSide is one roster's entry in a weekly game.
type MatchupSide struct {
	RosterID int     `json:"rosterId"`
	Name     string  `json:"name"`
	Avatar   *string `json:"avatar"`
	Points   float64 `json:"points"`
}

// MatchupGame is a single weekly pairing. Most formats pair exactly two
// rosters, but some put more than two entries under one matchup id.
type MatchupGame struct {
	MatchupID int           `json:"matchupId"`
	Entries   []MatchupSide `json:"entries"`
}

// WeekMatchups groups the games played in one week.
type WeekMatchups struct {
	Week  int           `json:"week"`
	Games []MatchupGame `json:"games"`
}

// StandingsPayload is the current-season standings bundle.
type StandingsPayload struct {
	LeagueID    string          `json:"leagueId"`
	LeagueName  string          `json:"leagueName"`
	Season      string          `json:"season"`
	CurrentWeek int             `json:"currentWeek"`
	Teams       []StandingsTeam `json:"teams"`
	Weeks       []WeekMatchups  `json:"weeks"`
	FetchedAt   time.Time       `json:"fetchedAt"`
}

// TradedPick labels a future draft pick exchanged in a trade. It is display
// data only and is never scored.
type TradedPick struct {
	Season        string `json:"season"`
	Round         int    `json:"round"`
	OriginalOwner int    `json:"originalOwner"`
	CurrentOwner  int    `json:"currentOwner"`
}

// TransactionSummary is a normalized league transaction.
type TransactionSummary struct {
	Type       string         `json:"type"`
	Status     string         `json:"status"`
	Week       int            `json:"week"`
	RosterIDs  []int          `json:"rosterIds"`
	Adds       map[string]int `json:"adds,omitempty"`
	Drops      map[string]int `json:"drops,omitempty"`
	DraftPicks []TradedPick   `json:"draftPicks,omitempty"`
}

// MatchupsPayload is the single-week bundle served to the matchups view:
// the requested week's games plus the season-to-date transaction log.
type MatchupsPayload struct {
	LeagueID     string               `json:"leagueId"`
	Week         int                  `json:"week"`
	MaxWeek      int                  `json:"maxWeek"`
	TxnWeek      int                  `json:"txnWeek"`
	Games        []MatchupGame        `json:"games"`
	Transactions []TransactionSummary `json:"transactions"`
	FetchedAt    time.Time            `json:"fetchedAt"`
}

// DraftPickRow is one selection on a season's draft board.
type DraftPickRow struct {
	Round      int     `json:"round"`
	PickNo     int     `json:"pickNo"`
	DraftSlot  int     `json:"draftSlot"`
	RosterID   int     `json:"rosterId"`
	PlayerID   string  `json:"playerId"`
	PlayerName string  `json:"playerName"`
	Position   string  `json:"position"`
	Team       TeamRef `json:"team"`
}

// SeasonDraft is one season's draft with its full pick list.
type SeasonDraft struct {
	Season     string         `json:"season"`
	LeagueID   string         `json:"leagueId"`
	LeagueName string         `json:"leagueName"`
	DraftID    string         `json:"draftId"`
	Rounds     int            `json:"rounds"`
	Slots      int            `json:"slots"`
	Picks      []DraftPickRow `json:"picks"`
}

// DraftBoardPayload covers every draft in the league's history, newest first.
type DraftBoardPayload struct {
	Seasons   []SeasonDraft `json:"seasons"`
	FetchedAt time.Time     `json:"fetchedAt"`
}
