package model

import "time"

// RivalrySide is one owner's half of a head-to-head game.
type RivalrySide struct {
	OwnerID string  `json:"ownerId"`
	Name    string  `json:"name"`
	Avatar  *string `json:"avatar"`
	Score   float64 `json:"score"`
}

// GameRow is a single historical meeting between the two owners.
type GameRow struct {
	Season    string      `json:"season"`
	Week      int         `json:"week"`
	MatchupID int         `json:"matchupId"`
	A         RivalrySide `json:"a"`
	B         RivalrySide `json:"b"`
}

// RivalrySummary totals the series from owner A's point of view. Ties are
// counted separately and never credited to either side.
type RivalrySummary struct {
	Games   int     `json:"games"`
	AWins   int     `json:"aWins"`
	BWins   int     `json:"bWins"`
	Ties    int     `json:"ties"`
	PointsA float64 `json:"pointsA"`
	PointsB float64 `json:"pointsB"`
	Diff    float64 `json:"diff"`
	AWinPct float64 `json:"aWinPct"`
	BWinPct float64 `json:"bWinPct"`
}

// RivalryPayload is the all-time series between two owners.
type RivalryPayload struct {
	LeagueID  string         `json:"leagueId"`
	OwnerA    string         `json:"ownerA"`
	OwnerB    string         `json:"ownerB"`
	Games     []GameRow      `json:"games"`
	Summary   RivalrySummary `json:"summary"`
	FetchedAt time.Time      `json:"fetchedAt"`
}
