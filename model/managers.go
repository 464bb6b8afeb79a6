package model

import "time"

// ManagerCareer is one owner's all-time line across every season they
// fielded a roster. Totals only cover seasons the owner actually played.
type ManagerCareer struct {
	ManagerID   string  `json:"managerId"`
	ManagerName string  `json:"managerName"`
	Avatar      *string `json:"avatar"`

	Wins   int     `json:"wins"`
	Losses int     `json:"losses"`
	Ties   int     `json:"ties"`
	WinPct float64 `json:"winPct"`

	PointsFor     float64 `json:"pointsFor"`
	PointsAgainst float64 `json:"pointsAgainst"`
	PointsPerGame float64 `json:"pointsPerGame"`

	// LineupIQ is points scored as a percentage of the best possible
	// lineup's points.
	PossiblePoints float64 `json:"possiblePoints"`
	LineupIQ       float64 `json:"lineupIQ"`

	Trades  int `json:"trades"`
	Waivers int `json:"waivers"`
}

// ManagersPayload is the career table for every owner in league history.
type ManagersPayload struct {
	LeagueID      string          `json:"leagueId"`
	ManagersCount int             `json:"managersCount"`
	Rows          []ManagerCareer `json:"rows"`
	FetchedAt     time.Time       `json:"fetchedAt"`
}
