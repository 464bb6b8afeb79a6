package model

import "time"

// RecordTeam is the resolved display info for a roster appearing in a
// record-book row.
type RecordTeam struct {
	RosterID *int    `json:"rosterId"`
	TeamName string  `json:"teamName"`
	Avatar   *string `json:"avatar"`
}

// RecordEntry is a single leaderboard row. Week is zero for season-level
// records. Entries are pure projections of the data that produced them.
type RecordEntry struct {
	Season   string      `json:"season"`
	Week     int         `json:"week,omitempty"`
	Value    float64     `json:"value"`
	Label    string      `json:"label"`
	Team     RecordTeam  `json:"team"`
	Opponent *RecordTeam `json:"opponent,omitempty"`
	Note     string      `json:"note,omitempty"`
}

// WeekRange is the inclusive span of weeks a record scan covered.
type WeekRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// RecordLists holds the ten all-time top-10 leaderboards.
type RecordLists struct {
	HighestWeekScore  []RecordEntry `json:"highestWeekScore"`
	LowestWeekScore   []RecordEntry `json:"lowestWeekScore"`
	BiggestBlowout    []RecordEntry `json:"biggestBlowout"`
	ClosestWin        []RecordEntry `json:"closestWin"`
	HighestCombined   []RecordEntry `json:"highestCombined"`
	MostSeasonPF      []RecordEntry `json:"mostSeasonPF"`
	LeastSeasonPA     []RecordEntry `json:"leastSeasonPA"`
	MostSeasonPA      []RecordEntry `json:"mostSeasonPA"`
	BestSeasonRecord  []RecordEntry `json:"bestSeasonRecord"`
	WorstSeasonRecord []RecordEntry `json:"worstSeasonRecord"`
}

// RecordsPayload is the full record book for a league's history.
type RecordsPayload struct {
	LeagueID     string      `json:"leagueId"`
	SeasonsCount int         `json:"seasonsCount"`
	WeekRange    WeekRange   `json:"weekRange"`
	Lists        RecordLists `json:"lists"`
	FetchedAt    time.Time   `json:"fetchedAt"`
}
