package sleeper

import (
	"strconv"
	"strings"
)

// Sleeper is loose about types: the same field can arrive as a number, a
// numeric string, or null depending on the league's age and settings.
// FlexInt and FlexFloat absorb all three and report validity instead of
// failing the decode. A value of any other shape decodes as invalid.

type FlexInt struct {
	value int
	valid bool
}

func NewFlexInt(n int) FlexInt {
	return FlexInt{value: n, valid: true}
}

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		*f = FlexInt{}
		return nil
	}
	s = strings.Trim(s, `"`)
	n, err := strconv.Atoi(s)
	if err != nil {
		// Occasionally a whole-number field arrives as "3.0".
		fl, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			*f = FlexInt{}
			return nil
		}
		n = int(fl)
	}
	*f = FlexInt{value: n, valid: true}
	return nil
}

func (f FlexInt) Int() int {
	return f.value
}

func (f FlexInt) Valid() bool {
	return f.valid
}

type FlexFloat struct {
	value float64
	valid bool
}

func NewFlexFloat(v float64) FlexFloat {
	return FlexFloat{value: v, valid: true}
}

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		*f = FlexFloat{}
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = FlexFloat{}
		return nil
	}
	*f = FlexFloat{value: v, valid: true}
	return nil
}

func (f FlexFloat) Float() float64 {
	return f.value
}

func (f FlexFloat) Valid() bool {
	return f.valid
}

type League struct {
	LeagueID         string         `json:"league_id"`
	Name             string         `json:"name"`
	Season           string         `json:"season"`
	Status           string         `json:"status"`
	PreviousLeagueID string         `json:"previous_league_id"`
	DraftID          string         `json:"draft_id"`
	Settings         LeagueSettings `json:"settings"`
	Metadata         LeagueMetadata `json:"metadata"`
}

type LeagueSettings struct {
	// Leg is the regular-season length, usually 14.
	Leg              FlexInt `json:"leg"`
	PlayoffWeekStart FlexInt `json:"playoff_week_start"`
	WinnerRosterID   FlexInt `json:"winner_roster_id"`
}

type LeagueMetadata struct {
	LatestLeagueWinnerRosterID FlexInt `json:"latest_league_winner_roster_id"`
}

type User struct {
	UserID      string       `json:"user_id"`
	DisplayName string       `json:"display_name"`
	Username    string       `json:"username"`
	Avatar      string       `json:"avatar"`
	Metadata    UserMetadata `json:"metadata"`
}

type UserMetadata struct {
	TeamName string `json:"team_name"`
}

type Roster struct {
	RosterID FlexInt        `json:"roster_id"`
	OwnerID  string         `json:"owner_id"`
	Settings RosterSettings `json:"settings"`
}

// RosterSettings carries the season aggregates. Point totals are stored
// upstream as a whole number plus a hundredths remainder in a separate field.
type RosterSettings struct {
	Wins   FlexInt `json:"wins"`
	Losses FlexInt `json:"losses"`
	Ties   FlexInt `json:"ties"`

	Fpts               FlexFloat `json:"fpts"`
	FptsDecimal        FlexFloat `json:"fpts_decimal"`
	FptsAgainst        FlexFloat `json:"fpts_against"`
	FptsAgainstDecimal FlexFloat `json:"fpts_against_decimal"`
	Ppts               FlexFloat `json:"ppts"`
	PptsDecimal        FlexFloat `json:"ppts_decimal"`
}

// PointsFor reconstructs the true season total from the whole+decimal pair.
func (s RosterSettings) PointsFor() float64 {
	return s.Fpts.Float() + s.FptsDecimal.Float()/100
}

func (s RosterSettings) PointsAgainst() float64 {
	return s.FptsAgainst.Float() + s.FptsAgainstDecimal.Float()/100
}

// PossiblePoints is what the roster's best possible lineup would have scored.
func (s RosterSettings) PossiblePoints() float64 {
	return s.Ppts.Float() + s.PptsDecimal.Float()/100
}

// Matchup is one roster's entry for one week. Entries sharing a MatchupID
// within the same week form one game.
type Matchup struct {
	RosterID  FlexInt   `json:"roster_id"`
	MatchupID FlexInt   `json:"matchup_id"`
	Points    FlexFloat `json:"points"`
}

type Transaction struct {
	TransactionID string         `json:"transaction_id"`
	Type          string         `json:"type"`
	Status        string         `json:"status"`
	RosterIDs     []int          `json:"roster_ids"`
	Adds          map[string]int `json:"adds"`
	Drops         map[string]int `json:"drops"`
	DraftPicks    []TradedPick   `json:"draft_picks"`
}

const (
	TransactionTrade        = "trade"
	TransactionWaiver       = "waiver"
	TransactionFreeAgent    = "free_agent"
	TransactionCommissioner = "commissioner"
)

// TradedPick is a future draft pick moved in a trade.
type TradedPick struct {
	Season   string  `json:"season"`
	Round    FlexInt `json:"round"`
	RosterID FlexInt `json:"roster_id"`
	OwnerID  FlexInt `json:"owner_id"`
}

// BracketGame is one row of an elimination bracket. The single-letter field
// names are the upstream wire format: r=round, m=match, w=winner roster,
// l=loser roster, p=final placement rank. t1/t2 can be objects referencing
// earlier matches, which decode as invalid here; only r, w, and p matter for
// winner resolution.
type BracketGame struct {
	Round     FlexInt `json:"r"`
	Match     FlexInt `json:"m"`
	Team1     FlexInt `json:"t1"`
	Team2     FlexInt `json:"t2"`
	Winner    FlexInt `json:"w"`
	Loser     FlexInt `json:"l"`
	Placement FlexInt `json:"p"`
}

type Draft struct {
	DraftID   string        `json:"draft_id"`
	StartTime FlexInt       `json:"start_time"`
	Settings  DraftSettings `json:"settings"`
}

type DraftSettings struct {
	Rounds FlexInt `json:"rounds"`
	Slots  FlexInt `json:"slots"`
}

// Size is rounds times slots, used to pick the real draft when a league has
// several (mock drafts show up in the drafts list too).
func (d Draft) Size() int {
	return d.Settings.Rounds.Int() * d.Settings.Slots.Int()
}

type DraftPick struct {
	Round     FlexInt           `json:"round"`
	PickNo    FlexInt           `json:"pick_no"`
	DraftSlot FlexInt           `json:"draft_slot"`
	RosterID  FlexInt           `json:"roster_id"`
	PlayerID  string            `json:"player_id"`
	PickedBy  string            `json:"picked_by"`
	Metadata  DraftPickMetadata `json:"metadata"`
}

type DraftPickMetadata struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Position  string `json:"position"`
	Team      string `json:"team"`
}

type NFLState struct {
	Week       FlexInt `json:"week"`
	Leg        FlexInt `json:"leg"`
	Season     string  `json:"season"`
	SeasonType string  `json:"season_type"`
}
