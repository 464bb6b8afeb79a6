package controller

import (
	"fmt"
	"strings"

	"github.com/xSunnyyy/VetoCity/model"
	"github.com/xSunnyyy/VetoCity/sleeper"
)

const avatarThumbBase = "https://sleepercdn.com/avatars/thumbs/"

// ownerDisplay is the presentation record for one owner in one season.
// Resolved is false when no user record existed for the owner and the name
// is a synthesized roster placeholder.
type ownerDisplay struct {
	Name     string
	Avatar   *string
	Resolved bool
}

// identity maps one season's rosters to their controlling owners. Roster
// numbers are only unique within a season; owner ids are the stable handle
// across seasons, so cross-season joins go through ownerByRoster and nothing
// else. Rosters with no owner still resolve to a usable placeholder.
type identity struct {
	ownerByRoster  map[int]string
	teamByRoster   map[int]model.RecordTeam
	displayByOwner map[string]ownerDisplay
}

func buildIdentity(users []sleeper.User, rosters []sleeper.Roster) *identity {
	userByID := make(map[string]sleeper.User, len(users))
	for _, u := range users {
		if u.UserID != "" {
			userByID[u.UserID] = u
		}
	}

	id := &identity{
		ownerByRoster:  make(map[int]string, len(rosters)),
		teamByRoster:   make(map[int]model.RecordTeam, len(rosters)),
		displayByOwner: make(map[string]ownerDisplay, len(rosters)),
	}

	for _, r := range rosters {
		if !r.RosterID.Valid() {
			continue
		}
		rid := r.RosterID.Int()

		ownerID := strings.TrimSpace(r.OwnerID)
		var owner sleeper.User
		if ownerID != "" {
			id.ownerByRoster[rid] = ownerID
			owner = userByID[ownerID]
		}

		// Name precedence: the owner's team nickname, then display name,
		// then login name, then a synthesized placeholder.
		name := firstNonEmpty(
			owner.Metadata.TeamName,
			owner.DisplayName,
			owner.Username,
		)
		resolved := name != ""
		if name == "" {
			name = fmt.Sprintf("Team %d", rid)
		}

		avatar := avatarThumb(owner.Avatar)

		id.teamByRoster[rid] = model.RecordTeam{
			RosterID: intPtr(rid),
			TeamName: name,
			Avatar:   avatar,
		}
		if ownerID != "" {
			if _, ok := id.displayByOwner[ownerID]; !ok {
				id.displayByOwner[ownerID] = ownerDisplay{Name: name, Avatar: avatar, Resolved: resolved}
			}
		}
	}

	return id
}

// team returns the display record for a roster, synthesizing a placeholder
// for roster numbers that never appeared in the season's roster list.
func (id *identity) team(rid int) model.RecordTeam {
	if t, ok := id.teamByRoster[rid]; ok {
		return t
	}
	return model.RecordTeam{
		RosterID: intPtr(rid),
		TeamName: fmt.Sprintf("Team %d", rid),
	}
}

// teamRef is team() in TeamRef form; nil means the slot is unresolved.
func (id *identity) teamRef(rid *int) model.TeamRef {
	if rid == nil {
		return model.TeamRef{Name: "—"}
	}
	t := id.team(*rid)
	return model.TeamRef{RosterID: t.RosterID, Name: t.TeamName, Avatar: t.Avatar}
}

func avatarThumb(avatar string) *string {
	if avatar == "" {
		return nil
	}
	u := avatarThumbBase + avatar
	return &u
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

func intPtr(n int) *int {
	return &n
}
