package controller

import (
	"context"
	"sort"
	"strings"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/xSunnyyy/VetoCity/model"
	"github.com/xSunnyyy/VetoCity/sleeper"
)

func (c *controller) GetDraftBoard(ctx context.Context) (*model.DraftBoardPayload, error) {
	v, err := c.cache.GetOrLoad(ctx, "draftboard:"+c.leagueID, func(ctx context.Context) (any, error) {
		chain, err := c.walkSeasonChain(ctx)
		if err != nil {
			return nil, err
		}

		seasons := make([]model.SeasonDraft, len(chain))
		p := pool.New().WithContext(ctx)
		for i, league := range chain {
			i, league := i, league
			p.Go(func(ctx context.Context) error {
				sd, err := c.fetchSeasonDraft(ctx, league)
				if err != nil {
					return err
				}
				seasons[i] = *sd
				return nil
			})
		}
		if err := p.Wait(); err != nil {
			return nil, err
		}

		// The chain is already newest first; re-sorting by season label
		// keeps that order even if a mid-chain rename broke the year order.
		sort.SliceStable(seasons, func(i, j int) bool {
			return seasonYear(seasons[i].Season) > seasonYear(seasons[j].Season)
		})

		payload := &model.DraftBoardPayload{
			Seasons:   seasons,
			FetchedAt: c.clock.Now().UTC(),
		}
		return payload, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.DraftBoardPayload), nil
}

func (c *controller) fetchSeasonDraft(ctx context.Context, league sleeper.League) (*model.SeasonDraft, error) {
	b, err := c.fetchSeasonBundle(ctx, league, bundleRequest{})
	if err != nil {
		return nil, err
	}
	id := buildIdentity(b.users, b.rosters)

	sd := &model.SeasonDraft{
		Season:     orDash(league.Season),
		LeagueID:   league.LeagueID,
		LeagueName: league.Name,
		Picks:      []model.DraftPickRow{},
	}

	draftID := strings.TrimSpace(league.DraftID)
	if draftID == "" {
		draftID = c.pickSeasonDraftID(ctx, league.LeagueID)
	}
	if draftID == "" {
		return sd, nil
	}

	draft, err := c.sleeper.GetDraft(ctx, draftID)
	if err != nil {
		c.warnFetch(ctx, "draft", league.LeagueID, err)
		return sd, nil
	}
	sd.DraftID = draft.DraftID
	sd.Rounds = draft.Settings.Rounds.Int()
	sd.Slots = draft.Settings.Slots.Int()

	picks, err := c.sleeper.GetDraftPicks(ctx, draftID)
	if err != nil {
		c.warnFetch(ctx, "draft_picks", league.LeagueID, err)
		return sd, nil
	}

	for _, p := range picks {
		rid := p.RosterID.Int()
		t := id.team(rid)
		sd.Picks = append(sd.Picks, model.DraftPickRow{
			Round:      p.Round.Int(),
			PickNo:     p.PickNo.Int(),
			DraftSlot:  p.DraftSlot.Int(),
			RosterID:   rid,
			PlayerID:   p.PlayerID,
			PlayerName: strings.TrimSpace(p.Metadata.FirstName + " " + p.Metadata.LastName),
			Position:   p.Metadata.Position,
			Team:       model.TeamRef{RosterID: t.RosterID, Name: t.TeamName, Avatar: t.Avatar},
		})
	}
	sort.SliceStable(sd.Picks, func(i, j int) bool {
		return sd.Picks[i].PickNo < sd.Picks[j].PickNo
	})

	return sd, nil
}

// pickSeasonDraftID finds a season's real draft when the league record
// doesn't name one: the largest draft by rounds times slots, breaking ties
// on the later start time. Mock drafts are smaller or older, so this picks
// the one that actually happened.
func (c *controller) pickSeasonDraftID(ctx context.Context, leagueID string) string {
	drafts, err := c.sleeper.GetDrafts(ctx, leagueID)
	if err != nil {
		c.warnFetch(ctx, "drafts", leagueID, err)
		return ""
	}

	details := make([]sleeper.Draft, 0, len(drafts))
	for _, d := range drafts {
		if d.DraftID == "" {
			continue
		}
		full, err := c.sleeper.GetDraft(ctx, d.DraftID)
		if err != nil {
			c.log.Debug("skipping unreadable draft",
				zap.String("draft_id", d.DraftID),
				zap.Error(err))
			continue
		}
		details = append(details, *full)
	}
	if len(details) == 0 {
		return ""
	}

	sort.SliceStable(details, func(i, j int) bool {
		if details[i].Size() != details[j].Size() {
			return details[i].Size() > details[j].Size()
		}
		return details[i].StartTime.Int() > details[j].StartTime.Int()
	})

	return details[0].DraftID
}
