package mockcontroller

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/xSunnyyy/VetoCity/model"
)

type C struct {
	mock.Mock
}

func (c *C) GetSeasonAwards(ctx context.Context) (*model.AwardsPayload, error) {
	args := c.Called(ctx)

	var p *model.AwardsPayload
	if args.Get(0) != nil {
		p = args.Get(0).(*model.AwardsPayload)
	}

	return p, args.Error(1)
}

func (c *C) GetRecordBook(ctx context.Context) (*model.RecordsPayload, error) {
	args := c.Called(ctx)

	var p *model.RecordsPayload
	if args.Get(0) != nil {
		p = args.Get(0).(*model.RecordsPayload)
	}

	return p, args.Error(1)
}

func (c *C) GetManagerCareers(ctx context.Context) (*model.ManagersPayload, error) {
	args := c.Called(ctx)

	var p *model.ManagersPayload
	if args.Get(0) != nil {
		p = args.Get(0).(*model.ManagersPayload)
	}

	return p, args.Error(1)
}

func (c *C) GetRivalry(ctx context.Context, ownerA, ownerB string) (*model.RivalryPayload, error) {
	args := c.Called(ctx, ownerA, ownerB)

	var p *model.RivalryPayload
	if args.Get(0) != nil {
		p = args.Get(0).(*model.RivalryPayload)
	}

	return p, args.Error(1)
}

func (c *C) GetStandings(ctx context.Context) (*model.StandingsPayload, error) {
	args := c.Called(ctx)

	var p *model.StandingsPayload
	if args.Get(0) != nil {
		p = args.Get(0).(*model.StandingsPayload)
	}

	return p, args.Error(1)
}

func (c *C) GetWeekMatchups(ctx context.Context, week int) (*model.MatchupsPayload, error) {
	args := c.Called(ctx, week)

	var p *model.MatchupsPayload
	if args.Get(0) != nil {
		p = args.Get(0).(*model.MatchupsPayload)
	}

	return p, args.Error(1)
}

func (c *C) GetDraftBoard(ctx context.Context) (*model.DraftBoardPayload, error) {
	args := c.Called(ctx)

	var p *model.DraftBoardPayload
	if args.Get(0) != nil {
		p = args.Get(0).(*model.DraftBoardPayload)
	}

	return p, args.Error(1)
}
