package controller

import (
	"context"
	"errors"

	"github.com/itbasis/go-clock"
	"go.uber.org/zap"

	"github.com/xSunnyyy/VetoCity/cache"
	"github.com/xSunnyyy/VetoCity/model"
	"github.com/xSunnyyy/VetoCity/sleeper"
)

// C encapsulates the aggregation engine without worrying about any web layers.
// All operations walk the league's season chain on a cache miss; results are
// served from the injected cache inside the TTL window.
type C interface {
	// GetSeasonAwards lists every season newest first with its champion,
	// regular-season champion, points leader, and toilet-bowl winner.
	GetSeasonAwards(ctx context.Context) (*model.AwardsPayload, error)
	// GetRecordBook computes the ten all-time top-10 lists over the
	// regular-season week range.
	GetRecordBook(ctx context.Context) (*model.RecordsPayload, error)
	GetManagerCareers(ctx context.Context) (*model.ManagersPayload, error)
	// GetRivalry replays every season's matchups and returns the head-to-head
	// series between two owner ids.
	GetRivalry(ctx context.Context, ownerA, ownerB string) (*model.RivalryPayload, error)
	GetStandings(ctx context.Context) (*model.StandingsPayload, error)
	GetWeekMatchups(ctx context.Context, week int) (*model.MatchupsPayload, error)
	GetDraftBoard(ctx context.Context) (*model.DraftBoardPayload, error)
}

type Config struct {
	// LeagueID is the newest season of the league; history is discovered by
	// following previous-league pointers from here.
	LeagueID string
	// MaxSeasons bounds the chain walk independently of the cycle guard.
	// Zero means the default of 20.
	MaxSeasons int
}

const defaultMaxSeasons = 20

type controller struct {
	clock      clock.Clock
	sleeper    sleeper.Client
	cache      *cache.Store
	log        *zap.Logger
	leagueID   string
	maxSeasons int
}

func New(clock clock.Clock, sleeper sleeper.Client, cache *cache.Store, log *zap.Logger, cfg Config) (C, error) {
	if cfg.LeagueID == "" {
		return nil, errors.New("league id must be provided")
	}
	maxSeasons := cfg.MaxSeasons
	if maxSeasons <= 0 {
		maxSeasons = defaultMaxSeasons
	}
	if log == nil {
		log = zap.NewNop()
	}

	c := &controller{
		clock:      clock,
		sleeper:    sleeper,
		cache:      cache,
		log:        log,
		leagueID:   cfg.LeagueID,
		maxSeasons: maxSeasons,
	}
	return c, nil
}
