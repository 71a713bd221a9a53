package service

import (
	"context"
	"database/sql"
	"runtime"

	"github.com/rafacas/sysstats"
	"github.com/redis/go-redis/v9"
	"gitlab.com/open-soft/go-hoops-bot/src/client"
	"gitlab.com/open-soft/go-hoops-bot/src/model"
	"gitlab.com/open-soft/go-hoops-bot/src/repository"
)

type HealthService struct {
	GameRepository *repository.GameRepository
	DB             *sql.DB
	RDB            *redis.Client
	Ctx            *context.Context
	Venue          *client.Venue
	CurrentBot     *model.Bot
}

func (h *HealthService) HealthCheck() model.BotHealth {
	memStats, _ := sysstats.GetMemStats()
	loadAvg, _ := sysstats.GetLoadAvg()

	venueStatus := model.VenueStatusOk
	if !h.Venue.IsConnected() {
		venueStatus = model.VenueStatusDisconnected
	}

	dbStatus := model.DbStatusOk
	if h.DB.Ping() != nil {
		dbStatus = model.DbStatusFail
	}

	redisStatus := model.RedisStatusOk
	if h.RDB.Ping(*h.Ctx).Err() != nil {
		redisStatus = model.RedisStatusFail
	}

	gameClock := 0.00
	snapshot := h.GameRepository.GetSnapshot()
	if snapshot != nil {
		gameClock = snapshot.Game.TimeSeconds
	}

	return model.BotHealth{
		Bot:         *h.CurrentBot,
		DbStatus:    dbStatus,
		RedisStatus: redisStatus,
		VenueStatus: venueStatus,
		Cores:       runtime.NumCPU(),
		Memory:      memStats,
		LoadAvg:     loadAvg,
		GameClock:   gameClock,
	}
}
