package model

import (
	"github.com/rafacas/sysstats"
)

const DbStatusOk = "ok"
const DbStatusFail = "fail"
const RedisStatusOk = "ok"
const RedisStatusFail = "fail"
const VenueStatusOk = "ok"
const VenueStatusDisconnected = "disconnected"

type BotHealth struct {
	Bot         Bot               `json:"bot"`
	DbStatus    string            `json:"dbStatus"`
	RedisStatus string            `json:"redisStatus"`
	VenueStatus string            `json:"venueStatus"`
	Cores       int               `json:"cores"`
	Memory      sysstats.MemStats `json:"memory"`
	LoadAvg     sysstats.LoadAvg  `json:"loadAvg"`
	GameClock   float64           `json:"gameClock"`
}
