package model

type Team string

const TeamHome Team = "home"
const TeamAway Team = "away"
const TeamUnknown Team = ""

func (t Team) IsKnown() bool {
	return t == TeamHome || t == TeamAway
}

// Sign maps the acting team to the home-positive direction of the model.
func (t Team) Sign() float64 {
	switch t {
	case TeamHome:
		return 1.0
	case TeamAway:
		return -1.0
	}

	return 0.0
}

func (t Team) Opposite() Team {
	switch t {
	case TeamHome:
		return TeamAway
	case TeamAway:
		return TeamHome
	}

	return TeamUnknown
}

type EventType string

const EventScore EventType = "SCORE"
const EventRebound EventType = "REBOUND"
const EventSteal EventType = "STEAL"
const EventTurnover EventType = "TURNOVER"
const EventBlock EventType = "BLOCK"
const EventFoul EventType = "FOUL"
const EventMissed EventType = "MISSED"
const EventJumpBall EventType = "JUMP_BALL"
const EventSubstitution EventType = "SUBSTITUTION"
const EventTimeout EventType = "TIMEOUT"
const EventEndPeriod EventType = "END_PERIOD"
const EventEndGame EventType = "END_GAME"

const ShotTypeTwoPoint = "TWO_POINT"
const ShotTypeThreePoint = "THREE_POINT"

const ReboundOffensive = "OFFENSIVE"
const ReboundDefensive = "DEFENSIVE"

// GameEvent is a single play-by-play notification from the venue feed.
// Optional fields arrive empty (strings) or nil (numbers).
type GameEvent struct {
	EventType             EventType `json:"event_type"`
	HomeAway              Team      `json:"home_away"`
	HomeScore             int       `json:"home_score"`
	AwayScore             int       `json:"away_score"`
	PlayerName            string    `json:"player_name,omitempty"`
	SubstitutedPlayerName string    `json:"substituted_player_name,omitempty"`
	ShotType              string    `json:"shot_type,omitempty"`
	AssistPlayer          string    `json:"assist_player,omitempty"`
	ReboundType           string    `json:"rebound_type,omitempty"`
	CoordinateX           *float64  `json:"coordinate_x,omitempty"`
	CoordinateY           *float64  `json:"coordinate_y,omitempty"`
	TimeSeconds           *float64  `json:"time_seconds,omitempty"`
}

func (e *GameEvent) IsEndGame() bool {
	return e.EventType == EventEndGame
}

// WeightKey builds the impact weight lookup key: rebounds qualify on the
// rebound type, scores on the shot type, everything else has no qualifier.
func (e *GameEvent) WeightKey() EventWeightKey {
	switch e.EventType {
	case EventRebound:
		return EventWeightKey{Event: EventRebound, Qualifier: e.ReboundType}
	case EventScore:
		return EventWeightKey{Event: EventScore, Qualifier: e.ShotType}
	}

	return EventWeightKey{Event: e.EventType}
}
