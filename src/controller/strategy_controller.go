package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"gitlab.com/open-soft/go-hoops-bot/src/repository"
)

// StrategyController serves the cached read-model: the strategy snapshot,
// the point differential trail and recent order intents. It never touches
// live strategy state, only what the audit subscriber published.
type StrategyController struct {
	BotRepository  *repository.BotRepository
	GameRepository *repository.GameRepository
}

func (s *StrategyController) GetSnapshotAction(w http.ResponseWriter, req *http.Request) {
	s.writeCorsHeaders(w)

	if !s.isAuthorized(w, req) {
		return
	}

	snapshot := s.GameRepository.GetSnapshot()
	if snapshot == nil {
		http.Error(w, "Snapshot is not ready", http.StatusNotFound)

		return
	}

	encoded, _ := json.Marshal(snapshot)
	fmt.Fprintf(w, string(encoded))
}

func (s *StrategyController) GetPointDiffTrailAction(w http.ResponseWriter, req *http.Request) {
	s.writeCorsHeaders(w)

	if !s.isAuthorized(w, req) {
		return
	}

	trail := s.GameRepository.GetPointDiffTrail()

	encoded, _ := json.Marshal(trail)
	fmt.Fprintf(w, string(encoded))
}

func (s *StrategyController) GetOrderIntentsAction(w http.ResponseWriter, req *http.Request) {
	s.writeCorsHeaders(w)

	if !s.isAuthorized(w, req) {
		return
	}

	limit := int64(100)
	limitParam := req.URL.Query().Get("limit")
	if len(limitParam) > 0 {
		parsed, err := strconv.ParseInt(limitParam, 10, 64)
		if err == nil && parsed > 0 {
			limit = parsed
		}
	}

	intents := s.GameRepository.GetOrderIntents(limit)

	encoded, _ := json.Marshal(intents)
	fmt.Fprintf(w, string(encoded))
}

func (s *StrategyController) isAuthorized(w http.ResponseWriter, req *http.Request) bool {
	bot := s.BotRepository.GetCurrentBotCached()

	if req.URL.Query().Get("botUuid") != bot.BotUuid {
		http.Error(w, "Forbidden", http.StatusForbidden)

		return false
	}

	return true
}

func (s *StrategyController) writeCorsHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")
}
