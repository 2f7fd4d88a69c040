package handlers

import (
	"app/services"
	"app/storage"
)

// Package-level collaborators, wired once at startup.
var (
	store           *storage.Store
	insightService  *services.InsightService
	statsService    *services.StatsService
	forecastService *services.ForecastService
	chatService     *services.ChatService
)

// Init wires the handler package to its storage and service collaborators.
func Init(s *storage.Store, ai services.AIClient) {
	store = s
	insightService = services.NewInsightService(s)
	statsService = services.NewStatsService(s)
	forecastService = services.NewForecastService(ai)
	chatService = services.NewChatService(s, ai)
}
