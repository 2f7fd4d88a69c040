package services

import (
	"strings"
	"testing"

	"app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, extractJSON(`{"a":1}`))
	assert.Equal(t, `{"a":1}`, extractJSON("Here you go:\n```json\n{\"a\":1}\n```"))
	assert.Equal(t, "", extractJSON("no json here"))
	assert.Equal(t, "", extractJSON("} backwards {"))
}

func TestConstructAnalyticsPrompt(t *testing.T) {
	stats := &models.HistoricalStats{TotalVisits: 42, TotalRevenue: 1234.5}
	cfg := models.ForecastConfig{Period: "quarter", ForecastHorizon: 2, IncludeSeasonality: true}

	prompt, err := constructAnalyticsPrompt(stats, cfg)
	require.NoError(t, err)

	assert.Contains(t, prompt, `"total_visits":42`)
	assert.Contains(t, prompt, "quarter")
	assert.Contains(t, prompt, "seasonal index")
	assert.Contains(t, prompt, "next_month_visitors")
}

func TestConstructChatPrompt(t *testing.T) {
	chatCtx := &models.ChatContext{TotalAttractions: 7}
	history := []models.ChatMessage{
		{Message: "newest question", Response: "newest answer"},
		{Message: "oldest question", Response: "oldest answer"},
	}

	prompt, err := constructChatPrompt("what is popular?", chatCtx, history)
	require.NoError(t, err)

	assert.Contains(t, prompt, `"total_attractions":7`)
	assert.Contains(t, prompt, "what is popular?")
	// history is rendered oldest first
	assert.Less(t,
		strings.Index(prompt, "oldest question"),
		strings.Index(prompt, "newest question"))
}

func TestConstructChatPromptNoHistory(t *testing.T) {
	prompt, err := constructChatPrompt("hello", &models.ChatContext{}, nil)
	require.NoError(t, err)
	assert.Contains(t, prompt, "No previous conversation.")
}
