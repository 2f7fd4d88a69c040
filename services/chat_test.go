package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChatStore struct {
	mu sync.Mutex

	attractionCount int
	visitCount      int
	categories      []string
	topRated        []models.AttractionStats
	breakdown       []models.CategoryStats
	userVisits      int
	history         []models.ChatMessage

	countAttractionsErr error
	userVisitsErr       error
	historyErr          error
	saveErr             error

	saved []models.ChatMessage
}

func (f *fakeChatStore) CountAttractions(_ context.Context) (int, error) {
	return f.attractionCount, f.countAttractionsErr
}

func (f *fakeChatStore) CountVisits(_ context.Context) (int, error) {
	return f.visitCount, nil
}

func (f *fakeChatStore) GetCategories(_ context.Context) ([]string, error) {
	return f.categories, nil
}

func (f *fakeChatStore) GetTopRatedAttractions(_ context.Context, _ int) ([]models.AttractionStats, error) {
	return f.topRated, nil
}

func (f *fakeChatStore) GetCategoryBreakdown(_ context.Context) ([]models.CategoryStats, error) {
	return f.breakdown, nil
}

func (f *fakeChatStore) CountUserVisits(_ context.Context, _ string) (int, error) {
	return f.userVisits, f.userVisitsErr
}

func (f *fakeChatStore) GetRecentChatHistory(_ context.Context, _ string, _ int) ([]models.ChatMessage, error) {
	return f.history, f.historyErr
}

func (f *fakeChatStore) SaveChatMessage(_ context.Context, userID, message, response string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, models.ChatMessage{UserID: userID, Message: message, Response: response})
	return nil
}

func (f *fakeChatStore) savedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.saved)
}

func TestBuildContext(t *testing.T) {
	store := &fakeChatStore{
		attractionCount: 8,
		visitCount:      120,
		categories:      []string{"museum", "park"},
		topRated: []models.AttractionStats{
			{ID: 1, Name: "Museum", Rating: 4.9},
		},
		breakdown: []models.CategoryStats{
			{Category: "museum", Count: 5},
			{Category: "park", Count: 3},
		},
		userVisits: 4,
	}

	chatCtx, err := NewChatService(store, &fakeAIClient{}).BuildContext(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, 8, chatCtx.TotalAttractions)
	assert.Equal(t, 120, chatCtx.TotalVisits)
	assert.Equal(t, []string{"museum", "park"}, chatCtx.Categories)
	assert.Equal(t, 4, chatCtx.UserVisitCount)

	// percentages rounded to one decimal place
	assert.Equal(t, 62.5, chatCtx.CategoryBreakdown[0].Percentage)
	assert.Equal(t, 37.5, chatCtx.CategoryBreakdown[1].Percentage)
}

func TestBuildContextZeroAttractions(t *testing.T) {
	store := &fakeChatStore{
		breakdown: []models.CategoryStats{{Category: "museum", Count: 0}},
	}

	chatCtx, err := NewChatService(store, &fakeAIClient{}).BuildContext(context.Background(), "")
	require.NoError(t, err)

	// zero total never divides; percentage stays 0
	assert.Equal(t, 0.0, chatCtx.CategoryBreakdown[0].Percentage)
	assert.Equal(t, 0, chatCtx.UserVisitCount)
}

func TestBuildContextUserCountFailureDefaultsToZero(t *testing.T) {
	store := &fakeChatStore{
		attractionCount: 2,
		userVisitsErr:   errors.New("timeout"),
	}

	chatCtx, err := NewChatService(store, &fakeAIClient{}).BuildContext(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, chatCtx.UserVisitCount)
}

func TestBuildContextSnapshotFailurePropagates(t *testing.T) {
	store := &fakeChatStore{countAttractionsErr: errors.New("down")}

	_, err := NewChatService(store, &fakeAIClient{}).BuildContext(context.Background(), "")
	require.Error(t, err)
}

func TestAnswer(t *testing.T) {
	store := &fakeChatStore{
		attractionCount: 3,
		history: []models.ChatMessage{
			{Message: "hi", Response: "hello"},
		},
	}
	ai := &fakeAIClient{
		chatResp: &models.ChatResponse{Message: "There are 3 attractions."},
	}

	resp, err := NewChatService(store, ai).Answer(context.Background(), "user-1", "How many attractions?")
	require.NoError(t, err)

	assert.Equal(t, "There are 3 attractions.", resp.Message)
	assert.Equal(t, "How many attractions?", ai.lastMessage)
	require.NotNil(t, ai.lastChatCtx)
	assert.Equal(t, 3, ai.lastChatCtx.TotalAttractions)

	// history write is async; give it a moment
	assert.Eventually(t, func() bool { return store.savedCount() == 1 }, time.Second, 10*time.Millisecond)
}

func TestAnswerSaveFailureDoesNotFailResponse(t *testing.T) {
	store := &fakeChatStore{saveErr: errors.New("disk full")}
	ai := &fakeAIClient{chatResp: &models.ChatResponse{Message: "ok"}}

	resp, err := NewChatService(store, ai).Answer(context.Background(), "user-1", "question")
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Message)
}

func TestAnswerAIFailurePropagates(t *testing.T) {
	store := &fakeChatStore{}
	ai := &fakeAIClient{chatErr: errors.New("backend unavailable")}

	_, err := NewChatService(store, ai).Answer(context.Background(), "user-1", "question")
	require.Error(t, err)
	assert.Equal(t, 0, store.savedCount())
}
