package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"app/models"

	"golang.org/x/sync/errgroup"
)

const (
	chatTopAttractions = 10
	chatHistoryTurns   = 5
)

// ChatStore is the slice of storage the conversational path reads from.
type ChatStore interface {
	CountAttractions(ctx context.Context) (int, error)
	CountVisits(ctx context.Context) (int, error)
	GetCategories(ctx context.Context) ([]string, error)
	GetTopRatedAttractions(ctx context.Context, limit int) ([]models.AttractionStats, error)
	GetCategoryBreakdown(ctx context.Context) ([]models.CategoryStats, error)
	CountUserVisits(ctx context.Context, userID string) (int, error)
	GetRecentChatHistory(ctx context.Context, userID string, limit int) ([]models.ChatMessage, error)
	SaveChatMessage(ctx context.Context, userID, message, response string) error
}

// ChatService grounds free-form chat queries in a snapshot of current
// platform state.
type ChatService struct {
	store ChatStore
	ai    AIClient
}

// NewChatService creates a ChatService over the given store and AI client.
func NewChatService(store ChatStore, ai AIClient) *ChatService {
	return &ChatService{store: store, ai: ai}
}

// BuildContext assembles the grounding snapshot for one chat turn. The
// five snapshot queries run concurrently and are joined before returning.
// The per-user visit count is best effort and defaults to 0.
func (s *ChatService) BuildContext(ctx context.Context, userID string) (*models.ChatContext, error) {
	chatCtx := &models.ChatContext{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		chatCtx.TotalAttractions, err = s.store.CountAttractions(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		chatCtx.TotalVisits, err = s.store.CountVisits(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		chatCtx.Categories, err = s.store.GetCategories(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		chatCtx.TopAttractions, err = s.store.GetTopRatedAttractions(gctx, chatTopAttractions)
		return err
	})
	g.Go(func() error {
		var err error
		chatCtx.CategoryBreakdown, err = s.store.GetCategoryBreakdown(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build chat context: %w", err)
	}

	// Percentage of a zero total is 0, never NaN.
	for i := range chatCtx.CategoryBreakdown {
		if chatCtx.TotalAttractions > 0 {
			pct := float64(chatCtx.CategoryBreakdown[i].Count) / float64(chatCtx.TotalAttractions) * 100
			chatCtx.CategoryBreakdown[i].Percentage = math.Round(pct*10) / 10
		}
	}

	if userID != "" {
		count, err := s.store.CountUserVisits(ctx, userID)
		if err != nil {
			log.Printf("Failed to count visits for user %s, defaulting to 0: %v", userID, err)
			count = 0
		}
		chatCtx.UserVisitCount = count
	}

	return chatCtx, nil
}

// Answer handles one chat turn: build the grounding context, generate the
// reply, then record the exchange. The history write is fire and forget;
// its failure never fails the response.
func (s *ChatService) Answer(ctx context.Context, userID, message string) (*models.ChatResponse, error) {
	chatCtx, err := s.BuildContext(ctx, userID)
	if err != nil {
		return nil, err
	}

	history, err := s.store.GetRecentChatHistory(ctx, userID, chatHistoryTurns)
	if err != nil {
		log.Printf("Failed to load chat history for user %s, continuing without: %v", userID, err)
		history = nil
	}

	resp, err := s.ai.GenerateChatResponse(ctx, message, chatCtx, history)
	if err != nil {
		return nil, err
	}

	go func() {
		saveCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.store.SaveChatMessage(saveCtx, userID, message, resp.Message); err != nil {
			log.Printf("Failed to save chat history for user %s: %v", userID, err)
		}
	}()

	return resp, nil
}
