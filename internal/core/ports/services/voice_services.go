package services

import (
	"context"

	"github.com/agrifusion/agrifusion-backend/internal/core/domain"
	"github.com/agrifusion/agrifusion-backend/internal/dto"
)

// VoiceSvcFacade defines voice-query and chat-history operations, all scoped
// to the authenticated user.
type VoiceSvcFacade interface {
	SaveVoiceQuery(ctx context.Context, userID string, req dto.SaveVoiceQueryRequest) (*domain.VoiceQuery, error)
	ListVoiceQueries(ctx context.Context, userID string, limit, offset int) ([]domain.VoiceQuery, int64, error)
	ListBookmarkedVoiceQueries(ctx context.Context, userID string) ([]domain.VoiceQuery, error)
	ToggleVoiceQueryBookmark(ctx context.Context, userID, queryID string) (*domain.VoiceQuery, error)
	DeleteVoiceQuery(ctx context.Context, userID, queryID string) error

	SaveChatMessage(ctx context.Context, userID string, req dto.SaveChatMessageRequest) (*domain.ChatMessage, error)
	ListChatHistory(ctx context.Context, userID string, limit, offset int) ([]domain.ChatMessage, int64, error)
}
