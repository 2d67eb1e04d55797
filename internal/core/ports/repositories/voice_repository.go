package repositories

import (
	"context"

	"github.com/agrifusion/agrifusion-backend/internal/core/domain"
)

// VoiceRepository persists voice query logs and chat history. Every read,
// update and delete is filtered by the owning user's ID.
type VoiceRepository interface {
	SaveVoiceQuery(ctx context.Context, query domain.VoiceQuery) error
	FindVoiceQueriesByUser(ctx context.Context, userID string, limit, offset int) ([]domain.VoiceQuery, int64, error)
	FindBookmarkedVoiceQueries(ctx context.Context, userID string) ([]domain.VoiceQuery, error)
	ToggleVoiceQueryBookmark(ctx context.Context, userID, queryID string) (*domain.VoiceQuery, error)
	DeleteVoiceQuery(ctx context.Context, userID, queryID string) error

	SaveChatMessage(ctx context.Context, message domain.ChatMessage) error
	FindChatHistoryByUser(ctx context.Context, userID string, limit, offset int) ([]domain.ChatMessage, int64, error)
}
