package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/agrifusion/agrifusion-backend/internal/core/domain"
	portsrepo "github.com/agrifusion/agrifusion-backend/internal/core/ports/repositories"
	portssvc "github.com/agrifusion/agrifusion-backend/internal/core/ports/services"
	"github.com/agrifusion/agrifusion-backend/internal/dto"
)

const (
	defaultVoiceQueryPageSize = 50
	defaultChatPageSize       = 100
)

type voiceService struct {
	voiceRepo portsrepo.VoiceRepository
}

// NewVoiceService creates the voice-query and chat-history service.
func NewVoiceService(voiceRepo portsrepo.VoiceRepository) portssvc.VoiceSvcFacade {
	return &voiceService{voiceRepo: voiceRepo}
}

func (s *voiceService) SaveVoiceQuery(ctx context.Context, userID string, req dto.SaveVoiceQueryRequest) (*domain.VoiceQuery, error) {
	language := req.Language
	if language == "" {
		language = "English"
	}
	query := domain.VoiceQuery{
		QueryID:      uuid.NewString(),
		UserID:       userID,
		QueryText:    req.QueryText,
		ResponseText: req.ResponseText,
		Language:     language,
		CreatedAt:    time.Now(),
	}
	if err := s.voiceRepo.SaveVoiceQuery(ctx, query); err != nil {
		return nil, err
	}
	return &query, nil
}

func (s *voiceService) ListVoiceQueries(ctx context.Context, userID string, limit, offset int) ([]domain.VoiceQuery, int64, error) {
	if limit <= 0 {
		limit = defaultVoiceQueryPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return s.voiceRepo.FindVoiceQueriesByUser(ctx, userID, limit, offset)
}

func (s *voiceService) ListBookmarkedVoiceQueries(ctx context.Context, userID string) ([]domain.VoiceQuery, error) {
	return s.voiceRepo.FindBookmarkedVoiceQueries(ctx, userID)
}

func (s *voiceService) ToggleVoiceQueryBookmark(ctx context.Context, userID, queryID string) (*domain.VoiceQuery, error) {
	return s.voiceRepo.ToggleVoiceQueryBookmark(ctx, userID, queryID)
}

func (s *voiceService) DeleteVoiceQuery(ctx context.Context, userID, queryID string) error {
	return s.voiceRepo.DeleteVoiceQuery(ctx, userID, queryID)
}

func (s *voiceService) SaveChatMessage(ctx context.Context, userID string, req dto.SaveChatMessageRequest) (*domain.ChatMessage, error) {
	messageType := req.MessageType
	if messageType == "" {
		messageType = "text"
	}
	message := domain.ChatMessage{
		MessageID:   uuid.NewString(),
		UserID:      userID,
		Message:     req.Message,
		Response:    req.Response,
		MessageType: messageType,
		CreatedAt:   time.Now(),
	}
	if err := s.voiceRepo.SaveChatMessage(ctx, message); err != nil {
		return nil, err
	}
	return &message, nil
}

func (s *voiceService) ListChatHistory(ctx context.Context, userID string, limit, offset int) ([]domain.ChatMessage, int64, error) {
	if limit <= 0 {
		limit = defaultChatPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return s.voiceRepo.FindChatHistoryByUser(ctx, userID, limit, offset)
}
