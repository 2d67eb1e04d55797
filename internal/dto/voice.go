package dto

import (
	"time"

	"github.com/agrifusion/agrifusion-backend/internal/core/domain"
)

// SaveVoiceQueryRequest carries one voice interaction to be logged.
type SaveVoiceQueryRequest struct {
	QueryText    string  `json:"queryText" binding:"required"`
	ResponseText *string `json:"responseText"`
	Language     string  `json:"language"`
}

// VoiceQueryResponse is the public view of a logged voice query.
type VoiceQueryResponse struct {
	QueryID      string    `json:"id"`
	QueryText    string    `json:"queryText"`
	ResponseText *string   `json:"responseText,omitempty"`
	Language     string    `json:"language"`
	IsBookmarked bool      `json:"isBookmarked"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ListVoiceQueriesResponse wraps a page of voice queries.
type ListVoiceQueriesResponse struct {
	Queries []VoiceQueryResponse `json:"queries"`
	Total   int64                `json:"total"`
	Limit   int                  `json:"limit"`
	Offset  int                  `json:"offset"`
}

// SaveChatMessageRequest carries one chat exchange to be logged.
type SaveChatMessageRequest struct {
	Message     string  `json:"message" binding:"required"`
	Response    *string `json:"response"`
	MessageType string  `json:"messageType"`
}

// ChatMessageResponse is the public view of a logged chat message.
type ChatMessageResponse struct {
	MessageID   string    `json:"id"`
	Message     string    `json:"message"`
	Response    *string   `json:"response,omitempty"`
	MessageType string    `json:"messageType"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ListChatMessagesResponse wraps a page of chat history.
type ListChatMessagesResponse struct {
	Chats  []ChatMessageResponse `json:"chats"`
	Total  int64                 `json:"total"`
	Limit  int                   `json:"limit"`
	Offset int                   `json:"offset"`
}

// ToVoiceQueryResponse converts a domain.VoiceQuery to its public representation.
func ToVoiceQueryResponse(q *domain.VoiceQuery) VoiceQueryResponse {
	return VoiceQueryResponse{
		QueryID:      q.QueryID,
		QueryText:    q.QueryText,
		ResponseText: q.ResponseText,
		Language:     q.Language,
		IsBookmarked: q.IsBookmarked,
		CreatedAt:    q.CreatedAt,
	}
}

// ToVoiceQueryResponseSlice converts a slice of domain voice queries.
func ToVoiceQueryResponseSlice(qs []domain.VoiceQuery) []VoiceQueryResponse {
	out := make([]VoiceQueryResponse, len(qs))
	for i := range qs {
		out[i] = ToVoiceQueryResponse(&qs[i])
	}
	return out
}

// ToChatMessageResponse converts a domain.ChatMessage to its public representation.
func ToChatMessageResponse(m *domain.ChatMessage) ChatMessageResponse {
	return ChatMessageResponse{
		MessageID:   m.MessageID,
		Message:     m.Message,
		Response:    m.Response,
		MessageType: m.MessageType,
		CreatedAt:   m.CreatedAt,
	}
}

// ToChatMessageResponseSlice converts a slice of domain chat messages.
func ToChatMessageResponseSlice(ms []domain.ChatMessage) []ChatMessageResponse {
	out := make([]ChatMessageResponse, len(ms))
	for i := range ms {
		out[i] = ToChatMessageResponse(&ms[i])
	}
	return out
}
