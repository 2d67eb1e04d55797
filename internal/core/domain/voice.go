package domain

import "time"

// VoiceQuery is one logged voice interaction with the assistant.
type VoiceQuery struct {
	QueryID      string
	UserID       string
	QueryText    string
	ResponseText *string
	Language     string
	IsBookmarked bool
	CreatedAt    time.Time
}

// ChatMessage is one logged text exchange with the assistant.
type ChatMessage struct {
	MessageID   string
	UserID      string
	Message     string
	Response    *string
	MessageType string
	CreatedAt   time.Time
}
