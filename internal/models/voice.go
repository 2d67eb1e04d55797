package models

import "time"

// VoiceQuery is the database representation of a voice_queries row.
type VoiceQuery struct {
	QueryID      string    `db:"id"`
	UserID       string    `db:"user_id"`
	QueryText    string    `db:"query_text"`
	ResponseText *string   `db:"response_text"`
	Language     string    `db:"language"`
	IsBookmarked bool      `db:"is_bookmarked"`
	CreatedAt    time.Time `db:"created_at"`
}

// ChatMessage is the database representation of a chat_history row.
type ChatMessage struct {
	MessageID   string    `db:"id"`
	UserID      string    `db:"user_id"`
	Message     string    `db:"message"`
	Response    *string   `db:"response"`
	MessageType string    `db:"message_type"`
	CreatedAt   time.Time `db:"created_at"`
}
