package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/agrifusion/agrifusion-backend/internal/apperrors"
	"github.com/agrifusion/agrifusion-backend/internal/core/domain"
	portsrepo "github.com/agrifusion/agrifusion-backend/internal/core/ports/repositories"
	"github.com/agrifusion/agrifusion-backend/internal/models"
)

type PgxVoiceRepository struct {
	db PgxPool
}

// NewVoiceRepository creates a pgsql-backed voice-query/chat repository.
func NewVoiceRepository(db PgxPool) portsrepo.VoiceRepository {
	return &PgxVoiceRepository{db: db}
}

var _ portsrepo.VoiceRepository = (*PgxVoiceRepository)(nil)

const voiceQueryColumns = `id, user_id, query_text, response_text, language, is_bookmarked, created_at`
const chatMessageColumns = `id, user_id, message, response, message_type, created_at`

func scanVoiceQuery(row pgx.Row) (*domain.VoiceQuery, error) {
	var m models.VoiceQuery
	err := row.Scan(
		&m.QueryID,
		&m.UserID,
		&m.QueryText,
		&m.ResponseText,
		&m.Language,
		&m.IsBookmarked,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan voice query row: %w", err)
	}
	return &domain.VoiceQuery{
		QueryID:      m.QueryID,
		UserID:       m.UserID,
		QueryText:    m.QueryText,
		ResponseText: m.ResponseText,
		Language:     m.Language,
		IsBookmarked: m.IsBookmarked,
		CreatedAt:    m.CreatedAt,
	}, nil
}

func scanChatMessage(row pgx.Row) (*domain.ChatMessage, error) {
	var m models.ChatMessage
	err := row.Scan(
		&m.MessageID,
		&m.UserID,
		&m.Message,
		&m.Response,
		&m.MessageType,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan chat message row: %w", err)
	}
	return &domain.ChatMessage{
		MessageID:   m.MessageID,
		UserID:      m.UserID,
		Message:     m.Message,
		Response:    m.Response,
		MessageType: m.MessageType,
		CreatedAt:   m.CreatedAt,
	}, nil
}

func (r *PgxVoiceRepository) collectVoiceQueries(rows pgx.Rows) ([]domain.VoiceQuery, error) {
	defer rows.Close()
	queries := []domain.VoiceQuery{}
	for rows.Next() {
		q, err := scanVoiceQuery(rows)
		if err != nil {
			return nil, err
		}
		queries = append(queries, *q)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating voice query rows: %w", rows.Err())
	}
	return queries, nil
}

func (r *PgxVoiceRepository) SaveVoiceQuery(ctx context.Context, query domain.VoiceQuery) error {
	sql := `
        INSERT INTO voice_queries (id, user_id, query_text, response_text, language, is_bookmarked, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, sql,
		query.QueryID,
		query.UserID,
		query.QueryText,
		query.ResponseText,
		query.Language,
		query.IsBookmarked,
		query.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert voice query: %w", err)
	}
	return nil
}

func (r *PgxVoiceRepository) FindVoiceQueriesByUser(ctx context.Context, userID string, limit, offset int) ([]domain.VoiceQuery, int64, error) {
	var total int64
	countQuery := `SELECT COUNT(*) FROM voice_queries WHERE user_id = $1;`
	if err := r.db.QueryRow(ctx, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count voice queries: %w", err)
	}

	sql := `
        SELECT ` + voiceQueryColumns + `
        FROM voice_queries
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3;
    `
	rows, err := r.db.Query(ctx, sql, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query voice queries: %w", err)
	}
	queries, err := r.collectVoiceQueries(rows)
	if err != nil {
		return nil, 0, err
	}
	return queries, total, nil
}

func (r *PgxVoiceRepository) FindBookmarkedVoiceQueries(ctx context.Context, userID string) ([]domain.VoiceQuery, error) {
	sql := `
        SELECT ` + voiceQueryColumns + `
        FROM voice_queries
        WHERE user_id = $1 AND is_bookmarked = TRUE
        ORDER BY created_at DESC;
    `
	rows, err := r.db.Query(ctx, sql, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookmarked voice queries: %w", err)
	}
	return r.collectVoiceQueries(rows)
}

func (r *PgxVoiceRepository) ToggleVoiceQueryBookmark(ctx context.Context, userID, queryID string) (*domain.VoiceQuery, error) {
	sql := `
        UPDATE voice_queries
        SET is_bookmarked = NOT is_bookmarked
        WHERE id = $1 AND user_id = $2
        RETURNING ` + voiceQueryColumns + `;
    `
	return scanVoiceQuery(r.db.QueryRow(ctx, sql, queryID, userID))
}

func (r *PgxVoiceRepository) DeleteVoiceQuery(ctx context.Context, userID, queryID string) error {
	sql := `DELETE FROM voice_queries WHERE id = $1 AND user_id = $2;`
	cmdTag, err := r.db.Exec(ctx, sql, queryID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete voice query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxVoiceRepository) SaveChatMessage(ctx context.Context, message domain.ChatMessage) error {
	sql := `
        INSERT INTO chat_history (id, user_id, message, response, message_type, created_at)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.db.Exec(ctx, sql,
		message.MessageID,
		message.UserID,
		message.Message,
		message.Response,
		message.MessageType,
		message.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert chat message: %w", err)
	}
	return nil
}

func (r *PgxVoiceRepository) FindChatHistoryByUser(ctx context.Context, userID string, limit, offset int) ([]domain.ChatMessage, int64, error) {
	var total int64
	countQuery := `SELECT COUNT(*) FROM chat_history WHERE user_id = $1;`
	if err := r.db.QueryRow(ctx, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count chat history: %w", err)
	}

	sql := `
        SELECT ` + chatMessageColumns + `
        FROM chat_history
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3;
    `
	rows, err := r.db.Query(ctx, sql, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query chat history: %w", err)
	}
	defer rows.Close()

	messages := []domain.ChatMessage{}
	for rows.Next() {
		m, err := scanChatMessage(rows)
		if err != nil {
			return nil, 0, err
		}
		messages = append(messages, *m)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating chat history rows: %w", rows.Err())
	}
	return messages, total, nil
}
