package pgsql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrifusion/agrifusion-backend/internal/apperrors"
	"github.com/agrifusion/agrifusion-backend/internal/core/domain"
	"github.com/agrifusion/agrifusion-backend/internal/dto"
)

var userTestColumns = []string{
	"id", "full_name", "email", "phone", "password_hash", "farm_location",
	"farm_size", "crop_types", "language_preference", "created_at", "updated_at",
}

func ptr[T any](v T) *T { return &v }

func uniqueViolationErr() error {
	return &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"}
}

func TestPgxUserRepository_CreateUser(t *testing.T) {
	now := time.Now()
	user := domain.User{
		UserID:             uuid.NewString(),
		FullName:           "Asha Patel",
		Email:              ptr("asha@example.com"),
		LanguagePreference: "English",
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		wantErr   error
	}{
		{
			name: "successful insert",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`INSERT INTO users`).
					WithArgs(user.UserID, user.FullName, user.Email, user.Phone,
						user.PasswordHash, user.FarmLocation, user.LanguagePreference,
						user.CreatedAt, user.UpdatedAt).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "unique violation maps to ErrDuplicate",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`INSERT INTO users`).
					WithArgs(user.UserID, user.FullName, user.Email, user.Phone,
						user.PasswordHash, user.FarmLocation, user.LanguagePreference,
						user.CreatedAt, user.UpdatedAt).
					WillReturnError(uniqueViolationErr())
			},
			wantErr: apperrors.ErrDuplicate,
		},
		{
			name: "other database error passes through",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`INSERT INTO users`).
					WithArgs(user.UserID, user.FullName, user.Email, user.Phone,
						user.PasswordHash, user.FarmLocation, user.LanguagePreference,
						user.CreatedAt, user.UpdatedAt).
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err, "failed to create mock")
			defer mock.Close()

			tt.setupMock(mock)

			repo := NewUserRepository(mock)
			err = repo.CreateUser(context.Background(), user)

			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, apperrors.ErrDuplicate) {
					assert.ErrorIs(t, err, apperrors.ErrDuplicate)
				} else {
					assert.Contains(t, err.Error(), tt.wantErr.Error())
					assert.NotErrorIs(t, err, apperrors.ErrDuplicate)
				}
			} else {
				require.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
		})
	}
}

func TestPgxUserRepository_FindUserByEmail(t *testing.T) {
	userID := uuid.NewString()
	now := time.Now()

	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		wantErr   error
	}{
		{
			name: "found",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows(userTestColumns).
					AddRow(userID, "Asha Patel", ptr("asha@example.com"), (*string)(nil),
						ptr("$2a$10$hash"), (*string)(nil), (*float64)(nil), []string(nil),
						"English", now, now)
				mock.ExpectQuery(`SELECT (.+) FROM users WHERE email`).
					WithArgs("asha@example.com").
					WillReturnRows(rows)
			},
		},
		{
			name: "no row maps to ErrNotFound",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT (.+) FROM users WHERE email`).
					WithArgs("asha@example.com").
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: apperrors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err, "failed to create mock")
			defer mock.Close()

			tt.setupMock(mock)

			repo := NewUserRepository(mock)
			user, err := repo.FindUserByEmail(context.Background(), "asha@example.com")

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				require.NotNil(t, user)
				assert.Equal(t, userID, user.UserID)
				assert.Equal(t, "Asha Patel", user.FullName)
				require.NotNil(t, user.Email)
				assert.Equal(t, "asha@example.com", *user.Email)
				assert.Nil(t, user.Phone)
			}

			assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
		})
	}
}

func TestPgxUserRepository_UpdateUserProfile(t *testing.T) {
	userID := uuid.NewString()
	now := time.Now()

	tests := []struct {
		name      string
		req       dto.UpdateProfileRequest
		setupMock func(mock pgxmock.PgxPoolIface, req dto.UpdateProfileRequest)
		wantErr   error
	}{
		{
			name: "partial update keeps omitted fields",
			req:  dto.UpdateProfileRequest{FarmLocation: ptr("Nashik")},
			setupMock: func(mock pgxmock.PgxPoolIface, req dto.UpdateProfileRequest) {
				rows := pgxmock.NewRows(userTestColumns).
					AddRow(userID, "Asha Patel", ptr("asha@example.com"), (*string)(nil),
						(*string)(nil), ptr("Nashik"), (*float64)(nil), []string(nil),
						"English", now, now)
				// Omitted fields travel as NULL so COALESCE keeps the
				// stored values.
				mock.ExpectQuery(`UPDATE users`).
					WithArgs(req.FullName, req.Email, req.Phone, req.FarmLocation, userID).
					WillReturnRows(rows)
			},
		},
		{
			name: "unknown user maps to ErrNotFound",
			req:  dto.UpdateProfileRequest{FullName: ptr("Asha P.")},
			setupMock: func(mock pgxmock.PgxPoolIface, req dto.UpdateProfileRequest) {
				mock.ExpectQuery(`UPDATE users`).
					WithArgs(req.FullName, req.Email, req.Phone, req.FarmLocation, userID).
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: apperrors.ErrNotFound,
		},
		{
			name: "email collision maps to ErrDuplicate",
			req:  dto.UpdateProfileRequest{Email: ptr("taken@example.com")},
			setupMock: func(mock pgxmock.PgxPoolIface, req dto.UpdateProfileRequest) {
				mock.ExpectQuery(`UPDATE users`).
					WithArgs(req.FullName, req.Email, req.Phone, req.FarmLocation, userID).
					WillReturnError(uniqueViolationErr())
			},
			wantErr: apperrors.ErrDuplicate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err, "failed to create mock")
			defer mock.Close()

			tt.setupMock(mock, tt.req)

			repo := NewUserRepository(mock)
			user, err := repo.UpdateUserProfile(context.Background(), userID, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				require.NotNil(t, user)
				require.NotNil(t, user.FarmLocation)
				assert.Equal(t, "Nashik", *user.FarmLocation)
				// Fields outside the request stay intact.
				assert.Equal(t, "Asha Patel", user.FullName)
			}

			assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
		})
	}
}
