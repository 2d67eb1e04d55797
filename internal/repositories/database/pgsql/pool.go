package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/agrifusion/agrifusion-backend/internal/core/ports/repositories"
)

// PgxPool is the subset of pgxpool.Pool the repositories need. pgxmock
// satisfies it too, which keeps the repository tests free of a live database.
type PgxPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

var _ PgxPool = (*pgxpool.Pool)(nil)

// NewRepositoryContainer builds all pgsql-backed repositories over one pool.
func NewRepositoryContainer(pool PgxPool) *portsrepo.RepositoryContainer {
	return &portsrepo.RepositoryContainer{
		User:      NewUserRepository(pool),
		Diagnosis: NewDiagnosisRepository(pool),
		Voice:     NewVoiceRepository(pool),
		Weather:   NewWeatherRepository(pool),
	}
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
