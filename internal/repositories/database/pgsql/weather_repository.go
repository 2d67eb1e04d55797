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

type PgxWeatherRepository struct {
	db PgxPool
}

// NewWeatherRepository creates a pgsql-backed weather-cache repository.
func NewWeatherRepository(db PgxPool) portsrepo.WeatherRepository {
	return &PgxWeatherRepository{db: db}
}

var _ portsrepo.WeatherRepository = (*PgxWeatherRepository)(nil)

const weatherColumns = `id, location, current_weather, hourly_forecast, weekly_forecast, agricultural_alerts, updated_at`

func scanWeather(row pgx.Row) (*domain.WeatherReport, error) {
	var m models.WeatherReport
	err := row.Scan(
		&m.WeatherID,
		&m.Location,
		&m.CurrentWeather,
		&m.HourlyForecast,
		&m.WeeklyForecast,
		&m.AgriculturalAlerts,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan weather row: %w", err)
	}
	return &domain.WeatherReport{
		WeatherID:          m.WeatherID,
		Location:           m.Location,
		CurrentWeather:     m.CurrentWeather,
		HourlyForecast:     m.HourlyForecast,
		WeeklyForecast:     m.WeeklyForecast,
		AgriculturalAlerts: m.AgriculturalAlerts,
		UpdatedAt:          m.UpdatedAt,
	}, nil
}

// UpsertWeather writes the report in one statement keyed by the unique
// location constraint, so concurrent writers for the same location cannot
// create duplicate rows.
func (r *PgxWeatherRepository) UpsertWeather(ctx context.Context, report domain.WeatherReport) (*domain.WeatherReport, error) {
	query := `
        INSERT INTO weather_data (id, location, current_weather, hourly_forecast, weekly_forecast, agricultural_alerts, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (location) DO UPDATE SET
            current_weather     = EXCLUDED.current_weather,
            hourly_forecast     = EXCLUDED.hourly_forecast,
            weekly_forecast     = EXCLUDED.weekly_forecast,
            agricultural_alerts = EXCLUDED.agricultural_alerts,
            updated_at          = EXCLUDED.updated_at
        RETURNING ` + weatherColumns + `;
    `
	return scanWeather(r.db.QueryRow(ctx, query,
		report.WeatherID,
		report.Location,
		report.CurrentWeather,
		report.HourlyForecast,
		report.WeeklyForecast,
		report.AgriculturalAlerts,
		report.UpdatedAt,
	))
}

func (r *PgxWeatherRepository) FindWeatherByLocation(ctx context.Context, location string) (*domain.WeatherReport, error) {
	query := `SELECT ` + weatherColumns + ` FROM weather_data WHERE location = $1;`
	return scanWeather(r.db.QueryRow(ctx, query, location))
}

func (r *PgxWeatherRepository) ListLocations(ctx context.Context) ([]domain.WeatherReport, error) {
	query := `SELECT location, updated_at FROM weather_data ORDER BY updated_at DESC;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query weather locations: %w", err)
	}
	defer rows.Close()

	reports := []domain.WeatherReport{}
	for rows.Next() {
		var report domain.WeatherReport
		if err := rows.Scan(&report.Location, &report.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan weather location row: %w", err)
		}
		reports = append(reports, report)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating weather location rows: %w", rows.Err())
	}
	return reports, nil
}
