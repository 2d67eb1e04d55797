package repositories

import (
	"context"

	"github.com/agrifusion/agrifusion-backend/internal/core/domain"
)

// WeatherRepository persists the shared per-location weather cache.
type WeatherRepository interface {
	// UpsertWeather inserts or replaces the report for its location in a
	// single atomic statement keyed by the unique location constraint.
	UpsertWeather(ctx context.Context, report domain.WeatherReport) (*domain.WeatherReport, error)
	FindWeatherByLocation(ctx context.Context, location string) (*domain.WeatherReport, error)
	ListLocations(ctx context.Context) ([]domain.WeatherReport, error)
}
