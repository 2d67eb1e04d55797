package services

import (
	"context"

	"github.com/agrifusion/agrifusion-backend/internal/core/domain"
	"github.com/agrifusion/agrifusion-backend/internal/dto"
)

// WeatherSvcFacade defines the shared weather-cache operations.
type WeatherSvcFacade interface {
	SaveWeather(ctx context.Context, req dto.SaveWeatherRequest) (*domain.WeatherReport, error)
	// GetWeather also reports whether the cached data is stale (older than
	// one hour).
	GetWeather(ctx context.Context, location string) (*domain.WeatherReport, bool, error)
	ListLocations(ctx context.Context) ([]domain.WeatherReport, error)
}
