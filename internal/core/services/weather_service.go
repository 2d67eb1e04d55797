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

// staleAfter is how old a cached report may be before clients are told to
// refresh it.
const staleAfter = time.Hour

type weatherService struct {
	weatherRepo portsrepo.WeatherRepository
}

// NewWeatherService creates the shared weather-cache service.
func NewWeatherService(weatherRepo portsrepo.WeatherRepository) portssvc.WeatherSvcFacade {
	return &weatherService{weatherRepo: weatherRepo}
}

func (s *weatherService) SaveWeather(ctx context.Context, req dto.SaveWeatherRequest) (*domain.WeatherReport, error) {
	report := domain.WeatherReport{
		WeatherID:          uuid.NewString(),
		Location:           req.Location,
		CurrentWeather:     req.CurrentWeather,
		HourlyForecast:     req.HourlyForecast,
		WeeklyForecast:     req.WeeklyForecast,
		AgriculturalAlerts: req.AgriculturalAlerts,
		UpdatedAt:          time.Now(),
	}
	return s.weatherRepo.UpsertWeather(ctx, report)
}

func (s *weatherService) GetWeather(ctx context.Context, location string) (*domain.WeatherReport, bool, error) {
	report, err := s.weatherRepo.FindWeatherByLocation(ctx, location)
	if err != nil {
		return nil, false, err
	}
	isStale := time.Since(report.UpdatedAt) > staleAfter
	return report, isStale, nil
}

func (s *weatherService) ListLocations(ctx context.Context) ([]domain.WeatherReport, error) {
	return s.weatherRepo.ListLocations(ctx)
}
