package dto

import (
	"time"

	"github.com/agrifusion/agrifusion-backend/internal/core/domain"
)

// SaveWeatherRequest carries a full weather payload for one location.
type SaveWeatherRequest struct {
	Location           string           `json:"location" binding:"required"`
	CurrentWeather     map[string]any   `json:"currentWeather"`
	HourlyForecast     []map[string]any `json:"hourlyForecast"`
	WeeklyForecast     []map[string]any `json:"weeklyForecast"`
	AgriculturalAlerts []map[string]any `json:"agriculturalAlerts"`
}

// WeatherResponse is the public view of a cached weather report. IsStale is
// set when the report is more than an hour old.
type WeatherResponse struct {
	WeatherID          string           `json:"id"`
	Location           string           `json:"location"`
	CurrentWeather     map[string]any   `json:"currentWeather,omitempty"`
	HourlyForecast     []map[string]any `json:"hourlyForecast,omitempty"`
	WeeklyForecast     []map[string]any `json:"weeklyForecast,omitempty"`
	AgriculturalAlerts []map[string]any `json:"agriculturalAlerts,omitempty"`
	UpdatedAt          time.Time        `json:"updatedAt"`
	IsStale            bool             `json:"isStale"`
}

// WeatherLocation is one entry of the known-locations listing.
type WeatherLocation struct {
	Location  string    `json:"location"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ListWeatherLocationsResponse wraps the known-locations listing.
type ListWeatherLocationsResponse struct {
	Locations []WeatherLocation `json:"locations"`
}

// ToWeatherResponse converts a domain.WeatherReport to its public representation.
func ToWeatherResponse(w *domain.WeatherReport, isStale bool) WeatherResponse {
	return WeatherResponse{
		WeatherID:          w.WeatherID,
		Location:           w.Location,
		CurrentWeather:     w.CurrentWeather,
		HourlyForecast:     w.HourlyForecast,
		WeeklyForecast:     w.WeeklyForecast,
		AgriculturalAlerts: w.AgriculturalAlerts,
		UpdatedAt:          w.UpdatedAt,
		IsStale:            isStale,
	}
}
