package domain

import "time"

// WeatherReport is the cached weather payload for one location. Reports are
// shared between all users; there is no owner.
type WeatherReport struct {
	WeatherID          string
	Location           string
	CurrentWeather     map[string]any
	HourlyForecast     []map[string]any
	WeeklyForecast     []map[string]any
	AgriculturalAlerts []map[string]any
	UpdatedAt          time.Time
}
