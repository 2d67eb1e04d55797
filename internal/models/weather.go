package models

import "time"

// WeatherReport is the database representation of a weather_data row.
// Forecast payloads are stored as JSONB.
type WeatherReport struct {
	WeatherID          string           `db:"id"`
	Location           string           `db:"location"`
	CurrentWeather     map[string]any   `db:"current_weather"`
	HourlyForecast     []map[string]any `db:"hourly_forecast"`
	WeeklyForecast     []map[string]any `db:"weekly_forecast"`
	AgriculturalAlerts []map[string]any `db:"agricultural_alerts"`
	UpdatedAt          time.Time        `db:"updated_at"`
}
