package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/agrifusion/agrifusion-backend/internal/core/ports/services"
	"github.com/agrifusion/agrifusion-backend/internal/dto"
)

// weatherHandler handles the shared per-location weather cache. Reads are
// public; writes require auth.
type weatherHandler struct {
	weatherService portssvc.WeatherSvcFacade
}

func newWeatherHandler(ws portssvc.WeatherSvcFacade) *weatherHandler {
	return &weatherHandler{weatherService: ws}
}

// registerWeatherRoutes registers the weather routes.
func registerWeatherRoutes(r *gin.Engine, ws portssvc.WeatherSvcFacade, authRequired gin.HandlerFunc) {
	h := newWeatherHandler(ws)

	weather := r.Group("/api/weather")
	{
		weather.POST("", authRequired, h.saveWeather)
		weather.GET("", h.getWeather)
		weather.GET("/locations", h.listLocations)
	}
}

// saveWeather godoc
// @Summary Save weather data for a location
// @Description Inserts or replaces the cached report for the location in one atomic statement.
// @Tags weather
// @Accept json
// @Produce json
// @Param weather body dto.SaveWeatherRequest true "Weather payload"
// @Success 201 {object} dto.WeatherResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /weather [post]
func (h *weatherHandler) saveWeather(c *gin.Context) {
	var req dto.SaveWeatherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Location required"})
		return
	}

	report, err := h.weatherService.SaveWeather(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToWeatherResponse(report, false))
}

// getWeather godoc
// @Summary Get cached weather for a location
// @Description The response carries isStale=true when the report is more than an hour old.
// @Tags weather
// @Produce json
// @Param location query string true "Location name"
// @Success 200 {object} dto.WeatherResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /weather [get]
func (h *weatherHandler) getWeather(c *gin.Context) {
	location := c.Query("location")
	if location == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Location required"})
		return
	}

	report, isStale, err := h.weatherService.GetWeather(c.Request.Context(), location)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToWeatherResponse(report, isStale))
}

// listLocations godoc
// @Summary List all cached weather locations
// @Tags weather
// @Produce json
// @Success 200 {object} dto.ListWeatherLocationsResponse
// @Router /weather/locations [get]
func (h *weatherHandler) listLocations(c *gin.Context) {
	reports, err := h.weatherService.ListLocations(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	locations := make([]dto.WeatherLocation, len(reports))
	for i, r := range reports {
		locations[i] = dto.WeatherLocation{Location: r.Location, UpdatedAt: r.UpdatedAt}
	}
	c.JSON(http.StatusOK, dto.ListWeatherLocationsResponse{Locations: locations})
}
