package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agrifusion/agrifusion-backend/cmd/docs"
	"github.com/agrifusion/agrifusion-backend/internal/apperrors"
	portssvc "github.com/agrifusion/agrifusion-backend/internal/core/ports/services"
	"github.com/agrifusion/agrifusion-backend/internal/middleware"
	"github.com/agrifusion/agrifusion-backend/internal/platform/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// ErrorResponse is the generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	r.GET("/", GetHome)
	r.GET("/health", GetHealth)

	authRequired := middleware.AuthMiddleware(services.Token)

	registerUserRoutes(r, services, authRequired)
	registerDiagnosisRoutes(r, services.Diagnosis, authRequired)
	registerVoiceRoutes(r, services.Voice, authRequired)
	registerWeatherRoutes(r, services.Weather, authRequired)

	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// respondError translates service-layer errors into the HTTP taxonomy:
// validation and duplicates are 400, auth failures 401, missing rows 404,
// everything else a generic 500.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrAuthentication):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid credentials"})
	case errors.Is(err, apperrors.ErrInvalidToken), errors.Is(err, apperrors.ErrMissingCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid token"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Resource not found"})
	default:
		logger.Error("Unexpected error handling request", "error", err.Error())
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
