package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/agrifusion/agrifusion-backend/internal/core/ports/services"
	"github.com/agrifusion/agrifusion-backend/internal/dto"
	"github.com/agrifusion/agrifusion-backend/internal/middleware"
)

// diagnosisHandler handles plant-disease diagnosis records.
type diagnosisHandler struct {
	diagnosisService portssvc.DiagnosisSvcFacade
}

func newDiagnosisHandler(ds portssvc.DiagnosisSvcFacade) *diagnosisHandler {
	return &diagnosisHandler{diagnosisService: ds}
}

// registerDiagnosisRoutes registers the diagnosis routes; all require auth.
func registerDiagnosisRoutes(r *gin.Engine, ds portssvc.DiagnosisSvcFacade, authRequired gin.HandlerFunc) {
	h := newDiagnosisHandler(ds)

	diagnoses := r.Group("/api/diagnoses", authRequired)
	{
		diagnoses.POST("", h.saveDiagnosis)
		diagnoses.GET("", h.listDiagnoses)
		diagnoses.GET("/bookmarked", h.listBookmarked)
		diagnoses.GET("/:id", h.getDiagnosis)
		diagnoses.PATCH("/:id/bookmark", h.toggleBookmark)
		diagnoses.DELETE("/:id", h.deleteDiagnosis)
	}
}

// saveDiagnosis godoc
// @Summary Save a diagnosis record
// @Tags diagnoses
// @Accept json
// @Produce json
// @Param diagnosis body dto.SaveDiagnosisRequest true "Diagnosis payload"
// @Success 201 {object} dto.DiagnosisResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /diagnoses [post]
func (h *diagnosisHandler) saveDiagnosis(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.SaveDiagnosisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Image URL and disease name required"})
		return
	}

	diagnosis, err := h.diagnosisService.SaveDiagnosis(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToDiagnosisResponse(diagnosis))
}

// listDiagnoses godoc
// @Summary List own diagnoses
// @Tags diagnoses
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListDiagnosesResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /diagnoses [get]
func (h *diagnosisHandler) listDiagnoses(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}
	if params.Limit <= 0 {
		params.Limit = 20
	}

	diagnoses, total, err := h.diagnosisService.ListDiagnoses(c.Request.Context(), userID, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListDiagnosesResponse{
		Diagnoses: dto.ToDiagnosisResponseSlice(diagnoses),
		Total:     total,
		Limit:     params.Limit,
		Offset:    params.Offset,
	})
}

// listBookmarked godoc
// @Summary List own bookmarked diagnoses
// @Tags diagnoses
// @Produce json
// @Success 200 {array} dto.DiagnosisResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /diagnoses/bookmarked [get]
func (h *diagnosisHandler) listBookmarked(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	diagnoses, err := h.diagnosisService.ListBookmarkedDiagnoses(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDiagnosisResponseSlice(diagnoses))
}

// getDiagnosis godoc
// @Summary Get one diagnosis
// @Description 404 whether the record is absent or owned by another user.
// @Tags diagnoses
// @Produce json
// @Param id path string true "Diagnosis ID"
// @Success 200 {object} dto.DiagnosisResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /diagnoses/{id} [get]
func (h *diagnosisHandler) getDiagnosis(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	diagnosis, err := h.diagnosisService.GetDiagnosis(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDiagnosisResponse(diagnosis))
}

// toggleBookmark godoc
// @Summary Toggle the bookmark flag on one diagnosis
// @Tags diagnoses
// @Produce json
// @Param id path string true "Diagnosis ID"
// @Success 200 {object} dto.DiagnosisResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /diagnoses/{id}/bookmark [patch]
func (h *diagnosisHandler) toggleBookmark(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	diagnosis, err := h.diagnosisService.ToggleBookmark(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDiagnosisResponse(diagnosis))
}

// deleteDiagnosis godoc
// @Summary Delete one diagnosis
// @Tags diagnoses
// @Produce json
// @Param id path string true "Diagnosis ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /diagnoses/{id} [delete]
func (h *diagnosisHandler) deleteDiagnosis(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.diagnosisService.DeleteDiagnosis(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
