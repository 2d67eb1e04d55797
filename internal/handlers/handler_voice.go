package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/agrifusion/agrifusion-backend/internal/core/ports/services"
	"github.com/agrifusion/agrifusion-backend/internal/dto"
	"github.com/agrifusion/agrifusion-backend/internal/middleware"
)

// voiceHandler handles voice-query logs and chat history.
type voiceHandler struct {
	voiceService portssvc.VoiceSvcFacade
}

func newVoiceHandler(vs portssvc.VoiceSvcFacade) *voiceHandler {
	return &voiceHandler{voiceService: vs}
}

// registerVoiceRoutes registers the voice and chat routes; all require auth.
func registerVoiceRoutes(r *gin.Engine, vs portssvc.VoiceSvcFacade, authRequired gin.HandlerFunc) {
	h := newVoiceHandler(vs)

	voice := r.Group("/api/voice", authRequired)
	{
		voice.POST("/query", h.saveVoiceQuery)
		voice.GET("/query", h.listVoiceQueries)
		voice.GET("/query/bookmarked", h.listBookmarkedVoiceQueries)
		voice.PATCH("/query/:id/bookmark", h.toggleVoiceQueryBookmark)
		voice.DELETE("/query/:id", h.deleteVoiceQuery)

		voice.POST("/chat", h.saveChatMessage)
		voice.GET("/chat", h.listChatHistory)
	}
}

// saveVoiceQuery godoc
// @Summary Log a voice query
// @Tags voice
// @Accept json
// @Produce json
// @Param query body dto.SaveVoiceQueryRequest true "Voice query payload"
// @Success 201 {object} dto.VoiceQueryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /voice/query [post]
func (h *voiceHandler) saveVoiceQuery(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.SaveVoiceQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Query text required"})
		return
	}

	query, err := h.voiceService.SaveVoiceQuery(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToVoiceQueryResponse(query))
}

// listVoiceQueries godoc
// @Summary List own voice queries
// @Tags voice
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListVoiceQueriesResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /voice/query [get]
func (h *voiceHandler) listVoiceQueries(c *gin.Context) {
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
		params.Limit = 50
	}

	queries, total, err := h.voiceService.ListVoiceQueries(c.Request.Context(), userID, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListVoiceQueriesResponse{
		Queries: dto.ToVoiceQueryResponseSlice(queries),
		Total:   total,
		Limit:   params.Limit,
		Offset:  params.Offset,
	})
}

// listBookmarkedVoiceQueries godoc
// @Summary List own bookmarked voice queries
// @Tags voice
// @Produce json
// @Success 200 {array} dto.VoiceQueryResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /voice/query/bookmarked [get]
func (h *voiceHandler) listBookmarkedVoiceQueries(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	queries, err := h.voiceService.ListBookmarkedVoiceQueries(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToVoiceQueryResponseSlice(queries))
}

// toggleVoiceQueryBookmark godoc
// @Summary Toggle the bookmark flag on one voice query
// @Tags voice
// @Produce json
// @Param id path string true "Voice query ID"
// @Success 200 {object} dto.VoiceQueryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /voice/query/{id}/bookmark [patch]
func (h *voiceHandler) toggleVoiceQueryBookmark(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	query, err := h.voiceService.ToggleVoiceQueryBookmark(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToVoiceQueryResponse(query))
}

// deleteVoiceQuery godoc
// @Summary Delete one voice query
// @Tags voice
// @Produce json
// @Param id path string true "Voice query ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /voice/query/{id} [delete]
func (h *voiceHandler) deleteVoiceQuery(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.voiceService.DeleteVoiceQuery(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// saveChatMessage godoc
// @Summary Log a chat message
// @Tags voice
// @Accept json
// @Produce json
// @Param message body dto.SaveChatMessageRequest true "Chat message payload"
// @Success 201 {object} dto.ChatMessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /voice/chat [post]
func (h *voiceHandler) saveChatMessage(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.SaveChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Message required"})
		return
	}

	message, err := h.voiceService.SaveChatMessage(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToChatMessageResponse(message))
}

// listChatHistory godoc
// @Summary List own chat history
// @Tags voice
// @Produce json
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListChatMessagesResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /voice/chat [get]
func (h *voiceHandler) listChatHistory(c *gin.Context) {
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
		params.Limit = 100
	}

	messages, total, err := h.voiceService.ListChatHistory(c.Request.Context(), userID, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListChatMessagesResponse{
		Chats:  dto.ToChatMessageResponseSlice(messages),
		Total:  total,
		Limit:  params.Limit,
		Offset: params.Offset,
	})
}
