package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"physique_backend/internal/middleware"
	"physique_backend/internal/services"
)

type HistoryHandler struct {
	*BaseHandler
	historyService services.HistoryService
}

func NewHistoryHandler(base *BaseHandler, historyService services.HistoryService) *HistoryHandler {
	return &HistoryHandler{
		BaseHandler:    base,
		historyService: historyService,
	}
}

// RegisterRoutes mounts the history endpoints under /api/v1/analyses.
func (h *HistoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	analyses := rg.Group("/analyses")
	analyses.Use(middleware.AuthMiddleware())
	{
		analyses.GET("", h.List)
		analyses.GET("/stats", h.Stats)
		analyses.GET("/:id", h.Get)
		analyses.DELETE("/:id", h.Delete)
	}
}

// List godoc
// @Summary List saved analyses
// @Tags history
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {object} dto.HistoryResponse
// @Failure 401 {object} apperrors.AppError
// @Router /analyses [get]
func (h *HistoryHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	page := ParseQueryInt(c, "page", 1)
	limit := ParseQueryInt(c, "limit", 20)

	resp, err := h.historyService.List(h.GetDB(c), userID, page, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary Get one saved analysis
// @Tags history
// @Produce json
// @Security BearerAuth
// @Param id path string true "Analysis ID"
// @Success 200 {object} dto.AnalysisDetail
// @Failure 404 {object} apperrors.AppError
// @Router /analyses/{id} [get]
func (h *HistoryHandler) Get(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.historyService.Get(h.GetDB(c), userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary Delete a saved analysis
// @Tags history
// @Produce json
// @Security BearerAuth
// @Param id path string true "Analysis ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} apperrors.AppError
// @Router /analyses/{id} [delete]
func (h *HistoryHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.historyService.Delete(h.GetDB(c), userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Analysis deleted."})
}

// Stats godoc
// @Summary Aggregate analysis statistics
// @Tags history
// @Produce json
// @Security BearerAuth
// @Success 200 {object} repositories.AnalysisStats
// @Failure 401 {object} apperrors.AppError
// @Router /analyses/stats [get]
func (h *HistoryHandler) Stats(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.historyService.Stats(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
