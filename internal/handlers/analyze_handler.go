package handlers

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"physique_backend/internal/config"
	"physique_backend/internal/middleware"
	"physique_backend/internal/services"
	"physique_backend/internal/services/dto"
	"physique_backend/pkg/apperrors"
)

type AnalyzeHandler struct {
	*BaseHandler
	analysisService services.AnalysisService
}

func NewAnalyzeHandler(base *BaseHandler, analysisService services.AnalysisService) *AnalyzeHandler {
	return &AnalyzeHandler{
		BaseHandler:     base,
		analysisService: analysisService,
	}
}

// RegisterRoutes mounts the analyze endpoint. Authentication is
// optional: anonymous users get results, logged-in users also get them
// persisted.
func (h *AnalyzeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", middleware.OptionalAuthMiddleware(), h.Analyze)
}

// Analyze godoc
// @Summary Analyze physique photos
// @Description Scores three photos (front, back, legs), builds a workout plan and a meal guide. Accepts an optional "preferences" JSON form field.
// @Tags analyze
// @Accept multipart/form-data
// @Produce json
// @Param front formData file true "Front photo"
// @Param back formData file true "Back photo"
// @Param legs formData file true "Legs photo"
// @Param preferences formData string false "Preferences JSON"
// @Success 200 {object} dto.AnalyzeResponse
// @Failure 400 {object} apperrors.AppError
// @Failure 502 {object} apperrors.AppError
// @Router /analyze [post]
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	cfg := config.GetConfig()

	images := make([][]byte, 0, len(services.AnalyzeViews))
	for _, view := range services.AnalyzeViews {
		fileHeader, err := c.FormFile(view)
		if err != nil {
			apperrors.HandleError(c, apperrors.NewBadRequestError("Missing photo: "+view))
			return
		}
		if fileHeader.Size > cfg.Upload.MaxSize {
			apperrors.HandleError(c, apperrors.NewBadRequestError("Photo too large: "+view))
			return
		}
		if !allowedType(cfg, fileHeader) {
			apperrors.HandleError(c, apperrors.NewBadRequestError("Unsupported photo type: "+view))
			return
		}

		data, err := readUpload(fileHeader)
		if err != nil {
			h.HandleServiceError(c, apperrors.InternalError(err))
			return
		}
		images = append(images, data)
	}

	var prefs dto.AnalyzePreferences
	if raw := c.PostForm("preferences"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &prefs); err != nil {
			apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid preferences JSON: "+err.Error()))
			return
		}
		if !h.validate(c, &prefs) {
			return
		}
	}

	resp, err := h.analysisService.Analyze(c.Request.Context(), h.GetDB(c), services.AnalyzeInput{
		Images:      images,
		Preferences: prefs,
		UserID:      middleware.GetUserID(c),
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func allowedType(cfg *config.Config, fh *multipart.FileHeader) bool {
	contentType := fh.Header.Get("Content-Type")
	for _, t := range cfg.Upload.AllowedTypes {
		if t == contentType {
			return true
		}
	}
	return false
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
