package handlers

import (
	"physique_backend/internal/services"
	"physique_backend/internal/validator"
)

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	ProfileHandler *ProfileHandler
	AnalyzeHandler *AnalyzeHandler
	HistoryHandler *HistoryHandler
}

// NewAppHandlers wires the handlers to the service container.
func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)
	return &AppHandlers{
		AuthHandler:    NewAuthHandler(base, sc.AuthService),
		ProfileHandler: NewProfileHandler(base, sc.ProfileService),
		AnalyzeHandler: NewAnalyzeHandler(base, sc.AnalysisService),
		HistoryHandler: NewHistoryHandler(base, sc.HistoryService),
	}
}
