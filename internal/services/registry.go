package services

import (
	"time"

	"physique_backend/internal/classifier"
	"physique_backend/internal/config"
	"physique_backend/internal/email"
	"physique_backend/internal/engine"
	"physique_backend/internal/imageprocessor"
	"physique_backend/internal/recommender"
	"physique_backend/internal/repositories"
)

// ServiceContainer wires every service the handlers depend on.
type ServiceContainer struct {
	AuthService     AuthService
	ProfileService  ProfileService
	AnalysisService AnalysisService
	HistoryService  HistoryService
	EmailProvider   email.Provider
}

// NewServiceContainer builds the full dependency graph from the config
// and the startup-loaded engine data.
func NewServiceContainer(cfg *config.Config, eng *engine.Engine, mapping classifier.ClassMapping) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	refreshTokenRepo := repositories.NewRefreshTokenRepository()
	prefRepo := repositories.NewPreferenceRepository()
	analysisRepo := repositories.NewAnalysisRepository()

	emailProvider := email.NewProvider(cfg)
	processor := imageprocessor.NewProcessor(cfg.Upload.ImageQuality)

	cls := classifier.NewHTTPClassifier(
		cfg.Classifier.BaseURL,
		mapping,
		time.Duration(cfg.Classifier.TimeoutSeconds)*time.Second,
	)
	rec := recommender.NewHTTPRecommender(
		cfg.Recommender.BaseURL,
		time.Duration(cfg.Recommender.TimeoutSeconds)*time.Second,
	)

	return &ServiceContainer{
		AuthService:     NewAuthService(userRepo, refreshTokenRepo, emailProvider),
		ProfileService:  NewProfileService(userRepo, prefRepo),
		AnalysisService: NewAnalysisService(eng, cls, rec, processor, prefRepo, userRepo, analysisRepo),
		HistoryService:  NewHistoryService(analysisRepo),
		EmailProvider:   emailProvider,
	}
}
