package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"physique_backend/internal/models"
)

var ErrAnalysisNotFound = errors.New("analysis not found")

// AnalysisStats aggregates a user's analysis history.
type AnalysisStats struct {
	TotalAnalyses int64      `json:"totalAnalyses"`
	AverageScore  float64    `json:"averageScore"`
	BestScore     float64    `json:"bestScore"`
	LatestScore   float64    `json:"latestScore"`
	FirstAnalysis *time.Time `json:"firstAnalysis"`
	LastAnalysis  *time.Time `json:"lastAnalysis"`
}

// AnalysisRepository persists completed analyses for history and stats.
type AnalysisRepository interface {
	Create(db *gorm.DB, analysis *models.Analysis) error
	FindByID(db *gorm.DB, id string) (*models.Analysis, error)
	FindByUserID(db *gorm.DB, userID string, limit, offset int) ([]models.Analysis, error)
	CountByUserID(db *gorm.DB, userID string) (int64, error)
	Delete(db *gorm.DB, id string) error
	GetStats(db *gorm.DB, userID string) (*AnalysisStats, error)
}

type analysisRepository struct{}

func NewAnalysisRepository() AnalysisRepository {
	return &analysisRepository{}
}

func (r *analysisRepository) Create(db *gorm.DB, analysis *models.Analysis) error {
	return db.Create(analysis).Error
}

func (r *analysisRepository) FindByID(db *gorm.DB, id string) (*models.Analysis, error) {
	var analysis models.Analysis
	if err := db.Where("id = ?", id).First(&analysis).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnalysisNotFound
		}
		return nil, err
	}
	return &analysis, nil
}

func (r *analysisRepository) FindByUserID(db *gorm.DB, userID string, limit, offset int) ([]models.Analysis, error) {
	var analyses []models.Analysis
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&analyses).Error
	return analyses, err
}

func (r *analysisRepository) CountByUserID(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.Analysis{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *analysisRepository) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Analysis{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAnalysisNotFound
	}
	return nil
}

// GetStats aggregates count, average and best overall scores plus the
// first/latest timestamps in two queries.
func (r *analysisRepository) GetStats(db *gorm.DB, userID string) (*AnalysisStats, error) {
	stats := &AnalysisStats{}

	row := db.Model(&models.Analysis{}).
		Select("COUNT(*) AS total, COALESCE(AVG(overall_score), 0) AS avg, COALESCE(MAX(overall_score), 0) AS best, MIN(created_at) AS first, MAX(created_at) AS last").
		Where("user_id = ?", userID).
		Row()
	if err := row.Scan(&stats.TotalAnalyses, &stats.AverageScore, &stats.BestScore, &stats.FirstAnalysis, &stats.LastAnalysis); err != nil {
		return nil, err
	}

	if stats.TotalAnalyses > 0 {
		var latest models.Analysis
		if err := db.Where("user_id = ?", userID).
			Order("created_at DESC").
			First(&latest).Error; err != nil {
			return nil, err
		}
		stats.LatestScore = latest.OverallScore
	}
	return stats, nil
}
