package services

import (
	"encoding/json"

	"gorm.io/gorm"

	"physique_backend/internal/models"
	"physique_backend/internal/repositories"
	"physique_backend/internal/services/dto"
	"physique_backend/pkg/apperrors"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type HistoryService interface {
	List(db *gorm.DB, userID string, page, limit int) (*dto.HistoryResponse, error)
	Get(db *gorm.DB, userID, analysisID string) (*dto.AnalysisDetail, error)
	Delete(db *gorm.DB, userID, analysisID string) error
	Stats(db *gorm.DB, userID string) (*repositories.AnalysisStats, error)
}

type HistoryServiceImpl struct {
	analysisRepo repositories.AnalysisRepository
}

func NewHistoryService(analysisRepo repositories.AnalysisRepository) HistoryService {
	return &HistoryServiceImpl{analysisRepo: analysisRepo}
}

// List returns one page of the user's analyses, newest first.
func (s *HistoryServiceImpl) List(db *gorm.DB, userID string, page, limit int) (*dto.HistoryResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	analyses, err := s.analysisRepo.FindByUserID(db, userID, limit, (page-1)*limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	total, err := s.analysisRepo.CountByUserID(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.HistoryItem, 0, len(analyses))
	for _, a := range analyses {
		items = append(items, toHistoryItem(a))
	}
	return &dto.HistoryResponse{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

// Get returns one saved analysis with its stored documents. Users can
// only read their own analyses.
func (s *HistoryServiceImpl) Get(db *gorm.DB, userID, analysisID string) (*dto.AnalysisDetail, error) {
	analysis, err := s.findOwned(db, userID, analysisID)
	if err != nil {
		return nil, err
	}

	detail := &dto.AnalysisDetail{
		ID:           analysis.ID,
		OverallScore: analysis.OverallScore,
		CreatedAt:    analysis.CreatedAt,
	}
	if len(analysis.AnalysisJSON) > 0 {
		if err := json.Unmarshal(analysis.AnalysisJSON, &detail.Analysis); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}
	if len(analysis.PlansJSON) > 0 {
		if err := json.Unmarshal(analysis.PlansJSON, &detail.Plans); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}
	return detail, nil
}

func (s *HistoryServiceImpl) Delete(db *gorm.DB, userID, analysisID string) error {
	if _, err := s.findOwned(db, userID, analysisID); err != nil {
		return err
	}
	if err := s.analysisRepo.Delete(db, analysisID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *HistoryServiceImpl) Stats(db *gorm.DB, userID string) (*repositories.AnalysisStats, error) {
	stats, err := s.analysisRepo.GetStats(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return stats, nil
}

// findOwned loads an analysis and hides other users' records behind a
// 404 rather than a 403.
func (s *HistoryServiceImpl) findOwned(db *gorm.DB, userID, analysisID string) (*models.Analysis, error) {
	analysis, err := s.analysisRepo.FindByID(db, analysisID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAnalysisNotFound) {
			return nil, apperrors.NewNotFoundError("Analysis not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if analysis.UserID != userID {
		return nil, apperrors.NewNotFoundError("Analysis not found")
	}
	return analysis, nil
}

func toHistoryItem(a models.Analysis) dto.HistoryItem {
	return dto.HistoryItem{
		ID:           a.ID,
		OverallScore: a.OverallScore,
		ChestScore:   a.ChestScore,
		AbsScore:     a.AbsScore,
		ArmsScore:    a.ArmsScore,
		BackScore:    a.BackScore,
		LegsScore:    a.LegsScore,
		CreatedAt:    a.CreatedAt,
	}
}
