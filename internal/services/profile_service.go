package services

import (
	"gorm.io/gorm"

	"physique_backend/internal/models"
	"physique_backend/internal/repositories"
	"physique_backend/internal/services/dto"
	"physique_backend/pkg/apperrors"
)

type ProfileService interface {
	GetProfile(db *gorm.DB, userID string) (*dto.ProfileResponse, error)
	UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	UpdatePreferences(db *gorm.DB, userID string, req *dto.UpdatePreferencesRequest) (*dto.ProfileResponse, error)
}

type ProfileServiceImpl struct {
	userRepo repositories.UserRepository
	prefRepo repositories.PreferenceRepository
}

func NewProfileService(
	userRepo repositories.UserRepository,
	prefRepo repositories.PreferenceRepository,
) ProfileService {
	return &ProfileServiceImpl{
		userRepo: userRepo,
		prefRepo: prefRepo,
	}
}

func (s *ProfileServiceImpl) GetProfile(db *gorm.DB, userID string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return s.buildResponse(db, user)
}

// UpdateProfile patches the basic account fields. Empty fields keep
// their current value.
func (s *ProfileServiceImpl) UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Age != 0 {
		user.Age = req.Age
	}
	if req.Gender != "" {
		user.Gender = req.Gender
	}
	if req.Goal != "" {
		user.Goal = req.Goal
	}

	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.buildResponse(db, user)
}

// UpdatePreferences replaces the stored training preferences.
func (s *ProfileServiceImpl) UpdatePreferences(db *gorm.DB, userID string, req *dto.UpdatePreferencesRequest) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	pref := &models.UserPreference{
		UserID:         userID,
		Experience:     req.Experience,
		Equipment:      req.Equipment,
		TimePerWorkout: req.TimePerWorkout,
		Weight:         req.Weight,
		ActivityLevel:  req.ActivityLevel,
		BMICategory:    req.BMICategory,
	}
	if err := s.prefRepo.Upsert(db, pref); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.buildResponse(db, user)
}

func (s *ProfileServiceImpl) buildResponse(db *gorm.DB, user *models.User) (*dto.ProfileResponse, error) {
	resp := &dto.ProfileResponse{User: UserToResponse(user)}

	pref, err := s.prefRepo.FindByUserID(db, user.ID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPreferenceNotFound) {
			return resp, nil
		}
		return nil, apperrors.InternalError(err)
	}

	resp.Preferences = &dto.PreferencesResponse{
		Experience:     pref.Experience,
		Equipment:      pref.Equipment,
		TimePerWorkout: pref.TimePerWorkout,
		Weight:         pref.Weight,
		ActivityLevel:  pref.ActivityLevel,
		BMICategory:    pref.BMICategory,
	}
	return resp, nil
}
