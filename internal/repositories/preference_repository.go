package repositories

import (
	"errors"

	"gorm.io/gorm"

	"physique_backend/internal/models"
)

var ErrPreferenceNotFound = errors.New("preference not found")

// PreferenceRepository stores one training-preference row per user.
type PreferenceRepository interface {
	FindByUserID(db *gorm.DB, userID string) (*models.UserPreference, error)
	Upsert(db *gorm.DB, pref *models.UserPreference) error
}

type preferenceRepository struct{}

func NewPreferenceRepository() PreferenceRepository {
	return &preferenceRepository{}
}

func (r *preferenceRepository) FindByUserID(db *gorm.DB, userID string) (*models.UserPreference, error) {
	var pref models.UserPreference
	if err := db.Where("user_id = ?", userID).First(&pref).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPreferenceNotFound
		}
		return nil, err
	}
	return &pref, nil
}

// Upsert creates the row on first save and updates it afterwards. The
// user_id unique index keeps it one row per user.
func (r *preferenceRepository) Upsert(db *gorm.DB, pref *models.UserPreference) error {
	var existing models.UserPreference
	err := db.Where("user_id = ?", pref.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Create(pref).Error
	}
	if err != nil {
		return err
	}

	pref.ID = existing.ID
	pref.CreatedAt = existing.CreatedAt
	return db.Save(pref).Error
}
