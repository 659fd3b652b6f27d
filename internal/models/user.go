package models

import "time"

type User struct {
	BaseModel
	FullName     string `gorm:"not null" json:"full_name"`
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Age          int    `json:"age"`
	Gender       string `gorm:"type:varchar(20)" json:"gender"`
	Goal         string `gorm:"type:varchar(40)" json:"goal"`

	IsVerified          bool       `gorm:"default:false" json:"is_verified"`
	VerificationCode    string     `gorm:"type:varchar(6)" json:"-"`
	VerificationExpires *time.Time `json:"-"`

	// Relations
	Preference    *UserPreference `gorm:"foreignKey:UserID" json:"preference,omitempty"`
	Analyses      []Analysis      `gorm:"foreignKey:UserID" json:"-"`
	RefreshTokens []RefreshToken  `gorm:"foreignKey:UserID" json:"-"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index" json:"user_id"`
	Token     string    `gorm:"not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}
