package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"

	"gorm.io/gorm"

	"physique_backend/internal/auth"
	"physique_backend/internal/config"
	"physique_backend/internal/email"
	"physique_backend/internal/logger"
	"physique_backend/internal/models"
	"physique_backend/internal/repositories"
	"physique_backend/internal/services/dto"
	"physique_backend/pkg/apperrors"
)

const (
	verificationCodeTTL = 10 * time.Minute
	refreshTokenTTL     = 30 * 24 * time.Hour
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) error
	VerifyEmail(db *gorm.DB, req *dto.VerifyEmailRequest) error
	ResendCode(db *gorm.DB, req *dto.ResendCodeRequest) error
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(db *gorm.DB, refreshToken string) (*dto.AuthResponse, error)
	Logout(db *gorm.DB, refreshToken string) error
}

type AuthServiceImpl struct {
	userRepo         repositories.UserRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	emailProvider    email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		emailProvider:    emailProvider,
	}
}

// Register creates an unverified account and emails its verification code.
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) error {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return apperrors.ErrWeakPassword
	}

	if _, err := s.userRepo.FindByEmail(db, req.Email); err == nil {
		return apperrors.ErrEmailAlreadyExists
	}
	if _, err := s.userRepo.FindByUsername(db, req.Username); err == nil {
		return apperrors.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	code := generateVerificationCode()
	expires := time.Now().Add(verificationCodeTTL)

	user := &models.User{
		FullName:            req.FullName,
		Username:            req.Username,
		Email:               req.Email,
		PasswordHash:        hash,
		Age:                 req.Age,
		Gender:              req.Gender,
		Goal:                req.Goal,
		IsVerified:          false,
		VerificationCode:    code,
		VerificationExpires: &expires,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return apperrors.ErrEmailAlreadyExists
		}
		return apperrors.InternalError(err)
	}

	s.sendVerificationEmail(user)
	return nil
}

// VerifyEmail checks the submitted code against the stored one.
func (s *AuthServiceImpl) VerifyEmail(db *gorm.DB, req *dto.VerifyEmailRequest) error {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrVerificationCode
		}
		return apperrors.InternalError(err)
	}

	if user.IsVerified {
		return nil
	}
	if user.VerificationCode == "" || user.VerificationCode != req.Code {
		return apperrors.ErrVerificationCode
	}
	if user.VerificationExpires == nil || time.Now().After(*user.VerificationExpires) {
		return apperrors.ErrVerificationCode
	}

	if err := s.userRepo.VerifyUser(db, user.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// ResendCode issues a fresh verification code for an unverified account.
func (s *AuthServiceImpl) ResendCode(db *gorm.DB, req *dto.ResendCodeRequest) error {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			// Do not leak which emails exist.
			return nil
		}
		return apperrors.InternalError(err)
	}
	if user.IsVerified {
		return nil
	}

	code := generateVerificationCode()
	expires := time.Now().Add(verificationCodeTTL)
	if err := s.userRepo.SetVerificationCode(db, user.ID, code, expires); err != nil {
		return apperrors.InternalError(err)
	}

	user.VerificationCode = code
	s.sendVerificationEmail(user)
	return nil
}

// Login authenticates a verified account and issues a token pair.
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsVerified {
		return nil, apperrors.ErrUserNotVerified
	}

	return s.issueTokens(db, user)
}

// Refresh rotates a refresh token: the old one is revoked, a new pair
// is issued.
func (s *AuthServiceImpl) Refresh(db *gorm.DB, refreshToken string) (*dto.AuthResponse, error) {
	stored, err := s.refreshTokenRepo.FindByToken(db, refreshToken)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return nil, apperrors.ErrInvalidRefreshToken
		}
		return nil, apperrors.InternalError(err)
	}
	if time.Now().After(stored.ExpiresAt) {
		_ = s.refreshTokenRepo.DeleteByToken(db, refreshToken)
		return nil, apperrors.ErrInvalidRefreshToken
	}

	user, err := s.userRepo.FindByID(db, stored.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	if err := s.refreshTokenRepo.DeleteByToken(db, refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.issueTokens(db, user)
}

// Logout revokes a refresh token. Revoking an unknown token is not an
// error.
func (s *AuthServiceImpl) Logout(db *gorm.DB, refreshToken string) error {
	err := s.refreshTokenRepo.DeleteByToken(db, refreshToken)
	if err != nil && !apperrors.Is(err, repositories.ErrRefreshTokenNotFound) {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) issueTokens(db *gorm.DB, user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := auth.GenerateToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken := generateRefreshToken()
	if err := s.refreshTokenRepo.Create(db, &models.RefreshToken{
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}); err != nil {
		return nil, apperrors.InternalError(err)
	}

	cfg := config.GetConfig()
	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(cfg.JWT.TTL) * time.Minute),
		User:         UserToResponse(user),
	}, nil
}

func (s *AuthServiceImpl) sendVerificationEmail(user *models.User) {
	body := email.VerificationBody(user.FullName, user.VerificationCode)
	if err := s.emailProvider.Send(user.Email, email.VerificationSubject, body); err != nil {
		// Delivery failures must not fail registration; the user can
		// request a new code.
		logger.WithError(err).Error("failed to send verification email", "email", user.Email)
	}
}

// UserToResponse maps a user model to its public DTO.
func UserToResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:         user.ID,
		FullName:   user.FullName,
		Username:   user.Username,
		Email:      user.Email,
		Age:        user.Age,
		Gender:     user.Gender,
		Goal:       user.Goal,
		IsVerified: user.IsVerified,
	}
}

// generateVerificationCode returns a 6-digit numeric code.
func generateVerificationCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken.
		panic(fmt.Sprintf("crypto/rand failed: %v", err))
	}
	return fmt.Sprintf("%06d", n.Int64())
}

// generateRefreshToken returns a 256-bit opaque token.
func generateRefreshToken() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("crypto/rand failed: %v", err))
	}
	return hex.EncodeToString(buf)
}
