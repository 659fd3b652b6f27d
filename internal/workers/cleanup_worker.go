package workers

import (
	"context"
	"time"

	"gorm.io/gorm"

	"physique_backend/internal/logger"
	"physique_backend/internal/repositories"
)

const (
	tokenSweepInterval   = time.Hour
	accountSweepInterval = 6 * time.Hour
	unverifiedAccountTTL = 24 * time.Hour
)

// CleanupWorker removes expired refresh tokens and accounts that never
// completed email verification.
type CleanupWorker struct {
	db               *gorm.DB
	userRepo         repositories.UserRepository
	refreshTokenRepo repositories.RefreshTokenRepository
}

func NewCleanupWorker(db *gorm.DB) *CleanupWorker {
	return &CleanupWorker{
		db:               db,
		userRepo:         repositories.NewUserRepository(),
		refreshTokenRepo: repositories.NewRefreshTokenRepository(),
	}
}

// Start launches both sweeps. They stop when ctx is cancelled.
func (w *CleanupWorker) Start(ctx context.Context) {
	go w.sweepExpiredTokens(ctx)
	go w.sweepUnverifiedAccounts(ctx)
}

func (w *CleanupWorker) sweepExpiredTokens(ctx context.Context) {
	ticker := time.NewTicker(tokenSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("token cleanup worker stopped")
			return
		case <-ticker.C:
			removed, err := w.refreshTokenRepo.CleanExpired(w.db)
			logger.WorkerLog("cleanup", "expired refresh tokens", err)
			if err == nil && removed > 0 {
				logger.Info("removed expired refresh tokens", "count", removed)
			}
		}
	}
}

func (w *CleanupWorker) sweepUnverifiedAccounts(ctx context.Context) {
	ticker := time.NewTicker(accountSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("account cleanup worker stopped")
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-unverifiedAccountTTL)
			removed, err := w.userRepo.DeleteUnverifiedBefore(w.db, cutoff)
			logger.WorkerLog("cleanup", "stale unverified accounts", err)
			if err == nil && removed > 0 {
				logger.Info("removed stale unverified accounts", "count", removed)
			}
		}
	}
}
