package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"marketplace-admin-api/internal/application/ports"
)

const purgeInterval = time.Hour

// PurgeWorker sweeps expired trash on a fixed interval. Each sweep runs the
// same archive-then-delete transaction as an explicit permanent delete, so a
// failed sweep never loses records.
type PurgeWorker struct {
	log          *zap.Logger
	userService  ports.UserService
	adminService ports.AdminService
}

func NewPurgeWorker(log *zap.Logger, userService ports.UserService, adminService ports.AdminService) *PurgeWorker {
	return &PurgeWorker{
		log:          log,
		userService:  userService,
		adminService: adminService,
	}
}

func (w *PurgeWorker) Run(ctx context.Context) {
	w.log.Info("starting trash purge worker")

	defer func() {
		w.log.Info("trash purge worker gracefully stopped")
	}()

	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.sweep(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (w *PurgeWorker) sweep(ctx context.Context) {
	users, err := w.userService.PurgeExpired(ctx)
	if err != nil {
		// alert
		w.log.Error("user trash purge error", zap.Error(err))
	}
	admins, err := w.adminService.PurgeExpired(ctx)
	if err != nil {
		// alert
		w.log.Error("admin trash purge error", zap.Error(err))
	}

	if users > 0 || admins > 0 {
		w.log.Info("trash purged",
			zap.Int("users", users),
			zap.Int("admins", admins),
		)
	}
}
