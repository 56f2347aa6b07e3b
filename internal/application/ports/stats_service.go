package ports

import (
	"context"

	"marketplace-admin-api/internal/domain/stats"
)

type StatsService interface {
	DashboardStats(ctx context.Context) (*stats.Dashboard, error)
}
