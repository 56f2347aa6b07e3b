package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"marketplace-admin-api/internal/application/ports"
	"marketplace-admin-api/internal/domain/role"
	"marketplace-admin-api/internal/infrastructure/jwt"
	"marketplace-admin-api/internal/interface/api/rest/middleware"
)

type DashboardController struct {
	statsService ports.StatsService
	logger       *zap.Logger
}

func NewDashboardController(
	r *gin.Engine,
	statsService ports.StatsService,
	logger *zap.Logger,
	jwtService *jwt.Service,
	resolver ports.RoleResolver,
) *DashboardController {
	dc := &DashboardController{
		statsService: statsService,
		logger:       logger,
	}

	r.GET(
		RouteDashboardStats,
		middleware.AuthMiddleware(jwtService),
		middleware.RequireRole(resolver, logger, role.SuperAdmin),
		dc.GetDashboardStatsHandler,
	)

	return dc
}

func (dc *DashboardController) GetDashboardStatsHandler(c *gin.Context) {
	d, err := dc.statsService.DashboardStats(c.Request.Context())
	if err != nil {
		respondError(c, dc.logger, err)
		return
	}

	c.JSON(http.StatusOK, d)
}
