package rest

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"marketplace-admin-api/internal/apperrors"
	"marketplace-admin-api/internal/application/ports"
	"marketplace-admin-api/internal/domain/role"
	"marketplace-admin-api/internal/filter"
	adminDB "marketplace-admin-api/internal/infrastructure/db/postgres/admin"
	"marketplace-admin-api/internal/infrastructure/jwt"
	"marketplace-admin-api/internal/interface/api/rest/dto/admin"
	"marketplace-admin-api/internal/interface/api/rest/dto/superadmin"
	"marketplace-admin-api/internal/interface/api/rest/middleware"
	"marketplace-admin-api/internal/interface/api/rest/validator"
)

// AdminController serves both the admin CRUD surface and the superadmin
// listing endpoints. Admins can see each other; every mutation is
// superadmin-gated, because only superadmins manage staff.
type AdminController struct {
	adminService   ports.AdminService
	logger         *zap.Logger
	trashRetention time.Duration
}

func NewAdminController(
	r *gin.Engine,
	adminService ports.AdminService,
	logger *zap.Logger,
	jwtService *jwt.Service,
	trashRetention time.Duration,
) *AdminController {
	ac := &AdminController{
		adminService:   adminService,
		logger:         logger,
		trashRetention: trashRetention,
	}

	authed := middleware.AuthMiddleware(jwtService)
	asAdmin := middleware.RequireRole(adminService, logger, role.Admin)
	asSuperAdmin := middleware.RequireRole(adminService, logger, role.SuperAdmin)

	r.GET(RouteAdmins, authed, asAdmin, ac.GetAdminsHandler)
	r.GET(RouteAdmin, authed, asAdmin, ac.GetAdminHandler)
	r.POST(RouteAdmins, authed, asSuperAdmin, ac.CreateAdminHandler)
	r.PUT(RouteAdmin, authed, asSuperAdmin, ac.UpdateAdminHandler)
	r.DELETE(RouteAdmin, authed, asSuperAdmin, ac.DeleteAdminHandler)
	r.POST(RouteAdminRestore, authed, asSuperAdmin, ac.RestoreAdminHandler)
	r.DELETE(RouteAdminPermanent, authed, asSuperAdmin, ac.PermanentDeleteAdminHandler)

	r.GET(RouteSuperAdmins, authed, asSuperAdmin, ac.GetSuperAdminsHandler)
	r.POST(RouteSuperAdmins, authed, asSuperAdmin, ac.CreateSuperAdminHandler)

	return ac
}

func (ac *AdminController) GetAdminsHandler(c *gin.Context) {
	page := validator.ValidatePage(c.Query("page"))
	limit := validator.ValidateLimit(c.Query("limit"))

	criteria := filter.AdminCriteria{
		Query:         c.Query("q"),
		IsBanned:      queryBool(c, "isBanned"),
		IsDeleted:     queryBool(c, "isDeleted"),
		CreatedAfter:  queryTime(c, "createdAfter"),
		CreatedBefore: queryTime(c, "createdBefore"),
	}

	result, err := ac.adminService.FindAdmins(c.Request.Context(), criteria, page, limit)
	if err != nil {
		respondError(c, ac.logger, err)
		return
	}

	c.JSON(http.StatusOK, admin.ResponseData{
		Data:       admin.ToResponseAdmins(result.Items),
		Total:      result.Total,
		TotalPages: result.TotalPages,
	})
}

func (ac *AdminController) GetAdminHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("admin_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "admin_id must be a valid UUID"},
		)
		return
	}

	a, err := ac.adminService.FindAdminByUUID(c.Request.Context(), uuid)
	if err != nil {
		respondError(c, ac.logger, err)
		return
	}

	c.JSON(http.StatusOK, admin.ToResponseAdmin(*a))
}

func (ac *AdminController) CreateAdminHandler(c *gin.Context) {
	var req admin.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateAdmin(req, true); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	a, err := ac.adminService.CreateAdmin(c.Request.Context(), admin.ToDomainAdmin(req), req.Password)
	if err != nil {
		if errors.Is(err, adminDB.ErrEmailAlreadyExists) {
			respondError(c, ac.logger, apperrors.Wrap(apperrors.Conflict, "email already exists", err))
			return
		}
		respondError(c, ac.logger, err)
		return
	}

	c.JSON(http.StatusCreated, admin.ToResponseAdmin(*a))
}

func (ac *AdminController) UpdateAdminHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("admin_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "admin_id must be a valid UUID"},
		)
		return
	}

	var req admin.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	actor := c.GetString(middleware.CtxUserEmail)

	if req.IsBanned != nil {
		a, err := ac.adminService.SetBan(c.Request.Context(), uuid, *req.IsBanned, actor)
		if err != nil {
			respondError(c, ac.logger, err)
			return
		}

		c.JSON(http.StatusOK, admin.ToResponseAdmin(*a))
		return
	}

	if errs := validator.ValidateAdmin(req, false); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	aDomain := admin.ToDomainAdmin(req)
	aDomain.UUID = uuid

	a, err := ac.adminService.UpdateAdmin(c.Request.Context(), aDomain)
	if err != nil {
		if errors.Is(err, adminDB.ErrEmailAlreadyExists) {
			respondError(c, ac.logger, apperrors.Wrap(apperrors.Conflict, "email already exists", err))
			return
		}
		respondError(c, ac.logger, err)
		return
	}

	c.JSON(http.StatusOK, admin.ToResponseAdmin(*a))
}

func (ac *AdminController) DeleteAdminHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("admin_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "admin_id must be a valid UUID"},
		)
		return
	}

	a, err := ac.adminService.SoftDeleteAdmin(c.Request.Context(), uuid)
	if err != nil {
		respondError(c, ac.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("admin moved to trash; it will be permanently deleted after %s", ac.trashRetention),
		"admin":   admin.ToResponseAdmin(*a),
	})
}

func (ac *AdminController) RestoreAdminHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("admin_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "admin_id must be a valid UUID"},
		)
		return
	}

	a, err := ac.adminService.RestoreAdmin(c.Request.Context(), uuid)
	if err != nil {
		respondError(c, ac.logger, err)
		return
	}

	c.JSON(http.StatusOK, admin.ToResponseAdmin(*a))
}

func (ac *AdminController) PermanentDeleteAdminHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("admin_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "admin_id must be a valid UUID"},
		)
		return
	}

	d, err := ac.adminService.PermanentDeleteAdmin(c.Request.Context(), uuid)
	if err != nil {
		respondError(c, ac.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "admin permanently deleted",
		"admin":   admin.ToResponseDeletedAdmin(*d),
	})
}

func (ac *AdminController) GetSuperAdminsHandler(c *gin.Context) {
	page := validator.ValidatePage(c.Query("page"))
	limit := validator.ValidateLimit(c.Query("limit"))

	result, err := ac.adminService.FindSuperAdmins(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, ac.logger, err)
		return
	}

	c.JSON(http.StatusOK, superadmin.ResponseData{
		Data:       superadmin.ToResponseSuperAdmins(result.Items),
		Total:      result.Total,
		TotalPages: result.TotalPages,
	})
}

func (ac *AdminController) CreateSuperAdminHandler(c *gin.Context) {
	var req superadmin.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateAdmin(admin.Request{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	}, true); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	s, err := ac.adminService.CreateSuperAdmin(c.Request.Context(), superadmin.ToDomainSuperAdmin(req), req.Password)
	if err != nil {
		respondError(c, ac.logger, err)
		return
	}

	c.JSON(http.StatusCreated, superadmin.ToResponseSuperAdmin(*s))
}
