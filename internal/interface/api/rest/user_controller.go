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
	userDB "marketplace-admin-api/internal/infrastructure/db/postgres/user"
	"marketplace-admin-api/internal/infrastructure/jwt"
	"marketplace-admin-api/internal/interface/api/rest/dto/user"
	"marketplace-admin-api/internal/interface/api/rest/middleware"
	"marketplace-admin-api/internal/interface/api/rest/validator"
)

type UserController struct {
	userService    ports.UserService
	logger         *zap.Logger
	trashRetention time.Duration
}

func NewUserController(
	r *gin.Engine,
	userService ports.UserService,
	logger *zap.Logger,
	jwtService *jwt.Service,
	resolver ports.RoleResolver,
	trashRetention time.Duration,
) *UserController {
	uc := &UserController{
		userService:    userService,
		logger:         logger,
		trashRetention: trashRetention,
	}

	authed := middleware.AuthMiddleware(jwtService)
	asAdmin := middleware.RequireRole(resolver, logger, role.Admin)
	asSuperAdmin := middleware.RequireRole(resolver, logger, role.SuperAdmin)

	r.GET(RouteUsers, authed, asAdmin, uc.GetUsersHandler)
	r.GET(RouteUser, authed, asAdmin, uc.GetUserHandler)
	r.POST(RouteUsers, authed, asAdmin, uc.CreateUserHandler)
	r.PUT(RouteUser, authed, asAdmin, uc.UpdateUserHandler)
	r.DELETE(RouteUser, authed, asAdmin, uc.DeleteUserHandler)
	r.POST(RouteUserRestore, authed, asAdmin, uc.RestoreUserHandler)
	r.DELETE(RouteUserPermanent, authed, asSuperAdmin, uc.PermanentDeleteUserHandler)

	return uc
}

func userCriteriaFromQuery(c *gin.Context) filter.UserCriteria {
	return filter.UserCriteria{
		Query:         c.Query("q"),
		Role:          c.Query("role"),
		IsBanned:      queryBool(c, "isBanned"),
		IsDeleted:     queryBool(c, "isDeleted"),
		IsSeller:      queryBool(c, "isSeller"),
		CreatedAfter:  queryTime(c, "createdAfter"),
		CreatedBefore: queryTime(c, "createdBefore"),
	}
}

func (uc *UserController) GetUsersHandler(c *gin.Context) {
	page := validator.ValidatePage(c.Query("page"))
	limit := validator.ValidateLimit(c.Query("limit"))

	result, err := uc.userService.FindUsers(c.Request.Context(), userCriteriaFromQuery(c), page, limit)
	if err != nil {
		respondError(c, uc.logger, err)
		return
	}

	c.JSON(http.StatusOK, user.ResponseData{
		Data:       user.ToResponseUsers(result.Items),
		Total:      result.Total,
		TotalPages: result.TotalPages,
	})
}

func (uc *UserController) GetUserHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("user_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a valid UUID"},
		)
		return
	}

	u, err := uc.userService.FindUserByUUID(c.Request.Context(), uuid)
	if err != nil {
		respondError(c, uc.logger, err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) CreateUserHandler(c *gin.Context) {
	var req user.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateUser(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	u, err := uc.userService.CreateUser(c.Request.Context(), user.ToDomainUser(req), req.Password)
	if err != nil {
		if errors.Is(err, userDB.ErrEmailAlreadyExists) {
			respondError(c, uc.logger, apperrors.Wrap(apperrors.Conflict, "email already exists", err))
			return
		}
		respondError(c, uc.logger, err)
		return
	}

	c.JSON(http.StatusCreated, user.ToResponseUser(*u))
}

// UpdateUserHandler branches on the request body: a present is_banned field
// selects the ban-toggle path, anything else is a general field update.
func (uc *UserController) UpdateUserHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("user_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a valid UUID"},
		)
		return
	}

	var req user.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	actor := c.GetString(middleware.CtxUserEmail)

	if req.IsBanned != nil {
		u, err := uc.userService.SetBan(c.Request.Context(), uuid, *req.IsBanned, actor)
		if err != nil {
			respondError(c, uc.logger, err)
			return
		}

		c.JSON(http.StatusOK, user.ToResponseUser(*u))
		return
	}

	if errs := validator.ValidateUser(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	uDomain := user.ToDomainUser(req)
	uDomain.UUID = uuid

	u, err := uc.userService.UpdateUser(c.Request.Context(), uDomain, actor)
	if err != nil {
		if errors.Is(err, userDB.ErrEmailAlreadyExists) {
			respondError(c, uc.logger, apperrors.Wrap(apperrors.Conflict, "email already exists", err))
			return
		}
		respondError(c, uc.logger, err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) DeleteUserHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("user_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a valid UUID"},
		)
		return
	}

	u, err := uc.userService.SoftDeleteUser(c.Request.Context(), uuid)
	if err != nil {
		respondError(c, uc.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("user moved to trash; it will be permanently deleted after %s", uc.trashRetention),
		"user":    user.ToResponseUser(*u),
	})
}

func (uc *UserController) RestoreUserHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("user_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a valid UUID"},
		)
		return
	}

	u, err := uc.userService.RestoreUser(c.Request.Context(), uuid)
	if err != nil {
		respondError(c, uc.logger, err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) PermanentDeleteUserHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("user_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a valid UUID"},
		)
		return
	}

	d, err := uc.userService.PermanentDeleteUser(c.Request.Context(), uuid)
	if err != nil {
		respondError(c, uc.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "user permanently deleted",
		"deleted_at": d.DeletedAt,
	})
}
