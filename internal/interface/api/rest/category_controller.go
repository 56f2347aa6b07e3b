package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"marketplace-admin-api/internal/apperrors"
	"marketplace-admin-api/internal/application/ports"
	"marketplace-admin-api/internal/domain/role"
	categoryDB "marketplace-admin-api/internal/infrastructure/db/postgres/category"
	"marketplace-admin-api/internal/infrastructure/jwt"
	"marketplace-admin-api/internal/interface/api/rest/dto/category"
	"marketplace-admin-api/internal/interface/api/rest/middleware"
	"marketplace-admin-api/internal/interface/api/rest/validator"
)

// CategoryController serves the flat category tree. Categories are few and
// hard-deleted, so there is no pagination and no trash lifecycle here.
type CategoryController struct {
	categoryService ports.CategoryService
	logger          *zap.Logger
}

func NewCategoryController(
	r *gin.Engine,
	categoryService ports.CategoryService,
	logger *zap.Logger,
	jwtService *jwt.Service,
	resolver ports.RoleResolver,
) *CategoryController {
	cc := &CategoryController{
		categoryService: categoryService,
		logger:          logger,
	}

	authed := middleware.AuthMiddleware(jwtService)
	asAdmin := middleware.RequireRole(resolver, logger, role.Admin)

	r.GET(RouteCategories, authed, asAdmin, cc.GetCategoriesHandler)
	r.GET(RouteCategory, authed, asAdmin, cc.GetCategoryHandler)
	r.POST(RouteCategories, authed, asAdmin, cc.CreateCategoryHandler)
	r.PUT(RouteCategory, authed, asAdmin, cc.UpdateCategoryHandler)
	r.DELETE(RouteCategory, authed, asAdmin, cc.DeleteCategoryHandler)

	return cc
}

func (cc *CategoryController) GetCategoriesHandler(c *gin.Context) {
	cs, err := cc.categoryService.FindCategories(c.Request.Context())
	if err != nil {
		respondError(c, cc.logger, err)
		return
	}

	c.JSON(http.StatusOK, category.ResponseData{Data: category.ToResponseCategories(cs)})
}

func (cc *CategoryController) GetCategoryHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("category_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "category_id must be a valid UUID"},
		)
		return
	}

	cat, err := cc.categoryService.FindCategoryByUUID(c.Request.Context(), uuid)
	if err != nil {
		respondError(c, cc.logger, err)
		return
	}

	c.JSON(http.StatusOK, category.ToResponseCategory(*cat))
}

func (cc *CategoryController) CreateCategoryHandler(c *gin.Context) {
	var req category.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateCategory(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	cat, err := cc.categoryService.CreateCategory(c.Request.Context(), category.ToDomainCategory(req))
	if err != nil {
		if errors.Is(err, categoryDB.ErrNameAlreadyExists) {
			respondError(c, cc.logger, apperrors.Wrap(apperrors.Conflict, "category name already exists", err))
			return
		}
		respondError(c, cc.logger, err)
		return
	}

	c.JSON(http.StatusCreated, category.ToResponseCategory(*cat))
}

func (cc *CategoryController) UpdateCategoryHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("category_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "category_id must be a valid UUID"},
		)
		return
	}

	var req category.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateCategory(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	cDomain := category.ToDomainCategory(req)
	cDomain.UUID = uuid

	cat, err := cc.categoryService.UpdateCategory(c.Request.Context(), cDomain)
	if err != nil {
		if errors.Is(err, categoryDB.ErrNameAlreadyExists) {
			respondError(c, cc.logger, apperrors.Wrap(apperrors.Conflict, "category name already exists", err))
			return
		}
		respondError(c, cc.logger, err)
		return
	}

	c.JSON(http.StatusOK, category.ToResponseCategory(*cat))
}

func (cc *CategoryController) DeleteCategoryHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("category_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "category_id must be a valid UUID"},
		)
		return
	}

	cat, err := cc.categoryService.DeleteCategory(c.Request.Context(), uuid)
	if err != nil {
		respondError(c, cc.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "category deleted",
		"category": category.ToResponseCategory(*cat),
	})
}
