package rest

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"marketplace-admin-api/internal/application/ports"
	"marketplace-admin-api/internal/domain/role"
	"marketplace-admin-api/internal/filter"
	"marketplace-admin-api/internal/infrastructure/jwt"
	"marketplace-admin-api/internal/interface/api/rest/dto/product"
	"marketplace-admin-api/internal/interface/api/rest/middleware"
	"marketplace-admin-api/internal/interface/api/rest/validator"
)

type ProductController struct {
	productService ports.ProductService
	logger         *zap.Logger
	trashRetention time.Duration
}

func NewProductController(
	r *gin.Engine,
	productService ports.ProductService,
	logger *zap.Logger,
	jwtService *jwt.Service,
	resolver ports.RoleResolver,
	trashRetention time.Duration,
) *ProductController {
	pc := &ProductController{
		productService: productService,
		logger:         logger,
		trashRetention: trashRetention,
	}

	authed := middleware.AuthMiddleware(jwtService)
	asAdmin := middleware.RequireRole(resolver, logger, role.Admin)

	// the storefront browses the catalog without a session
	r.GET(RouteProducts, pc.GetProductsHandler)
	r.GET(RouteProduct, pc.GetProductHandler)
	r.POST(RouteProducts, authed, asAdmin, pc.CreateProductHandler)
	r.PUT(RouteProduct, authed, asAdmin, pc.UpdateProductHandler)
	r.DELETE(RouteProduct, authed, asAdmin, pc.DeleteProductHandler)
	r.POST(RouteProductRestore, authed, asAdmin, pc.RestoreProductHandler)

	return pc
}

func productCriteriaFromQuery(c *gin.Context) filter.ProductCriteria {
	criteria := filter.ProductCriteria{
		Query:            c.Query("q"),
		CategoryID:       c.Query("categoryId"),
		DeliveryType:     c.Query("deliveryType"),
		MinPrice:         queryFloat(c, "minPrice"),
		MaxPrice:         queryFloat(c, "maxPrice"),
		MinQuantity:      queryFloat(c, "minQuantity"),
		MaxQuantity:      queryFloat(c, "maxQuantity"),
		MinRating:        queryFloat(c, "minRating"),
		MaxRating:        queryFloat(c, "maxRating"),
		MinDeliveryPrice: queryFloat(c, "minDeliveryPrice"),
		MaxDeliveryPrice: queryFloat(c, "maxDeliveryPrice"),
		IsDeleted:        queryBool(c, "isDeleted"),
	}

	lat, lng, radius := queryFloat(c, "lat"), queryFloat(c, "lng"), queryFloat(c, "radiusKm")
	if lat != nil && lng != nil && radius != nil {
		criteria.Near = &filter.GeoCircle{Lat: *lat, Lng: *lng, RadiusKm: *radius}
	}

	return criteria
}

func (pc *ProductController) GetProductsHandler(c *gin.Context) {
	page := validator.ValidatePage(c.Query("page"))
	limit := validator.ValidateLimit(c.Query("limit"))

	result, err := pc.productService.FindProducts(c.Request.Context(), productCriteriaFromQuery(c), page, limit)
	if err != nil {
		respondError(c, pc.logger, err)
		return
	}

	c.JSON(http.StatusOK, product.ResponseData{
		Data:       product.ToResponseProducts(result.Items),
		Total:      result.Total,
		TotalPages: result.TotalPages,
	})
}

func (pc *ProductController) GetProductHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("product_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "product_id must be a valid UUID"},
		)
		return
	}

	p, err := pc.productService.FindProductByUUID(c.Request.Context(), uuid)
	if err != nil {
		respondError(c, pc.logger, err)
		return
	}

	c.JSON(http.StatusOK, product.ToResponseProduct(*p))
}

func (pc *ProductController) CreateProductHandler(c *gin.Context) {
	var req product.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateProduct(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	pDomain, err := product.ToDomainProduct(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	p, err := pc.productService.CreateProduct(c.Request.Context(), pDomain)
	if err != nil {
		respondError(c, pc.logger, err)
		return
	}

	c.JSON(http.StatusCreated, product.ToResponseProduct(*p))
}

func (pc *ProductController) UpdateProductHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("product_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "product_id must be a valid UUID"},
		)
		return
	}

	var req product.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateProduct(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	pDomain, err := product.ToDomainProduct(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	pDomain.UUID = uuid

	p, err := pc.productService.UpdateProduct(c.Request.Context(), pDomain)
	if err != nil {
		respondError(c, pc.logger, err)
		return
	}

	c.JSON(http.StatusOK, product.ToResponseProduct(*p))
}

func (pc *ProductController) DeleteProductHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("product_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "product_id must be a valid UUID"},
		)
		return
	}

	p, err := pc.productService.SoftDeleteProduct(c.Request.Context(), uuid)
	if err != nil {
		respondError(c, pc.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("product moved to trash; it will be permanently deleted after %s", pc.trashRetention),
		"product": product.ToResponseProduct(*p),
	})
}

func (pc *ProductController) RestoreProductHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("product_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "product_id must be a valid UUID"},
		)
		return
	}

	p, err := pc.productService.RestoreProduct(c.Request.Context(), uuid)
	if err != nil {
		respondError(c, pc.logger, err)
		return
	}

	c.JSON(http.StatusOK, product.ToResponseProduct(*p))
}
