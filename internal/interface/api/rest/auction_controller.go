package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"marketplace-admin-api/internal/application/ports"
	"marketplace-admin-api/internal/domain/role"
	"marketplace-admin-api/internal/filter"
	"marketplace-admin-api/internal/infrastructure/jwt"
	"marketplace-admin-api/internal/interface/api/rest/dto/auction"
	"marketplace-admin-api/internal/interface/api/rest/middleware"
	"marketplace-admin-api/internal/interface/api/rest/validator"
)

type AuctionController struct {
	auctionService ports.AuctionService
	logger         *zap.Logger
}

func NewAuctionController(
	r *gin.Engine,
	auctionService ports.AuctionService,
	logger *zap.Logger,
	jwtService *jwt.Service,
	resolver ports.RoleResolver,
) *AuctionController {
	ac := &AuctionController{
		auctionService: auctionService,
		logger:         logger,
	}

	authed := middleware.AuthMiddleware(jwtService)
	asAdmin := middleware.RequireRole(resolver, logger, role.Admin)

	// bidders browse running auctions without a session
	r.GET(RouteAuctions, ac.GetAuctionsHandler)
	r.GET(RouteAuction, ac.GetAuctionHandler)
	r.POST(RouteAuctions, authed, asAdmin, ac.CreateAuctionHandler)
	r.PUT(RouteAuction, authed, asAdmin, ac.UpdateAuctionHandler)
	r.DELETE(RouteAuction, authed, asAdmin, ac.DeleteAuctionHandler)

	return ac
}

func (ac *AuctionController) GetAuctionsHandler(c *gin.Context) {
	page := validator.ValidatePage(c.Query("page"))
	limit := validator.ValidateLimit(c.Query("limit"))

	criteria := filter.AuctionCriteria{
		Query:      c.Query("q"),
		Status:     c.Query("status"),
		MinPrice:   queryFloat(c, "minPrice"),
		MaxPrice:   queryFloat(c, "maxPrice"),
		EndsAfter:  queryTime(c, "endsAfter"),
		EndsBefore: queryTime(c, "endsBefore"),
	}

	result, err := ac.auctionService.FindAuctions(c.Request.Context(), criteria, page, limit)
	if err != nil {
		respondError(c, ac.logger, err)
		return
	}

	c.JSON(http.StatusOK, auction.ResponseData{
		Data:       auction.ToResponseAuctions(result.Items),
		Total:      result.Total,
		TotalPages: result.TotalPages,
	})
}

func (ac *AuctionController) GetAuctionHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("auction_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "auction_id must be a valid UUID"},
		)
		return
	}

	a, err := ac.auctionService.FindAuctionByUUID(c.Request.Context(), uuid)
	if err != nil {
		respondError(c, ac.logger, err)
		return
	}

	c.JSON(http.StatusOK, auction.ToResponseAuction(*a))
}

func (ac *AuctionController) CreateAuctionHandler(c *gin.Context) {
	var req auction.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateAuction(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	aDomain, err := auction.ToDomainAuction(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	a, err := ac.auctionService.CreateAuction(c.Request.Context(), aDomain)
	if err != nil {
		respondError(c, ac.logger, err)
		return
	}

	c.JSON(http.StatusCreated, auction.ToResponseAuction(*a))
}

func (ac *AuctionController) UpdateAuctionHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("auction_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "auction_id must be a valid UUID"},
		)
		return
	}

	var req auction.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateAuction(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	aDomain, err := auction.ToDomainAuction(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	aDomain.UUID = uuid

	a, err := ac.auctionService.UpdateAuction(c.Request.Context(), aDomain)
	if err != nil {
		respondError(c, ac.logger, err)
		return
	}

	c.JSON(http.StatusOK, auction.ToResponseAuction(*a))
}

func (ac *AuctionController) DeleteAuctionHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("auction_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "auction_id must be a valid UUID"},
		)
		return
	}

	a, err := ac.auctionService.DeleteAuction(c.Request.Context(), uuid)
	if err != nil {
		respondError(c, ac.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "auction deleted",
		"auction": auction.ToResponseAuction(*a),
	})
}
