package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"marketplace-admin-api/internal/application/ports"
	"marketplace-admin-api/internal/domain/role"
	"marketplace-admin-api/internal/filter"
	"marketplace-admin-api/internal/infrastructure/jwt"
	"marketplace-admin-api/internal/interface/api/rest/dto/order"
	"marketplace-admin-api/internal/interface/api/rest/middleware"
	"marketplace-admin-api/internal/interface/api/rest/validator"
)

// OrderController is read-only: orders are written by the storefront
// checkout flow, the admin surface only inspects them.
type OrderController struct {
	orderService ports.OrderService
	logger       *zap.Logger
}

func NewOrderController(
	r *gin.Engine,
	orderService ports.OrderService,
	logger *zap.Logger,
	jwtService *jwt.Service,
	resolver ports.RoleResolver,
) *OrderController {
	oc := &OrderController{
		orderService: orderService,
		logger:       logger,
	}

	authed := middleware.AuthMiddleware(jwtService)
	asAdmin := middleware.RequireRole(resolver, logger, role.Admin)

	r.GET(RouteOrders, authed, asAdmin, oc.GetOrdersHandler)
	r.GET(RouteOrder, authed, asAdmin, oc.GetOrderHandler)

	return oc
}

func (oc *OrderController) GetOrdersHandler(c *gin.Context) {
	page := validator.ValidatePage(c.Query("page"))
	limit := validator.ValidateLimit(c.Query("limit"))

	criteria := filter.OrderCriteria{
		PaymentStatus: c.Query("paymentStatus"),
		DeliveryType:  c.Query("deliveryType"),
		MinTotal:      queryFloat(c, "minTotal"),
		MaxTotal:      queryFloat(c, "maxTotal"),
		From:          queryTime(c, "from"),
		To:            queryTime(c, "to"),
	}

	result, err := oc.orderService.FindOrders(c.Request.Context(), criteria, page, limit)
	if err != nil {
		respondError(c, oc.logger, err)
		return
	}

	c.JSON(http.StatusOK, order.ResponseData{
		Data:       order.ToResponseOrders(result.Items),
		Total:      result.Total,
		TotalPages: result.TotalPages,
	})
}

func (oc *OrderController) GetOrderHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("order_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "order_id must be a valid UUID"},
		)
		return
	}

	o, err := oc.orderService.FindOrderByUUID(c.Request.Context(), uuid)
	if err != nil {
		respondError(c, oc.logger, err)
		return
	}

	c.JSON(http.StatusOK, order.ToResponseOrder(*o))
}
