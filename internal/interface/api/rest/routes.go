package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth  = RouteApiV1 + "/auth"
	RouteLogin = RouteAuth + "/login"

	RouteUsers         = RouteApiV1 + "/users"
	RouteUser          = RouteUsers + "/:user_id"
	RouteUserRestore   = RouteUser + "/restore"
	RouteUserPermanent = RouteUser + "/permanent"

	RouteAdmins         = RouteApiV1 + "/admins"
	RouteAdmin          = RouteAdmins + "/:admin_id"
	RouteAdminRestore   = RouteAdmin + "/restore"
	RouteAdminPermanent = RouteAdmin + "/permanent"

	RouteSuperAdmins = RouteApiV1 + "/superadmins"

	RouteProducts       = RouteApiV1 + "/products"
	RouteProduct        = RouteProducts + "/:product_id"
	RouteProductRestore = RouteProduct + "/restore"

	RouteCategories = RouteApiV1 + "/categories"
	RouteCategory   = RouteCategories + "/:category_id"

	RouteOrders = RouteApiV1 + "/orders"
	RouteOrder  = RouteOrders + "/:order_id"

	RouteAuctions = RouteApiV1 + "/auctions"
	RouteAuction  = RouteAuctions + "/:auction_id"

	RouteDashboardStats = RouteApiV1 + "/dashboard/stats"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
