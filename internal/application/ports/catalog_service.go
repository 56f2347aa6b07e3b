package ports

import (
	"context"

	"marketplace-admin-api/internal/domain/auction"
	"marketplace-admin-api/internal/domain/category"
	"marketplace-admin-api/internal/domain/order"
	"marketplace-admin-api/internal/domain/product"
	"marketplace-admin-api/internal/filter"
)

type ProductService interface {
	FindProducts(ctx context.Context, c filter.ProductCriteria, page, limit int) (filter.Page[*product.Product], error)
	FindProductByUUID(ctx context.Context, uuid product.UUID) (*product.Product, error)
	CreateProduct(ctx context.Context, p product.Product) (*product.Product, error)
	UpdateProduct(ctx context.Context, p product.Product) (*product.Product, error)
	SoftDeleteProduct(ctx context.Context, uuid product.UUID) (*product.Product, error)
	RestoreProduct(ctx context.Context, uuid product.UUID) (*product.Product, error)
}

type CategoryService interface {
	FindCategories(ctx context.Context) (category.Categories, error)
	FindCategoryByUUID(ctx context.Context, uuid category.UUID) (*category.Category, error)
	CreateCategory(ctx context.Context, c category.Category) (*category.Category, error)
	UpdateCategory(ctx context.Context, c category.Category) (*category.Category, error)
	DeleteCategory(ctx context.Context, uuid category.UUID) (*category.Category, error)
}

type OrderService interface {
	FindOrders(ctx context.Context, c filter.OrderCriteria, page, limit int) (filter.Page[*order.Order], error)
	FindOrderByUUID(ctx context.Context, uuid order.UUID) (*order.Order, error)
}

type AuctionService interface {
	FindAuctions(ctx context.Context, c filter.AuctionCriteria, page, limit int) (filter.Page[*auction.Auction], error)
	FindAuctionByUUID(ctx context.Context, uuid auction.UUID) (*auction.Auction, error)
	CreateAuction(ctx context.Context, a auction.Auction) (*auction.Auction, error)
	UpdateAuction(ctx context.Context, a auction.Auction) (*auction.Auction, error)
	DeleteAuction(ctx context.Context, uuid auction.UUID) (*auction.Auction, error)
}
