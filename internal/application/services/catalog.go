package services

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"marketplace-admin-api/internal/apperrors"
	"marketplace-admin-api/internal/application/ports"
	auctionDomain "marketplace-admin-api/internal/domain/auction"
	categoryDomain "marketplace-admin-api/internal/domain/category"
	orderDomain "marketplace-admin-api/internal/domain/order"
	productDomain "marketplace-admin-api/internal/domain/product"
	"marketplace-admin-api/internal/filter"
)

type ProductService struct {
	productRepository productDomain.Repository
	mCounter          *prometheus.CounterVec
}

func NewProductService(productRepository productDomain.Repository, mCounter *prometheus.CounterVec) ports.ProductService {
	return &ProductService{productRepository: productRepository, mCounter: mCounter}
}

func (ps *ProductService) FindProducts(ctx context.Context, c filter.ProductCriteria, page, limit int) (filter.Page[*productDomain.Product], error) {
	products, err := ps.productRepository.FetchProducts(ctx)
	if err != nil {
		return filter.Page[*productDomain.Product]{}, err
	}

	return filter.Paginate(filter.Products(products, c), page, limit), nil
}

func (ps *ProductService) FindProductByUUID(ctx context.Context, uuid productDomain.UUID) (*productDomain.Product, error) {
	p, err := ps.productRepository.FetchProductByUUID(ctx, uuid)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.E(apperrors.NotFound, "product not found")
	}

	return p, nil
}

func (ps *ProductService) CreateProduct(ctx context.Context, p productDomain.Product) (*productDomain.Product, error) {
	pRet, err := ps.productRepository.CreateProduct(ctx, p)
	if err != nil {
		return nil, err
	}

	ps.mCounter.WithLabelValues("product_created_total").Inc()

	return pRet, nil
}

func (ps *ProductService) UpdateProduct(ctx context.Context, p productDomain.Product) (*productDomain.Product, error) {
	pRet, err := ps.productRepository.UpdateProduct(ctx, p)
	if err != nil {
		return nil, err
	}
	if pRet == nil {
		return nil, apperrors.E(apperrors.NotFound, "product not found")
	}

	ps.mCounter.WithLabelValues("product_updated_total").Inc()

	return pRet, nil
}

func (ps *ProductService) SoftDeleteProduct(ctx context.Context, uuid productDomain.UUID) (*productDomain.Product, error) {
	pRet, err := ps.productRepository.SoftDelete(ctx, uuid)
	if err != nil {
		return nil, err
	}
	if pRet == nil {
		return nil, apperrors.E(apperrors.NotFound, "product not found or already in trash")
	}

	ps.mCounter.WithLabelValues("product_trashed_total").Inc()

	return pRet, nil
}

func (ps *ProductService) RestoreProduct(ctx context.Context, uuid productDomain.UUID) (*productDomain.Product, error) {
	pRet, err := ps.productRepository.Restore(ctx, uuid)
	if err != nil {
		return nil, err
	}
	if pRet == nil {
		return nil, apperrors.E(apperrors.NotFound, "product not found in trash")
	}

	ps.mCounter.WithLabelValues("product_restored_total").Inc()

	return pRet, nil
}

type CategoryService struct {
	categoryRepository categoryDomain.Repository
	mCounter           *prometheus.CounterVec
}

func NewCategoryService(categoryRepository categoryDomain.Repository, mCounter *prometheus.CounterVec) ports.CategoryService {
	return &CategoryService{categoryRepository: categoryRepository, mCounter: mCounter}
}

func (cs *CategoryService) FindCategories(ctx context.Context) (categoryDomain.Categories, error) {
	return cs.categoryRepository.FetchCategories(ctx)
}

func (cs *CategoryService) FindCategoryByUUID(ctx context.Context, uuid categoryDomain.UUID) (*categoryDomain.Category, error) {
	c, err := cs.categoryRepository.FetchCategoryByUUID(ctx, uuid)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperrors.E(apperrors.NotFound, "category not found")
	}

	return c, nil
}

func (cs *CategoryService) CreateCategory(ctx context.Context, c categoryDomain.Category) (*categoryDomain.Category, error) {
	cRet, err := cs.categoryRepository.CreateCategory(ctx, c)
	if err != nil {
		return nil, err
	}

	cs.mCounter.WithLabelValues("category_created_total").Inc()

	return cRet, nil
}

func (cs *CategoryService) UpdateCategory(ctx context.Context, c categoryDomain.Category) (*categoryDomain.Category, error) {
	cRet, err := cs.categoryRepository.UpdateCategory(ctx, c)
	if err != nil {
		return nil, err
	}
	if cRet == nil {
		return nil, apperrors.E(apperrors.NotFound, "category not found")
	}

	return cRet, nil
}

func (cs *CategoryService) DeleteCategory(ctx context.Context, uuid categoryDomain.UUID) (*categoryDomain.Category, error) {
	cRet, err := cs.categoryRepository.DeleteCategory(ctx, uuid)
	if err != nil {
		return nil, err
	}
	if cRet == nil {
		return nil, apperrors.E(apperrors.NotFound, "category not found")
	}

	return cRet, nil
}

type OrderService struct {
	orderRepository orderDomain.Repository
}

func NewOrderService(orderRepository orderDomain.Repository) ports.OrderService {
	return &OrderService{orderRepository: orderRepository}
}

func (os *OrderService) FindOrders(ctx context.Context, c filter.OrderCriteria, page, limit int) (filter.Page[*orderDomain.Order], error) {
	orders, err := os.orderRepository.FetchOrders(ctx)
	if err != nil {
		return filter.Page[*orderDomain.Order]{}, err
	}

	return filter.Paginate(filter.Orders(orders, c), page, limit), nil
}

func (os *OrderService) FindOrderByUUID(ctx context.Context, uuid orderDomain.UUID) (*orderDomain.Order, error) {
	o, err := os.orderRepository.FetchOrderByUUID(ctx, uuid)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, apperrors.E(apperrors.NotFound, "order not found")
	}

	return o, nil
}

type AuctionService struct {
	auctionRepository auctionDomain.Repository
	mCounter          *prometheus.CounterVec
}

func NewAuctionService(auctionRepository auctionDomain.Repository, mCounter *prometheus.CounterVec) ports.AuctionService {
	return &AuctionService{auctionRepository: auctionRepository, mCounter: mCounter}
}

func (as *AuctionService) FindAuctions(ctx context.Context, c filter.AuctionCriteria, page, limit int) (filter.Page[*auctionDomain.Auction], error) {
	auctions, err := as.auctionRepository.FetchAuctions(ctx)
	if err != nil {
		return filter.Page[*auctionDomain.Auction]{}, err
	}

	return filter.Paginate(filter.Auctions(auctions, c), page, limit), nil
}

func (as *AuctionService) FindAuctionByUUID(ctx context.Context, uuid auctionDomain.UUID) (*auctionDomain.Auction, error) {
	a, err := as.auctionRepository.FetchAuctionByUUID(ctx, uuid)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperrors.E(apperrors.NotFound, "auction not found")
	}

	return a, nil
}

func (as *AuctionService) CreateAuction(ctx context.Context, a auctionDomain.Auction) (*auctionDomain.Auction, error) {
	aRet, err := as.auctionRepository.CreateAuction(ctx, a)
	if err != nil {
		return nil, err
	}

	as.mCounter.WithLabelValues("auction_created_total").Inc()

	return aRet, nil
}

func (as *AuctionService) UpdateAuction(ctx context.Context, a auctionDomain.Auction) (*auctionDomain.Auction, error) {
	aRet, err := as.auctionRepository.UpdateAuction(ctx, a)
	if err != nil {
		return nil, err
	}
	if aRet == nil {
		return nil, apperrors.E(apperrors.NotFound, "auction not found")
	}

	return aRet, nil
}

func (as *AuctionService) DeleteAuction(ctx context.Context, uuid auctionDomain.UUID) (*auctionDomain.Auction, error) {
	aRet, err := as.auctionRepository.DeleteAuction(ctx, uuid)
	if err != nil {
		return nil, err
	}
	if aRet == nil {
		return nil, apperrors.E(apperrors.NotFound, "auction not found")
	}

	return aRet, nil
}
