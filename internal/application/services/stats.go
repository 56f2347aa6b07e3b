package services

import (
	"context"
	"time"

	"marketplace-admin-api/internal/application/ports"
	adminDomain "marketplace-admin-api/internal/domain/admin"
	categoryDomain "marketplace-admin-api/internal/domain/category"
	orderDomain "marketplace-admin-api/internal/domain/order"
	productDomain "marketplace-admin-api/internal/domain/product"
	"marketplace-admin-api/internal/domain/stats"
	userDomain "marketplace-admin-api/internal/domain/user"
)

type StatsService struct {
	userRepository     userDomain.Repository
	adminRepository    adminDomain.Repository
	productRepository  productDomain.Repository
	categoryRepository categoryDomain.Repository
	orderRepository    orderDomain.Repository

	now func() time.Time
}

func NewStatsService(
	userRepository userDomain.Repository,
	adminRepository adminDomain.Repository,
	productRepository productDomain.Repository,
	categoryRepository categoryDomain.Repository,
	orderRepository orderDomain.Repository,
) ports.StatsService {
	return &StatsService{
		userRepository:     userRepository,
		adminRepository:    adminRepository,
		productRepository:  productRepository,
		categoryRepository: categoryRepository,
		orderRepository:    orderRepository,
		now:                time.Now,
	}
}

func countGrowth(timestamps []time.Time, ref time.Time) stats.Growth {
	cur, prev := stats.CountByMonth(timestamps, ref)
	return stats.CalculateGrowth(cur, prev)
}

func (ss *StatsService) DashboardStats(ctx context.Context) (*stats.Dashboard, error) {
	ref := ss.now()

	users, err := ss.userRepository.FetchUsers(ctx)
	if err != nil {
		return nil, err
	}
	admins, err := ss.adminRepository.FetchAdmins(ctx)
	if err != nil {
		return nil, err
	}
	products, err := ss.productRepository.FetchProducts(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := ss.categoryRepository.FetchCategories(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := ss.orderRepository.FetchOrders(ctx)
	if err != nil {
		return nil, err
	}

	userTS := make([]time.Time, len(users))
	for i, u := range users {
		userTS[i] = u.CreatedAt
	}
	adminTS := make([]time.Time, len(admins))
	for i, a := range admins {
		adminTS[i] = a.CreatedAt
	}
	productTS := make([]time.Time, len(products))
	for i, p := range products {
		productTS[i] = p.CreatedAt
	}
	categoryTS := make([]time.Time, len(categories))
	for i, c := range categories {
		categoryTS[i] = c.CreatedAt
	}
	orderTS := make([]time.Time, len(orders))
	for i, o := range orders {
		orderTS[i] = o.CreatedAt
	}

	curRev, prevRev := stats.MonthlyRevenue(orders, ref)

	return &stats.Dashboard{
		Users:      countGrowth(userTS, ref),
		Admins:     countGrowth(adminTS, ref),
		Products:   countGrowth(productTS, ref),
		Categories: countGrowth(categoryTS, ref),
		Orders:     countGrowth(orderTS, ref),
		Revenue:    stats.CalculateGrowth(curRev, prevRev),

		TransactionTotal: stats.TransactionTotal(orders),
		TotalRevenue:     stats.Revenue(orders),
	}, nil
}
