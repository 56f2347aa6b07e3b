package order

import "context"

type Repository interface {
	FetchOrders(ctx context.Context) (Orders, error)
	FetchOrderByUUID(ctx context.Context, uuid UUID) (*Order, error)
}
