package product

import "context"

type Repository interface {
	FetchProducts(ctx context.Context) (Products, error)
	FetchProductByUUID(ctx context.Context, uuid UUID) (*Product, error)
	CreateProduct(ctx context.Context, req Product) (*Product, error)
	UpdateProduct(ctx context.Context, req Product) (*Product, error)
	SoftDelete(ctx context.Context, uuid UUID) (*Product, error)
	Restore(ctx context.Context, uuid UUID) (*Product, error)
}
