package category

import "context"

type Repository interface {
	FetchCategories(ctx context.Context) (Categories, error)
	FetchCategoryByUUID(ctx context.Context, uuid UUID) (*Category, error)
	CreateCategory(ctx context.Context, req Category) (*Category, error)
	UpdateCategory(ctx context.Context, req Category) (*Category, error)
	DeleteCategory(ctx context.Context, uuid UUID) (*Category, error)
}
