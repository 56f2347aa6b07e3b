package category

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"marketplace-admin-api/internal/domain/category"
	"marketplace-admin-api/internal/infrastructure/db/postgres"
)

var ErrNameAlreadyExists = errors.New("category name already exists")

type Category struct {
	ID          uint64
	UUID        uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) category.Repository {
	return &Repository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCategory(row scanner) (*Category, error) {
	c := new(Category)
	err := row.Scan(
		&c.ID,
		&c.UUID,
		&c.Name,
		&c.Description,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func fromDBModel(model *Category) *category.Category {
	return &category.Category{
		UUID:        model.UUID,
		Name:        model.Name,
		Description: model.Description,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func (r *Repository) fetchOne(ctx context.Context, query string, args ...any) (*category.Category, error) {
	c, err := scanCategory(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(c), nil
}

func (r *Repository) FetchCategories(ctx context.Context) (category.Categories, error) {
	rows, err := r.db.Query(ctx, SelectCategories)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cs category.Categories
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		cs = append(cs, fromDBModel(c))
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return cs, nil
}

func (r *Repository) FetchCategoryByUUID(ctx context.Context, uuid category.UUID) (*category.Category, error) {
	return r.fetchOne(ctx, SelectCategoryByUUID, uuid.String())
}

func (r *Repository) CreateCategory(ctx context.Context, req category.Category) (*category.Category, error) {
	c, err := r.fetchOne(ctx, InsertCategory, req.Name, req.Description)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, ErrNameAlreadyExists
		}
		return nil, err
	}

	return c, nil
}

func (r *Repository) UpdateCategory(ctx context.Context, req category.Category) (*category.Category, error) {
	return r.fetchOne(ctx, UpdateCategoryByUUID, req.Name, req.Description, req.UUID)
}

func (r *Repository) DeleteCategory(ctx context.Context, uuid category.UUID) (*category.Category, error) {
	return r.fetchOne(ctx, DeleteCategoryByUUID, uuid.String())
}
