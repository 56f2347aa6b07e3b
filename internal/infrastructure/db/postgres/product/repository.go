package product

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"marketplace-admin-api/internal/domain/product"
	"marketplace-admin-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) product.Repository {
	return &Repository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(row scanner) (*Product, error) {
	p := new(Product)
	err := row.Scan(
		&p.ID,
		&p.UUID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Quantity,
		&p.Rating,
		&p.CategoryID,
		&p.MerchantID,

		&p.DeliveryType,
		&p.DeliveryPrice,
		&p.Lat,
		&p.Lng,

		&p.IsDeleted,
		&p.TrashDate,

		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *Repository) fetchOne(ctx context.Context, query string, args ...any) (*product.Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(p), nil
}

func (r *Repository) FetchProducts(ctx context.Context) (product.Products, error) {
	rows, err := r.db.Query(ctx, SelectProducts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ps Products
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&ps), nil
}

func (r *Repository) FetchProductByUUID(ctx context.Context, uuid product.UUID) (*product.Product, error) {
	return r.fetchOne(ctx, SelectProductByUUID, uuid.String())
}

func (r *Repository) CreateProduct(ctx context.Context, req product.Product) (*product.Product, error) {
	return r.fetchOne(
		ctx,
		InsertProduct,
		req.Name, req.Description, req.Price, req.Quantity, req.Rating,
		req.CategoryID, req.MerchantID,
		req.DeliveryType, req.DeliveryPrice, req.Lat, req.Lng,
	)
}

func (r *Repository) UpdateProduct(ctx context.Context, req product.Product) (*product.Product, error) {
	return r.fetchOne(
		ctx,
		UpdateProductByUUID,
		req.Name, req.Description, req.Price, req.Quantity, req.Rating,
		req.CategoryID,
		req.DeliveryType, req.DeliveryPrice, req.Lat, req.Lng,
		req.UUID,
	)
}

func (r *Repository) SoftDelete(ctx context.Context, uuid product.UUID) (*product.Product, error) {
	return r.fetchOne(ctx, SoftDeleteProductByUUID, uuid.String())
}

func (r *Repository) Restore(ctx context.Context, uuid product.UUID) (*product.Product, error) {
	return r.fetchOne(ctx, RestoreProductByUUID, uuid.String())
}
