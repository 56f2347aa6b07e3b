package order

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"marketplace-admin-api/internal/domain/order"
	"marketplace-admin-api/internal/infrastructure/db/postgres"
)

type Order struct {
	ID            uint64
	UUID          uuid.UUID
	UserID        uuid.UUID
	ProductID     uuid.UUID
	TotalPrice    float64
	PaymentStatus string
	DeliveryType  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) order.Repository {
	return &Repository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(row scanner) (*Order, error) {
	o := new(Order)
	err := row.Scan(
		&o.ID,
		&o.UUID,
		&o.UserID,
		&o.ProductID,
		&o.TotalPrice,
		&o.PaymentStatus,
		&o.DeliveryType,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return o, nil
}

func fromDBModel(model *Order) *order.Order {
	return &order.Order{
		UUID:          model.UUID,
		UserID:        model.UserID,
		ProductID:     model.ProductID,
		TotalPrice:    model.TotalPrice,
		PaymentStatus: model.PaymentStatus,
		DeliveryType:  model.DeliveryType,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

func (r *Repository) FetchOrders(ctx context.Context) (order.Orders, error) {
	rows, err := r.db.Query(ctx, SelectOrders)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var os order.Orders
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		os = append(os, fromDBModel(o))
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return os, nil
}

func (r *Repository) FetchOrderByUUID(ctx context.Context, id order.UUID) (*order.Order, error) {
	o, err := scanOrder(r.db.QueryRow(ctx, SelectOrderByUUID, id.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(o), nil
}
