package auction

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"marketplace-admin-api/internal/domain/auction"
	"marketplace-admin-api/internal/infrastructure/db/postgres"
)

type Auction struct {
	ID            uint64
	UUID          uuid.UUID
	ProductID     uuid.UUID
	Title         string
	Description   string
	StartingPrice float64
	CurrentBid    float64
	Status        string
	StartsAt      time.Time
	EndsAt        time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) auction.Repository {
	return &Repository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAuction(row scanner) (*Auction, error) {
	a := new(Auction)
	err := row.Scan(
		&a.ID,
		&a.UUID,
		&a.ProductID,
		&a.Title,
		&a.Description,
		&a.StartingPrice,
		&a.CurrentBid,
		&a.Status,
		&a.StartsAt,
		&a.EndsAt,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return a, nil
}

func fromDBModel(model *Auction) *auction.Auction {
	return &auction.Auction{
		UUID:          model.UUID,
		ProductID:     model.ProductID,
		Title:         model.Title,
		Description:   model.Description,
		StartingPrice: model.StartingPrice,
		CurrentBid:    model.CurrentBid,
		Status:        model.Status,
		StartsAt:      model.StartsAt,
		EndsAt:        model.EndsAt,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

func (r *Repository) fetchOne(ctx context.Context, query string, args ...any) (*auction.Auction, error) {
	a, err := scanAuction(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(a), nil
}

func (r *Repository) FetchAuctions(ctx context.Context) (auction.Auctions, error) {
	rows, err := r.db.Query(ctx, SelectAuctions)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var as auction.Auctions
	for rows.Next() {
		a, err := scanAuction(rows)
		if err != nil {
			return nil, err
		}
		as = append(as, fromDBModel(a))
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return as, nil
}

func (r *Repository) FetchAuctionByUUID(ctx context.Context, id auction.UUID) (*auction.Auction, error) {
	return r.fetchOne(ctx, SelectAuctionByUUID, id.String())
}

func (r *Repository) CreateAuction(ctx context.Context, req auction.Auction) (*auction.Auction, error) {
	return r.fetchOne(
		ctx,
		InsertAuction,
		req.ProductID, req.Title, req.Description, req.StartingPrice,
		req.Status, req.StartsAt, req.EndsAt,
	)
}

func (r *Repository) UpdateAuction(ctx context.Context, req auction.Auction) (*auction.Auction, error) {
	return r.fetchOne(
		ctx,
		UpdateAuctionByUUID,
		req.Title, req.Description, req.StartingPrice,
		req.Status, req.StartsAt, req.EndsAt,
		req.UUID,
	)
}

func (r *Repository) DeleteAuction(ctx context.Context, id auction.UUID) (*auction.Auction, error) {
	return r.fetchOne(ctx, DeleteAuctionByUUID, id.String())
}
