package auction

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"marketplace-admin-api/internal/domain/auction"
)

type Request struct {
	ProductID     string  `json:"product_id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	StartingPrice float64 `json:"starting_price"`
	Status        string  `json:"status"`
	StartsAt      string  `json:"starts_at"`
	EndsAt        string  `json:"ends_at"`
}

type (
	Auction struct {
		UUID          uuid.UUID `json:"uuid"`
		ProductID     uuid.UUID `json:"product_id"`
		Title         string    `json:"title"`
		Description   string    `json:"description"`
		StartingPrice float64   `json:"starting_price"`
		CurrentBid    float64   `json:"current_bid"`
		Status        string    `json:"status"`
		StartsAt      time.Time `json:"starts_at"`
		EndsAt        time.Time `json:"ends_at"`
		CreatedAt     time.Time `json:"created_at"`
	}
	Auctions     []Auction
	ResponseData struct {
		Data       Auctions `json:"data"`
		Total      int      `json:"total"`
		TotalPages int      `json:"totalPages"`
	}
)

func ToResponseAuction(aDomain auction.Auction) Auction {
	return Auction{
		UUID:          aDomain.UUID,
		ProductID:     aDomain.ProductID,
		Title:         aDomain.Title,
		Description:   aDomain.Description,
		StartingPrice: aDomain.StartingPrice,
		CurrentBid:    aDomain.CurrentBid,
		Status:        aDomain.Status,
		StartsAt:      aDomain.StartsAt,
		EndsAt:        aDomain.EndsAt,
		CreatedAt:     aDomain.CreatedAt,
	}
}

func ToResponseAuctions(asDomain auction.Auctions) Auctions {
	as := make(Auctions, len(asDomain))
	for idx, a := range asDomain {
		as[idx] = ToResponseAuction(*a)
	}

	return as
}

func ToDomainAuction(aRequest Request) (auction.Auction, error) {
	productID, err := uuid.Parse(aRequest.ProductID)
	if err != nil {
		return auction.Auction{}, errors.New("product_id must be a valid UUID")
	}
	startsAt, err := time.Parse(time.RFC3339, aRequest.StartsAt)
	if err != nil {
		return auction.Auction{}, errors.New("starts_at must be RFC3339")
	}
	endsAt, err := time.Parse(time.RFC3339, aRequest.EndsAt)
	if err != nil {
		return auction.Auction{}, errors.New("ends_at must be RFC3339")
	}

	return auction.Auction{
		ProductID:     productID,
		Title:         aRequest.Title,
		Description:   aRequest.Description,
		StartingPrice: aRequest.StartingPrice,
		Status:        aRequest.Status,
		StartsAt:      startsAt,
		EndsAt:        endsAt,
	}, nil
}
