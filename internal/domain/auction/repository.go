package auction

import "context"

type Repository interface {
	FetchAuctions(ctx context.Context) (Auctions, error)
	FetchAuctionByUUID(ctx context.Context, uuid UUID) (*Auction, error)
	CreateAuction(ctx context.Context, req Auction) (*Auction, error)
	UpdateAuction(ctx context.Context, req Auction) (*Auction, error)
	DeleteAuction(ctx context.Context, uuid UUID) (*Auction, error)
}
