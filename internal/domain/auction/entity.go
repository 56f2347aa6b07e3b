package auction

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusScheduled = "scheduled"
	StatusLive      = "live"
	StatusClosed    = "closed"
)

type (
	ID      uint64
	UUID    = uuid.UUID
	Auction struct {
		UUID          UUID
		ProductID     UUID
		Title         string
		Description   string
		StartingPrice float64
		CurrentBid    float64
		Status        string
		StartsAt      time.Time
		EndsAt        time.Time

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Auctions []*Auction
)
