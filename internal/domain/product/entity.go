package product

import (
	"time"

	"github.com/google/uuid"
)

type (
	ID      uint64
	UUID    = uuid.UUID
	Product struct {
		UUID        UUID
		Name        string
		Description string
		Price       float64
		Quantity    int
		Rating      float64
		CategoryID  *UUID
		MerchantID  *UUID

		DeliveryType  string
		DeliveryPrice float64
		Lat           float64
		Lng           float64

		IsDeleted bool
		TrashDate *time.Time

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Products []*Product
)
