package product

import (
	"time"

	"github.com/google/uuid"
)

type (
	Product struct {
		ID          uint64
		UUID        uuid.UUID
		Name        string
		Description string
		Price       float64
		Quantity    int
		Rating      float64
		CategoryID  *uuid.UUID
		MerchantID  *uuid.UUID

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
