package order

import (
	"time"

	"github.com/google/uuid"

	"marketplace-admin-api/internal/domain/order"
)

type (
	Order struct {
		UUID          uuid.UUID `json:"uuid"`
		UserID        uuid.UUID `json:"user_id"`
		ProductID     uuid.UUID `json:"product_id"`
		TotalPrice    float64   `json:"total_price"`
		PaymentStatus string    `json:"payment_status"`
		DeliveryType  string    `json:"delivery_type"`
		CreatedAt     time.Time `json:"created_at"`
	}
	Orders       []Order
	ResponseData struct {
		Data       Orders `json:"data"`
		Total      int    `json:"total"`
		TotalPages int    `json:"totalPages"`
	}
)

func ToResponseOrder(oDomain order.Order) Order {
	return Order{
		UUID:          oDomain.UUID,
		UserID:        oDomain.UserID,
		ProductID:     oDomain.ProductID,
		TotalPrice:    oDomain.TotalPrice,
		PaymentStatus: oDomain.PaymentStatus,
		DeliveryType:  oDomain.DeliveryType,
		CreatedAt:     oDomain.CreatedAt,
	}
}

func ToResponseOrders(osDomain order.Orders) Orders {
	os := make(Orders, len(osDomain))
	for idx, o := range osDomain {
		os[idx] = ToResponseOrder(*o)
	}

	return os
}
