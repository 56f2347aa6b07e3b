package order

import (
	"time"

	"github.com/google/uuid"
)

// Payment statuses as stored. "Paid To Merchant" marks orders whose funds have
// been released to the seller minus the platform commission.
const (
	StatusPending        = "Pending"
	StatusPaid           = "Paid"
	StatusRefunded       = "Refunded"
	StatusPaidToMerchant = "Paid To Merchant"
)

type (
	ID    uint64
	UUID  = uuid.UUID
	Order struct {
		UUID          UUID
		UserID        UUID
		ProductID     UUID
		TotalPrice    float64
		PaymentStatus string
		DeliveryType  string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Orders []*Order
)
