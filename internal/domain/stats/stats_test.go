package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"marketplace-admin-api/internal/domain/order"
)

func TestCalculateGrowth_Table(t *testing.T) {
	tests := []struct {
		name               string
		current, previous  float64
		wantIncrease       bool
		wantPercentChange  float64
	}{
		{"growth", 10, 5, true, 100},
		{"decline", 5, 10, false, 50},
		{"from zero", 5, 0, true, 100},
		{"nothing either month", 0, 0, true, 0},
		{"flat", 7, 7, true, 0},
		{"drop to zero", 0, 4, false, 100},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			g := CalculateGrowth(tt.current, tt.previous)
			assert.Equal(t, tt.current, g.Total)
			assert.Equal(t, tt.wantIncrease, g.IsIncrease)
			assert.InDelta(t, tt.wantPercentChange, g.PercentChange, 1e-9)
		})
	}
}

func TestCountByMonth(t *testing.T) {
	ref := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	timestamps := []time.Time{
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),   // current
		time.Date(2026, 3, 31, 23, 59, 0, 0, time.UTC), // current
		time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC),  // previous
		time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),  // older, ignored
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),  // same month last year, ignored
	}

	current, previous := CountByMonth(timestamps, ref)
	assert.Equal(t, float64(2), current)
	assert.Equal(t, float64(1), previous)
}

func TestCountByMonth_MonthEndRef(t *testing.T) {
	// a day-31 ref must still see April as the previous month; naive
	// date arithmetic would normalize "Apr 31" back into May
	ref := time.Date(2026, 5, 31, 23, 0, 0, 0, time.UTC)
	timestamps := []time.Time{
		time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC), // current
		time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC), // previous
		time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC), // previous
	}

	current, previous := CountByMonth(timestamps, ref)
	assert.Equal(t, float64(1), current)
	assert.Equal(t, float64(2), previous)
}

func TestCountByMonth_JanuaryRefWrapsYear(t *testing.T) {
	ref := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	timestamps := []time.Time{
		time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),   // current
		time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC), // previous
	}

	current, previous := CountByMonth(timestamps, ref)
	assert.Equal(t, float64(1), current)
	assert.Equal(t, float64(1), previous)
}

func ordersFixture() order.Orders {
	return order.Orders{
		{TotalPrice: 100, PaymentStatus: order.StatusPaid},
		{TotalPrice: 50, PaymentStatus: order.StatusRefunded},
		{TotalPrice: 100, PaymentStatus: order.StatusPaidToMerchant},
		{TotalPrice: 999, PaymentStatus: order.StatusPending},
	}
}

func TestRevenue_OnlyMerchantPayoutsCount(t *testing.T) {
	// 4% of the single 100 paid-to-merchant order
	assert.InDelta(t, 4.0, Revenue(ordersFixture()), 1e-9)
}

func TestTransactionTotal(t *testing.T) {
	// 100 paid + 2*50 refunded + 96 merchant payout; pending ignored
	assert.InDelta(t, 296.0, TransactionTotal(ordersFixture()), 1e-9)
}

func TestMonthlyRevenue(t *testing.T) {
	ref := time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC)
	orders := order.Orders{
		{TotalPrice: 200, PaymentStatus: order.StatusPaidToMerchant, CreatedAt: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)},
		{TotalPrice: 100, PaymentStatus: order.StatusPaidToMerchant, CreatedAt: time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)},
		{TotalPrice: 500, PaymentStatus: order.StatusPaid, CreatedAt: time.Date(2026, 7, 2, 0, 0, 0, 0, time.UTC)},
	}

	current, previous := MonthlyRevenue(orders, ref)
	assert.InDelta(t, 8.0, current, 1e-9)
	assert.InDelta(t, 4.0, previous, 1e-9)
}

func TestMonthlyRevenue_MonthEndRef(t *testing.T) {
	ref := time.Date(2026, 10, 31, 12, 0, 0, 0, time.UTC)
	orders := order.Orders{
		{TotalPrice: 100, PaymentStatus: order.StatusPaidToMerchant, CreatedAt: time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC)},
		{TotalPrice: 300, PaymentStatus: order.StatusPaidToMerchant, CreatedAt: time.Date(2026, 9, 28, 0, 0, 0, 0, time.UTC)},
	}

	current, previous := MonthlyRevenue(orders, ref)
	assert.InDelta(t, 4.0, current, 1e-9)
	assert.InDelta(t, 12.0, previous, 1e-9)
}
