// Package stats computes the dashboard's month-over-month growth figures and
// revenue splits from raw collections.
package stats

import (
	"time"

	"marketplace-admin-api/internal/domain/order"
)

// CommissionRate is the platform's fixed cut of orders paid out to merchants.
const CommissionRate = 0.04

type Growth struct {
	Total         float64 `json:"total"`
	IsIncrease    bool    `json:"isIncrease"`
	PercentChange float64 `json:"percentChange"`
}

// CalculateGrowth compares a current-period figure against the previous one.
// A previous of zero counts as 100% growth when anything arrived this period.
func CalculateGrowth(current, previous float64) Growth {
	g := Growth{Total: current, IsIncrease: current-previous >= 0}
	switch {
	case previous > 0:
		diff := current - previous
		if diff < 0 {
			diff = -diff
		}
		g.PercentChange = diff / previous * 100
	case current > 0:
		g.PercentChange = 100
	}
	return g
}

func sameMonth(ts time.Time, year int, month time.Month) bool {
	return ts.Year() == year && ts.Month() == month
}

// prevMonth steps back from the first of ref's month, not from ref itself:
// AddDate on a day-31 ref would normalize (May 31 -> "Apr 31" -> May 1) and
// land back in the current month.
func prevMonth(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location()).AddDate(0, -1, 0)
}

// CountByMonth counts timestamps falling in the calendar month containing ref
// and in the month before it.
func CountByMonth(timestamps []time.Time, ref time.Time) (current, previous float64) {
	prevRef := prevMonth(ref)
	for _, ts := range timestamps {
		if sameMonth(ts, ref.Year(), ref.Month()) {
			current++
		}
		if sameMonth(ts, prevRef.Year(), prevRef.Month()) {
			previous++
		}
	}
	return current, previous
}

// Revenue is the platform's share: exactly 4% of every order already paid out
// to its merchant. No other status contributes.
func Revenue(orders order.Orders) float64 {
	var total float64
	for _, o := range orders {
		if o.PaymentStatus == order.StatusPaidToMerchant {
			total += o.TotalPrice * CommissionRate
		}
	}
	return total
}

// TransactionTotal accumulates order money movement: paid orders count once,
// refunded orders count twice (payment plus reversal), and merchant payouts
// count net of commission.
func TransactionTotal(orders order.Orders) float64 {
	var total float64
	for _, o := range orders {
		switch o.PaymentStatus {
		case order.StatusPaid:
			total += o.TotalPrice
		case order.StatusRefunded:
			total += 2 * o.TotalPrice
		case order.StatusPaidToMerchant:
			total += o.TotalPrice * (1 - CommissionRate)
		}
	}
	return total
}

// MonthlyRevenue computes Revenue restricted to the calendar month of ref and
// the month before it.
func MonthlyRevenue(orders order.Orders, ref time.Time) (current, previous float64) {
	prevRef := prevMonth(ref)
	for _, o := range orders {
		if o.PaymentStatus != order.StatusPaidToMerchant {
			continue
		}
		if sameMonth(o.CreatedAt, ref.Year(), ref.Month()) {
			current += o.TotalPrice * CommissionRate
		}
		if sameMonth(o.CreatedAt, prevRef.Year(), prevRef.Month()) {
			previous += o.TotalPrice * CommissionRate
		}
	}
	return current, previous
}
