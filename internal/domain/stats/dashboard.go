package stats

// Dashboard is the month-over-month snapshot rendered on the admin home page.
type Dashboard struct {
	Users      Growth `json:"users"`
	Admins     Growth `json:"admins"`
	Products   Growth `json:"products"`
	Categories Growth `json:"categories"`
	Orders     Growth `json:"orders"`
	Revenue    Growth `json:"revenue"`

	TransactionTotal float64 `json:"transactionTotal"`
	TotalRevenue     float64 `json:"totalRevenue"`
}
