package order

const orderColumns = `id, uuid, user_id, product_id, total_price, payment_status, delivery_type, created_at, updated_at`

const (
	SelectOrders = `
		SELECT ` + orderColumns + `
		FROM orders
	`
	SelectOrderByUUID = `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE uuid = $1
	`
)
