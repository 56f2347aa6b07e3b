package product

const productColumns = `id, uuid, name, description, price, quantity, rating, category_id, merchant_id, delivery_type, delivery_price, lat, lng, is_deleted, trash_date, created_at, updated_at`

const (
	SelectProducts = `
		SELECT ` + productColumns + `
		FROM products
	`
	SelectProductByUUID = `
		SELECT ` + productColumns + `
		FROM products
		WHERE uuid = $1
	`
	InsertProduct = `
		INSERT INTO products (name, description, price, quantity, rating, category_id, merchant_id, delivery_type, delivery_price, lat, lng)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + productColumns + `
	`
	UpdateProductByUUID = `
		UPDATE products
		SET name = $1,
		    description = $2,
		    price = $3,
		    quantity = $4,
		    rating = $5,
		    category_id = $6,
		    delivery_type = $7,
		    delivery_price = $8,
		    lat = $9,
		    lng = $10,
		    updated_at = now()
		WHERE uuid = $11
		RETURNING ` + productColumns + `
	`
	SoftDeleteProductByUUID = `
		UPDATE products
		SET is_deleted = TRUE, trash_date = now(), updated_at = now()
		WHERE uuid = $1 AND is_deleted = FALSE
		RETURNING ` + productColumns + `
	`
	RestoreProductByUUID = `
		UPDATE products
		SET is_deleted = FALSE, trash_date = NULL, updated_at = now()
		WHERE uuid = $1 AND is_deleted = TRUE
		RETURNING ` + productColumns + `
	`
)
