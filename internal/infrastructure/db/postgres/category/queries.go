package category

const categoryColumns = `id, uuid, name, description, created_at, updated_at`

const (
	SelectCategories = `
		SELECT ` + categoryColumns + `
		FROM categories
	`
	SelectCategoryByUUID = `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE uuid = $1
	`
	InsertCategory = `
		INSERT INTO categories (name, description)
		VALUES ($1, $2)
		RETURNING ` + categoryColumns + `
	`
	UpdateCategoryByUUID = `
		UPDATE categories
		SET name = $1,
		    description = $2,
		    updated_at = now()
		WHERE uuid = $3
		RETURNING ` + categoryColumns + `
	`
	DeleteCategoryByUUID = `
		DELETE FROM categories
		WHERE uuid = $1
		RETURNING ` + categoryColumns + `
	`
)
