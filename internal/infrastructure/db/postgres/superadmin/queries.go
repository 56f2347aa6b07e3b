package superadmin

const superAdminColumns = `id, uuid, full_name, email, password_hash, role, created_at, updated_at`

const (
	SelectSuperAdmins = `
		SELECT ` + superAdminColumns + `
		FROM superadmins
	`
	SelectSuperAdminByEmail = `
		SELECT ` + superAdminColumns + `
		FROM superadmins
		WHERE email = $1
	`
	InsertSuperAdmin = `
		INSERT INTO superadmins (full_name, email, password_hash, role)
		VALUES ($1, $2, $3, 'superAdmin')
		RETURNING ` + superAdminColumns + `
	`
)
