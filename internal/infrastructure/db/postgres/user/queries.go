package user

const userColumns = `id, uuid, full_name, email, password_hash, role, tin_number, national_id, bank_name, bank_account, is_email_verified, is_seller, approved_by, is_banned, banned_by, is_deleted, trash_date, created_at, updated_at`

const (
	SelectUsers = `
		SELECT ` + userColumns + `
		FROM users
	`
	SelectUserByUUID = `
		SELECT ` + userColumns + `
		FROM users
		WHERE uuid = $1
	`
	SelectUserByEmail = `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
	`
	InsertUser = `
		INSERT INTO users (full_name, email, password_hash, role, tin_number, national_id, bank_name, bank_account)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + userColumns + `
	`
	UpdateUserByUUID = `
		UPDATE users
		SET full_name = $1,
		    role = $2,
		    tin_number = $3,
		    national_id = $4,
		    bank_name = $5,
		    bank_account = $6,
		    is_email_verified = $7,
		    is_seller = $8,
		    approved_by = $9,
		    updated_at = now()
		WHERE uuid = $10
		RETURNING ` + userColumns + `
	`
	BanUserByUUID = `
		UPDATE users
		SET is_banned = $2,
		    banned_by = CASE WHEN $2 THEN $3 ELSE NULL END,
		    updated_at = now()
		WHERE uuid = $1
		RETURNING ` + userColumns + `
	`
	SoftDeleteUserByUUID = `
		UPDATE users
		SET is_deleted = TRUE, trash_date = now(), updated_at = now()
		WHERE uuid = $1 AND is_deleted = FALSE
		RETURNING ` + userColumns + `
	`
	RestoreUserByUUID = `
		UPDATE users
		SET is_deleted = FALSE, trash_date = NULL, updated_at = now()
		WHERE uuid = $1 AND is_deleted = TRUE
		RETURNING ` + userColumns + `
	`
	ArchiveUserByUUID = `
		INSERT INTO deleted_users (uuid, full_name, email, role, deleted_at)
		SELECT uuid, full_name, email, role, now()
		FROM users
		WHERE uuid = $1 AND is_deleted = TRUE
		RETURNING id, uuid, full_name, email, role, deleted_at
	`
	DeleteUserByUUID = `
		DELETE FROM users WHERE uuid = $1
	`
	SelectExpiredUsers = `
		SELECT ` + userColumns + `
		FROM users
		WHERE is_deleted = TRUE AND trash_date < $1
	`
)
