package admin

const adminColumns = `id, uuid, full_name, email, password_hash, role, is_banned, banned_by, is_deleted, trash_date, created_at, updated_at`

const (
	SelectAdmins = `
		SELECT ` + adminColumns + `
		FROM admins
	`
	SelectAdminByUUID = `
		SELECT ` + adminColumns + `
		FROM admins
		WHERE uuid = $1
	`
	SelectAdminByEmail = `
		SELECT ` + adminColumns + `
		FROM admins
		WHERE email = $1
	`
	InsertAdmin = `
		INSERT INTO admins (full_name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + adminColumns + `
	`
	UpdateAdminByUUID = `
		UPDATE admins
		SET full_name = $1,
		    email = $2,
		    updated_at = now()
		WHERE uuid = $3
		RETURNING ` + adminColumns + `
	`
	BanAdminByUUID = `
		UPDATE admins
		SET is_banned = $2,
		    banned_by = CASE WHEN $2 THEN $3 ELSE NULL END,
		    updated_at = now()
		WHERE uuid = $1
		RETURNING ` + adminColumns + `
	`
	SoftDeleteAdminByUUID = `
		UPDATE admins
		SET is_deleted = TRUE, trash_date = now(), updated_at = now()
		WHERE uuid = $1 AND is_deleted = FALSE
		RETURNING ` + adminColumns + `
	`
	RestoreAdminByUUID = `
		UPDATE admins
		SET is_deleted = FALSE, trash_date = NULL, updated_at = now()
		WHERE uuid = $1 AND is_deleted = TRUE
		RETURNING ` + adminColumns + `
	`
	ArchiveAdminByUUID = `
		INSERT INTO deleted_admins (uuid, full_name, email, role, deleted_at)
		SELECT uuid, full_name, email, role, now()
		FROM admins
		WHERE uuid = $1 AND is_deleted = TRUE
		RETURNING id, uuid, full_name, email, role, deleted_at
	`
	DeleteAdminByUUID = `
		DELETE FROM admins WHERE uuid = $1
	`
	SelectExpiredAdmins = `
		SELECT ` + adminColumns + `
		FROM admins
		WHERE is_deleted = TRUE AND trash_date < $1
	`
)
