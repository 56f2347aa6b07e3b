package admin

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"marketplace-admin-api/internal/domain/admin"
	"marketplace-admin-api/internal/infrastructure/db/postgres"
)

var ErrEmailAlreadyExists = errors.New("email already exists")

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) admin.Repository {
	return &Repository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAdmin(row scanner) (*Admin, error) {
	a := new(Admin)
	err := row.Scan(
		&a.ID,
		&a.UUID,
		&a.FullName,
		&a.Email,
		&a.PasswordHash,
		&a.Role,

		&a.IsBanned,
		&a.BannedBy,
		&a.IsDeleted,
		&a.TrashDate,

		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return a, nil
}

func (r *Repository) fetchMany(ctx context.Context, query string, args ...any) (admin.Admins, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var as Admins
	for rows.Next() {
		a, err := scanAdmin(rows)
		if err != nil {
			return nil, err
		}
		as = append(as, a)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&as), nil
}

func (r *Repository) fetchOne(ctx context.Context, query string, args ...any) (*admin.Admin, error) {
	a, err := scanAdmin(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(a), nil
}

func (r *Repository) FetchAdmins(ctx context.Context) (admin.Admins, error) {
	return r.fetchMany(ctx, SelectAdmins)
}

func (r *Repository) FetchAdminByUUID(ctx context.Context, uuid admin.UUID) (*admin.Admin, error) {
	return r.fetchOne(ctx, SelectAdminByUUID, uuid.String())
}

func (r *Repository) FetchAdminByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	return r.fetchOne(ctx, SelectAdminByEmail, email)
}

func (r *Repository) CreateAdmin(ctx context.Context, req admin.Admin) (*admin.Admin, error) {
	a, err := scanAdmin(r.db.QueryRow(
		ctx,
		InsertAdmin,
		req.FullName, req.Email, req.PasswordHash, req.Role,
	))
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return fromDBModel(a), nil
}

func (r *Repository) UpdateAdmin(ctx context.Context, req admin.Admin) (*admin.Admin, error) {
	a, err := r.fetchOne(ctx, UpdateAdminByUUID, req.FullName, req.Email, req.UUID)
	if err != nil && postgres.IsUniqueViolation(err) {
		return nil, ErrEmailAlreadyExists
	}

	return a, err
}

func (r *Repository) SetBan(ctx context.Context, uuid admin.UUID, banned bool, actor string) (*admin.Admin, error) {
	return r.fetchOne(ctx, BanAdminByUUID, uuid.String(), banned, actor)
}

func (r *Repository) SoftDelete(ctx context.Context, uuid admin.UUID) (*admin.Admin, error) {
	return r.fetchOne(ctx, SoftDeleteAdminByUUID, uuid.String())
}

func (r *Repository) Restore(ctx context.Context, uuid admin.UUID) (*admin.Admin, error) {
	return r.fetchOne(ctx, RestoreAdminByUUID, uuid.String())
}

// PermanentDelete archives into deleted_admins and deletes the live row in one
// transaction so a failed archive write never loses the record.
func (r *Repository) PermanentDelete(ctx context.Context, uuid admin.UUID) (*admin.DeletedAdmin, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	d := new(DeletedAdmin)
	err = tx.QueryRow(ctx, ArchiveAdminByUUID, uuid.String()).Scan(
		&d.ID,
		&d.UUID,
		&d.FullName,
		&d.Email,
		&d.Role,
		&d.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if _, err = tx.Exec(ctx, DeleteAdminByUUID, uuid.String()); err != nil {
		return nil, err
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	return fromDeletedDBModel(d), nil
}

func (r *Repository) FetchExpired(ctx context.Context, cutoff time.Time) (admin.Admins, error) {
	return r.fetchMany(ctx, SelectExpiredAdmins, cutoff)
}
