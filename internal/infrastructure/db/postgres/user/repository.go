package user

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"marketplace-admin-api/internal/domain/user"
	"marketplace-admin-api/internal/infrastructure/db/postgres"
)

var ErrEmailAlreadyExists = errors.New("email already exists")

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) user.Repository {
	return &Repository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (*User, error) {
	u := new(User)
	err := row.Scan(
		&u.ID,
		&u.UUID,
		&u.FullName,
		&u.Email,
		&u.PasswordHash,
		&u.Role,

		&u.TinNumber,
		&u.NationalID,
		&u.BankName,
		&u.BankAccount,

		&u.IsEmailVerified,
		&u.IsSeller,
		&u.ApprovedBy,
		&u.IsBanned,
		&u.BannedBy,
		&u.IsDeleted,
		&u.TrashDate,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (r *Repository) FetchUsers(ctx context.Context) (user.Users, error) {
	rows, err := r.db.Query(ctx, SelectUsers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var us Users
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		us = append(us, u)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&us), nil
}

func (r *Repository) fetchOne(ctx context.Context, query string, args ...any) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) FetchUserByUUID(ctx context.Context, uuid user.UUID) (*user.User, error) {
	return r.fetchOne(ctx, SelectUserByUUID, uuid.String())
}

func (r *Repository) FetchUserByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.fetchOne(ctx, SelectUserByEmail, email)
}

func (r *Repository) CreateUser(ctx context.Context, req user.User) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(
		ctx,
		InsertUser,
		req.FullName, req.Email, req.PasswordHash, req.Role,
		req.TinNumber, req.NationalID, req.BankName, req.BankAccount,
	))
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) UpdateUser(ctx context.Context, req user.User) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(
		ctx,
		UpdateUserByUUID,
		req.FullName, req.Role,
		req.TinNumber, req.NationalID, req.BankName, req.BankAccount,
		req.IsEmailVerified, req.IsSeller, req.ApprovedBy,
		req.UUID,
	))
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) SetBan(ctx context.Context, uuid user.UUID, banned bool, actor string) (*user.User, error) {
	return r.fetchOne(ctx, BanUserByUUID, uuid.String(), banned, actor)
}

func (r *Repository) SoftDelete(ctx context.Context, uuid user.UUID) (*user.User, error) {
	return r.fetchOne(ctx, SoftDeleteUserByUUID, uuid.String())
}

func (r *Repository) Restore(ctx context.Context, uuid user.UUID) (*user.User, error) {
	return r.fetchOne(ctx, RestoreUserByUUID, uuid.String())
}

// PermanentDelete copies the row into deleted_users and removes it from users
// inside one transaction. If the archive insert fails the delete never runs.
func (r *Repository) PermanentDelete(ctx context.Context, uuid user.UUID) (*user.DeletedUser, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	d := new(DeletedUser)
	err = tx.QueryRow(ctx, ArchiveUserByUUID, uuid.String()).Scan(
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

	if _, err = tx.Exec(ctx, DeleteUserByUUID, uuid.String()); err != nil {
		return nil, err
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	return fromDeletedDBModel(d), nil
}

func (r *Repository) FetchExpired(ctx context.Context, cutoff time.Time) (user.Users, error) {
	rows, err := r.db.Query(ctx, SelectExpiredUsers, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var us Users
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		us = append(us, u)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&us), nil
}
