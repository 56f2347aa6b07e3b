package superadmin

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domain "marketplace-admin-api/internal/domain/superadmin"
	"marketplace-admin-api/internal/infrastructure/db/postgres"
)

var ErrEmailAlreadyExists = errors.New("email already exists")

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSuperAdmin(row scanner) (*SuperAdmin, error) {
	s := new(SuperAdmin)
	err := row.Scan(
		&s.ID,
		&s.UUID,
		&s.FullName,
		&s.Email,
		&s.PasswordHash,
		&s.Role,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func fromDBModel(model *SuperAdmin) *domain.SuperAdmin {
	return &domain.SuperAdmin{
		UUID:         model.UUID,
		FullName:     model.FullName,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		Role:         model.Role,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func (r *Repository) FetchSuperAdmins(ctx context.Context) (domain.SuperAdmins, error) {
	rows, err := r.db.Query(ctx, SelectSuperAdmins)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ss domain.SuperAdmins
	for rows.Next() {
		s, err := scanSuperAdmin(rows)
		if err != nil {
			return nil, err
		}
		ss = append(ss, fromDBModel(s))
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ss, nil
}

func (r *Repository) FetchSuperAdminByEmail(ctx context.Context, email string) (*domain.SuperAdmin, error) {
	s, err := scanSuperAdmin(r.db.QueryRow(ctx, SelectSuperAdminByEmail, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(s), nil
}

func (r *Repository) CreateSuperAdmin(ctx context.Context, req domain.SuperAdmin) (*domain.SuperAdmin, error) {
	s, err := scanSuperAdmin(r.db.QueryRow(
		ctx,
		InsertSuperAdmin,
		req.FullName, req.Email, req.PasswordHash,
	))
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return fromDBModel(s), nil
}
