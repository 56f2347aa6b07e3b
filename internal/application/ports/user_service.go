package ports

import (
	"context"

	"marketplace-admin-api/internal/domain/user"
	"marketplace-admin-api/internal/filter"
)

type UserService interface {
	FindUsers(ctx context.Context, c filter.UserCriteria, page, limit int) (filter.Page[*user.User], error)
	FindUserByUUID(ctx context.Context, uuid user.UUID) (*user.User, error)
	CreateUser(ctx context.Context, u user.User, password string) (*user.User, error)
	UpdateUser(ctx context.Context, u user.User, actor string) (*user.User, error)
	SetBan(ctx context.Context, uuid user.UUID, banned bool, actor string) (*user.User, error)
	SoftDeleteUser(ctx context.Context, uuid user.UUID) (*user.User, error)
	RestoreUser(ctx context.Context, uuid user.UUID) (*user.User, error)
	PermanentDeleteUser(ctx context.Context, uuid user.UUID) (*user.DeletedUser, error)
	PurgeExpired(ctx context.Context) (int, error)
}
