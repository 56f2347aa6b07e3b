package user

import (
	"context"
	"time"
)

type Repository interface {
	FetchUsers(ctx context.Context) (Users, error)
	FetchUserByUUID(ctx context.Context, uuid UUID) (*User, error)
	FetchUserByEmail(ctx context.Context, email string) (*User, error)
	CreateUser(ctx context.Context, req User) (*User, error)
	UpdateUser(ctx context.Context, req User) (*User, error)
	SetBan(ctx context.Context, uuid UUID, banned bool, actor string) (*User, error)
	SoftDelete(ctx context.Context, uuid UUID) (*User, error)
	Restore(ctx context.Context, uuid UUID) (*User, error)
	// PermanentDelete archives the user and removes the live row in one
	// transaction; the live row survives if the archive write fails.
	PermanentDelete(ctx context.Context, uuid UUID) (*DeletedUser, error)
	FetchExpired(ctx context.Context, cutoff time.Time) (Users, error)
}
