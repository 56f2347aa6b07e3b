package admin

import (
	"context"
	"time"
)

type Repository interface {
	FetchAdmins(ctx context.Context) (Admins, error)
	FetchAdminByUUID(ctx context.Context, uuid UUID) (*Admin, error)
	FetchAdminByEmail(ctx context.Context, email string) (*Admin, error)
	CreateAdmin(ctx context.Context, req Admin) (*Admin, error)
	UpdateAdmin(ctx context.Context, req Admin) (*Admin, error)
	SetBan(ctx context.Context, uuid UUID, banned bool, actor string) (*Admin, error)
	SoftDelete(ctx context.Context, uuid UUID) (*Admin, error)
	Restore(ctx context.Context, uuid UUID) (*Admin, error)
	PermanentDelete(ctx context.Context, uuid UUID) (*DeletedAdmin, error)
	FetchExpired(ctx context.Context, cutoff time.Time) (Admins, error)
}
