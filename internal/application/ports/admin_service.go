package ports

import (
	"context"

	"marketplace-admin-api/internal/domain/admin"
	"marketplace-admin-api/internal/domain/superadmin"
	"marketplace-admin-api/internal/filter"
)

type AdminService interface {
	RoleResolver

	FindAdmins(ctx context.Context, c filter.AdminCriteria, page, limit int) (filter.Page[*admin.Admin], error)
	FindAdminByUUID(ctx context.Context, uuid admin.UUID) (*admin.Admin, error)
	CreateAdmin(ctx context.Context, a admin.Admin, password string) (*admin.Admin, error)
	UpdateAdmin(ctx context.Context, a admin.Admin) (*admin.Admin, error)
	SetBan(ctx context.Context, uuid admin.UUID, banned bool, actor string) (*admin.Admin, error)
	SoftDeleteAdmin(ctx context.Context, uuid admin.UUID) (*admin.Admin, error)
	RestoreAdmin(ctx context.Context, uuid admin.UUID) (*admin.Admin, error)
	PermanentDeleteAdmin(ctx context.Context, uuid admin.UUID) (*admin.DeletedAdmin, error)
	PurgeExpired(ctx context.Context) (int, error)

	FindSuperAdmins(ctx context.Context, page, limit int) (filter.Page[*superadmin.SuperAdmin], error)
	CreateSuperAdmin(ctx context.Context, s superadmin.SuperAdmin, password string) (*superadmin.SuperAdmin, error)
}

// RoleResolver maps an authenticated email onto a staff role. The empty
// string means the email matches no staff record (unauthenticated for role
// purposes, distinct from holding an insufficient role).
type RoleResolver interface {
	ResolveRole(ctx context.Context, email string) (string, error)
}
