package superadmin

import "context"

type Repository interface {
	FetchSuperAdmins(ctx context.Context) (SuperAdmins, error)
	FetchSuperAdminByEmail(ctx context.Context, email string) (*SuperAdmin, error)
	CreateSuperAdmin(ctx context.Context, req SuperAdmin) (*SuperAdmin, error)
}
