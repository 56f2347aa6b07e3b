package services

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"marketplace-admin-api/internal/apperrors"
	"marketplace-admin-api/internal/application/ports"
	adminDomain "marketplace-admin-api/internal/domain/admin"
	"marketplace-admin-api/internal/domain/role"
	"marketplace-admin-api/internal/domain/superadmin"
	"marketplace-admin-api/internal/infrastructure/jwt"
)

const tokenTTL = 24 * time.Hour

type AuthService struct {
	adminRepository      adminDomain.Repository
	superAdminRepository superadmin.Repository
	jwtService           *jwt.Service
}

func NewAuthService(
	adminRepository adminDomain.Repository,
	superAdminRepository superadmin.Repository,
	jwtService *jwt.Service,
) ports.Auth {
	return &AuthService{
		adminRepository:      adminRepository,
		superAdminRepository: superAdminRepository,
		jwtService:           jwtService,
	}
}

// GenerateToken authenticates against the admin store first, then the
// superadmin store. Banned or trashed admins cannot sign in.
func (as *AuthService) GenerateToken(ctx context.Context, email, password string) (string, string, error) {
	var (
		hash     *string
		roleName string
	)

	a, err := as.adminRepository.FetchAdminByEmail(ctx, email)
	if err != nil {
		return "", "", err
	}
	switch {
	case a != nil && (a.IsBanned || a.IsDeleted):
		return "", "", apperrors.E(apperrors.Unauthorized, "account is suspended")
	case a != nil:
		hash, roleName = a.PasswordHash, role.Normalize(a.Role)
	default:
		s, err := as.superAdminRepository.FetchSuperAdminByEmail(ctx, email)
		if err != nil {
			return "", "", err
		}
		if s == nil {
			return "", "", apperrors.E(apperrors.Unauthenticated, "invalid credentials")
		}
		hash, roleName = s.PasswordHash, role.SuperAdmin
	}

	if hash == nil || bcrypt.CompareHashAndPassword([]byte(*hash), []byte(password)) != nil {
		return "", "", apperrors.E(apperrors.Unauthenticated, "invalid credentials")
	}

	token, err := as.jwtService.GenerateJWT(email, roleName, tokenTTL)
	if err != nil {
		return "", "", apperrors.Wrap(apperrors.Internal, "failed to generate token", err)
	}

	return token, roleName, nil
}
