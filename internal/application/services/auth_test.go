package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"marketplace-admin-api/internal/apperrors"
	adminDomain "marketplace-admin-api/internal/domain/admin"
	"marketplace-admin-api/internal/domain/role"
	"marketplace-admin-api/internal/domain/superadmin"
	"marketplace-admin-api/internal/infrastructure/jwt"
)

func hashOf(t *testing.T, password string) *string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	s := string(h)
	return &s
}

func TestAuthService_GenerateToken_Table(t *testing.T) {
	adminHash := hashOf(t, "adminpass1")
	superHash := hashOf(t, "superpass1")

	adminRepo := &FakeAdminRepo{
		FetchByEmailFunc: func(_ context.Context, email string) (*adminDomain.Admin, error) {
			switch email {
			case "ops@market.test":
				return &adminDomain.Admin{Email: email, Role: "Admin", PasswordHash: adminHash}, nil
			case "banned@market.test":
				return &adminDomain.Admin{Email: email, Role: "admin", PasswordHash: adminHash, IsBanned: true}, nil
			case "trashed@market.test":
				return &adminDomain.Admin{Email: email, Role: "admin", PasswordHash: adminHash, IsDeleted: true}, nil
			default:
				return nil, nil
			}
		},
	}
	superRepo := &FakeSuperAdminRepo{
		FetchByEmailFunc: func(_ context.Context, email string) (*superadmin.SuperAdmin, error) {
			if email == "boss@market.test" {
				return &superadmin.SuperAdmin{Email: email, PasswordHash: superHash}, nil
			}
			return nil, nil
		},
	}

	jwtService := jwt.New("test-secret")
	svc := NewAuthService(adminRepo, superRepo, jwtService)

	tests := []struct {
		name     string
		email    string
		password string
		wantRole string
		wantKind apperrors.Kind
	}{
		{"admin login, role normalized", "ops@market.test", "adminpass1", role.Admin, -1},
		{"superadmin login", "boss@market.test", "superpass1", role.SuperAdmin, -1},
		{"wrong password", "ops@market.test", "wrongpass1", "", apperrors.Unauthenticated},
		{"unknown email", "ghost@market.test", "whatever99", "", apperrors.Unauthenticated},
		{"banned admin", "banned@market.test", "adminpass1", "", apperrors.Unauthorized},
		{"trashed admin", "trashed@market.test", "adminpass1", "", apperrors.Unauthorized},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			token, roleName, err := svc.GenerateToken(context.Background(), tt.email, tt.password)

			if tt.wantKind != -1 {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, apperrors.KindOf(err))
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, roleName)

			claims, err := jwtService.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, tt.email, claims.Email)
			assert.Equal(t, tt.wantRole, claims.Role)
		})
	}
}
