package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"marketplace-admin-api/internal/apperrors"
	"marketplace-admin-api/internal/domain/role"
	domain "marketplace-admin-api/internal/domain/user"
	"marketplace-admin-api/internal/filter"
	userDB "marketplace-admin-api/internal/infrastructure/db/postgres/user"
	jwtSvc "marketplace-admin-api/internal/infrastructure/jwt"
)

type FakeUserService struct {
	FindUsersFunc           func(ctx context.Context, c filter.UserCriteria, page, limit int) (filter.Page[*domain.User], error)
	FindUserByUUIDFunc      func(ctx context.Context, uuid domain.UUID) (*domain.User, error)
	CreateUserFunc          func(ctx context.Context, u domain.User, password string) (*domain.User, error)
	UpdateUserFunc          func(ctx context.Context, u domain.User, actor string) (*domain.User, error)
	SetBanFunc              func(ctx context.Context, uuid domain.UUID, banned bool, actor string) (*domain.User, error)
	SoftDeleteUserFunc      func(ctx context.Context, uuid domain.UUID) (*domain.User, error)
	RestoreUserFunc         func(ctx context.Context, uuid domain.UUID) (*domain.User, error)
	PermanentDeleteUserFunc func(ctx context.Context, uuid domain.UUID) (*domain.DeletedUser, error)
}

func (f *FakeUserService) FindUsers(ctx context.Context, c filter.UserCriteria, page, limit int) (filter.Page[*domain.User], error) {
	if f.FindUsersFunc == nil {
		return filter.Page[*domain.User]{}, errors.New("not used")
	}
	return f.FindUsersFunc(ctx, c, page, limit)
}
func (f *FakeUserService) FindUserByUUID(ctx context.Context, uuid domain.UUID) (*domain.User, error) {
	if f.FindUserByUUIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindUserByUUIDFunc(ctx, uuid)
}
func (f *FakeUserService) CreateUser(ctx context.Context, u domain.User, password string) (*domain.User, error) {
	if f.CreateUserFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateUserFunc(ctx, u, password)
}
func (f *FakeUserService) UpdateUser(ctx context.Context, u domain.User, actor string) (*domain.User, error) {
	if f.UpdateUserFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdateUserFunc(ctx, u, actor)
}
func (f *FakeUserService) SetBan(ctx context.Context, uuid domain.UUID, banned bool, actor string) (*domain.User, error) {
	if f.SetBanFunc == nil {
		return nil, errors.New("not used")
	}
	return f.SetBanFunc(ctx, uuid, banned, actor)
}
func (f *FakeUserService) SoftDeleteUser(ctx context.Context, uuid domain.UUID) (*domain.User, error) {
	if f.SoftDeleteUserFunc == nil {
		return nil, errors.New("not used")
	}
	return f.SoftDeleteUserFunc(ctx, uuid)
}
func (f *FakeUserService) RestoreUser(ctx context.Context, uuid domain.UUID) (*domain.User, error) {
	if f.RestoreUserFunc == nil {
		return nil, errors.New("not used")
	}
	return f.RestoreUserFunc(ctx, uuid)
}
func (f *FakeUserService) PermanentDeleteUser(ctx context.Context, uuid domain.UUID) (*domain.DeletedUser, error) {
	if f.PermanentDeleteUserFunc == nil {
		return nil, errors.New("not used")
	}
	return f.PermanentDeleteUserFunc(ctx, uuid)
}
func (f *FakeUserService) PurgeExpired(ctx context.Context) (int, error) {
	return 0, errors.New("not used")
}

// FakeRoleResolver maps emails onto fixed roles, standing in for the staff
// stores behind RequireRole.
type FakeRoleResolver struct {
	roles map[string]string
	err   error
}

func (f *FakeRoleResolver) ResolveRole(_ context.Context, email string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.roles[email], nil
}

func setupUserRouter(t *testing.T, us *FakeUserService, resolver *FakeRoleResolver) (*gin.Engine, *jwtSvc.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	j := jwtSvc.New("test-secret")
	NewUserController(r, us, zap.NewNop(), j, resolver, 30*24*time.Hour)

	return r, j
}

func doReq(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Reader
	switch v := body.(type) {
	case nil:
		buf = bytes.NewReader(nil)
	case string:
		buf = bytes.NewReader([]byte(v))
	default:
		b, err := json.Marshal(v)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, path, buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func bearer(t *testing.T, j *jwtSvc.Service, email, roleName string) map[string]string {
	t.Helper()
	tok, err := j.GenerateJWT(email, roleName, time.Hour)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + tok}
}

func staffResolver() *FakeRoleResolver {
	return &FakeRoleResolver{roles: map[string]string{
		"admin@market.test": role.Admin,
		"boss@market.test":  role.SuperAdmin,
	}}
}

func sampleUser() *domain.User {
	return &domain.User{
		UUID:      uuid.New(),
		FullName:  "Jane Moreno",
		Email:     "jane@market.test",
		Role:      "customer",
		CreatedAt: time.Now(),
	}
}

func TestGetUsersHandler_PassesCriteriaAndPaging(t *testing.T) {
	u := sampleUser()
	us := &FakeUserService{
		FindUsersFunc: func(_ context.Context, c filter.UserCriteria, page, limit int) (filter.Page[*domain.User], error) {
			assert.Equal(t, "jane", c.Query)
			assert.Equal(t, "customer", c.Role)
			require.NotNil(t, c.IsBanned)
			assert.False(t, *c.IsBanned)
			assert.Equal(t, 2, page)
			assert.Equal(t, 5, limit)
			return filter.Page[*domain.User]{Items: domain.Users{u}, Total: 11, TotalPages: 3}, nil
		},
	}
	r, j := setupUserRouter(t, us, staffResolver())

	w := doReq(t, r, http.MethodGet,
		RouteUsers+"?q=jane&role=customer&isBanned=false&page=2&limit=5",
		nil, bearer(t, j, "admin@market.test", role.Admin))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data       []map[string]any `json:"data"`
		Total      int              `json:"total"`
		TotalPages int              `json:"totalPages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, 11, resp.Total)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, u.Email, resp.Data[0]["email"])
}

func TestUserRoutes_AuthAndRoleGates(t *testing.T) {
	us := &FakeUserService{
		FindUsersFunc: func(_ context.Context, _ filter.UserCriteria, _, _ int) (filter.Page[*domain.User], error) {
			return filter.Page[*domain.User]{Items: domain.Users{}}, nil
		},
		PermanentDeleteUserFunc: func(_ context.Context, _ domain.UUID) (*domain.DeletedUser, error) {
			return &domain.DeletedUser{Email: "jane@market.test"}, nil
		},
	}
	r, j := setupUserRouter(t, us, staffResolver())
	target := RouteUsers + "/" + uuid.NewString() + "/permanent"

	tests := []struct {
		name     string
		method   string
		path     string
		headers  map[string]string
		wantCode int
	}{
		{
			name:     "no token",
			method:   http.MethodGet,
			path:     RouteUsers,
			headers:  nil,
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "garbage token",
			method:   http.MethodGet,
			path:     RouteUsers,
			headers:  map[string]string{"Authorization": "Bearer garbage"},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "valid token but unknown staff email",
			method:   http.MethodGet,
			path:     RouteUsers,
			headers:  bearer(t, j, "ghost@market.test", role.Admin),
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "admin can list",
			method:   http.MethodGet,
			path:     RouteUsers,
			headers:  bearer(t, j, "admin@market.test", role.Admin),
			wantCode: http.StatusOK,
		},
		{
			name:     "admin cannot permanently delete",
			method:   http.MethodDelete,
			path:     target,
			headers:  bearer(t, j, "admin@market.test", role.Admin),
			wantCode: http.StatusForbidden,
		},
		{
			name:     "superadmin can permanently delete",
			method:   http.MethodDelete,
			path:     target,
			headers:  bearer(t, j, "boss@market.test", role.SuperAdmin),
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			w := doReq(t, r, tt.method, tt.path, nil, tt.headers)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestRequireRole_ResolvesFreshPerRequest(t *testing.T) {
	// the token still says admin, but the staff record is gone
	us := &FakeUserService{
		FindUsersFunc: func(_ context.Context, _ filter.UserCriteria, _, _ int) (filter.Page[*domain.User], error) {
			return filter.Page[*domain.User]{}, nil
		},
	}
	resolver := staffResolver()
	r, j := setupUserRouter(t, us, resolver)
	headers := bearer(t, j, "admin@market.test", role.Admin)

	w := doReq(t, r, http.MethodGet, RouteUsers, nil, headers)
	require.Equal(t, http.StatusOK, w.Code)

	delete(resolver.roles, "admin@market.test")

	w = doReq(t, r, http.MethodGet, RouteUsers, nil, headers)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetUserHandler_Table(t *testing.T) {
	u := sampleUser()

	tests := []struct {
		name     string
		id       string
		svcErr   error
		wantCode int
	}{
		{"found", u.UUID.String(), nil, http.StatusOK},
		{"bad uuid", "not-a-uuid", nil, http.StatusBadRequest},
		{"not found", uuid.NewString(), apperrors.E(apperrors.NotFound, "user not found"), http.StatusNotFound},
		{"repo failure masked as 500", uuid.NewString(), errors.New("pg down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			us := &FakeUserService{
				FindUserByUUIDFunc: func(_ context.Context, _ domain.UUID) (*domain.User, error) {
					if tt.svcErr != nil {
						return nil, tt.svcErr
					}
					return u, nil
				},
			}
			r, j := setupUserRouter(t, us, staffResolver())

			w := doReq(t, r, http.MethodGet, RouteUsers+"/"+tt.id, nil,
				bearer(t, j, "admin@market.test", role.Admin))
			assert.Equal(t, tt.wantCode, w.Code)

			if tt.svcErr != nil && apperrors.KindOf(tt.svcErr) == apperrors.Internal {
				assert.Contains(t, w.Body.String(), "internal server error")
				assert.NotContains(t, w.Body.String(), "pg down")
			}
		})
	}
}

func TestCreateUserHandler_Conflict(t *testing.T) {
	us := &FakeUserService{
		CreateUserFunc: func(_ context.Context, _ domain.User, _ string) (*domain.User, error) {
			return nil, userDB.ErrEmailAlreadyExists
		},
	}
	r, j := setupUserRouter(t, us, staffResolver())

	w := doReq(t, r, http.MethodPost, RouteUsers, map[string]any{
		"full_name": "Jane Moreno",
		"email":     "jane@market.test",
		"password":  "s3cretpass",
		"role":      "customer",
	}, bearer(t, j, "admin@market.test", role.Admin))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "email already exists")
}

func TestCreateUserHandler_MerchantNeedsTaxFields(t *testing.T) {
	us := &FakeUserService{}
	r, j := setupUserRouter(t, us, staffResolver())

	w := doReq(t, r, http.MethodPost, RouteUsers, map[string]any{
		"full_name": "Jane Moreno",
		"email":     "jane@market.test",
		"password":  "s3cretpass",
		"role":      "merchant",
	}, bearer(t, j, "admin@market.test", role.Admin))

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "tin_number")
}

func TestUpdateUserHandler_BanPath(t *testing.T) {
	u := sampleUser()
	var gotBanned bool
	var gotActor string

	us := &FakeUserService{
		SetBanFunc: func(_ context.Context, id domain.UUID, banned bool, actor string) (*domain.User, error) {
			assert.Equal(t, u.UUID, id)
			gotBanned = banned
			gotActor = actor
			u.IsBanned = banned
			u.BannedBy = &actor
			return u, nil
		},
	}
	r, j := setupUserRouter(t, us, staffResolver())

	// is_banned present selects the ban path, other fields are ignored
	w := doReq(t, r, http.MethodPut, RouteUsers+"/"+u.UUID.String(),
		map[string]any{"is_banned": true},
		bearer(t, j, "admin@market.test", role.Admin))

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, gotBanned)
	assert.Equal(t, "admin@market.test", gotActor)
	assert.Contains(t, w.Body.String(), `"is_banned":true`)
}

func TestUpdateUserHandler_GeneralPath(t *testing.T) {
	u := sampleUser()
	us := &FakeUserService{
		UpdateUserFunc: func(_ context.Context, in domain.User, actor string) (*domain.User, error) {
			assert.Equal(t, u.UUID, in.UUID)
			assert.Equal(t, "Jane M. Moreno", in.FullName)
			assert.Equal(t, "admin@market.test", actor)
			u.FullName = in.FullName
			return u, nil
		},
	}
	r, j := setupUserRouter(t, us, staffResolver())

	w := doReq(t, r, http.MethodPut, RouteUsers+"/"+u.UUID.String(),
		map[string]any{
			"full_name": "Jane M. Moreno",
			"email":     "jane@market.test",
			"role":      "customer",
		},
		bearer(t, j, "admin@market.test", role.Admin))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Jane M. Moreno")
}

func TestDeleteUserHandler_MentionsRetentionWindow(t *testing.T) {
	u := sampleUser()
	us := &FakeUserService{
		SoftDeleteUserFunc: func(_ context.Context, id domain.UUID) (*domain.User, error) {
			assert.Equal(t, u.UUID, id)
			now := time.Now()
			u.IsDeleted = true
			u.TrashDate = &now
			return u, nil
		},
	}
	r, j := setupUserRouter(t, us, staffResolver())

	w := doReq(t, r, http.MethodDelete, RouteUsers+"/"+u.UUID.String(), nil,
		bearer(t, j, "admin@market.test", role.Admin))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "moved to trash")
	assert.Contains(t, w.Body.String(), "720h")
}

func TestRestoreUserHandler_NotInTrash(t *testing.T) {
	us := &FakeUserService{
		RestoreUserFunc: func(_ context.Context, _ domain.UUID) (*domain.User, error) {
			return nil, apperrors.E(apperrors.NotFound, "user not found in trash")
		},
	}
	r, j := setupUserRouter(t, us, staffResolver())

	w := doReq(t, r, http.MethodPost, RouteUsers+"/"+uuid.NewString()+"/restore", nil,
		bearer(t, j, "admin@market.test", role.Admin))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
