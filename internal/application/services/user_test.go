package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"marketplace-admin-api/internal/apperrors"
	domain "marketplace-admin-api/internal/domain/user"
	"marketplace-admin-api/internal/infrastructure/mq"
)

const testRetention = 30 * 24 * time.Hour

func TestUserService_CreateUser_HashesPasswordAndNotifies(t *testing.T) {
	fmq := NewFakeMQ()
	repo := &FakeUserRepo{
		CreateFunc: func(_ context.Context, req domain.User) (*domain.User, error) {
			require.NotNil(t, req.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*req.PasswordHash), []byte("s3cretpass")))
			assert.NotEqual(t, "s3cretpass", *req.PasswordHash)
			req.UUID = uuid.New()
			return &req, nil
		},
	}
	svc := NewUserService(repo, fmq, newTestCounter(), testRetention)

	u, err := svc.CreateUser(context.Background(), domain.User{
		FullName: "Jane Moreno",
		Email:    "jane@market.test",
		Role:     domain.RoleCustomer,
	}, "s3cretpass")
	require.NoError(t, err)
	require.NotNil(t, u)

	events := fmq.drain()
	require.Len(t, events, 1)
	assert.Equal(t, mq.ActionCreated, events[0].Action)
	assert.Equal(t, "user", events[0].Entity)
	assert.Equal(t, "jane@market.test", events[0].Email)
}

func TestUserService_FindUserByUUID_NilRowBecomesNotFound(t *testing.T) {
	repo := &FakeUserRepo{
		FetchByUUIDFunc: func(_ context.Context, _ domain.UUID) (*domain.User, error) {
			return nil, nil
		},
	}
	svc := NewUserService(repo, NewFakeMQ(), newTestCounter(), testRetention)

	u, err := svc.FindUserByUUID(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Nil(t, u)
	assert.Equal(t, apperrors.NotFound, apperrors.KindOf(err))
}

func TestUserService_UpdateUser_SellerApprovalTracksActor(t *testing.T) {
	var got domain.User
	repo := &FakeUserRepo{
		UpdateFunc: func(_ context.Context, req domain.User) (*domain.User, error) {
			got = req
			return &req, nil
		},
	}
	svc := NewUserService(repo, NewFakeMQ(), newTestCounter(), testRetention)

	_, err := svc.UpdateUser(context.Background(), domain.User{IsSeller: true}, "admin@market.test")
	require.NoError(t, err)
	require.NotNil(t, got.ApprovedBy)
	assert.Equal(t, "admin@market.test", *got.ApprovedBy)

	_, err = svc.UpdateUser(context.Background(), domain.User{IsSeller: false}, "admin@market.test")
	require.NoError(t, err)
	assert.Nil(t, got.ApprovedBy, "revoking seller status clears the approver")
}

func TestUserService_SetBan_EventPerDirection(t *testing.T) {
	fmq := NewFakeMQ()
	repo := &FakeUserRepo{
		SetBanFunc: func(_ context.Context, id domain.UUID, banned bool, actor string) (*domain.User, error) {
			by := actor
			return &domain.User{UUID: id, Email: "jane@market.test", IsBanned: banned, BannedBy: &by}, nil
		},
	}
	svc := NewUserService(repo, fmq, newTestCounter(), testRetention)

	u, err := svc.SetBan(context.Background(), uuid.New(), true, "admin@market.test")
	require.NoError(t, err)
	require.NotNil(t, u.BannedBy)
	assert.Equal(t, "admin@market.test", *u.BannedBy)

	_, err = svc.SetBan(context.Background(), uuid.New(), false, "admin@market.test")
	require.NoError(t, err)

	events := fmq.drain()
	require.Len(t, events, 2)
	assert.Equal(t, mq.ActionBanned, events[0].Action)
	assert.Equal(t, mq.ActionRestored, events[1].Action)
}

func TestUserService_SoftDelete_NotFoundWhenAlreadyTrashed(t *testing.T) {
	repo := &FakeUserRepo{
		SoftDeleteFunc: func(_ context.Context, _ domain.UUID) (*domain.User, error) {
			return nil, nil
		},
	}
	svc := NewUserService(repo, NewFakeMQ(), newTestCounter(), testRetention)

	_, err := svc.SoftDeleteUser(context.Background(), uuid.New())
	assert.Equal(t, apperrors.NotFound, apperrors.KindOf(err))
}

func TestUserService_PermanentDelete_NotifiesDeletion(t *testing.T) {
	fmq := NewFakeMQ()
	repo := &FakeUserRepo{
		PermanentDeleteFunc: func(_ context.Context, id domain.UUID) (*domain.DeletedUser, error) {
			return &domain.DeletedUser{UUID: id, Email: "jane@market.test", DeletedAt: time.Now()}, nil
		},
	}
	svc := NewUserService(repo, fmq, newTestCounter(), testRetention)

	d, err := svc.PermanentDeleteUser(context.Background(), uuid.New())
	require.NoError(t, err)
	require.NotNil(t, d)

	events := fmq.drain()
	require.Len(t, events, 1)
	assert.Equal(t, mq.ActionDeleted, events[0].Action)
}

func TestUserService_PermanentDelete_ActiveRecordIsNotFound(t *testing.T) {
	fmq := NewFakeMQ()
	repo := &FakeUserRepo{
		// the repository matches nothing unless the row is already trashed
		PermanentDeleteFunc: func(_ context.Context, _ domain.UUID) (*domain.DeletedUser, error) {
			return nil, nil
		},
	}
	svc := NewUserService(repo, fmq, newTestCounter(), testRetention)

	d, err := svc.PermanentDeleteUser(context.Background(), uuid.New())
	assert.Nil(t, d)
	assert.Equal(t, apperrors.NotFound, apperrors.KindOf(err))
	assert.Empty(t, fmq.drain(), "no deletion notice for a record that was never purged")
}

func TestUserService_PurgeExpired(t *testing.T) {
	expired := domain.Users{
		{UUID: uuid.New(), Email: "a@market.test"},
		{UUID: uuid.New(), Email: "b@market.test"},
	}
	var purged []domain.UUID
	repo := &FakeUserRepo{
		FetchExpiredFunc: func(_ context.Context, cutoff time.Time) (domain.Users, error) {
			assert.WithinDuration(t, time.Now().Add(-testRetention), cutoff, time.Minute)
			return expired, nil
		},
		PermanentDeleteFunc: func(_ context.Context, id domain.UUID) (*domain.DeletedUser, error) {
			purged = append(purged, id)
			return &domain.DeletedUser{UUID: id}, nil
		},
	}
	svc := NewUserService(repo, NewFakeMQ(), newTestCounter(), testRetention)

	n, err := svc.PurgeExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, purged, 2)
	assert.Equal(t, expired[0].UUID, purged[0])
	assert.Equal(t, expired[1].UUID, purged[1])
}

func TestUserService_PurgeExpired_StopsOnError(t *testing.T) {
	expired := domain.Users{
		{UUID: uuid.New()},
		{UUID: uuid.New()},
	}
	calls := 0
	repo := &FakeUserRepo{
		FetchExpiredFunc: func(_ context.Context, _ time.Time) (domain.Users, error) {
			return expired, nil
		},
		PermanentDeleteFunc: func(_ context.Context, _ domain.UUID) (*domain.DeletedUser, error) {
			calls++
			if calls == 1 {
				return nil, errors.New("tx failed")
			}
			return &domain.DeletedUser{}, nil
		},
	}
	svc := NewUserService(repo, NewFakeMQ(), newTestCounter(), testRetention)

	n, err := svc.PurgeExpired(context.Background())
	require.Error(t, err)
	assert.Zero(t, n)
	assert.Equal(t, 1, calls, "sweep stops at the first failure")
}
