package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	"marketplace-admin-api/internal/apperrors"
	"marketplace-admin-api/internal/application/ports"
	domain "marketplace-admin-api/internal/domain/user"
	"marketplace-admin-api/internal/filter"
	"marketplace-admin-api/internal/infrastructure/mq"
)

type UserService struct {
	userRepository domain.Repository
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
	trashRetention time.Duration
}

func NewUserService(
	userRepository domain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
	trashRetention time.Duration,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		mq:             mq,
		mCounter:       mCounter,
		trashRetention: trashRetention,
	}
}

func (us *UserService) notify(action string, u *domain.User) {
	us.mq.GetInputChan() <- mq.Event{
		Id:       uuid.New(),
		TS:       time.Now(),
		Action:   action,
		Entity:   "user",
		Email:    u.Email,
		FullName: u.FullName,
	}
}

func (us *UserService) FindUsers(ctx context.Context, c filter.UserCriteria, page, limit int) (filter.Page[*domain.User], error) {
	users, err := us.userRepository.FetchUsers(ctx)
	if err != nil {
		return filter.Page[*domain.User]{}, err
	}

	return filter.Paginate(filter.Users(users, c), page, limit), nil
}

func (us *UserService) FindUserByUUID(ctx context.Context, uuid domain.UUID) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByUUID(ctx, uuid)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperrors.E(apperrors.NotFound, "user not found")
	}

	return u, nil
}

func (us *UserService) CreateUser(ctx context.Context, u domain.User, password string) (*domain.User, error) {
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		h := string(hash)
		u.PasswordHash = &h
	}

	uRet, err := us.userRepository.CreateUser(ctx, u)
	if err != nil {
		return nil, err
	}

	us.notify(mq.ActionCreated, uRet)
	us.mCounter.WithLabelValues("user_created_total").Inc()

	return uRet, nil
}

// UpdateUser applies the general-field update path. Seller approval is
// recorded against the acting staff member; revoking it clears the approver.
func (us *UserService) UpdateUser(ctx context.Context, u domain.User, actor string) (*domain.User, error) {
	if u.IsSeller {
		u.ApprovedBy = &actor
	} else {
		u.ApprovedBy = nil
	}

	uRet, err := us.userRepository.UpdateUser(ctx, u)
	if err != nil {
		return nil, err
	}
	if uRet == nil {
		return nil, apperrors.E(apperrors.NotFound, "user not found")
	}

	us.mCounter.WithLabelValues("user_updated_total").Inc()

	return uRet, nil
}

func (us *UserService) SetBan(ctx context.Context, uuid domain.UUID, banned bool, actor string) (*domain.User, error) {
	uRet, err := us.userRepository.SetBan(ctx, uuid, banned, actor)
	if err != nil {
		return nil, err
	}
	if uRet == nil {
		return nil, apperrors.E(apperrors.NotFound, "user not found")
	}

	if banned {
		us.notify(mq.ActionBanned, uRet)
	} else {
		us.notify(mq.ActionRestored, uRet)
	}
	us.mCounter.WithLabelValues("user_ban_toggled_total").Inc()

	return uRet, nil
}

func (us *UserService) SoftDeleteUser(ctx context.Context, uuid domain.UUID) (*domain.User, error) {
	uRet, err := us.userRepository.SoftDelete(ctx, uuid)
	if err != nil {
		return nil, err
	}
	if uRet == nil {
		return nil, apperrors.E(apperrors.NotFound, "user not found or already in trash")
	}

	us.mCounter.WithLabelValues("user_trashed_total").Inc()

	return uRet, nil
}

func (us *UserService) RestoreUser(ctx context.Context, uuid domain.UUID) (*domain.User, error) {
	uRet, err := us.userRepository.Restore(ctx, uuid)
	if err != nil {
		return nil, err
	}
	if uRet == nil {
		return nil, apperrors.E(apperrors.NotFound, "user not found in trash")
	}

	us.mCounter.WithLabelValues("user_restored_total").Inc()

	return uRet, nil
}

func (us *UserService) PermanentDeleteUser(ctx context.Context, userUUID domain.UUID) (*domain.DeletedUser, error) {
	d, err := us.userRepository.PermanentDelete(ctx, userUUID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperrors.E(apperrors.NotFound, "user not found")
	}

	us.mq.GetInputChan() <- mq.Event{
		Id:       uuid.New(),
		TS:       time.Now(),
		Action:   mq.ActionDeleted,
		Entity:   "user",
		Email:    d.Email,
		FullName: d.FullName,
	}
	us.mCounter.WithLabelValues("user_purged_total").Inc()

	return d, nil
}

// PurgeExpired permanently deletes every user whose trash date fell outside
// the retention window. Each row goes through the same archive-then-delete
// transaction as an explicit permanent delete.
func (us *UserService) PurgeExpired(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-us.trashRetention)
	expired, err := us.userRepository.FetchExpired(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	var purged int
	for _, u := range expired {
		if _, err = us.PermanentDeleteUser(ctx, u.UUID); err != nil {
			return purged, err
		}
		purged++
	}

	return purged, nil
}
