package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	"marketplace-admin-api/internal/apperrors"
	"marketplace-admin-api/internal/application/ports"
	domain "marketplace-admin-api/internal/domain/admin"
	"marketplace-admin-api/internal/domain/role"
	"marketplace-admin-api/internal/domain/superadmin"
	"marketplace-admin-api/internal/filter"
	"marketplace-admin-api/internal/infrastructure/mq"
)

type AdminService struct {
	adminRepository      domain.Repository
	superAdminRepository superadmin.Repository
	mq                   ports.RabbitMQ
	mCounter             *prometheus.CounterVec
	trashRetention       time.Duration
}

func NewAdminService(
	adminRepository domain.Repository,
	superAdminRepository superadmin.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
	trashRetention time.Duration,
) ports.AdminService {
	return &AdminService{
		adminRepository:      adminRepository,
		superAdminRepository: superAdminRepository,
		mq:                   mq,
		mCounter:             mCounter,
		trashRetention:       trashRetention,
	}
}

// ResolveRole checks the admin store first, then the superadmin store; the
// first match wins. An empty role means the email matches no staff record.
func (as *AdminService) ResolveRole(ctx context.Context, email string) (string, error) {
	if email == "" {
		return "", nil
	}

	a, err := as.adminRepository.FetchAdminByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if a != nil {
		return role.Normalize(a.Role), nil
	}

	s, err := as.superAdminRepository.FetchSuperAdminByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if s != nil {
		return role.SuperAdmin, nil
	}

	return "", nil
}

func (as *AdminService) notify(action string, email, fullName string) {
	as.mq.GetInputChan() <- mq.Event{
		Id:       uuid.New(),
		TS:       time.Now(),
		Action:   action,
		Entity:   "admin",
		Email:    email,
		FullName: fullName,
	}
}

func (as *AdminService) FindAdmins(ctx context.Context, c filter.AdminCriteria, page, limit int) (filter.Page[*domain.Admin], error) {
	admins, err := as.adminRepository.FetchAdmins(ctx)
	if err != nil {
		return filter.Page[*domain.Admin]{}, err
	}

	return filter.Paginate(filter.Admins(admins, c), page, limit), nil
}

func (as *AdminService) FindAdminByUUID(ctx context.Context, adminUUID domain.UUID) (*domain.Admin, error) {
	a, err := as.adminRepository.FetchAdminByUUID(ctx, adminUUID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperrors.E(apperrors.NotFound, "admin not found")
	}

	return a, nil
}

func (as *AdminService) CreateAdmin(ctx context.Context, a domain.Admin, password string) (*domain.Admin, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	h := string(hash)
	a.PasswordHash = &h
	a.Role = role.Admin

	aRet, err := as.adminRepository.CreateAdmin(ctx, a)
	if err != nil {
		return nil, err
	}

	as.notify(mq.ActionCreated, aRet.Email, aRet.FullName)
	as.mCounter.WithLabelValues("admin_created_total").Inc()

	return aRet, nil
}

func (as *AdminService) UpdateAdmin(ctx context.Context, a domain.Admin) (*domain.Admin, error) {
	aRet, err := as.adminRepository.UpdateAdmin(ctx, a)
	if err != nil {
		return nil, err
	}
	if aRet == nil {
		return nil, apperrors.E(apperrors.NotFound, "admin not found")
	}

	as.mCounter.WithLabelValues("admin_updated_total").Inc()

	return aRet, nil
}

func (as *AdminService) SetBan(ctx context.Context, adminUUID domain.UUID, banned bool, actor string) (*domain.Admin, error) {
	aRet, err := as.adminRepository.SetBan(ctx, adminUUID, banned, actor)
	if err != nil {
		return nil, err
	}
	if aRet == nil {
		return nil, apperrors.E(apperrors.NotFound, "admin not found")
	}

	if banned {
		as.notify(mq.ActionBanned, aRet.Email, aRet.FullName)
	} else {
		as.notify(mq.ActionRestored, aRet.Email, aRet.FullName)
	}
	as.mCounter.WithLabelValues("admin_ban_toggled_total").Inc()

	return aRet, nil
}

func (as *AdminService) SoftDeleteAdmin(ctx context.Context, adminUUID domain.UUID) (*domain.Admin, error) {
	aRet, err := as.adminRepository.SoftDelete(ctx, adminUUID)
	if err != nil {
		return nil, err
	}
	if aRet == nil {
		return nil, apperrors.E(apperrors.NotFound, "admin not found or already in trash")
	}

	as.mCounter.WithLabelValues("admin_trashed_total").Inc()

	return aRet, nil
}

func (as *AdminService) RestoreAdmin(ctx context.Context, adminUUID domain.UUID) (*domain.Admin, error) {
	aRet, err := as.adminRepository.Restore(ctx, adminUUID)
	if err != nil {
		return nil, err
	}
	if aRet == nil {
		return nil, apperrors.E(apperrors.NotFound, "admin not found in trash")
	}

	as.mCounter.WithLabelValues("admin_restored_total").Inc()

	return aRet, nil
}

func (as *AdminService) PermanentDeleteAdmin(ctx context.Context, adminUUID domain.UUID) (*domain.DeletedAdmin, error) {
	d, err := as.adminRepository.PermanentDelete(ctx, adminUUID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperrors.E(apperrors.NotFound, "admin not found")
	}

	as.notify(mq.ActionDeleted, d.Email, d.FullName)
	as.mCounter.WithLabelValues("admin_purged_total").Inc()

	return d, nil
}

func (as *AdminService) PurgeExpired(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-as.trashRetention)
	expired, err := as.adminRepository.FetchExpired(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	var purged int
	for _, a := range expired {
		if _, err = as.PermanentDeleteAdmin(ctx, a.UUID); err != nil {
			return purged, err
		}
		purged++
	}

	return purged, nil
}

func (as *AdminService) FindSuperAdmins(ctx context.Context, page, limit int) (filter.Page[*superadmin.SuperAdmin], error) {
	ss, err := as.superAdminRepository.FetchSuperAdmins(ctx)
	if err != nil {
		return filter.Page[*superadmin.SuperAdmin]{}, err
	}

	return filter.Paginate(ss, page, limit), nil
}

func (as *AdminService) CreateSuperAdmin(ctx context.Context, s superadmin.SuperAdmin, password string) (*superadmin.SuperAdmin, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	h := string(hash)
	s.PasswordHash = &h

	sRet, err := as.superAdminRepository.CreateSuperAdmin(ctx, s)
	if err != nil {
		return nil, err
	}

	as.mCounter.WithLabelValues("superadmin_created_total").Inc()

	return sRet, nil
}
