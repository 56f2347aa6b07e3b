package services

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rabbitmq/amqp091-go"

	adminDomain "marketplace-admin-api/internal/domain/admin"
	"marketplace-admin-api/internal/domain/superadmin"
	userDomain "marketplace-admin-api/internal/domain/user"
	"marketplace-admin-api/internal/infrastructure/mq"
)

// FakeMQ satisfies ports.RabbitMQ with an unbounded capture channel so
// services can publish without a broker.
type FakeMQ struct {
	in chan mq.Event
}

func NewFakeMQ() *FakeMQ {
	return &FakeMQ{in: make(chan mq.Event, 64)}
}

func (f *FakeMQ) Connect(context.Context, string) error { return nil }
func (f *FakeMQ) Init() error                           { return nil }
func (f *FakeMQ) PublisherWorker(context.Context)       {}
func (f *FakeMQ) GetInputChan() chan mq.Event           { return f.in }
func (f *FakeMQ) GetConn() *amqp091.Connection          { return nil }

func (f *FakeMQ) drain() []mq.Event {
	var out []mq.Event
	for {
		select {
		case ev := <-f.in:
			out = append(out, ev)
		default:
			return out
		}
	}
}

type FakeUserRepo struct {
	FetchUsersFunc      func(ctx context.Context) (userDomain.Users, error)
	FetchByUUIDFunc     func(ctx context.Context, uuid userDomain.UUID) (*userDomain.User, error)
	FetchByEmailFunc    func(ctx context.Context, email string) (*userDomain.User, error)
	CreateFunc          func(ctx context.Context, req userDomain.User) (*userDomain.User, error)
	UpdateFunc          func(ctx context.Context, req userDomain.User) (*userDomain.User, error)
	SetBanFunc          func(ctx context.Context, uuid userDomain.UUID, banned bool, actor string) (*userDomain.User, error)
	SoftDeleteFunc      func(ctx context.Context, uuid userDomain.UUID) (*userDomain.User, error)
	RestoreFunc         func(ctx context.Context, uuid userDomain.UUID) (*userDomain.User, error)
	PermanentDeleteFunc func(ctx context.Context, uuid userDomain.UUID) (*userDomain.DeletedUser, error)
	FetchExpiredFunc    func(ctx context.Context, cutoff time.Time) (userDomain.Users, error)
}

func (f *FakeUserRepo) FetchUsers(ctx context.Context) (userDomain.Users, error) {
	if f.FetchUsersFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchUsersFunc(ctx)
}
func (f *FakeUserRepo) FetchUserByUUID(ctx context.Context, uuid userDomain.UUID) (*userDomain.User, error) {
	if f.FetchByUUIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchByUUIDFunc(ctx, uuid)
}
func (f *FakeUserRepo) FetchUserByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	if f.FetchByEmailFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchByEmailFunc(ctx, email)
}
func (f *FakeUserRepo) CreateUser(ctx context.Context, req userDomain.User) (*userDomain.User, error) {
	if f.CreateFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateFunc(ctx, req)
}
func (f *FakeUserRepo) UpdateUser(ctx context.Context, req userDomain.User) (*userDomain.User, error) {
	if f.UpdateFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdateFunc(ctx, req)
}
func (f *FakeUserRepo) SetBan(ctx context.Context, uuid userDomain.UUID, banned bool, actor string) (*userDomain.User, error) {
	if f.SetBanFunc == nil {
		return nil, errors.New("not used")
	}
	return f.SetBanFunc(ctx, uuid, banned, actor)
}
func (f *FakeUserRepo) SoftDelete(ctx context.Context, uuid userDomain.UUID) (*userDomain.User, error) {
	if f.SoftDeleteFunc == nil {
		return nil, errors.New("not used")
	}
	return f.SoftDeleteFunc(ctx, uuid)
}
func (f *FakeUserRepo) Restore(ctx context.Context, uuid userDomain.UUID) (*userDomain.User, error) {
	if f.RestoreFunc == nil {
		return nil, errors.New("not used")
	}
	return f.RestoreFunc(ctx, uuid)
}
func (f *FakeUserRepo) PermanentDelete(ctx context.Context, uuid userDomain.UUID) (*userDomain.DeletedUser, error) {
	if f.PermanentDeleteFunc == nil {
		return nil, errors.New("not used")
	}
	return f.PermanentDeleteFunc(ctx, uuid)
}
func (f *FakeUserRepo) FetchExpired(ctx context.Context, cutoff time.Time) (userDomain.Users, error) {
	if f.FetchExpiredFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchExpiredFunc(ctx, cutoff)
}

type FakeAdminRepo struct {
	FetchAdminsFunc     func(ctx context.Context) (adminDomain.Admins, error)
	FetchByUUIDFunc     func(ctx context.Context, uuid adminDomain.UUID) (*adminDomain.Admin, error)
	FetchByEmailFunc    func(ctx context.Context, email string) (*adminDomain.Admin, error)
	CreateFunc          func(ctx context.Context, req adminDomain.Admin) (*adminDomain.Admin, error)
	UpdateFunc          func(ctx context.Context, req adminDomain.Admin) (*adminDomain.Admin, error)
	SetBanFunc          func(ctx context.Context, uuid adminDomain.UUID, banned bool, actor string) (*adminDomain.Admin, error)
	SoftDeleteFunc      func(ctx context.Context, uuid adminDomain.UUID) (*adminDomain.Admin, error)
	RestoreFunc         func(ctx context.Context, uuid adminDomain.UUID) (*adminDomain.Admin, error)
	PermanentDeleteFunc func(ctx context.Context, uuid adminDomain.UUID) (*adminDomain.DeletedAdmin, error)
	FetchExpiredFunc    func(ctx context.Context, cutoff time.Time) (adminDomain.Admins, error)
}

func (f *FakeAdminRepo) FetchAdmins(ctx context.Context) (adminDomain.Admins, error) {
	if f.FetchAdminsFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchAdminsFunc(ctx)
}
func (f *FakeAdminRepo) FetchAdminByUUID(ctx context.Context, uuid adminDomain.UUID) (*adminDomain.Admin, error) {
	if f.FetchByUUIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchByUUIDFunc(ctx, uuid)
}
func (f *FakeAdminRepo) FetchAdminByEmail(ctx context.Context, email string) (*adminDomain.Admin, error) {
	if f.FetchByEmailFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchByEmailFunc(ctx, email)
}
func (f *FakeAdminRepo) CreateAdmin(ctx context.Context, req adminDomain.Admin) (*adminDomain.Admin, error) {
	if f.CreateFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateFunc(ctx, req)
}
func (f *FakeAdminRepo) UpdateAdmin(ctx context.Context, req adminDomain.Admin) (*adminDomain.Admin, error) {
	if f.UpdateFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdateFunc(ctx, req)
}
func (f *FakeAdminRepo) SetBan(ctx context.Context, uuid adminDomain.UUID, banned bool, actor string) (*adminDomain.Admin, error) {
	if f.SetBanFunc == nil {
		return nil, errors.New("not used")
	}
	return f.SetBanFunc(ctx, uuid, banned, actor)
}
func (f *FakeAdminRepo) SoftDelete(ctx context.Context, uuid adminDomain.UUID) (*adminDomain.Admin, error) {
	if f.SoftDeleteFunc == nil {
		return nil, errors.New("not used")
	}
	return f.SoftDeleteFunc(ctx, uuid)
}
func (f *FakeAdminRepo) Restore(ctx context.Context, uuid adminDomain.UUID) (*adminDomain.Admin, error) {
	if f.RestoreFunc == nil {
		return nil, errors.New("not used")
	}
	return f.RestoreFunc(ctx, uuid)
}
func (f *FakeAdminRepo) PermanentDelete(ctx context.Context, uuid adminDomain.UUID) (*adminDomain.DeletedAdmin, error) {
	if f.PermanentDeleteFunc == nil {
		return nil, errors.New("not used")
	}
	return f.PermanentDeleteFunc(ctx, uuid)
}
func (f *FakeAdminRepo) FetchExpired(ctx context.Context, cutoff time.Time) (adminDomain.Admins, error) {
	if f.FetchExpiredFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchExpiredFunc(ctx, cutoff)
}

type FakeSuperAdminRepo struct {
	FetchAllFunc     func(ctx context.Context) (superadmin.SuperAdmins, error)
	FetchByEmailFunc func(ctx context.Context, email string) (*superadmin.SuperAdmin, error)
	CreateFunc       func(ctx context.Context, req superadmin.SuperAdmin) (*superadmin.SuperAdmin, error)
}

func (f *FakeSuperAdminRepo) FetchSuperAdmins(ctx context.Context) (superadmin.SuperAdmins, error) {
	if f.FetchAllFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchAllFunc(ctx)
}
func (f *FakeSuperAdminRepo) FetchSuperAdminByEmail(ctx context.Context, email string) (*superadmin.SuperAdmin, error) {
	if f.FetchByEmailFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchByEmailFunc(ctx, email)
}
func (f *FakeSuperAdminRepo) CreateSuperAdmin(ctx context.Context, req superadmin.SuperAdmin) (*superadmin.SuperAdmin, error) {
	if f.CreateFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateFunc(ctx, req)
}

// newTestCounter builds a counter outside the default registry so parallel
// test cases never collide on registration.
func newTestCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "test_counters"},
		[]string{"result"})
}
