package user

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "marketplace-admin-api/internal/domain/user"
)

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, *Repository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, &Repository{db: mock}
}

func userRow(id uuid.UUID) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows([]string{
		"id", "uuid", "full_name", "email", "password_hash", "role",
		"tin_number", "national_id", "bank_name", "bank_account",
		"is_email_verified", "is_seller", "approved_by", "is_banned",
		"banned_by", "is_deleted", "trash_date", "created_at", "updated_at",
	}).AddRow(
		uint64(1), id, "Jane Moreno", "jane@market.test", (*string)(nil), "customer",
		"", "", "", "",
		false, false, (*string)(nil), false,
		(*string)(nil), false, (*time.Time)(nil), now, now,
	)
}

func TestFetchUserByUUID_NoRowsMeansNilNil(t *testing.T) {
	mock, repo := newMockRepo(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(id.String()).
		WillReturnError(pgx.ErrNoRows)

	u, err := repo.FetchUserByUUID(context.Background(), id)
	require.NoError(t, err, "missing rows are not an error")
	assert.Nil(t, u)
}

func TestFetchUserByUUID_Found(t *testing.T) {
	mock, repo := newMockRepo(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WithArgs(id.String()).
		WillReturnRows(userRow(id))

	u, err := repo.FetchUserByUUID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, id, u.UUID)
	assert.Equal(t, "jane@market.test", u.Email)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolationMapsToSentinel(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
		).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	u, err := repo.CreateUser(context.Background(), domain.User{
		FullName: "Jane Moreno",
		Email:    "jane@market.test",
		Role:     "customer",
	})
	require.ErrorIs(t, err, ErrEmailAlreadyExists)
	assert.Nil(t, u)
}

func TestPermanentDelete_ArchivesThenDeletesInOneTx(t *testing.T) {
	mock, repo := newMockRepo(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO deleted_users")).
		WithArgs(id.String()).
		WillReturnRows(pgxmock.NewRows([]string{"id", "uuid", "full_name", "email", "role", "deleted_at"}).
			AddRow(uint64(7), id, "Jane Moreno", "jane@market.test", "customer", time.Now()))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users")).
		WithArgs(id.String()).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	d, err := repo.PermanentDelete(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, id, d.UUID)
	assert.Equal(t, "jane@market.test", d.Email)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPermanentDelete_ActiveRecordIsUntouchable(t *testing.T) {
	mock, repo := newMockRepo(t)
	id := uuid.New()

	// the archive insert filters on is_deleted = TRUE, so a live row
	// matches nothing and the transaction rolls back without a DELETE
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("is_deleted = TRUE")).
		WithArgs(id.String()).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	d, err := repo.PermanentDelete(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, d, "callers treat nil as not-found")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPermanentDelete_ArchiveFailureRollsBack(t *testing.T) {
	mock, repo := newMockRepo(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO deleted_users")).
		WithArgs(id.String()).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	d, err := repo.PermanentDelete(context.Background(), id)
	require.Error(t, err)
	assert.Nil(t, d)

	// the DELETE was never issued, so the live row survives
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPermanentDelete_DeleteFailureRollsBack(t *testing.T) {
	mock, repo := newMockRepo(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO deleted_users")).
		WithArgs(id.String()).
		WillReturnRows(pgxmock.NewRows([]string{"id", "uuid", "full_name", "email", "role", "deleted_at"}).
			AddRow(uint64(7), id, "Jane Moreno", "jane@market.test", "customer", time.Now()))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users")).
		WithArgs(id.String()).
		WillReturnError(errors.New("lock timeout"))
	mock.ExpectRollback()

	d, err := repo.PermanentDelete(context.Background(), id)
	require.Error(t, err)
	assert.Nil(t, d)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSoftDeleteAndRestore_UseGuardedUpdates(t *testing.T) {
	mock, repo := newMockRepo(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("is_deleted = FALSE")).
		WithArgs(id.String()).
		WillReturnRows(userRow(id))

	u, err := repo.SoftDelete(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, u)

	mock.ExpectQuery(regexp.QuoteMeta("is_deleted = TRUE")).
		WithArgs(id.String()).
		WillReturnRows(userRow(id))

	u, err = repo.Restore(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, u)

	assert.NoError(t, mock.ExpectationsWereMet())
}
