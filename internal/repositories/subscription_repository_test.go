package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	return db, mock
}

// With several unexpired rows the single-row selection is decided by the
// query: latest-expiring first.
func TestFindActiveByUserIDSelectsLatestExpiring(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSubscriptionRepository(db)

	userID := uuid.New()
	productID := uuid.New()
	now := time.Now().Unix()
	latest := now + 90*24*3600

	subRows := sqlmock.NewRows([]string{"id", "user_id", "product_id", "payment_id", "expired_at"}).
		AddRow(uuid.New().String(), userID.String(), productID.String(), uuid.New().String(), latest)

	mock.ExpectQuery(`SELECT \* FROM "subscriptions" WHERE .*expired_at > .*ORDER BY expired_at DESC`).
		WillReturnRows(subRows)

	productRows := sqlmock.NewRows([]string{"id", "name", "type", "price_minor", "currency"}).
		AddRow(productID.String(), "BASIC", "MONTHLY", 1000, "KRW")

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE "products"\."id" = `).
		WillReturnRows(productRows)

	subscription, err := repo.FindActiveByUserID(context.Background(), userID.String(), now)

	require.NoError(t, err)
	require.NotNil(t, subscription)
	assert.Equal(t, latest, subscription.ExpiredAt)
	assert.Equal(t, "BASIC", subscription.Product.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindActiveByUserIDNoUnexpiredRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSubscriptionRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "subscriptions" WHERE .*ORDER BY expired_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	subscription, err := repo.FindActiveByUserID(context.Background(), uuid.NewString(), time.Now().Unix())

	require.NoError(t, err)
	assert.Nil(t, subscription, "absence is nil, not an error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByPaymentIDNoRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSubscriptionRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "subscriptions" WHERE payment_id = `).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	subscription, err := repo.FindByPaymentID(context.Background(), uuid.NewString())

	require.NoError(t, err)
	assert.Nil(t, subscription)
	assert.NoError(t, mock.ExpectationsWereMet())
}
