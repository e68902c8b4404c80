package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// "Latest" means most-recently-created; the ordering lives in this query.
func TestGetLatestByUserIDOrdersByRecency(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepository(db)

	userID := uuid.New()
	productID := uuid.New()
	paidAt := time.Now().Unix()

	paymentRows := sqlmock.NewRows([]string{"id", "user_id", "product_id", "amount_minor", "currency", "status", "pg_payment_id", "paid_at"}).
		AddRow(uuid.New().String(), userID.String(), productID.String(), 1000, "KRW", "paid", uuid.NewString(), paidAt)

	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE user_id = .*ORDER BY created_at DESC`).
		WillReturnRows(paymentRows)

	productRows := sqlmock.NewRows([]string{"id", "name", "type", "price_minor", "currency"}).
		AddRow(productID.String(), "BASIC", "MONTHLY", 1000, "KRW")

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE "products"\."id" = `).
		WillReturnRows(productRows)

	payment, err := repo.GetLatestByUserID(context.Background(), userID.String())

	require.NoError(t, err)
	require.NotNil(t, payment)
	assert.Equal(t, userID, payment.UserID)
	assert.Equal(t, "BASIC", payment.Product.Name)
	require.NotNil(t, payment.PaidAt)
	assert.Equal(t, paidAt, *payment.PaidAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLatestByUserIDNoPayments(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE user_id = .*ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	payment, err := repo.GetLatestByUserID(context.Background(), uuid.NewString())

	require.NoError(t, err)
	assert.Nil(t, payment)
	assert.NoError(t, mock.ExpectationsWereMet())
}
