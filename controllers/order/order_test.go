package orderControllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/wildbreeze/storefront-api/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func orderRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", "user-1") })
	r.POST("/api/orders", PlaceOrderHandler(db))
	r.GET("/api/orders", GetUserOrdersHandler(db))
	r.GET("/api/orders/:id", GetOrderByIDHandler(db))
	return r
}

func cartItemColumns() []string {
	return []string{"id", "user_id", "product_id", "title", "price", "image_url",
		"selected_size", "selected_color", "quantity", "added_at"}
}

func TestBuildOrder_SnapshotsCart(t *testing.T) {
	cartItems := []models.CartItem{
		{ProductID: "A", Title: "Breeze Tee", Price: 25, SelectedSize: "M", Quantity: 2},
		{ProductID: "B", Title: "Aurora Hoodie", Price: 55, SelectedColor: "navy", Quantity: 1},
	}
	req := PlaceOrderRequest{
		ShippingAddress: models.ShippingAddress{FullName: "Ada Lovelace", City: "London"},
		ContactNumber:   "+441234567890",
	}

	order := buildOrder("user-1", cartItems, req)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "user-1", order.UserID)
	assert.Equal(t, 105.0, order.TotalAmount)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, "London", order.ShippingAddress.City)

	require.Len(t, order.Items, 2)
	assert.Equal(t, "A", order.Items[0].ProductID)
	assert.Equal(t, "Breeze Tee", order.Items[0].Title)
	assert.Equal(t, "M", order.Items[0].SelectedSize)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.NotEmpty(t, order.Items[0].ID)
	assert.NotEqual(t, order.Items[0].ID, order.Items[1].ID)
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT (.+) FROM "cart_items"`).
		WillReturnRows(sqlmock.NewRows(cartItemColumns()))

	_, err := PlaceOrder(db, "user-1", PlaceOrderRequest{})
	assert.ErrorIs(t, err, ErrEmptyCart)
	// No order or item writes happen on an empty cart.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrder_CommitsOrderItemsAndCartClear(t *testing.T) {
	db, mock := newMockDB(t)

	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM "cart_items"`).
		WillReturnRows(sqlmock.NewRows(cartItemColumns()).
			AddRow(1, "user-1", "A", "Breeze Tee", 25.0, "", "M", "white", 2, now).
			AddRow(2, "user-1", "B", "Aurora Hoodie", 55.0, "", "L", "navy", 1, now))

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "orders"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "order_items"`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "cart_items"`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	order, err := PlaceOrder(db, "user-1", PlaceOrderRequest{
		ShippingAddress: models.ShippingAddress{FullName: "Ada Lovelace"},
	})
	require.NoError(t, err)
	assert.Equal(t, 105.0, order.TotalAmount)
	assert.Len(t, order.Items, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrder_RollsBackOnInsertFailure(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT (.+) FROM "cart_items"`).
		WillReturnRows(sqlmock.NewRows(cartItemColumns()).
			AddRow(1, "user-1", "A", "Breeze Tee", 25.0, "", "M", "white", 2, time.Now()))

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "orders"`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := PlaceOrder(db, "user-1", PlaceOrderRequest{})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrderHandler_EmptyCart(t *testing.T) {
	db, mock := newMockDB(t)
	r := orderRouter(db)

	mock.ExpectQuery(`SELECT (.+) FROM "cart_items"`).
		WillReturnRows(sqlmock.NewRows(cartItemColumns()))

	body := []byte(`{"shippingAddress":{"fullName":"Ada Lovelace","city":"London"}}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Cart is empty")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOrderByID_NotFoundForOtherUser(t *testing.T) {
	db, mock := newMockDB(t)
	r := orderRouter(db)

	// The lookup is scoped to the authenticated user, so someone else's
	// order id yields no rows.
	mock.ExpectQuery(`SELECT (.+) FROM "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders/someone-elses-order", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
