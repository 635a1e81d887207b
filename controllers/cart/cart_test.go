package cartControllers

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

// cartRouter mounts the cart handlers behind a stub auth middleware.
func cartRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", "user-1") })
	r.GET("/api/cart", GetCart(db))
	r.POST("/api/cart", AddCartItem(db))
	r.DELETE("/api/cart/:productId", DeleteCartItem(db))
	r.DELETE("/api/cart", ClearCart(db))
	r.POST("/api/cart/merge", MergeCart(db))
	return r
}

func cartItemColumns() []string {
	return []string{"id", "user_id", "product_id", "title", "price", "image_url",
		"selected_size", "selected_color", "quantity", "added_at"}
}

func TestAddCartItem_NewRow(t *testing.T) {
	db, mock := newMockDB(t)
	r := cartRouter(db)

	mock.ExpectQuery(`SELECT (.+) FROM "cart_items"`).
		WillReturnRows(sqlmock.NewRows(cartItemColumns()))
	mock.ExpectQuery(`INSERT INTO "cart_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	body := []byte(`{"productId":"A","quantity":2,"title":"Breeze Tee","price":25,"selectedSize":"M","selectedColor":"white"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cart", bytes.NewReader(body))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"quantity":2`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddCartItem_ExistingRowIncrementsQuantity(t *testing.T) {
	db, mock := newMockDB(t)
	r := cartRouter(db)

	mock.ExpectQuery(`SELECT (.+) FROM "cart_items"`).
		WillReturnRows(sqlmock.NewRows(cartItemColumns()).
			AddRow(7, "user-1", "A", "Breeze Tee", 25.0, "", "M", "white", 2, time.Now()))
	mock.ExpectExec(`UPDATE "cart_items"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	body := []byte(`{"productId":"A","quantity":2,"selectedSize":"M","selectedColor":"white"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cart", bytes.NewReader(body))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"quantity":4`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddCartItem_MissingProductID(t *testing.T) {
	db, mock := newMockDB(t)
	r := cartRouter(db)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cart", bytes.NewReader([]byte(`{"quantity":1}`)))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCartItem_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	r := cartRouter(db)

	mock.ExpectExec(`DELETE FROM "cart_items"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/cart/ghost", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Merging the same guest item twice must end with a single row at the
// summed quantity, not two rows.
func TestMergeCart_RepeatedMergeIncrements(t *testing.T) {
	db, mock := newMockDB(t)
	r := cartRouter(db)

	body := []byte(`{"guestCart":[{"product_id":"A","quantity":2,"title":"Breeze Tee","price":25}]}`)

	// First merge: no existing row, insert quantity 2.
	mock.ExpectQuery(`SELECT (.+) FROM "cart_items"`).
		WillReturnRows(sqlmock.NewRows(cartItemColumns()))
	mock.ExpectQuery(`INSERT INTO "cart_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(`SELECT (.+) FROM "cart_items"`).
		WillReturnRows(sqlmock.NewRows(cartItemColumns()).
			AddRow(1, "user-1", "A", "Breeze Tee", 25.0, "", "", "", 2, time.Now()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cart/merge", bytes.NewReader(body))
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"quantity":2`)

	// Second merge: same row found, quantity incremented to 4.
	mock.ExpectQuery(`SELECT (.+) FROM "cart_items"`).
		WillReturnRows(sqlmock.NewRows(cartItemColumns()).
			AddRow(1, "user-1", "A", "Breeze Tee", 25.0, "", "", "", 2, time.Now()))
	mock.ExpectExec(`UPDATE "cart_items"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT (.+) FROM "cart_items"`).
		WillReturnRows(sqlmock.NewRows(cartItemColumns()).
			AddRow(1, "user-1", "A", "Breeze Tee", 25.0, "", "", "", 4, time.Now()))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/cart/merge", bytes.NewReader(body))
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"quantity":4`)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMergeCart_SkipsItemsWithoutProductID(t *testing.T) {
	db, mock := newMockDB(t)
	r := cartRouter(db)

	// Only the final cart read runs; the malformed item is skipped.
	mock.ExpectQuery(`SELECT (.+) FROM "cart_items"`).
		WillReturnRows(sqlmock.NewRows(cartItemColumns()))

	body := []byte(`{"guestCart":[{"quantity":3}]}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cart/merge", bytes.NewReader(body))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
