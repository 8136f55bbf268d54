package cart

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"printcase-backend/models"
	"printcase-backend/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func withUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func TestAddToCart_CustomizedLine(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1 ORDER BY "products"\."id" LIMIT \$2`).
		WithArgs("product-uuid", 1).
		WillReturnRows(mock.NewRows([]string{"id", "name", "price"}).
			AddRow("product-uuid", "Clear Phone Case", 499.0))

	// A customized line is always inserted as a new row, never merged
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "cart_items" (.+) RETURNING "id"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("cart-item-uuid"))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/api/cart/add", withUser("user-uuid"), AddToCart)

	payload := map[string]interface{}{
		"productId": "product-uuid",
		"quantity":  1,
		"customization": map[string]interface{}{
			"productType":     "phone-case",
			"phoneModel":      "Pixel 9",
			"designImageUrl":  "http://example.com/design.png",
			"hasCustomDesign": true,
		},
	}
	jsonData, _ := json.Marshal(payload)

	req, _ := http.NewRequest(http.MethodPost, "/api/cart/add", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var item models.CartItem
	json.Unmarshal(resp.Body.Bytes(), &item)
	assert.Equal(t, "product-uuid", item.ProductID)
	assert.NotNil(t, item.Customization)
	assert.True(t, item.Customization.HasCustomDesign)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddToCart_MergesPlainLine(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1 ORDER BY "products"\."id" LIMIT \$2`).
		WithArgs("product-uuid", 1).
		WillReturnRows(mock.NewRows([]string{"id", "name", "price"}).
			AddRow("product-uuid", "Clear Phone Case", 499.0))

	mock.ExpectQuery(`SELECT \* FROM "cart_items" WHERE user_id = \$1 AND product_id = \$2 AND saved_for_later = \$3 AND customization IS NULL ORDER BY "cart_items"\."id" LIMIT \$4`).
		WithArgs("user-uuid", "product-uuid", false, 1).
		WillReturnRows(mock.NewRows([]string{"id", "user_id", "product_id", "quantity", "saved_for_later"}).
			AddRow("cart-item-uuid", "user-uuid", "product-uuid", 1, false))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "cart_items" SET (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/api/cart/add", withUser("user-uuid"), AddToCart)

	jsonData := []byte(`{"productId":"product-uuid","quantity":2}`)

	req, _ := http.NewRequest(http.MethodPost, "/api/cart/add", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var item models.CartItem
	json.Unmarshal(resp.Body.Bytes(), &item)
	assert.Equal(t, 3, item.Quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddToCart_ProductNotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1 ORDER BY "products"\."id" LIMIT \$2`).
		WithArgs("product-uuid", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.POST("/api/cart/add", withUser("user-uuid"), AddToCart)

	jsonData := []byte(`{"productId":"product-uuid"}`)

	req, _ := http.NewRequest(http.MethodPost, "/api/cart/add", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestGetCart_SplitsSavedForLater(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "cart_items" WHERE user_id = \$1 ORDER BY created_at ASC`).
		WithArgs("user-uuid").
		WillReturnRows(mock.NewRows([]string{"id", "user_id", "product_id", "quantity", "saved_for_later"}).
			AddRow("cart-item-1", "user-uuid", "product-uuid-1", 1, false).
			AddRow("cart-item-2", "user-uuid", "product-uuid-2", 2, true))
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE "products"\."id" IN \(\$1,\$2\)`).
		WithArgs("product-uuid-1", "product-uuid-2").
		WillReturnRows(mock.NewRows([]string{"id", "name", "price"}).
			AddRow("product-uuid-1", "Clear Phone Case", 499.0).
			AddRow("product-uuid-2", "Classic T-Shirt", 699.0))

	r := testutils.SetupTestRouter()
	r.GET("/api/cart", withUser("user-uuid"), GetCart)

	req, _ := http.NewRequest(http.MethodGet, "/api/cart", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		CartItems     []models.CartItem `json:"cartItems"`
		SavedForLater []models.CartItem `json:"savedForLater"`
	}
	json.Unmarshal(resp.Body.Bytes(), &body)
	assert.Len(t, body.CartItems, 1)
	assert.Len(t, body.SavedForLater, 1)
	assert.Equal(t, "product-uuid-1", body.CartItems[0].ProductID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
