package orderControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/souqapp/souq-api/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}))
	return db
}

// setupRouter wires the order handlers behind a stub that authenticates
// every request as userID.
func setupRouter(db *gorm.DB, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", userID) })
	r.POST("/api/orders", CreateOrder(db))
	r.GET("/api/orders", GetMyOrders(db))
	return r
}

func createUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	user := models.User{Username: username, PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createProduct(t *testing.T, db *gorm.DB, title, price string) models.Product {
	t.Helper()
	product := models.Product{
		Title:    title,
		Price:    decimal.RequireFromString(price),
		Location: models.LocationJordan,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func placeOrder(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateOrderSnapshotsPrice(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "layla")
	product := createProduct(t, db, "Coffee Beans", "12.50")
	r := setupRouter(db, user.ID)

	w := placeOrder(t, r, `{"product_id": 1}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Reference       string `json:"reference"`
		PriceAtPurchase string `json:"price_at_purchase"`
		Product         struct {
			Title string `json:"title"`
		} `json:"product"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Reference)
	assert.Equal(t, "Coffee Beans", resp.Product.Title)

	var order models.Order
	require.NoError(t, db.First(&order).Error)
	assert.Equal(t, user.ID, order.UserID)
	assert.Equal(t, product.ID, order.ProductID)
	assert.True(t, order.PriceAtPurchase.Equal(product.Price))
}

func TestCreateOrderRequiresProductID(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "layla")
	r := setupRouter(db, user.ID)

	for _, body := range []string{`{}`, `{"product_id": 0}`, `not json`} {
		w := placeOrder(t, r, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
		assert.Contains(t, w.Body.String(), "product_id is required")
	}

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestCreateOrderProductNotFound(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "layla")
	r := setupRouter(db, user.ID)

	w := placeOrder(t, r, `{"product_id": 42}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Product not found")

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestRepeatOrdersAreIndependent(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "layla")
	product := createProduct(t, db, "Dates", "30.00")
	r := setupRouter(db, user.ID)

	w := placeOrder(t, r, `{"product_id": 1}`)
	require.Equal(t, http.StatusCreated, w.Code)

	// Price change between the two purchases.
	require.NoError(t, db.Model(&product).
		Update("price", decimal.RequireFromString("45.00")).Error)

	w = placeOrder(t, r, `{"product_id": 1}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var orders []models.Order
	require.NoError(t, db.Order("id").Find(&orders).Error)
	require.Len(t, orders, 2)
	assert.NotEqual(t, orders[0].Reference, orders[1].Reference)
	assert.True(t, orders[0].PriceAtPurchase.Equal(decimal.RequireFromString("30.00")))
	assert.True(t, orders[1].PriceAtPurchase.Equal(decimal.RequireFromString("45.00")))
}

func TestGetMyOrdersOnlyOwn(t *testing.T) {
	db := setupTestDB(t)
	layla := createUser(t, db, "layla")
	omar := createUser(t, db, "omar")
	product := createProduct(t, db, "Honey", "45.99")

	for _, userID := range []uint{layla.ID, omar.ID, layla.ID} {
		order := models.Order{
			UserID:          userID,
			ProductID:       product.ID,
			PriceAtPurchase: product.Price,
			Reference:       uuid.New(),
		}
		require.NoError(t, db.Create(&order).Error)
	}

	r := setupRouter(db, layla.ID)
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp []struct {
		ID     uint `json:"id"`
		UserID uint `json:"user_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	// Most recent first.
	assert.Greater(t, resp[0].ID, resp[1].ID)
	for _, o := range resp {
		assert.Equal(t, layla.ID, o.UserID)
	}
}
