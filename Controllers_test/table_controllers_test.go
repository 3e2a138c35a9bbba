package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"dinebook/controllers"
	"dinebook/middlewares"
	"dinebook/models"
)

func setupTableRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	tableCtrl := controllers.NewTableController(db)

	r.GET("/tables", tableCtrl.GetAllTables)
	r.GET("/tables/:table_id", tableCtrl.GetTableByID)

	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.RequireAdmin())
	{
		admin.POST("/tables", tableCtrl.CreateTable)
		admin.DELETE("/tables/:table_id", tableCtrl.DeleteTable)
	}
	return r
}

func seedTableScenario(t *testing.T, db *gorm.DB) models.Restaurant {
	restaurant := models.Restaurant{
		Name:        "Bakmi Karet",
		Address:     "Jl. Karet 5",
		OpeningTime: "09:00",
		ClosingTime: "21:00",
		MaxCapacity: 40,
		PriceRange:  models.PriceRangeMedium,
		IsActive:    true,
	}
	assert.NoError(t, db.Create(&restaurant).Error)
	return restaurant
}

func TestCreateTableDuplicateNumber(t *testing.T) {
	db := setupTestDB(t)
	restaurant := seedTableScenario(t, db)
	admin := seedUser(t, db, 301, "tableadmin301@example.com", models.RoleAdmin)
	bearer := authHeader(t, admin)

	r := setupTableRouter(db)

	w := doJSON(t, r, http.MethodPost, "/admin/tables", bearer, gin.H{
		"restaurant_id": restaurant.ID,
		"table_number":  "T1",
		"capacity":      4,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Nomor sama di restoran yang sama -> 409
	w = doJSON(t, r, http.MethodPost, "/admin/tables", bearer, gin.H{
		"restaurant_id": restaurant.ID,
		"table_number":  "T1",
		"capacity":      2,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	response := decodeResponse(t, w)
	assert.Equal(t, "DUPLICATE_TABLE", response["error"])

	// Nomor sama di restoran lain tidak apa-apa
	other := seedTableScenario(t, db)
	w = doJSON(t, r, http.MethodPost, "/admin/tables", bearer, gin.H{
		"restaurant_id": other.ID,
		"table_number":  "T1",
		"capacity":      4,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateTableMinCapacityCheck(t *testing.T) {
	db := setupTestDB(t)
	restaurant := seedTableScenario(t, db)
	admin := seedUser(t, db, 302, "tableadmin302@example.com", models.RoleAdmin)

	r := setupTableRouter(db)

	w := doJSON(t, r, http.MethodPost, "/admin/tables", authHeader(t, admin), gin.H{
		"restaurant_id": restaurant.ID,
		"table_number":  "T2",
		"capacity":      4,
		"min_capacity":  6,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeResponse(t, w)
	assert.Equal(t, "VALIDATION_ERROR", response["error"])
}

func TestCreateTableRequiresAdmin(t *testing.T) {
	db := setupTestDB(t)
	restaurant := seedTableScenario(t, db)
	user := seedUser(t, db, 303, "tableuser303@example.com", models.RoleUser)

	r := setupTableRouter(db)

	w := doJSON(t, r, http.MethodPost, "/admin/tables", authHeader(t, user), gin.H{
		"restaurant_id": restaurant.ID,
		"table_number":  "T3",
		"capacity":      4,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteTableBlockedByActiveReservations(t *testing.T) {
	db := setupTestDB(t)
	restaurant := seedTableScenario(t, db)
	admin := seedUser(t, db, 304, "tableadmin304@example.com", models.RoleAdmin)
	guest := seedUser(t, db, 305, "tableguest305@example.com", models.RoleUser)
	bearer := authHeader(t, admin)

	table := models.Table{RestaurantID: restaurant.ID, TableNumber: "D1", Capacity: 4, IsAvailable: true}
	assert.NoError(t, db.Create(&table).Error)

	reservation := models.Reservation{
		UserID: guest.ID, RestaurantID: restaurant.ID, TableID: table.ID,
		ReservationDate: "2024-06-01", ReservationTime: "19:00",
		PartySize: 2, Status: models.ReservationConfirmed,
	}
	assert.NoError(t, db.Create(&reservation).Error)

	r := setupTableRouter(db)

	// Masih ada reservasi aktif -> tidak boleh hapus
	w := doJSON(t, r, http.MethodDelete, "/admin/tables/1", bearer, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeResponse(t, w)
	assert.Equal(t, "HAS_RESERVATIONS", response["error"])

	// Setelah reservasi selesai, hapus diperbolehkan
	reservation.Status = models.ReservationCompleted
	assert.NoError(t, db.Save(&reservation).Error)

	w = doJSON(t, r, http.MethodDelete, "/admin/tables/1", bearer, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.Table{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestGetAllTablesFilters(t *testing.T) {
	db := setupTestDB(t)
	restaurantA := seedTableScenario(t, db)
	restaurantB := seedTableScenario(t, db)

	assert.NoError(t, db.Create(&models.Table{
		RestaurantID: restaurantA.ID, TableNumber: "A1", Capacity: 2, IsAvailable: true,
	}).Error)
	assert.NoError(t, db.Create(&models.Table{
		RestaurantID: restaurantA.ID, TableNumber: "A2", Capacity: 4, IsAvailable: false,
	}).Error)
	assert.NoError(t, db.Create(&models.Table{
		RestaurantID: restaurantB.ID, TableNumber: "B1", Capacity: 6, IsAvailable: true,
	}).Error)

	r := setupTableRouter(db)

	w := doJSON(t, r, http.MethodGet, "/tables?restaurantId=1", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	assert.Len(t, response["data"].([]interface{}), 2)

	w = doJSON(t, r, http.MethodGet, "/tables?restaurantId=1&isAvailable=true", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	response = decodeResponse(t, w)
	data := response["data"].([]interface{})
	assert.Len(t, data, 1)
	assert.Equal(t, "A1", data[0].(map[string]interface{})["table_number"])
}
