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

func setupReviewRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	reviewCtrl := controllers.NewReviewController(db)

	r.GET("/reviews", reviewCtrl.GetAllReviews)

	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.POST("/reviews", reviewCtrl.CreateReview)
		auth.DELETE("/reviews/:review_id", reviewCtrl.DeleteReview)
	}
	return r
}

func seedReviewScenario(t *testing.T, db *gorm.DB) models.Restaurant {
	restaurant := models.Restaurant{
		Name:        "Soto Ibu Ani",
		Address:     "Jl. Melati 3",
		OpeningTime: "10:00",
		ClosingTime: "21:00",
		MaxCapacity: 25,
		PriceRange:  models.PriceRangeLow,
		IsActive:    true,
	}
	assert.NoError(t, db.Create(&restaurant).Error)
	return restaurant
}

func TestCreateReviewRequiresCompletedReservation(t *testing.T) {
	db := setupTestDB(t)
	restaurant := seedReviewScenario(t, db)
	user := seedUser(t, db, 201, "reviewer201@example.com", models.RoleUser)
	bearer := authHeader(t, user)

	r := setupReviewRouter(db)

	// Belum pernah COMPLETED -> ditolak
	w := doJSON(t, r, http.MethodPost, "/reviews", bearer, gin.H{
		"restaurant_id": restaurant.ID,
		"rating":        5,
		"title":         "Enak banget",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeResponse(t, w)
	assert.Equal(t, "NO_COMPLETED_RESERVATION", response["error"])

	// Reservasi PENDING saja belum cukup
	table := models.Table{RestaurantID: restaurant.ID, TableNumber: "R1", Capacity: 2, IsAvailable: true}
	assert.NoError(t, db.Create(&table).Error)
	assert.NoError(t, db.Create(&models.Reservation{
		UserID: user.ID, RestaurantID: restaurant.ID, TableID: table.ID,
		ReservationDate: "2024-05-01", ReservationTime: "12:00",
		PartySize: 2, Status: models.ReservationPending,
	}).Error)

	w = doJSON(t, r, http.MethodPost, "/reviews", bearer, gin.H{
		"restaurant_id": restaurant.ID,
		"rating":        5,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Setelah COMPLETED baru boleh
	assert.NoError(t, db.Create(&models.Reservation{
		UserID: user.ID, RestaurantID: restaurant.ID, TableID: table.ID,
		ReservationDate: "2024-05-02", ReservationTime: "12:00",
		PartySize: 2, Status: models.ReservationCompleted,
	}).Error)

	w = doJSON(t, r, http.MethodPost, "/reviews", bearer, gin.H{
		"restaurant_id": restaurant.ID,
		"rating":        5,
		"title":         "Enak banget",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	response = decodeResponse(t, w)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, true, data["is_verified"])

	// Review kedua untuk restoran yang sama -> 409
	w = doJSON(t, r, http.MethodPost, "/reviews", bearer, gin.H{
		"restaurant_id": restaurant.ID,
		"rating":        4,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	response = decodeResponse(t, w)
	assert.Equal(t, "ALREADY_REVIEWED", response["error"])
}

func TestCreateReviewRatingBounds(t *testing.T) {
	db := setupTestDB(t)
	restaurant := seedReviewScenario(t, db)
	user := seedUser(t, db, 202, "reviewer202@example.com", models.RoleUser)
	bearer := authHeader(t, user)

	r := setupReviewRouter(db)

	w := doJSON(t, r, http.MethodPost, "/reviews", bearer, gin.H{
		"restaurant_id": restaurant.ID,
		"rating":        6,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeResponse(t, w)
	assert.Equal(t, "VALIDATION_ERROR", response["error"])
}

func TestGetAllReviewsOnlyApproved(t *testing.T) {
	db := setupTestDB(t)
	restaurant := seedReviewScenario(t, db)
	user := seedUser(t, db, 203, "reviewer203@example.com", models.RoleUser)
	other := seedUser(t, db, 204, "reviewer204@example.com", models.RoleUser)

	assert.NoError(t, db.Create(&models.Review{
		UserID: user.ID, RestaurantID: restaurant.ID, Rating: 5, IsApproved: true,
	}).Error)
	assert.NoError(t, db.Create(&models.Review{
		UserID: other.ID, RestaurantID: restaurant.ID, Rating: 1, IsApproved: false,
	}).Error)

	r := setupReviewRouter(db)
	w := doJSON(t, r, http.MethodGet, "/reviews", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	response := decodeResponse(t, w)
	data := response["data"].([]interface{})
	assert.Len(t, data, 1)
	first := data[0].(map[string]interface{})
	assert.Equal(t, float64(5), first["rating"])
}

func TestDeleteReviewOwnership(t *testing.T) {
	db := setupTestDB(t)
	restaurant := seedReviewScenario(t, db)
	owner := seedUser(t, db, 205, "reviewer205@example.com", models.RoleUser)
	stranger := seedUser(t, db, 206, "reviewer206@example.com", models.RoleUser)

	review := models.Review{
		UserID: owner.ID, RestaurantID: restaurant.ID, Rating: 4, IsApproved: true,
	}
	assert.NoError(t, db.Create(&review).Error)

	r := setupReviewRouter(db)

	w := doJSON(t, r, http.MethodDelete, "/reviews/1", authHeader(t, stranger), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/reviews/1", authHeader(t, owner), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.Review{}).Count(&count)
	assert.Equal(t, int64(0), count)
}
