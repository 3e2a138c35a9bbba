package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openFlagsDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := db.AutoMigrate(&User{}, &Restaurant{}, &Table{}, &Reservation{}, &Review{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

// Flag bernilai false harus tersimpan apa adanya: kolom ber-default true
// akan menimpanya karena GORM tidak mengirim field bool zero-value.
func TestFalseFlagsSurviveCreate(t *testing.T) {
	db := openFlagsDB(t)

	user := User{ID: 1, Name: "Nonaktif", Email: "nonaktif@example.com", Password: "x", Role: RoleUser, IsActive: false}
	assert.NoError(t, db.Create(&user).Error)

	restaurant := Restaurant{
		Name: "Tutup Sementara", Address: "Jl. Sepi 1",
		OpeningTime: "10:00", ClosingTime: "20:00",
		MaxCapacity: 10, PriceRange: PriceRangeLow, IsActive: false,
	}
	assert.NoError(t, db.Create(&restaurant).Error)

	table := Table{RestaurantID: restaurant.ID, TableNumber: "X1", Capacity: 2, IsAvailable: false}
	assert.NoError(t, db.Create(&table).Error)

	review := Review{UserID: user.ID, RestaurantID: restaurant.ID, Rating: 3, IsApproved: false}
	assert.NoError(t, db.Create(&review).Error)

	var gotUser User
	assert.NoError(t, db.First(&gotUser, user.ID).Error)
	assert.False(t, gotUser.IsActive)

	var gotRestaurant Restaurant
	assert.NoError(t, db.First(&gotRestaurant, restaurant.ID).Error)
	assert.False(t, gotRestaurant.IsActive)

	var gotTable Table
	assert.NoError(t, db.First(&gotTable, table.ID).Error)
	assert.False(t, gotTable.IsAvailable)

	var gotReview Review
	assert.NoError(t, db.First(&gotReview, review.ID).Error)
	assert.False(t, gotReview.IsApproved)
}
