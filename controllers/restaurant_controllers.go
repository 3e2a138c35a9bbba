package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"dinebook/models"
	"dinebook/services"
	"dinebook/utils"
)

type RestaurantController struct {
	DB *gorm.DB
}

func NewRestaurantController(db *gorm.DB) *RestaurantController {
	return &RestaurantController{DB: db}
}

// restaurantView -> restoran plus agregat rating untuk response list/detail
type restaurantView struct {
	models.Restaurant
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
	TableCount    int64   `json:"table_count"`
}

func (rc *RestaurantController) buildView(r models.Restaurant) restaurantView {
	view := restaurantView{Restaurant: r}

	var stats struct {
		Avg   float64
		Count int64
	}
	rc.DB.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("restaurant_id = ? AND is_approved = ?", r.ID, true).
		Scan(&stats)

	// Rating dibulatkan 1 desimal
	view.AverageRating = float64(int(stats.Avg*10+0.5)) / 10
	view.ReviewCount = stats.Count
	rc.DB.Model(&models.Table{}).Where("restaurant_id = ?", r.ID).Count(&view.TableCount)
	return view
}

// GetAllRestaurants -> list restoran aktif dengan filter + pagination
func (rc *RestaurantController) GetAllRestaurants(c *gin.Context) {
	page := utils.ParsePagination(c)

	query := rc.DB.Model(&models.Restaurant{}).Where("is_active = ?", true)

	if cuisine := c.Query("cuisine"); cuisine != "" {
		query = query.Where("cuisine LIKE ?", "%"+cuisine+"%")
	}
	if priceRange := c.Query("priceRange"); priceRange != "" {
		query = query.Where("price_range = ?", priceRange)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("(name LIKE ? OR description LIKE ? OR cuisine LIKE ?)", like, like, like)
	}

	sortBy := c.DefaultQuery("sortBy", "name")
	switch sortBy {
	case "name", "created_at", "price_range":
	default:
		sortBy = "name"
	}
	sortOrder := c.DefaultQuery("sortOrder", "asc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "asc"
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var restaurants []models.Restaurant
	if err := query.Order(sortBy + " " + sortOrder).
		Offset(page.Offset).Limit(page.Limit).
		Find(&restaurants).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	views := make([]restaurantView, 0, len(restaurants))
	for _, r := range restaurants {
		views = append(views, rc.buildView(r))
	}

	utils.RespondPaginated(c, http.StatusOK, "Restaurants retrieved successfully", views, page.BuildMeta(total))
}

// GetRestaurantByID -> detail restoran + meja available + review terbaru
func (rc *RestaurantController) GetRestaurantByID(c *gin.Context) {
	var restaurant models.Restaurant
	err := rc.DB.
		Preload("Tables", "is_available = ?", true).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_approved = ?", true).Order("created_at DESC").Limit(10)
		}).
		Preload("Reviews.User").
		Where("id = ? AND is_active = ?", c.Param("restaurant_id"), true).
		First(&restaurant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, utils.ErrRestaurantNotFound)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Restaurant retrieved successfully", rc.buildView(restaurant))
}

type restaurantRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Cuisine     string `json:"cuisine"`
	Address     string `json:"address" binding:"required"`
	Phone       string `json:"phone"`
	Email       string `json:"email" binding:"omitempty,email"`
	Website     string `json:"website"`
	OpeningTime string `json:"opening_time" binding:"required"`
	ClosingTime string `json:"closing_time" binding:"required"`
	MaxCapacity int    `json:"max_capacity" binding:"required,min=1"`
	PriceRange  string `json:"price_range" binding:"omitempty,oneof=LOW MEDIUM HIGH PREMIUM"`
}

// CreateRestaurant -> admin menambahkan restoran baru
func (rc *RestaurantController) CreateRestaurant(c *gin.Context) {
	var req restaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.Validation(err))
		return
	}

	if err := validateOperatingHours(req.OpeningTime, req.ClosingTime); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.Validation(err))
		return
	}

	restaurant := models.Restaurant{
		Name:        req.Name,
		Description: req.Description,
		Cuisine:     req.Cuisine,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		Website:     req.Website,
		OpeningTime: req.OpeningTime,
		ClosingTime: req.ClosingTime,
		MaxCapacity: req.MaxCapacity,
		PriceRange:  models.PriceRangeMedium,
		IsActive:    true,
	}
	if req.PriceRange != "" {
		restaurant.PriceRange = req.PriceRange
	}

	if err := rc.DB.Create(&restaurant).Error; err != nil {
		utils.ErrorLogger.Printf("Create restaurant error: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New restaurant created: %s (id=%d)", restaurant.Name, restaurant.ID)
	utils.RespondJSON(c, http.StatusCreated, "Restaurant created successfully", restaurant)
}

// UpdateRestaurant -> admin mengubah data restoran
func (rc *RestaurantController) UpdateRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := rc.DB.First(&restaurant, c.Param("restaurant_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, utils.ErrRestaurantNotFound)
		return
	}

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Cuisine     *string `json:"cuisine"`
		Address     *string `json:"address"`
		Phone       *string `json:"phone"`
		Email       *string `json:"email" binding:"omitempty,email"`
		Website     *string `json:"website"`
		OpeningTime *string `json:"opening_time"`
		ClosingTime *string `json:"closing_time"`
		MaxCapacity *int    `json:"max_capacity" binding:"omitempty,min=1"`
		PriceRange  *string `json:"price_range" binding:"omitempty,oneof=LOW MEDIUM HIGH PREMIUM"`
		IsActive    *bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.Validation(err))
		return
	}

	if req.Name != nil {
		restaurant.Name = *req.Name
	}
	if req.Description != nil {
		restaurant.Description = *req.Description
	}
	if req.Cuisine != nil {
		restaurant.Cuisine = *req.Cuisine
	}
	if req.Address != nil {
		restaurant.Address = *req.Address
	}
	if req.Phone != nil {
		restaurant.Phone = *req.Phone
	}
	if req.Email != nil {
		restaurant.Email = *req.Email
	}
	if req.Website != nil {
		restaurant.Website = *req.Website
	}
	if req.OpeningTime != nil {
		restaurant.OpeningTime = *req.OpeningTime
	}
	if req.ClosingTime != nil {
		restaurant.ClosingTime = *req.ClosingTime
	}
	if req.MaxCapacity != nil {
		restaurant.MaxCapacity = *req.MaxCapacity
	}
	if req.PriceRange != nil {
		restaurant.PriceRange = *req.PriceRange
	}
	if req.IsActive != nil {
		restaurant.IsActive = *req.IsActive
	}

	if err := validateOperatingHours(restaurant.OpeningTime, restaurant.ClosingTime); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.Validation(err))
		return
	}

	if err := rc.DB.Save(&restaurant).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Restaurant updated successfully", restaurant)
}

// DeleteRestaurant -> soft delete, set is_active=false
func (rc *RestaurantController) DeleteRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := rc.DB.First(&restaurant, c.Param("restaurant_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, utils.ErrRestaurantNotFound)
		return
	}

	restaurant.IsActive = false
	if err := rc.DB.Save(&restaurant).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Restaurant %d deactivated", restaurant.ID)
	utils.RespondJSON(c, http.StatusOK, "Restaurant deleted successfully", gin.H{"id": restaurant.ID})
}

// validateOperatingHours: format HH:MM dan buka < tutup (tidak ada jam
// operasional lintas tengah malam)
func validateOperatingHours(opening, closing string) error {
	open, err := services.ParseClock(opening)
	if err != nil {
		return err
	}
	closeAt, err := services.ParseClock(closing)
	if err != nil {
		return err
	}
	if open >= closeAt {
		return errors.New("opening time must be before closing time")
	}
	return nil
}
