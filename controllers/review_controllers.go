package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"dinebook/models"
	"dinebook/utils"
)

type ReviewController struct {
	DB *gorm.DB
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{DB: db}
}

// GetAllReviews -> hanya review yang approved, bisa difilter
func (rc *ReviewController) GetAllReviews(c *gin.Context) {
	page := utils.ParsePagination(c)

	query := rc.DB.Model(&models.Review{}).Where("is_approved = ?", true)
	if restaurantID := c.Query("restaurantId"); restaurantID != "" {
		query = query.Where("restaurant_id = ?", restaurantID)
	}
	if rating := c.Query("rating"); rating != "" {
		query = query.Where("rating = ?", rating)
	}

	sortBy := c.DefaultQuery("sortBy", "created_at")
	if sortBy != "created_at" && sortBy != "rating" {
		sortBy = "created_at"
	}
	sortOrder := c.DefaultQuery("sortOrder", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var reviews []models.Review
	if err := query.
		Preload("User").Preload("Restaurant").
		Order(sortBy + " " + sortOrder).
		Offset(page.Offset).Limit(page.Limit).
		Find(&reviews).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondPaginated(c, http.StatusOK, "Reviews retrieved successfully", reviews, page.BuildMeta(total))
}

// GetReviewByID -> detail review yang approved
func (rc *ReviewController) GetReviewByID(c *gin.Context) {
	var review models.Review
	if err := rc.DB.Preload("User").Preload("Restaurant").
		First(&review, c.Param("review_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, utils.ErrReviewNotFound)
		return
	}

	if !review.IsApproved {
		utils.RespondError(c, http.StatusForbidden, utils.ErrAccessDenied)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Review retrieved successfully", review)
}

// CreateReview -> syarat: pernah punya reservasi COMPLETED di restoran itu,
// dan satu user hanya boleh satu review per restoran
func (rc *ReviewController) CreateReview(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req struct {
		RestaurantID uint   `json:"restaurant_id" binding:"required"`
		Rating       int    `json:"rating" binding:"required,min=1,max=5"`
		Title        string `json:"title"`
		Content      string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.Validation(err))
		return
	}

	var restaurant models.Restaurant
	if err := rc.DB.Where("id = ? AND is_active = ?", req.RestaurantID, true).
		First(&restaurant).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, utils.ErrRestaurantNotFound)
		return
	}

	var existing models.Review
	err := rc.DB.Where("user_id = ? AND restaurant_id = ?", userID, req.RestaurantID).
		First(&existing).Error
	if err == nil {
		utils.RespondError(c, http.StatusConflict, utils.ErrAlreadyReviewed)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var completedCount int64
	if err := rc.DB.Model(&models.Reservation{}).
		Where("user_id = ? AND restaurant_id = ? AND status = ?",
			userID, req.RestaurantID, models.ReservationCompleted).
		Count(&completedCount).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if completedCount == 0 {
		utils.RespondError(c, http.StatusBadRequest, utils.ErrNoCompletedRes)
		return
	}

	review := models.Review{
		UserID:       userID,
		RestaurantID: req.RestaurantID,
		Rating:       req.Rating,
		Title:        req.Title,
		Content:      req.Content,
		IsVerified:   true, // sudah terbukti pernah makan di sini
		IsApproved:   true,
	}
	if err := rc.DB.Create(&review).Error; err != nil {
		utils.ErrorLogger.Printf("Create review error: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Review %d created: user=%d restaurant=%d rating=%d",
		review.ID, userID, review.RestaurantID, review.Rating)
	utils.RespondJSON(c, http.StatusCreated, "Review created successfully", review)
}

// UpdateReview -> owner atau admin
func (rc *ReviewController) UpdateReview(c *gin.Context) {
	var review models.Review
	if err := rc.DB.First(&review, c.Param("review_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, utils.ErrReviewNotFound)
		return
	}

	if !utils.CanAccess(c.GetUint("user_id"), c.GetString("role"), review.UserID) {
		utils.RespondError(c, http.StatusForbidden, utils.ErrAccessDenied)
		return
	}

	var req struct {
		Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
		Title   *string `json:"title"`
		Content *string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.Validation(err))
		return
	}

	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Title != nil {
		review.Title = *req.Title
	}
	if req.Content != nil {
		review.Content = *req.Content
	}

	if err := rc.DB.Save(&review).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Review updated successfully", review)
}

// DeleteReview -> owner atau admin
func (rc *ReviewController) DeleteReview(c *gin.Context) {
	var review models.Review
	if err := rc.DB.First(&review, c.Param("review_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, utils.ErrReviewNotFound)
		return
	}

	if !utils.CanAccess(c.GetUint("user_id"), c.GetString("role"), review.UserID) {
		utils.RespondError(c, http.StatusForbidden, utils.ErrAccessDenied)
		return
	}

	if err := rc.DB.Delete(&review).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Review %d deleted", review.ID)
	utils.RespondJSON(c, http.StatusOK, "Review deleted successfully", gin.H{"id": review.ID})
}
