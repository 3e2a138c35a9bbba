package controllers

import (
	"net/http"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"dinebook/models"
	"dinebook/services"
	"dinebook/utils"
)

type ReservationController struct {
	DB      *gorm.DB
	Service *services.AvailabilityService
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{
		DB:      db,
		Service: services.NewAvailabilityService(db),
	}
}

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

// CreateReservation -> user memesan meja untuk tanggal/jam tertentu
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req struct {
		RestaurantID    uint   `json:"restaurant_id" binding:"required"`
		TableID         uint   `json:"table_id" binding:"required"`
		ReservationDate string `json:"reservation_date" binding:"required"`
		ReservationTime string `json:"reservation_time" binding:"required"`
		PartySize       int    `json:"party_size" binding:"required,min=1"`
		SpecialRequests string `json:"special_requests"`
		Notes           string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.Validation(err))
		return
	}

	if !datePattern.MatchString(req.ReservationDate) {
		utils.RespondError(c, http.StatusBadRequest,
			utils.NewApiError(utils.CodeValidation, "invalid date format (YYYY-MM-DD)"))
		return
	}
	if !timePattern.MatchString(req.ReservationTime) {
		utils.RespondError(c, http.StatusBadRequest,
			utils.NewApiError(utils.CodeValidation, "invalid time format (HH:MM)"))
		return
	}

	reservation, err := rc.Service.CreateReservation(services.CreateReservationInput{
		UserID:          userID,
		RestaurantID:    req.RestaurantID,
		TableID:         req.TableID,
		ReservationDate: req.ReservationDate,
		ReservationTime: req.ReservationTime,
		PartySize:       req.PartySize,
		SpecialRequests: req.SpecialRequests,
		Notes:           req.Notes,
	})
	if err != nil {
		respondReservationError(c, err)
		return
	}

	utils.InfoLogger.Printf("Reservation %d created: user=%d table=%d %s %s",
		reservation.ID, userID, reservation.TableID, reservation.ReservationDate, reservation.ReservationTime)
	utils.RespondJSON(c, http.StatusCreated, "Reservation created successfully", reservation)
}

// GetAllReservations -> admin melihat semua reservasi dengan filter
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	page := utils.ParsePagination(c)

	query := rc.DB.Model(&models.Reservation{})
	applyReservationFilters(c, query)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var reservations []models.Reservation
	if err := query.
		Preload("User").Preload("Restaurant").Preload("Table").
		Order(reservationSort(c)).
		Offset(page.Offset).Limit(page.Limit).
		Find(&reservations).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondPaginated(c, http.StatusOK, "Reservations retrieved successfully", reservations, page.BuildMeta(total))
}

// GetMyReservations -> reservasi milik user yang login
func (rc *ReservationController) GetMyReservations(c *gin.Context) {
	userID := c.GetUint("user_id")
	page := utils.ParsePagination(c)

	query := rc.DB.Model(&models.Reservation{}).Where("user_id = ?", userID)
	applyReservationFilters(c, query)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var reservations []models.Reservation
	if err := query.
		Preload("Restaurant").Preload("Table").
		Order(reservationSort(c)).
		Offset(page.Offset).Limit(page.Limit).
		Find(&reservations).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondPaginated(c, http.StatusOK, "Reservations retrieved successfully", reservations, page.BuildMeta(total))
}

// GetReservationByID -> detail reservasi, owner atau admin
func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	var reservation models.Reservation
	if err := rc.DB.
		Preload("User").Preload("Restaurant").Preload("Table").
		First(&reservation, c.Param("reservation_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, utils.ErrReservationNotFound)
		return
	}

	if !utils.CanAccess(c.GetUint("user_id"), c.GetString("role"), reservation.UserID) {
		utils.RespondError(c, http.StatusForbidden, utils.ErrAccessDenied)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reservation retrieved successfully", reservation)
}

// UpdateReservation -> ubah status/permintaan khusus, owner atau admin
func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	var reservation models.Reservation
	if err := rc.DB.First(&reservation, c.Param("reservation_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, utils.ErrReservationNotFound)
		return
	}

	if !utils.CanAccess(c.GetUint("user_id"), c.GetString("role"), reservation.UserID) {
		utils.RespondError(c, http.StatusForbidden, utils.ErrAccessDenied)
		return
	}

	var req struct {
		Status          *string `json:"status" binding:"omitempty,oneof=PENDING CONFIRMED CANCELLED COMPLETED NO_SHOW"`
		SpecialRequests *string `json:"special_requests"`
		Notes           *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.Validation(err))
		return
	}

	if req.Status != nil {
		reservation.Status = *req.Status
	}
	if req.SpecialRequests != nil {
		reservation.SpecialRequests = *req.SpecialRequests
	}
	if req.Notes != nil {
		reservation.Notes = *req.Notes
	}

	if err := rc.DB.Save(&reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := rc.DB.Preload("User").Preload("Restaurant").Preload("Table").
		First(&reservation, reservation.ID).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reservation updated successfully", reservation)
}

// CancelReservation -> DELETE, transisi status ke CANCELLED
func (rc *ReservationController) CancelReservation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("reservation_id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.Validation(err))
		return
	}

	reservation, err := rc.Service.CancelReservation(uint(id), c.GetUint("user_id"), c.GetString("role"))
	if err != nil {
		respondReservationError(c, err)
		return
	}

	utils.InfoLogger.Printf("Reservation %d cancelled by user %d", reservation.ID, c.GetUint("user_id"))
	utils.RespondJSON(c, http.StatusOK, "Reservation cancelled successfully", reservation)
}

// applyReservationFilters menerapkan filter query umum untuk list reservasi
func applyReservationFilters(c *gin.Context, query *gorm.DB) {
	if status := c.Query("status"); status != "" {
		query.Where("status = ?", status)
	}
	if restaurantID := c.Query("restaurantId"); restaurantID != "" {
		query.Where("restaurant_id = ?", restaurantID)
	}
	if dateFrom := c.Query("dateFrom"); dateFrom != "" {
		query.Where("reservation_date >= ?", dateFrom)
	}
	if dateTo := c.Query("dateTo"); dateTo != "" {
		query.Where("reservation_date <= ?", dateTo)
	}
}

func reservationSort(c *gin.Context) string {
	sortBy := c.DefaultQuery("sortBy", "created_at")
	switch sortBy {
	case "created_at", "reservation_date", "reservation_time":
	default:
		sortBy = "created_at"
	}
	sortOrder := c.DefaultQuery("sortOrder", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}
	return sortBy + " " + sortOrder
}

// respondReservationError memetakan error service ke status HTTP
func respondReservationError(c *gin.Context, err error) {
	switch err {
	case utils.ErrRestaurantNotFound, utils.ErrTableNotFound, utils.ErrReservationNotFound:
		utils.RespondError(c, http.StatusNotFound, err)
	case utils.ErrPartySizeTooLarge, utils.ErrPartySizeTooSmall, utils.ErrCannotCancel:
		utils.RespondError(c, http.StatusBadRequest, err)
	case utils.ErrTableAlreadyReserved:
		utils.RespondError(c, http.StatusConflict, err)
	case utils.ErrAccessDenied:
		utils.RespondError(c, http.StatusForbidden, err)
	default:
		utils.ErrorLogger.Printf("Reservation error: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}
