package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"dinebook/models"
	"dinebook/utils"
)

type TableController struct {
	DB *gorm.DB
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{DB: db}
}

// GetAllTables -> list meja, bisa difilter restaurantId dan isAvailable
func (tc *TableController) GetAllTables(c *gin.Context) {
	query := tc.DB.Model(&models.Table{}).Preload("Restaurant")

	if restaurantID := c.Query("restaurantId"); restaurantID != "" {
		query = query.Where("restaurant_id = ?", restaurantID)
	}
	if isAvailable := c.Query("isAvailable"); isAvailable != "" {
		query = query.Where("is_available = ?", isAvailable == "true")
	}

	var tables []models.Table
	if err := query.Order("table_number ASC").Find(&tables).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Tables retrieved successfully", tables)
}

// GetTableByID -> detail satu meja
func (tc *TableController) GetTableByID(c *gin.Context) {
	var table models.Table
	if err := tc.DB.Preload("Restaurant").First(&table, c.Param("table_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, utils.ErrTableNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table retrieved successfully", table)
}

// CreateTable -> admin menambahkan meja, nomor meja unik per restoran
func (tc *TableController) CreateTable(c *gin.Context) {
	var req struct {
		RestaurantID uint   `json:"restaurant_id" binding:"required"`
		TableNumber  string `json:"table_number" binding:"required"`
		Capacity     int    `json:"capacity" binding:"required,min=1"`
		MinCapacity  *int   `json:"min_capacity" binding:"omitempty,min=1"`
		HasWindow    bool   `json:"has_window"`
		HasOutdoor   bool   `json:"has_outdoor"`
		IsPrivate    bool   `json:"is_private"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.Validation(err))
		return
	}

	if req.MinCapacity != nil && *req.MinCapacity > req.Capacity {
		utils.RespondError(c, http.StatusBadRequest,
			utils.Validation(errors.New("min_capacity cannot exceed capacity")))
		return
	}

	var restaurant models.Restaurant
	if err := tc.DB.First(&restaurant, req.RestaurantID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, utils.ErrRestaurantNotFound)
		return
	}

	var existing models.Table
	err := tc.DB.Where("restaurant_id = ? AND table_number = ?", req.RestaurantID, req.TableNumber).
		First(&existing).Error
	if err == nil {
		utils.RespondError(c, http.StatusConflict, utils.ErrDuplicateTable)
		return
	}

	table := models.Table{
		RestaurantID: req.RestaurantID,
		TableNumber:  req.TableNumber,
		Capacity:     req.Capacity,
		MinCapacity:  req.MinCapacity,
		IsAvailable:  true,
		HasWindow:    req.HasWindow,
		HasOutdoor:   req.HasOutdoor,
		IsPrivate:    req.IsPrivate,
	}
	if err := tc.DB.Create(&table).Error; err != nil {
		utils.ErrorLogger.Printf("Create table error: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New table created: %s (restaurant=%d)", table.TableNumber, table.RestaurantID)
	utils.RespondJSON(c, http.StatusCreated, "Table created successfully", table)
}

// UpdateTable -> admin mengubah meja, tetap jaga keunikan nomor
func (tc *TableController) UpdateTable(c *gin.Context) {
	var table models.Table
	if err := tc.DB.First(&table, c.Param("table_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, utils.ErrTableNotFound)
		return
	}

	var req struct {
		TableNumber *string `json:"table_number"`
		Capacity    *int    `json:"capacity" binding:"omitempty,min=1"`
		MinCapacity *int    `json:"min_capacity" binding:"omitempty,min=1"`
		IsAvailable *bool   `json:"is_available"`
		HasWindow   *bool   `json:"has_window"`
		HasOutdoor  *bool   `json:"has_outdoor"`
		IsPrivate   *bool   `json:"is_private"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.Validation(err))
		return
	}

	if req.TableNumber != nil && *req.TableNumber != table.TableNumber {
		var duplicate models.Table
		err := tc.DB.Where("restaurant_id = ? AND table_number = ? AND id <> ?",
			table.RestaurantID, *req.TableNumber, table.ID).
			First(&duplicate).Error
		if err == nil {
			utils.RespondError(c, http.StatusConflict, utils.ErrDuplicateTable)
			return
		}
		table.TableNumber = *req.TableNumber
	}

	if req.Capacity != nil {
		table.Capacity = *req.Capacity
	}
	if req.MinCapacity != nil {
		table.MinCapacity = req.MinCapacity
	}
	if req.IsAvailable != nil {
		table.IsAvailable = *req.IsAvailable
	}
	if req.HasWindow != nil {
		table.HasWindow = *req.HasWindow
	}
	if req.HasOutdoor != nil {
		table.HasOutdoor = *req.HasOutdoor
	}
	if req.IsPrivate != nil {
		table.IsPrivate = *req.IsPrivate
	}

	if table.MinCapacity != nil && *table.MinCapacity > table.Capacity {
		utils.RespondError(c, http.StatusBadRequest,
			utils.Validation(errors.New("min_capacity cannot exceed capacity")))
		return
	}

	if err := tc.DB.Save(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Table updated successfully", table)
}

// DeleteTable -> tolak selama masih ada reservasi aktif di meja ini
func (tc *TableController) DeleteTable(c *gin.Context) {
	var table models.Table
	if err := tc.DB.First(&table, c.Param("table_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, utils.ErrTableNotFound)
		return
	}

	var activeCount int64
	if err := tc.DB.Model(&models.Reservation{}).
		Where("table_id = ? AND status IN ?", table.ID, models.ActiveStatuses).
		Count(&activeCount).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if activeCount > 0 {
		utils.RespondError(c, http.StatusBadRequest, utils.ErrHasReservations)
		return
	}

	if err := tc.DB.Delete(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Table %d deleted", table.ID)
	utils.RespondJSON(c, http.StatusOK, "Table deleted successfully", gin.H{"id": table.ID})
}
