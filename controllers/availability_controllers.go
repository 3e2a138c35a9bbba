package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"dinebook/services"
	"dinebook/utils"
)

type AvailabilityController struct {
	Service *services.AvailabilityService
}

func NewAvailabilityController(db *gorm.DB) *AvailabilityController {
	return &AvailabilityController{Service: services.NewAvailabilityService(db)}
}

// CheckAvailability -> GET /availability?restaurantId=&date=&partySize=&timeFrom=&timeTo=
func (ac *AvailabilityController) CheckAvailability(c *gin.Context) {
	restaurantIDParam := c.Query("restaurantId")
	date := c.Query("date")
	if restaurantIDParam == "" || date == "" {
		utils.RespondError(c, http.StatusBadRequest, utils.ErrMissingParams)
		return
	}

	restaurantID, err := strconv.ParseUint(restaurantIDParam, 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.Validation(err))
		return
	}

	partySize := 2
	if ps := c.Query("partySize"); ps != "" {
		partySize, err = strconv.Atoi(ps)
		if err != nil || partySize < 1 {
			utils.RespondError(c, http.StatusBadRequest,
				utils.Validation(errors.New("party size must be a positive number")))
			return
		}
	}

	result, err := ac.Service.CheckAvailability(uint(restaurantID), date, partySize,
		c.Query("timeFrom"), c.Query("timeTo"))
	if err != nil {
		if err == utils.ErrRestaurantNotFound {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.ErrorLogger.Printf("Check availability error: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Availability checked successfully", result)
}
