package controllers

import (
	"net/http"
	"strconv"

	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/models"
	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/pkg/logger"
	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/services"
	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/utils"

	"github.com/gin-gonic/gin"
)

var reservationSrv = services.NewReservationService()

// SetReservationService initializes the reservation service instance.
// Used for dependency injection in tests to provide mock implementations.
func SetReservationService(s services.ReservationService) {
	reservationSrv = s
}

// createReservation books a reservation for the resolved tenant
// @Summary Book a reservation
// @Description Creates a reservation and opens its guest folio in the property's own database.
// @Tags Reservations
// @Accept json
// @Produce json
// @Param X-Property-Code header string true "Property code"
// @Param reservation body models.Reservation true "Reservation object"
// @Success 201 {object} map[string]interface{} "Reservation booked"
// @Failure 400 {object} map[string]interface{} "Invalid request body or validation error"
// @Failure 404 {object} map[string]interface{} "Unknown property code"
// @Router /api/reservations [post]
func createReservation(c *gin.Context) {
	tc, ok := mustTenant(c)
	if !ok {
		return
	}

	var data models.Reservation
	if err := c.ShouldBindJSON(&data); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	if err := utils.ValidateStruct(&data); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	logger.Debugf("Booking reservation for tenant %s, guest %d", tc.Code, data.GuestID)
	newObj, err := reservationSrv.Book(c.Request.Context(), tc, data)
	if err != nil {
		logger.Errorf("Failed to book reservation for tenant %s: %v", tc.Code, err)
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusCreated, gin.H{
		"message":   "Reservation was booked successfully",
		"id":        newObj.ID,
		"reference": newObj.Reference,
	})
}

// getReservation returns one reservation by id
// @Summary Get a reservation
// @Tags Reservations
// @Produce json
// @Param X-Property-Code header string true "Property code"
// @Param id path int true "Reservation ID"
// @Success 200 {object} models.Reservation
// @Failure 400 {object} map[string]interface{} "Reservation not found"
// @Router /api/reservations/{id} [get]
func getReservation(c *gin.Context) {
	tc, ok := mustTenant(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	res, err := reservationSrv.Get(c.Request.Context(), tc, uint(id))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, res)
}

// listReservations lists reservations, optionally by status
// @Summary List reservations
// @Tags Reservations
// @Produce json
// @Param X-Property-Code header string true "Property code"
// @Param status query string false "Filter by status"
// @Success 200 {array} models.Reservation
// @Router /api/reservations [get]
func listReservations(c *gin.Context) {
	tc, ok := mustTenant(c)
	if !ok {
		return
	}

	list, err := reservationSrv.List(c.Request.Context(), tc, c.Query("status"))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, list)
}

// cancelReservation cancels a reservation
// @Summary Cancel a reservation
// @Tags Reservations
// @Produce json
// @Param X-Property-Code header string true "Property code"
// @Param id path int true "Reservation ID"
// @Success 200 {object} map[string]interface{} "Reservation cancelled"
// @Failure 400 {object} map[string]interface{} "Reservation not found or already checked out"
// @Router /api/reservations/{id}/cancel [post]
func cancelReservation(c *gin.Context) {
	tc, ok := mustTenant(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	if err := reservationSrv.Cancel(c.Request.Context(), tc, uint(id)); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{
		"message": "Reservation was cancelled successfully",
	})
}

// RegisterReservationRoutes registers reservation routes. The group must
// carry TenantMiddleware.
func RegisterReservationRoutes(rg *gin.RouterGroup) {
	rg.POST("/reservations", createReservation)
	rg.GET("/reservations", listReservations)
	rg.GET("/reservations/:id", getReservation)
	rg.POST("/reservations/:id/cancel", cancelReservation)
}
