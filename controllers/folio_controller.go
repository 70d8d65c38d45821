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

var folioSrv = services.NewFolioService()

// SetFolioService initializes the folio service instance.
// Used for dependency injection in tests to provide mock implementations.
func SetFolioService(s services.FolioService) {
	folioSrv = s
}

// getFolio returns a reservation's folio with its lines
// @Summary Get a reservation's folio
// @Tags Folios
// @Produce json
// @Param X-Property-Code header string true "Property code"
// @Param reservationId path int true "Reservation ID"
// @Success 200 {object} map[string]interface{} "Folio with lines"
// @Failure 400 {object} map[string]interface{} "Folio not found"
// @Router /api/folios/reservation/{reservationId} [get]
func getFolio(c *gin.Context) {
	tc, ok := mustTenant(c)
	if !ok {
		return
	}

	reservationID, err := strconv.ParseUint(c.Param("reservationId"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	folio, lines, err := folioSrv.GetWithLines(c.Request.Context(), tc, uint(reservationID))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{
		"folio": folio,
		"lines": lines,
	})
}

// postFolioLine posts a charge or credit to a reservation's folio
// @Summary Post a folio line
// @Description Posts a charge or credit and updates the folio's running balance.
// @Tags Folios
// @Accept json
// @Produce json
// @Param X-Property-Code header string true "Property code"
// @Param reservationId path int true "Reservation ID"
// @Param line body models.FolioLine true "Folio line"
// @Success 201 {object} map[string]interface{} "Line posted"
// @Failure 400 {object} map[string]interface{} "Invalid line or folio not open"
// @Router /api/folios/reservation/{reservationId}/lines [post]
func postFolioLine(c *gin.Context) {
	tc, ok := mustTenant(c)
	if !ok {
		return
	}

	reservationID, err := strconv.ParseUint(c.Param("reservationId"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	var line models.FolioLine
	if err := c.ShouldBindJSON(&line); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	line.FolioID = 0 // assigned by the service from the reservation's folio
	if line.Description == "" || line.Amount == 0 {
		utils.JSONResponse(c, http.StatusBadRequest, gin.H{
			"error": "description and a non-zero amount are required",
		})
		return
	}

	folio, err := folioSrv.PostLine(c.Request.Context(), tc, uint(reservationID), line)
	if err != nil {
		logger.Errorf("Failed to post folio line for tenant %s: %v", tc.Code, err)
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusCreated, gin.H{
		"message": "Line was posted successfully",
		"balance": folio.Balance,
	})
}

// RegisterFolioRoutes registers folio routes. The group must carry
// TenantMiddleware.
func RegisterFolioRoutes(rg *gin.RouterGroup) {
	rg.GET("/folios/reservation/:reservationId", getFolio)
	rg.POST("/folios/reservation/:reservationId/lines", postFolioLine)
}
