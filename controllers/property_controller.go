package controllers

import (
	"net/http"

	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/pkg/logger"
	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/services"
	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/utils"

	"github.com/gin-gonic/gin"
)

var propertySrv = services.NewPropertyService()

// SetPropertyService initializes the property service instance.
// Used for dependency injection in tests to provide mock implementations.
func SetPropertyService(s services.PropertyService) {
	propertySrv = s
}

// ProvisionPropertyRequest is the payload for creating a new property tenant.
type ProvisionPropertyRequest struct {
	Code string `json:"code" validate:"required"`
	Name string `json:"name" validate:"required"`
}

// UpdatePropertyStatusRequest is the payload for activating or suspending a
// property.
type UpdatePropertyStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// PreferredDatabaseRequest is the payload for setting or clearing the
// database override hint. An empty database name clears the hint.
type PreferredDatabaseRequest struct {
	DatabaseName string `json:"database_name"`
}

// provisionProperty provisions a new property tenant
// @Summary Provision a property
// @Description Creates the isolated database for a new property, registers all schemas, and seeds the property record. Idempotent.
// @Tags Properties
// @Accept json
// @Produce json
// @Param property body ProvisionPropertyRequest true "Property code and display name"
// @Success 201 {object} map[string]interface{} "Property provisioned"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 503 {object} map[string]interface{} "Primary store unavailable"
// @Router /api/properties [post]
func provisionProperty(c *gin.Context) {
	var params ProvisionPropertyRequest
	if err := c.ShouldBindJSON(&params); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	if err := utils.ValidateStruct(&params); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	logger.Debugf("Provisioning property %s", params.Code)
	tc, err := registry.Provision(c.Request.Context(), params.Code, params.Name)
	if err != nil {
		logger.Errorf("Failed to provision property %s: %v", params.Code, err)
		utils.ErrorResponse(c, err)
		return
	}
	logger.Infof("Provisioned property %s in database %s", tc.Code, tc.DatabaseName)
	utils.JSONResponse(c, http.StatusCreated, gin.H{
		"message":  "Property was provisioned successfully",
		"code":     tc.Code,
		"database": tc.DatabaseName,
	})
}

// resolveProperty resolves a property code to its tenant context
// @Summary Resolve a property
// @Description Resolves a property code to its isolated database and returns the property record.
// @Tags Properties
// @Produce json
// @Param code path string true "Property code"
// @Success 200 {object} map[string]interface{} "Resolved property"
// @Failure 404 {object} map[string]interface{} "No property matches the code"
// @Failure 503 {object} map[string]interface{} "Primary store unavailable"
// @Router /api/properties/{code} [get]
func resolveProperty(c *gin.Context) {
	code := c.Param("code")

	tc, err := registry.Resolve(c.Request.Context(), code)
	if err != nil {
		logger.Errorf("Failed to resolve property %s: %v", code, err)
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{
		"code":     tc.Code,
		"database": tc.DatabaseName,
		"property": tc.Property,
	})
}

// invalidateProperty drops the cached code-to-database binding
// @Summary Invalidate a cached property binding
// @Description Removes the code index entry so the next resolution rediscovers the property's database.
// @Tags Properties
// @Produce json
// @Param code path string true "Property code"
// @Success 200 {object} map[string]interface{} "Binding invalidated"
// @Router /api/properties/{code}/invalidate [post]
func invalidateProperty(c *gin.Context) {
	code := c.Param("code")
	registry.Invalidate(code)
	logger.Infof("Invalidated cached binding for property %s", code)
	utils.JSONResponse(c, http.StatusOK, gin.H{
		"message": "Cached binding invalidated",
	})
}

// updatePropertyStatus activates or suspends a property
// @Summary Update a property's status
// @Tags Properties
// @Accept json
// @Produce json
// @Param code path string true "Property code"
// @Param status body UpdatePropertyStatusRequest true "New status: active or suspended"
// @Success 200 {object} map[string]interface{} "Property status updated"
// @Failure 400 {object} map[string]interface{} "Invalid status"
// @Failure 404 {object} map[string]interface{} "No property matches the code"
// @Router /api/properties/{code}/status [put]
func updatePropertyStatus(c *gin.Context) {
	var params UpdatePropertyStatusRequest
	if err := c.ShouldBindJSON(&params); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	if err := utils.ValidateStruct(&params); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	tc, err := registry.Resolve(c.Request.Context(), c.Param("code"))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	prop, err := propertySrv.SetStatus(c.Request.Context(), tc, params.Status)
	if err != nil {
		logger.Errorf("Failed to update status for property %s: %v", tc.Code, err)
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{
		"message":  "Property status was updated successfully",
		"property": prop,
	})
}

// setPreferredDatabase sets or clears a property's database override hint
// @Summary Set a property's preferred database
// @Description Stores the override hint on the property's metadata and invalidates the cached binding so the next resolution follows it. An empty database name clears the hint.
// @Tags Properties
// @Accept json
// @Produce json
// @Param code path string true "Property code"
// @Param preference body PreferredDatabaseRequest true "Preferred database name"
// @Success 200 {object} map[string]interface{} "Preference stored"
// @Failure 404 {object} map[string]interface{} "No property matches the code"
// @Router /api/properties/{code}/preferred-database [put]
func setPreferredDatabase(c *gin.Context) {
	var params PreferredDatabaseRequest
	if err := c.ShouldBindJSON(&params); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	tc, err := registry.Resolve(c.Request.Context(), c.Param("code"))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	prop, err := propertySrv.SetPreferredDatabase(c.Request.Context(), tc, params.DatabaseName)
	if err != nil {
		logger.Errorf("Failed to update preferred database for property %s: %v", tc.Code, err)
		utils.ErrorResponse(c, err)
		return
	}

	// The stored hint only matters at resolution time; drop the cached
	// binding so the next request re-evaluates it.
	registry.Invalidate(tc.Code)
	utils.JSONResponse(c, http.StatusOK, gin.H{
		"message":  "Preferred database was updated successfully",
		"property": prop,
	})
}

// registryStats reports tenant registry cache statistics
// @Summary Registry statistics
// @Description Returns connection cache size, code index size, and cumulative scan/registration counters.
// @Tags Properties
// @Produce json
// @Success 200 {object} map[string]interface{} "Registry statistics"
// @Router /api/properties/stats [get]
func registryStats(c *gin.Context) {
	stats := registry.Stats()
	utils.JSONResponse(c, http.StatusOK, gin.H{
		"connections":   stats.Connections,
		"indexed_codes": stats.IndexedCodes,
		"scans":         stats.Scans,
		"registrations": stats.Registrations,
	})
}

// RegisterPropertyRoutes registers property administration routes.
func RegisterPropertyRoutes(rg *gin.RouterGroup) {
	rg.POST("/properties", provisionProperty)
	rg.GET("/properties/stats", registryStats)
	rg.GET("/properties/:code", resolveProperty)
	rg.POST("/properties/:code/invalidate", invalidateProperty)
	rg.PUT("/properties/:code/status", updatePropertyStatus)
	rg.PUT("/properties/:code/preferred-database", setPreferredDatabase)
}
