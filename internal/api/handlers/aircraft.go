package handlers

import (
	"net/http"
	"strconv"

	"aircraft-manufacturing-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AircraftHandler handles HTTP requests for aircraft
type AircraftHandler struct {
	assemblyService service.AssemblyServiceInterface
}

// NewAircraftHandler creates a new aircraft handler
func NewAircraftHandler(assemblyService service.AssemblyServiceInterface) *AircraftHandler {
	return &AircraftHandler{
		assemblyService: assemblyService,
	}
}

// AssembleAircraft assembles a new aircraft
// @Summary Assemble an aircraft
// @Description Assemble a new aircraft from unused parts. Only members of assembly teams may assemble. Listed parts must be unused and destined for the requested aircraft type.
// @Tags aircraft
// @Accept json
// @Produce json
// @Param aircraft body service.AssembleAircraftRequest true "Assembly data"
// @Success 201 {object} service.AircraftResponse "Successfully assembled aircraft"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Not an assembly team member"
// @Failure 409 {object} map[string]interface{} "A listed part is unavailable"
// @Security BearerAuth
// @Router /aircraft [post]
func (h *AircraftHandler) AssembleAircraft(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.AssembleAircraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	aircraft, err := h.assemblyService.AssembleAircraft(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, aircraft)
}

// GetAircraft retrieves an aircraft by ID
// @Summary Get aircraft by ID
// @Description Get a specific aircraft with its consumed parts
// @Tags aircraft
// @Accept json
// @Produce json
// @Param id path string true "Aircraft ID (UUID)"
// @Success 200 {object} service.AircraftResponse "Successfully retrieved aircraft"
// @Failure 400 {object} map[string]interface{} "Invalid aircraft ID"
// @Failure 404 {object} map[string]interface{} "Aircraft not found"
// @Security BearerAuth
// @Router /aircraft/{id} [get]
func (h *AircraftHandler) GetAircraft(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid aircraft ID"})
		return
	}

	aircraft, err := h.assemblyService.GetAircraftByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, aircraft)
}

// GetAircraftBySerialNumber retrieves an aircraft by serial number
// @Summary Get aircraft by serial number
// @Description Get a specific aircraft by its serial number
// @Tags aircraft
// @Accept json
// @Produce json
// @Param serial path string true "Aircraft serial number"
// @Success 200 {object} service.AircraftResponse "Successfully retrieved aircraft"
// @Failure 404 {object} map[string]interface{} "Aircraft not found"
// @Security BearerAuth
// @Router /aircraft/by-serial/{serial} [get]
func (h *AircraftHandler) GetAircraftBySerialNumber(c *gin.Context) {
	aircraft, err := h.assemblyService.GetAircraftBySerialNumber(c.Param("serial"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, aircraft)
}

// ListAircraft lists aircraft
// @Summary List aircraft
// @Description Get aircraft with pagination, optionally filtered by aircraft type
// @Tags aircraft
// @Accept json
// @Produce json
// @Param aircraft_type_id query string false "Aircraft type ID (UUID)"
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.AircraftListResponse "Successfully retrieved aircraft"
// @Failure 400 {object} map[string]interface{} "Invalid filter parameters"
// @Security BearerAuth
// @Router /aircraft [get]
func (h *AircraftHandler) ListAircraft(c *gin.Context) {
	var aircraftTypeID *uuid.UUID
	if v := c.Query("aircraft_type_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid aircraft type ID"})
			return
		}
		aircraftTypeID = &id
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	aircraft, err := h.assemblyService.ListAircraft(aircraftTypeID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, aircraft)
}

// DeleteAircraft retires an aircraft
// @Summary Retire an aircraft
// @Description Delete an aircraft. The parts it consumed stay used and do not return to the inventory.
// @Tags aircraft
// @Accept json
// @Produce json
// @Param id path string true "Aircraft ID (UUID)"
// @Success 204 "Aircraft deleted"
// @Failure 400 {object} map[string]interface{} "Invalid aircraft ID"
// @Failure 403 {object} map[string]interface{} "Not an assembly team member"
// @Failure 404 {object} map[string]interface{} "Aircraft not found"
// @Security BearerAuth
// @Router /aircraft/{id} [delete]
func (h *AircraftHandler) DeleteAircraft(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid aircraft ID"})
		return
	}

	if err := h.assemblyService.DeleteAircraft(userID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// MethodNotAllowed rejects updates to assembled aircraft. Serial number,
// type and owner are fixed at assembly time.
// @Summary Aircraft are immutable
// @Description Aircraft cannot be modified after assembly
// @Tags aircraft
// @Produce json
// @Param id path string true "Aircraft ID (UUID)"
// @Failure 405 {object} map[string]interface{} "Aircraft are immutable"
// @Security BearerAuth
// @Router /aircraft/{id} [put]
func (h *AircraftHandler) MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Aircraft cannot be modified after assembly"})
}
