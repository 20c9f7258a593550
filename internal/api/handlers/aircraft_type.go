package handlers

import (
	"net/http"

	"aircraft-manufacturing-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AircraftTypeHandler handles HTTP requests for the aircraft type catalog
type AircraftTypeHandler struct {
	aircraftTypeService service.AircraftTypeServiceInterface
}

// NewAircraftTypeHandler creates a new aircraft type handler
func NewAircraftTypeHandler(aircraftTypeService service.AircraftTypeServiceInterface) *AircraftTypeHandler {
	return &AircraftTypeHandler{
		aircraftTypeService: aircraftTypeService,
	}
}

// CreateAircraftType creates an aircraft type
// @Summary Create an aircraft type
// @Description Add a new aircraft type to the catalog. Admin only.
// @Tags aircraft-types
// @Accept json
// @Produce json
// @Param aircraft_type body service.CreateAircraftTypeRequest true "Aircraft type data"
// @Success 201 {object} service.AircraftTypeResponse "Successfully created aircraft type"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Aircraft type already exists"
// @Security BearerAuth
// @Router /aircraft-types [post]
func (h *AircraftTypeHandler) CreateAircraftType(c *gin.Context) {
	var req service.CreateAircraftTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	acType, err := h.aircraftTypeService.CreateAircraftType(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, acType)
}

// GetAircraftType retrieves an aircraft type by ID
// @Summary Get aircraft type by ID
// @Description Get a specific aircraft type
// @Tags aircraft-types
// @Accept json
// @Produce json
// @Param id path string true "Aircraft type ID (UUID)"
// @Success 200 {object} service.AircraftTypeResponse "Successfully retrieved aircraft type"
// @Failure 400 {object} map[string]interface{} "Invalid aircraft type ID"
// @Failure 404 {object} map[string]interface{} "Aircraft type not found"
// @Security BearerAuth
// @Router /aircraft-types/{id} [get]
func (h *AircraftTypeHandler) GetAircraftType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid aircraft type ID"})
		return
	}

	acType, err := h.aircraftTypeService.GetAircraftTypeByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, acType)
}

// ListAircraftTypes lists the aircraft type catalog
// @Summary List aircraft types
// @Description Get the full aircraft type catalog
// @Tags aircraft-types
// @Accept json
// @Produce json
// @Success 200 {array} service.AircraftTypeResponse "Successfully retrieved aircraft types"
// @Security BearerAuth
// @Router /aircraft-types [get]
func (h *AircraftTypeHandler) ListAircraftTypes(c *gin.Context) {
	acTypes, err := h.aircraftTypeService.GetAircraftTypes()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, acTypes)
}

// UpdateAircraftType updates an aircraft type
// @Summary Update an aircraft type
// @Description Update an aircraft type's description. The name is immutable. Admin only.
// @Tags aircraft-types
// @Accept json
// @Produce json
// @Param id path string true "Aircraft type ID (UUID)"
// @Param aircraft_type body service.UpdateAircraftTypeRequest true "Aircraft type data"
// @Success 200 {object} service.AircraftTypeResponse "Successfully updated aircraft type"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Aircraft type not found"
// @Security BearerAuth
// @Router /aircraft-types/{id} [put]
func (h *AircraftTypeHandler) UpdateAircraftType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid aircraft type ID"})
		return
	}

	var req service.UpdateAircraftTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	acType, err := h.aircraftTypeService.UpdateAircraftType(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, acType)
}

// DeleteAircraftType deletes an aircraft type
// @Summary Delete an aircraft type
// @Description Remove an aircraft type from the catalog. Types referenced by existing parts or aircraft cannot be deleted. Admin only.
// @Tags aircraft-types
// @Accept json
// @Produce json
// @Param id path string true "Aircraft type ID (UUID)"
// @Success 204 "Aircraft type deleted"
// @Failure 400 {object} map[string]interface{} "Invalid aircraft type ID"
// @Failure 404 {object} map[string]interface{} "Aircraft type not found"
// @Failure 409 {object} map[string]interface{} "Aircraft type still referenced"
// @Security BearerAuth
// @Router /aircraft-types/{id} [delete]
func (h *AircraftTypeHandler) DeleteAircraftType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid aircraft type ID"})
		return
	}

	if err := h.aircraftTypeService.DeleteAircraftType(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
