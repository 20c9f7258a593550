package handlers

import (
	"net/http"

	"aircraft-manufacturing-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InventoryHandler handles HTTP requests for inventory reports
type InventoryHandler struct {
	inventoryService service.InventoryServiceInterface
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService service.InventoryServiceInterface) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
	}
}

// CheckReadiness reports assembly readiness for an aircraft type
// @Summary Check assembly readiness
// @Description Report whether the unused part stock covers one aircraft of the given type. Advisory only: reading the report reserves nothing.
// @Tags inventory
// @Accept json
// @Produce json
// @Param aircraft_type_id path string true "Aircraft type ID (UUID)"
// @Success 200 {object} service.ReadinessResponse "Readiness report"
// @Failure 400 {object} map[string]interface{} "Invalid aircraft type ID"
// @Failure 404 {object} map[string]interface{} "Aircraft type not found"
// @Security BearerAuth
// @Router /inventory/readiness/{aircraft_type_id} [get]
func (h *InventoryHandler) CheckReadiness(c *gin.Context) {
	id, err := uuid.Parse(c.Param("aircraft_type_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid aircraft type ID"})
		return
	}

	report, err := h.inventoryService.CheckAssemblyReadiness(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetRequirements lists the requirement tables of all aircraft types
// @Summary List aircraft requirements
// @Description Get the part quantity table of every aircraft type
// @Tags inventory
// @Accept json
// @Produce json
// @Success 200 {array} service.AircraftRequirements "Requirement tables"
// @Security BearerAuth
// @Router /aircraft/requirements [get]
func (h *InventoryHandler) GetRequirements(c *gin.Context) {
	requirements, err := h.inventoryService.GetAllRequirements()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, requirements)
}

// GetFullInventoryStatus reports stock counts for all aircraft types
// @Summary Get full inventory status
// @Description Get total, used and available part counts for every aircraft type
// @Tags inventory
// @Accept json
// @Produce json
// @Success 200 {array} service.InventoryStatusResponse "Inventory status per aircraft type"
// @Security BearerAuth
// @Router /inventory/status [get]
func (h *InventoryHandler) GetFullInventoryStatus(c *gin.Context) {
	status, err := h.inventoryService.GetFullInventoryStatus()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// GetInventoryStatus reports stock counts for an aircraft type
// @Summary Get inventory status
// @Description Get total, used and available part counts for one aircraft type, per part type in its requirement table
// @Tags inventory
// @Accept json
// @Produce json
// @Param aircraft_type_id path string true "Aircraft type ID (UUID)"
// @Success 200 {object} service.InventoryStatusResponse "Inventory status"
// @Failure 400 {object} map[string]interface{} "Invalid aircraft type ID"
// @Failure 404 {object} map[string]interface{} "Aircraft type not found"
// @Security BearerAuth
// @Router /inventory/status/{aircraft_type_id} [get]
func (h *InventoryHandler) GetInventoryStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("aircraft_type_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid aircraft type ID"})
		return
	}

	status, err := h.inventoryService.GetInventoryStatus(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}
