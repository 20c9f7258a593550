package handlers

import (
	"net/http"

	"aircraft-manufacturing-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PartTypeHandler handles HTTP requests for the part type catalog
type PartTypeHandler struct {
	partTypeService service.PartTypeServiceInterface
}

// NewPartTypeHandler creates a new part type handler
func NewPartTypeHandler(partTypeService service.PartTypeServiceInterface) *PartTypeHandler {
	return &PartTypeHandler{
		partTypeService: partTypeService,
	}
}

// CreatePartType creates a part type
// @Summary Create a part type
// @Description Add a new part type to the catalog. Admin only.
// @Tags part-types
// @Accept json
// @Produce json
// @Param part_type body service.CreatePartTypeRequest true "Part type data"
// @Success 201 {object} service.PartTypeResponse "Successfully created part type"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Part type already exists"
// @Security BearerAuth
// @Router /part-types [post]
func (h *PartTypeHandler) CreatePartType(c *gin.Context) {
	var req service.CreatePartTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	partType, err := h.partTypeService.CreatePartType(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, partType)
}

// GetPartType retrieves a part type by ID
// @Summary Get part type by ID
// @Description Get a specific part type
// @Tags part-types
// @Accept json
// @Produce json
// @Param id path string true "Part type ID (UUID)"
// @Success 200 {object} service.PartTypeResponse "Successfully retrieved part type"
// @Failure 400 {object} map[string]interface{} "Invalid part type ID"
// @Failure 404 {object} map[string]interface{} "Part type not found"
// @Security BearerAuth
// @Router /part-types/{id} [get]
func (h *PartTypeHandler) GetPartType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid part type ID"})
		return
	}

	partType, err := h.partTypeService.GetPartTypeByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, partType)
}

// ListPartTypes lists the part type catalog
// @Summary List part types
// @Description Get the full part type catalog
// @Tags part-types
// @Accept json
// @Produce json
// @Success 200 {array} service.PartTypeResponse "Successfully retrieved part types"
// @Security BearerAuth
// @Router /part-types [get]
func (h *PartTypeHandler) ListPartTypes(c *gin.Context) {
	partTypes, err := h.partTypeService.GetPartTypes()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, partTypes)
}

// UpdatePartType updates a part type
// @Summary Update a part type
// @Description Update a part type's description. The name is immutable. Admin only.
// @Tags part-types
// @Accept json
// @Produce json
// @Param id path string true "Part type ID (UUID)"
// @Param part_type body service.UpdatePartTypeRequest true "Part type data"
// @Success 200 {object} service.PartTypeResponse "Successfully updated part type"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Part type not found"
// @Security BearerAuth
// @Router /part-types/{id} [put]
func (h *PartTypeHandler) UpdatePartType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid part type ID"})
		return
	}

	var req service.UpdatePartTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	partType, err := h.partTypeService.UpdatePartType(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, partType)
}

// DeletePartType deletes a part type
// @Summary Delete a part type
// @Description Remove a part type from the catalog. Types referenced by existing parts cannot be deleted. Admin only.
// @Tags part-types
// @Accept json
// @Produce json
// @Param id path string true "Part type ID (UUID)"
// @Success 204 "Part type deleted"
// @Failure 400 {object} map[string]interface{} "Invalid part type ID"
// @Failure 404 {object} map[string]interface{} "Part type not found"
// @Failure 409 {object} map[string]interface{} "Part type still referenced"
// @Security BearerAuth
// @Router /part-types/{id} [delete]
func (h *PartTypeHandler) DeletePartType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid part type ID"})
		return
	}

	if err := h.partTypeService.DeletePartType(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
