package handlers

import (
	"net/http"
	"strconv"

	"aircraft-manufacturing-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequirementHandler handles HTTP requests for the requirement registry
type RequirementHandler struct {
	requirementService service.RequirementServiceInterface
}

// NewRequirementHandler creates a new requirement handler
func NewRequirementHandler(requirementService service.RequirementServiceInterface) *RequirementHandler {
	return &RequirementHandler{
		requirementService: requirementService,
	}
}

// CreateRequirement creates a requirement row
// @Summary Create a requirement
// @Description Declare how many parts of a type an aircraft type needs. Admin only.
// @Tags requirements
// @Accept json
// @Produce json
// @Param requirement body service.CreateRequirementRequest true "Requirement data"
// @Success 201 {object} service.RequirementResponse "Successfully created requirement"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Requirement already exists for this pair"
// @Security BearerAuth
// @Router /requirements [post]
func (h *RequirementHandler) CreateRequirement(c *gin.Context) {
	var req service.CreateRequirementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	requirement, err := h.requirementService.CreateRequirement(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, requirement)
}

// GetRequirement retrieves a requirement by ID
// @Summary Get requirement by ID
// @Description Get a specific requirement row
// @Tags requirements
// @Accept json
// @Produce json
// @Param id path string true "Requirement ID (UUID)"
// @Success 200 {object} service.RequirementResponse "Successfully retrieved requirement"
// @Failure 400 {object} map[string]interface{} "Invalid requirement ID"
// @Failure 404 {object} map[string]interface{} "Requirement not found"
// @Security BearerAuth
// @Router /requirements/{id} [get]
func (h *RequirementHandler) GetRequirement(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid requirement ID"})
		return
	}

	requirement, err := h.requirementService.GetRequirementByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, requirement)
}

// ListRequirements lists requirement rows
// @Summary List requirements
// @Description Get requirement rows with pagination
// @Tags requirements
// @Accept json
// @Produce json
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.RequirementListResponse "Successfully retrieved requirements"
// @Security BearerAuth
// @Router /requirements [get]
func (h *RequirementHandler) ListRequirements(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	requirements, err := h.requirementService.GetRequirements(limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, requirements)
}

// UpdateRequirement updates a requirement row
// @Summary Update a requirement
// @Description Change the quantity of a requirement row. The pair is immutable. Admin only.
// @Tags requirements
// @Accept json
// @Produce json
// @Param id path string true "Requirement ID (UUID)"
// @Param requirement body service.UpdateRequirementRequest true "Requirement data"
// @Success 200 {object} service.RequirementResponse "Successfully updated requirement"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Requirement not found"
// @Security BearerAuth
// @Router /requirements/{id} [put]
func (h *RequirementHandler) UpdateRequirement(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid requirement ID"})
		return
	}

	var req service.UpdateRequirementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	requirement, err := h.requirementService.UpdateRequirement(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, requirement)
}

// DeleteRequirement deletes a requirement row
// @Summary Delete a requirement
// @Description Remove a requirement row; the pair reverts to not required. Admin only.
// @Tags requirements
// @Accept json
// @Produce json
// @Param id path string true "Requirement ID (UUID)"
// @Success 204 "Requirement deleted"
// @Failure 400 {object} map[string]interface{} "Invalid requirement ID"
// @Failure 404 {object} map[string]interface{} "Requirement not found"
// @Security BearerAuth
// @Router /requirements/{id} [delete]
func (h *RequirementHandler) DeleteRequirement(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid requirement ID"})
		return
	}

	if err := h.requirementService.DeleteRequirement(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
