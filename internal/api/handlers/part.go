package handlers

import (
	"net/http"
	"strconv"

	"aircraft-manufacturing-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PartHandler handles HTTP requests for parts
type PartHandler struct {
	partService service.PartServiceInterface
}

// NewPartHandler creates a new part handler
func NewPartHandler(partService service.PartServiceInterface) *PartHandler {
	return &PartHandler{
		partService: partService,
	}
}

// currentUserID extracts the acting user's ID set by the auth middleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	idStr := c.GetString("user_id")
	if idStr == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// CreatePart produces a new part
// @Summary Produce a part
// @Description Produce a new part on behalf of the authenticated user. The user's team type must hold a creation permission for the part type.
// @Tags parts
// @Accept json
// @Produce json
// @Param part body service.CreatePartRequest true "Part data"
// @Success 201 {object} service.PartResponse "Successfully produced part"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Team may not produce this part type"
// @Security BearerAuth
// @Router /parts [post]
func (h *PartHandler) CreatePart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	part, err := h.partService.CreatePart(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, part)
}

// GetPart retrieves a part by ID
// @Summary Get part by ID
// @Description Get a specific part by its UUID
// @Tags parts
// @Accept json
// @Produce json
// @Param id path string true "Part ID (UUID)"
// @Success 200 {object} service.PartResponse "Successfully retrieved part"
// @Failure 400 {object} map[string]interface{} "Invalid part ID"
// @Failure 404 {object} map[string]interface{} "Part not found"
// @Security BearerAuth
// @Router /parts/{id} [get]
func (h *PartHandler) GetPart(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid part ID"})
		return
	}

	part, err := h.partService.GetPartByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, part)
}

// GetPartBySerialNumber retrieves a part by serial number
// @Summary Get part by serial number
// @Description Get a specific part by its serial number
// @Tags parts
// @Accept json
// @Produce json
// @Param serial path string true "Part serial number"
// @Success 200 {object} service.PartResponse "Successfully retrieved part"
// @Failure 404 {object} map[string]interface{} "Part not found"
// @Security BearerAuth
// @Router /parts/by-serial/{serial} [get]
func (h *PartHandler) GetPartBySerialNumber(c *gin.Context) {
	part, err := h.partService.GetPartBySerialNumber(c.Param("serial"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, part)
}

// ListParts lists parts
// @Summary List parts
// @Description Get parts with pagination, optionally filtered by part type, aircraft type, owner and usage state
// @Tags parts
// @Accept json
// @Produce json
// @Param part_type_id query string false "Part type ID (UUID)"
// @Param aircraft_type_id query string false "Aircraft type ID (UUID)"
// @Param owner_id query string false "Owner team member ID (UUID)"
// @Param is_used query bool false "Usage state filter"
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.PartListResponse "Successfully retrieved parts"
// @Failure 400 {object} map[string]interface{} "Invalid filter parameters"
// @Security BearerAuth
// @Router /parts [get]
func (h *PartHandler) ListParts(c *gin.Context) {
	var filter service.PartListFilter

	if v := c.Query("part_type_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid part type ID"})
			return
		}
		filter.PartTypeID = &id
	}
	if v := c.Query("aircraft_type_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid aircraft type ID"})
			return
		}
		filter.AircraftTypeID = &id
	}
	if v := c.Query("owner_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid owner ID"})
			return
		}
		filter.OwnerID = &id
	}
	if v := c.Query("is_used"); v != "" {
		used, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid is_used value"})
			return
		}
		filter.IsUsed = &used
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	parts, err := h.partService.ListParts(filter, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, parts)
}

// RecyclePart deletes an unused part
// @Summary Recycle a part
// @Description Remove an unused part from the inventory. Only the producing team (or an admin) may recycle a part; used parts are locked forever.
// @Tags parts
// @Accept json
// @Produce json
// @Param id path string true "Part ID (UUID)"
// @Success 204 "Part recycled"
// @Failure 400 {object} map[string]interface{} "Invalid part ID"
// @Failure 403 {object} map[string]interface{} "Part belongs to another team"
// @Failure 404 {object} map[string]interface{} "Part not found"
// @Failure 409 {object} map[string]interface{} "Part already used"
// @Security BearerAuth
// @Router /parts/{id} [delete]
func (h *PartHandler) RecyclePart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid part ID"})
		return
	}

	if err := h.partService.RecyclePart(userID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
