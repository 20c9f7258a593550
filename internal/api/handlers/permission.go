package handlers

import (
	"net/http"
	"strconv"

	"aircraft-manufacturing-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PermissionHandler handles HTTP requests for the part permission matrix
type PermissionHandler struct {
	permissionService service.PermissionServiceInterface
}

// NewPermissionHandler creates a new permission handler
func NewPermissionHandler(permissionService service.PermissionServiceInterface) *PermissionHandler {
	return &PermissionHandler{
		permissionService: permissionService,
	}
}

// CreatePermission creates a matrix entry
// @Summary Create a permission entry
// @Description Grant or explicitly deny a team type the right to create a part type. Admin only.
// @Tags permissions
// @Accept json
// @Produce json
// @Param permission body service.CreatePermissionRequest true "Permission data"
// @Success 201 {object} service.PermissionResponse "Successfully created permission"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Entry already exists for this pair"
// @Security BearerAuth
// @Router /permissions [post]
func (h *PermissionHandler) CreatePermission(c *gin.Context) {
	var req service.CreatePermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	permission, err := h.permissionService.CreatePermission(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, permission)
}

// GetPermission retrieves a matrix entry by ID
// @Summary Get permission by ID
// @Description Get a specific permission matrix entry
// @Tags permissions
// @Accept json
// @Produce json
// @Param id path string true "Permission ID (UUID)"
// @Success 200 {object} service.PermissionResponse "Successfully retrieved permission"
// @Failure 400 {object} map[string]interface{} "Invalid permission ID"
// @Failure 404 {object} map[string]interface{} "Permission not found"
// @Security BearerAuth
// @Router /permissions/{id} [get]
func (h *PermissionHandler) GetPermission(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid permission ID"})
		return
	}

	permission, err := h.permissionService.GetPermissionByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, permission)
}

// ListPermissions lists matrix entries
// @Summary List permissions
// @Description Get permission matrix entries with pagination
// @Tags permissions
// @Accept json
// @Produce json
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.PermissionListResponse "Successfully retrieved permissions"
// @Security BearerAuth
// @Router /permissions [get]
func (h *PermissionHandler) ListPermissions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	permissions, err := h.permissionService.GetPermissions(limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, permissions)
}

// UpdatePermission updates a matrix entry
// @Summary Update a permission
// @Description Flip the can_create flag of a matrix entry. Admin only.
// @Tags permissions
// @Accept json
// @Produce json
// @Param id path string true "Permission ID (UUID)"
// @Param permission body service.UpdatePermissionRequest true "Permission data"
// @Success 200 {object} service.PermissionResponse "Successfully updated permission"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Permission not found"
// @Security BearerAuth
// @Router /permissions/{id} [put]
func (h *PermissionHandler) UpdatePermission(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid permission ID"})
		return
	}

	var req service.UpdatePermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	permission, err := h.permissionService.UpdatePermission(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, permission)
}

// DeletePermission deletes a matrix entry
// @Summary Delete a permission
// @Description Remove a matrix entry; the pair reverts to denied. Admin only.
// @Tags permissions
// @Accept json
// @Produce json
// @Param id path string true "Permission ID (UUID)"
// @Success 204 "Permission deleted"
// @Failure 400 {object} map[string]interface{} "Invalid permission ID"
// @Failure 404 {object} map[string]interface{} "Permission not found"
// @Security BearerAuth
// @Router /permissions/{id} [delete]
func (h *PermissionHandler) DeletePermission(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid permission ID"})
		return
	}

	if err := h.permissionService.DeletePermission(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
