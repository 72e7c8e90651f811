package handler

import (
	"net/http"

	"github.com/dresspalette/backend/internal/middleware"
	"github.com/dresspalette/backend/internal/models"
	"github.com/dresspalette/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	dashboardService *service.DashboardService
	authService      *service.AuthService
}

func NewAdminHandler(dashboardService *service.DashboardService, authService *service.AuthService) *AdminHandler {
	return &AdminHandler{
		dashboardService: dashboardService,
		authService:      authService,
	}
}

// Overview serves the admin landing summary. Sections that failed to load
// are named in failed_sections rather than silently zeroed.
func (h *AdminHandler) Overview(c *gin.Context) {
	overview := h.dashboardService.AdminOverview()
	c.JSON(http.StatusOK, gin.H{"overview": overview})
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.authService.ListUsers()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	adminID, _ := middleware.UserID(c)
	if err := h.authService.UpdateRole(id, models.Role(req.Role), adminID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Role updated"})
}
