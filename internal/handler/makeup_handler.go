package handler

import (
	"net/http"
	"strconv"

	"github.com/dresspalette/backend/internal/models"
	"github.com/dresspalette/backend/internal/repository"
	"github.com/dresspalette/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type MakeupHandler struct {
	catalogService *service.CatalogService
}

func NewMakeupHandler(catalogService *service.CatalogService) *MakeupHandler {
	return &MakeupHandler{catalogService: catalogService}
}

// ListServices serves the public makeup services page.
func (h *MakeupHandler) ListServices(c *gin.Context) {
	filter := repository.MakeupServiceFilter{}

	if v := c.Query("category"); v != "" {
		category := models.MakeupCategory(v)
		if !category.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
			return
		}
		filter.Category = &category
	}
	if v := c.Query("available"); v != "" {
		available, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid available flag"})
			return
		}
		filter.Available = &available
	}

	services, err := h.catalogService.ListMakeupServices(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": services})
}

type MakeupServiceRequest struct {
	Title           string  `json:"title" binding:"required"`
	Description     string  `json:"description"`
	Category        string  `json:"category" binding:"required"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	ImageURL        string  `json:"image_url"`
	Available       *bool   `json:"available"`
}

func (r MakeupServiceRequest) toInput() service.MakeupServiceInput {
	available := true
	if r.Available != nil {
		available = *r.Available
	}
	return service.MakeupServiceInput{
		Title:           r.Title,
		Description:     r.Description,
		Category:        models.MakeupCategory(r.Category),
		Price:           r.Price,
		DurationMinutes: r.DurationMinutes,
		ImageURL:        r.ImageURL,
		Available:       available,
	}
}

func (h *MakeupHandler) CreateService(c *gin.Context) {
	var req MakeupServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	makeupService, err := h.catalogService.CreateMakeupService(req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"service": makeupService})
}

func (h *MakeupHandler) UpdateService(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req MakeupServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	makeupService, err := h.catalogService.UpdateMakeupService(id, req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"service": makeupService})
}

func (h *MakeupHandler) DeleteService(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.catalogService.DeleteMakeupService(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}
