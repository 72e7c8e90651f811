package handler

import (
	"net/http"
	"strconv"

	"github.com/dresspalette/backend/internal/models"
	"github.com/dresspalette/backend/internal/repository"
	"github.com/dresspalette/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type DressHandler struct {
	catalogService *service.CatalogService
}

func NewDressHandler(catalogService *service.CatalogService) *DressHandler {
	return &DressHandler{catalogService: catalogService}
}

// List serves the public dress catalog. Filters: ?category=, ?available=,
// ?featured= (the home page uses featured=true).
func (h *DressHandler) List(c *gin.Context) {
	filter := repository.DressFilter{}

	if v := c.Query("category"); v != "" {
		category := models.DressCategory(v)
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
	if v := c.Query("featured"); v != "" {
		featured, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid featured flag"})
			return
		}
		filter.Featured = &featured
	}

	dresses, err := h.catalogService.ListDresses(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"dresses": dresses})
}

func (h *DressHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	dress, err := h.catalogService.GetDress(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"dress": dress})
}

type DressRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" binding:"required"`
	Price       *float64 `json:"price"`
	RentalPrice *float64 `json:"rental_price"`
	Images      []string `json:"images"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
	Available   *bool    `json:"available"`
	Featured    bool     `json:"featured"`
}

func (r DressRequest) toInput() service.DressInput {
	available := true
	if r.Available != nil {
		available = *r.Available
	}
	return service.DressInput{
		Title:       r.Title,
		Description: r.Description,
		Category:    models.DressCategory(r.Category),
		Price:       r.Price,
		RentalPrice: r.RentalPrice,
		Images:      r.Images,
		Sizes:       r.Sizes,
		Colors:      r.Colors,
		Available:   available,
		Featured:    r.Featured,
	}
}

func (h *DressHandler) Create(c *gin.Context) {
	var req DressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	dress, err := h.catalogService.CreateDress(req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"dress": dress})
}

func (h *DressHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req DressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	dress, err := h.catalogService.UpdateDress(id, req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"dress": dress})
}

func (h *DressHandler) Delete(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.catalogService.DeleteDress(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Dress deleted"})
}
