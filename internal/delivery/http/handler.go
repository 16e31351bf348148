package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopsense/backend/internal/domain"
	"github.com/shopsense/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	catalog       domain.CatalogSource
	searchService *usecase.SearchService
}

// NewHandler creates a new HTTP handler
func NewHandler(catalog domain.CatalogSource, searchService *usecase.SearchService) *Handler {
	return &Handler{
		catalog:       catalog,
		searchService: searchService,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "shopsense-backend",
		"version": "1.0.0",
	})
}

// ListProducts returns the full catalog in display order
func (h *Handler) ListProducts(c *gin.Context) {
	products := h.catalog.Products()
	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"total":    len(products),
	})
}

// ListCategories returns the closed category set of the catalog
func (h *Handler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": h.catalog.Categories(),
	})
}

// Search handles search requests for both AI and plain mode.
// Completion-service failures never surface here: the interpreter fails
// open and the search proceeds unconstrained. A superseded search returns
// 409 so the client knows to keep the newer result it already has.
func (h *Handler) Search(c *gin.Context) {
	var req domain.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid request body: " + err.Error(),
		})
		return
	}

	result, err := h.searchService.Search(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrStaleResult) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "search superseded by a newer query",
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
