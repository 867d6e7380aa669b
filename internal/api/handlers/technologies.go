package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tea-engine/internal/api/models"
	"tea-engine/internal/catalog"
)

// TechnologyHandler serves the technology preset catalog.
type TechnologyHandler struct {
	catalog *catalog.Catalog
}

func NewTechnologyHandler(cat *catalog.Catalog) *TechnologyHandler {
	return &TechnologyHandler{catalog: cat}
}

// List handles GET /api/v1/technologies.
func (h *TechnologyHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, models.TechnologiesResponse{
		Technologies: h.catalog.List(),
	})
}
