package qr

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxroyer/qrlink/pkg/qrlink/links"
)

// Handler handles standalone QR requests
type Handler struct {
	generator *Generator
}

// NewHandler creates a new QR handler
func NewHandler(generator *Generator) *Handler {
	return &Handler{generator: generator}
}

// CreateQRRequest represents the request to render a QR code for a raw URL
type CreateQRRequest struct {
	URL string `json:"url" binding:"required"`
}

// Create renders a QR code for an arbitrary URL, with no persistence
// @Summary Render a QR code
// @Description Render a URL as a branded QR PNG without shortening it
// @Tags qr
// @Accept json
// @Produce png
// @Param request body CreateQRRequest true "URL to encode"
// @Success 200 {file} binary "PNG image"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 429 {object} map[string]string "Rate limited"
// @Router /api/v1/qr [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateQRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := links.ValidateTargetURL(req.URL); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := h.generator.Generate(req.URL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render QR code"})
		return
	}

	c.Data(http.StatusOK, "image/png", data)
}

// RegisterRoutes registers QR routes behind the rate guard
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, limit gin.HandlerFunc) {
	rg.POST("/qr", limit, h.Create)
}
