package redirect

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxroyer/qrlink/pkg/qrlink/links"
	"github.com/maxroyer/qrlink/pkg/qrlink/qr"
)

// Handler handles public short code requests
type Handler struct {
	links     *links.Service
	generator *qr.Generator
}

// NewHandler creates a new redirect handler
func NewHandler(linkService *links.Service, generator *qr.Generator) *Handler {
	return &Handler{links: linkService, generator: generator}
}

// Redirect handles short URL redirects. A link whose expiry has passed is
// treated as gone even before the sweeper removes the row.
func (h *Handler) Redirect(c *gin.Context) {
	link, err := h.links.Resolve(c.Param("short_code"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Link not found"})
		return
	}

	c.Redirect(http.StatusFound, link.TargetURL)
}

// QR renders the link's target URL as a branded QR PNG.
func (h *Handler) QR(c *gin.Context) {
	link, err := h.links.Resolve(c.Param("short_code"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Link not found"})
		return
	}

	data, err := h.generator.Generate(link.TargetURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render QR code"})
		return
	}

	c.Data(http.StatusOK, "image/png", data)
}

// RegisterRoutes registers short code routes on the root router.
// This should be called AFTER all other routes to avoid conflicts.
func (h *Handler) RegisterRoutes(r *gin.Engine, limit gin.HandlerFunc) {
	r.GET("/:short_code", h.Redirect)
	r.GET("/:short_code/qr", limit, h.QR)
}
