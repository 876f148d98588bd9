package links

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/maxroyer/qrlink/pkg/qrlink/models"
)

// Handler handles link-related requests
type Handler struct {
	service *Service
}

// NewHandler creates a new links handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreateLinkRequest represents the request to create a link
type CreateLinkRequest struct {
	URL string `json:"url" binding:"required"`
	TTL string `json:"ttl"`
}

// LinkResponse represents a link in API responses
type LinkResponse struct {
	ID        string     `json:"id"`
	ShortCode string     `json:"short_code"`
	ShortURL  string     `json:"short_url"`
	TargetURL string     `json:"target_url"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at"`
}

func (h *Handler) linkToResponse(link *models.Link) LinkResponse {
	return LinkResponse{
		ID:        link.ID,
		ShortCode: link.ShortCode,
		ShortURL:  h.service.ShortURL(link.ShortCode),
		TargetURL: link.TargetURL,
		CreatedAt: link.CreatedAt,
		ExpiresAt: link.ExpiresAt,
	}
}

// Create creates a new short link
// @Summary Create a short link
// @Description Shorten a URL with an optional TTL preset
// @Tags links
// @Accept json
// @Produce json
// @Param request body CreateLinkRequest true "Link details"
// @Success 201 {object} LinkResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 429 {object} map[string]string "Rate limited"
// @Failure 503 {object} map[string]string "Short code retries exhausted"
// @Router /api/v1/links [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ttl, err := ParseTTL(req.TTL)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	link, err := h.service.Create(req.URL, ttl)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
		case errors.Is(err, ErrCodeExhausted):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Could not allocate a short code, please retry"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create link"})
		}
		return
	}

	c.JSON(http.StatusCreated, h.linkToResponse(link))
}

// List returns all live links
// @Summary List links
// @Description List all non-expired links, newest first
// @Tags links
// @Produce json
// @Success 200 {array} LinkResponse
// @Failure 401 {object} map[string]string "Missing or invalid delete secret"
// @Router /api/v1/links [get]
func (h *Handler) List(c *gin.Context) {
	links, err := h.service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch links"})
		return
	}

	responses := make([]LinkResponse, len(links))
	for i := range links {
		responses[i] = h.linkToResponse(&links[i])
	}

	c.JSON(http.StatusOK, responses)
}

// Delete deletes a link by ID
// @Summary Delete a link
// @Description Delete a link by its ID
// @Tags links
// @Produce json
// @Param id path string true "Link ID"
// @Success 204 "Link deleted"
// @Failure 404 {object} map[string]string "Link not found"
// @Router /api/v1/links/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid link ID"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Link not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete link"})
		return
	}

	c.Status(http.StatusNoContent)
}

// RegisterRoutes registers link routes. Creation goes through the rate
// guard; list and delete go through the admin gate.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, limit, gate gin.HandlerFunc) {
	rg.POST("/links", limit, h.Create)
	rg.GET("/links", gate, h.List)
	rg.DELETE("/links/:id", gate, h.Delete)
}
