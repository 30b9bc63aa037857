package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blog-backend/internal/domains/artwork"
	"blog-backend/internal/shared/response"
)

// ArtworkHandler handles HTTP requests for gallery artworks
type ArtworkHandler struct {
	service artwork.Service
}

// NewArtworkHandler creates a new artwork handler instance
func NewArtworkHandler(service artwork.Service) *ArtworkHandler {
	return &ArtworkHandler{service: service}
}

// List handles GET /api/artworks
func (h *ArtworkHandler) List(c *gin.Context) {
	artworks, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"artworks": artworks})
}

// Add handles POST /api/artworks
func (h *ArtworkHandler) Add(c *gin.Context) {
	var req artwork.AddArtworkRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	dto, err := h.service.Add(c.Request.Context(), req)
	if err != nil {
		var vErrs validation.Errors
		if errors.As(err, &vErrs) {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "artwork added",
		"artwork": dto,
	})
}

// Update handles PUT /api/artworks/:id
func (h *ArtworkHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid artwork id")
		return
	}

	var req artwork.UpdateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	dto, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, artwork.ErrArtworkNotFound) {
			response.Error(c, http.StatusNotFound, "artwork not found")
			return
		}
		response.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "artwork updated",
		"artwork": dto,
	})
}

// Delete handles DELETE /api/artworks/:id
func (h *ArtworkHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid artwork id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, artwork.ErrArtworkNotFound) {
			response.Error(c, http.StatusNotFound, "artwork not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "artwork deleted")
}
