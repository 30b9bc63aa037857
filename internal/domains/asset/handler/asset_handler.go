package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/domains/asset"
	"blog-backend/internal/shared/response"
)

// AssetHandler handles HTTP requests for uploaded assets
type AssetHandler struct {
	service asset.Service
}

// NewAssetHandler creates a new asset handler instance
func NewAssetHandler(service asset.Service) *AssetHandler {
	return &AssetHandler{service: service}
}

// Upload handles POST /api/upload (multipart, field "file")
func (h *AssetHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "no file provided")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	defer src.Close()

	info, err := h.service.Upload(fileHeader.Filename, c.PostForm("type"), src)
	if err != nil {
		if errors.Is(err, asset.ErrUnsupportedFileType) {
			response.Error(c, http.StatusBadRequest, "unsupported file type")
			return
		}
		response.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "upload successful",
		"url":     info.URL,
		"name":    info.Name,
	})
}

// List handles GET /api/admin/assets?type=
func (h *AssetHandler) List(c *gin.Context) {
	infos, err := h.service.List(c.Query("type"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assets": infos})
}

// Delete handles DELETE /api/admin/assets?filename=&type=
func (h *AssetHandler) Delete(c *gin.Context) {
	filename := c.Query("filename")
	if filename == "" {
		response.Error(c, http.StatusBadRequest, "filename is required")
		return
	}

	if err := h.service.Delete(c.Query("type"), filename); err != nil {
		if errors.Is(err, asset.ErrAssetNotFound) {
			response.Error(c, http.StatusNotFound, "asset not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "asset deleted")
}
