package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blog-backend/internal/domains/article"
	"blog-backend/internal/shared/response"
)

// ArticleHandler handles HTTP requests for articles
type ArticleHandler struct {
	service article.Service
}

// NewArticleHandler creates a new article handler instance
func NewArticleHandler(service article.Service) *ArticleHandler {
	return &ArticleHandler{service: service}
}

// Index handles GET /api/articles/index
func (h *ArticleHandler) Index(c *gin.Context) {
	index, err := h.service.ListIndex(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, index)
}

// Get handles GET /api/article/:category/:slug
func (h *ArticleHandler) Get(c *gin.Context) {
	categorySlug := c.Param("category")
	articleSlug := c.Param("slug")

	detail, err := h.service.Get(c.Request.Context(), categorySlug, articleSlug)
	if err != nil {
		switch {
		case errors.Is(err, article.ErrInvalidCategory):
			response.Error(c, http.StatusNotFound, "category not found")
		case errors.Is(err, article.ErrArticleNotFound):
			response.Error(c, http.StatusNotFound, "article not found")
		default:
			response.InternalError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Save handles POST /api/articles for both create and update
func (h *ArticleHandler) Save(c *gin.Context) {
	var req article.SaveArticleRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	slug, err := h.service.Save(c.Request.Context(), req)
	if err != nil {
		var vErrs validation.Errors
		switch {
		case errors.As(err, &vErrs):
			response.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, article.ErrInvalidCategory):
			response.Error(c, http.StatusBadRequest, "invalid category")
		case errors.Is(err, article.ErrDuplicateSlug):
			response.Error(c, http.StatusBadRequest, "article id already exists")
		case errors.Is(err, article.ErrArticleNotFound):
			response.Error(c, http.StatusNotFound, "article not found")
		default:
			response.InternalError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "article saved",
		"id":      slug,
	})
}

// Delete handles DELETE /api/articles/:slug
func (h *ArticleHandler) Delete(c *gin.Context) {
	slug := c.Param("slug")

	if err := h.service.Delete(c.Request.Context(), slug); err != nil {
		if errors.Is(err, article.ErrArticleNotFound) {
			response.Error(c, http.StatusNotFound, "article not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "article deleted")
}
