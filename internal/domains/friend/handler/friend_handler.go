package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blog-backend/internal/domains/friend"
	"blog-backend/internal/shared/response"
)

// FriendHandler handles HTTP requests for friend links
type FriendHandler struct {
	service friend.Service
}

// NewFriendHandler creates a new friend handler instance
func NewFriendHandler(service friend.Service) *FriendHandler {
	return &FriendHandler{service: service}
}

// List handles GET /api/friends
func (h *FriendHandler) List(c *gin.Context) {
	friends, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"friends": friends})
}

// Add handles POST /api/friends
func (h *FriendHandler) Add(c *gin.Context) {
	var req friend.AddFriendRequest

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
		"message": "friend added",
		"friend":  dto,
	})
}

// Update handles PUT /api/friends/:id
func (h *FriendHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid friend id")
		return
	}

	var req friend.UpdateFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	dto, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, friend.ErrFriendNotFound) {
			response.Error(c, http.StatusNotFound, "friend not found")
			return
		}
		response.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "friend updated",
		"friend":  dto,
	})
}

// Delete handles DELETE /api/friends/:id
func (h *FriendHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid friend id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, friend.ErrFriendNotFound) {
			response.Error(c, http.StatusNotFound, "friend not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "friend deleted")
}
