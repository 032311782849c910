package handlers

import (
	"net/http"

	"studeaf/models"
	"studeaf/services/forum"
	"studeaf/utils"

	"github.com/gin-gonic/gin"
)

// ForumHandler exposes discussion forum endpoints.
type ForumHandler struct {
	Service forum.ForumService
}

// NewForumHandler creates a new ForumHandler instance.
func NewForumHandler(svc forum.ForumService) *ForumHandler {
	return &ForumHandler{Service: svc}
}

// CreatePostHandler handles POST /api/forums.
func (h *ForumHandler) CreatePostHandler(c *gin.Context) {
	auth, ok := authFrom(c)
	if !ok {
		return
	}
	var req models.ForumInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	post, err := h.Service.CreatePost(auth, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// GetPostHandler handles GET /api/forums/:id.
func (h *ForumHandler) GetPostHandler(c *gin.Context) {
	auth, ok := authFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.Service.GetPost(auth, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ListPostsHandler handles GET /api/forums with optional topic and search
// query parameters.
func (h *ForumHandler) ListPostsHandler(c *gin.Context) {
	auth, ok := authFrom(c)
	if !ok {
		return
	}
	var filter models.ForumFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	views, err := h.Service.ListPosts(auth, filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// UpdatePostHandler handles PUT /api/forums/:id.
func (h *ForumHandler) UpdatePostHandler(c *gin.Context) {
	auth, ok := authFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.ForumInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	post, err := h.Service.UpdatePost(auth, id, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// DeletePostHandler handles DELETE /api/forums/:id.
func (h *ForumHandler) DeletePostHandler(c *gin.Context) {
	auth, ok := authFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Service.DeletePost(auth, id); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}

// AddCommentHandler handles POST /api/forums/:id/comments.
func (h *ForumHandler) AddCommentHandler(c *gin.Context) {
	auth, ok := authFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	comment, err := h.Service.AddComment(auth, id, req.Content)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// ToggleLikeHandler handles POST /api/forums/:id/like.
func (h *ForumHandler) ToggleLikeHandler(c *gin.Context) {
	auth, ok := authFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	liked, err := h.Service.ToggleLike(auth, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"liked": liked})
}
