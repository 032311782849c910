package handlers

import (
	"net/http"

	"studeaf/models"
	"studeaf/services/summary"
	"studeaf/utils"

	"github.com/gin-gonic/gin"
)

// SummaryHandler exposes lecture summary endpoints.
type SummaryHandler struct {
	Service summary.SummaryService
}

// NewSummaryHandler creates a new SummaryHandler instance.
func NewSummaryHandler(svc summary.SummaryService) *SummaryHandler {
	return &SummaryHandler{Service: svc}
}

// CreateDraftHandler handles POST /api/summaries.
func (h *SummaryHandler) CreateDraftHandler(c *gin.Context) {
	auth, ok := authFrom(c)
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
	draft, err := h.Service.CreateDraft(auth, req.Content)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, draft)
}

// GetSummaryHandler handles GET /api/summaries/:id.
func (h *SummaryHandler) GetSummaryHandler(c *gin.Context) {
	auth, ok := authFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.Service.GetSummary(auth, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ListSummariesHandler handles GET /api/summaries.
func (h *SummaryHandler) ListSummariesHandler(c *gin.Context) {
	auth, ok := authFrom(c)
	if !ok {
		return
	}
	views, err := h.Service.ListSummaries(auth)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// UpdateDraftHandler handles PUT /api/summaries/:id.
func (h *SummaryHandler) UpdateDraftHandler(c *gin.Context) {
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
	sum, err := h.Service.UpdateDraft(auth, id, req.Content)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

// PublishHandler handles POST /api/summaries/:id/publish.
func (h *SummaryHandler) PublishHandler(c *gin.Context) {
	auth, ok := authFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.SummaryPublish
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	sum, err := h.Service.Publish(auth, id, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

// DeleteSummaryHandler handles DELETE /api/summaries/:id.
func (h *SummaryHandler) DeleteSummaryHandler(c *gin.Context) {
	auth, ok := authFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Service.DeleteSummary(auth, id); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "summary deleted"})
}

// AddCommentHandler handles POST /api/summaries/:id/comments.
func (h *SummaryHandler) AddCommentHandler(c *gin.Context) {
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

// ToggleLikeHandler handles POST /api/summaries/:id/like.
func (h *SummaryHandler) ToggleLikeHandler(c *gin.Context) {
	auth, ok := authFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	on, err := h.Service.ToggleLike(auth, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"liked": on})
}

// ToggleBookmarkHandler handles POST /api/summaries/:id/bookmark.
func (h *SummaryHandler) ToggleBookmarkHandler(c *gin.Context) {
	auth, ok := authFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	on, err := h.Service.ToggleBookmark(auth, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookmarked": on})
}
