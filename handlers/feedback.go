package handlers

import (
	"net/http"

	"studeaf/models"
	"studeaf/services/feedback"
	"studeaf/utils"

	"github.com/gin-gonic/gin"
)

// FeedbackHandler exposes both feedback ledgers behind a :ledger path
// parameter ("system" or "dosen").
type FeedbackHandler struct {
	Service feedback.FeedbackService
}

// NewFeedbackHandler creates a new FeedbackHandler instance.
func NewFeedbackHandler(svc feedback.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{Service: svc}
}

func ledgerFrom(c *gin.Context) feedback.Ledger {
	return feedback.Ledger(c.Param("ledger"))
}

// SubmitHandler handles POST /api/feedback/:ledger.
func (h *FeedbackHandler) SubmitHandler(c *gin.Context) {
	auth, ok := authFrom(c)
	if !ok {
		return
	}
	var req models.FeedbackInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	entry, err := h.Service.Submit(auth, ledgerFrom(c), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GetOwnHandler handles GET /api/feedback/:ledger/mine.
func (h *FeedbackHandler) GetOwnHandler(c *gin.Context) {
	auth, ok := authFrom(c)
	if !ok {
		return
	}
	entry, err := h.Service.GetOwn(auth, ledgerFrom(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// UpdateHandler handles PUT /api/feedback/:ledger/:id.
func (h *FeedbackHandler) UpdateHandler(c *gin.Context) {
	auth, ok := authFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.FeedbackInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	entry, err := h.Service.Update(auth, ledgerFrom(c), id, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DeleteHandler handles DELETE /api/feedback/:ledger/:id.
func (h *FeedbackHandler) DeleteHandler(c *gin.Context) {
	auth, ok := authFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Service.Delete(auth, ledgerFrom(c), id); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "feedback deleted"})
}

// ListHandler handles GET /api/feedback/:ledger. Admin only.
func (h *FeedbackHandler) ListHandler(c *gin.Context) {
	auth, ok := authFrom(c)
	if !ok {
		return
	}
	offset, limit := pagination(c)
	entries, total, err := h.Service.List(auth, ledgerFrom(c), offset, limit)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": entries, "total": total})
}
