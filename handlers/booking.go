package handlers

import (
	"net/http"
	"strconv"

	"studeaf/middleware"
	"studeaf/models"
	"studeaf/services/booking"
	"studeaf/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the translator directory, order lifecycle and
// review ledger endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler creates a new BookingHandler instance.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

func authFrom(c *gin.Context) (models.AuthContext, bool) {
	auth, ok := middleware.GetAuthContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context")
	}
	return auth, ok
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "INVALID_ID", "invalid "+name)
		return 0, false
	}
	return id, true
}

func pagination(c *gin.Context) (offset, limit int64) {
	offset, _ = strconv.ParseInt(c.DefaultQuery("offset", "0"), 10, 64)
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	if err != nil || limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}

// CreateTranslatorHandler handles POST /api/translators.
func (h *BookingHandler) CreateTranslatorHandler(c *gin.Context) {
	auth, ok := authFrom(c)
	if !ok {
		return
	}
	var req struct {
		models.TranslatorProfile
		OwnerID int64 `json:"owner_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	translator, err := h.Service.CreateTranslator(auth, req.TranslatorProfile, req.OwnerID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, translator)
}

// GetTranslatorHandler handles GET /api/translators/:id.
func (h *BookingHandler) GetTranslatorHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	translator, err := h.Service.GetTranslator(id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, translator)
}

// ListTranslatorsHandler handles GET /api/translators.
func (h *BookingHandler) ListTranslatorsHandler(c *gin.Context) {
	offset, limit := pagination(c)
	translators, total, err := h.Service.ListTranslators(offset, limit)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": translators, "total": total})
}

// UpdateTranslatorHandler handles PUT /api/translators/:id.
func (h *BookingHandler) UpdateTranslatorHandler(c *gin.Context) {
	auth, ok := authFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.TranslatorProfile
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	translator, err := h.Service.UpdateTranslator(auth, id, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, translator)
}

// DeleteTranslatorHandler handles DELETE /api/translators/:id.
func (h *BookingHandler) DeleteTranslatorHandler(c *gin.Context) {
	auth, ok := authFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Service.DeleteTranslator(auth, id); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "translator deleted"})
}

// CreateOrderHandler handles POST /api/translators/:id/orders.
func (h *BookingHandler) CreateOrderHandler(c *gin.Context) {
	auth, ok := authFrom(c)
	if !ok {
		return
	}
	translatorID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.OrderDetails
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	order, err := h.Service.CreateOrder(auth, translatorID, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// GetOrderHandler handles GET /api/orders/:id.
func (h *BookingHandler) GetOrderHandler(c *gin.Context) {
	auth, ok := authFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	order, err := h.Service.GetOrder(auth, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateOrderStatusHandler handles PUT /api/orders/:id/status.
func (h *BookingHandler) UpdateOrderStatusHandler(c *gin.Context) {
	auth, ok := authFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	target, err := models.ParseOrderStatus(req.Status)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "INVALID_STATUS", err.Error())
		return
	}
	order, err := h.Service.UpdateOrderStatus(auth, id, target)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// CompleteOrderHandler handles POST /api/orders/:id/complete.
func (h *BookingHandler) CompleteOrderHandler(c *gin.Context) {
	auth, ok := authFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	order, err := h.Service.CompleteOrder(auth, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// ListUserOrdersHandler handles GET /api/orders/mine.
func (h *BookingHandler) ListUserOrdersHandler(c *gin.Context) {
	auth, ok := authFrom(c)
	if !ok {
		return
	}
	offset, limit := pagination(c)
	orders, total, err := h.Service.ListUserOrders(auth, offset, limit)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": orders, "total": total})
}

// ListTranslatorOrdersHandler handles GET /api/orders/incoming.
func (h *BookingHandler) ListTranslatorOrdersHandler(c *gin.Context) {
	auth, ok := authFrom(c)
	if !ok {
		return
	}
	offset, limit := pagination(c)
	orders, total, err := h.Service.ListTranslatorOrders(auth, offset, limit)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": orders, "total": total})
}

// CreateReviewHandler handles POST /api/orders/:id/review.
func (h *BookingHandler) CreateReviewHandler(c *gin.Context) {
	auth, ok := authFrom(c)
	if !ok {
		return
	}
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.ReviewInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	review, err := h.Service.CreateReview(auth, orderID, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

// UpdateReviewHandler handles PUT /api/orders/:id/review.
func (h *BookingHandler) UpdateReviewHandler(c *gin.Context) {
	auth, ok := authFrom(c)
	if !ok {
		return
	}
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.ReviewInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	review, err := h.Service.UpdateReview(auth, orderID, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

// GetReviewHandler handles GET /api/orders/:id/review.
func (h *BookingHandler) GetReviewHandler(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	review, err := h.Service.GetReview(orderID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

// ListTranslatorReviewsHandler handles GET /api/translators/:id/reviews.
func (h *BookingHandler) ListTranslatorReviewsHandler(c *gin.Context) {
	translatorID, ok := pathID(c, "id")
	if !ok {
		return
	}
	offset, limit := pagination(c)
	reviews, total, err := h.Service.ListTranslatorReviews(translatorID, offset, limit)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": reviews, "total": total})
}

// DeleteReviewHandler handles DELETE /api/reviews/:id.
func (h *BookingHandler) DeleteReviewHandler(c *gin.Context) {
	auth, ok := authFrom(c)
	if !ok {
		return
	}
	reviewID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Service.DeleteReview(auth, reviewID); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "review deleted"})
}
