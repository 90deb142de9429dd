package handlers

import (
	"net/http"

	"github.com/Weryck-Lemos/ElectroStock/internal/services"

	"github.com/gin-gonic/gin"
)

// OrderItemHandler exposes direct order-line administration (admin only).
type OrderItemHandler struct {
	orderItemService services.OrderItemService
}

func NewOrderItemHandler(orderItemService services.OrderItemService) *OrderItemHandler {
	return &OrderItemHandler{orderItemService: orderItemService}
}

type UpdateOrderItemRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

func (h *OrderItemHandler) List(c *gin.Context) {
	orderItems, err := h.orderItemService.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderItems)
}

func (h *OrderItemHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	orderItem, err := h.orderItemService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderItem)
}

func (h *OrderItemHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	orderItem, err := h.orderItemService.UpdateQuantity(id, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderItem)
}

func (h *OrderItemHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.orderItemService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "order item deleted and stock restored"})
}
