package handlers

import (
	"net/http"

	"github.com/Weryck-Lemos/ElectroStock/internal/models"
	"github.com/Weryck-Lemos/ElectroStock/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

type OrderLineRequest struct {
	ItemID   uint `json:"item_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,gt=0"`
}

type CreateOrderRequest struct {
	Items []OrderLineRequest `json:"items" binding:"required,min=1,dive"`
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	lines := make([]services.OrderLine, 0, len(req.Items))
	for _, line := range req.Items {
		lines = append(lines, services.OrderLine{ItemID: line.ItemID, Quantity: line.Quantity})
	}

	order, err := h.orderService.Place(CurrentUser(c).ID, lines)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) MyOrders(c *gin.Context) {
	orders, err := h.orderService.GetByUser(CurrentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orderService.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Get(c *gin.Context) {
	order, ok := h.ownedOrder(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	order, ok := h.ownedOrder(c)
	if !ok {
		return
	}

	if err := h.orderService.Delete(order.ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "order deleted and stock restored"})
}

// Admin status transitions

func (h *OrderHandler) Approve(c *gin.Context) {
	h.transition(c, h.orderService.Approve)
}

func (h *OrderHandler) Reject(c *gin.Context) {
	h.transition(c, h.orderService.Reject)
}

func (h *OrderHandler) Finish(c *gin.Context) {
	h.transition(c, h.orderService.Finish)
}

func (h *OrderHandler) transition(c *gin.Context, fn func(id uint) (*models.Order, error)) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := fn(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// ownedOrder loads the order and enforces owner-or-admin access.
func (h *OrderHandler) ownedOrder(c *gin.Context) (*models.Order, bool) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil, false
	}

	order, err := h.orderService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return nil, false
	}

	user := CurrentUser(c)
	if user.Role != string(models.RoleAdmin) && order.UserID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "you cannot access this order"})
		return nil, false
	}
	return order, true
}
