package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-ordering/services"
	"github.com/yeremiapane/restaurant-ordering/utils"
)

type orderItemRequest struct {
	ItemID   string `json:"item_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"min=1"`
}

type createOrderRequest struct {
	CustomerName    string             `json:"customer_name" binding:"required"`
	CustomerEmail   string             `json:"customer_email" binding:"required"`
	CustomerAddress string             `json:"customer_address" binding:"required"`
	Items           []orderItemRequest `json:"items" binding:"required,min=1,dive"`
	Notes           *string            `json:"notes"`
}

func (r createOrderRequest) input() services.CreateOrderInput {
	items := make([]services.OrderItemInput, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, services.OrderItemInput{ItemID: item.ItemID, Quantity: item.Quantity})
	}
	return services.CreateOrderInput{
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerAddress: r.CustomerAddress,
		Items:           items,
		Notes:           r.Notes,
	}
}

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// CreateOrder -> POST /api/orders
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	order, err := oc.Orders.CreateOrder(c.Request.Context(), req.input())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, order)
}

// ListOrders -> GET /api/orders?limit=
func (oc *OrderController) ListOrders(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(services.DefaultOrderLimit)))
	if err != nil {
		utils.RespondDetail(c, http.StatusUnprocessableEntity, "limit must be an integer")
		return
	}

	orders, err := oc.Orders.ListOrders(c.Request.Context(), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, orders)
}
