package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"shop-storefront/internal/models"
	"shop-storefront/internal/repository"
	"shop-storefront/internal/season"
	"shop-storefront/internal/session"
)

type OrderHandler struct {
	orders   *repository.OrderRepository
	carts    *repository.CartRepository
	sessions *session.Manager
	now      func() time.Time
}

func NewOrderHandler(orders *repository.OrderRepository, carts *repository.CartRepository, sessions *session.Manager) *OrderHandler {
	return &OrderHandler{
		orders:   orders,
		carts:    carts,
		sessions: sessions,
		now:      time.Now,
	}
}

type checkoutRequest struct {
	Shipping      models.Shipping `json:"shipping"`
	PaymentMethod string          `json:"paymentMethod"`
}

// POST /api/checkout
func (h *OrderHandler) Checkout(c *gin.Context) {
	// el cuerpo es opcional: sin envío ni método de pago se usan defaults
	var req checkoutRequest
	_ = c.ShouldBindJSON(&req)

	if req.PaymentMethod == "" {
		req.PaymentMethod = "cod"
	}

	cartID, err := h.sessions.CartID(c.Writer, c.Request)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "session error"})
		return
	}

	cart, err := h.carts.FindByCartID(c.Request.Context(), cartID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load cart"})
		return
	}

	if len(cart.Lines) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "cart is empty"})
		return
	}

	// se cobra el precio efectivo de temporada, nunca el de lista
	key := season.Resolve(h.now()).Key

	var total float64
	items := make([]models.OrderItem, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		unit := season.EffectivePrice(line.Product, key)
		total += unit * float64(line.Quantity)
		items = append(items, models.OrderItem{
			ProductID: line.Product.ProductID,
			Name:      line.Product.Name,
			Quantity:  line.Quantity,
			Price:     unit,
		})
	}

	userID, _ := h.sessions.UserID(c.Request)

	order := &models.Order{
		UserID:        userID,
		Shipping:      req.Shipping,
		PaymentMethod: req.PaymentMethod,
		Items:         items,
		Total:         total,
		FreeGifts:     season.GiftsForTotal(total, key),
	}

	if err := h.orders.Create(c.Request.Context(), order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to place order"})
		return
	}

	// vaciar el carrito después de confirmar el pedido
	if err := h.carts.Clear(c.Request.Context(), cartID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to clear cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"orderId":    order.ID.Hex(),
		"orderTotal": order.Total,
		"freeGifts":  order.FreeGifts,
	})
}

// GET /api/my-orders
func (h *OrderHandler) MyOrders(c *gin.Context) {
	userID, ok := h.sessions.UserID(c.Request)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "not logged in"})
		return
	}

	orders, err := h.orders.FindByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to list orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
}
