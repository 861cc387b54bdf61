package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shop-storefront/internal/models"
	"shop-storefront/internal/repository"
	"shop-storefront/internal/season"
	"shop-storefront/internal/session"
)

type CartHandler struct {
	carts    *repository.CartRepository
	products *repository.ProductRepository
	sessions *session.Manager
	now      func() time.Time
}

func NewCartHandler(carts *repository.CartRepository, products *repository.ProductRepository, sessions *session.Manager) *CartHandler {
	return &CartHandler{
		carts:    carts,
		products: products,
		sessions: sessions,
		now:      time.Now,
	}
}

type cartLineView struct {
	models.CartLine
	EffectivePrice float64 `json:"effectivePrice"`
}

type cartResponse struct {
	Cart    []cartLineView `json:"cart"`
	Total   float64        `json:"total"`
	Savings float64        `json:"savings"`
}

// view arma la respuesta del carrito con precios efectivos de la temporada
func (h *CartHandler) view(cart *models.Cart) cartResponse {
	key := season.Resolve(h.now()).Key

	lines := make([]cartLineView, 0, len(cart.Lines))
	var total, original float64
	for _, line := range cart.Lines {
		eff := season.EffectivePrice(line.Product, key)
		total += eff * float64(line.Quantity)
		original += line.Product.Price * float64(line.Quantity)
		lines = append(lines, cartLineView{CartLine: line, EffectivePrice: eff})
	}

	savings := original - total
	if savings < 0 {
		savings = 0
	}

	return cartResponse{Cart: lines, Total: total, Savings: savings}
}

// GET /api/cart
func (h *CartHandler) GetCart(c *gin.Context) {
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

	c.JSON(http.StatusOK, h.view(cart))
}

type addToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// POST /api/cart/add
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	product, err := h.products.FindByProductID(c.Request.Context(), req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid product"})
		return
	}

	qty := req.Quantity
	if qty <= 0 {
		qty = 1
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

	// mismo producto suma cantidad; si no, línea nueva con snapshot
	merged := false
	for i := range cart.Lines {
		if cart.Lines[i].Product.ProductID == req.ProductID {
			cart.Lines[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		cart.Lines = append(cart.Lines, models.CartLine{
			LineID:   uuid.NewString(),
			Product:  *product,
			Quantity: qty,
		})
	}

	if userID, ok := h.sessions.UserID(c.Request); ok {
		cart.UserID = userID
	}

	if err := h.carts.Save(c.Request.Context(), cart); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to save cart"})
		return
	}

	c.JSON(http.StatusOK, h.view(cart))
}

type removeFromCartRequest struct {
	ID string `json:"id" binding:"required"`
}

// POST /api/cart/remove
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	var req removeFromCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
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

	lines := cart.Lines[:0]
	for _, line := range cart.Lines {
		if line.LineID != req.ID {
			lines = append(lines, line)
		}
	}
	cart.Lines = lines

	if err := h.carts.Save(c.Request.Context(), cart); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to save cart"})
		return
	}

	c.JSON(http.StatusOK, h.view(cart))
}

// POST /api/cart/clear
func (h *CartHandler) ClearCart(c *gin.Context) {
	cartID, err := h.sessions.CartID(c.Writer, c.Request)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "session error"})
		return
	}

	if err := h.carts.Clear(c.Request.Context(), cartID); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to clear cart"})
		return
	}

	c.JSON(http.StatusOK, cartResponse{Cart: []cartLineView{}})
}
