package handlers

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"shop-storefront/internal/cache"
	"shop-storefront/internal/models"
	"shop-storefront/internal/recommend"
	"shop-storefront/internal/repository"
	"shop-storefront/internal/season"
)

// Estructuras para respuestas
type ErrorResponse struct {
	Error string `json:"error"`
}

type ProductHandler struct {
	repo  *repository.ProductRepository
	cache *cache.Cache
	now   func() time.Time
}

func NewProductHandler(repo *repository.ProductRepository) *ProductHandler {
	return &ProductHandler{
		repo:  repo,
		cache: cache.Get(),
		now:   time.Now,
	}
}

// GET /api/products (filtros: q, gender, category, minPrice)
func (h *ProductHandler) ListProducts(c *gin.Context) {
	f := repository.CatalogFilter{
		Query:    strings.ToLower(strings.TrimSpace(c.Query("q"))),
		Gender:   strings.ToLower(c.Query("gender")),
		Category: strings.ToLower(c.Query("category")),
	}
	if raw := c.Query("minPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			f.MinPrice = v
		}
	}

	cacheKey := fmt.Sprintf("products:list:q:%s_g:%s_cat:%s_min:%v",
		f.Query, f.Gender, f.Category, f.MinPrice)

	if cached, found := h.cache.GetValue(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	products, err := h.repo.FindAll(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list products"})
		return
	}

	h.cache.Set(cacheKey, products, 2*time.Minute)
	c.JSON(http.StatusOK, products)
}

// GET /api/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID := c.Param("id")
	cacheKey := fmt.Sprintf("product:%s", productID)

	if cached, found := h.cache.GetValue(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	product, err := h.repo.FindByProductID(c.Request.Context(), productID)
	if err != nil {
		if err.Error() == "product not found" {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get product"})
		return
	}

	h.cache.Set(cacheKey, product, 5*time.Minute)
	c.JSON(http.StatusOK, product)
}

// GET /api/recommend/:id
func (h *ProductHandler) Recommend(c *gin.Context) {
	snapshot, err := h.snapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load catalog"})
		return
	}

	// referencia inexistente devuelve lista vacía, no error
	recs := recommend.Recommend(snapshot, c.Param("id"), recommend.DefaultLimit)
	c.JSON(http.StatusOK, recs)
}

// GET /api/season
func (h *ProductHandler) GetSeason(c *gin.Context) {
	c.JSON(http.StatusOK, season.Resolve(h.now()))
}

// GET /api/sale
func (h *ProductHandler) ListSale(c *gin.Context) {
	active := season.Resolve(h.now())

	snapshot, err := h.snapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load catalog"})
		return
	}

	sale := make([]models.DecoratedProduct, 0)
	for _, p := range snapshot {
		if !season.Eligible(p, active.Key) {
			continue
		}
		if dec := season.Decorate(p, active.Key); dec != nil {
			sale = append(sale, *dec)
		}
	}

	// mayor descuento primero; a igual descuento, el más caro primero
	sort.SliceStable(sale, func(i, j int) bool {
		if sale[i].DiscountPercent != sale[j].DiscountPercent {
			return sale[i].DiscountPercent > sale[j].DiscountPercent
		}
		return sale[i].Price > sale[j].Price
	})

	c.JSON(http.StatusOK, gin.H{"season": active, "products": sale})
}

// snapshot devuelve el catálogo completo, cacheado un minuto
func (h *ProductHandler) snapshot(ctx context.Context) ([]models.Product, error) {
	if cached, found := h.cache.GetValue("products:snapshot"); found {
		if products, ok := cached.([]models.Product); ok {
			return products, nil
		}
	}

	products, err := h.repo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	h.cache.Set("products:snapshot", products, time.Minute)
	return products, nil
}
