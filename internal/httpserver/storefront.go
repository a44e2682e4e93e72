package httpserver

import (
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gerry-coffee/internal/checkout"
	"gerry-coffee/internal/domain"
	"gerry-coffee/internal/state"
)

type menuProduct struct {
	domain.Product
	PriceL    float64 `json:"priceL"`
	PriceVND  int64   `json:"priceVnd"`
	PriceLVND int64   `json:"priceLVnd"`
}

type menuResponse struct {
	Brand      domain.BrandSettings `json:"brand"`
	Categories []domain.Category    `json:"categories"`
	Products   []menuProduct        `json:"products"`
	Toppings   []domain.Topping     `json:"toppings"`
	Combos     []domain.Combo       `json:"combos"`
	Banners    []domain.Banner      `json:"banners"`
}

func (h *handlers) menu(c *gin.Context) {
	upcharge := h.app.SizeUpcharge()
	rate := h.app.ExchangeRate()
	products := h.app.Products()
	items := make([]menuProduct, 0, len(products))
	for _, p := range products {
		priceL := p.Price + upcharge
		items = append(items, menuProduct{
			Product:   p,
			PriceL:    priceL,
			PriceVND:  int64(math.Round(p.Price * rate)),
			PriceLVND: int64(math.Round(priceL * rate)),
		})
	}

	banners := make([]domain.Banner, 0)
	for _, b := range h.app.Banners() {
		if b.IsActive {
			banners = append(banners, b)
		}
	}

	c.JSON(http.StatusOK, menuResponse{
		Brand:      h.app.Settings(),
		Categories: h.app.Categories(),
		Products:   items,
		Toppings:   h.app.Toppings(),
		Combos:     h.app.Combos(),
		Banners:    banners,
	})
}

func (h *handlers) activePromotions(c *gin.Context) {
	now := time.Now().UTC()
	active := make([]domain.DiscountCode, 0)
	for _, p := range h.app.Promotions() {
		if p.IsActive && !now.Before(p.StartDate) && !now.After(p.EndDate) {
			active = append(active, p)
		}
	}
	c.JSON(http.StatusOK, gin.H{"promotions": active})
}

type addItemRequest struct {
	ProductID  string   `json:"productId" binding:"required"`
	Size       string   `json:"size"`
	Note       string   `json:"note"`
	ToppingIDs []string `json:"toppingIds"`
}

type addComboRequest struct {
	ComboID string `json:"comboId" binding:"required"`
}

type updateQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

func (h *handlers) cart(c *gin.Context) {
	c.JSON(http.StatusOK, h.app.Cart())
}

func (h *handlers) addCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_body"})
		return
	}
	view, err := h.app.AddProductToCart(c.Request.Context(), req.ProductID, domain.Size(req.Size), req.Note, req.ToppingIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *handlers) addCartCombo(c *gin.Context) {
	var req addComboRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_body"})
		return
	}
	view, err := h.app.AddComboToCart(c.Request.Context(), req.ComboID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *handlers) updateCartItem(c *gin.Context) {
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_body"})
		return
	}
	view, err := h.app.UpdateCartQuantity(c.Request.Context(), c.Param("lineId"), req.Delta)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *handlers) removeCartItem(c *gin.Context) {
	view, err := h.app.RemoveCartLine(c.Request.Context(), c.Param("lineId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type previewRequest struct {
	Code string `json:"code" binding:"required"`
}

type previewResponse struct {
	Valid  bool    `json:"valid"`
	Code   string  `json:"code,omitempty"`
	Amount float64 `json:"amount"`
	Reason string  `json:"reason,omitempty"`
}

func (h *handlers) previewDiscount(c *gin.Context) {
	var req previewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_body"})
		return
	}
	res := h.app.PreviewDiscount(req.Code, time.Now().UTC())
	out := previewResponse{Valid: res.Valid, Amount: res.Amount, Reason: string(res.Reason)}
	if res.Valid {
		out.Code = res.Code.Code
		discountPreviews.WithLabelValues("valid").Inc()
	} else {
		discountPreviews.WithLabelValues(string(res.Reason)).Inc()
	}
	c.JSON(http.StatusOK, out)
}

type checkoutRequest struct {
	UserID        string `json:"userId"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	PaymentMethod string `json:"paymentMethod"`
	Note          string `json:"note"`
}

type receiptResponse struct {
	Order     domain.Order       `json:"order"`
	User      domain.User        `json:"user"`
	Breakdown checkout.Breakdown `json:"breakdown"`
}

func (h *handlers) checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_body"})
		return
	}
	details := checkout.Details{
		Name:          req.Name,
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
		Note:          req.Note,
	}
	receipt, err := h.app.Checkout(c.Request.Context(), req.UserID, req.Code, details, time.Now().UTC())
	if err != nil {
		checkoutRejected.WithLabelValues(rejectionLabel(err)).Inc()
		respondError(c, err)
		return
	}
	ordersSettled.Inc()
	c.JSON(http.StatusCreated, receiptResponse{Order: receipt.Order, User: receipt.User, Breakdown: receipt.Breakdown})
}

func (h *handlers) loyalty(c *gin.Context) {
	view, err := h.app.Loyalty(c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type reservationRequest struct {
	UserID    string    `json:"userId"`
	Name      string    `json:"name" binding:"required"`
	Phone     string    `json:"phone" binding:"required"`
	Email     string    `json:"email"`
	Note      string    `json:"note"`
	PartySize int       `json:"partySize" binding:"required"`
	TableID   string    `json:"tableId" binding:"required"`
	Datetime  time.Time `json:"datetime" binding:"required"`
}

func (h *handlers) createReservation(c *gin.Context) {
	var req reservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_body"})
		return
	}
	r, err := h.app.Book(c.Request.Context(), state.BookingRequest{
		UserID:    req.UserID,
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Note:      req.Note,
		PartySize: req.PartySize,
		TableID:   req.TableID,
		Datetime:  req.Datetime,
	}, time.Now().UTC())
	if err != nil {
		var bookErr *state.BookingError
		if errors.As(err, &bookErr) {
			reservationsRejected.WithLabelValues(string(bookErr.Reason)).Inc()
		}
		respondError(c, err)
		return
	}
	reservationsCreated.Inc()
	c.JSON(http.StatusCreated, r)
}

func (h *handlers) tableAvailability(c *gin.Context) {
	at := time.Now().UTC()
	if raw := c.Query("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_time"})
			return
		}
		at = parsed
	}
	c.JSON(http.StatusOK, h.app.Availability(at))
}

func rejectionLabel(err error) string {
	var codeErr *checkout.CodeError
	switch {
	case errors.As(err, &codeErr):
		return string(codeErr.Reason)
	case errors.Is(err, checkout.ErrEmptyCart):
		return "empty_cart"
	case errors.Is(err, checkout.ErrMissingName):
		return "missing_name"
	case errors.Is(err, domain.ErrNoUser):
		return "no_user"
	default:
		return "error"
	}
}

func respondError(c *gin.Context, err error) {
	var codeErr *checkout.CodeError
	var bookErr *state.BookingError
	switch {
	case errors.As(err, &codeErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid_code", "reason": string(codeErr.Reason)})
	case errors.As(err, &bookErr):
		c.JSON(http.StatusConflict, gin.H{"error": "booking_rejected", "reason": string(bookErr.Reason)})
	case errors.Is(err, domain.ErrNoUser):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "sign_in_required"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
	case errors.Is(err, domain.ErrUnavailable):
		c.JSON(http.StatusConflict, gin.H{"error": "unavailable"})
	case errors.Is(err, domain.ErrBadTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "bad_transition"})
	case errors.Is(err, checkout.ErrEmptyCart),
		errors.Is(err, checkout.ErrMissingName),
		errors.Is(err, state.ErrInvalidBooking),
		errors.Is(err, state.ErrInvalidRole):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
	}
}
