package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gerry-coffee/internal/domain"
)

func (h *handlers) listProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": h.app.Products()})
}

func (h *handlers) upsertProduct(c *gin.Context) {
	var p domain.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_body"})
		return
	}
	c.JSON(http.StatusOK, h.app.UpsertProduct(c.Request.Context(), p))
}

func (h *handlers) deleteProduct(c *gin.Context) {
	if err := h.app.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) listToppings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"toppings": h.app.Toppings()})
}

func (h *handlers) upsertTopping(c *gin.Context) {
	var t domain.Topping
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_body"})
		return
	}
	c.JSON(http.StatusOK, h.app.UpsertTopping(c.Request.Context(), t))
}

func (h *handlers) deleteTopping(c *gin.Context) {
	if err := h.app.DeleteTopping(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.app.Categories()})
}

func (h *handlers) upsertCategory(c *gin.Context) {
	var cat domain.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_body"})
		return
	}
	c.JSON(http.StatusOK, h.app.UpsertCategory(c.Request.Context(), cat))
}

func (h *handlers) deleteCategory(c *gin.Context) {
	if err := h.app.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) listCombos(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"combos": h.app.Combos()})
}

func (h *handlers) upsertCombo(c *gin.Context) {
	var combo domain.Combo
	if err := c.ShouldBindJSON(&combo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_body"})
		return
	}
	c.JSON(http.StatusOK, h.app.UpsertCombo(c.Request.Context(), combo))
}

func (h *handlers) deleteCombo(c *gin.Context) {
	if err := h.app.DeleteCombo(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) listPromotions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"promotions": h.app.Promotions()})
}

func (h *handlers) addPromotion(c *gin.Context) {
	var p domain.DiscountCode
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_body"})
		return
	}
	if p.Code == "" || len(p.ApplicableProductIDs) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "code and applicableProductIds are required"})
		return
	}
	c.JSON(http.StatusCreated, h.app.AddPromotion(c.Request.Context(), p))
}

func (h *handlers) deletePromotion(c *gin.Context) {
	if err := h.app.DeletePromotion(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) listBanners(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"banners": h.app.Banners()})
}

func (h *handlers) upsertBanner(c *gin.Context) {
	var b domain.Banner
	if err := c.ShouldBindJSON(&b); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_body"})
		return
	}
	c.JSON(http.StatusOK, h.app.UpsertBanner(c.Request.Context(), b))
}

func (h *handlers) deleteBanner(c *gin.Context) {
	if err := h.app.DeleteBanner(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) listOrders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"orders": h.app.Orders()})
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *handlers) updateOrderStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_body"})
		return
	}
	status := domain.OrderStatus(req.Status)
	if !domain.ValidOrderStatus(status) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unknown status"})
		return
	}
	order, err := h.app.UpdateOrderStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *handlers) listReservations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"reservations": h.app.Reservations()})
}

func (h *handlers) updateReservationStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_body"})
		return
	}
	r, err := h.app.UpdateReservationStatus(c.Request.Context(), c.Param("id"), domain.ReservationStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *handlers) listUsers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"users": h.app.Users()})
}

type roleRequest struct {
	Role string `json:"role" binding:"required"`
}

func (h *handlers) updateUserRole(c *gin.Context) {
	var req roleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_body"})
		return
	}
	u, err := h.app.UpdateUserRole(c.Request.Context(), c.Param("id"), domain.Role(req.Role))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *handlers) getSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.app.Settings())
}

func (h *handlers) updateSettings(c *gin.Context) {
	var s domain.BrandSettings
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_body"})
		return
	}
	c.JSON(http.StatusOK, h.app.UpdateSettings(c.Request.Context(), s))
}
