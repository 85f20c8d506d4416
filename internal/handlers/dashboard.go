package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jewelhub/internal/apiclient"
	"jewelhub/internal/models"
	"jewelhub/internal/services"
)

const revenueDays = 30

// DashboardPage, bayi paneli özetini gösterir. İstatistikler alınamazsa
// hata loglanır ve sayfa boş değerlerle çizilir.
func (h *Handler) DashboardPage(c *gin.Context) {
	ctx := c.Request.Context()
	sess := h.session(c)
	if sess.User.IsAdmin() {
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}

	stats, err := h.api.DashboardStats(ctx)
	if err != nil {
		log.Printf("DashboardPage - Failed to load dashboard stats: %v", err)
		stats = &models.DashboardStats{}
	}
	status, err := h.api.OnboardingStatus(ctx)
	if err != nil {
		log.Printf("DashboardPage - onboarding status error: %v", err)
	}
	revenue, err := h.api.DashboardRevenue(ctx, revenueDays)
	if err != nil {
		log.Printf("DashboardPage - revenue error: %v", err)
	}

	c.HTML(http.StatusOK, "dashboard.html", h.page(c, gin.H{
		"title":      "Dashboard - JewelHub",
		"active":     "dashboard",
		"stats":      stats,
		"onboarding": status,
		"revenue":    revenue,
	}))
}

// OrdersPage, siparişleri durum filtresiyle listeler.
func (h *Handler) OrdersPage(c *gin.Context) {
	status := c.Query("status")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	orders, err := h.api.Orders(c.Request.Context(), status, page)
	data := gin.H{
		"title":    "Orders - JewelHub",
		"active":   "orders",
		"orders":   orders,
		"status":   status,
		"statuses": models.OrderStatuses,
	}
	if err != nil {
		log.Printf("OrdersPage - Failed to load orders: %v", err)
		data["error"] = errorMessage(err, "Failed to load orders")
	}
	c.HTML(http.StatusOK, "dashboard_orders.html", h.page(c, data))
}

// OrderDetailPage, tek siparişin kalemlerini ve adresini gösterir.
func (h *Handler) OrderDetailPage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.renderError(c, http.StatusNotFound, "Order not found")
		return
	}
	order, err := h.api.Order(c.Request.Context(), id)
	if err != nil {
		log.Printf("OrderDetailPage - order %d: %v", id, err)
		status := http.StatusBadGateway
		if code := apiclient.StatusCode(err); code == http.StatusNotFound {
			status = code
		}
		h.renderError(c, status, errorMessage(err, "Failed to load order"))
		return
	}
	c.HTML(http.StatusOK, "order_detail.html", h.page(c, gin.H{
		"title":  "Order " + order.OrderNumber + " - JewelHub",
		"active": "orders",
		"order":  order,
	}))
}

// PayoutsPage, bakiye ve ödeme geçmişini gösterir.
func (h *Handler) PayoutsPage(c *gin.Context) {
	h.renderPayouts(c, http.StatusOK, "", "")
}

// HandlePayoutRequest, kullanılabilir bakiyenin tamamı için ödeme ister.
// Bakiye 100'ün altındaysa istek backend'e gitmez.
func (h *Handler) HandlePayoutRequest(c *gin.Context) {
	ctx := c.Request.Context()
	balance, err := h.api.PayoutBalance(ctx)
	if err != nil {
		log.Printf("HandlePayoutRequest - balance error: %v", err)
		h.renderPayouts(c, http.StatusBadGateway, "error", errorMessage(err, "Failed to request payout"))
		return
	}
	if err := services.ValidatePayout(balance.Available); err != nil {
		h.renderPayouts(c, http.StatusBadRequest, "error", userMessage(err, "Failed to request payout"))
		return
	}
	if _, err := h.api.RequestPayout(ctx, models.PayoutRequest{}); err != nil {
		log.Printf("HandlePayoutRequest - request error: %v", err)
		h.renderPayouts(c, http.StatusBadRequest, "error", errorMessage(err, "Failed to request payout"))
		return
	}
	log.Printf("HandlePayoutRequest - payout requested, available: %s", balance.Available)
	h.renderPayouts(c, http.StatusOK, "success", "Payout request submitted successfully!")
}

func (h *Handler) renderPayouts(c *gin.Context, status int, kind, msg string) {
	ctx := c.Request.Context()
	balance, err := h.api.PayoutBalance(ctx)
	if err != nil {
		log.Printf("renderPayouts - Failed to load payout data: %v", err)
		balance = &models.PayoutBalance{}
	}
	payouts, err := h.api.Payouts(ctx)
	if err != nil {
		log.Printf("renderPayouts - Failed to load payout data: %v", err)
	}
	c.HTML(status, "payouts.html", h.page(c, gin.H{
		"title":       "Payouts - JewelHub",
		"active":      "payouts",
		"balance":     balance,
		"payouts":     payouts,
		"canRequest":  services.ValidatePayout(balance.Available) == nil,
		"minimum":     services.MinimumPayout,
		"messageType": kind,
		"message":     msg,
	}))
}

// renderError, genel hata sayfasını çizer.
func (h *Handler) renderError(c *gin.Context, status int, msg string) {
	c.HTML(status, "error.html", h.page(c, gin.H{
		"title":   "Error - JewelHub",
		"status":  status,
		"message": msg,
	}))
}
