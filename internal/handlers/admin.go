package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"jewelhub/internal/apiclient"
	"jewelhub/internal/services"
)

const adminAccessRequired = "Admin access required. Please login with an admin account."

// AdminPage, platform özetini gösterir. 403 erişim reddi olarak, diğer
// hatalar genel hata olarak çizilir.
func (h *Handler) AdminPage(c *gin.Context) {
	stats, err := h.api.AdminDashboard(c.Request.Context())
	if err != nil {
		data := gin.H{"title": "Admin - JewelHub"}
		status := http.StatusBadGateway
		if apiclient.IsForbidden(err) {
			user := ""
			if u := h.session(c).User; u != nil {
				user = u.Email
			}
			h.security.LogSecurityEvent(services.EventAdminDenied, "user="+user, c.ClientIP())
			data["denied"] = true
			data["error"] = adminAccessRequired
			status = http.StatusForbidden
		} else {
			log.Printf("AdminPage - Failed to load stats: %v", err)
			data["error"] = "Failed to load stats"
		}
		c.HTML(status, "admin.html", h.page(c, data))
		return
	}
	c.HTML(http.StatusOK, "admin.html", h.page(c, gin.H{
		"title": "Admin - JewelHub",
		"stats": stats,
	}))
}
