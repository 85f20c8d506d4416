package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes, tüm sayfa ve API rotalarını kaydeder.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.Use(h.VisitorMiddleware(), h.SameOriginMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", h.HomePage)
	r.GET("/academy", h.AcademyPage)

	// Kimlik doğrulama
	r.GET("/login", h.LoginPage)
	r.POST("/login", h.HandleLogin)
	r.GET("/register", h.RegisterPage)
	r.POST("/register", h.HandleRegister)
	r.GET("/logout", h.UserLogout)
	r.GET("/forgot-password", h.ForgotPasswordPage)
	r.POST("/forgot-password", h.HandleForgotPassword)
	r.GET("/reset-password", h.ResetPasswordPage)
	r.POST("/reset-password", h.HandleResetPassword)

	// Bayi paneli (korumalı)
	account := r.Group("/")
	account.Use(h.AuthUserMiddleware(), h.AccountMiddleware())
	{
		account.GET("/onboarding", h.OnboardingPage)
		account.POST("/onboarding/profile", h.HandleOnboardingProfile)
		account.POST("/onboarding/logo", h.HandleOnboardingLogo)
		account.POST("/onboarding/branding", h.HandleOnboardingBranding)
		account.POST("/onboarding/domain", h.HandleOnboardingDomain)

		account.GET("/dashboard", h.DashboardPage)
		account.GET("/dashboard/products", h.ProductsPage)
		account.POST("/dashboard/products/add", h.HandleAddProduct)
		account.POST("/dashboard/products/:id/update", h.HandleUpdateProduct)
		account.POST("/dashboard/products/:id/remove", h.HandleRemoveProduct)
		account.GET("/dashboard/orders", h.OrdersPage)
		account.GET("/dashboard/orders/:id", h.OrderDetailPage)
		account.GET("/dashboard/payouts", h.PayoutsPage)
		account.POST("/dashboard/payouts/request", h.HandlePayoutRequest)
		account.GET("/dashboard/settings", h.SettingsPage)
		account.POST("/dashboard/settings", h.HandleSaveSettings)
		account.POST("/dashboard/settings/logo", h.HandleUploadLogo)
		account.POST("/dashboard/settings/banner", h.HandleUploadBanner)
		account.POST("/dashboard/settings/publish", h.HandlePublish)

		account.GET("/admin", h.AdminPage)
	}

	// Vitrin (herkese açık)
	store := r.Group("/store/:slug")
	{
		store.GET("", h.StorePage)
		store.GET("/products/:productSlug", h.StoreProductPage)
		store.GET("/about", h.StoreAboutPage)
		store.GET("/contact", h.StoreContactPage)
		store.POST("/contact", h.HandleStoreContact)

		store.POST("/cart/add", h.AddToCart)
		store.POST("/cart/update", h.UpdateCartItem)
		store.POST("/cart/remove", h.RemoveFromCart)
		store.GET("/cart/count", h.GetCartCount)

		store.GET("/api/cart", h.APIGetCart)
		store.POST("/api/cart/add", h.APIAddToCart)
		store.POST("/api/cart/update", h.APIUpdateCartItem)
		store.POST("/api/cart/remove", h.APIRemoveFromCart)

		store.GET("/checkout", h.CheckoutPage)
		store.POST("/checkout", h.HandleCheckout)
		store.GET("/order-success", h.OrderSuccessPage)
	}

	r.NoRoute(func(c *gin.Context) {
		h.renderError(c, http.StatusNotFound, "Page not found")
	})
}
