package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jewelhub/internal/models"
	"jewelhub/internal/services"
)

// HomePage, tanıtım sayfasını gösterir.
func (h *Handler) HomePage(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", h.page(c, gin.H{
		"title": "JewelHub - Launch your jewelry boutique",
	}))
}

// AcademyPage, eğitim içerikleri için yer tutucu sayfadır.
func (h *Handler) AcademyPage(c *gin.Context) {
	c.HTML(http.StatusOK, "academy.html", h.page(c, gin.H{
		"title": "Academy - JewelHub",
	}))
}

// LoginPage, giriş sayfasını gösterir.
func (h *Handler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", h.page(c, gin.H{
		"title": "Sign In - JewelHub",
		"reset": c.Query("reset") == "1",
	}))
}

// HandleLogin, girişi yapar ve kullanıcıyı rolüne göre yönlendirir.
func (h *Handler) HandleLogin(c *gin.Context) {
	var form models.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", h.page(c, gin.H{
			"title": "Sign In - JewelHub",
			"error": "Email and password are required",
			"email": form.Email,
		}))
		return
	}
	email := strings.TrimSpace(form.Email)

	tokens, err := h.api.Login(c.Request.Context(), email, form.Password)
	if err != nil {
		log.Printf("HandleLogin - login failed for %s: %v", email, err)
		h.security.LogSecurityEvent(services.EventLoginFailed, "email="+email, c.ClientIP())
		c.HTML(http.StatusUnauthorized, "login.html", h.page(c, gin.H{
			"title": "Sign In - JewelHub",
			"error": errorMessage(err, "Login failed"),
			"email": email,
		}))
		return
	}

	ctx := h.startSession(c, tokens.AccessToken)
	target, err := h.loadAccount(c, ctx)
	if err != nil {
		log.Printf("HandleLogin - account load error: %v", err)
		c.HTML(http.StatusBadGateway, "login.html", h.page(c, gin.H{
			"title": "Sign In - JewelHub",
			"error": errorMessage(err, "Login failed"),
			"email": email,
		}))
		return
	}
	log.Printf("HandleLogin - %s logged in, redirecting to %s", email, target)
	c.Redirect(http.StatusSeeOther, target)
}

// loadAccount, kullanıcıyı ve bayi ise profilini oturuma yükler ve
// girişten sonra gidilecek sayfayı döndürür.
func (h *Handler) loadAccount(c *gin.Context, ctx context.Context) (string, error) {
	sess := h.session(c)
	user, err := h.api.CurrentUser(ctx)
	if err != nil {
		return "", err
	}
	sess.SetUser(user)
	defer sess.SetLoading(false)

	switch {
	case user.IsReseller():
		reseller, err := h.api.ResellerProfile(ctx)
		if err != nil {
			return "", err
		}
		sess.SetReseller(reseller)
		if reseller.IsOnboarded {
			return "/dashboard", nil
		}
		return "/onboarding", nil
	case user.IsAdmin():
		return "/admin", nil
	default:
		return "/dashboard", nil
	}
}

// RegisterPage, kayıt formunun ilk adımını gösterir.
func (h *Handler) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", h.page(c, gin.H{
		"title": "Create your boutique - JewelHub",
		"step":  1,
	}))
}

// HandleRegister, iki adımlı kaydı yürütür. Birinci adım yalnızca şifreleri
// denetler; ikinci adım işletme adıyla hesabı oluşturur.
func (h *Handler) HandleRegister(c *gin.Context) {
	var form models.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		log.Printf("HandleRegister - bind error: %v", err)
	}
	form.Email = strings.TrimSpace(form.Email)

	render := func(status, step int, msg string) {
		c.HTML(status, "register.html", h.page(c, gin.H{
			"title": "Create your boutique - JewelHub",
			"step":  step,
			"error": msg,
			"form":  form,
		}))
	}

	if err := services.ValidateRegistration(form.Password, form.ConfirmPassword); err != nil {
		render(http.StatusBadRequest, 1, userMessage(err, "Registration failed"))
		return
	}
	if form.Email == "" {
		render(http.StatusBadRequest, 1, "Email is required")
		return
	}
	if form.Step < 2 {
		render(http.StatusOK, 2, "")
		return
	}

	form.BusinessName = strings.TrimSpace(form.BusinessName)
	if form.BusinessName == "" {
		render(http.StatusBadRequest, 2, "Business name is required")
		return
	}

	tokens, err := h.api.Register(c.Request.Context(), form.Email, form.Password, form.BusinessName)
	if err != nil {
		log.Printf("HandleRegister - register failed for %s: %v", form.Email, err)
		render(http.StatusBadRequest, 2, errorMessage(err, "Registration failed"))
		return
	}

	ctx := h.startSession(c, tokens.AccessToken)
	if _, err := h.loadAccount(c, ctx); err != nil {
		log.Printf("HandleRegister - account load error: %v", err)
		render(http.StatusBadGateway, 2, errorMessage(err, "Registration failed"))
		return
	}
	log.Printf("HandleRegister - new reseller %s", form.Email)
	c.Redirect(http.StatusSeeOther, "/onboarding")
}

// UserLogout, oturumu kapatır. Sepet korunur.
func (h *Handler) UserLogout(c *gin.Context) {
	h.endSession(c)
	c.Redirect(http.StatusSeeOther, "/")
}

// ForgotPasswordPage, şifremi unuttum sayfasını gösterir.
func (h *Handler) ForgotPasswordPage(c *gin.Context) {
	c.HTML(http.StatusOK, "forgot_password.html", h.page(c, gin.H{
		"title": "Forgot Password - JewelHub",
	}))
}

// HandleForgotPassword, sıfırlama bağlantısı ister. Backend, e-posta kayıtlı
// olmasa da aynı mesajı döndürür.
func (h *Handler) HandleForgotPassword(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	if email == "" {
		c.HTML(http.StatusBadRequest, "forgot_password.html", h.page(c, gin.H{
			"title": "Forgot Password - JewelHub",
			"error": "Email is required",
		}))
		return
	}
	msg, err := h.api.ForgotPassword(c.Request.Context(), email)
	if err != nil {
		log.Printf("HandleForgotPassword - error: %v", err)
		c.HTML(http.StatusBadGateway, "forgot_password.html", h.page(c, gin.H{
			"title": "Forgot Password - JewelHub",
			"error": errorMessage(err, "Failed to send reset link"),
			"email": email,
		}))
		return
	}
	c.HTML(http.StatusOK, "forgot_password.html", h.page(c, gin.H{
		"title":   "Forgot Password - JewelHub",
		"success": msg,
	}))
}

// ResetPasswordPage, token ile yeni şifre formunu gösterir.
func (h *Handler) ResetPasswordPage(c *gin.Context) {
	token := c.Query("token")
	data := gin.H{"title": "Reset Password - JewelHub", "token": token}
	if token == "" {
		data["error"] = "Invalid or missing reset token"
	}
	c.HTML(http.StatusOK, "reset_password.html", h.page(c, data))
}

// HandleResetPassword, yeni şifreyi backend'e gönderir.
func (h *Handler) HandleResetPassword(c *gin.Context) {
	token := c.PostForm("token")
	password := c.PostForm("password")
	confirm := c.PostForm("confirm_password")

	render := func(status int, msg string) {
		c.HTML(status, "reset_password.html", h.page(c, gin.H{
			"title": "Reset Password - JewelHub",
			"token": token,
			"error": msg,
		}))
	}
	if token == "" {
		render(http.StatusBadRequest, "Invalid or missing reset token")
		return
	}
	if err := services.ValidateRegistration(password, confirm); err != nil {
		render(http.StatusBadRequest, userMessage(err, "Failed to reset password"))
		return
	}
	if _, err := h.api.ResetPassword(c.Request.Context(), token, password); err != nil {
		log.Printf("HandleResetPassword - error: %v", err)
		render(http.StatusBadRequest, errorMessage(err, "Failed to reset password"))
		return
	}
	c.Redirect(http.StatusSeeOther, "/login?reset=1")
}
