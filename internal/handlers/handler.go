package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jewelhub/internal/apiclient"
	"jewelhub/internal/services"
	"jewelhub/internal/session"
)

// Çerez adları
const (
	visitorCookie = "visitor"
	tokenCookie   = "token"
)

// gin context anahtarları
const (
	ctxVisitor = "visitor"
	ctxSession = "session"
)

const visitorCookieAge = 365 * 24 * 3600

// Deps, Handler bağımlılıklarıdır.
type Deps struct {
	API          *apiclient.Client
	Sessions     *session.Store
	Signer       *session.Signer
	Cart         *services.CartService
	Email        *services.EmailService
	Contact      *services.ContactService
	Security     *services.SecurityLogger
	CookieSecure bool
	// TokenTTL, JWT exp okunamazsa token çerezinin ömrüdür.
	TokenTTL time.Duration
}

// Handler, HTTP isteklerini yönetir.
type Handler struct {
	api          *apiclient.Client
	sessions     *session.Store
	signer       *session.Signer
	cartService  *services.CartService
	email        *services.EmailService
	contact      *services.ContactService
	security     *services.SecurityLogger
	cookieSecure bool
	tokenTTL     time.Duration
}

// NewHandler, yeni bir Handler örneği oluşturur.
func NewHandler(d Deps) *Handler {
	if d.TokenTTL <= 0 {
		d.TokenTTL = 24 * time.Hour
	}
	return &Handler{
		api:          d.API,
		sessions:     d.Sessions,
		signer:       d.Signer,
		cartService:  d.Cart,
		email:        d.Email,
		contact:      d.Contact,
		security:     d.Security,
		cookieSecure: d.CookieSecure,
		tokenTTL:     d.TokenTTL,
	}
}

// VisitorMiddleware, imzalı ziyaretçi çerezini garanti eder, kayıtlı
// oturumu yükler ve token'ı API istemcisi için istek context'ine koyar.
func (h *Handler) VisitorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		visitorID := ""
		if signed, err := c.Cookie(visitorCookie); err == nil && signed != "" {
			if id, err := h.signer.Verify(signed); err == nil {
				visitorID = id
			} else {
				h.security.LogSecurityEvent(services.EventBadSignature, "visitor cookie rejected", c.ClientIP())
			}
		}
		if visitorID == "" {
			visitorID = generateVisitorID()
			h.setCookie(c, visitorCookie, h.signer.Sign(visitorID), visitorCookieAge)
		}

		sess, err := h.sessions.Load(c.Request.Context(), visitorID)
		if err != nil {
			log.Printf("VisitorMiddleware - session load error: %v", err)
		}

		c.Set(ctxVisitor, visitorID)
		c.Set(ctxSession, sess)
		if sess.Token != "" {
			c.Request = c.Request.WithContext(apiclient.WithToken(c.Request.Context(), sess.Token))
		}
		c.Next()
	}
}

// SameOriginMiddleware, durum değiştiren istekleri yalnızca aynı kökenden
// kabul eder. Origin yoksa Referer'a bakılır, ikisi de yoksa istek geçer.
func (h *Handler) SameOriginMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}
		source := c.GetHeader("Origin")
		if source == "" {
			source = c.GetHeader("Referer")
		}
		if source == "" || sameHost(source, c.Request.Host) {
			c.Next()
			return
		}
		h.security.LogSecurityEvent(services.EventCrossOrigin, fmt.Sprintf("%s %s from %s", c.Request.Method, c.Request.URL.Path, source), c.ClientIP())
		h.renderError(c, http.StatusForbidden, "Request blocked")
		c.Abort()
	}
}

func sameHost(rawURL, host string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return false
	}
	return strings.EqualFold(u.Host, host)
}

// AuthUserMiddleware, token çerezi yoksa /login'e yönlendirir. Token'ın
// geçerliliğini backend denetler.
func (h *Handler) AuthUserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(tokenCookie)
		if err != nil || token == "" {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// AccountMiddleware, korumalı sayfalar için kullanıcıyı ve bayi profilini
// backend'den yeniden alır. 401 gelirse oturum kapatılır.
func (h *Handler) AccountMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := h.session(c)
		ctx := c.Request.Context()

		user, err := h.api.CurrentUser(ctx)
		if err != nil {
			if apiclient.StatusCode(err) == http.StatusUnauthorized {
				log.Printf("AccountMiddleware - token rejected, logging out")
				h.endSession(c)
				c.Redirect(http.StatusSeeOther, "/login")
				c.Abort()
				return
			}
			log.Printf("AccountMiddleware - current user error: %v", err)
		} else {
			sess.SetUser(user)
			if user.IsReseller() {
				reseller, err := h.api.ResellerProfile(ctx)
				if err != nil {
					log.Printf("AccountMiddleware - reseller profile error: %v", err)
				} else {
					sess.SetReseller(reseller)
				}
			}
		}
		sess.SetLoading(false)
		c.Next()
	}
}

func (h *Handler) visitor(c *gin.Context) string {
	return c.GetString(ctxVisitor)
}

func (h *Handler) session(c *gin.Context) *session.Session {
	if v, ok := c.Get(ctxSession); ok {
		if s, ok := v.(*session.Session); ok {
			return s
		}
	}
	s := session.New()
	c.Set(ctxSession, s)
	return s
}

// startSession, token'ı oturuma yazar, kaydeder ve token çerezini ayarlar.
// Dönen context sonraki API çağrılarında token'ı taşır.
func (h *Handler) startSession(c *gin.Context, token string) context.Context {
	sess := h.session(c)
	sess.SetToken(token)
	if err := h.sessions.Save(c.Request.Context(), h.visitor(c), sess); err != nil {
		log.Printf("startSession - save error: %v", err)
	}
	maxAge := session.CookieMaxAge(token, time.Now(), h.tokenTTL)
	h.setCookie(c, tokenCookie, token, maxAge)

	ctx := apiclient.WithToken(c.Request.Context(), token)
	c.Request = c.Request.WithContext(ctx)
	return ctx
}

// endSession, token, kullanıcı ve bayiyi temizler. Sepet korunur.
func (h *Handler) endSession(c *gin.Context) {
	sess := h.session(c)
	sess.Logout()
	if err := h.sessions.Save(c.Request.Context(), h.visitor(c), sess); err != nil {
		log.Printf("endSession - save error: %v", err)
	}
	h.setCookie(c, tokenCookie, "", -1)
	c.Request = c.Request.WithContext(apiclient.WithToken(c.Request.Context(), ""))
}

// setCookie, çerezleri SameSite=Lax ve HttpOnly olarak yazar.
func (h *Handler) setCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", h.cookieSecure, true)
}

// page, şablona ortak oturum verilerini ekler.
func (h *Handler) page(c *gin.Context, data gin.H) gin.H {
	sess := h.session(c)
	data["user"] = sess.User
	data["reseller"] = sess.Reseller
	data["loggedIn"] = sess.Authenticated()
	data["path"] = c.Request.URL.Path
	return data
}

// errorMessage, backend mesajını, yoksa userMessage sonucunu döndürür.
func errorMessage(err error, fallback string) string {
	var apiErr *apiclient.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return userMessage(err, fallback)
}

func generateVisitorID() string {
	return uuid.New().String()
}
