package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jewelhub/internal/apiclient"
	"jewelhub/internal/database"
	"jewelhub/internal/services"
	"jewelhub/internal/session"
	"jewelhub/web"
)

const storeJSON = `{"store":{"name":"Jaipur Gems","slug":"demo","primary_color":"#112233"},"config":null,"product_count":1}`

const productJSON = `{"id":7,"reseller_product_id":70,"name":"Kundan Ring","slug":"kundan-ring","price":"1499.00","in_stock":true,"images":[]}`

// fakeBackend, yol bazlı sabit cevaplar döndürür ve gelen istekleri sayar.
type fakeBackend struct {
	mu     sync.Mutex
	routes map[string]func(w http.ResponseWriter, r *http.Request)
	hits   map[string]int
}

func (b *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api")
	b.mu.Lock()
	b.hits[r.Method+" "+path]++
	fn, ok := b.routes[r.Method+" "+path]
	b.mu.Unlock()
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"detail":"Not found"}`)
		return
	}
	fn(w, r)
}

func (b *fakeBackend) count(key string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hits[key]
}

func reply(status int, body string) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

type testEnv struct {
	router   *gin.Engine
	backend  *fakeBackend
	signer   *session.Signer
	security *bytes.Buffer
}

func newTestEnv(t *testing.T, routes map[string]func(http.ResponseWriter, *http.Request)) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backend := &fakeBackend{routes: routes, hits: map[string]int{}}
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)

	api := apiclient.New(srv.URL+"/api", srv.Client())
	var secBuf bytes.Buffer
	security := services.NewSecurityLoggerTo(&secBuf)
	email := services.NewEmailService(services.EmailConfig{})
	signer := session.NewSigner("test-secret")

	h := NewHandler(Deps{
		API:      api,
		Sessions: session.NewStore(db, time.Hour),
		Signer:   signer,
		Cart:     services.NewCartService(db, time.Hour, false),
		Email:    email,
		Contact:  services.NewContactService(email, services.NewSpamDetector(), security, ""),
		Security: security,
	})

	renderer, err := LoadTemplates(web.Templates(), TemplateFuncs(api))
	require.NoError(t, err)

	r := gin.New()
	r.HTMLRender = renderer
	h.RegisterRoutes(r)
	return &testEnv{router: r, backend: backend, signer: signer, security: &secBuf}
}

func (e *testEnv) do(req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func cookieNamed(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestVisitorCookieIsIssuedAndSigned(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	c := cookieNamed(w, visitorCookie)
	require.NotNil(t, c)
	id, err := env.signer.Verify(c.Value)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.True(t, c.HttpOnly)
}

func TestTamperedVisitorCookieIsReplaced(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.do(httptest.NewRequest(http.MethodGet, "/healthz", nil), &http.Cookie{Name: visitorCookie, Value: "forged.value"})

	require.NotNil(t, cookieNamed(w, visitorCookie))
	assert.Contains(t, env.security.String(), services.EventBadSignature)
}

func TestGuardRedirectsWithoutToken(t *testing.T) {
	env := newTestEnv(t, nil)

	for _, path := range []string{"/dashboard", "/dashboard/products", "/onboarding", "/admin"} {
		w := env.do(httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusSeeOther, w.Code, path)
		assert.Equal(t, "/login", w.Header().Get("Location"), path)
	}
	assert.Zero(t, env.backend.count("GET /auth/me"))
}

func TestLoginRedirects(t *testing.T) {
	tests := []struct {
		name     string
		user     string
		reseller string
		want     string
	}{
		{"onboarded reseller", `{"id":1,"email":"a@b.com","role":"reseller"}`, `{"id":1,"slug":"demo","is_onboarded":true}`, "/dashboard"},
		{"new reseller", `{"id":1,"email":"a@b.com","role":"reseller"}`, `{"id":1,"slug":"demo","is_onboarded":false}`, "/onboarding"},
		{"admin", `{"id":2,"email":"root@b.com","role":"admin"}`, ``, "/admin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, map[string]func(http.ResponseWriter, *http.Request){
				"POST /auth/login/json":  reply(200, `{"access_token":"tok","token_type":"bearer"}`),
				"GET /auth/me":           reply(200, tt.user),
				"GET /resellers/profile": reply(200, tt.reseller),
			})

			w := env.do(postForm("/login", url.Values{"email": {"a@b.com"}, "password": {"secret123"}}))

			assert.Equal(t, http.StatusSeeOther, w.Code)
			assert.Equal(t, tt.want, w.Header().Get("Location"))
			token := cookieNamed(w, tokenCookie)
			require.NotNil(t, token)
			assert.Equal(t, "tok", token.Value)
		})
	}
}

func TestLoginFailureIsLogged(t *testing.T) {
	env := newTestEnv(t, map[string]func(http.ResponseWriter, *http.Request){
		"POST /auth/login/json": reply(401, `{"detail":"Incorrect email or password"}`),
	})

	w := env.do(postForm("/login", url.Values{"email": {"a@b.com"}, "password": {"wrong"}}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Incorrect email or password")
	assert.Contains(t, env.security.String(), services.EventLoginFailed)
	assert.Nil(t, cookieNamed(w, tokenCookie))
}

func TestRegisterStepOneRejectsMismatchedPasswords(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.do(postForm("/register", url.Values{
		"step":             {"1"},
		"email":            {"a@b.com"},
		"password":         {"secret123"},
		"confirm_password": {"secret124"},
	}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Passwords do not match")
	assert.Zero(t, env.backend.count("POST /auth/register/reseller"))
}

func TestAdminAccessDenied(t *testing.T) {
	env := newTestEnv(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /auth/me":           reply(200, `{"id":1,"email":"a@b.com","role":"reseller"}`),
		"GET /resellers/profile": reply(200, `{"id":1,"slug":"demo"}`),
		"GET /admin/dashboard":   reply(403, `{"detail":"Forbidden"}`),
	})

	w := env.do(httptest.NewRequest(http.MethodGet, "/admin", nil), &http.Cookie{Name: tokenCookie, Value: "tok"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Admin access required")
	assert.Contains(t, env.security.String(), services.EventAdminDenied)
}

func TestAdminStatsErrorIsNotAccessDenied(t *testing.T) {
	env := newTestEnv(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /auth/me":         reply(200, `{"id":2,"email":"root@b.com","role":"admin"}`),
		"GET /admin/dashboard": reply(500, `{"detail":"Internal Server Error"}`),
	})

	w := env.do(httptest.NewRequest(http.MethodGet, "/admin", nil), &http.Cookie{Name: tokenCookie, Value: "tok"})

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to load stats")
	assert.NotContains(t, w.Body.String(), "Admin access required")
	assert.NotContains(t, env.security.String(), services.EventAdminDenied)
}

func TestCrossOriginPostIsBlocked(t *testing.T) {
	routes := map[string]func(http.ResponseWriter, *http.Request){
		"GET /auth/me":                   reply(200, `{"id":1,"email":"a@b.com","role":"reseller"}`),
		"GET /resellers/profile":         reply(200, `{"id":1,"slug":"demo","is_onboarded":true}`),
		"DELETE /products/my-products/7": reply(200, `{}`),
		"GET /products/my-products":      reply(200, `{"items":[],"total":0}`),
	}
	token := &http.Cookie{Name: tokenCookie, Value: "tok"}

	t.Run("foreign origin", func(t *testing.T) {
		env := newTestEnv(t, routes)
		req := postForm("/dashboard/products/7/remove", nil)
		req.Header.Set("Origin", "https://evil.example")

		w := env.do(req, token)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Zero(t, env.backend.count("DELETE /products/my-products/7"))
		assert.Contains(t, env.security.String(), services.EventCrossOrigin)
	})

	t.Run("foreign referer", func(t *testing.T) {
		env := newTestEnv(t, routes)
		req := postForm("/store/demo/cart/add", url.Values{"product_slug": {"kundan-ring"}})
		req.Header.Set("Referer", "https://evil.example/page")

		w := env.do(req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Zero(t, env.backend.count("GET /store/demo/products/kundan-ring"))
	})

	t.Run("same origin", func(t *testing.T) {
		env := newTestEnv(t, routes)
		req := postForm("/dashboard/products/7/remove", nil)
		req.Header.Set("Origin", "http://example.com")

		w := env.do(req, token)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, env.backend.count("DELETE /products/my-products/7"))
		assert.Empty(t, env.security.String())
	})
}

func TestSessionCookiesAreSameSiteLax(t *testing.T) {
	env := newTestEnv(t, map[string]func(http.ResponseWriter, *http.Request){
		"POST /auth/login/json":  reply(200, `{"access_token":"tok","token_type":"bearer"}`),
		"GET /auth/me":           reply(200, `{"id":1,"email":"a@b.com","role":"reseller"}`),
		"GET /resellers/profile": reply(200, `{"id":1,"slug":"demo","is_onboarded":true}`),
	})

	w := env.do(postForm("/login", url.Values{"email": {"a@b.com"}, "password": {"secret123"}}))

	for _, name := range []string{visitorCookie, tokenCookie} {
		c := cookieNamed(w, name)
		require.NotNil(t, c, name)
		assert.Equal(t, http.SameSiteLaxMode, c.SameSite, name)
		assert.True(t, c.HttpOnly, name)
	}
}

func TestExpiredTokenEndsSession(t *testing.T) {
	env := newTestEnv(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /auth/me": reply(401, `{"detail":"Could not validate credentials"}`),
	})

	w := env.do(httptest.NewRequest(http.MethodGet, "/dashboard", nil), &http.Cookie{Name: tokenCookie, Value: "stale"})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	token := cookieNamed(w, tokenCookie)
	require.NotNil(t, token)
	assert.Empty(t, token.Value)
}

func TestCartAddUsesBackendPrice(t *testing.T) {
	env := newTestEnv(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /store/demo/products/kundan-ring": reply(200, productJSON),
	})

	body := strings.NewReader(`{"product_slug":"kundan-ring","price":"1"}`)
	req := httptest.NewRequest(http.MethodPost, "/store/demo/api/cart/add", body)
	req.Header.Set("Content-Type", "application/json")
	w := env.do(req)
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Success   bool   `json:"success"`
		ItemCount int    `json:"itemCount"`
		Total     string `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Success)
	assert.Equal(t, 1, res.ItemCount)
	assert.Equal(t, "1499", res.Total)

	visitor := cookieNamed(w, visitorCookie)
	require.NotNil(t, visitor)

	// Aynı ürün ikinci kez eklenince adet artar.
	req = httptest.NewRequest(http.MethodPost, "/store/demo/cart/add", strings.NewReader("product_slug=kundan-ring"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = env.do(req, visitor)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/store/demo?cart=open", w.Header().Get("Location"))

	w = env.do(httptest.NewRequest(http.MethodGet, "/store/demo/cart/count", nil), visitor)
	assert.JSONEq(t, `{"count":2}`, w.Body.String())
}

func TestCartAddUnknownProduct(t *testing.T) {
	env := newTestEnv(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/store/demo/api/cart/add", strings.NewReader(`{"product_slug":"missing"}`))
	req.Header.Set("Content-Type", "application/json")
	w := env.do(req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestCartAddRejectsOutOfStock(t *testing.T) {
	soldOut := strings.Replace(productJSON, `"in_stock":true`, `"in_stock":false`, 1)
	env := newTestEnv(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /store/demo":                      reply(200, storeJSON),
		"GET /store/demo/products/kundan-ring": reply(200, soldOut),
		"GET /store/demo/products":             reply(200, `{"products":[],"total":0,"page":1,"pages":1,"per_page":12}`),
		"GET /store/demo/categories":           reply(200, `[]`),
		"GET /store/demo/featured":             reply(200, `[]`),
	})

	req := httptest.NewRequest(http.MethodPost, "/store/demo/api/cart/add", strings.NewReader(`{"product_slug":"kundan-ring"}`))
	req.Header.Set("Content-Type", "application/json")
	w := env.do(req)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "out of stock")
	visitor := cookieNamed(w, visitorCookie)
	require.NotNil(t, visitor)

	w = env.do(postForm("/store/demo/cart/add", url.Values{"product_slug": {"kundan-ring"}}), visitor)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/store/demo?cart=open&cart_error=out_of_stock", w.Header().Get("Location"))

	w = env.do(httptest.NewRequest(http.MethodGet, "/store/demo/cart/count", nil), visitor)
	assert.JSONEq(t, `{"count":0}`, w.Body.String())

	w = env.do(httptest.NewRequest(http.MethodGet, "/store/demo?cart=open&cart_error=out_of_stock", nil), visitor)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "This piece is currently out of stock")
}

func TestCartFormAddUnknownProductShowsError(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.do(postForm("/store/demo/cart/add", url.Values{"product_slug": {"missing"}}))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/store/demo?cart=open&cart_error=unavailable", w.Header().Get("Location"))

	w = env.do(postForm("/store/demo/cart/update", url.Values{"product_id": {"x"}, "quantity": {"2"}}))
	assert.Equal(t, "/store/demo?cart=open&cart_error=update_failed", w.Header().Get("Location"))
}

func TestCheckoutWithEmptyCartRedirects(t *testing.T) {
	env := newTestEnv(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /store/demo":              reply(200, storeJSON),
		"POST /orders/storefront/demo": reply(200, `{"order_number":"JH-1"}`),
	})

	w := env.do(httptest.NewRequest(http.MethodGet, "/store/demo/checkout", nil))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/store/demo", w.Header().Get("Location"))

	w = env.do(postForm("/store/demo/checkout", url.Values{"customer_name": {"Asha"}}))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Zero(t, env.backend.count("POST /orders/storefront/demo"))
	assert.Zero(t, env.backend.count("GET /store/demo"))
}

func TestCheckoutPlacesOrderAndClearsCart(t *testing.T) {
	var sent map[string]any
	env := newTestEnv(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /store/demo":                      reply(200, storeJSON),
		"GET /store/demo/products/kundan-ring": reply(200, productJSON),
		"POST /orders/storefront/demo": func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&sent)
			reply(200, `{"order_number":"JH-1001","order_id":5,"total_amount":"1768.82"}`)(w, r)
		},
	})

	w := env.do(postForm("/store/demo/cart/add", url.Values{"product_slug": {"kundan-ring"}}))
	visitor := cookieNamed(w, visitorCookie)
	require.NotNil(t, visitor)

	w = env.do(postForm("/store/demo/checkout", url.Values{
		"customer_name":          {"Asha"},
		"customer_email":         {"asha@example.com"},
		"customer_phone":         {"+91 98765 43210"},
		"shipping_address_line1": {"12 MG Road"},
		"shipping_city":          {"Jaipur"},
		"shipping_state":         {"Rajasthan"},
		"shipping_postal_code":   {"302001"},
	}), visitor)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/store/demo/order-success?")
	assert.Contains(t, w.Header().Get("Location"), "order=JH-1001")

	require.NotNil(t, sent)
	assert.Equal(t, "India", sent["shipping_country"])
	items := sent["items"].([]any)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.EqualValues(t, 7, item["product_id"])
	assert.NotContains(t, item, "price")

	w = env.do(httptest.NewRequest(http.MethodGet, "/store/demo/cart/count", nil), visitor)
	assert.JSONEq(t, `{"count":0}`, w.Body.String())
}

func TestCheckoutMissingFieldsRerendersForm(t *testing.T) {
	env := newTestEnv(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /store/demo":                      reply(200, storeJSON),
		"GET /store/demo/products/kundan-ring": reply(200, productJSON),
	})

	w := env.do(postForm("/store/demo/cart/add", url.Values{"product_slug": {"kundan-ring"}}))
	visitor := cookieNamed(w, visitorCookie)

	w = env.do(postForm("/store/demo/checkout", url.Values{"customer_name": {"Asha"}}), visitor)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please fill in all required fields")
	assert.Zero(t, env.backend.count("POST /orders/storefront/demo"))
}

func TestStorePageRendersThemeAndProducts(t *testing.T) {
	env := newTestEnv(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /store/demo":            reply(200, storeJSON),
		"GET /store/demo/products":   reply(200, `{"products":[`+productJSON+`],"total":1,"page":1,"pages":1,"per_page":12}`),
		"GET /store/demo/categories": reply(200, `["rings"]`),
		"GET /store/demo/featured":   reply(200, `[]`),
	})

	w := env.do(httptest.NewRequest(http.MethodGet, "/store/demo", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Jaipur Gems")
	assert.Contains(t, body, "Kundan Ring")
	assert.Contains(t, body, "1,499")
}

func TestStorePageStoreNotFound(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.do(httptest.NewRequest(http.MethodGet, "/store/ghost", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestContactSpamIsRejected(t *testing.T) {
	env := newTestEnv(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /store/demo": reply(200, storeJSON),
	})

	w := env.do(postForm("/store/demo/contact", url.Values{
		"name":    {"Bot"},
		"email":   {"bot@example.com"},
		"message": {"Buy cheap viagra now, click here http://spam.example http://spam2.example http://spam3.example"},
	}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.security.String(), services.EventSpamContact)
}

func TestUnknownRouteRendersNotFound(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.do(httptest.NewRequest(http.MethodGet, "/no/such/page", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page not found")
}
