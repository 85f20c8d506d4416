package apiclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jewelhub/internal/models"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/api", srv.Client())
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"validation list", 422, `{"detail":[{"loc":["body","email"],"msg":"invalid"}]}`, "body.email: invalid"},
		{"validation list with index", 422, `{"detail":[{"loc":["body","items",0,"quantity"],"msg":"bad"},{"loc":["query","page"],"msg":"low"}]}`, "body.items.0.quantity: bad, query.page: low"},
		{"string detail", 400, `{"detail":"Email already registered"}`, "Email already registered"},
		{"object detail", 400, `{"detail":{"code":"x"}}`, `{"code":"x"}`},
		{"list detail outside 422", 400, `{"detail":["a","b"]}`, `["a","b"]`},
		{"missing detail", 500, `{"error":"boom"}`, "An error occurred"},
		{"null detail", 500, `{"detail":null}`, "An error occurred"},
		{"not json", 502, `<html>bad gateway</html>`, "An error occurred"},
		{"empty body", 500, ``, "An error occurred"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseError(tt.status, []byte(tt.body)))
		})
	}
}

func TestDoReturnsTypedError(t *testing.T) {
	c := newTestClient(t, respond(422, `{"detail":[{"loc":["body","email"],"msg":"invalid"}]}`))

	_, err := c.Login(context.Background(), "a@b.c", "pw")
	require.Error(t, err)
	assert.Equal(t, "body.email: invalid", err.Error())
	assert.Equal(t, 422, StatusCode(err))
}

func TestBearerTokenFromContext(t *testing.T) {
	var gotAuth, gotType string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		respond(200, `{"id":7,"email":"r@x.in","role":"reseller"}`)(w, r)
	})

	user, err := c.CurrentUser(WithToken(context.Background(), "tok"))
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "application/json", gotType)
	assert.True(t, user.IsReseller())

	_, err = c.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestQueryOmitsEmptyValues(t *testing.T) {
	var gotURL string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.RequestURI()
		respond(200, `{"products":[],"total":0,"page":1,"pages":0,"per_page":20}`)(w, r)
	})

	_, err := c.StorefrontProducts(context.Background(), "gems", models.CatalogQuery{Category: "Rings"})
	require.NoError(t, err)
	assert.Equal(t, "/api/store/gems/products?category=Rings", gotURL)

	_, err = c.StorefrontProducts(context.Background(), "gems", models.CatalogQuery{})
	require.NoError(t, err)
	assert.Equal(t, "/api/store/gems/products", gotURL)
}

func TestCreateOrderSendsNoPrice(t *testing.T) {
	var body map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/orders/storefront/gems", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		respond(200, `{"order_number":"JH-1","order_id":3,"total_amount":250.5}`)(w, r)
	})

	res, err := c.CreateOrder(context.Background(), "gems", models.OrderCreate{
		CustomerName:  "Asha",
		CustomerEmail: "asha@example.com",
		Items:         []models.OrderItemRequest{{ProductID: 4, Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, "JH-1", res.OrderNumber)
	assert.True(t, res.TotalAmount.Equal(decimal.RequireFromString("250.5")))

	items := body["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, map[string]any{"product_id": float64(4), "quantity": float64(2)}, items[0])
}

func TestDecimalsAreSentAsNumbers(t *testing.T) {
	var raw string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		raw = string(b)
		respond(200, `{}`)(w, r)
	})

	err := c.AddProduct(context.Background(), models.AddProductRequest{ProductID: 1, RetailPrice: models.NewAmount(decimal.RequireFromString("1500.50"))})
	require.NoError(t, err)
	assert.Contains(t, raw, `"retail_price":1500.5`)

	price := models.NewAmount(decimal.NewFromInt(1800))
	err = c.UpdateMyProduct(context.Background(), 3, models.MyProductUpdate{RetailPrice: &price})
	require.NoError(t, err)
	assert.JSONEq(t, `{"retail_price":1800}`, raw)

	_, err = c.RequestPayout(context.Background(), models.PayoutRequest{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, raw)
}

func TestUploadLogo(t *testing.T) {
	var gotAuth, gotPartType, gotContent string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		f, fh, err := r.FormFile("file")
		require.NoError(t, err)
		b, _ := io.ReadAll(f)
		gotContent = string(b)
		gotPartType = fh.Header.Get("Content-Type")
		respond(200, `{"logo_url":"/uploads/logos/a.png"}`)(w, r)
	})

	ctx := WithToken(context.Background(), "tok")
	res, err := c.UploadLogo(ctx, Upload{Filename: "a.png", ContentType: "image/png", Body: strings.NewReader("PNGDATA")})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/logos/a.png", res.LogoURL)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "image/png", gotPartType)
	assert.Equal(t, "PNGDATA", gotContent)
}

func TestUploadErrors(t *testing.T) {
	c := newTestClient(t, respond(400, `{"detail":"Invalid file type. Allowed: JPEG, PNG, WebP, SVG"}`))
	_, err := c.UploadBanner(context.Background(), Upload{Filename: "a.txt", Body: strings.NewReader("x")})
	assert.EqualError(t, err, "Invalid file type. Allowed: JPEG, PNG, WebP, SVG")

	c = newTestClient(t, respond(500, `oops`))
	_, err = c.UploadLogo(context.Background(), Upload{Filename: "a.png", Body: strings.NewReader("x")})
	assert.EqualError(t, err, "Failed to upload logo")
	_, err = c.UploadBanner(context.Background(), Upload{Filename: "a.png", Body: strings.NewReader("x")})
	assert.EqualError(t, err, "Failed to upload banner")
}

func TestMediaURL(t *testing.T) {
	c := New("http://localhost:8000/api", nil)
	assert.Equal(t, "", c.MediaURL(""))
	assert.Equal(t, "https://cdn.example.com/a.png", c.MediaURL("https://cdn.example.com/a.png"))
	assert.Equal(t, "http://localhost:8000/uploads/a.png", c.MediaURL("/uploads/a.png"))
	assert.Equal(t, "http://localhost:8000/uploads/a.png", c.MediaURL("uploads/a.png"))

	noAPI := New("http://media.local", nil)
	assert.Equal(t, "http://media.local/x.png", noAPI.MediaURL("x.png"))
}

func TestStorefrontCategoriesIsGenericAndAnonymous(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		respond(404, `{"detail":"Store not found"}`)(w, r)
	})

	_, err := c.StorefrontCategories(WithToken(context.Background(), "tok"), "missing")
	assert.ErrorIs(t, err, ErrCategories)
	assert.Empty(t, gotAuth)
}

func TestAdminDashboardKeepsStatus(t *testing.T) {
	c := newTestClient(t, respond(403, `{"detail":"Admin access required"}`))
	_, err := c.AdminDashboard(WithToken(context.Background(), "tok"))
	require.Error(t, err)
	assert.True(t, IsForbidden(err))

	c = newTestClient(t, respond(200, `{"resellers":{"total":5,"active":4,"new_this_month":1},"revenue":{"total":1000.5}}`))
	stats, err := c.AdminDashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Resellers.Total)
	assert.True(t, stats.Revenue.Total.Equal(decimal.RequireFromString("1000.5")))
}

func TestOrdersUsesStatusFilter(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		respond(200, `[{"id":1,"order_number":"JH-1","status":"pending","created_at":"2024-02-01T09:00:00"}]`)(w, r)
	})

	orders, err := c.Orders(context.Background(), "pending", 0)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "status_filter=pending", gotQuery)
	assert.Equal(t, 2024, orders[0].CreatedAt.Year())
}
