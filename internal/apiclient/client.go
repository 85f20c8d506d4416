package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
)

const defaultErrorMessage = "An error occurred"

// Client, JewelHub REST backend'i ile konuşan istemcidir.
type Client struct {
	baseURL string
	http    *http.Client
}

// New, yeni bir Client oluşturur. httpClient nil ise http.DefaultClient kullanılır.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

type tokenKey struct{}

// WithToken, isteklerde kullanılacak bearer token'ı context'e koyar.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFrom, context'teki token'ı döndürür.
func TokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// Error, backend'in 2xx olmayan cevabını temsil eder.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// StatusCode, hata bir *Error ise HTTP durum kodunu, değilse 0 döndürür.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// do, tek istek yolu: JSON gövde, Content-Type ve varsa bearer token.
func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, endpoint, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := TokenFrom(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s %s: %w", method, endpoint, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{StatusCode: resp.StatusCode, Message: parseError(resp.StatusCode, data)}
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Printf("Client.do - %s %s decode error: %v", method, endpoint, err)
		return fmt.Errorf("decode %s %s: %w", method, endpoint, err)
	}
	return nil
}

// parseError, hata gövdesinden kullanıcıya gösterilecek mesajı çıkarır.
func parseError(status int, body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return defaultErrorMessage
	}
	detail := bytes.TrimSpace(payload.Detail)
	if len(detail) == 0 || bytes.Equal(detail, []byte("null")) {
		return defaultErrorMessage
	}

	if status == http.StatusUnprocessableEntity && detail[0] == '[' {
		var items []struct {
			Loc []any  `json:"loc"`
			Msg string `json:"msg"`
		}
		if err := json.Unmarshal(detail, &items); err == nil {
			messages := make([]string, 0, len(items))
			for _, item := range items {
				parts := make([]string, 0, len(item.Loc))
				for _, p := range item.Loc {
					parts = append(parts, fmt.Sprint(p))
				}
				messages = append(messages, strings.Join(parts, ".")+": "+item.Msg)
			}
			return strings.Join(messages, ", ")
		}
	}

	var s string
	if err := json.Unmarshal(detail, &s); err == nil {
		return s
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, detail); err != nil {
		return defaultErrorMessage
	}
	return compact.String()
}

// query, boş değerleri atlayarak sorgu dizesi üretir.
func query(params map[string]string) string {
	values := url.Values{}
	for k, v := range params {
		if v != "" {
			values.Set(k, v)
		}
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

// rawGet, ortak hata çözümlemesi olmadan GET yapar ve durum kodunu döndürür.
func (c *Client) rawGet(ctx context.Context, endpoint string, withToken bool, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return 0, err
	}
	if token := TokenFrom(ctx); withToken && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("GET %s: %w", endpoint, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("decode GET %s: %w", endpoint, err)
	}
	return resp.StatusCode, nil
}
