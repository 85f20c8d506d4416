package apiclient

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"jewelhub/internal/models"
)

// Upload, yüklenecek dosyadır. ContentType boşsa içerikten tahmin edilir.
type Upload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

func (c *Client) UploadLogo(ctx context.Context, file Upload) (*models.LogoUploadResult, error) {
	var out models.LogoUploadResult
	if err := c.upload(ctx, "/resellers/logo", file, "Failed to upload logo", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UploadBanner(ctx context.Context, file Upload) (*models.BannerUploadResult, error) {
	var out models.BannerUploadResult
	if err := c.upload(ctx, "/resellers/banner", file, "Failed to upload banner", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// upload, "file" alanlı multipart istek gönderir. Yalnızca Authorization
// başlığı eklenir; Content-Type multipart sınırını taşır.
func (c *Client) upload(ctx context.Context, endpoint string, file Upload, fallback string, out any) error {
	br := bufio.NewReader(file.Body)
	contentType := file.ContentType
	if contentType == "" || contentType == "application/octet-stream" {
		head, _ := br.Peek(512)
		contentType = http.DetectContentType(head)
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, escapeQuotes(file.Filename)))
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, br); err != nil {
		return fmt.Errorf("read upload %s: %w", file.Filename, err)
	}
	if err := mw.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+TokenFrom(ctx))

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("POST %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := fallback
		var payload struct {
			Detail any `json:"detail"`
		}
		if json.Unmarshal(data, &payload) == nil {
			if s, ok := payload.Detail.(string); ok && s != "" {
				msg = s
			}
		}
		return &Error{StatusCode: resp.StatusCode, Message: msg}
	}
	return json.Unmarshal(data, out)
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
