package apiclient

import "strings"

// MediaURL, backend'in döndürdüğü göreli yükleme yolunu tam adrese çevirir.
func (c *Client) MediaURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http") {
		return path
	}
	base := strings.TrimSuffix(c.baseURL, "/api")
	if !strings.HasPrefix(path, "/") {
		base += "/"
	}
	return base + path
}
