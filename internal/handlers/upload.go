package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jewelhub/internal/apiclient"
)

// maxUploadSize, logo ve banner dosyaları için üst sınırdır.
const maxUploadSize = 5 << 20

var errUploadTooLarge = errors.New("upload exceeds 5MB")

// formUpload, formdaki dosyayı API yüklemesine çevirir. Dosya seçilmemişse
// nil döner. Dönen kapatma fonksiyonu çağrılmalıdır.
func formUpload(c *gin.Context, field string) (*apiclient.Upload, func(), error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, func() {}, nil
	}
	if err != nil {
		return nil, func() {}, err
	}
	if fh.Size > maxUploadSize {
		return nil, func() {}, errUploadTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return nil, func() {}, err
	}
	return &apiclient.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Body:        f,
	}, func() { f.Close() }, nil
}
