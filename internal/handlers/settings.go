package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jewelhub/internal/models"
	"jewelhub/internal/services"
	"jewelhub/internal/theme"
)

const defaultSettingsColor = "#8B5CF6"

// settingsForm, ayarlar sayfasındaki düzenlenebilir alanlardır.
type settingsForm struct {
	BusinessName string             `form:"business_name"`
	Description  string             `form:"description"`
	Phone        string             `form:"phone"`
	Address      string             `form:"address"`
	PrimaryColor string             `form:"primary_color"`
	LogoURL      string             `form:"logo_url"`
	BannerURL    string             `form:"banner_url"`
	Theme        string             `form:"theme"`
	Social       models.SocialLinks `form:"-"`
}

func (f *settingsForm) bindSocial(c *gin.Context) {
	f.Social = models.SocialLinks{
		Instagram: strings.TrimSpace(c.PostForm("instagram")),
		Facebook:  strings.TrimSpace(c.PostForm("facebook")),
		Twitter:   strings.TrimSpace(c.PostForm("twitter")),
		Whatsapp:  strings.TrimSpace(c.PostForm("whatsapp")),
	}
}

// loadSettings, formu profil ve vitrin ayarlarından doldurur.
func (h *Handler) loadSettings(c *gin.Context) (*settingsForm, error) {
	ctx := c.Request.Context()
	profile, err := h.api.ResellerProfile(ctx)
	if err != nil {
		return nil, err
	}
	h.session(c).SetReseller(profile)
	cfg, err := h.api.StorefrontConfig(ctx)
	if err != nil {
		return nil, err
	}

	f := &settingsForm{
		BusinessName: profile.BusinessName,
		Description:  profile.Description,
		Phone:        profile.Phone,
		Address:      profile.Address,
		PrimaryColor: profile.PrimaryColor,
		LogoURL:      profile.LogoURL,
		BannerURL:    cfg.HeroImage,
		Theme:        theme.Resolve(cfg.Theme).Name(),
		Social:       cfg.Social(),
	}
	if f.PrimaryColor == "" {
		f.PrimaryColor = defaultSettingsColor
	}
	return f, nil
}

func (h *Handler) renderSettings(c *gin.Context, status int, form *settingsForm, kind, msg string) {
	c.HTML(status, "settings.html", h.page(c, gin.H{
		"title":   "Settings - JewelHub",
		"active":  "settings",
		"form":    form,
		"themes":  theme.All,
		"kind":    kind,
		"message": msg,
	}))
}

// SettingsPage, mağaza ayarlarını gösterir.
func (h *Handler) SettingsPage(c *gin.Context) {
	form, err := h.loadSettings(c)
	if err != nil {
		log.Printf("SettingsPage - Failed to load settings: %v", err)
		h.renderSettings(c, http.StatusOK, &settingsForm{PrimaryColor: defaultSettingsColor}, "error", "Failed to load settings")
		return
	}
	h.renderSettings(c, http.StatusOK, form, "", "")
}

// HandleSaveSettings, önce profili sonra vitrin ayarlarını kaydeder.
// İkinci çağrı başarısız olursa ilki geri alınmaz.
func (h *Handler) HandleSaveSettings(c *gin.Context) {
	var form settingsForm
	if err := c.ShouldBind(&form); err != nil {
		log.Printf("HandleSaveSettings - bind error: %v", err)
	}
	form.bindSocial(c)
	if form.PrimaryColor == "" {
		form.PrimaryColor = defaultSettingsColor
	}

	if logoURL, err := h.uploadLogo(c); err != nil {
		log.Printf("HandleSaveSettings - logo upload error: %v", err)
		h.renderSettings(c, http.StatusBadRequest, &form, "error", errorMessage(err, "Logo upload failed"))
		return
	} else if logoURL != "" {
		form.LogoURL = logoURL
	}
	if bannerURL, err := h.uploadBanner(c); err != nil {
		log.Printf("HandleSaveSettings - banner upload error: %v", err)
		h.renderSettings(c, http.StatusBadRequest, &form, "error", errorMessage(err, "Banner upload failed"))
		return
	} else if bannerURL != "" {
		form.BannerURL = bannerURL
	}
	if err := services.ValidateHexColor(form.PrimaryColor); err != nil {
		h.renderSettings(c, http.StatusBadRequest, &form, "error", userMessage(err, "Failed to save settings"))
		return
	}

	ctx := c.Request.Context()
	profile, err := h.api.UpdateResellerProfile(ctx, models.ProfileUpdate{
		BusinessName: strings.TrimSpace(form.BusinessName),
		Description:  strings.TrimSpace(form.Description),
		Phone:        strings.TrimSpace(form.Phone),
		Address:      strings.TrimSpace(form.Address),
		PrimaryColor: form.PrimaryColor,
		LogoURL:      form.LogoURL,
	})
	if err != nil {
		log.Printf("HandleSaveSettings - profile error: %v", err)
		h.renderSettings(c, http.StatusBadRequest, &form, "error", errorMessage(err, "Failed to save settings"))
		return
	}
	h.session(c).SetReseller(profile)

	update := models.StorefrontSettingsUpdate{
		SocialLinks: &form.Social,
		HeroImage:   form.BannerURL,
	}
	if form.Theme != "" {
		update.Theme = theme.Resolve(form.Theme).Name()
	}
	if _, err := h.api.UpdateStorefrontConfig(ctx, update); err != nil {
		log.Printf("HandleSaveSettings - storefront config error: %v", err)
		h.renderSettings(c, http.StatusBadRequest, &form, "error", errorMessage(err, "Failed to save settings"))
		return
	}
	log.Printf("HandleSaveSettings - settings saved for %s", profile.Slug)
	h.renderSettings(c, http.StatusOK, &form, "success", "Settings saved successfully!")
}

// HandleUploadLogo ve HandleUploadBanner, dosyayı hemen yükler ve adresi
// JSON olarak döndürür; form kaydedilene kadar profil değişmez.
func (h *Handler) HandleUploadLogo(c *gin.Context) {
	url, err := h.uploadLogo(c)
	if err != nil || url == "" {
		log.Printf("HandleUploadLogo - error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": errorMessage(err, "Logo upload failed")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "logo_url": url, "preview": h.api.MediaURL(url)})
}

func (h *Handler) HandleUploadBanner(c *gin.Context) {
	url, err := h.uploadBanner(c)
	if err != nil || url == "" {
		log.Printf("HandleUploadBanner - error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": errorMessage(err, "Banner upload failed")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "banner_url": url, "preview": h.api.MediaURL(url)})
}

// HandlePublish, mağazayı yayına alır veya yayından kaldırır.
func (h *Handler) HandlePublish(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		reseller *models.Reseller
		err      error
	)
	if c.PostForm("action") == "unpublish" {
		reseller, err = h.api.UnpublishStore(ctx)
	} else {
		reseller, err = h.api.PublishStore(ctx)
	}
	if err != nil {
		log.Printf("HandlePublish - error: %v", err)
		form, loadErr := h.loadSettings(c)
		if loadErr != nil {
			form = &settingsForm{PrimaryColor: defaultSettingsColor}
		}
		h.renderSettings(c, http.StatusBadRequest, form, "error", errorMessage(err, "Failed to update store visibility"))
		return
	}
	h.session(c).SetReseller(reseller)
	c.Redirect(http.StatusSeeOther, "/dashboard/settings")
}
