package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"jewelhub/internal/models"
	"jewelhub/internal/services"
)

const (
	onboardingSteps       = 3
	defaultOnboardingGold = "#C0A062"
)

var onboardingTitles = map[int]string{
	1: "Boutique Profile",
	2: "Visual Heritage",
	3: "Exclusive Address",
}

// onboardingForm, adım formlarının başlangıç değerlerini bayi profilinden alır.
func onboardingForm(r *models.Reseller) gin.H {
	form := gin.H{
		"business_name": "",
		"description":   "",
		"phone":         "",
		"primary_color": defaultOnboardingGold,
		"logo_url":      "",
		"subdomain":     "",
	}
	if r == nil {
		return form
	}
	form["business_name"] = r.BusinessName
	form["description"] = r.Description
	form["phone"] = r.Phone
	if r.PrimaryColor != "" {
		form["primary_color"] = r.PrimaryColor
	}
	form["logo_url"] = r.LogoURL
	if r.Subdomain != "" {
		form["subdomain"] = r.Subdomain
	} else {
		form["subdomain"] = r.Slug
	}
	return form
}

func (h *Handler) renderOnboarding(c *gin.Context, status, step int, errMsg string, overrides gin.H) {
	form := onboardingForm(h.session(c).Reseller)
	for k, v := range overrides {
		form[k] = v
	}
	c.HTML(status, "onboarding.html", h.page(c, gin.H{
		"title":     "Set up your boutique - JewelHub",
		"step":      step,
		"stepTitle": onboardingTitles[step],
		"steps":     []int{1, 2, 3},
		"stepNames": onboardingTitles,
		"error":     errMsg,
		"form":      form,
	}))
}

// OnboardingPage, kurulum sihirbazının istenen adımını gösterir.
func (h *Handler) OnboardingPage(c *gin.Context) {
	step, err := strconv.Atoi(c.DefaultQuery("step", "1"))
	if err != nil || step < 1 || step > onboardingSteps {
		step = 1
	}
	h.renderOnboarding(c, http.StatusOK, step, "", nil)
}

// HandleOnboardingProfile, birinci adım: işletme profili.
func (h *Handler) HandleOnboardingProfile(c *gin.Context) {
	in := models.ProfileUpdate{
		BusinessName: strings.TrimSpace(c.PostForm("business_name")),
		Description:  strings.TrimSpace(c.PostForm("description")),
		Phone:        strings.TrimSpace(c.PostForm("phone")),
	}
	updated, err := h.api.UpdateResellerProfile(c.Request.Context(), in)
	if err != nil {
		log.Printf("HandleOnboardingProfile - error: %v", err)
		h.renderOnboarding(c, http.StatusBadRequest, 1, errorMessage(err, "Failed to save profile"), gin.H{
			"business_name": in.BusinessName,
			"description":   in.Description,
			"phone":         in.Phone,
		})
		return
	}
	h.session(c).SetReseller(updated)
	c.Redirect(http.StatusSeeOther, "/onboarding?step=2")
}

// HandleOnboardingLogo, logoyu yükler ve ikinci adımı önizlemeyle yeniden çizer.
func (h *Handler) HandleOnboardingLogo(c *gin.Context) {
	primary := c.DefaultPostForm("primary_color", defaultOnboardingGold)
	logoURL, err := h.uploadLogo(c)
	if err != nil {
		log.Printf("HandleOnboardingLogo - error: %v", err)
		h.renderOnboarding(c, http.StatusBadRequest, 2, errorMessage(err, "Failed to upload logo"), gin.H{
			"primary_color": primary,
			"logo_url":      c.PostForm("logo_url"),
		})
		return
	}
	if logoURL == "" {
		logoURL = c.PostForm("logo_url")
	}
	h.renderOnboarding(c, http.StatusOK, 2, "", gin.H{
		"primary_color": primary,
		"logo_url":      logoURL,
	})
}

// HandleOnboardingBranding, ikinci adım: renk ve logo. Formda dosya varsa
// önce yüklenir.
func (h *Handler) HandleOnboardingBranding(c *gin.Context) {
	primary := strings.TrimSpace(c.DefaultPostForm("primary_color", defaultOnboardingGold))
	logoURL := c.PostForm("logo_url")
	overrides := gin.H{"primary_color": primary, "logo_url": logoURL}

	uploaded, err := h.uploadLogo(c)
	if err != nil {
		log.Printf("HandleOnboardingBranding - upload error: %v", err)
		h.renderOnboarding(c, http.StatusBadRequest, 2, errorMessage(err, "Failed to upload logo"), overrides)
		return
	}
	if uploaded != "" {
		logoURL = uploaded
		overrides["logo_url"] = uploaded
	}
	if err := services.ValidateHexColor(primary); err != nil {
		h.renderOnboarding(c, http.StatusBadRequest, 2, userMessage(err, "Failed to save branding"), overrides)
		return
	}

	updated, err := h.api.UpdateBranding(c.Request.Context(), models.BrandingUpdate{
		PrimaryColor: primary,
		LogoURL:      logoURL,
	})
	if err != nil {
		log.Printf("HandleOnboardingBranding - error: %v", err)
		h.renderOnboarding(c, http.StatusBadRequest, 2, errorMessage(err, "Failed to save branding"), overrides)
		return
	}
	h.session(c).SetReseller(updated)
	c.Redirect(http.StatusSeeOther, "/onboarding?step=3")
}

// HandleOnboardingDomain, üçüncü adım: alt alan adını kaydeder, mağazayı
// yayınlar ve ürün seçimine yönlendirir.
func (h *Handler) HandleOnboardingDomain(c *gin.Context) {
	subdomain := strings.ToLower(strings.TrimSpace(c.PostForm("subdomain")))
	ctx := c.Request.Context()

	updated, err := h.api.UpdateDomain(ctx, models.DomainUpdate{Subdomain: subdomain})
	if err == nil {
		h.session(c).SetReseller(updated)
		updated, err = h.api.PublishStore(ctx)
	}
	if err != nil {
		log.Printf("HandleOnboardingDomain - error: %v", err)
		h.renderOnboarding(c, http.StatusBadRequest, 3, errorMessage(err, "Failed to secure URL"), gin.H{
			"subdomain": subdomain,
		})
		return
	}
	h.session(c).SetReseller(updated)
	log.Printf("HandleOnboardingDomain - store published: %s", subdomain)
	c.Redirect(http.StatusSeeOther, "/dashboard/products")
}

// uploadLogo, formdaki "logo" dosyasını yükler ve adresini döndürür.
func (h *Handler) uploadLogo(c *gin.Context) (string, error) {
	up, closeFn, err := formUpload(c, "logo")
	defer closeFn()
	if err != nil || up == nil {
		return "", err
	}
	res, err := h.api.UploadLogo(c.Request.Context(), *up)
	if err != nil {
		return "", err
	}
	return res.LogoURL, nil
}

// uploadBanner, formdaki "banner" dosyasını yükler ve adresini döndürür.
func (h *Handler) uploadBanner(c *gin.Context) (string, error) {
	up, closeFn, err := formUpload(c, "banner")
	defer closeFn()
	if err != nil || up == nil {
		return "", err
	}
	res, err := h.api.UploadBanner(c.Request.Context(), *up)
	if err != nil {
		return "", err
	}
	return res.BannerURL, nil
}
