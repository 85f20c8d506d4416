package models

// Kullanıcı rolleri
const (
	RoleReseller     = "reseller"
	RoleManufacturer = "manufacturer"
	RoleAdmin        = "admin"
)

// User, oturum açmış kullanıcıyı temsil eder.
type User struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	IsActive   bool      `json:"is_active"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  Timestamp `json:"created_at"`
}

func (u *User) IsReseller() bool { return u != nil && u.Role == RoleReseller }

func (u *User) IsAdmin() bool { return u != nil && u.Role == RoleAdmin }

// Reseller, bayinin işletme profilini temsil eder.
type Reseller struct {
	ID              int64     `json:"id"`
	BusinessName    string    `json:"business_name"`
	Slug            string    `json:"slug"`
	Description     string    `json:"description"`
	Phone           string    `json:"phone"`
	Address         string    `json:"address"`
	LogoURL         string    `json:"logo_url"`
	PrimaryColor    string    `json:"primary_color"`
	SecondaryColor  string    `json:"secondary_color"`
	AccentColor     string    `json:"accent_color"`
	FontFamily      string    `json:"font_family"`
	Subdomain       string    `json:"subdomain"`
	CustomDomain    string    `json:"custom_domain"`
	DomainVerified  bool      `json:"domain_verified"`
	HomepageTitle   string    `json:"homepage_title"`
	HomepageTagline string    `json:"homepage_tagline"`
	IsOnboarded     bool      `json:"is_onboarded"`
	IsPublished     bool      `json:"is_published"`
	CreatedAt       Timestamp `json:"created_at"`
}

// TokenResponse, giriş ve kayıt uç noktalarının cevabıdır.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type RegisterRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	Role         string `json:"role"`
	BusinessName string `json:"business_name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginForm ve RegisterForm, HTML formlarından gelen verilerdir.
type LoginForm struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type RegisterForm struct {
	Email           string `form:"email"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirm_password"`
	BusinessName    string `form:"business_name"`
	Step            int    `form:"step"`
}

// ProfileUpdate, PUT /resellers/profile gövdesidir.
type ProfileUpdate struct {
	BusinessName string `json:"business_name,omitempty" form:"business_name"`
	Description  string `json:"description,omitempty" form:"description"`
	Phone        string `json:"phone,omitempty" form:"phone"`
	Address      string `json:"address,omitempty" form:"address"`
	PrimaryColor string `json:"primary_color,omitempty" form:"primary_color"`
	LogoURL      string `json:"logo_url,omitempty" form:"logo_url"`
}

// BrandingUpdate, PUT /resellers/branding gövdesidir.
type BrandingUpdate struct {
	LogoURL         string `json:"logo_url,omitempty" form:"logo_url"`
	HeroImage       string `json:"hero_image,omitempty" form:"hero_image"`
	PrimaryColor    string `json:"primary_color,omitempty" form:"primary_color"`
	SecondaryColor  string `json:"secondary_color,omitempty" form:"secondary_color"`
	AccentColor     string `json:"accent_color,omitempty" form:"accent_color"`
	FontFamily      string `json:"font_family,omitempty" form:"font_family"`
	HomepageTitle   string `json:"homepage_title,omitempty" form:"homepage_title"`
	HomepageTagline string `json:"homepage_tagline,omitempty" form:"homepage_tagline"`
}

type DomainUpdate struct {
	Subdomain    string `json:"subdomain"`
	CustomDomain string `json:"custom_domain,omitempty"`
}

type LogoUploadResult struct {
	LogoURL string `json:"logo_url"`
}

type BannerUploadResult struct {
	BannerURL string `json:"banner_url"`
}

// OnboardingStatus, kurulum adımlarının ilerlemesidir.
type OnboardingStatus struct {
	Steps      map[string]bool `json:"steps"`
	Completed  int             `json:"completed"`
	Total      int             `json:"total"`
	Percent    int             `json:"percent"`
	IsComplete bool            `json:"is_complete"`
}
