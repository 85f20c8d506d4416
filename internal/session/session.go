package session

import "jewelhub/internal/models"

// Session, ziyaretçinin oturum durumudur. Reseller yalnızca kullanıcı rolü
// "reseller" iken dolu olabilir.
type Session struct {
	Token    string
	User     *models.User
	Reseller *models.Reseller
	Loading  bool
}

// New, kullanıcı bilgisi henüz yüklenmemiş yeni bir oturum döndürür.
func New() *Session {
	return &Session{Loading: true}
}

func (s *Session) SetToken(token string) {
	s.Token = token
}

// SetUser, kullanıcıyı ayarlar. Rol reseller değilse bayi profili düşer.
func (s *Session) SetUser(u *models.User) {
	s.User = u
	if !u.IsReseller() {
		s.Reseller = nil
	}
}

// SetReseller, mevcut kullanıcı bayi değilse yok sayılır.
func (s *Session) SetReseller(r *models.Reseller) {
	if r != nil && !s.User.IsReseller() {
		return
	}
	s.Reseller = r
}

func (s *Session) SetLoading(loading bool) {
	s.Loading = loading
}

// Logout, token, kullanıcı ve bayi bilgisini temizler. Loading değişmez.
func (s *Session) Logout() {
	s.Token = ""
	s.User = nil
	s.Reseller = nil
}

func (s *Session) Authenticated() bool {
	return s.Token != ""
}
