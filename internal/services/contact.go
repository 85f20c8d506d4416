package services

import (
	"errors"
	"fmt"
	"html"
	"log"
	"strings"

	"jewelhub/internal/models"
)

// ErrContactFailed, mesaj spam sayıldığında ya da gönderilemediğinde döner.
var ErrContactFailed = errors.New("contact message not delivered")

// ContactService, vitrin iletişim formunu işler.
type ContactService struct {
	email    *EmailService
	spam     *SpamDetector
	security *SecurityLogger
	inbox    string
}

func NewContactService(email *EmailService, spam *SpamDetector, security *SecurityLogger, inbox string) *ContactService {
	return &ContactService{email: email, spam: spam, security: security, inbox: inbox}
}

// Submit, spam denetiminden geçen mesajı gelen kutusuna e-postalar.
func (s *ContactService) Submit(msg models.ContactMessage) error {
	if s.spam.IsSpam(msg.Subject + " " + msg.Message) {
		s.security.LogSecurityEvent(EventSpamContact, fmt.Sprintf("store=%s email=%s", msg.StoreSlug, msg.Email), msg.IP)
		return ErrContactFailed
	}
	if s.inbox == "" {
		log.Printf("ContactService.Submit - CONTACT_INBOX boş, mesaj yalnızca loglandı: %s <%s>", msg.Name, msg.Email)
		return nil
	}

	subject := fmt.Sprintf("[%s] %s", msg.StoreName, strings.TrimSpace(msg.Subject))
	if strings.TrimSpace(msg.Subject) == "" {
		subject = fmt.Sprintf("[%s] New message from %s", msg.StoreName, msg.Name)
	}
	body := fmt.Sprintf("<p><strong>%s</strong> &lt;%s&gt; wrote via /store/%s:</p><p>%s</p>",
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email),
		html.EscapeString(msg.StoreSlug),
		strings.ReplaceAll(html.EscapeString(msg.Message), "\n", "<br>"))
	if err := s.email.Send(s.inbox, subject, body); err != nil {
		return ErrContactFailed
	}
	return nil
}
