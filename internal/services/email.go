package services

import (
	"fmt"
	"html"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/keighl/postmark"
	"gopkg.in/gomail.v2"

	"jewelhub/internal/models"
)

// EmailConfig, EmailService ayarlarıdır.
type EmailConfig struct {
	PostmarkToken string
	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPass      string
	From          string
	// Timeout, Postmark isteklerinin üst sınırıdır. 0 ise 10 saniye.
	Timeout time.Duration
}

const defaultEmailTimeout = 10 * time.Second

type mailer interface {
	send(to, subject, htmlBody string) error
}

type postmarkMailer struct {
	client *postmark.Client
	from   string
}

func (m postmarkMailer) send(to, subject, htmlBody string) error {
	_, err := m.client.SendEmail(postmark.Email{
		From:     m.from,
		To:       to,
		Subject:  subject,
		HtmlBody: htmlBody,
	})
	return err
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

func (m smtpMailer) send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	return m.dialer.DialAndSend(msg)
}

// EmailService, e-posta gönderimi için kullanılır. Postmark token'ı varsa
// Postmark, SMTP bilgileri varsa gomail kullanılır; ikisi de yoksa
// e-postalar yalnızca loglanır.
type EmailService struct {
	mailer mailer
	from   string
	wg     sync.WaitGroup
}

// NewEmailService, yeni bir EmailService örneği oluşturur
func NewEmailService(cfg EmailConfig) *EmailService {
	es := &EmailService{from: cfg.From}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultEmailTimeout
	}
	switch {
	case cfg.PostmarkToken != "":
		client := postmark.NewClient(cfg.PostmarkToken, "")
		client.HTTPClient = &http.Client{Timeout: cfg.Timeout}
		es.mailer = postmarkMailer{client: client, from: cfg.From}
	case cfg.SMTPHost != "" && cfg.SMTPUser != "" && cfg.SMTPPass != "":
		es.mailer = smtpMailer{dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass), from: cfg.From}
	default:
		log.Println("E-posta bilgileri ayarlanmamış. E-posta gönderimi devre dışı.")
	}
	return es
}

// Enabled, gerçek gönderim yapılıp yapılmadığını söyler.
func (es *EmailService) Enabled() bool {
	return es.mailer != nil
}

// Send, HTML e-posta gönderir.
func (es *EmailService) Send(to, subject, htmlBody string) error {
	if es.mailer == nil {
		log.Printf("E-posta gönderimi devre dışı. Alıcı: %s, Konu: %s", to, subject)
		return nil
	}
	if err := es.mailer.send(to, subject, htmlBody); err != nil {
		log.Printf("EmailService.Send - %s: %v", to, err)
		return fmt.Errorf("send email: %w", err)
	}
	log.Printf("EmailService.Send - gönderildi: %s", to)
	return nil
}

// SendOrderConfirmation, müşteriye sipariş numarasını bildirir.
func (es *EmailService) SendOrderConfirmation(storeName string, order models.OrderCreate, result *models.OrderResult) error {
	subject := fmt.Sprintf("Your %s order %s", storeName, result.OrderNumber)
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Thank you, %s!</h2>", html.EscapeString(order.CustomerName))
	fmt.Fprintf(&b, "<p>Your order <strong>%s</strong> has been placed.</p>", html.EscapeString(result.OrderNumber))
	fmt.Fprintf(&b, "<p>Total: <strong>₹%s</strong></p>", result.TotalAmount.StringFixed(2))
	fmt.Fprintf(&b, "<p>Shipping to: %s, %s, %s %s</p>",
		html.EscapeString(order.ShippingAddressLine1),
		html.EscapeString(order.ShippingCity),
		html.EscapeString(order.ShippingState),
		html.EscapeString(order.ShippingPostalCode))
	fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(storeName))
	return es.Send(order.CustomerEmail, subject, b.String())
}

// SendOrderConfirmationAsync, onay e-postasını istekten bağımsız gönderir.
// Dönen kanal gönderim bitince kapanır; hata yalnızca loglanır.
func (es *EmailService) SendOrderConfirmationAsync(storeName string, order models.OrderCreate, result models.OrderResult) <-chan struct{} {
	done := make(chan struct{})
	es.wg.Add(1)
	go func() {
		defer es.wg.Done()
		defer close(done)
		if err := es.SendOrderConfirmation(storeName, order, &result); err != nil {
			log.Printf("EmailService.SendOrderConfirmationAsync - %s: %v", result.OrderNumber, err)
		}
	}()
	return done
}

// Wait, süren arka plan gönderimlerini bekler.
func (es *EmailService) Wait() {
	es.wg.Wait()
}
