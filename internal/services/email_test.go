package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jewelhub/internal/models"
)

// blockingMailer, release kapanana kadar gönderimi bekletir.
type blockingMailer struct {
	release chan struct{}
	sent    chan string
}

func (m *blockingMailer) send(to, subject, body string) error {
	<-m.release
	m.sent <- to
	return nil
}

func TestSendOrderConfirmationAsyncReturnsImmediately(t *testing.T) {
	m := &blockingMailer{release: make(chan struct{}), sent: make(chan string, 1)}
	es := &EmailService{mailer: m, from: "no-reply@jewelhub.in"}

	order := models.OrderCreate{CustomerName: "Asha", CustomerEmail: "asha@example.com"}
	done := es.SendOrderConfirmationAsync("Gems", order, models.OrderResult{OrderNumber: "JH-1", TotalAmount: decimal.NewFromInt(1499)})

	select {
	case <-done:
		t.Fatal("send finished before the mailer was released")
	default:
	}

	close(m.release)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("send did not finish")
	}
	assert.Equal(t, "asha@example.com", <-m.sent)
	es.Wait()
}

func TestPostmarkRequestsTimeOut(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	es := NewEmailService(EmailConfig{PostmarkToken: "token", From: "a@b.c", Timeout: 50 * time.Millisecond})
	pm, ok := es.mailer.(postmarkMailer)
	require.True(t, ok)
	pm.client.BaseURL = srv.URL

	start := time.Now()
	err := es.Send("x@y.z", "hi", "<p>hi</p>")
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestNewEmailServiceDefaultTimeout(t *testing.T) {
	es := NewEmailService(EmailConfig{PostmarkToken: "token", From: "a@b.c"})
	pm, ok := es.mailer.(postmarkMailer)
	require.True(t, ok)
	assert.Equal(t, defaultEmailTimeout, pm.client.HTTPClient.Timeout)
}
