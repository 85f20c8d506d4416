package services

import (
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"
)

// Güvenlik olay türleri
const (
	EventLoginFailed  = "LOGIN_FAILED"
	EventAdminDenied  = "ADMIN_ACCESS_DENIED"
	EventSpamContact  = "SPAM_CONTACT"
	EventBadSignature = "BAD_VISITOR_COOKIE"
	EventCrossOrigin  = "CROSS_ORIGIN_REQUEST"
)

// SecurityLogger, güvenlik olaylarını loglar
type SecurityLogger struct {
	mu  sync.Mutex
	out io.Writer
	now func() time.Time
}

// NewSecurityLogger, path'e eklemeli yazan bir güvenlik logger'ı oluşturur.
// Dosya açılamazsa standart log'a yazar.
func NewSecurityLogger(path string) *SecurityLogger {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Printf("Güvenlik log dosyası oluşturulamadı: %v", err)
		return NewSecurityLoggerTo(log.Writer())
	}
	return NewSecurityLoggerTo(file)
}

// NewSecurityLoggerTo, verilen writer'a yazan logger döndürür.
func NewSecurityLoggerTo(w io.Writer) *SecurityLogger {
	return &SecurityLogger{out: w, now: time.Now}
}

// LogSecurityEvent, güvenlik olayını loglar
func (sl *SecurityLogger) LogSecurityEvent(eventType, details, ipAddress string) {
	if sl == nil || sl.out == nil {
		return
	}
	sl.mu.Lock()
	defer sl.mu.Unlock()

	timestamp := sl.now().Format("2006-01-02 15:04:05")
	logEntry := fmt.Sprintf("[%s] %s - %s - IP: %s\n", timestamp, eventType, details, ipAddress)
	if _, err := io.WriteString(sl.out, logEntry); err != nil {
		log.Printf("Güvenlik log yazma hatası: %v", err)
	}
}

// Close, log dosyasını kapatır
func (sl *SecurityLogger) Close() error {
	if sl == nil {
		return nil
	}
	if f, ok := sl.out.(*os.File); ok && f != os.Stderr && f != os.Stdout {
		return f.Close()
	}
	return nil
}

// SpamDetector, spam içerik tespiti yapar. İfadeler tam kelime olarak
// aranır; "deposit" ya da "wallet" gibi sipariş sorularında geçen tek
// kelimeler listede yoktur.
type SpamDetector struct {
	pattern  *regexp.Regexp
	maxLinks int
}

// NewSpamDetector, yeni bir spam detector oluşturur
func NewSpamDetector() *SpamDetector {
	phrases := []string{
		"bitcoin", "btc", "crypto", "cryptocurrency",
		"investment opportunity", "get rich quick", "free money",
		"lottery winner", "claim your prize", "account suspended",
		"western union", "moneygram", "nigerian prince",
		"casino", "seo services", "backlinks", "graph.org",
	}
	quoted := make([]string, len(phrases))
	for i, p := range phrases {
		quoted[i] = regexp.QuoteMeta(p)
	}
	return &SpamDetector{
		pattern:  regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`),
		maxLinks: 2,
	}
}

// IsSpam, mesajın spam olup olmadığını kontrol eder
func (sd *SpamDetector) IsSpam(message string) bool {
	if sd.pattern.MatchString(message) {
		return true
	}
	messageLower := strings.ToLower(message)
	return strings.Count(messageLower, "http://")+strings.Count(messageLower, "https://") > sd.maxLinks
}
