package mail

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gopkg.in/gomail.v2"

	appconfig "cobranzas_art/internal/config"
	"cobranzas_art/internal/usecase/interfaces"
)

var ErrMissingSMTPHost = errors.New("missing SMTP_HOST")
var ErrSMTPGatewayNotConfigured = errors.New("smtp gateway not configured")

// SMTPGateway sends debt notices over SMTP. In mock mode nothing leaves
// the process; sends are logged and assigned a synthetic message id, which
// keeps local runs and batch rehearsals harmless.
type SMTPGateway struct {
	dialer   *gomail.Dialer
	from     string
	sender   string
	mockMode bool
}

var _ interfaces.INoticeGateway = (*SMTPGateway)(nil)

func NewSMTPGateway(cfg *appconfig.Config) (*SMTPGateway, error) {
	if isNoticeGatewayMockEnabled() {
		log.Printf("[notice][gateway] mock mode enabled")
		return &SMTPGateway{mockMode: true, from: cfg.MailFrom, sender: cfg.MailSender}, nil
	}

	if cfg.SMTPHost == "" {
		log.Printf("[notice][gateway] missing SMTP_HOST")
		return nil, ErrMissingSMTPHost
	}

	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	log.Printf("[notice][gateway] smtp dialer initialized host=%s port=%d", cfg.SMTPHost, cfg.SMTPPort)

	return &SMTPGateway{dialer: d, from: cfg.MailFrom, sender: cfg.MailSender}, nil
}

func (g *SMTPGateway) Send(ctx context.Context, msg interfaces.NoticeMessage) (string, error) {
	if g != nil && g.mockMode {
		id := fmt.Sprintf("mock-%d", time.Now().UTC().UnixNano())
		log.Printf("[notice][gateway] mock send to=%v subject=%q message_id=%s", msg.To, msg.Subject, id)
		return id, nil
	}
	if g == nil || g.dialer == nil {
		log.Printf("[notice][gateway] gateway not configured")
		return "", ErrSMTPGatewayNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	id := fmt.Sprintf("<%d@%s>", time.Now().UTC().UnixNano(), g.dialer.Host)

	m := gomail.NewMessage()
	m.SetAddressHeader("From", g.from, g.sender)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)
	m.SetHeader("Message-ID", id)
	m.SetBody("text/html", msg.HTMLBody)

	log.Printf("[notice][gateway] send start to=%v subject=%q", msg.To, msg.Subject)
	if err := g.dialer.DialAndSend(m); err != nil {
		log.Printf("[notice][gateway] send failed to=%v err=%v", msg.To, err)
		return "", err
	}
	log.Printf("[notice][gateway] send success to=%v message_id=%s", msg.To, id)
	return id, nil
}

func isNoticeGatewayMockEnabled() bool {
	for _, key := range []string{"NOTICE_GATEWAY_MOCK", "SMTP_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
