package email

import (
	"fmt"
	"html"

	"gopkg.in/gomail.v2"

	"tag/internal/shared/config"
)

// AnswerMessage is what the requester is told once a jurist has answered.
type AnswerMessage struct {
	To             string
	RecipientName  string
	InterventionID uint
	Titre          string
}

type SMTPEmailService struct {
	fromAddress string
	fromName    string
	baseURL     string
	dialer      *gomail.Dialer
}

func NewSMTPEmailService(cfg config.EmailConfig, baseURL string) *SMTPEmailService {
	return &SMTPEmailService{
		fromAddress: cfg.FromAddress,
		fromName:    cfg.FromName,
		baseURL:     baseURL,
		dialer:      gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
	}
}

func (s *SMTPEmailService) SendAnswerNotification(msg AnswerMessage) error {
	link := fmt.Sprintf("%s/interventions/%d", s.baseURL, msg.InterventionID)
	subject := fmt.Sprintf("Réponse à votre question : %s", msg.Titre)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<p>Bonjour %s,</p>
			<p>Un juriste a répondu à votre question <strong>%s</strong>.</p>
			<p><a href="%s">Consulter la réponse</a></p>
		</body>
		</html>
	`, html.EscapeString(msg.RecipientName), html.EscapeString(msg.Titre), link)

	plainBody := fmt.Sprintf(`
Bonjour %s,

Un juriste a répondu à votre question « %s ».

Consulter la réponse : %s
	`, msg.RecipientName, msg.Titre, link)

	return s.sendEmail(msg.To, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.fromAddress, s.fromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// NoopEmailService is used when no SMTP host is configured.
type NoopEmailService struct{}

func (NoopEmailService) SendAnswerNotification(AnswerMessage) error { return nil }

// Sender is satisfied by both services above.
type Sender interface {
	SendAnswerNotification(msg AnswerMessage) error
}

// NewSender picks the SMTP service when mail is configured.
func NewSender(cfg config.EmailConfig, baseURL string) Sender {
	if !cfg.Enabled() {
		return NoopEmailService{}
	}
	return NewSMTPEmailService(cfg, baseURL)
}
