package services

import (
	"fmt"
	"html"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"bpo-website/internal/models"
)

type EmailService struct {
	host    string
	port    string
	user    string
	pass    string
	from    string
	devMode bool
	log     *zap.Logger
}

func NewEmailService(host, port, user, pass, from string, log *zap.Logger) *EmailService {
	if log == nil {
		log = zap.NewNop()
	}
	devMode := host == "" || user == ""
	if devMode {
		log.Warn("email service running in dev mode, mail is logged instead of sent")
	}
	return &EmailService{
		host:    host,
		port:    port,
		user:    user,
		pass:    pass,
		from:    from,
		devMode: devMode,
		log:     log.Named("email"),
	}
}

func (s *EmailService) SendLeadNotification(to string, lead *models.Lead) error {
	subject := fmt.Sprintf("New lead: %s", lead.Name)
	if lead.Company != "" {
		subject += " (" + lead.Company + ")"
	}

	rows := []struct{ label, value string }{
		{"Name", lead.Name},
		{"Email", lead.Email},
		{"Company", lead.Company},
		{"Phone", lead.Phone},
		{"Service", lead.Service},
		{"Source", lead.Source},
	}

	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="font-family: 'Segoe UI', Arial, sans-serif; background-color: #f8fafc;">
  <div style="max-width: 560px; margin: 32px auto; background: white; border-radius: 8px; padding: 24px;">
    <h2 style="margin: 0 0 16px; color: #0f172a;">New website lead</h2>
    <table style="font-size: 14px; color: #334155;">`)
	for _, r := range rows {
		if r.value == "" {
			continue
		}
		fmt.Fprintf(&b, "\n      <tr><td style=\"padding: 4px 12px 4px 0; font-weight: 600;\">%s</td><td>%s</td></tr>",
			r.label, html.EscapeString(r.value))
	}
	fmt.Fprintf(&b, `
    </table>
    <p style="white-space: pre-wrap; color: #334155; font-size: 14px;">%s</p>
  </div>
</body>
</html>`, html.EscapeString(lead.Message))

	return s.sendHTML(to, subject, b.String())
}

func (s *EmailService) sendHTML(to, subject, htmlBody string) error {
	if s.devMode {
		s.log.Info("dev email", zap.String("to", to), zap.String("subject", subject))
		s.log.Debug("dev email body", zap.String("body", htmlBody))
		return nil
	}

	headers := []string{
		fmt.Sprintf("From: %s", s.from),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=UTF-8",
	}

	message := strings.Join(headers, "\r\n") + "\r\n\r\n" + htmlBody

	auth := smtp.PlainAuth("", s.user, s.pass, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)

	err := smtp.SendMail(addr, auth, s.from, []string{to}, []byte(message))
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	s.log.Info("email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}
