package notifications

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"campora/internal/shared/config"
	"campora/pkg/logger"
)

// EmailService renders and delivers notification emails over SMTP
type EmailService struct {
	config    *config.Config
	logger    *logger.Logger
	templates map[NotificationType]*template.Template
}

// NewEmailService creates an email service with all templates parsed
func NewEmailService(cfg *config.Config, appLogger *logger.Logger) (*EmailService, error) {
	templates := make(map[NotificationType]*template.Template)
	for notificationType, body := range emailTemplates {
		tmpl, err := template.New(string(notificationType)).Parse(body)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", notificationType, err)
		}
		templates[notificationType] = tmpl
	}

	return &EmailService{
		config:    cfg,
		logger:    appLogger,
		templates: templates,
	}, nil
}

// Send renders the notification's template and delivers it
func (e *EmailService) Send(notification *EmailNotification) error {
	tmpl, ok := e.templates[notification.Type]
	if !ok {
		return fmt.Errorf("no template for notification type %s", notification.Type)
	}

	data := map[string]interface{}{
		"RecipientName": notification.RecipientName,
		"Data":          notification.Data,
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render email: %w", err)
	}

	return e.deliver(notification.RecipientEmail, notification.Subject, body.String())
}

func (e *EmailService) deliver(to, subject, htmlBody string) error {
	// Without SMTP credentials, delivery is a no-op so local environments
	// don't need a mail server
	if e.config.Email.SMTPHost == "" {
		e.logger.Info("SMTP not configured, skipping email delivery")
		return nil
	}

	from := fmt.Sprintf("%s <%s>", e.config.Email.FromName, e.config.Email.FromEmail)
	message := []byte(
		"From: " + from + "\r\n" +
			"To: " + to + "\r\n" +
			"Subject: " + subject + "\r\n" +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=UTF-8\r\n" +
			"\r\n" +
			htmlBody,
	)

	addr := fmt.Sprintf("%s:%d", e.config.Email.SMTPHost, e.config.Email.SMTPPort)
	auth := smtp.PlainAuth("", e.config.Email.SMTPUsername, e.config.Email.SMTPPassword, e.config.Email.SMTPHost)

	if err := smtp.SendMail(addr, auth, e.config.Email.FromEmail, []string{to}, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

var emailTemplates = map[NotificationType]string{
	TypeWelcome: `
<html><body>
<h2>Welcome to Campora, {{.RecipientName}}!</h2>
<p>Your account is ready. Browse campsites, activities and gear, and book your next trip outdoors.</p>
</body></html>`,

	TypeReservationCreated: `
<html><body>
<h2>We received your reservation</h2>
<p>Hi {{.RecipientName}},</p>
<p>Your reservation <strong>{{.Data.reference_number}}</strong>{{if .Data.listing_name}} for <strong>{{.Data.listing_name}}</strong>{{end}} is awaiting approval.</p>
<ul>
<li>Dates: {{.Data.start_date}} to {{.Data.end_date}}</li>
<li>Quantity: {{.Data.quantity}}</li>
<li>Total: ${{.Data.total_amount}}</li>
</ul>
<p>We'll email you as soon as it's reviewed.</p>
</body></html>`,

	TypeReservationApproved: `
<html><body>
<h2>Your reservation is confirmed</h2>
<p>Hi {{.RecipientName}},</p>
<p>Reservation <strong>{{.Data.reference_number}}</strong>{{if .Data.listing_name}} for <strong>{{.Data.listing_name}}</strong>{{end}} has been approved and paid.</p>
<ul>
<li>Dates: {{.Data.start_date}} to {{.Data.end_date}}</li>
<li>Total charged: ${{.Data.total_amount}}</li>
{{if .Data.transaction_id}}<li>Payment reference: {{.Data.transaction_id}}</li>{{end}}
</ul>
<p>See you out there!</p>
</body></html>`,

	TypeReservationRejected: `
<html><body>
<h2>Your reservation could not be confirmed</h2>
<p>Hi {{.RecipientName}},</p>
<p>Unfortunately reservation <strong>{{.Data.reference_number}}</strong> was declined.</p>
{{if .Data.reason}}<p>Reason: {{.Data.reason}}</p>{{end}}
<p>No payment was taken. You're welcome to book different dates.</p>
</body></html>`,

	TypeReservationCancelled: `
<html><body>
<h2>Reservation cancelled</h2>
<p>Hi {{.RecipientName}},</p>
<p>Reservation <strong>{{.Data.reference_number}}</strong> has been cancelled.</p>
{{if .Data.refund_amount}}<p>Refund issued: ${{.Data.refund_amount}}</p>{{end}}
</body></html>`,
}
