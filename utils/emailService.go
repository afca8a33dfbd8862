package utils

import (
	"fmt"
	"html"

	"careerhub/config"
	"careerhub/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// SendEmail delivers an HTML email through SendGrid. Without SENDGRID_API_KEY the
// message is logged and dropped.
func SendEmail(toName, toEmail, subject, htmlBody string) error {
	cfg := config.AppConfig
	if cfg == nil || cfg.SendgridAPIKey == "" {
		logger.Log.Info("email not sent: sendgrid not configured", zap.String("to", toEmail), zap.String("subject", subject))
		return nil
	}

	from := mail.NewEmail("CareerHub", cfg.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, StripHTML(htmlBody), htmlBody)

	resp, err := sendgrid.NewSendClient(cfg.SendgridAPIKey).Send(message)
	if err != nil {
		logger.Log.Error("sendgrid send failed", zap.String("to", toEmail), zap.Error(err))
		return err
	}
	if resp.StatusCode >= 300 {
		logger.Log.Error("sendgrid rejected email", zap.String("to", toEmail), zap.Int("status", resp.StatusCode), zap.String("body", resp.Body))
		return fmt.Errorf("sendgrid: status %d", resp.StatusCode)
	}

	logger.Log.Info("email sent", zap.String("to", toEmail), zap.String("subject", subject))
	return nil
}

// InvitationEmailBody renders the welcome message for an account created by an admin
func InvitationEmailBody(name, role, tempPassword string) string {
	return getEmailTemplate("Welcome to CareerHub", fmt.Sprintf(`
		<h2>Hello %s,</h2>
		<p>An administrator created a <b>%s</b> account for you.</p>
		<div class="info-box">Temporary password: <b>%s</b></div>
		<p>Please sign in and change it right away.</p>`,
		html.EscapeString(name), html.EscapeString(role), html.EscapeString(tempPassword)))
}

// SendInvitationEmail notifies a newly created user
func SendInvitationEmail(name, email, role, tempPassword string) error {
	return SendEmail(name, email, "Your CareerHub account", InvitationEmailBody(name, role, tempPassword))
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
	<style>
		body { font-family: Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
		.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
		.header { background-color: #1F3A5F; padding: 30px; text-align: center; }
		.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; }
		.content { padding: 40px 30px; color: #1F3A5F; line-height: 1.6; }
		.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #4A90E2; margin: 20px 0; }
	</style>
</head>
<body>
	<div class="container">
		<div class="header"><h1>%s</h1></div>
		<div class="content">%s</div>
	</div>
</body>
</html>`, html.EscapeString(title), bodyContent)
}
