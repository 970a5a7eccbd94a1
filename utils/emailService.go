package utils

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer sends transactional email through SendGrid.
type Mailer struct {
	apiKey  string
	sender  string
	baseURL string
}

// NewMailer returns nil when no API key is configured, which disables email.
func NewMailer(apiKey, sender, baseURL string) *Mailer {
	if apiKey == "" {
		return nil
	}
	return &Mailer{apiKey: apiKey, sender: sender, baseURL: baseURL}
}

// SendCertificateIssued notifies a student that their certificate is ready.
func (m *Mailer) SendCertificateIssued(toEmail, toName, courseTitle, certificateURL string) error {
	from := mail.NewEmail("LMS", m.sender)
	to := mail.NewEmail(toName, toEmail)
	subject := "Your certificate for " + courseTitle

	link := m.baseURL + certificateURL
	plain := fmt.Sprintf("Congratulations %s! You completed %s. Download your certificate: %s", toName, courseTitle, link)
	html := getEmailTemplate(
		"Certificate of Completion",
		fmt.Sprintf(`<p>Congratulations <b>%s</b>!</p>
		<p>You have successfully completed <b>%s</b>.</p>
		<a class="btn" href="%s">Download Certificate</a>`, toName, courseTitle, link),
	)

	message := mail.NewSingleEmail(from, subject, to, plain, html)
	client := sendgrid.NewSendClient(m.apiKey)

	resp, err := client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// HTML wrapper shared by all outgoing mail
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #0072ff; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A1A2E; line-height: 1.6; }
			.content h2 { color: #1A1A2E; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #00C6FF; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>LMS</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				You are receiving this email because of activity on your LMS account.
			</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}
