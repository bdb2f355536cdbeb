package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"lms/config"
)

// sendEmail delivers an HTML email over SMTP
func sendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: LearnSphere <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		log.Printf("Error sending email to %v: %v", to, err)
		return err
	}
	return nil
}

// getEmailTemplate wraps body content in the shared HTML layout
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A237E; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A237E; line-height: 1.6; }
			.content h2 { color: #1A237E; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #42A5F5; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>LEARNSPHERE</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 LearnSphere. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// SendWelcomeEmail sends a signup confirmation
func SendWelcomeEmail(email, name string) {
	subject := "Welcome to LearnSphere"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to <strong>LearnSphere</strong>! We are thrilled to have you onboard.</p>
		<p>Your account has been successfully created. Browse the catalog and enroll in your first course to start learning.</p>
	`, name)

	go sendEmail([]string{email}, subject, getEmailTemplate("Welcome Onboard!", body))
}

// SendEnrollmentEmail sends an email notification when a user enrolls in a course
func SendEnrollmentEmail(email, userName, courseTitle string) {
	subject := "Course Enrollment Confirmation"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Congratulations! You have successfully enrolled in:</p>
		<h3 style="text-align: center; color: #42A5F5; margin: 20px 0;">%s</h3>
		<p>You can now access the course content and start learning. Complete all lessons to earn your certificate.</p>
	`, userName, courseTitle)

	go sendEmail([]string{email}, subject, getEmailTemplate("Enrollment Successful", body))
}

// SendCertificateEmail sends the certificate issued notification
func SendCertificateEmail(email, userName, courseTitle, credentialID string) {
	subject := "Course Completion Certificate"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Congratulations on completing the course:</p>
		<h3 style="text-align: center; color: #42A5F5; margin: 20px 0;">%s</h3>
		<div class="info-box" style="text-align: center;">
			<p style="margin-bottom: 10px;">Your Credential ID:</p>
			<h2 style="margin: 0;">%s</h2>
		</div>
		<p>Your certificate is now available. Share the credential ID with anyone who needs to verify your achievement.</p>
	`, userName, courseTitle, credentialID)

	go sendEmail([]string{email}, subject, getEmailTemplate("Certificate of Completion", body))
}
