// internal/email/mailer/welcome.go
package mailer

import "github.com/annassetiawan/tamumu-app/internal/email"

// WelcomeTemplateData contains data for the welcome email template
type WelcomeTemplateData struct {
	FullName     string
	DashboardURL string
}

// SendWelcomeEmail greets a freshly registered organizer.
func SendWelcomeEmail(s *email.Service, to, fullName, dashboardURL string) error {
	templateData := WelcomeTemplateData{
		FullName:     fullName,
		DashboardURL: dashboardURL,
	}

	return s.SendEmail(email.EmailData{
		To:           to,
		FromName:     "Tamumu",
		Subject:      "Selamat datang di Tamumu",
		TemplateName: "welcome",
		TemplateData: templateData,
	})
}
