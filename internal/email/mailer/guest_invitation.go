// internal/email/mailer/guest_invitation.go
package mailer

import "github.com/annassetiawan/tamumu-app/internal/email"

// GuestInvitationTemplateData contains data for the invitation email template
type GuestInvitationTemplateData struct {
	GuestName   string
	WeddingName string
	InviteURL   string
}

// SendGuestInvitation delivers the personal invitation link to a guest.
func SendGuestInvitation(s *email.Service, to, guestName, weddingName, inviteURL string) error {
	templateData := GuestInvitationTemplateData{
		GuestName:   guestName,
		WeddingName: weddingName,
		InviteURL:   inviteURL,
	}

	return s.SendEmail(email.EmailData{
		To:           to,
		FromName:     "Tamumu",
		Subject:      "Undangan: " + weddingName,
		TemplateName: "guest_invitation",
		TemplateData: templateData,
	})
}
