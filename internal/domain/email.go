package domain

import "context"

// Attachment is a file carried by a mail message. A non-empty ContentID makes
// it an inline part that the HTML body references as cid:<ContentID>.
type Attachment struct {
	Filename    string
	ContentType string
	ContentID   string
	Data        []byte
}

// MailMessage is one outbound email.
type MailMessage struct {
	To          string
	FromName    string
	Subject     string
	HTML        string
	Text        string
	Attachments []Attachment
}

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, msg *MailMessage) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// InvitationEmailData holds data for the invitation email.
type InvitationEmailData struct {
	Subject        string
	HasImage       bool
	ImageCID       string
	InvitationText string
	RSVPFormURL    string
}
