package email

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/textproto"
	"strings"

	"weddinginvites/internal/domain"
)

// ErrInvalidDataURL is returned when an image is not a base64 data URL.
var ErrInvalidDataURL = errors.New("invalid data url")

// DecodeDataURL splits a "data:<type>;base64,<payload>" string into its
// content type and decoded bytes. A bare base64 payload is accepted as image/jpeg.
func DecodeDataURL(s string) (contentType string, data []byte, err error) {
	s = strings.TrimSpace(s)
	contentType = "image/jpeg"
	payload := s
	if strings.HasPrefix(s, "data:") {
		meta, rest, ok := strings.Cut(s[len("data:"):], ",")
		if !ok || !strings.HasSuffix(meta, ";base64") {
			return "", nil, ErrInvalidDataURL
		}
		if t := strings.TrimSuffix(meta, ";base64"); t != "" {
			contentType = t
		}
		payload = rest
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidDataURL, err)
	}
	if len(data) == 0 {
		return "", nil, ErrInvalidDataURL
	}
	return contentType, data, nil
}

// buildMIME renders msg as a multipart/related message: a multipart/alternative
// body (text, html) followed by the attachments.
func buildMIME(from string, msg *domain.MailMessage) ([]byte, error) {
	var alt bytes.Buffer
	altWriter := multipart.NewWriter(&alt)
	if msg.Text != "" {
		if err := writeQuotedPart(altWriter, "text/plain; charset=UTF-8", msg.Text); err != nil {
			return nil, err
		}
	}
	if msg.HTML != "" {
		if err := writeQuotedPart(altWriter, "text/html; charset=UTF-8", msg.HTML); err != nil {
			return nil, err
		}
	}
	if err := altWriter.Close(); err != nil {
		return nil, err
	}

	var body bytes.Buffer
	related := multipart.NewWriter(&body)
	part, err := related.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"multipart/alternative; boundary=" + altWriter.Boundary()},
	})
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(alt.Bytes()); err != nil {
		return nil, err
	}
	for _, a := range msg.Attachments {
		if err := writeAttachment(related, a); err != nil {
			return nil, err
		}
	}
	if err := related.Close(); err != nil {
		return nil, err
	}

	var out bytes.Buffer
	fmt.Fprintf(&out, "From: %s\r\n", from)
	fmt.Fprintf(&out, "To: %s\r\n", msg.To)
	fmt.Fprintf(&out, "Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", msg.Subject))
	out.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&out, "Content-Type: multipart/related; boundary=%s\r\n\r\n", related.Boundary())
	out.Write(body.Bytes())
	return out.Bytes(), nil
}

func writeQuotedPart(w *multipart.Writer, contentType, content string) error {
	part, err := w.CreatePart(textproto.MIMEHeader{
		"Content-Type":              {contentType},
		"Content-Transfer-Encoding": {"quoted-printable"},
	})
	if err != nil {
		return err
	}
	qp := quotedprintable.NewWriter(part)
	if _, err := qp.Write([]byte(content)); err != nil {
		return err
	}
	return qp.Close()
}

func writeAttachment(w *multipart.Writer, a domain.Attachment) error {
	contentType := a.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header := textproto.MIMEHeader{
		"Content-Type":              {contentType},
		"Content-Transfer-Encoding": {"base64"},
	}
	disposition := "attachment"
	if a.ContentID != "" {
		header.Set("Content-ID", "<"+a.ContentID+">")
		disposition = "inline"
	}
	header.Set("Content-Disposition", mime.FormatMediaType(disposition, map[string]string{"filename": a.Filename}))
	part, err := w.CreatePart(header)
	if err != nil {
		return err
	}
	encoded := base64.StdEncoding.EncodeToString(a.Data)
	const lineLen = 76
	for len(encoded) > lineLen {
		if _, err := part.Write([]byte(encoded[:lineLen] + "\r\n")); err != nil {
			return err
		}
		encoded = encoded[lineLen:]
	}
	_, err = part.Write([]byte(encoded + "\r\n"))
	return err
}
