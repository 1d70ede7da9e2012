package email

import (
	"testing"

	"github.com/stretchr/testify/require"

	"weddinginvites/internal/domain"
)

func TestTemplateRenderer_Invitation_WithImage(t *testing.T) {
	r := NewTemplateRenderer()
	subject, html, text, err := r.Render("invitation", &domain.InvitationEmailData{
		Subject:     "Alice & Bob are getting married",
		HasImage:    true,
		ImageCID:    "invitation_image",
		RSVPFormURL: "https://forms.example/rsvp",
	})
	require.NoError(t, err)
	require.Equal(t, "Alice & Bob are getting married", subject)
	require.Contains(t, html, `src="cid:invitation_image"`)
	require.Contains(t, html, "https://forms.example/rsvp")
	require.Contains(t, text, "attached")
}

func TestTemplateRenderer_Invitation_TextOnly(t *testing.T) {
	r := NewTemplateRenderer()
	subject, html, text, err := r.Render("invitation", &domain.InvitationEmailData{
		InvitationText: "Dear <Carol>, join us!",
	})
	require.NoError(t, err)
	require.Equal(t, "You're invited to our wedding", subject)
	require.NotContains(t, html, "cid:")
	require.Contains(t, html, "Dear &lt;Carol&gt;, join us!", "html body escapes generated text")
	require.Contains(t, text, "Dear <Carol>, join us!")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	r := NewTemplateRenderer()
	_, _, _, err := r.Render("missing", nil)
	require.Error(t, err)
}
