package recruit

import (
	"fmt"

	"github.com/osteele/liquid"
)

// fallbackName is bound to fullname when no display name is known, so
// templates that open with "Dear {{fullname}}" still read sensibly.
const fallbackName = "invitee"

// TemplateRenderer renders invitation subject and body templates.
// Templates are Liquid; the engine exposes fullname on both templates
// and invitation_url on the body.
type TemplateRenderer struct {
	engine *liquid.Engine
}

// NewTemplateRenderer creates the Liquid-backed renderer.
func NewTemplateRenderer() *TemplateRenderer {
	return &TemplateRenderer{engine: liquid.NewEngine()}
}

// RenderInvitation renders the personalized subject and body for one
// candidate.
func (r *TemplateRenderer) RenderInvitation(subjectTmpl, bodyTmpl, displayName, inviteURL string) (string, string, error) {
	name := displayName
	if name == "" {
		name = fallbackName
	}

	subject, err := r.engine.ParseAndRenderString(subjectTmpl, map[string]interface{}{
		"fullname": name,
	})
	if err != nil {
		return "", "", fmt.Errorf("render subject: %w", err)
	}

	body, err := r.engine.ParseAndRenderString(bodyTmpl, map[string]interface{}{
		"fullname":       name,
		"invitation_url": inviteURL,
	})
	if err != nil {
		return "", "", fmt.Errorf("render body: %w", err)
	}

	return subject, body, nil
}
