package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"onboarding_backend/internal/platform/config"
)

func TestBuildAssignmentEmail(t *testing.T) {
	data := AssignmentEmailData{
		EmployeeName:    "Alice Johnson",
		OnboardingName:  "Backend Onboarding Q3",
		TypeName:        "Engineering",
		TypeDescription: "Ramp-up for backend engineers",
		StartDate:       "2026-09-01",
		EndDate:         "2026-09-30",
	}

	email := BuildAssignmentEmail("alice@example.com", data)

	assert.Equal(t, "alice@example.com", email.To)
	assert.Equal(t, "You have been assigned to onboarding 'Backend Onboarding Q3'", email.Subject)

	for _, body := range []string{email.TextBody, email.HTMLBody} {
		assert.Contains(t, body, "Alice Johnson")
		assert.Contains(t, body, "Backend Onboarding Q3")
		assert.Contains(t, body, "Engineering")
		assert.Contains(t, body, "Ramp-up for backend engineers")
		assert.Contains(t, body, "2026-09-01")
		assert.Contains(t, body, "2026-09-30")
	}
}

func TestBuildAssignmentEmail_EscapesHTML(t *testing.T) {
	data := AssignmentEmailData{
		EmployeeName:   "<script>alert(1)</script>",
		OnboardingName: "Onboarding",
	}

	email := BuildAssignmentEmail("x@example.com", data)

	assert.NotContains(t, email.HTMLBody, "<script>")
	assert.Contains(t, email.HTMLBody, "&lt;script&gt;")
}

func TestNew_DisabledConfigReturnsNoop(t *testing.T) {
	m := New(config.SMTPConfig{})
	_, ok := m.(noopMailer)
	assert.True(t, ok)
}
