package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

// AssignmentEmailData holds data for the assignment notification templates.
type AssignmentEmailData struct {
	EmployeeName    string
	OnboardingName  string
	TypeName        string
	TypeDescription string
	StartDate       string // e.g., "2026-01-15"
	EndDate         string
}

// BuildAssignmentEmail creates the notification sent to an employee when
// they are assigned to an onboarding process.
func BuildAssignmentEmail(to string, data AssignmentEmailData) Email {
	return Email{
		To:       to,
		Subject:  fmt.Sprintf("You have been assigned to onboarding '%s'", data.OnboardingName),
		TextBody: buildAssignmentText(data),
		HTMLBody: buildAssignmentHTML(data),
	}
}

func buildAssignmentText(data AssignmentEmailData) string {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("Hello, %s!\n\n", data.EmployeeName))
	buf.WriteString(fmt.Sprintf("You have been assigned to the onboarding process %q.\n\n", data.OnboardingName))
	buf.WriteString(fmt.Sprintf("Onboarding type: %s\n", data.TypeName))
	buf.WriteString(fmt.Sprintf("Description: %s\n", data.TypeDescription))
	buf.WriteString(fmt.Sprintf("Start date: %s\n", data.StartDate))
	buf.WriteString(fmt.Sprintf("End date: %s\n\n", data.EndDate))
	buf.WriteString("Please review the details and get ready for your integration process.\n\nWelcome aboard!\n")
	return buf.String()
}

func buildAssignmentHTML(data AssignmentEmailData) string {
	tmpl := template.Must(template.New("assignment").Parse(assignmentHTMLTemplate))
	var buf bytes.Buffer
	_ = tmpl.Execute(&buf, data)
	return buf.String()
}

const assignmentHTMLTemplate = `<h2>Hello, {{.EmployeeName}}!</h2>
<p>You have been assigned to the onboarding process <strong>"{{.OnboardingName}}"</strong>.</p>
<ul>
  <li><strong>Onboarding type:</strong> {{.TypeName}}</li>
  <li><strong>Description:</strong> {{.TypeDescription}}</li>
  <li><strong>Start date:</strong> {{.StartDate}}</li>
  <li><strong>End date:</strong> {{.EndDate}}</li>
</ul>
<p>Please review the details and get ready for your integration process.</p>
<p>Welcome aboard!</p>
`
