package mailer

import (
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
)

// The reminder templates are rendered once per send. They are deliberately
// plain: tenant branding is limited to the tenant name, everything else is
// inline-styled HTML that renders in every mail client.

var reminderHTML = htmltemplate.Must(htmltemplate.New("reminderHTML").Parse(`<html>
<body style="margin: 0; padding: 0; background-color: #f4f4f5; font-family: Arial, sans-serif;">
  <div style="max-width: 600px; margin: 0 auto; padding: 32px 24px; background-color: #ffffff;">
    <h2 style="margin: 0 0 24px; font-size: 24px; color: #1a1a1a;">Your Event is Tomorrow!</h2>

    <p style="margin: 0 0 20px; font-size: 16px; color: #333333;">Hi <strong>{{.RecipientName}}</strong>,</p>

    <p style="margin: 0 0 24px; font-size: 16px; color: #333333;">
      This is a friendly reminder from {{.TenantName}} that your rental is scheduled for tomorrow.
      Everything is ready for a fantastic event!
    </p>

    <div style="background-color: #fff7ed; border-left: 4px solid #f59e0b; padding: 20px; margin: 0 0 24px;">
      <h3 style="margin: 0 0 16px; font-size: 18px; color: #1a1a1a;">Event Details</h3>
      <p style="margin: 4px 0; font-size: 14px; color: #333333;"><strong>Item:</strong> {{.ItemName}}</p>
      <p style="margin: 4px 0; font-size: 14px; color: #333333;"><strong>Date:</strong> {{.EventDate}}</p>
      <p style="margin: 4px 0; font-size: 14px; color: #333333;"><strong>Time:</strong> {{.EventTime}}</p>
      <p style="margin: 4px 0; font-size: 14px; color: #333333;"><strong>Location:</strong> {{.Location}}</p>
    </div>

    <p style="margin: 0 0 24px; font-size: 14px; color: #666666;">
      Please ensure the setup area is clear and accessible. Our team will arrive approximately
      30 minutes before your event time. If you need to make last-minute changes, contact us immediately.
    </p>
{{if .BookingURL}}
    <div style="text-align: center; margin: 32px 0 0;">
      <a href="{{.BookingURL}}" style="display: inline-block; padding: 14px 32px; background-color: #6366f1; color: #ffffff; text-decoration: none; border-radius: 6px; font-weight: 600;">
        View Booking Details
      </a>
    </div>
{{end}}
  </div>
</body>
</html>`))

var reminderText = texttemplate.Must(texttemplate.New("reminderText").Parse(`REMINDER: YOUR EVENT IS TOMORROW!

Hi {{.RecipientName}},

This is a friendly reminder from {{.TenantName}} that your rental is scheduled for tomorrow.

Event Details:
- Item: {{.ItemName}}
- Date: {{.EventDate}}
- Time: {{.EventTime}}
- Location: {{.Location}}

Please ensure the setup area is clear and accessible. Our team will arrive
approximately 30 minutes before your event time.
{{if .BookingURL}}
View your booking: {{.BookingURL}}
{{end}}`))

func reminderSubject(email ReminderEmail) string {
	return fmt.Sprintf("Reminder: Your Event is Tomorrow! - %s", email.TenantName)
}

func renderReminder(email ReminderEmail) (html, text string, err error) {
	var htmlBuf, textBuf strings.Builder

	if err := reminderHTML.Execute(&htmlBuf, email); err != nil {
		return "", "", fmt.Errorf("failed to execute html template: %w", err)
	}

	if err := reminderText.Execute(&textBuf, email); err != nil {
		return "", "", fmt.Errorf("failed to execute text template: %w", err)
	}

	return htmlBuf.String(), textBuf.String(), nil
}
