package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"bouncepro-reminder/config"
	"bouncepro-reminder/infras/otel"
	"bouncepro-reminder/shared/constant"
	"bouncepro-reminder/shared/failure"
)

// ReminderEmail is the assembled content of one booking reminder.
type ReminderEmail struct {
	BookingID      string `validate:"required"`
	RecipientEmail string `validate:"required,email"`
	RecipientName  string `validate:"required"`
	TenantID       string `validate:"required"`
	TenantName     string `validate:"required"`
	ItemName       string `validate:"required"`
	EventDate      string `validate:"required"`
	EventTime      string `validate:"required"`
	Location       string `validate:"required"`
	BookingURL     string
}

// Mailer dispatches reminder notifications. Failures are ordinary errors;
// the mailer never panics on a rejected send.
type Mailer interface {
	SendBookingReminder(ctx context.Context, email ReminderEmail) error
}

type brevo struct {
	cfg  *config.Config
	hc   *http.Client
	otel otel.Otel
}

// New builds the Brevo transactional email client.
func New(cfg *config.Config, ot otel.Otel) Mailer {
	return &brevo{
		cfg:  cfg,
		hc:   &http.Client{Timeout: time.Duration(cfg.External.Brevo.TimeoutSeconds) * time.Second},
		otel: ot,
	}
}

type emailAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sendRequest struct {
	Sender      emailAddress   `json:"sender"`
	To          []emailAddress `json:"to"`
	Subject     string         `json:"subject"`
	HTMLContent string         `json:"htmlContent"`
	TextContent string         `json:"textContent"`
	Tags        []string       `json:"tags,omitempty"`
}

type sendError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (b *brevo) SendBookingReminder(ctx context.Context, email ReminderEmail) (err error) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".mailer.SendBookingReminder")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("mailer.booking_id", email.BookingID)

	if b.cfg.External.Brevo.APIKey == "" {
		return fmt.Errorf("brevo API key is not configured")
	}

	htmlContent, textContent, err := renderReminder(email)
	if err != nil {
		return fmt.Errorf("failed to render reminder email: %w", err)
	}

	payload := sendRequest{
		Sender: emailAddress{
			Email: b.cfg.External.Brevo.SenderEmail,
			Name:  b.cfg.External.Brevo.SenderName,
		},
		To:          []emailAddress{{Email: email.RecipientEmail, Name: email.RecipientName}},
		Subject:     reminderSubject(email),
		HTMLContent: htmlContent,
		TextContent: textContent,
		Tags:        []string{"booking-reminder", "tenant:" + email.TenantID, "booking:" + email.BookingID},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.cfg.External.Brevo.BaseURL+"/smtp/email", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("api-key", b.cfg.External.Brevo.APIKey)

	resp, err := b.hc.Do(req)
	if err != nil {
		return fmt.Errorf("email request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read email response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var sendErr sendError

		_ = json.Unmarshal(respBody, &sendErr)

		msg := fmt.Sprintf("email send rejected with status %d", resp.StatusCode)
		if sendErr.Message != "" {
			msg = fmt.Sprintf("email send rejected: %s (status %d)", sendErr.Message, resp.StatusCode)
		}

		// The upstream status picks the failure class: a 4xx means the
		// payload will never be accepted, a 5xx may succeed on a later run.
		if resp.StatusCode < http.StatusInternalServerError {
			return failure.BadRequest(errors.New(msg))
		}

		return failure.InternalError(errors.New(msg))
	}

	log.Debug().
		Str("bookingID", email.BookingID).
		Str("recipient", email.RecipientEmail).
		Msg("Reminder email dispatched")

	return nil
}
