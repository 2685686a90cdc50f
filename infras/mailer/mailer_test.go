package mailer_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"bouncepro-reminder/config"
	"bouncepro-reminder/infras/mailer"
	otelMocks "bouncepro-reminder/infras/otel/mocks"
	"bouncepro-reminder/shared/failure"
)

func newMailer(baseURL, apiKey string) mailer.Mailer {
	cfg := &config.Config{}
	cfg.External.Brevo.APIKey = apiKey
	cfg.External.Brevo.BaseURL = baseURL
	cfg.External.Brevo.SenderEmail = "reminders@bouncepro.example"
	cfg.External.Brevo.SenderName = "BouncePro"
	cfg.External.Brevo.TimeoutSeconds = 2

	return mailer.New(cfg, otelMocks.NewOtel())
}

func newReminderEmail() mailer.ReminderEmail {
	return mailer.ReminderEmail{
		BookingID:      "b-100",
		RecipientEmail: "jane@example.com",
		RecipientName:  "Jane Doe",
		TenantID:       "t-1",
		TenantName:     "Bounce Kingdom",
		ItemName:       "Castle Combo x2",
		EventDate:      "Sunday, March 9, 2025",
		EventTime:      "7:30 AM",
		Location:       "123 Main St, Springfield, IL, 62704",
		BookingURL:     "https://app.bouncepro.example/bounce-kingdom/bookings/b-100",
	}
}

func TestBrevo_SendBookingReminder(t *testing.T) {
	var captured struct {
		Sender struct {
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"sender"`
		To []struct {
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"to"`
		Subject     string   `json:"subject"`
		HTMLContent string   `json:"htmlContent"`
		TextContent string   `json:"textContent"`
		Tags        []string `json:"tags"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/smtp/email", r.URL.Path)
		assert.Equal(t, "api-key-123", r.Header.Get("api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.NoError(t, json.Unmarshal(body, &captured))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"messageId": "msg-1"}`))
	}))
	defer srv.Close()

	m := newMailer(srv.URL, "api-key-123")

	err := m.SendBookingReminder(context.Background(), newReminderEmail())

	assert.NoError(t, err)
	assert.Equal(t, "reminders@bouncepro.example", captured.Sender.Email)
	assert.Equal(t, "BouncePro", captured.Sender.Name)

	if assert.Len(t, captured.To, 1) {
		assert.Equal(t, "jane@example.com", captured.To[0].Email)
		assert.Equal(t, "Jane Doe", captured.To[0].Name)
	}

	assert.Equal(t, "Reminder: Your Event is Tomorrow! - Bounce Kingdom", captured.Subject)
	assert.Equal(t, []string{"booking-reminder", "tenant:t-1", "booking:b-100"}, captured.Tags)

	assert.Contains(t, captured.HTMLContent, "Jane Doe")
	assert.Contains(t, captured.HTMLContent, "Castle Combo x2")
	assert.Contains(t, captured.HTMLContent, "Sunday, March 9, 2025")
	assert.Contains(t, captured.HTMLContent, "7:30 AM")
	assert.Contains(t, captured.HTMLContent, "https://app.bouncepro.example/bounce-kingdom/bookings/b-100")

	assert.Contains(t, captured.TextContent, "Bounce Kingdom")
	assert.Contains(t, captured.TextContent, "123 Main St, Springfield, IL, 62704")
}

func TestBrevo_SendBookingReminder_OmitsButtonWithoutURL(t *testing.T) {
	var html string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			HTMLContent string `json:"htmlContent"`
		}

		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &payload)
		html = payload.HTMLContent

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	email := newReminderEmail()
	email.BookingURL = ""

	m := newMailer(srv.URL, "api-key-123")

	assert.NoError(t, m.SendBookingReminder(context.Background(), email))
	assert.NotContains(t, html, "View Booking Details")
}

func TestBrevo_SendBookingReminder_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code": "invalid_parameter", "message": "email is missing"}`))
	}))
	defer srv.Close()

	m := newMailer(srv.URL, "api-key-123")

	err := m.SendBookingReminder(context.Background(), newReminderEmail())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "email is missing")
	assert.Contains(t, err.Error(), "400")
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestBrevo_SendBookingReminder_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	m := newMailer(srv.URL, "api-key-123")

	err := m.SendBookingReminder(context.Background(), newReminderEmail())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "503")
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}

func TestBrevo_SendBookingReminder_MissingAPIKey(t *testing.T) {
	m := newMailer("http://unused.invalid", "")

	err := m.SendBookingReminder(context.Background(), newReminderEmail())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
