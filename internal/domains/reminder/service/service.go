package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"bouncepro-reminder/config"
	"bouncepro-reminder/infras/geolocation"
	"bouncepro-reminder/infras/mailer"
	"bouncepro-reminder/infras/otel"
	bookingModel "bouncepro-reminder/internal/domains/booking/model"
	bookingRepo "bouncepro-reminder/internal/domains/booking/repository"
	customerModel "bouncepro-reminder/internal/domains/customer/model"
	customerRepo "bouncepro-reminder/internal/domains/customer/repository"
	"bouncepro-reminder/internal/domains/reminder/model"
	tenantModel "bouncepro-reminder/internal/domains/tenant/model"
	tenantRepo "bouncepro-reminder/internal/domains/tenant/repository"
	"bouncepro-reminder/shared"
	"bouncepro-reminder/shared/cache"
	"bouncepro-reminder/shared/constant"
	"bouncepro-reminder/shared/timezone"
	"bouncepro-reminder/shared/validator"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Reminder runs the booking reminder pipeline: fetch candidates in the
// coarse UTC super-window, confirm each against its customer's precise
// local-time window, send the email, and mark the booking reminded only
// after a successful send.
type Reminder interface {
	RunOnce(ctx context.Context) (model.RunStats, error)
}

type outcome int

const (
	outcomeSent outcome = iota + 1
	outcomeSkipped
	outcomeFailed
)

type serviceImpl struct {
	bookings  bookingRepo.Booking
	customers customerRepo.Customer
	tenants   tenantRepo.Tenant
	geo       geolocation.Geolocator
	mail      mailer.Mailer
	cache     cache.RedisCache
	cfg       *config.Config
	otel      otel.Otel
	now       func() time.Time
}

func New(
	bookings bookingRepo.Booking,
	customers customerRepo.Customer,
	tenants tenantRepo.Tenant,
	geo geolocation.Geolocator,
	mail mailer.Mailer,
	cache cache.RedisCache,
	cfg *config.Config,
	otel otel.Otel,
) Reminder {
	return NewWithClock(bookings, customers, tenants, geo, mail, cache, cfg, otel, time.Now)
}

// NewWithClock injects the clock so window arithmetic is deterministic in
// tests. Production wiring uses New.
func NewWithClock(
	bookings bookingRepo.Booking,
	customers customerRepo.Customer,
	tenants tenantRepo.Tenant,
	geo geolocation.Geolocator,
	mail mailer.Mailer,
	cache cache.RedisCache,
	cfg *config.Config,
	otel otel.Otel,
	now func() time.Time,
) Reminder {
	return &serviceImpl{
		bookings:  bookings,
		customers: customers,
		tenants:   tenants,
		geo:       geo,
		mail:      mail,
		cache:     cache,
		cfg:       cfg,
		otel:      otel,
		now:       now,
	}
}

// RunOnce executes one pass over the candidate bookings. A failing candidate
// query abandons the whole run (the loop retries on its next tick); any
// failure past that point is contained to its single booking.
func (s *serviceImpl) RunOnce(ctx context.Context) (stats model.RunStats, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reminder.RunOnce")
	defer scope.End()
	defer scope.TraceIfError(err)

	utcNow := s.now().UTC()

	stats.RunID = uuid.NewString()
	stats.StartedAt = utcNow

	queryFrom := utcNow.Add(constant.ReminderQueryLeadStart)
	queryTo := utcNow.Add(constant.ReminderQueryLeadEnd)

	log.Info().
		Str("runID", stats.RunID).
		Time("queryFrom", queryFrom).
		Time("queryTo", queryTo).
		Msg("Starting reminder run")

	candidates, err := s.bookings.FindReminderCandidates(ctx, queryFrom, queryTo, s.cfg.Reminder.CandidateLimit)
	if err != nil {
		log.Error().Err(err).Str("runID", stats.RunID).Msg("failed to query reminder candidates")

		stats.FinishedAt = s.now().UTC()

		return stats, fmt.Errorf("failed to query reminder candidates: %w", err)
	}

	stats.Checked = len(candidates)

	if stats.Checked == 0 {
		log.Info().Str("runID", stats.RunID).Msg("No reminders to send this run")

		stats.FinishedAt = s.now().UTC()

		return stats, nil
	}

	log.Info().
		Str("runID", stats.RunID).
		Int("candidates", stats.Checked).
		Msg("Found candidate bookings for reminder")

	// Bounded worker pool over the batch. Candidates are distinct rows, so
	// no two workers ever touch the same booking; each worker runs its
	// booking's resolve-check-send-mark sequence start to finish.
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		sem = make(chan struct{}, s.cfg.Reminder.Workers)
	)

	for _, candidate := range candidates {
		wg.Add(1)
		sem <- struct{}{}

		go func(booking bookingModel.Booking) {
			defer wg.Done()
			defer func() { <-sem }()

			result := s.processBooking(ctx, utcNow, stats.RunID, booking)

			mu.Lock()
			defer mu.Unlock()

			switch result {
			case outcomeSent:
				stats.Sent++
			case outcomeSkipped:
				stats.Skipped++
			case outcomeFailed:
				stats.Failed++
			}
		}(candidate)
	}

	wg.Wait()

	stats.FinishedAt = s.now().UTC()

	log.Info().
		Str("runID", stats.RunID).
		Int("checked", stats.Checked).
		Int("sent", stats.Sent).
		Int("skipped", stats.Skipped).
		Int("failed", stats.Failed).
		Dur("duration", stats.Duration()).
		Msg("Reminder run completed")

	return stats, nil
}

// processBooking runs the strict per-booking sequence: resolve customer and
// tenant, resolve timezone, compute the precise window, re-check membership,
// send, and only then mark. The mark never precedes the send.
func (s *serviceImpl) processBooking(ctx context.Context, utcNow time.Time, runID string, booking bookingModel.Booking) outcome {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reminder.processBooking")
	defer scope.End()

	scope.SetAttribute("booking.id", booking.ID)

	customer, err := s.customers.Get(ctx, shared.FilterByID(booking.CustomerID, customerModel.FieldID, customerModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("runID", runID).Str("bookingID", booking.ID).Msg("failed to load customer")

		return outcomeFailed
	}

	if customer.ID == constant.Empty {
		log.Warn().Str("runID", runID).Str("bookingID", booking.ID).Msg("customer not found for booking")

		return outcomeFailed
	}

	email, ok := customer.ContactEmail()
	if !ok {
		log.Warn().Str("runID", runID).Str("bookingID", booking.ID).Msg("customer has no email, cannot send reminder")

		return outcomeFailed
	}

	tenant, err := s.tenants.Get(ctx, shared.FilterByID(booking.TenantID, tenantModel.FieldID, tenantModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("runID", runID).Str("bookingID", booking.ID).Msg("failed to load tenant")

		return outcomeFailed
	}

	if tenant.ID == constant.Empty {
		log.Warn().Str("runID", runID).Str("bookingID", booking.ID).Msg("tenant not found for booking")

		return outcomeFailed
	}

	zone := s.resolveTimezone(ctx, booking, tenant.DefaultTimezone(s.cfg.App.DefaultTimezone))

	window := timezone.ReminderWindow(utcNow, zone, reminderLeadStartHours, reminderLeadEndHours)
	if !window.Contains(booking.StartDate) {
		// Only a candidate because of the coarse super-window.
		log.Debug().
			Str("runID", runID).
			Str("bookingID", booking.ID).
			Str("timezone", zone).
			Time("startDate", booking.StartDate).
			Time("windowStart", window.Start).
			Time("windowEnd", window.End).
			Msg("booking outside precise reminder window, skipping")

		return outcomeSkipped
	}

	payload, err := s.composeEmail(ctx, booking, customer, tenant, email, zone)
	if err != nil {
		log.Warn().Err(err).Str("runID", runID).Str("bookingID", booking.ID).Msg("reminder payload rejected")

		return outcomeFailed
	}

	sendCtx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Reminder.SendTimeoutSeconds)*time.Second)
	defer cancel()

	if err := s.mail.SendBookingReminder(sendCtx, payload); err != nil {
		// Leave the booking untouched: it stays a candidate for the next
		// run while its window lasts.
		log.Error().Err(err).Str("runID", runID).Str("bookingID", booking.ID).Msg("reminder email send failed")

		return outcomeFailed
	}

	claimed, err := s.bookings.MarkReminderSent(ctx, booking.ID, s.now().UTC())
	if err != nil {
		// The email already went out; a failed mark risks one duplicate on
		// the next run. Surface it loudly instead of pretending otherwise.
		log.Error().Err(err).Str("runID", runID).Str("bookingID", booking.ID).Msg("reminder sent but mark write failed")

		return outcomeFailed
	}

	if !claimed {
		log.Warn().Str("runID", runID).Str("bookingID", booking.ID).Msg("booking was already marked reminded")
	}

	log.Info().
		Str("runID", runID).
		Str("bookingID", booking.ID).
		Str("timezone", zone).
		Str("customerEmail", email).
		Msg("Reminder sent")

	return outcomeSent
}

const (
	reminderLeadStartHours = int(constant.ReminderLeadStart / time.Hour)
	reminderLeadEndHours   = int(constant.ReminderLeadEnd / time.Hour)

	defaultItemName = "Bounce House"
)

func (s *serviceImpl) composeEmail(
	ctx context.Context,
	booking bookingModel.Booking,
	customer customerModel.Customer,
	tenant tenantModel.Tenant,
	email, zone string,
) (mailer.ReminderEmail, error) {
	itemName := defaultItemName

	item, err := s.bookings.GetFirstItem(ctx, booking.ID)
	if err != nil {
		log.Warn().Err(err).Str("bookingID", booking.ID).Msg("failed to load booking item, using default name")
	} else if item.ID != constant.Empty {
		itemName = item.DisplayName()
	}

	location := "TBD"
	if addr, ok := booking.Address(); ok {
		location = addr.Formatted()
	}

	payload := mailer.ReminderEmail{
		BookingID:      booking.ID,
		RecipientEmail: email,
		RecipientName:  customer.FullName(),
		TenantID:       tenant.ID,
		TenantName:     tenant.Name,
		ItemName:       itemName,
		EventDate:      timezone.FormatIn(booking.StartDate, zone, constant.EventDateFormat),
		EventTime:      timezone.FormatIn(booking.StartDate, zone, constant.EventTimeFormat),
		Location:       location,
		BookingURL:     s.bookingURL(booking, tenant),
	}

	if err := validator.ValidateStruct(&payload); err != nil {
		return mailer.ReminderEmail{}, fmt.Errorf("invalid reminder payload: %w", err)
	}

	return payload, nil
}

func (s *serviceImpl) bookingURL(booking bookingModel.Booking, tenant tenantModel.Tenant) string {
	if s.cfg.App.BookingBaseURL == "" {
		return ""
	}

	return fmt.Sprintf("%s/%s/bookings/%s", s.cfg.App.BookingBaseURL, tenant.Slug, booking.ID)
}
