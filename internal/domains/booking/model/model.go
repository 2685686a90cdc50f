package model

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"bouncepro-reminder/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID             = "id"
	FieldTenantID       = "tenant_id"
	FieldCustomerID     = "customer_id"
	FieldStartDate      = "start_date"
	FieldEndDate        = "end_date"
	FieldStatus         = "status"
	FieldTotalPrice     = "total_price"
	FieldReminderSent   = "reminder_sent"
	FieldReminderSentAt = "reminder_sent_at"
)

const (
	StatusConfirmed = "confirmed"
)

type Booking struct {
	ID         string    `db:"id"`
	TenantID   string    `db:"tenant_id"`
	CustomerID string    `db:"customer_id"`
	StartDate  time.Time `db:"start_date"`
	EndDate    time.Time `db:"end_date"`
	Status     string    `db:"status"`
	TotalPrice float64   `db:"total_price"`

	DeliveryStreet sql.NullString `db:"delivery_street"`
	DeliveryCity   sql.NullString `db:"delivery_city"`
	DeliveryState  sql.NullString `db:"delivery_state"`
	DeliveryZip    sql.NullString `db:"delivery_zip"`

	ReminderSent   bool         `db:"reminder_sent"`
	ReminderSentAt sql.NullTime `db:"reminder_sent_at"`

	model.Metadata
}

// Address is the structured delivery address, or ok=false when the booking
// carries no delivery location at all.
func (b *Booking) Address() (Address, bool) {
	if !b.DeliveryStreet.Valid && !b.DeliveryCity.Valid {
		return Address{}, false
	}

	return Address{
		Street: b.DeliveryStreet.String,
		City:   b.DeliveryCity.String,
		State:  b.DeliveryState.String,
		Zip:    b.DeliveryZip.String,
	}, true
}

type Address struct {
	Street string
	City   string
	State  string
	Zip    string
}

// HasLocality reports whether the address is complete enough to geocode.
func (a Address) HasLocality() bool {
	return a.City != ""
}

// Formatted joins the non-empty address parts for geocoding and email copy.
func (a Address) Formatted() string {
	parts := []string{}

	for _, part := range []string{a.Street, a.City, a.State, a.Zip} {
		if part != "" {
			parts = append(parts, part)
		}
	}

	return strings.Join(parts, ", ")
}

const (
	ItemTableName = "booking_items"

	ItemFieldBookingID = "booking_id"
	ItemFieldPosition  = "position"
)

type BookingItem struct {
	ID           string `db:"id"`
	BookingID    string `db:"booking_id"`
	RentalItemID string `db:"rental_item_id"`
	Name         string `db:"name"`
	Quantity     int    `db:"quantity"`
	Position     int    `db:"position"`
}

// DisplayName renders the item line used in reminder emails.
func (i BookingItem) DisplayName() string {
	if i.Quantity > 1 {
		return fmt.Sprintf("%s x%d", i.Name, i.Quantity)
	}

	return i.Name
}
