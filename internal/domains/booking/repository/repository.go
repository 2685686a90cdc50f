package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bouncepro-reminder/infras/otel"
	"bouncepro-reminder/infras/postgres"
	"bouncepro-reminder/internal/domains/booking/model"
	"bouncepro-reminder/shared/constant"
	gDto "bouncepro-reminder/shared/dto"
	"bouncepro-reminder/shared/logger"
	gRepo "bouncepro-reminder/shared/repository"
)

type Booking interface {
	FindReminderCandidates(ctx context.Context, from, to time.Time, limit int) ([]model.Booking, error)
	MarkReminderSent(ctx context.Context, id string, sentAt time.Time) (bool, error)
	GetFirstItem(ctx context.Context, bookingID string) (model.BookingItem, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, db, otel),
		db:         db,
		otel:       otel,
	}
}

// reminderCandidateFilter selects bookings in the half-open start range
// [from, to) that have not been reminded yet. The reminder_sent predicate is
// what keeps a booking from being picked up again on the run after its
// reminder went out.
func reminderCandidateFilter(from, to time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				ArgName:  "start_date_from",
				Field:    model.FieldStartDate,
				Value:    from,
				Operator: gDto.FilterOperatorGreaterEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "start_date_to",
				Field:    model.FieldStartDate,
				Value:    to,
				Operator: gDto.FilterOperatorLess,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldReminderSent,
				Value:    false,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}

// FindReminderCandidates returns at most limit bookings whose start date
// falls in the half-open UTC range [from, to) and which have not been
// reminded yet. Order is unspecified.
func (repo *repositoryImpl) FindReminderCandidates(ctx context.Context, from, to time.Time, limit int) ([]model.Booking, error) {
	return repo.GetAll(ctx, gDto.QueryParams{Limit: limit}, reminderCandidateFilter(from, to)) //nolint:wrapcheck
}

// MarkReminderSent flips reminder_sent for the given booking. The write is
// conditional on reminder_sent still being false, so a concurrent or
// repeated mark can never double-flip; the returned bool reports whether
// this call performed the flip.
func (repo *repositoryImpl) MarkReminderSent(ctx context.Context, id string, sentAt time.Time) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.MarkReminderSent")
	defer scope.End()

	query := fmt.Sprintf(
		"UPDATE %s SET %s = true, %s = :sent_at WHERE %s = :id AND %s = false",
		model.TableName,
		model.FieldReminderSent,
		model.FieldReminderSentAt,
		model.FieldID,
		model.FieldReminderSent,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.Write.NamedExecContext(ctx, query, map[string]any{
		"id":      id,
		"sent_at": sentAt,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to mark reminder sent (%s): %w", model.EntityName, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to read mark result (%s): %w", model.EntityName, err)
	}

	return affected == 1, nil
}

// GetFirstItem returns the first line item of a booking, for display in the
// reminder email. A booking without items returns a zero item and no error.
func (repo *repositoryImpl) GetFirstItem(ctx context.Context, bookingID string) (model.BookingItem, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetFirstItem")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT id, booking_id, rental_item_id, name, quantity, position FROM %s WHERE %s = :booking_id ORDER BY %s ASC LIMIT 1",
		model.ItemTableName,
		model.ItemFieldBookingID,
		model.ItemFieldPosition,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var item model.BookingItem

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return item, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &item, map[string]any{"booking_id": bookingID})
	if errors.Is(err, sql.ErrNoRows) {
		return item, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return item, fmt.Errorf("failed to get booking item (%s): %w", model.EntityName, err)
	}

	return item, nil
}
