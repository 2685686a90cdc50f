package dto_test

import (
	"reflect"
	"testing"
	"time"

	"bouncepro-reminder/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	from := time.Date(2025, 3, 9, 11, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		filter       dto.Filter
		expectedSQL  string
		expectedArgs map[string]any
	}{
		{
			name: "eq operator",
			filter: dto.Filter{
				Field:    "reminder_sent",
				Value:    false,
				Operator: dto.FilterOperatorEq,
				Table:    "bookings",
			},
			expectedSQL:  "bookings.reminder_sent = :reminder_sent",
			expectedArgs: map[string]any{"reminder_sent": false},
		},
		{
			name: "greater_eq operator",
			filter: dto.Filter{
				ArgName:  "start_date_from",
				Field:    "start_date",
				Value:    from,
				Operator: dto.FilterOperatorGreaterEq,
				Table:    "bookings",
			},
			expectedSQL:  "bookings.start_date >= :start_date_from",
			expectedArgs: map[string]any{"start_date_from": from},
		},
		{
			name: "less operator",
			filter: dto.Filter{
				ArgName:  "start_date_to",
				Field:    "start_date",
				Value:    from,
				Operator: dto.FilterOperatorLess,
				Table:    "bookings",
			},
			expectedSQL:  "bookings.start_date < :start_date_to",
			expectedArgs: map[string]any{"start_date_to": from},
		},
		{
			name: "greater operator",
			filter: dto.Filter{
				Field:    "total_price",
				Value:    100,
				Operator: dto.FilterOperatorGreater,
			},
			expectedSQL:  "total_price > :total_price",
			expectedArgs: map[string]any{"total_price": 100},
		},
		{
			name: "not_eq operator",
			filter: dto.Filter{
				Field:    "status",
				Value:    "cancelled",
				Operator: dto.FilterOperatorNotEq,
			},
			expectedSQL:  "status != :status",
			expectedArgs: map[string]any{"status": "cancelled"},
		},
		{
			name: "unknown operator returns empty clause",
			filter: dto.Filter{
				Field:    "status",
				Value:    "confirmed",
				Operator: "between",
			},
			expectedSQL:  "",
			expectedArgs: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := tt.filter.GetWhereClause()

			if sql != tt.expectedSQL {
				t.Errorf("expected clause %q, got %q", tt.expectedSQL, sql)
			}

			if !reflect.DeepEqual(args, tt.expectedArgs) {
				t.Errorf("expected args %+v, got %+v", tt.expectedArgs, args)
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	from := time.Date(2025, 3, 9, 11, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 9, 14, 0, 0, 0, time.UTC)

	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				ArgName:  "start_date_from",
				Field:    "start_date",
				Value:    from,
				Operator: dto.FilterOperatorGreaterEq,
			},
			dto.Filter{
				ArgName:  "start_date_to",
				Field:    "start_date",
				Value:    to,
				Operator: dto.FilterOperatorLess,
			},
			dto.Filter{
				Field:    "reminder_sent",
				Value:    false,
				Operator: dto.FilterOperatorEq,
			},
		},
	}

	sql, args := group.GetWhereClause()

	expectedSQL := "(start_date >= :start_date_from AND start_date < :start_date_to AND reminder_sent = :reminder_sent)"
	if sql != expectedSQL {
		t.Errorf("expected clause %q, got %q", expectedSQL, sql)
	}

	expectedArgs := map[string]any{
		"start_date_from": from,
		"start_date_to":   to,
		"reminder_sent":   false,
	}
	if !reflect.DeepEqual(args, expectedArgs) {
		t.Errorf("expected args %+v, got %+v", expectedArgs, args)
	}
}

func TestFilterGroup_GetWhereClause_Empty(t *testing.T) {
	group := dto.FilterGroup{}

	sql, args := group.GetWhereClause()

	if sql != "" {
		t.Errorf("expected empty clause, got %q", sql)
	}

	if len(args) != 0 {
		t.Errorf("expected no args, got %+v", args)
	}
}
