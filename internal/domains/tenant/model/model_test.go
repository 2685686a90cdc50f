package model_test

import (
	"database/sql"
	"testing"

	"bouncepro-reminder/internal/domains/tenant/model"
)

func TestTenant_DefaultTimezone(t *testing.T) {
	tests := []struct {
		name     string
		tenant   model.Tenant
		fallback string
		expected string
	}{
		{
			name:     "tenant timezone set",
			tenant:   model.Tenant{Timezone: sql.NullString{String: "America/Chicago", Valid: true}},
			fallback: "America/New_York",
			expected: "America/Chicago",
		},
		{
			name:     "tenant timezone null",
			tenant:   model.Tenant{},
			fallback: "America/New_York",
			expected: "America/New_York",
		},
		{
			name:     "tenant timezone blank",
			tenant:   model.Tenant{Timezone: sql.NullString{String: "", Valid: true}},
			fallback: "America/New_York",
			expected: "America/New_York",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tenant.DefaultTimezone(tt.fallback); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
