package model

import (
	"database/sql"

	"bouncepro-reminder/shared/model"
)

const (
	TableName  = "tenants"
	EntityName = "tenant"

	FieldID   = "id"
	FieldSlug = "slug"
)

type Tenant struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	Slug         string         `db:"slug"`
	Timezone     sql.NullString `db:"timezone"`
	ContactEmail sql.NullString `db:"contact_email"`
	ContactPhone sql.NullString `db:"contact_phone"`

	model.Metadata
}

// DefaultTimezone returns the tenant's configured timezone, or fallback when
// none is set. It is the safety net the per-booking resolver degrades to.
func (t *Tenant) DefaultTimezone(fallback string) string {
	if t.Timezone.Valid && t.Timezone.String != "" {
		return t.Timezone.String
	}

	return fallback
}
