package model

import (
	"database/sql"
	"strings"

	"bouncepro-reminder/shared/model"
)

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID       = "id"
	FieldTenantID = "tenant_id"
	FieldEmail    = "email"
)

type Customer struct {
	ID        string         `db:"id"`
	TenantID  string         `db:"tenant_id"`
	FirstName string         `db:"first_name"`
	LastName  string         `db:"last_name"`
	Email     sql.NullString `db:"email"`
	Phone     sql.NullString `db:"phone"`

	model.Metadata
}

// FullName joins the customer's name parts for email copy.
func (c *Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// ContactEmail returns the delivery address, or ok=false when the customer
// has none on file.
func (c *Customer) ContactEmail() (string, bool) {
	if !c.Email.Valid || c.Email.String == "" {
		return "", false
	}

	return c.Email.String, true
}
