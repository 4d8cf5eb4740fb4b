package models

import (
	"github.com/shopspring/decimal"
)

type Scholarship struct {
	ID          int64           `json:"id" toml:"id"`
	Name        string          `json:"name" toml:"name"`
	Description string          `json:"description" toml:"description"`
	Deadline    string          `json:"deadline" toml:"deadline"`
	Amount      decimal.Decimal `json:"amount" toml:"amount"`
}

// NewScholarship carries the admin form fields. Deadline is an ISO-8601 date
// and is stored as typed, without checking that it is a real or future date.
type NewScholarship struct {
	Name        string              `json:"name" toml:"name" validate:"required"`
	Description string              `json:"description" toml:"description"`
	Deadline    string              `json:"deadline" toml:"deadline"`
	Amount      decimal.NullDecimal `json:"amount" toml:"amount" validate:"required"`
}

func (n *NewScholarship) Validate() error {
	return validate.Struct(n)
}
