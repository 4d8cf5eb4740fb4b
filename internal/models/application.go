package models

import (
	"errors"
	"fmt"
	"strings"
)

type Status string

const (
	StatusApplied  Status = "applied"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

var ErrInvalidStatus = errors.New("invalid status")

var Statuses = []Status{StatusApplied, StatusApproved, StatusRejected}

func (s Status) Valid() bool {
	switch s {
	case StatusApplied, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

func ParseStatus(raw string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(raw)))
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q, must be applied, approved or rejected", ErrInvalidStatus, raw)
	}
	return status, nil
}

type Application struct {
	ID            int64  `json:"id" toml:"id"`
	StudentName   string `json:"student_name" toml:"student_name"`
	ScholarshipID int64  `json:"scholarship_id" toml:"scholarship_id"`
	Status        Status `json:"status" toml:"status"`
}

type NewApplication struct {
	StudentName   string `json:"student_name" toml:"student_name" validate:"required"`
	ScholarshipID int64  `json:"scholarship_id" toml:"scholarship_id" validate:"required"`
}

func (n *NewApplication) Validate() error {
	return validate.Struct(n)
}
