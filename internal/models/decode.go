package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// blank reports whether a form value was left empty: missing, null or "".
func blank(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || string(trimmed) == "null" || string(trimmed) == `""`
}

// UnmarshalJSON treats an empty amount like a missing one, so Validate
// reports it instead of the decoder failing on it.
func (n *NewScholarship) UnmarshalJSON(data []byte) error {
	type plain NewScholarship
	var raw struct {
		plain
		Amount json.RawMessage `json:"amount"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*n = NewScholarship(raw.plain)
	n.Amount.Valid = false
	if blank(raw.Amount) {
		return nil
	}
	if err := n.Amount.UnmarshalJSON(raw.Amount); err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	return nil
}

// UnmarshalJSON accepts the scholarship id as a number or a numeric string;
// an empty one leaves it unset.
func (n *NewApplication) UnmarshalJSON(data []byte) error {
	type plain NewApplication
	var raw struct {
		plain
		ScholarshipID json.RawMessage `json:"scholarship_id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*n = NewApplication(raw.plain)
	n.ScholarshipID = 0
	if blank(raw.ScholarshipID) {
		return nil
	}

	value := raw.ScholarshipID
	var quoted string
	if err := json.Unmarshal(value, &quoted); err == nil {
		value = []byte(quoted)
	}
	id, err := strconv.ParseInt(string(bytes.TrimSpace(value)), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid scholarship_id: %w", err)
	}
	n.ScholarshipID = id
	return nil
}
