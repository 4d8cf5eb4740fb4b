package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScholarship_Validate(t *testing.T) {
	amount := decimal.NewNullDecimal(decimal.NewFromInt(2000))

	testCases := []struct {
		name    string
		fields  NewScholarship
		missing []string
	}{
		{
			name:   "name and amount present",
			fields: NewScholarship{Name: "STEM Grant", Amount: amount},
		},
		{
			name:   "zero amount still counts as present",
			fields: NewScholarship{Name: "Book Voucher", Amount: decimal.NewNullDecimal(decimal.Zero)},
		},
		{
			name:    "missing name",
			fields:  NewScholarship{Amount: amount},
			missing: []string{"name"},
		},
		{
			name:    "missing amount",
			fields:  NewScholarship{Name: "STEM Grant", Deadline: "2024-01-01"},
			missing: []string{"amount"},
		},
		{
			name:    "missing both",
			fields:  NewScholarship{Description: "nothing else"},
			missing: []string{"name", "amount"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.fields.Validate()
			if tc.missing == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tc.missing, MissingFields(err))
		})
	}
}

func TestNewApplication_Validate(t *testing.T) {
	assert.NoError(t, (&NewApplication{StudentName: "John Doe", ScholarshipID: 1}).Validate())

	err := (&NewApplication{ScholarshipID: 1}).Validate()
	assert.Equal(t, []string{"student_name"}, MissingFields(err))

	err = (&NewApplication{StudentName: "John Doe"}).Validate()
	assert.Equal(t, []string{"scholarship_id"}, MissingFields(err))
}

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{"applied", "Approved", " rejected "} {
		status, err := ParseStatus(raw)
		require.NoError(t, err, raw)
		assert.True(t, status.Valid())
	}

	_, err := ParseStatus("pending")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = ParseStatus("")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestMissingFields_NonValidationError(t *testing.T) {
	assert.Nil(t, MissingFields(nil))
	assert.Nil(t, MissingFields(ErrInvalidStatus))
}

func TestNewScholarship_UnmarshalJSON(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		present bool
		amount  string
	}{
		{name: "number", body: `{"name":"X","amount":2000}`, present: true, amount: "2000"},
		{name: "numeric string", body: `{"name":"X","amount":"250.50"}`, present: true, amount: "250.5"},
		{name: "zero", body: `{"name":"X","amount":0}`, present: true, amount: "0"},
		{name: "empty string", body: `{"name":"X","amount":""}`},
		{name: "null", body: `{"name":"X","amount":null}`},
		{name: "missing", body: `{"name":"X"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var fields NewScholarship
			require.NoError(t, json.Unmarshal([]byte(tc.body), &fields))
			assert.Equal(t, "X", fields.Name)
			assert.Equal(t, tc.present, fields.Amount.Valid)
			if tc.present {
				assert.Equal(t, tc.amount, fields.Amount.Decimal.String())
				assert.NoError(t, fields.Validate())
			} else {
				assert.Equal(t, []string{"amount"}, MissingFields(fields.Validate()))
			}
		})
	}

	var fields NewScholarship
	assert.Error(t, json.Unmarshal([]byte(`{"name":"X","amount":"lots"}`), &fields))
}

func TestNewApplication_UnmarshalJSON(t *testing.T) {
	testCases := []struct {
		name string
		body string
		id   int64
	}{
		{name: "number", body: `{"student_name":"John Doe","scholarship_id":2}`, id: 2},
		{name: "numeric string", body: `{"student_name":"John Doe","scholarship_id":"2"}`, id: 2},
		{name: "empty select", body: `{"student_name":"John Doe","scholarship_id":""}`},
		{name: "missing", body: `{"student_name":"John Doe"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var fields NewApplication
			require.NoError(t, json.Unmarshal([]byte(tc.body), &fields))
			assert.Equal(t, "John Doe", fields.StudentName)
			assert.Equal(t, tc.id, fields.ScholarshipID)
			if tc.id == 0 {
				assert.Equal(t, []string{"scholarship_id"}, MissingFields(fields.Validate()))
			}
		})
	}

	var fields NewApplication
	assert.Error(t, json.Unmarshal([]byte(`{"student_name":"John Doe","scholarship_id":"abc"}`), &fields))
}
