// Package model defines domain entities for the application.
package model

import (
	"errors"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// ErrInvalidDate indicates a date value that does not match the wire format.
var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// Date is a calendar date without a time component.
// It marshals to and from JSON as a "YYYY-MM-DD" string.
type Date struct {
	time.Time
}

// NewDate creates a Date from year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current date in UTC.
func Today() Date {
	now := time.Now().UTC()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// MarshalJSON encodes the date as a quoted "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format(DateLayout) + `"`), nil
}

// UnmarshalJSON decodes a quoted "YYYY-MM-DD" string.
// Anything else fails with ErrInvalidDate so malformed payloads are
// rejected during decode, before any persistence call.
func (d *Date) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return ErrInvalidDate
	}

	parsed, err := time.Parse(DateLayout, string(data[1:len(data)-1]))
	if err != nil {
		return ErrInvalidDate
	}

	d.Time = parsed
	return nil
}

// String returns the date in wire format.
func (d Date) String() string {
	return d.Time.Format(DateLayout)
}

// Equal reports whether two dates name the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.String() == other.String()
}

// Account represents a customer account record.
// ID is assigned by the persistence layer on insert and is immutable.
type Account struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	PhoneNumber string    `json:"phone_number"`
	DateJoined  Date      `json:"date_joined"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
