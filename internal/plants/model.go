// Package plants defines the plant record model, the form validation rules,
// and the record store over the hosted backend's plants table.
package plants

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Date is a calendar date without a time component. It marshals as
// "2006-01-02" and tolerates full timestamps from the backend by dropping
// the time part.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

const dateLayout = "2006-01-02"

// ParseDate parses a strict YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

// DateOf truncates t to its calendar date.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// IsZero reports whether d is the zero date.
func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	// The backend may render date columns with a trailing time component.
	if idx := strings.IndexByte(s, 'T'); idx > 0 {
		s = s[:idx]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// PlantRecord is one houseplant row. ID, OwnerID and CreatedAt are assigned
// by the backend at creation and never change afterwards.
type PlantRecord struct {
	ID                   string    `json:"id"`
	OwnerID              string    `json:"user_id"`
	Name                 string    `json:"name"`
	Species              *string   `json:"species"`
	LastWatered          *Date     `json:"last_watered"`
	WateringIntervalDays *int      `json:"watering_interval"`
	CreatedAt            time.Time `json:"created_at"`
}

// Fields are the caller-writable columns of a plant record. Nil optionals
// serialize as JSON null, so an update clears what the form left empty.
type Fields struct {
	Name                 string  `json:"name"`
	Species              *string `json:"species"`
	LastWatered          *Date   `json:"last_watered"`
	WateringIntervalDays *int    `json:"watering_interval"`
}
