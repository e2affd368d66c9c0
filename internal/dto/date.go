package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/recon_workbench/internal/core/domain"
)

// CalendarDate accepts either a plain "2006-01-02" date or an RFC 3339 timestamp.
// Timestamps keep the calendar day written in their own offset and drop the time of day,
// so the value is always midnight UTC.
type CalendarDate struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *CalendarDate) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(domain.DateLayout, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("date %q must be YYYY-MM-DD or RFC 3339", s)
	}
	d.Time = CalendarDate{Time: t}.UTCDay()
	return nil
}

// UTCDay returns the calendar day of d at midnight UTC, or the zero time when d is unset.
func (d CalendarDate) UTCDay() time.Time {
	if d.IsZero() {
		return time.Time{}
	}
	return time.Date(d.Year(), d.Month(), d.Time.Day(), 0, 0, 0, 0, time.UTC)
}

// MarshalJSON implements json.Marshaler.
func (d CalendarDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(domain.DateLayout))
}
