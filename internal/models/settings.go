package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidSettings marks settings that fail validation so handlers can
// answer with a 400 instead of a generic internal error.
var ErrInvalidSettings = errors.New("invalid team settings")

var weekdays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

// TeamSettings is the typed per-team schedule configuration, stored as a
// jsonb column. All hours are UTC.
type TeamSettings struct {
	ReminderHour    *int    `json:"reminder_hour,omitempty"`
	ReportHour      *int    `json:"report_hour,omitempty"`
	WeeklyReportDay *string `json:"weekly_report_day,omitempty"`
}

const (
	DefaultReminderHour = 17
	DefaultReportHour   = 18
)

func (s TeamSettings) Validate() error {
	if s.ReminderHour != nil && (*s.ReminderHour < 0 || *s.ReminderHour > 23) {
		return fmt.Errorf("%w: reminder_hour must be in [0, 23], got %d", ErrInvalidSettings, *s.ReminderHour)
	}
	if s.ReportHour != nil && (*s.ReportHour < 0 || *s.ReportHour > 23) {
		return fmt.Errorf("%w: report_hour must be in [0, 23], got %d", ErrInvalidSettings, *s.ReportHour)
	}
	if s.WeeklyReportDay != nil && !weekdays[*s.WeeklyReportDay] {
		return fmt.Errorf("%w: weekly_report_day must be a lowercase weekday name, got %q", ErrInvalidSettings, *s.WeeklyReportDay)
	}
	return nil
}

// Merge applies patch on top of s field by field. Fields absent from the
// patch keep their current value.
func (s TeamSettings) Merge(patch TeamSettings) TeamSettings {
	out := s
	if patch.ReminderHour != nil {
		out.ReminderHour = patch.ReminderHour
	}
	if patch.ReportHour != nil {
		out.ReportHour = patch.ReportHour
	}
	if patch.WeeklyReportDay != nil {
		out.WeeklyReportDay = patch.WeeklyReportDay
	}
	return out
}

func (s TeamSettings) ReminderHourOrDefault() int {
	if s.ReminderHour != nil {
		return *s.ReminderHour
	}
	return DefaultReminderHour
}

func (s TeamSettings) ReportHourOrDefault() int {
	if s.ReportHour != nil {
		return *s.ReportHour
	}
	return DefaultReportHour
}

func (s TeamSettings) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *TeamSettings) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	case nil:
		*s = TeamSettings{}
		return nil
	}
	return errors.New("unsupported source type for TeamSettings")
}
