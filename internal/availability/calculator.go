// Package availability computes the open booking slots of the studio and
// guards write paths against double-booking a slot.
package availability

import (
	"fmt"
	"time"
)

// Studio policy defaults: one-hour slots from 10:00 to 18:00 UTC,
// Monday through Saturday.
const (
	DefaultOpenHour    = 10
	DefaultCloseHour   = 18
	DefaultSlotMinutes = 60
)

// Config is the studio's slot policy. Slots start on each whole hour in
// [OpenHour, CloseHour) on working weekdays.
type Config struct {
	OpenHour    int
	CloseHour   int
	SlotMinutes int
}

func DefaultConfig() Config {
	return Config{
		OpenHour:    DefaultOpenHour,
		CloseHour:   DefaultCloseHour,
		SlotMinutes: DefaultSlotMinutes,
	}
}

func workingDay(wd time.Weekday) bool {
	return wd != time.Sunday
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingSource
type BookingSource interface {
	BookingTimes(artistID int, from, to time.Time) ([]time.Time, error)
}

// Calculator maps an artist and a calendar month to the open slots per day.
type Calculator struct {
	cfg    Config
	source BookingSource
}

func NewCalculator(cfg Config, source BookingSource) *Calculator {
	return &Calculator{cfg: cfg, source: source}
}

// MonthByDay returns a mapping from "YYYY-MM-DD" day keys to the ascending
// RFC 3339 UTC instants of the day's free slots. Days with nothing to offer,
// whether non-working or fully booked, are absent from the mapping.
func (c *Calculator) MonthByDay(artistID, year, month int) (map[string][]string, error) {
	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	bookedTimes, err := c.source.BookingTimes(artistID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings for month: %w", err)
	}

	booked := make(map[string]struct{}, len(bookedTimes))
	for _, t := range bookedTimes {
		booked[t.UTC().Format(time.RFC3339)] = struct{}{}
	}

	days := make(map[string][]string)
	for d := monthStart; d.Before(monthEnd); d = d.AddDate(0, 0, 1) {
		if !workingDay(d.Weekday()) {
			continue
		}

		var slots []string
		for m := c.cfg.OpenHour * 60; m < c.cfg.CloseHour*60; m += c.cfg.SlotMinutes {
			slot := d.Add(time.Duration(m) * time.Minute)
			iso := slot.Format(time.RFC3339)
			if _, taken := booked[iso]; !taken {
				slots = append(slots, iso)
			}
		}

		if len(slots) > 0 {
			days[d.Format("2006-01-02")] = slots
		}
	}

	return days, nil
}
