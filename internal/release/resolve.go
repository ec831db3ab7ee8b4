// Package release computes release scheduling values: the resolved
// release instant, the date-only release date, and the "coming soon"
// display state. Everything here is pure; callers inject the current
// time.
package release

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidInput marks an unusable release_date (missing where required,
// or unparseable). It is the only fatal condition in this package; bad
// optional fields degrade instead of failing.
var ErrInvalidInput = errors.New("invalid input")

// Input is the raw scheduling payload as submitted by the admin form.
// ComingSoon nil means "no explicit override".
type Input struct {
	ReleaseDate string // "YYYY-MM-DD", optional
	ReleaseTime string // "HH:MM" 24h, optional
	TimeZone    string // IANA zone name, optional
	ComingSoon  *bool
}

// Resolved is what gets persisted verbatim into the release record.
type Resolved struct {
	ReleaseDate *time.Time // midnight UTC of the entered day
	ReleaseAt   *time.Time // absolute instant for live comparisons
	ComingSoon  bool
}

// Resolve derives ReleaseDate/ReleaseAt/ComingSoon from the submitted
// fields. Rules:
//
//   - No date at all: null timing, coming soon unless overridden. A time
//     or zone without a date is rejected.
//   - Date parses as a calendar day; the stored release_date is that day
//     at 00:00 UTC regardless of time/zone.
//   - release_time overlays hour/minute onto the day. An unparseable
//     time is ignored.
//   - A valid IANA zone re-interprets the date + time as wall-clock time
//     in that zone; an unknown zone falls back to the naive (UTC)
//     candidate rather than failing the write.
//   - ComingSoon defaults to releaseAt > now when no override is given.
func Resolve(in Input, now time.Time) (Resolved, error) {
	dateStr := strings.TrimSpace(in.ReleaseDate)
	timeStr := strings.TrimSpace(in.ReleaseTime)
	zoneStr := strings.TrimSpace(in.TimeZone)

	if dateStr == "" {
		if timeStr != "" || zoneStr != "" {
			return Resolved{}, fmt.Errorf("%w: release_time/time_zone require release_date", ErrInvalidInput)
		}
		out := Resolved{ComingSoon: true}
		if in.ComingSoon != nil {
			out.ComingSoon = *in.ComingSoon
		}
		return out, nil
	}

	day, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return Resolved{}, fmt.Errorf("%w: release_date %q", ErrInvalidInput, dateStr)
	}
	date := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	hour, minute := 0, 0
	if hh, mm, ok := parseClock(timeStr); ok {
		hour, minute = hh, mm
	}

	// naive candidate: wall-clock time taken as UTC
	at := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, time.UTC)

	if zoneStr != "" {
		if loc, zerr := time.LoadLocation(zoneStr); zerr == nil {
			at = time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, loc)
		}
	}

	comingSoon := at.After(now)
	if in.ComingSoon != nil {
		comingSoon = *in.ComingSoon
	}

	return Resolved{ReleaseDate: &date, ReleaseAt: &at, ComingSoon: comingSoon}, nil
}

// parseClock accepts "HH:MM" with or without zero padding.
func parseClock(s string) (hour, minute int, ok bool) {
	if s == "" {
		return 0, 0, false
	}
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}
