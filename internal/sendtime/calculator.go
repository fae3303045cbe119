// Package sendtime computes timezone-aware notification send times with
// nighttime deferral.
package sendtime

import (
	"fmt"
	"time"

	"github.com/cinenotify/notification-service/internal/config"
)

// Calculator defers sends that would land in the user's local quiet window
// [NightStart:00, NightEnd:00) to the next NightEnd:00 local time. The window
// wraps past midnight when NightEnd < NightStart.
type Calculator struct {
	NightStart int
	NightEnd   int
	Now        func() time.Time
}

// NewCalculator builds a Calculator from config with a real clock.
func NewCalculator(cfg config.Nighttime) *Calculator {
	return &Calculator{
		NightStart: cfg.StartHour,
		NightEnd:   cfg.EndHour,
		Now:        time.Now,
	}
}

// Calculate returns the adjusted send time for a user. The reference instant
// is sendDate when given, otherwise the current time. Outside the quiet
// window sendDate is returned unchanged (nil meaning "send immediately");
// inside it the result is the next NightEnd:00 in the user's timezone,
// converted to UTC.
func (c *Calculator) Calculate(userTimezone string, sendDate *time.Time) (*time.Time, error) {
	loc, err := time.LoadLocation(userTimezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", userTimezone, err)
	}

	ref := c.Now().UTC()
	if sendDate != nil {
		ref = *sendDate
	}
	local := ref.In(loc)

	if !c.nighttime(local) {
		return sendDate, nil
	}

	day := local
	if !c.beforeNightEnd(local) {
		// late evening: the window end is tomorrow
		day = local.AddDate(0, 0, 1)
	}

	target := time.Date(day.Year(), day.Month(), day.Day(), c.NightEnd, 0, 0, 0, loc).UTC()
	return &target, nil
}

// nighttime reports whether the local time-of-day falls inside the quiet
// window. Start is inclusive, end is exclusive.
func (c *Calculator) nighttime(local time.Time) bool {
	tod := secondOfDay(local)
	start := c.NightStart * 3600
	end := c.NightEnd * 3600

	if start <= end {
		return tod >= start && tod < end
	}

	return tod >= start || tod < end
}

// beforeNightEnd reports whether the local time-of-day is in the after-
// midnight part of a wrapping window, i.e. the deferral target is still the
// same day.
func (c *Calculator) beforeNightEnd(local time.Time) bool {
	return secondOfDay(local) < c.NightEnd*3600
}

func secondOfDay(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}
