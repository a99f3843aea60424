// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package when

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"gonih.org/when/internal/civil"
	"gonih.org/when/internal/zonecache"
)

// ErrInvalidDate is returned when a set of Fields can not be composed into an
// instant.
var ErrInvalidDate = errors.New("invalid date")

// Fields is the decomposition of an instant in a Calendar.
//
// Second combines whole and fractional seconds. Weekday is set by
// Calendar.Decompose and ignored by Calendar.Compose.
type Fields struct {
	Year    int
	Month   time.Month
	Day     int
	Hour    int
	Minute  int
	Second  float64
	Weekday Weekday
}

// A Calendar converts between instants and Fields.
//
// Compose must normalize values outside their usual ranges the way
// [time.Date] does: month 13 is January of the next year and day 32 of a
// 31-day month is the first of the next month.
//
// Implementations must be safe for concurrent use.
type Calendar interface {
	Decompose(t time.Time) Fields
	Compose(f Fields) (time.Time, error)
	Now() time.Time
}

// limit bounds the integer fields accepted by Compose, so that any
// normalized result stays far inside the range of time.Time.
const limit = 1 << 32

// maxSecond is the largest magnitude of Fields.Second that is still exact in
// a float64.
const maxSecond = 1 << 53

func validate(f Fields) error {
	if math.IsNaN(f.Second) || math.IsInf(f.Second, 0) || math.Abs(f.Second) >= maxSecond {
		return fmt.Errorf("%w: second %v", ErrInvalidDate, f.Second)
	}
	for _, v := range [...]struct {
		name string
		n    int
	}{
		{"year", f.Year},
		{"month", int(f.Month)},
		{"day", f.Day},
		{"hour", f.Hour},
		{"minute", f.Minute},
	} {
		if v.n <= -limit || v.n >= limit {
			return fmt.Errorf("%w: %s %d out of range", ErrInvalidDate, v.name, v.n)
		}
	}
	return nil
}

// splitSecond splits s into whole seconds and nanoseconds, with
// 0 <= nsec < 1e9.
func splitSecond(s float64) (sec, nsec int) {
	whole := math.Floor(s)
	sec = int(whole)
	nsec = int(math.Round((s - whole) * 1e9))
	if nsec >= 1e9 {
		sec++
		nsec -= 1e9
	}
	return sec, nsec
}

func seconds(sec, nsec int) float64 {
	return float64(sec) + float64(nsec)/1e9
}

// Gregorian is a Calendar backed by package time.
type Gregorian struct {
	// Location of the calendar. If nil, time.Local is used, read on every
	// call.
	Location *time.Location
	// Clock returns the current instant. If nil, time.Now is used.
	Clock func() time.Time
}

func (g Gregorian) location() *time.Location {
	if g.Location == nil {
		return time.Local
	}
	return g.Location
}

// Decompose implements Calendar.
func (g Gregorian) Decompose(t time.Time) Fields {
	t = t.In(g.location())
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	return Fields{
		Year:    year,
		Month:   month,
		Day:     day,
		Hour:    hour,
		Minute:  min,
		Second:  seconds(sec, t.Nanosecond()),
		Weekday: WeekdayOf(t.Weekday()),
	}
}

// Compose implements Calendar.
func (g Gregorian) Compose(f Fields) (time.Time, error) {
	if err := validate(f); err != nil {
		return time.Time{}, err
	}
	sec, nsec := splitSecond(f.Second)
	return time.Date(f.Year, f.Month, f.Day, f.Hour, f.Minute, sec, nsec, g.location()), nil
}

// Now implements Calendar.
func (g Gregorian) Now() time.Time {
	if g.Clock == nil {
		return time.Now()
	}
	return g.Clock()
}

var zones zonecache.Cache

// InLocation returns a Gregorian calendar for the IANA time zone with the
// given name, as understood by [time.LoadLocation]. Loaded zones are cached.
func InLocation(name string) (Gregorian, error) {
	loc, err := zones.Load(name)
	if err != nil {
		return Gregorian{}, err
	}
	return Gregorian{Location: loc}, nil
}

// Civil is a Calendar with a fixed offset from UTC and no daylight saving
// time. Its arithmetic does not depend on the tz database, which makes it
// fully deterministic.
type Civil struct {
	// Offset in seconds east of UTC.
	Offset int
	// Clock returns the current instant. If nil, time.Now is used.
	Clock func() time.Time
}

func (c Civil) zone() *time.Location {
	if c.Offset == 0 {
		return time.UTC
	}
	return time.FixedZone("", c.Offset)
}

// Decompose implements Calendar.
func (c Civil) Decompose(t time.Time) Fields {
	days, rem := civil.Norm(0, int(t.Unix())+c.Offset, civil.SecondsPerDay)
	day := civil.UnixEpoch + civil.Day(days)
	year, month, mday := day.Date()
	return Fields{
		Year:    year,
		Month:   month,
		Day:     mday,
		Hour:    rem / 3600,
		Minute:  rem % 3600 / 60,
		Second:  seconds(rem%60, t.Nanosecond()),
		Weekday: WeekdayOf(day.Weekday()),
	}
}

// Compose implements Calendar.
func (c Civil) Compose(f Fields) (time.Time, error) {
	if err := validate(f); err != nil {
		return time.Time{}, err
	}
	sec, nsec := splitSecond(f.Second)
	days := int64(civil.Of(f.Year, f.Month, f.Day) - civil.UnixEpoch)
	unix := days*civil.SecondsPerDay + int64(f.Hour)*3600 + int64(f.Minute)*60 + int64(sec) - int64(c.Offset)
	return time.Unix(unix, int64(nsec)).In(c.zone()), nil
}

// Now implements Calendar.
func (c Civil) Now() time.Time {
	if c.Clock == nil {
		return time.Now()
	}
	return c.Clock()
}

var (
	defaultMu  sync.RWMutex
	defaultCal Calendar = Gregorian{}
)

// Default returns the Calendar used by the package level constructors. It is
// a Gregorian calendar in time.Local, unless replaced with SetDefault.
func Default() Calendar {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultCal
}

// SetDefault replaces the Calendar returned by Default and returns a function
// restoring the previous one. A nil c resets to a Gregorian calendar in
// time.Local.
//
// Dates remember the Calendar they were created with, so existing values are
// not affected.
func SetDefault(c Calendar) (restore func()) {
	if c == nil {
		c = Gregorian{}
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultCal
	defaultCal = c
	return func() {
		defaultMu.Lock()
		defer defaultMu.Unlock()
		defaultCal = prev
	}
}
