// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package when contains convenience helpers for calendar dates and times.
//
// A [Date] is an instant together with the [Calendar] used to look at it.
// All field arithmetic is delegated to the Calendar, which normalizes out of
// range values the same way [time.Date] does. On top of that, the package
// offers:
//
//   - constructors from explicit fields, "now" and "today",
//   - copies of a Date with a single field replaced (WithYear, WithDay, …),
//   - a [Delta] of a number of calendar units, to compute "3 days from now"
//     or "2 months before" a Date,
//   - lookups like "the first Saturday of November" via [Date.NthWeekday].
//
// Replacing fields is sequential. Every With call recomposes a complete
// Date from the fields of its receiver, so
//
//	d.WithMonth(13).WithDay(1)
//
// first rolls over into January of the next year and then sets the day.
//
// The package level constructors use the calendar returned by [Default],
// which is a Gregorian calendar in [time.Local]. Use [In] to build Dates in a
// specific Calendar, or [SetDefault] to replace the default, for example in
// tests.
package when

import (
	"fmt"
	"time"
)

// A Date is an immutable point in time, viewed through a Calendar. The zero
// value is the zero time.Time in the Default calendar.
//
// Dates must be compared with Equal, Before, After or Compare. They are not
// guaranteed to be comparable with ==.
type Date struct {
	t   time.Time
	cal Calendar
}

// A Builder creates Dates in a specific Calendar.
type Builder struct {
	cal Calendar
}

// In returns a Builder for cal. A nil cal means Default, evaluated when the
// Builder is used.
func In(cal Calendar) Builder {
	return Builder{cal}
}

func (b Builder) calendar() Calendar {
	if b.cal == nil {
		return Default()
	}
	return b.cal
}

// Make returns the Date for the given fields. Unlike the other constructors,
// it reports fields the Calendar can not compose as an error wrapping
// ErrInvalidDate.
func (b Builder) Make(f Fields) (Date, error) {
	cal := b.calendar()
	t, err := cal.Compose(f)
	if err != nil {
		return Date{}, err
	}
	return Date{t, cal}, nil
}

// compose is the never-failing form of Make. Fields which can not be
// composed yield the zero instant.
func (b Builder) compose(f Fields) Date {
	cal := b.calendar()
	t, err := cal.Compose(f)
	if err != nil {
		return Date{time.Time{}, cal}
	}
	return Date{t, cal}
}

// Of returns the Date for the given fields. Values outside their usual ranges
// are normalized by the Calendar. If the Calendar can not represent the
// fields at all, Of returns the zero instant.
func (b Builder) Of(year int, month time.Month, day, hour, min int, sec float64) Date {
	return b.compose(Fields{Year: year, Month: month, Day: day, Hour: hour, Minute: min, Second: sec})
}

// OfDate returns the Date at midnight of the given day.
func (b Builder) OfDate(year int, month time.Month, day int) Date {
	return b.compose(Fields{Year: year, Month: month, Day: day})
}

// OfClock returns the Date of the given time of day on January 1st of year 1,
// the date of the zero time.Time. It is not the given time today.
func (b Builder) OfClock(hour, min int, sec float64) Date {
	return b.compose(Fields{Year: 1, Month: time.January, Day: 1, Hour: hour, Minute: min, Second: sec})
}

// Now returns the current instant of the Calendar.
func (b Builder) Now() Date {
	cal := b.calendar()
	return Date{cal.Now(), cal}
}

// Today returns midnight of the current day.
func (b Builder) Today() Date {
	return b.Now().TruncateToDay()
}

// At returns the Date for t.
func (b Builder) At(t time.Time) Date {
	return Date{t, b.calendar()}
}

// Make is In(Default()).Make.
func Make(f Fields) (Date, error) {
	return In(Default()).Make(f)
}

// Of returns the Date for the given fields in the Default calendar.
//
// The arguments may be outside their usual ranges and will be normalized
// during the conversion, just as for [time.Date]. For example, October 32
// converts to November 1.
func Of(year int, month time.Month, day, hour, min int, sec float64) Date {
	return In(Default()).Of(year, month, day, hour, min, sec)
}

// OfDate returns midnight of the given day in the Default calendar.
func OfDate(year int, month time.Month, day int) Date {
	return In(Default()).OfDate(year, month, day)
}

// OfClock returns the given time of day on 0001-01-01 in the Default
// calendar.
func OfClock(hour, min int, sec float64) Date {
	return In(Default()).OfClock(hour, min, sec)
}

// Now returns the current instant in the Default calendar.
func Now() Date {
	return In(Default()).Now()
}

// Today returns midnight of the current day in the Default calendar.
func Today() Date {
	return In(Default()).Today()
}

// At returns the Date for t in the Default calendar.
func At(t time.Time) Date {
	return In(Default()).At(t)
}

func (d Date) calendar() Calendar {
	if d.cal == nil {
		return Default()
	}
	return d.cal
}

func (d Date) with(f Fields) Date {
	return In(d.calendar()).compose(f)
}

// Calendar returns the Calendar of d.
func (d Date) Calendar() Calendar {
	return d.calendar()
}

// Time returns the instant of d.
func (d Date) Time() time.Time {
	return d.t
}

// Fields returns the decomposition of d in its Calendar.
func (d Date) Fields() Fields {
	return d.calendar().Decompose(d.t)
}

// Year returns the year of d.
func (d Date) Year() int {
	return d.Fields().Year
}

// Month returns the month of the year of d.
func (d Date) Month() time.Month {
	return d.Fields().Month
}

// Day returns the day of the month of d.
func (d Date) Day() int {
	return d.Fields().Day
}

// Hour returns the hour of the day of d, in the range [0, 23].
func (d Date) Hour() int {
	return d.Fields().Hour
}

// Minute returns the minute of the hour of d, in the range [0, 59].
func (d Date) Minute() int {
	return d.Fields().Minute
}

// Second returns the second of the minute of d, including its fractional part,
// in the range [0, 60).
func (d Date) Second() float64 {
	return d.Fields().Second
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() Weekday {
	return d.Fields().Weekday
}

// TruncateToDay returns midnight of the day of d.
func (d Date) TruncateToDay() Date {
	f := d.Fields()
	return d.with(Fields{Year: f.Year, Month: f.Month, Day: f.Day})
}

// WithYear returns d with the year replaced. February 29 in a year that is
// not a leap year becomes March 1.
func (d Date) WithYear(year int) Date {
	f := d.Fields()
	f.Year = year
	return d.with(f)
}

// WithMonth returns d with the month replaced. Months outside [1, 12] roll
// over into adjacent years.
func (d Date) WithMonth(month time.Month) Date {
	f := d.Fields()
	f.Month = month
	return d.with(f)
}

// WithDay returns d with the day of the month replaced.
func (d Date) WithDay(day int) Date {
	f := d.Fields()
	f.Day = day
	return d.with(f)
}

// WithHour returns d with the hour replaced.
func (d Date) WithHour(hour int) Date {
	f := d.Fields()
	f.Hour = hour
	return d.with(f)
}

// WithMinute returns d with the minute replaced.
func (d Date) WithMinute(min int) Date {
	f := d.Fields()
	f.Minute = min
	return d.with(f)
}

// WithSecond returns d with the second, including its fractional part,
// replaced.
func (d Date) WithSecond(sec float64) Date {
	f := d.Fields()
	f.Second = sec
	return d.with(f)
}

// WithWeekday returns the Date on the given day of the same week as d,
// keeping the time of day. Weeks start on Sunday, so for a Wednesday,
// WithWeekday(Sunday) is three days earlier. It reports false if w is not a
// weekday or the Calendar can not compose the result.
func (d Date) WithWeekday(w Weekday) (Date, bool) {
	if !w.valid() {
		return Date{}, false
	}
	f := d.Fields()
	f.Day += int(w - f.Weekday)
	r, err := In(d.calendar()).Make(f)
	if err != nil {
		return Date{}, false
	}
	return r, true
}

// Plus returns delta.After(d).
func (d Date) Plus(delta Delta) Date {
	return delta.After(d)
}

// Minus returns delta.Before(d).
func (d Date) Minus(delta Delta) Date {
	return delta.Before(d)
}

// IsZero reports whether d is the zero instant.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Equal reports whether d and e are the same instant. Their Calendars are
// not compared.
func (d Date) Equal(e Date) bool {
	return d.t.Equal(e.t)
}

// Before reports whether d is before e.
func (d Date) Before(e Date) bool {
	return d.t.Before(e.t)
}

// After reports whether d is after e.
func (d Date) After(e Date) bool {
	return d.t.After(e.t)
}

// Compare returns -1, 0 or +1 depending on whether d is before, the same as
// or after e.
func (d Date) Compare(e Date) int {
	return d.t.Compare(e.t)
}

// String returns d in RFC 3339 format with nanoseconds, in the time zone
// of its Calendar.
func (d Date) String() string {
	t, err := d.calendar().Compose(d.Fields())
	if err != nil || !t.Equal(d.t) {
		// ambiguous wall clock, e.g. during a DST transition
		t = d.t
	}
	return t.Format(time.RFC3339Nano)
}

// GoString implements fmt.GoStringer and formats d to be printed in Go source
// code.
func (d Date) GoString() string {
	f := d.Fields()
	return fmt.Sprintf("when.Of(%d, %d, %d, %d, %d, %v)", f.Year, f.Month, f.Day, f.Hour, f.Minute, f.Second)
}

// MarshalText implements the encoding.TextMarshaler interface. The instant is
// formatted in RFC 3339 format.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.t.Format(time.RFC3339Nano)), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. The
// instant must be in RFC 3339 format. The Calendar of d is kept.
func (d *Date) UnmarshalText(b []byte) error {
	t, err := time.Parse(time.RFC3339Nano, string(b))
	if err != nil {
		return &ParseError{Kind: "date", Value: string(b), Message: err.Error()}
	}
	d.t = t
	return nil
}
