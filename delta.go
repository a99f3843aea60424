// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package when

import (
	"strconv"
	"strings"
	"time"
)

// A Unit is a calendar unit of a Delta.
type Unit int

const (
	UnitYear Unit = iota + 1
	UnitMonth
	UnitDay
	UnitHour
	UnitMinute
	UnitSecond
)

var unitNames = []string{
	UnitYear:   "year",
	UnitMonth:  "month",
	UnitDay:    "day",
	UnitHour:   "hour",
	UnitMinute: "minute",
	UnitSecond: "second",
}

// String returns the singular English name of u.
func (u Unit) String() string {
	if UnitYear <= u && u <= UnitSecond {
		return unitNames[u]
	}
	return "%!Unit(" + strconv.Itoa(int(u)) + ")"
}

// A Delta is a signed number of calendar units, like "3 days" or
// "-1.5 seconds".
//
// Only UnitSecond deltas use the fractional part of Magnitude. For all other
// units it is truncated toward zero.
type Delta struct {
	Magnitude float64
	Unit      Unit
}

// NewDelta returns the Delta of n units.
func NewDelta(n float64, u Unit) Delta {
	return Delta{n, u}
}

// Years returns a Delta of n years.
func Years(n float64) Delta { return Delta{n, UnitYear} }

// Months returns a Delta of n months.
func Months(n float64) Delta { return Delta{n, UnitMonth} }

// Days returns a Delta of n days.
func Days(n float64) Delta { return Delta{n, UnitDay} }

// Hours returns a Delta of n hours.
func Hours(n float64) Delta { return Delta{n, UnitHour} }

// Minutes returns a Delta of n minutes.
func Minutes(n float64) Delta { return Delta{n, UnitMinute} }

// Seconds returns a Delta of n seconds.
func Seconds(n float64) Delta { return Delta{n, UnitSecond} }

// Neg returns the Delta with the same unit and negated magnitude.
func (dl Delta) Neg() Delta {
	return Delta{-dl.Magnitude, dl.Unit}
}

// After returns the Date dl after d. The field of d corresponding to the unit
// is incremented and the result normalized by the Calendar of d, so one month
// after January 31 is March 3 (or 2, in leap years).
//
// A Delta with an invalid Unit returns d unchanged.
func (dl Delta) After(d Date) Date {
	n := int(dl.Magnitude)
	switch dl.Unit {
	case UnitYear:
		return d.WithYear(d.Year() + n)
	case UnitMonth:
		return d.WithMonth(d.Month() + time.Month(n))
	case UnitDay:
		return d.WithDay(d.Day() + n)
	case UnitHour:
		return d.WithHour(d.Hour() + n)
	case UnitMinute:
		return d.WithMinute(d.Minute() + n)
	case UnitSecond:
		return d.WithSecond(d.Second() + dl.Magnitude)
	}
	return d
}

// Before returns the Date dl before d. It is dl.Neg().After(d).
func (dl Delta) Before(d Date) Date {
	return dl.Neg().After(d)
}

// FromNow returns the Date dl after now, in the Default calendar.
func (dl Delta) FromNow() Date {
	return dl.After(Now())
}

// Ago returns the Date dl before now, in the Default calendar.
func (dl Delta) Ago() Date {
	return dl.Neg().FromNow()
}

// FromNowIn returns the Date dl after the current instant of cal.
func (dl Delta) FromNowIn(cal Calendar) Date {
	return dl.After(In(cal).Now())
}

// AgoIn returns the Date dl before the current instant of cal.
func (dl Delta) AgoIn(cal Calendar) Date {
	return dl.Neg().FromNowIn(cal)
}

// String formats dl as a number followed by a unit name, like "3 days" or
// "1 year".
func (dl Delta) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatFloat(dl.Magnitude, 'f', -1, 64))
	sb.WriteByte(' ')
	sb.WriteString(dl.Unit.String())
	if dl.Magnitude != 1 && dl.Magnitude != -1 && UnitYear <= dl.Unit && dl.Unit <= UnitSecond {
		sb.WriteByte('s')
	}
	return sb.String()
}

// MarshalText implements the encoding.TextMarshaler interface.
func (dl Delta) MarshalText() ([]byte, error) {
	return []byte(dl.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. It
// accepts the format of ParseDelta.
func (dl *Delta) UnmarshalText(b []byte) error {
	v, err := ParseDelta(string(b))
	if err != nil {
		return err
	}
	*dl = v
	return nil
}
