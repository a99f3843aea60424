// Copyright 2009 The Go Authors.
// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package civil implements proleptic Gregorian day arithmetic without clocks
// or time zones. It is the engine behind the fixed-offset calendar of package
// when.
package civil

import "time"

// Computations are essentially copied from the standard library. See this
// comment for explanations:
// https://cs.opensource.google/go/go/+/refs/tags/go1.20.6:src/time/time.go;l=353

const (
	// The unsigned zero year for internal calculations.
	// Must be 1 mod 400, and times before it will not compute correctly.
	absoluteZeroYear = -292277022399

	// The year of the zero Day.
	internalYear = 1

	absoluteToInternal = (absoluteZeroYear - internalYear) * 365.2425
	internalToAbsolute = -absoluteToInternal

	daysPer400Years = 146097
	daysPer100Years = 36524
	daysPer4Years   = 1461
)

// UnixEpoch is the Day of 1970-01-01.
const UnixEpoch Day = 719162

// SecondsPerDay is the length of a civil day. Leap seconds do not exist here.
const SecondsPerDay = 86400

// daysBefore[m] counts the number of days in a non-leap year before month m
// begins. There is an entry for m=12, counting the number of days before
// January of next year (365).
var daysBefore = [...]int{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

// DaysIn returns the number of days in month m of the given year.
func DaysIn(m time.Month, year int) int {
	if m == time.February && IsLeap(year) {
		return 29
	}
	return daysBefore[m] - daysBefore[m-1]
}

// IsLeap reports whether year is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// absDate computes the year, month and day in which an absolute date occurs.
func absDate(abs uint64) (year int, month time.Month, day int) {
	d := abs

	// Account for 400 year cycles.
	n := d / daysPer400Years
	y := 400 * n
	d -= daysPer400Years * n

	// Cut off 100-year cycles.
	// The last cycle has one extra leap year, so on the last day
	// of that year, day / daysPer100Years will be 4 instead of 3.
	// Cut it back down to 3 by subtracting n>>2.
	n = d / daysPer100Years
	n -= n >> 2
	y += 100 * n
	d -= daysPer100Years * n

	// Cut off 4-year cycles.
	n = d / daysPer4Years
	y += 4 * n
	d -= daysPer4Years * n

	// Cut off years within a 4-year cycle.
	n = d / 365
	n -= n >> 2
	y += n
	d -= 365 * n

	year = int(int64(y) + absoluteZeroYear)
	day = int(d)

	if IsLeap(year) {
		switch {
		case day > 31+29-1:
			// After leap day; pretend it wasn't there.
			day--
		case day == 31+29-1:
			return year, time.February, 29
		}
	}

	// Estimate month on assumption that every month has 31 days.
	// The estimate may be too low by at most one month, so adjust.
	month = time.Month(day / 31)
	end := daysBefore[month+1]
	var begin int
	if day >= end {
		month++
		begin = end
	} else {
		begin = daysBefore[month]
	}

	month++ // because January is 1
	day = day - begin + 1
	return year, month, day
}

// daysSinceEpoch returns the number of days from the absolute epoch to the
// start of year.
func daysSinceEpoch(year int) int {
	y := year - absoluteZeroYear

	n := y / 400
	y -= 400 * n
	d := daysPer400Years * n

	n = y / 100
	y -= 100 * n
	d += daysPer100Years * n

	n = y / 4
	y -= 4 * n
	d += daysPer4Years * n

	d += 365 * y

	return d
}

// Norm returns nhi, nlo such that
//
//	hi * base + lo == nhi * base + nlo
//	0 <= nlo < base
func Norm(hi, lo, base int) (nhi, nlo int) {
	if lo < 0 {
		n := (-lo-1)/base + 1
		hi -= n
		lo += n * base
	}
	if lo >= base {
		n := lo / base
		hi += n
		lo -= n * base
	}
	return hi, lo
}

// A Day counts days since 0001-01-01 in the proleptic Gregorian calendar.
type Day int

// Of returns the Day for the given date. Out of range months and days are
// normalized as by [time.Date]: October 32 is November 1.
func Of(year int, month time.Month, day int) Day {
	m := int(month) - 1
	year, m = Norm(year, m, 12)
	month = time.Month(m) + 1

	d := daysSinceEpoch(year)
	d += daysBefore[month-1]
	if IsLeap(year) && month >= time.March {
		d++
	}
	d += day - 1

	return Day(d - internalToAbsolute)
}

func (d Day) abs() uint64 {
	return uint64(d + internalToAbsolute)
}

// Date returns the normalized year, month and day of d.
func (d Day) Date() (year int, month time.Month, day int) {
	return absDate(d.abs())
}

// Weekday returns the day of the week of d.
func (d Day) Weekday() time.Weekday {
	return (time.Monday + time.Weekday(d.abs()%7)) % 7 // 0001-01-01 was a Monday
}
