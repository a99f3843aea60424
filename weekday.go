// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package when

import (
	"strconv"
	"time"
)

// A Weekday specifies a day of the week, counting from 1 (Sunday) to
// 7 (Saturday).
type Weekday int

const (
	Sunday Weekday = iota + 1
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// WeekdayOf converts a time.Weekday.
func WeekdayOf(w time.Weekday) Weekday {
	return Weekday(w) + 1
}

// Std returns the time.Weekday of w.
func (w Weekday) Std() time.Weekday {
	return time.Weekday(w - 1)
}

func (w Weekday) valid() bool {
	return Sunday <= w && w <= Saturday
}

// String returns the English name of the day ("Sunday", "Monday", ...).
func (w Weekday) String() string {
	if w.valid() {
		return longDayNames[w-1]
	}
	return "%!Weekday(" + strconv.Itoa(int(w)) + ")"
}

// An Ordinal selects an occurrence of a weekday within a month.
type Ordinal int

const (
	First Ordinal = iota
	Second
	Third
	Fourth
	Fifth

	// Last selects the last occurrence, whichever that is.
	Last Ordinal = -1
)

var ordinalNames = [...]string{"first", "second", "third", "fourth", "fifth"}

// String returns the English name of n ("first", ..., "fifth", "last").
func (n Ordinal) String() string {
	switch {
	case n == Last:
		return "last"
	case First <= n && n <= Fifth:
		return ordinalNames[n]
	}
	return "%!Ordinal(" + strconv.Itoa(int(n)) + ")"
}

// NthWeekday returns the n-th occurrence of w in the month of d, counting
// from the day of d. Anchored on the first of a month, this is "the first
// Saturday of November" and the like. The result is at midnight.
//
// It reports false if there is no such occurrence, for example for the fifth
// Sunday of a February with four Sundays.
func (d Date) NthWeekday(n Ordinal, w Weekday) (Date, bool) {
	if n == Last {
		for i := Fifth; i >= First; i-- {
			if r, ok := d.NthWeekday(i, w); ok {
				return r, true
			}
		}
		return Date{}, false
	}
	if n < First || n > Fifth || !w.valid() {
		return Date{}, false
	}
	f := d.Fields()
	weeks := int(n)
	if w < f.Weekday {
		weeks++
	}
	day := int(w) + 7*weeks - int(f.Weekday) + f.Day
	r, err := In(d.calendar()).Make(Fields{Year: f.Year, Month: f.Month, Day: day})
	if err != nil {
		return Date{}, false
	}
	// Occurrences past the end of the month roll over into the next one.
	if r.Month() != f.Month {
		return Date{}, false
	}
	return r, true
}

// NthWeekdayOf returns the n-th occurrence of w in the given month.
func (b Builder) NthWeekdayOf(year int, month time.Month, n Ordinal, w Weekday) (Date, bool) {
	return b.OfDate(year, month, 1).NthWeekday(n, w)
}

// NthWeekdayOf returns the n-th occurrence of w in the given month, in the
// Default calendar.
//
//	NthWeekdayOf(1968, time.November, First, Saturday) // 1968-11-02
//	NthWeekdayOf(2015, time.March, Last, Tuesday)      // 2015-03-31
func NthWeekdayOf(year int, month time.Month, n Ordinal, w Weekday) (Date, bool) {
	return In(Default()).NthWeekdayOf(year, month, n, w)
}
