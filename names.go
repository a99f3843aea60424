// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package when

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

var longDayNames = []string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

var shortDayNames = []string{
	"Sun",
	"Mon",
	"Tue",
	"Wed",
	"Thu",
	"Fri",
	"Sat",
}

var ordinalAbbrevs = [...]string{"1st", "2nd", "3rd", "4th", "5th"}

// match reports whether s1 and s2 match ignoring case.
func match(s1, s2 string) bool {
	if len(s1) != len(s2) {
		return false
	}
	for i := 0; i < len(s1); i++ {
		c1 := s1[i]
		c2 := s2[i]
		if c1 != c2 {
			// Switch to lower-case; 'a'-'A' is known to be a single bit.
			c1 |= 'a' - 'A'
			c2 |= 'a' - 'A'
			if c1 != c2 || c1 < 'a' || c1 > 'z' {
				return false
			}
		}
	}
	return true
}

// lookup returns the index of the entry of table matching s, ignoring case,
// or -1.
func lookup(table []string, s string) int {
	for i, v := range table {
		if match(s, v) {
			return i
		}
	}
	return -1
}

// ParseError describes a problem parsing a name or a Delta.
type ParseError struct {
	Kind    string
	Value   string
	Message string
}

// Error returns the string representation of a ParseError.
func (e *ParseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("parsing %s %q: unknown %s", e.Kind, e.Value, e.Kind)
	}
	return fmt.Sprintf("parsing %s %q: %s", e.Kind, e.Value, e.Message)
}

// ParseWeekday parses the English name of a day of the week, either in full
// ("Saturday") or abbreviated ("Sat"), ignoring case. The numbers 1 to 7 are
// accepted as well.
func ParseWeekday(s string) (Weekday, error) {
	if i := lookup(longDayNames, s); i >= 0 {
		return Weekday(i + 1), nil
	}
	if i := lookup(shortDayNames, s); i >= 0 {
		return Weekday(i + 1), nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		if w := Weekday(n); w.valid() {
			return w, nil
		}
		return 0, &ParseError{Kind: "weekday", Value: s, Message: "out of range"}
	}
	return 0, &ParseError{Kind: "weekday", Value: s}
}

// ParseOrdinal parses "first" to "fifth", "1st" to "5th" or "last", ignoring
// case.
func ParseOrdinal(s string) (Ordinal, error) {
	if match(s, "last") {
		return Last, nil
	}
	if i := lookup(ordinalNames[:], s); i >= 0 {
		return Ordinal(i), nil
	}
	if i := lookup(ordinalAbbrevs[:], s); i >= 0 {
		return Ordinal(i), nil
	}
	return 0, &ParseError{Kind: "ordinal", Value: s}
}

// ParseUnit parses the singular or plural English name of a Unit, ignoring
// case.
func ParseUnit(s string) (Unit, error) {
	if i := lookup(unitNames, strings.TrimSuffix(s, "s")); i > 0 {
		return Unit(i), nil
	}
	if i := lookup(unitNames, strings.TrimSuffix(s, "S")); i > 0 {
		return Unit(i), nil
	}
	return 0, &ParseError{Kind: "unit", Value: s}
}

// ParseDelta parses a Delta in the format produced by Delta.String: a
// decimal number and a unit, separated by white space, like "3 days",
// "-1 year" or "13.5 seconds".
func ParseDelta(s string) (Delta, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return Delta{}, &ParseError{Kind: "delta", Value: s, Message: "want <number> <unit>"}
	}
	n, err := strconv.ParseFloat(parts[0], 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return Delta{}, &ParseError{Kind: "delta", Value: s, Message: "invalid number " + strconv.Quote(parts[0])}
	}
	u, err := ParseUnit(parts[1])
	if err != nil {
		return Delta{}, &ParseError{Kind: "delta", Value: s, Message: "unknown unit " + strconv.Quote(parts[1])}
	}
	return Delta{n, u}, nil
}
