// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil

import (
	"strconv"
	"testing"
	"time"
)

var tcs = []struct {
	year  int
	month time.Month
	day   int
	want  Day
}{
	{1, 1, 1, 0},
	{2, 1, 1, 365},
	{5, 1, 1, 1461},
	{4, 3, 1, 1155},
	{1, 1, 32, 31},
	{1, 1, 0, -1},
	{0, 12, 31, -1},
	{1957, 96, 104, 717408},
	{1964, 12, 104, 717408},
	{1970, 1, 1, UnixEpoch},
	{2023, 7, 14, 738714},
}

func TestOf(t *testing.T) {
	for i, tc := range tcs {
		tc := tc
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if got := Of(tc.year, tc.month, tc.day); got != tc.want {
				t.Errorf("Of(%d, %d, %d) = %d, want %d", tc.year, tc.month, tc.day, got, tc.want)
			}
			check(t, tc.year, int(tc.month), tc.day)
		})
	}
}

func TestDaysIn(t *testing.T) {
	for _, tc := range []struct {
		month time.Month
		year  int
		want  int
	}{
		{time.January, 2023, 31},
		{time.February, 2023, 28},
		{time.February, 2024, 29},
		{time.February, 1900, 28},
		{time.February, 2000, 29},
		{time.April, 2024, 30},
		{time.December, 2024, 31},
	} {
		if got := DaysIn(tc.month, tc.year); got != tc.want {
			t.Errorf("DaysIn(%v, %d) = %d, want %d", tc.month, tc.year, got, tc.want)
		}
	}
}

func TestNorm(t *testing.T) {
	for _, tc := range []struct {
		hi, lo, base int
		wantHi       int
		wantLo       int
	}{
		{0, 0, 60, 0, 0},
		{0, 61, 60, 1, 1},
		{0, -1, 60, -1, 59},
		{2, -121, 60, -1, 59},
		{1995, 12, 12, 1996, 0},
	} {
		hi, lo := Norm(tc.hi, tc.lo, tc.base)
		if hi != tc.wantHi || lo != tc.wantLo {
			t.Errorf("Norm(%d, %d, %d) = %d, %d, want %d, %d", tc.hi, tc.lo, tc.base, hi, lo, tc.wantHi, tc.wantLo)
		}
	}
}

func FuzzOf(f *testing.F) {
	for _, tc := range tcs {
		f.Add(tc.year, int(tc.month), tc.day)
	}
	f.Fuzz(check)
}

// check that the given year, month and day values produce the same date
// calculations as time.Time.
func check(t *testing.T, year, month, day int) {
	if year < -1e6 || year > 1e6 || month < -1e6 || month > 1e6 || day < -1e8 || day > 1e8 {
		t.Skip("out of range for time.Time comparison")
	}
	d := Of(year, time.Month(month), day)
	got := time.Date(1, 1, 1, 6, 0, 0, 0, time.UTC).AddDate(0, 0, int(d))
	want := time.Date(year, time.Month(month), day, 6, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Of(%d, %d, %d): %v != %v", year, month, day, got.Format(time.DateOnly), want.Format(time.DateOnly))
	}
	Y, M, D := d.Date()
	if wantY, wantM, wantD := want.Date(); Y != wantY || M != wantM || D != wantD {
		t.Errorf("Of(%d, %d, %d).Date() = %d, %d, %d, want %d, %d, %d", year, month, day, Y, M, D, wantY, wantM, wantD)
	}
	if d2 := Of(Y, M, D); d2 != d {
		t.Errorf("Of(%d, %d, %d) = %d, want %d", Y, M, D, d2, d)
	}
	if gotWD, wantWD := d.Weekday(), want.Weekday(); gotWD != wantWD {
		t.Errorf("Of(%d, %d, %d).Weekday() = %v, want %v", year, month, day, gotWD, wantWD)
	}
}
