// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package when

import (
	"errors"
	"testing"
	"time"

	"gonih.org/set"
)

func TestAfter(t *testing.T) {
	b := birthdate
	for _, tc := range []struct {
		delta Delta
		want  Date
	}{
		{Years(3), b.WithYear(b.Year() + 3)},
		{Months(2), b.WithMonth(b.Month() + 2)},
		{Days(1), b.WithDay(b.Day() + 1)},
		{Hours(10), b.WithHour(b.Hour() + 10)},
		{Minutes(11), b.WithMinute(b.Minute() + 11)},
		{Seconds(12), b.WithSecond(b.Second() + 12)},
		{Seconds(13.5), b.WithSecond(b.Second() + 13.5)},
	} {
		if got := tc.delta.After(b); !got.Equal(tc.want) {
			t.Errorf("%v.After(%v) = %v, want %v", tc.delta, b, got, tc.want)
		}
		if got := b.Plus(tc.delta); !got.Equal(tc.want) {
			t.Errorf("%v.Plus(%v) = %v, want %v", b, tc.delta, got, tc.want)
		}
	}
}

func TestBefore(t *testing.T) {
	b := birthdate
	for _, tc := range []struct {
		delta Delta
		want  Date
	}{
		{Years(3), b.WithYear(b.Year() - 3)},
		{Months(2), b.WithMonth(b.Month() - 2)},
		{Days(1), b.WithDay(b.Day() - 1)},
		{Hours(10), b.WithHour(b.Hour() - 10)},
		{Minutes(11), b.WithMinute(b.Minute() - 11)},
		{Seconds(12), b.WithSecond(b.Second() - 12)},
		{Seconds(13.5), b.WithSecond(b.Second() - 13.5)},
	} {
		if got := tc.delta.Before(b); !got.Equal(tc.want) {
			t.Errorf("%v.Before(%v) = %v, want %v", tc.delta, b, got, tc.want)
		}
		if got := b.Minus(tc.delta); !got.Equal(tc.want) {
			t.Errorf("%v.Minus(%v) = %v, want %v", b, tc.delta, got, tc.want)
		}
		if got, want := tc.delta.Before(b), tc.delta.Neg().After(b); !got.Equal(want) {
			t.Errorf("%v.Before(%v) = %v, want %v", tc.delta, b, got, want)
		}
	}
	checkDate(t, "Months(2).Before(birthdate)", Months(2).Before(b), 1994, 11, 14, 13, 7, 24.920110)
}

func TestAfterNormalizes(t *testing.T) {
	b := In(utc)
	checkDate(t, "Years(1).After(2024-02-29)", Years(1).After(b.OfDate(2024, 2, 29)), 2025, 3, 1, 0, 0, 0)
	checkDate(t, "Years(4).After(2024-02-29)", Years(4).After(b.OfDate(2024, 2, 29)), 2028, 2, 29, 0, 0, 0)
	checkDate(t, "Months(1).After(2015-01-31)", Months(1).After(b.OfDate(2015, 1, 31)), 2015, 3, 3, 0, 0, 0)
	checkDate(t, "Days(1).After(2015-12-31 23:00)", Days(1).After(b.Of(2015, 12, 31, 23, 0, 0)), 2016, 1, 1, 23, 0, 0)
	checkDate(t, "Hours(2).After(2015-12-31 23:00)", Hours(2).After(b.Of(2015, 12, 31, 23, 0, 0)), 2016, 1, 1, 1, 0, 0)
	checkDate(t, "Seconds(0.75).After(…59.5)", Seconds(0.75).After(b.Of(2015, 12, 31, 23, 59, 59.5)), 2016, 1, 1, 0, 0, 0.25)
}

func TestTruncation(t *testing.T) {
	d := In(utc).OfDate(2015, 9, 16)
	for _, tc := range []struct {
		frac, whole Delta
	}{
		{Days(1.9), Days(1)},
		{Days(-1.9), Days(-1)},
		{Years(0.99), Years(0)},
		{Hours(-0.5), Hours(0)},
		{Minutes(59.99), Minutes(59)},
	} {
		if got, want := tc.frac.After(d), tc.whole.After(d); !got.Equal(want) {
			t.Errorf("%v.After(%v) = %v, want %v", tc.frac, d, got, want)
		}
	}
	if got, want := Seconds(1.5).After(d), d.WithSecond(1.5); !got.Equal(want) {
		t.Errorf("Seconds(1.5).After(%v) = %v, want %v", d, got, want)
	}
}

func TestInvalidUnit(t *testing.T) {
	for _, u := range []Unit{0, -1, UnitSecond + 1} {
		if got := NewDelta(3, u).After(birthdate); !got.Equal(birthdate) {
			t.Errorf("NewDelta(3, %v).After(%v) = %v, want unchanged", u, birthdate, got)
		}
	}
}

func TestNeg(t *testing.T) {
	for _, d := range []Delta{Years(3), Seconds(-13.5), Days(0), NewDelta(2, UnitHour)} {
		n := d.Neg()
		if n.Unit != d.Unit || n.Magnitude != -d.Magnitude {
			t.Errorf("%v.Neg() = %v", d, n)
		}
		if n.Neg() != d {
			t.Errorf("%v.Neg().Neg() = %v", d, n.Neg())
		}
	}
}

func TestFromNowAndAgo(t *testing.T) {
	restore := SetDefault(utc)
	defer restore()

	now := Now()
	for _, d := range []Delta{Years(3), Months(-2), Days(10), Hours(5), Minutes(90), Seconds(1.25)} {
		if got, want := d.FromNow(), d.After(now); !got.Equal(want) {
			t.Errorf("%v.FromNow() = %v, want %v", d, got, want)
		}
		if got, want := d.Ago(), d.Neg().FromNow(); !got.Equal(want) {
			t.Errorf("%v.Ago() = %v, want %v", d, got, want)
		}
		if got, want := d.AgoIn(utc), d.Before(In(utc).Now()); !got.Equal(want) {
			t.Errorf("%v.AgoIn(utc) = %v, want %v", d, got, want)
		}
		if got, want := d.FromNowIn(utc), d.FromNow(); !got.Equal(want) {
			t.Errorf("%v.FromNowIn(utc) = %v, want %v", d, got, want)
		}
	}
	checkDate(t, "Days(3).Ago()", Days(3).Ago(), 2015, 9, 13, 21, 45, 3.25)
	checkDate(t, "Months(4).FromNow()", Months(4).FromNow(), 2016, 1, 16, 21, 45, 3.25)
}

func TestDeltaString(t *testing.T) {
	for _, tc := range []struct {
		d    Delta
		want string
	}{
		{Days(3), "3 days"},
		{Years(1), "1 year"},
		{Hours(-1), "-1 hour"},
		{Seconds(-13.5), "-13.5 seconds"},
		{Minutes(0), "0 minutes"},
		{Months(12), "12 months"},
		{NewDelta(2, 42), "2 %!Unit(42)"},
	} {
		if got := tc.d.String(); got != tc.want {
			t.Errorf("%#v.String() = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func TestParseDelta(t *testing.T) {
	for _, d := range []Delta{Days(3), Years(1), Hours(-1), Seconds(-13.5), Minutes(0), Months(12)} {
		b, err := d.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got Delta
		if err := got.UnmarshalText(b); err != nil {
			t.Errorf("UnmarshalText(%q) = %v, want <nil>", b, err)
		}
		if got != d {
			t.Errorf("UnmarshalText(%q) = %v, want %v", b, got, d)
		}
	}
	for _, tc := range []struct {
		in   string
		want Delta
	}{
		{"  2   Weeks", Delta{}},
		{"3 DAYS", Days(3)},
		{"+7 Minute", Minutes(7)},
		{"1e3 seconds", Seconds(1000)},
	} {
		got, err := ParseDelta(tc.in)
		if tc.want == (Delta{}) {
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Errorf("ParseDelta(%q) = %v, %v, want *ParseError", tc.in, got, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ParseDelta(%q) = %v, %v, want %v, <nil>", tc.in, got, err, tc.want)
		}
	}
	for _, in := range []string{"", "3", "days 3", "NaN days", "3 fortnights", "1 2 days"} {
		if got, err := ParseDelta(in); err == nil {
			t.Errorf("ParseDelta(%q) = %v, <nil>, want error", in, got)
		}
	}
}

func TestParseUnit(t *testing.T) {
	var got []Unit
	for _, s := range []string{"year", "Years", "MONTH", "months", "day", "Days", "hour", "hours", "minute", "Minutes", "second", "SECONDS"} {
		u, err := ParseUnit(s)
		if err != nil {
			t.Errorf("ParseUnit(%q) = _, %v", s, err)
			continue
		}
		if !match(u.String(), s) && !match(u.String()+"s", s) {
			t.Errorf("ParseUnit(%q) = %v", s, u)
		}
		got = append(got, u)
	}
	units := set.Make(got...)
	if len(units) != 6 {
		t.Errorf("ParseUnit recognized %d distinct units, want 6", len(units))
	}
	for u := range units {
		if u < UnitYear || u > UnitSecond {
			t.Errorf("ParseUnit returned invalid unit %d", u)
		}
	}
	for _, s := range []string{"", "s", "yr", "weeks", "secondss"} {
		if u, err := ParseUnit(s); err == nil {
			t.Errorf("ParseUnit(%q) = %v, <nil>, want error", s, u)
		}
	}
}
