// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gonih.org/when"
)

func (a *app) nowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Print the current time",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			a.print(cmd, when.In(a.cal).Now())
		},
	}
}

func (a *app) todayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Print the start of the current day",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			a.print(cmd, when.In(a.cal).Today())
		},
	}
}

func (a *app) agoCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ago <n> <unit>",
		Short:   "Print the time a delta before now",
		Example: "  when ago 3 days",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dl, err := parseDelta(args)
			if err != nil {
				return err
			}
			a.log.Debug("ago", "delta", dl)
			a.print(cmd, dl.AgoIn(a.cal))
			return nil
		},
	}
}

func (a *app) fromNowCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "from-now <n> <unit>",
		Aliases: []string{"in"},
		Short:   "Print the time a delta after now",
		Example: "  when from-now 2 months",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dl, err := parseDelta(args)
			if err != nil {
				return err
			}
			a.log.Debug("from-now", "delta", dl)
			a.print(cmd, dl.FromNowIn(a.cal))
			return nil
		},
	}
}

func (a *app) shiftCmd() *cobra.Command {
	var back bool
	c := &cobra.Command{
		Use:     "shift <date> <n> <unit>",
		Short:   "Apply a delta to a date",
		Example: "  when shift 2024-02-29 1 year\n  when shift --back 2015-03-31 1 month",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.parseDate(args[0])
			if err != nil {
				return err
			}
			dl, err := parseDelta(args[1:])
			if err != nil {
				return err
			}
			a.log.Debug("shift", "date", d, "delta", dl, "back", back)
			if back {
				a.print(cmd, d.Minus(dl))
			} else {
				a.print(cmd, d.Plus(dl))
			}
			return nil
		},
	}
	c.Flags().BoolVarP(&back, "back", "b", false, "subtract the delta instead of adding it")
	return c
}

func (a *app) nthCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "nth <ordinal> <weekday> <yyyy-mm>",
		Short:   "Find the n-th weekday of a month",
		Example: "  when nth first saturday 1968-11\n  when nth last tue 2015-03",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := when.ParseOrdinal(args[0])
			if err != nil {
				return err
			}
			w, err := when.ParseWeekday(args[1])
			if err != nil {
				return err
			}
			year, month, err := parseMonth(args[2])
			if err != nil {
				return err
			}
			d, ok := when.In(a.cal).NthWeekdayOf(year, month, n, w)
			if !ok {
				return fmt.Errorf("%v %d has no %v %v", month, year, n, w)
			}
			a.print(cmd, d)
			return nil
		},
	}
}

func (a *app) weekdayCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "weekday <date> <weekday>",
		Short:   "Move a date to a weekday of the same week",
		Long:    "Weeks start on Sunday.",
		Example: "  when weekday 2015-09-16 monday",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.parseDate(args[0])
			if err != nil {
				return err
			}
			w, err := when.ParseWeekday(args[1])
			if err != nil {
				return err
			}
			r, ok := d.WithWeekday(w)
			if !ok {
				return fmt.Errorf("cannot move %v to %v", d, w)
			}
			a.print(cmd, r)
			return nil
		},
	}
}
