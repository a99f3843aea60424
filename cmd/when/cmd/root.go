// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the subcommands of the when tool.
package cmd

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"gonih.org/when"
)

// app is the state shared by all subcommands. It is filled in by the
// persistent pre-run of the root command.
type app struct {
	cfgFile  string
	location string
	dateOnly bool

	// clock overrides the calendar's clock, if set.
	clock func() time.Time

	cfg Config
	cal when.Calendar
	log *slog.Logger
}

// Execute runs the when command with the process arguments.
func Execute() error {
	return NewRootCmd(nil).Execute()
}

// NewRootCmd returns the root command with all subcommands attached. If clock
// is not nil, it is used instead of the system clock.
func NewRootCmd(clock func() time.Time) *cobra.Command {
	a := &app{clock: clock}
	root := &cobra.Command{
		Use:   "when",
		Short: "Calendar arithmetic on the command line",
		Long: `when does calendar arithmetic in the local time zone, or the one
named by --location or WHEN_LOCATION.

Deltas are a number and a unit, as in "3 days" or "-1.5 seconds".
Dates are RFC 3339 ("2015-09-16T12:00:00Z") or plain days ("2015-09-16").`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (YAML or TOML)")
	root.PersistentFlags().StringVarP(&a.location, "location", "l", "", "time zone, overrides the config")
	root.PersistentFlags().BoolVarP(&a.dateOnly, "date", "d", false, "print only the day")

	root.AddCommand(
		a.nowCmd(),
		a.todayCmd(),
		a.agoCmd(),
		a.fromNowCmd(),
		a.shiftCmd(),
		a.nthCmd(),
		a.weekdayCmd(),
		a.configCmd(),
		versionCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(a.cfgFile)
	if err != nil {
		return err
	}
	if a.location != "" {
		cfg.Location = a.location
	}
	cal, level, err := cfg.Resolve()
	if err != nil {
		return err
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	if a.clock != nil {
		if g, ok := cal.(when.Gregorian); ok {
			g.Clock = a.clock
			cal = g
		}
	}
	a.cfg = cfg
	a.cal = cal
	a.log.Debug("calendar ready", "location", cfg.Location, "config", a.cfgFile)
	return nil
}

func (a *app) print(cmd *cobra.Command, d when.Date) {
	if a.dateOnly {
		fmt.Fprintf(cmd.OutOrStdout(), "%04d-%02d-%02d\n", d.Year(), int(d.Month()), d.Day())
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), d)
}

// parseDate parses an RFC 3339 instant or a plain day in the calendar.
func (a *app) parseDate(s string) (when.Date, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return when.In(a.cal).At(t), nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return when.Date{}, &when.ParseError{Kind: "date", Value: s, Message: "want RFC 3339 or YYYY-MM-DD"}
	}
	y, m, d := t.Date()
	return when.In(a.cal).Make(when.Fields{Year: y, Month: m, Day: d})
}

// parseMonth parses a month in the form YYYY-MM.
func parseMonth(s string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, &when.ParseError{Kind: "month", Value: s, Message: "want YYYY-MM"}
	}
	return t.Year(), t.Month(), nil
}

func parseDelta(args []string) (when.Delta, error) {
	return when.ParseDelta(strings.Join(args, " "))
}
