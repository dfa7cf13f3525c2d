package commands

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/tartampluch/go-lifecalc/internal/config"
	"github.com/tartampluch/go-lifecalc/internal/engine"
	"github.com/tartampluch/go-lifecalc/internal/export"
	"github.com/urfave/cli/v2"
)

// MilestonesCommand prints the milestone table for a birth date and exports it.
var MilestonesCommand = &cli.Command{
	Name:   config.CmdMilestones,
	Usage:  config.CmdUsageMilestones,
	Action: runMilestones,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  config.FlagBirth,
			Usage: config.FlagDescBirth,
		},
		&cli.StringFlag{
			Name:  config.FlagToday,
			Usage: config.FlagDescToday,
		},
		&cli.BoolFlag{
			Name:  config.FlagICS,
			Usage: config.FlagDescICS,
		},
		&cli.StringFlag{
			Name:  config.FlagFormat,
			Usage: config.FlagDescFormat,
			Value: config.FormatTable,
		},
		profileFlag(),
		outFlag(),
	},
}

// Clock is the source of "today" when --today is absent. Tests replace it.
var Clock engine.Clock = engine.RealClock{}

func runMilestones(c *cli.Context) error {
	p, err := loadProfile(c)
	if err != nil {
		return fail(err)
	}

	birthText := c.String(config.FlagBirth)
	if birthText == "" {
		birthText = p.BirthDate
	}
	birth, err := engine.ParseDate(birthText)
	if err != nil {
		return fail(err)
	}

	today := engine.Today(Clock)
	if v := c.String(config.FlagToday); v != "" {
		if today, err = engine.ParseDate(v); err != nil {
			return fail(err)
		}
	}

	records, err := engine.ComputeMilestones(birth, today, engine.SpecsFromProfile(p))
	if err != nil {
		return fail(err)
	}

	slog.Info(config.MsgMilestonesDone,
		config.LogKeyComponent, config.CompCLI,
		config.LogKeyBirth, birth.Format(config.DateFormatFullDash),
		config.LogKeyFormat, c.String(config.FlagFormat),
		config.LogKeyCount, len(records))

	w := c.App.Writer
	switch format := c.String(config.FlagFormat); format {
	case config.FormatTable, config.FormatText:
		err = printMilestones(w, records)
	case config.FormatJSON:
		err = export.WriteJSON(w, export.MilestonesToJSON(records))
	default:
		return fail(fmt.Errorf("%s: %q", config.ErrUnknownFormat, format))
	}
	if err != nil {
		return err
	}

	xlsxPath := outputPath(c, p, config.FileMilestonesXLSX)
	if err := export.SaveFile(xlsxPath, func(w io.Writer) error {
		return export.WriteMilestones(w, records, nil)
	}); err != nil {
		return fail(err)
	}

	if c.Bool(config.FlagICS) {
		icsPath := strings.TrimSuffix(xlsxPath, filepath.Ext(xlsxPath)) + config.ExtICS
		data, err := export.MilestoneCalendar(records, Clock.Now())
		if err != nil {
			return fail(err)
		}
		if err := export.SaveFile(icsPath, func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		}); err != nil {
			return fail(err)
		}
	}

	return nil
}

// printMilestones renders the five display columns as an aligned table.
func printMilestones(w io.Writer, records []engine.MilestoneRecord) error {
	p := printer()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, strings.Join(config.DefaultMilestoneHeaders, "\t"))
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			r.Label,
			r.Description,
			r.Date.Format(config.DateFormatDisplay),
			r.WeekdayName,
			p.Sprintf("%d", r.DaysRemaining),
		)
	}

	if next, ok := engine.NextMilestone(records); ok {
		fmt.Fprintf(tw, config.OutNextMilestone, next.Label, p.Sprintf("%d", next.DaysRemaining))
	}
	return tw.Flush()
}
