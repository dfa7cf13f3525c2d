package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/tartampluch/go-lifecalc/internal/config"
)

// MilestoneSpec is one row of the milestone table: a named day offset from birth.
type MilestoneSpec struct {
	// ID is a stable key used to look up translations; it never affects the arithmetic.
	ID          string
	Label       string
	OffsetDays  int
	Description string
}

// MilestoneRecord is a MilestoneSpec resolved against a birth date and a reference date.
type MilestoneRecord struct {
	Spec        MilestoneSpec
	Label       string
	Description string

	// Date is the civil target date (UTC midnight).
	Date        time.Time
	Weekday     time.Weekday
	WeekdayName string

	// DaysRemaining is negative once the milestone has passed.
	DaysRemaining int
}

// Passed reports whether the milestone lies before the reference date.
func (r MilestoneRecord) Passed() bool {
	return r.DaysRemaining < 0
}

// defaultMilestones is the built-in table. Year milestones use a flat 365-day
// year on purpose, so "60 years" lands a few days before the 60th birthday.
var defaultMilestones = [...]MilestoneSpec{
	{ID: "days_100", Label: "100 days since birth", OffsetDays: 100, Description: "Baby's first celebration"},
	{ID: "days_1000", Label: "1,000 days since birth", OffsetDays: 1000, Description: "A growth milestone"},
	{ID: "days_10000", Label: "10,000 days since birth", OffsetDays: 10000, Description: "A big number in life"},
	{ID: "days_11111", Label: "11,111 days since birth", OffsetDays: 11111, Description: "A symbolic day of repeating digits"},
	{ID: "days_20000", Label: "20,000 days since birth", OffsetDays: 20000, Description: "An important number of adult life"},
	{ID: "days_30000", Label: "30,000 days since birth", OffsetDays: 30000, Description: "Entering the later chapters of life"},
	{ID: "years_60", Label: "Hwangap (60)", OffsetDays: 60 * config.DaysPerYear, Description: "One full sexagenary cycle completed"},
	{ID: "years_70", Label: "Chilsun (70)", OffsetDays: 70 * config.DaysPerYear, Description: "An age celebrating long life"},
	{ID: "years_80", Label: "Palsun (80)", OffsetDays: 80 * config.DaysPerYear, Description: "A symbol of great longevity"},
	{ID: "years_90", Label: "Gusun (90)", OffsetDays: 90 * config.DaysPerYear, Description: "A rare long life"},
	{ID: "years_100", Label: "Baeksu (100)", OffsetDays: 100 * config.DaysPerYear, Description: "The summit of a lifetime"},
}

// DefaultMilestones returns a copy of the built-in 11-entry table, in display order.
func DefaultMilestones() []MilestoneSpec {
	specs := make([]MilestoneSpec, len(defaultMilestones))
	copy(specs, defaultMilestones[:])
	return specs
}

// SpecsFromProfile returns the profile's custom table, or the defaults when it has none.
func SpecsFromProfile(p *config.Profile) []MilestoneSpec {
	if p == nil || len(p.Milestones) == 0 {
		return DefaultMilestones()
	}

	specs := make([]MilestoneSpec, 0, len(p.Milestones))
	for _, m := range p.Milestones {
		specs = append(specs, MilestoneSpec{
			ID:          m.ID,
			Label:       m.Label,
			OffsetDays:  m.Offset(),
			Description: m.Description,
		})
	}
	return specs
}

// ComputeMilestones resolves every spec against birth, in input order.
// DaysRemaining is measured from reference (normally today).
func ComputeMilestones(birth, reference time.Time, specs []MilestoneSpec) ([]MilestoneRecord, error) {
	if birth.IsZero() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDate, config.ErrDateZero)
	}

	birth = DateOnly(birth)
	reference = DateOnly(reference)

	if err := checkYear(birth); err != nil {
		return nil, err
	}

	records := make([]MilestoneRecord, 0, len(specs))
	for _, spec := range specs {
		if spec.OffsetDays < 0 {
			return nil, fmt.Errorf("%w: %s (%q)", ErrInvalidInput, config.ErrOffsetNegative, spec.Label)
		}

		// AddDate normalises day overflow, rolling months, years and leap days correctly.
		target := birth.AddDate(0, 0, spec.OffsetDays)
		if err := checkYear(target); err != nil {
			return nil, err
		}

		records = append(records, MilestoneRecord{
			Spec:          spec,
			Label:         spec.Label,
			Description:   spec.Description,
			Date:          target,
			Weekday:       target.Weekday(),
			WeekdayName:   target.Weekday().String(),
			DaysRemaining: DaysBetween(reference, target),
		})
	}

	slog.Debug(config.MsgMilestonesDone,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyBirth, birth.Format(config.DateFormatFullDash),
		config.LogKeyReference, reference.Format(config.DateFormatFullDash),
		config.LogKeyCount, len(records))

	return records, nil
}

// NextMilestone returns the upcoming record closest to the reference date.
// A milestone falling on the reference date itself (zero days) counts as upcoming.
func NextMilestone(records []MilestoneRecord) (MilestoneRecord, bool) {
	var next MilestoneRecord
	found := false
	for _, r := range records {
		if r.Passed() {
			continue
		}
		if !found || r.DaysRemaining < next.DaysRemaining {
			next = r
			found = true
		}
	}
	return next, found
}
