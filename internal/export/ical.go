package export

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-lifecalc/internal/config"
	"github.com/tartampluch/go-lifecalc/internal/engine"
)

// MilestoneCalendar renders records as an iCalendar feed with one all-day event per milestone.
// stamp fills DTSTAMP; pass the clock's current time.
func MilestoneCalendar(records []engine.MilestoneRecord, stamp time.Time) ([]byte, error) {
	// Handle case where no events are found.
	// The stub keeps clients from flagging the file as invalid.
	if len(records) == 0 {
		return []byte(config.StubVCalendar), nil
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(stamp.UTC())

	for i, r := range records {
		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, milestoneUID(r, i))
		event.Props.SetText(config.PropSummary, r.Label)
		if r.Description != "" {
			event.Props.SetText(config.PropDescription, r.Description)
		}

		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(r.Date)
		event.Props.Set(dtStartProp)
		event.Props.Set(dtStampProp)

		cal.Children = append(cal.Children, event.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, wrap(config.ErrICalEncode, err)
	}
	return buf.Bytes(), nil
}

// milestoneUID is stable across exports of the same birth date, so calendar
// clients update events in place instead of duplicating them.
func milestoneUID(r engine.MilestoneRecord, index int) string {
	key := r.Spec.ID
	if key == "" {
		key = r.Label
	}
	input := fmt.Sprintf(config.FormatHashInput, key, r.Date.Format(config.DateFormatFullDash), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf(config.FormatUID, fmt.Sprintf("%x", hash[:config.UIDHashLength]), index, config.ICalDomain)
}
