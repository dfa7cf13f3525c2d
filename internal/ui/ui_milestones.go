package ui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-lifecalc/internal/config"
	"github.com/tartampluch/go-lifecalc/internal/contacts"
	"github.com/tartampluch/go-lifecalc/internal/engine"
	"github.com/tartampluch/go-lifecalc/internal/export"
)

// milestonesTab is the "special days" page: birth date in, milestone table out.
type milestonesTab struct {
	app *LifeCalcApp
	win fyne.Window

	birthEntry *widget.Entry
	status     *widget.Label
	table      *widget.Table
	headers    []string

	// records is only touched on the UI goroutine.
	records []engine.MilestoneRecord

	content fyne.CanvasObject
}

func (app *LifeCalcApp) newMilestonesTab(w fyne.Window) *milestonesTab {
	t := &milestonesTab{app: app, win: w, headers: app.milestoneHeaders()}

	t.birthEntry = widget.NewEntry()
	t.birthEntry.PlaceHolder = config.PlaceholderDate
	t.birthEntry.SetText(app.Preferences.StringWithFallback(config.PrefBirthDate, app.Profile().BirthDate))
	t.birthEntry.Validator = func(s string) error {
		if _, err := engine.ParseDate(s); err != nil {
			return errors.New(app.GetMsg(config.TKeyErrDate))
		}
		return nil
	}
	t.birthEntry.OnChanged = func(string) { _ = t.calculate() }
	t.birthEntry.OnSubmitted = func(string) { _ = t.calculate() }

	t.status = widget.NewLabel("")
	t.status.Wrapping = fyne.TextWrapWord

	t.table = t.buildTable()

	intro := widget.NewLabel(app.GetMsg(config.TKeyLblMsIntro))
	intro.Wrapping = fyne.TextWrapWord

	itemBirth := widget.NewFormItem(app.GetMsg(config.TKeyLblBirthDate), t.birthEntry)
	itemBirth.HintText = app.GetMsg(config.TKeyHelpBirthDate)

	btnCalc := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCalculate), theme.MediaPlayIcon(), func() { _ = t.calculate() })
	btnCalc.Importance = widget.HighImportance
	btnImport := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnImport), theme.AccountIcon(), t.showImportDialog)
	btnXLSX := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnExportXLSX), theme.DownloadIcon(), func() { _, _ = t.exportXLSX() })
	btnICS := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnExportICS), theme.CalendarIcon(), func() { _, _ = t.exportICS() })

	top := container.NewVBox(
		intro,
		widget.NewForm(itemBirth),
		container.NewHBox(btnCalc, btnImport, btnXLSX, btnICS),
		t.status,
	)
	t.content = container.NewBorder(top, nil, nil, nil, t.table)
	return t
}

// buildTable renders records with a fixed, non-sortable header row.
func (t *milestonesTab) buildTable() *widget.Table {
	table := widget.NewTable(
		func() (int, int) {
			return len(t.records), config.ColCount
		},
		func() fyne.CanvasObject {
			return widget.NewLabel(config.TablePlaceholder)
		},
		func(id widget.TableCellID, o fyne.CanvasObject) {
			label := o.(*widget.Label)
			if id.Row >= len(t.records) {
				return
			}
			r := t.records[id.Row]

			switch id.Col {
			case config.ColIDLabel:
				label.SetText(r.Label)
			case config.ColIDDesc:
				label.SetText(r.Description)
			case config.ColIDDate:
				label.SetText(r.Date.Format(config.DateFormatDisplay))
			case config.ColIDWeekday:
				label.SetText(r.WeekdayName)
			case config.ColIDRemain:
				label.SetText(t.app.formatInt(r.DaysRemaining))
			}
		},
	)

	table.ShowHeaderRow = true
	table.CreateHeader = func() fyne.CanvasObject {
		return widget.NewLabelWithStyle(config.TablePlaceholder, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	}
	table.UpdateHeader = func(id widget.TableCellID, o fyne.CanvasObject) {
		if id.Col >= 0 && id.Col < len(t.headers) {
			o.(*widget.Label).SetText(t.headers[id.Col])
		}
	}

	table.SetColumnWidth(config.ColIDLabel, config.ColWidthLabel)
	table.SetColumnWidth(config.ColIDDesc, config.ColWidthDesc)
	table.SetColumnWidth(config.ColIDDate, config.ColWidthDate)
	table.SetColumnWidth(config.ColIDWeekday, config.ColWidthWeekday)
	table.SetColumnWidth(config.ColIDRemain, config.ColWidthRemain)
	return table
}

// calculate recomputes the table from the birth date entry and the active profile.
// An invalid date clears the table and shows the validation message.
func (t *milestonesTab) calculate() error {
	app := t.app

	birth, err := engine.ParseDate(t.birthEntry.Text)
	if err == nil {
		t.records, err = engine.ComputeMilestones(birth, engine.Today(app.Clock), engine.SpecsFromProfile(app.Profile()))
	}
	if err != nil {
		slog.Warn(config.MsgDateRejected,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyValue, t.birthEntry.Text,
			config.LogKeyError, err)

		t.records = nil
		t.status.SetText(app.GetMsg(config.TKeyErrDate))
		t.table.Refresh()
		app.updateTrayStatus(nil)
		return err
	}

	app.localizeRecords(t.records)
	app.Preferences.SetString(config.PrefBirthDate, birth.Format(config.DateFormatFullDash))

	if next, ok := engine.NextMilestone(t.records); ok {
		t.status.SetText(app.GetMsgData(config.TKeyLblNext, map[string]interface{}{
			"Label": next.Label,
			"Days":  app.formatInt(next.DaysRemaining),
		}))
	} else {
		t.status.SetText(app.GetMsg(config.TKeyLblNoNext))
	}

	t.table.Refresh()
	app.updateTrayStatus(t.records)
	return nil
}

// exportXLSX recomputes from the current entry text, then writes
// life_special_days.xlsx into the export directory.
func (t *milestonesTab) exportXLSX() (string, error) {
	if err := t.calculate(); err != nil {
		return "", err
	}
	headers := t.app.milestoneHeaders()
	return t.app.saveExport(t.win, config.FileMilestonesXLSX, func(w io.Writer) error {
		return export.WriteMilestones(w, t.records, headers)
	})
}

// exportICS writes life_special_days.ics into the export directory.
func (t *milestonesTab) exportICS() (string, error) {
	if err := t.calculate(); err != nil {
		return "", err
	}
	data, err := export.MilestoneCalendar(t.records, t.app.Clock.Now())
	if err != nil {
		t.app.showExportError(t.win, err)
		return "", err
	}
	return t.app.saveExport(t.win, config.FileMilestonesICS, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// showImportDialog lets the user pick a vCard file and then a contact from it.
func (t *milestonesTab) showImportDialog() {
	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil || r == nil {
			return
		}
		defer func() { _ = r.Close() }()
		t.importContacts(r)
	}, t.win)
	d.SetFilter(storage.NewExtensionFileFilter([]string{config.ExtVCF, config.ExtVCard}))
	d.Show()
}

// importContacts decodes r and opens the picker; picking a contact fills the birth date.
func (t *milestonesTab) importContacts(r io.Reader) {
	app := t.app

	list, err := app.Importer.Decode(app.Ctx, r)
	if err != nil {
		dialog.ShowInformation(app.GetMsg(config.TKeyTitleImport), err.Error(), t.win)
		return
	}
	if len(list) == 0 {
		dialog.ShowInformation(app.GetMsg(config.TKeyTitleImport), app.GetMsg(config.TKeyNoContacts), t.win)
		return
	}

	app.ShowContactPicker(list, t.pickContact)
}

func (t *milestonesTab) pickContact(c contacts.Contact) {
	slog.Info(config.MsgContactPicked,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyName, c.Name)

	// SetText fires OnChanged, which recomputes when the date differs.
	t.birthEntry.SetText(c.BirthDate.Format(config.DateFormatFullDash))
}

// exportDir resolves where GUI exports go: settings first, then the profile, then home.
func (app *LifeCalcApp) exportDir() string {
	if dir := app.Preferences.String(config.PrefExportDir); dir != "" {
		if expanded, err := config.ExpandHome(dir); err == nil {
			return expanded
		}
		return dir
	}
	if dir := app.Profile().ExportDir; dir != "" {
		return dir
	}
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

// saveExport writes name into the export directory and notifies the user.
func (app *LifeCalcApp) saveExport(win fyne.Window, name string, write export.WriterFunc) (string, error) {
	path := filepath.Join(app.exportDir(), name)
	if err := export.SaveFile(path, write); err != nil {
		app.showExportError(win, err)
		return "", err
	}

	app.App.SendNotification(fyne.NewNotification(config.AppName,
		app.GetMsgData(config.TKeyNotifExported, map[string]interface{}{"Path": path})))
	return path, nil
}

func (app *LifeCalcApp) showExportError(win fyne.Window, err error) {
	msg := fmt.Sprintf("%s\n%v", app.GetMsg(config.TKeyErrExport), err)
	dialog.ShowInformation(app.GetMsg(config.TKeyTitleExport), msg, win)
}
