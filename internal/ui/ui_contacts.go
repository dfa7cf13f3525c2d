package ui

import (
	"log/slog"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-lifecalc/internal/config"
	"github.com/tartampluch/go-lifecalc/internal/contacts"
)

// ShowContactPicker displays the imported contacts in a sortable table.
// Selecting a row calls onPick and closes the window.
// It implements a singleton pattern: if the window is already open, it is replaced.
func (app *LifeCalcApp) ShowContactPicker(list []contacts.Contact, onPick func(contacts.Contact)) {
	if app.contactsWindow != nil {
		app.contactsWindow.Close()
	}

	w := app.App.NewWindow(app.GetMsg(config.TKeyWinContacts))
	app.contactsWindow = w
	w.Resize(fyne.NewSize(config.ContactsWinWidth, config.ContactsWinHeight))

	// Local copy so sorting never reorders the caller's slice.
	displayContacts := make([]contacts.Contact, len(list))
	copy(displayContacts, list)

	slog.Info(config.MsgOpenContacts,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyCount, len(displayContacts))

	// Internal Sorting State
	currentSortCol := config.ColIDContactName
	sortAsc := true

	var refreshTable func()

	sortContacts(displayContacts, currentSortCol, sortAsc)

	table := widget.NewTable(
		func() (int, int) {
			return len(displayContacts), 2
		},
		func() fyne.CanvasObject {
			return widget.NewLabel(config.TablePlaceholder)
		},
		func(id widget.TableCellID, o fyne.CanvasObject) {
			label := o.(*widget.Label)
			if id.Row >= len(displayContacts) {
				return
			}
			c := displayContacts[id.Row]

			switch id.Col {
			case config.ColIDContactName:
				label.SetText(c.Name)
			case config.ColIDContactDate:
				label.SetText(c.BirthDate.Format(config.DateFormatDisplay))
			}
		},
	)

	// --- Header Configuration (Fyne Native) ---

	table.ShowHeaderRow = true

	table.CreateHeader = func() fyne.CanvasObject {
		return widget.NewButton(config.TablePlaceholder, func() {})
	}

	// UpdateHeader sets the localized title and visual sort indicator.
	table.UpdateHeader = func(id widget.TableCellID, o fyne.CanvasObject) {
		btn := o.(*widget.Button)

		titleKey := config.TKeyColName
		if id.Col == config.ColIDContactDate {
			titleKey = config.TKeyColDate
		}
		text := app.GetMsg(titleKey)

		if id.Col == currentSortCol {
			if sortAsc {
				text += config.SortIconAsc
			} else {
				text += config.SortIconDesc
			}
		}
		btn.SetText(text)

		btn.OnTapped = func() {
			if currentSortCol == id.Col {
				sortAsc = !sortAsc
			} else {
				currentSortCol = id.Col
				sortAsc = true
			}
			refreshTable()
		}
	}

	table.OnSelected = func(id widget.TableCellID) {
		if id.Row < 0 || id.Row >= len(displayContacts) {
			return
		}
		picked := displayContacts[id.Row]
		w.Close()
		if onPick != nil {
			onPick(picked)
		}
	}

	table.SetColumnWidth(config.ColIDContactName, config.ColWidthContactName)
	table.SetColumnWidth(config.ColIDContactDate, config.ColWidthContactDate)

	refreshTable = func() {
		sortContacts(displayContacts, currentSortCol, sortAsc)
		table.Refresh()
	}

	w.SetContent(container.NewBorder(nil, nil, nil, nil, table))
	w.SetOnClosed(func() {
		if app.contactsWindow == w {
			app.contactsWindow = nil
		}
	})
	w.Show()
}

// sortContacts orders by name (case-insensitive) or by birth date, ties broken by name.
func sortContacts(list []contacts.Contact, col int, asc bool) {
	less := func(a, b contacts.Contact) bool {
		if col == config.ColIDContactDate && !a.BirthDate.Equal(b.BirthDate) {
			return a.BirthDate.Before(b.BirthDate)
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	}

	sort.SliceStable(list, func(i, j int) bool {
		if !asc {
			return less(list[j], list[i])
		}
		return less(list[i], list[j])
	})

	slog.Debug(config.MsgContactsSorted,
		config.LogKeyComponent, config.CompUI,
		config.LogKeySortCol, col,
		config.LogKeySortAsc, asc)
}
