package ui

import (
	"fmt"
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-lifecalc/internal/config"
)

// settingsWidgets holds references to UI elements to simplify data retrieval during save.
type settingsWidgets struct {
	langSelect   *widget.Select
	profileEntry *widget.Entry
	exportEntry  *widget.Entry
}

// ShowSettingsWindow displays the configuration dialog allowing users to manage settings.
func (app *LifeCalcApp) ShowSettingsWindow() {
	if app.Window != nil {
		slog.Debug("Settings window already open, requesting focus", config.LogKeyComponent, config.CompUISet)
		app.Window.RequestFocus()
		return
	}

	slog.Info("Opening settings window", config.LogKeyComponent, config.CompUISet)
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinSettings))
	app.Window = w

	sw := app.newSettingsWidgets()

	// --- 1. Language ---
	itemLang := widget.NewFormItem(app.GetMsg(config.TKeyLblLanguage), sw.langSelect)
	itemLang.HintText = app.GetMsg(config.TKeyHelpLanguage)

	// --- 2. Profile ---
	browseProfile := widget.NewButton(app.GetMsg(config.TKeyBtnBrowse), func() {
		d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
			if err == nil && r != nil {
				sw.profileEntry.SetText(r.URI().Path())
				_ = r.Close()
			}
		}, w)
		d.SetFilter(storage.NewExtensionFileFilter([]string{config.ExtYAML, config.ExtYML}))
		d.Show()
	})
	itemProfile := widget.NewFormItem(app.GetMsg(config.TKeyLblProfile),
		container.NewBorder(nil, nil, nil, browseProfile, sw.profileEntry))
	itemProfile.HintText = app.GetMsg(config.TKeyHelpProfile)

	// --- 3. Export Folder ---
	browseExport := widget.NewButton(app.GetMsg(config.TKeyBtnBrowse), func() {
		dialog.ShowFolderOpen(func(u fyne.ListableURI, err error) {
			if err == nil && u != nil {
				sw.exportEntry.SetText(u.Path())
			}
		}, w)
	})
	itemExport := widget.NewFormItem(app.GetMsg(config.TKeyLblExportDir),
		container.NewBorder(nil, nil, nil, browseExport, sw.exportEntry))
	itemExport.HintText = app.GetMsg(config.TKeyHelpExportDir)

	generalCard := widget.NewCard(app.GetMsg(config.TKeyLblGeneral), "", widget.NewForm(itemLang, itemProfile, itemExport))

	// --- Actions ---
	btnSave := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSave), theme.DocumentSaveIcon(), func() {
		app.saveSettings(sw)
		w.Close()
	})
	btnSave.Importance = widget.HighImportance
	btnCancel := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCancel), theme.CancelIcon(), func() { w.Close() })

	// --- Footer ---
	footerLabel := widget.NewLabel(fmt.Sprintf(app.GetMsg(config.TKeyLblFooter), config.Version))
	footerLabel.Alignment = fyne.TextAlignCenter
	footerLabel.TextStyle = fyne.TextStyle{Italic: true}

	content := container.NewPadded(container.NewVBox(
		generalCard,
		container.NewGridWithColumns(config.LayoutColumnsDouble, btnCancel, btnSave),
		footerLabel,
	))

	w.SetContent(content)
	w.Resize(fyne.NewSize(config.SettingsWindowWidth, content.MinSize().Height))
	w.SetFixedSize(true)
	w.SetOnClosed(func() { app.Window = nil })
	w.Show()
}

// newSettingsWidgets builds the inputs pre-filled from preferences.
func (app *LifeCalcApp) newSettingsWidgets() *settingsWidgets {
	sw := &settingsWidgets{}

	sw.langSelect = widget.NewSelect(app.SupportedLanguages, nil)
	sw.langSelect.SetSelected(app.Preferences.StringWithFallback(config.PrefLanguage, config.DefaultLanguage))

	sw.profileEntry = widget.NewEntry()
	sw.profileEntry.SetText(app.Preferences.String(config.PrefProfilePath))

	sw.exportEntry = widget.NewEntry()
	sw.exportEntry.SetText(app.Preferences.String(config.PrefExportDir))

	return sw
}

// saveSettings persists the preferences and applies them to the running app.
func (app *LifeCalcApp) saveSettings(sw *settingsWidgets) {
	slog.Info(config.MsgSettingsSaved, config.LogKeyComponent, config.CompUISet)

	oldProfile := app.Preferences.String(config.PrefProfilePath)
	newProfile := strings.TrimSpace(sw.profileEntry.Text)
	oldLang := app.Preferences.StringWithFallback(config.PrefLanguage, config.DefaultLanguage)

	if sw.langSelect.Selected != "" {
		app.Preferences.SetString(config.PrefLanguage, sw.langSelect.Selected)
	}
	app.Preferences.SetString(config.PrefProfilePath, newProfile)
	app.Preferences.SetString(config.PrefExportDir, strings.TrimSpace(sw.exportEntry.Text))

	// Trigger system-wide updates
	app.UpdateLocalizer()
	app.RefreshTrayMenu()

	if sw.langSelect.Selected != "" && sw.langSelect.Selected != oldLang {
		app.relocalizeMainWindow()
	}

	if newProfile != oldProfile {
		app.loadProfile()
		if app.rank != nil {
			app.rank.setInputs(app.Profile().Rank)
		}
	}

	if app.milestones != nil {
		app.milestones.headers = app.milestoneHeaders()
		_ = app.milestones.calculate()
	}
	if app.rank != nil {
		_ = app.rank.calculate()
	}
}
