package ui

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-lifecalc/internal/config"
	"github.com/tartampluch/go-lifecalc/internal/contacts"
	"github.com/tartampluch/go-lifecalc/internal/engine"
)

// LifeCalcApp encapsulates the UI state, preferences, and background logic.
type LifeCalcApp struct {
	App         fyne.App
	MainWindow  fyne.Window
	Window      fyne.Window // Settings window, nil while closed
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizer   *i18n.Localizer
	Ctx         context.Context

	Importer *contacts.Importer
	Clock    engine.Clock // Injected clock for testability (e.g. mocking time travel)

	Tray desktop.App
	Menu *fyne.Menu

	TrayStatusItem   *fyne.MenuItem
	TrayOpenItem     *fyne.MenuItem
	TraySettingsItem *fyne.MenuItem

	SupportedLanguages []string

	tabs       *container.AppTabs
	milestones *milestonesTab
	rank       *rankTab

	// Profile State
	ProfileMut  sync.RWMutex
	profile     *config.Profile
	stopWatch   context.CancelFunc
	watchedPath string

	contactsWindow fyne.Window
}

// NewLifeCalcApp constructs the application and wires dependencies.
func NewLifeCalcApp(a fyne.App, ctx context.Context) *LifeCalcApp {
	a.SetIcon(theme.CalendarIcon())

	return &LifeCalcApp{
		App:                a,
		Preferences:        a.Preferences(),
		Ctx:                ctx,
		Importer:           contacts.NewImporter(),
		Clock:              engine.RealClock{}, // Default to real clock in production
		SupportedLanguages: config.SupportedLanguages,
		profile:            config.DefaultProfile(),
	}
}

// Run builds the main window, starts the profile watcher and enters the UI loop.
func (app *LifeCalcApp) Run() {
	app.SetupI18n()
	app.loadProfile()
	app.BuildMainWindow()

	if desk, ok := app.App.(desktop.App); ok {
		app.Tray = desk
		app.Tray.SetSystemTrayIcon(app.App.Icon())
		app.setupTrayMenu()
	} else {
		slog.Warn(config.ErrTrayNotSupported,
			config.LogKeyComponent, config.CompUI)
	}

	_ = app.milestones.calculate()
	app.MainWindow.ShowAndRun()
}

// BuildMainWindow assembles the two calculator tabs into the main window.
func (app *LifeCalcApp) BuildMainWindow() fyne.Window {
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	app.MainWindow = w

	app.buildMainContent()
	w.Resize(fyne.NewSize(config.MainWindowWidth, config.MainWindowHeight))
	return w
}

// buildMainContent creates the tabs and main menu in the current language.
func (app *LifeCalcApp) buildMainContent() {
	w := app.MainWindow
	w.SetTitle(app.GetMsg(config.TKeyWinTitle))

	app.milestones = app.newMilestonesTab(w)
	app.rank = app.newRankTab(w)

	app.tabs = container.NewAppTabs(
		container.NewTabItemWithIcon(app.GetMsg(config.TKeyTabMilestones), theme.CalendarIcon(), app.milestones.content),
		container.NewTabItemWithIcon(app.GetMsg(config.TKeyTabRank), theme.GridIcon(), app.rank.content),
	)

	w.SetMainMenu(fyne.NewMainMenu(fyne.NewMenu(config.AppName,
		fyne.NewMenuItem(app.GetMsg(config.TKeyMenuSettings), app.ShowSettingsWindow),
	)))
	w.SetContent(app.tabs)
}

// relocalizeMainWindow rebuilds the main window after a language change.
// Typed inputs and the selected tab survive the rebuild.
func (app *LifeCalcApp) relocalizeMainWindow() {
	if app.MainWindow == nil || app.milestones == nil || app.rank == nil {
		return
	}

	birth := app.milestones.birthEntry.Text
	rank := app.rank.entryTexts()
	selected := app.tabs.SelectedIndex()

	app.buildMainContent()

	app.milestones.birthEntry.SetText(birth)
	app.rank.setEntryTexts(rank)
	app.tabs.SelectIndex(selected)
}

// setupTrayMenu constructs the system tray menu.
func (app *LifeCalcApp) setupTrayMenu() {
	// The status item reopens the main window on the milestones tab.
	app.TrayStatusItem = fyne.NewMenuItem(config.FallbackTrayLabel, app.showMain)

	app.TrayOpenItem = fyne.NewMenuItem(app.GetMsg(config.TKeyMenuOpen), app.showMain)

	app.TraySettingsItem = fyne.NewMenuItem(app.GetMsg(config.TKeyMenuSettings), func() {
		app.ShowSettingsWindow()
	})

	app.Menu = fyne.NewMenu(config.AppName,
		app.TrayStatusItem,
		fyne.NewMenuItemSeparator(),
		app.TrayOpenItem,
		app.TraySettingsItem,
	)

	if app.Tray != nil {
		app.Tray.SetSystemTrayMenu(app.Menu)
	}
}

func (app *LifeCalcApp) showMain() {
	if app.MainWindow == nil {
		return
	}
	app.MainWindow.Show()
	app.MainWindow.RequestFocus()
}

// RefreshTrayMenu updates localized labels in the tray menu.
func (app *LifeCalcApp) RefreshTrayMenu() {
	if app.Menu == nil {
		return
	}
	app.TrayOpenItem.Label = app.GetMsg(config.TKeyMenuOpen)
	app.TraySettingsItem.Label = app.GetMsg(config.TKeyMenuSettings)
	app.Menu.Refresh()
}

// updateTrayStatus shows the next upcoming milestone in the top menu item.
func (app *LifeCalcApp) updateTrayStatus(records []engine.MilestoneRecord) {
	if app.Menu == nil || app.TrayStatusItem == nil {
		return
	}

	label := app.GetMsg(config.TKeyTrayNone)
	if next, ok := engine.NextMilestone(records); ok {
		label = app.GetMsgData(config.TKeyTrayNext, map[string]interface{}{
			"Label": next.Label,
			"Days":  app.formatInt(next.DaysRemaining),
		})
	}

	app.TrayStatusItem.Label = label
	app.Menu.Refresh()
}

// Profile returns the active profile. It is never nil.
func (app *LifeCalcApp) Profile() *config.Profile {
	app.ProfileMut.RLock()
	defer app.ProfileMut.RUnlock()
	return app.profile
}

// loadProfile reads the configured profile and (re)starts watching it.
// A missing or invalid file leaves the defaults in place.
func (app *LifeCalcApp) loadProfile() {
	path := app.Preferences.String(config.PrefProfilePath)

	p := config.DefaultProfile()
	if path != "" {
		loaded, err := config.LoadProfile(path)
		if err != nil {
			slog.Error(config.MsgProfileKeep,
				config.LogKeyComponent, config.CompUI,
				config.LogKeyPath, path,
				config.LogKeyError, err)
		} else {
			p = loaded
			slog.Info(config.MsgProfileLoaded,
				config.LogKeyComponent, config.CompUI,
				config.LogKeyPath, path)
		}
	}

	app.ProfileMut.Lock()
	app.profile = p
	app.ProfileMut.Unlock()

	app.watchProfile(path)
}

// watchProfile runs config.WatchProfile for path until the path changes or the app stops.
func (app *LifeCalcApp) watchProfile(path string) {
	if path == app.watchedPath && app.stopWatch != nil {
		return
	}
	if app.stopWatch != nil {
		app.stopWatch()
		app.stopWatch = nil
	}
	app.watchedPath = path
	if path == "" {
		return
	}
	if _, err := os.Stat(path); err != nil {
		return
	}

	ctx, cancel := context.WithCancel(app.Ctx)
	app.stopWatch = cancel

	go func() {
		err := config.WatchProfile(ctx, path, func(p *config.Profile) {
			fyne.Do(func() { app.applyProfile(p) })
		})
		if err != nil {
			slog.Error(config.ErrProfileWatch,
				config.LogKeyComponent, config.CompUI,
				config.LogKeyError, err)
		}
	}()
}

// applyProfile swaps in a reloaded profile and recomputes both pages.
// It must run on the UI goroutine.
func (app *LifeCalcApp) applyProfile(p *config.Profile) {
	app.ProfileMut.Lock()
	app.profile = p
	app.ProfileMut.Unlock()

	if app.milestones != nil {
		_ = app.milestones.calculate()
	}
	if app.rank != nil {
		app.rank.setInputs(p.Rank)
	}
	app.App.SendNotification(fyne.NewNotification(config.AppName, app.GetMsg(config.TKeyNotifProfile)))
}
