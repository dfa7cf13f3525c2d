package ui

import (
	"embed"
	"log/slog"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-lifecalc/internal/config"
	"github.com/tartampluch/go-lifecalc/internal/engine"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed locales/*.json
var localeFS embed.FS

// SetupI18n initializes the translation bundle and detects available languages.
func (app *LifeCalcApp) SetupI18n() {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		return
	}

	var detectedLangs []string

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		trimmed := strings.TrimPrefix(name, "active.")
		langCode := strings.TrimSuffix(trimmed, ".json")

		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		path := "locales/" + name
		if _, err := bundle.LoadMessageFileFS(localeFS, path); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}

		detectedLangs = append(detectedLangs, langCode)
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
			config.LogKeyFile, name,
		)
	}

	app.SupportedLanguages = detectedLangs
	app.I18nBundle = bundle
	app.UpdateLocalizer()
}

// UpdateLocalizer refreshes the translator based on the user's language preference.
func (app *LifeCalcApp) UpdateLocalizer() {
	lang := app.Preferences.String(config.PrefLanguage)
	if lang == "" {
		lang = config.DefaultLanguage
	}
	app.Localizer = i18n.NewLocalizer(app.I18nBundle, lang)
}

// GetMsg is a helper to translate a key safely.
func (app *LifeCalcApp) GetMsg(key string) string {
	return app.GetMsgData(key, nil)
}

// GetMsgData translates a templated key. A missing key is returned as-is.
func (app *LifeCalcApp) GetMsgData(key string, data map[string]interface{}) string {
	if app.Localizer == nil {
		return key
	}
	msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return key
	}
	return msg
}

// msgOr translates key, falling back to def when no translation exists.
func (app *LifeCalcApp) msgOr(key, def string) string {
	if msg := app.GetMsg(key); msg != key {
		return msg
	}
	return def
}

// milestoneText returns the localized label and description of a record.
// Profile-defined rows without a translation keep their own text.
func (app *LifeCalcApp) milestoneText(r engine.MilestoneRecord) (label, desc string) {
	if r.Spec.ID == "" {
		return r.Label, r.Description
	}
	prefix := config.TKeyPrefixMilestone + r.Spec.ID
	return app.msgOr(prefix+config.TKeySuffixLabel, r.Label),
		app.msgOr(prefix+config.TKeySuffixDesc, r.Description)
}

// weekdayName localizes a weekday, e.g. "weekday_monday".
func (app *LifeCalcApp) weekdayName(d time.Weekday) string {
	return app.msgOr(config.TKeyPrefixWeekday+strings.ToLower(d.String()), d.String())
}

// localizeRecords rewrites display text in place so every surface shows the active language.
func (app *LifeCalcApp) localizeRecords(records []engine.MilestoneRecord) {
	for i := range records {
		records[i].Label, records[i].Description = app.milestoneText(records[i])
		records[i].WeekdayName = app.weekdayName(records[i].Weekday)
	}
}

// milestoneHeaders returns the localized spreadsheet and table headers.
func (app *LifeCalcApp) milestoneHeaders() []string {
	keys := []string{config.TKeyColLabel, config.TKeyColDesc, config.TKeyColDate, config.TKeyColWeekday, config.TKeyColRemain}
	return app.headers(keys, config.DefaultMilestoneHeaders)
}

// rankHeaders returns the localized rank spreadsheet headers.
func (app *LifeCalcApp) rankHeaders() []string {
	keys := []string{
		config.TKeyColScore, config.TKeyColMean, config.TKeyColStdDev, config.TKeyColPopulation,
		config.TKeyColZScore, config.TKeyColPercentile, config.TKeyColRank,
	}
	return app.headers(keys, config.DefaultRankHeaders)
}

func (app *LifeCalcApp) headers(keys, defaults []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = app.msgOr(k, defaults[i])
	}
	return out
}

// formatInt groups digits following the active language ("1,324").
func (app *LifeCalcApp) formatInt(n int) string {
	lang := app.Preferences.StringWithFallback(config.PrefLanguage, config.DefaultLanguage)
	return message.NewPrinter(language.Make(lang)).Sprintf("%d", n)
}
