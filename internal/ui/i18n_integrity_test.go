package ui_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-lifecalc/internal/config"
	"github.com/tartampluch/go-lifecalc/internal/engine"
)

// requiredKeys lists every translation key the UI looks up.
func requiredKeys() []string {
	keys := []string{
		config.TKeyWinTitle,
		config.TKeyWinSettings,
		config.TKeyWinContacts,
		config.TKeyTabMilestones,
		config.TKeyTabRank,
		config.TKeyMenuOpen,
		config.TKeyMenuSettings,
		config.TKeyTrayNext,
		config.TKeyTrayNone,
		config.TKeyLblBirthDate,
		config.TKeyHelpBirthDate,
		config.TKeyBtnCalculate,
		config.TKeyBtnImport,
		config.TKeyBtnExportXLSX,
		config.TKeyBtnExportICS,
		config.TKeyBtnSave,
		config.TKeyBtnCancel,
		config.TKeyBtnBrowse,
		config.TKeyLblNext,
		config.TKeyLblNoNext,
		config.TKeyLblScore,
		config.TKeyLblMean,
		config.TKeyLblStdDev,
		config.TKeyLblPopulation,
		config.TKeyLblZScore,
		config.TKeyLblPercentile,
		config.TKeyLblRank,
		config.TKeyLblRankIntro,
		config.TKeyLblMsIntro,
		config.TKeyLblLanguage,
		config.TKeyHelpLanguage,
		config.TKeyLblProfile,
		config.TKeyHelpProfile,
		config.TKeyLblExportDir,
		config.TKeyHelpExportDir,
		config.TKeyLblGeneral,
		config.TKeyLblFooter,
		config.TKeyNotifExported,
		config.TKeyNotifProfile,
		config.TKeyNoContacts,
		config.TKeyTitleExport,
		config.TKeyTitleImport,
		config.TKeyErrDate,
		config.TKeyErrNumber,
		config.TKeyErrStdDev,
		config.TKeyErrPopulation,
		config.TKeyErrExport,
		// Columns
		config.TKeyColLabel,
		config.TKeyColDesc,
		config.TKeyColDate,
		config.TKeyColWeekday,
		config.TKeyColRemain,
		config.TKeyColName,
		config.TKeyColScore,
		config.TKeyColMean,
		config.TKeyColStdDev,
		config.TKeyColPopulation,
		config.TKeyColZScore,
		config.TKeyColPercentile,
		config.TKeyColRank,
	}

	for _, spec := range engine.DefaultMilestones() {
		prefix := config.TKeyPrefixMilestone + spec.ID
		keys = append(keys, prefix+config.TKeySuffixLabel, prefix+config.TKeySuffixDesc)
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		keys = append(keys, config.TKeyPrefixWeekday+strings.ToLower(d.String()))
	}
	return keys
}

func loadLocale(t *testing.T, lang string) map[string]interface{} {
	t.Helper()

	// Adjust path if running test from internal/ui or root
	path := filepath.Join("locales", "active."+lang+".json")
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		path = filepath.Join("..", "..", "internal", "ui", "locales", "active."+lang+".json")
		content, err = os.ReadFile(path)
	}
	require.NoError(t, err, "Must load active.%s.json", lang)

	var jsonMap map[string]interface{}
	require.NoError(t, json.Unmarshal(content, &jsonMap), "JSON must be valid")
	return jsonMap
}

// TestI18nIntegrity ensures that every translation key defined in config.go
// actually exists in each locale JSON file.
func TestI18nIntegrity(t *testing.T) {
	keys := requiredKeys()

	definedKeys := make(map[string]bool, len(keys))
	for _, k := range keys {
		definedKeys[k] = true
	}

	for _, lang := range config.SupportedLanguages {
		t.Run(lang, func(t *testing.T) {
			jsonMap := loadLocale(t, lang)

			for _, key := range keys {
				v, exists := jsonMap[key]
				if assert.Truef(t, exists, "Key '%s' is missing in active.%s.json", key, lang) {
					assert.NotEmptyf(t, v, "Key '%s' is empty in active.%s.json", key, lang)
				}
			}

			// Check for orphan keys in JSON (keys that exist in JSON but not in Go)
			for jsonKey := range jsonMap {
				if strings.HasPrefix(jsonKey, "_") {
					continue
				}
				if !definedKeys[jsonKey] {
					t.Logf("Warning: Key '%s' exists in active.%s.json but is never looked up", jsonKey, lang)
				}
			}
		})
	}
}

// TestI18nTemplates ensures templated messages keep their placeholders in every language.
func TestI18nTemplates(t *testing.T) {
	placeholders := map[string][]string{
		config.TKeyTrayNext:      {"{{.Label}}", "{{.Days}}"},
		config.TKeyLblNext:       {"{{.Label}}", "{{.Days}}"},
		config.TKeyLblZScore:     {"{{.Value}}"},
		config.TKeyLblPercentile: {"{{.Value}}"},
		config.TKeyLblRank:       {"{{.Rank}}", "{{.Population}}"},
		config.TKeyNotifExported: {"{{.Path}}"},
		config.TKeyLblFooter:     {"%s"},
	}

	for _, lang := range config.SupportedLanguages {
		jsonMap := loadLocale(t, lang)
		for key, want := range placeholders {
			msg, _ := jsonMap[key].(string)
			for _, p := range want {
				assert.Containsf(t, msg, p, "%s/%s lost placeholder %s", lang, key, p)
			}
		}
	}
}
