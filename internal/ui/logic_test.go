package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-lifecalc/internal/config"
	"github.com/tartampluch/go-lifecalc/internal/contacts"
)

// -----------------------------------------------------------------------------
// Sorting Logic Tests
// -----------------------------------------------------------------------------

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func names(list []contacts.Contact) []string {
	out := make([]string, len(list))
	for i, c := range list {
		out[i] = c.Name
	}
	return out
}

// TestSortContacts_Names verifies case-insensitive alphabetical sorting in both directions.
func TestSortContacts_Names(t *testing.T) {
	data := []contacts.Contact{
		{Name: "charlie"},
		{Name: "Bob"},
		{Name: "alice"},
	}

	sortContacts(data, config.ColIDContactName, true)
	assert.Equal(t, []string{"alice", "Bob", "charlie"}, names(data))

	sortContacts(data, config.ColIDContactName, false)
	assert.Equal(t, []string{"charlie", "Bob", "alice"}, names(data))
}

// TestSortContacts_Dates verifies birth-date ordering with name as tiebreaker.
func TestSortContacts_Dates(t *testing.T) {
	data := []contacts.Contact{
		{Name: "Young", BirthDate: date(2001, 3, 4)},
		{Name: "Twin B", BirthDate: date(1980, 7, 1)},
		{Name: "Old", BirthDate: date(1950, 1, 1)},
		{Name: "twin a", BirthDate: date(1980, 7, 1)},
	}

	sortContacts(data, config.ColIDContactDate, true)
	assert.Equal(t, []string{"Old", "twin a", "Twin B", "Young"}, names(data))

	sortContacts(data, config.ColIDContactDate, false)
	assert.Equal(t, []string{"Young", "Twin B", "twin a", "Old"}, names(data))
}

// -----------------------------------------------------------------------------
// Input Parsing
// -----------------------------------------------------------------------------

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"15", 15, true},
		{" 12.5 ", 12.5, true},
		{"12,5", 12.5, true},
		{"-3", -3, true},
		{"", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseDecimal(tt.in)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatDecimal(t *testing.T) {
	assert.Equal(t, "100", formatDecimal(100))
	assert.Equal(t, "12.5", formatDecimal(12.5))
}

// -----------------------------------------------------------------------------
// Export Directory Resolution
// -----------------------------------------------------------------------------

// TestExportDir_Precedence checks preference > profile > home.
func TestExportDir_Precedence(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	app := &LifeCalcApp{
		App:         a,
		Preferences: a.Preferences(),
		profile:     config.DefaultProfile(),
	}

	app.profile.ExportDir = "/from/profile"
	assert.Equal(t, "/from/profile", app.exportDir())

	app.Preferences.SetString(config.PrefExportDir, "/from/settings")
	assert.Equal(t, "/from/settings", app.exportDir())

	app.Preferences.SetString(config.PrefExportDir, "")
	app.profile.ExportDir = ""
	assert.NotEmpty(t, app.exportDir())
}

// TestFormatInt_Grouping checks digit grouping follows the language preference.
func TestFormatInt_Grouping(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	app := &LifeCalcApp{App: a, Preferences: a.Preferences()}
	app.Preferences.SetString(config.PrefLanguage, "en")

	assert.Equal(t, "1,324", app.formatInt(1324))
	assert.Equal(t, "-9,687", app.formatInt(-9687))
	assert.Equal(t, "0", app.formatInt(0))
}
