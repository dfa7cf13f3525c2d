package ui

import (
	"strings"

	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// NumericalEntry is a custom Entry widget that only accepts numeric input.
// It embeds widget.Entry to inherit all standard behavior.
type NumericalEntry struct {
	widget.Entry

	// AllowDecimal accepts a single '.' separator (scores, std dev).
	AllowDecimal bool
	// AllowNegative accepts a leading '-' (scores and means may be negative).
	AllowNegative bool
}

// NewNumericalEntry creates a digits-only entry, as used for the population size.
func NewNumericalEntry() *NumericalEntry {
	entry := &NumericalEntry{}
	entry.ExtendBaseWidget(entry)
	return entry
}

// NewDecimalEntry creates an entry accepting signed decimal numbers.
func NewDecimalEntry() *NumericalEntry {
	entry := &NumericalEntry{AllowDecimal: true, AllowNegative: true}
	entry.ExtendBaseWidget(entry)
	return entry
}

// TypedRune intercepts text input events.
// It filters characters to allow only digits and, when enabled, one '.' and a leading '-'.
func (e *NumericalEntry) TypedRune(r rune) {
	switch {
	case r >= '0' && r <= '9':
		e.Entry.TypedRune(r)
	case r == '.' && e.AllowDecimal && !strings.ContainsRune(e.Text, '.'):
		e.Entry.TypedRune(r)
	case r == '-' && e.AllowNegative && !strings.Contains(e.Text, "-") && (e.Text == "" || e.CursorColumn == 0):
		e.Entry.TypedRune(r)
	}
	// Pasted text bypasses this filter; the Validator handles that case.
}

// Keyboard overrides the default keyboard type.
// This ensures that on mobile devices, a numeric keypad is shown.
func (e *NumericalEntry) Keyboard() mobile.KeyboardType {
	if e.AllowDecimal {
		return mobile.DefaultKeyboard
	}
	return mobile.NumberKeyboard
}
