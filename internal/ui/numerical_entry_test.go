package ui_test

import (
	"testing"

	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/test"
	"github.com/tartampluch/go-lifecalc/internal/ui"
)

func TestNumericalEntry_TypedRune(t *testing.T) {
	// Initialize the custom widget using Fyne's test infrastructure.
	entry := ui.NewNumericalEntry()
	window := test.NewWindow(entry)
	defer window.Close()

	tests := []struct {
		name     string
		input    rune
		accepted bool
	}{
		{"Digit_Zero", '0', true},
		{"Digit_Nine", '9', true},
		{"Digit_Five", '5', true},
		{"Letter_a", 'a', false},
		{"Letter_Z", 'Z', false},
		{"Symbol_Dash", '-', false},
		{"Symbol_Dot", '.', false},
		{"Symbol_Space", ' ', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear previous content
			entry.SetText("")

			// Simulate typing
			test.Type(entry, string(tt.input))

			got := entry.Text
			if tt.accepted {
				if got != string(tt.input) {
					t.Errorf("expected input %q to be accepted, got text %q", tt.input, got)
				}
			} else {
				if got != "" {
					t.Errorf("expected input %q to be rejected, got text %q", tt.input, got)
				}
			}
		})
	}
}

func TestDecimalEntry_TypedRune(t *testing.T) {
	entry := ui.NewDecimalEntry()
	window := test.NewWindow(entry)
	defer window.Close()

	tests := []struct {
		name  string
		typed string
		want  string
	}{
		{"Decimal", "12.5", "12.5"},
		{"Negative", "-3.25", "-3.25"},
		{"Second dot dropped", "1.2.3", "1.23"},
		{"Inner dash dropped", "4-2", "42"},
		{"Double dash dropped", "--7", "-7"},
		{"Letters dropped", "1e5", "15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry.SetText("")
			test.Type(entry, tt.typed)

			if entry.Text != tt.want {
				t.Errorf("typing %q: expected %q, got %q", tt.typed, tt.want, entry.Text)
			}
		})
	}
}

func TestNumericalEntry_Keyboard(t *testing.T) {
	entry := ui.NewNumericalEntry()

	// Verify it requests the Number keyboard on mobile devices
	if got := entry.Keyboard(); got != mobile.NumberKeyboard {
		t.Errorf("expected keyboard type %v, got %v", mobile.NumberKeyboard, got)
	}

	// A decimal entry needs the full keyboard for the separator.
	if got := ui.NewDecimalEntry().Keyboard(); got != mobile.DefaultKeyboard {
		t.Errorf("expected keyboard type %v, got %v", mobile.DefaultKeyboard, got)
	}
}

// TestNumericalEntry_DirectSetText documents that only keystrokes are filtered.
// Pasted or programmatic text is caught by the Validator attached in the rank tab.
func TestNumericalEntry_DirectSetText(t *testing.T) {
	entry := ui.NewNumericalEntry()

	// Direct setting bypasses TypedRune
	entry.SetText("abc")
	if entry.Text != "abc" {
		t.Error("SetText should allow arbitrary text (validation happens separately)")
	}
}
