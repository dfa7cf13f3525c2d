package contacts

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-lifecalc/internal/config"
	"github.com/tartampluch/go-lifecalc/internal/engine"
)

// Importer reads birth dates out of local vCard files.
type Importer struct{}

// NewImporter creates a new Importer.
func NewImporter() *Importer {
	return &Importer{}
}

// Load opens the vCard file at path and decodes every contact with a full birth date.
func (im *Importer) Load(ctx context.Context, path string) ([]Contact, error) {
	if path == "" {
		return nil, errors.New(config.ErrLocalPathEmpty)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrVCardOpen, err)
	}
	// Best effort close. Errors in Close() for read-only files are rarely actionable here.
	defer func() { _ = f.Close() }()

	return im.Decode(ctx, f)
}

// Decode parses a vCard stream. Malformed cards and unusable dates are skipped, not fatal.
// The result is sorted by name.
func (im *Importer) Decode(ctx context.Context, r io.Reader) ([]Contact, error) {
	start := time.Now()
	decoder := vcard.NewDecoder(r)

	stats := struct{ processed, withBday int }{0, 0}
	var contacts []Contact

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Log error but continue to next card to maximize data recovery
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompContacts,
				config.LogKeyError, err)
			continue
		}
		stats.processed++

		bday := card.Get(config.VCardBDAY)
		if bday == nil || bday.Value == "" {
			continue
		}

		if isYearless(bday.Value) {
			slog.Debug(config.MsgSkippedNoYear,
				config.LogKeyComponent, config.CompContacts,
				config.LogKeyValue, bday.Value)
			continue
		}

		birthDate, err := engine.ParseDate(bday.Value)
		if err != nil {
			slog.Debug(config.MsgSkippedDate,
				config.LogKeyComponent, config.CompContacts,
				config.LogKeyValue, bday.Value)
			continue
		}
		stats.withBday++

		name := cardName(card)
		contacts = append(contacts, Contact{
			UID:       contactUID(name, birthDate),
			Name:      name,
			BirthDate: birthDate,
		})
	}

	sort.SliceStable(contacts, func(i, j int) bool {
		return strings.ToLower(contacts[i].Name) < strings.ToLower(contacts[j].Name)
	})

	slog.Info(config.MsgImportDone,
		config.LogKeyComponent, config.CompContacts,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyTotal, stats.processed),
			slog.Int(config.LogKeyFound, stats.withBday),
		),
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)

	return contacts, nil
}

// cardName applies the name strategy: FN (Formatted) > N (Structured) > Fallback.
func cardName(card vcard.Card) string {
	if fn := card.Get(config.VCardFN); fn != nil && fn.Value != "" {
		return fn.Value
	}
	if n := card.Get(config.VCardN); n != nil && n.Value != "" {
		return n.Value
	}
	return config.FallbackName
}

// isYearless detects truncated vCard dates (--MM-DD, --MMDD), which cannot anchor a milestone.
func isYearless(value string) bool {
	for _, f := range []string{config.DateFormatNoYearD, config.DateFormatNoYearB} {
		if _, err := time.Parse(f, value); err == nil {
			return true
		}
	}
	return false
}

// contactUID derives a deterministic identifier so selections survive a re-import.
func contactUID(name string, birthDate time.Time) string {
	input := fmt.Sprintf(config.FormatHashInput, name, birthDate.Format(config.DateFormatFullDash), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf("%x", hash[:config.UIDHashLength])
}
