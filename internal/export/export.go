// Package export serialises computed milestones and rank results into
// spreadsheets, iCalendar files and JSON.
//
// Writers take an io.Writer so the same code serves file paths, Fyne save
// dialogs and in-memory buffers in tests. Every failure is reported as
// ErrExportFailed wrapping the cause.
package export

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tartampluch/go-lifecalc/internal/config"
)

// ErrExportFailed is the generic condition surfaced to users when a file cannot be produced.
var ErrExportFailed = errors.New(config.ErrExportFailed)

// WriterFunc renders one export into w.
type WriterFunc func(w io.Writer) error

// SaveFile creates (or truncates) path, renders into it and closes it, whatever the outcome.
func SaveFile(path string, write WriterFunc) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, config.FilePermExport)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrExportFailed, config.ErrCreateFile, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrExportFailed, cerr)
		}
	}()

	if err := write(f); err != nil {
		slog.Error(config.MsgExportFailed,
			config.LogKeyComponent, config.CompExport,
			config.LogKeyPath, path,
			config.LogKeyError, err)
		return err
	}

	slog.Info(config.MsgExportDone,
		config.LogKeyComponent, config.CompExport,
		config.LogKeyPath, path)
	return nil
}

func wrap(msg string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrExportFailed, msg, err)
}
