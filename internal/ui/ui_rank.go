package ui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-lifecalc/internal/config"
	"github.com/tartampluch/go-lifecalc/internal/engine"
	"github.com/tartampluch/go-lifecalc/internal/export"
)

// rankTab is the rank calculator page. Results follow the inputs as they are typed.
type rankTab struct {
	app *LifeCalcApp
	win fyne.Window

	scoreEntry *NumericalEntry
	meanEntry  *NumericalEntry
	stdEntry   *NumericalEntry
	popEntry   *NumericalEntry

	zLabel     *widget.Label
	pctLabel   *widget.Label
	rankLabel  *widget.Label
	errorLabel *widget.Label

	input  engine.RankInput
	result engine.RankResult
	valid  bool

	content fyne.CanvasObject
}

func (app *LifeCalcApp) newRankTab(w fyne.Window) *rankTab {
	t := &rankTab{app: app, win: w}
	defaults := app.Profile().Rank

	t.scoreEntry = NewDecimalEntry()
	t.meanEntry = NewDecimalEntry()
	t.stdEntry = NewDecimalEntry()
	t.stdEntry.AllowNegative = false
	t.popEntry = NewNumericalEntry()
	t.setInputs(defaults)

	numberValidator := func(s string) error {
		if _, err := parseDecimal(s); err != nil {
			return errors.New(app.GetMsg(config.TKeyErrNumber))
		}
		return nil
	}
	t.scoreEntry.Validator = numberValidator
	t.meanEntry.Validator = numberValidator
	t.stdEntry.Validator = func(s string) error {
		v, err := parseDecimal(s)
		if err != nil {
			return errors.New(app.GetMsg(config.TKeyErrNumber))
		}
		if v < config.MinStdDevUI {
			return errors.New(app.GetMsg(config.TKeyErrStdDev))
		}
		return nil
	}
	t.popEntry.Validator = func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return errors.New(app.GetMsg(config.TKeyErrNumber))
		}
		if n < 1 {
			return errors.New(app.GetMsg(config.TKeyErrPopulation))
		}
		return nil
	}

	onChanged := func(string) { _ = t.calculate() }
	for _, e := range []*NumericalEntry{t.scoreEntry, t.meanEntry, t.stdEntry, t.popEntry} {
		e.OnChanged = onChanged
	}

	t.zLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	t.pctLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	t.rankLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	t.errorLabel = widget.NewLabel("")
	t.errorLabel.Importance = widget.DangerImportance

	intro := widget.NewLabel(app.GetMsg(config.TKeyLblRankIntro))
	intro.Wrapping = fyne.TextWrapWord

	form := widget.NewForm(
		widget.NewFormItem(app.GetMsg(config.TKeyLblScore), t.scoreEntry),
		widget.NewFormItem(app.GetMsg(config.TKeyLblMean), t.meanEntry),
		widget.NewFormItem(app.GetMsg(config.TKeyLblStdDev), t.stdEntry),
		widget.NewFormItem(app.GetMsg(config.TKeyLblPopulation), t.popEntry),
	)

	btnXLSX := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnExportXLSX), theme.DownloadIcon(), func() { _, _ = t.exportXLSX() })

	t.content = container.NewVBox(
		intro,
		form,
		widget.NewSeparator(),
		t.zLabel,
		t.pctLabel,
		t.rankLabel,
		t.errorLabel,
		btnXLSX,
	)

	_ = t.calculate()
	return t
}

// setInputs fills the entries from profile defaults.
func (t *rankTab) setInputs(d config.RankDefaults) {
	t.scoreEntry.SetText(formatDecimal(d.Score))
	t.meanEntry.SetText(formatDecimal(d.Mean))
	t.stdEntry.SetText(formatDecimal(d.StdDev))
	t.popEntry.SetText(strconv.Itoa(d.Population))
}

// entryTexts returns the raw entry contents: score, mean, std dev, population.
func (t *rankTab) entryTexts() [4]string {
	return [4]string{t.scoreEntry.Text, t.meanEntry.Text, t.stdEntry.Text, t.popEntry.Text}
}

func (t *rankTab) setEntryTexts(texts [4]string) {
	for i, e := range []*NumericalEntry{t.scoreEntry, t.meanEntry, t.stdEntry, t.popEntry} {
		e.SetText(texts[i])
	}
}

// calculate validates every entry and refreshes the result lines.
// On invalid input the previous results are cleared and the first problem is shown.
func (t *rankTab) calculate() error {
	app := t.app

	for _, e := range []*NumericalEntry{t.scoreEntry, t.meanEntry, t.stdEntry, t.popEntry} {
		if err := e.Validate(); err != nil {
			t.reject(err)
			return err
		}
	}

	score, _ := parseDecimal(t.scoreEntry.Text)
	mean, _ := parseDecimal(t.meanEntry.Text)
	std, _ := parseDecimal(t.stdEntry.Text)
	pop, _ := strconv.Atoi(strings.TrimSpace(t.popEntry.Text))

	in := engine.RankInput{Score: score, Mean: mean, StdDev: std, Population: pop}
	res, err := engine.ComputeRank(in)
	if err != nil {
		t.reject(errors.New(app.GetMsg(config.TKeyErrNumber)))
		return err
	}

	t.input, t.result, t.valid = in, res, true

	t.zLabel.SetText(app.GetMsgData(config.TKeyLblZScore, map[string]interface{}{
		"Value": fmt.Sprintf("%.3f", res.ZScore),
	}))
	t.pctLabel.SetText(app.GetMsgData(config.TKeyLblPercentile, map[string]interface{}{
		"Value": fmt.Sprintf("%.2f", res.PercentileUpper*100),
	}))
	t.rankLabel.SetText(app.GetMsgData(config.TKeyLblRank, map[string]interface{}{
		"Rank":       app.formatInt(res.EstimatedRank),
		"Population": app.formatInt(in.Population),
	}))
	t.errorLabel.SetText("")
	return nil
}

func (t *rankTab) reject(err error) {
	slog.Debug(config.MsgRankRejected,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyError, err)

	t.valid = false
	t.zLabel.SetText("")
	t.pctLabel.SetText("")
	t.rankLabel.SetText("")
	t.errorLabel.SetText(err.Error())
}

// exportXLSX writes rank_result.xlsx for the current valid result.
func (t *rankTab) exportXLSX() (string, error) {
	if !t.valid {
		if err := t.calculate(); err != nil {
			return "", err
		}
	}
	in, res := t.input, t.result
	headers := t.app.rankHeaders()
	return t.app.saveExport(t.win, config.FileRankXLSX, func(w io.Writer) error {
		return export.WriteRank(w, in, res, headers)
	})
}

// parseDecimal accepts "12.5" as well as the comma decimal separator "12,5".
func parseDecimal(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	return strconv.ParseFloat(s, 64)
}

func formatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
