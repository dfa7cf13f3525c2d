package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-lifecalc/internal/commands"
	"github.com/tartampluch/go-lifecalc/internal/config"
	"github.com/tartampluch/go-lifecalc/internal/engine"
	"github.com/urfave/cli/v2"
)

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

// run executes args against a fresh app and captures stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	prev := commands.Clock
	commands.Clock = MockClock{CurrentTime: time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)}
	t.Cleanup(func() { commands.Clock = prev })

	var out bytes.Buffer
	app := &cli.App{
		Name:           "test",
		Commands:       commands.Commands(),
		Writer:         &out,
		ErrWriter:      &out,
		ExitErrHandler: func(*cli.Context, error) {},
	}

	err := app.Run(append([]string{"test"}, args...))
	return out.String(), err
}

// -----------------------------------------------------------------------------
// milestones
// -----------------------------------------------------------------------------

func TestMilestones_TableAndExport(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, config.FileMilestonesXLSX)

	stdout, err := run(t, "milestones", "--birth", "2000-01-01", "--out", out, "--ics")
	require.NoError(t, err)

	assert.Contains(t, stdout, "2000-04-10")
	assert.Contains(t, stdout, "Monday")
	assert.Contains(t, stdout, "-9,687", "days remaining uses digit grouping")
	assert.Contains(t, stdout, "Next: 10,000 days since birth in 213 days")

	assert.FileExists(t, out)
	assert.FileExists(t, filepath.Join(dir, "life_special_days.ics"))
}

func TestMilestones_ExplicitToday(t *testing.T) {
	out := filepath.Join(t.TempDir(), "m.xlsx")

	stdout, err := run(t, "milestones", "--birth", "2000-01-01", "--today", "2000-01-01", "--out", out)
	require.NoError(t, err)

	lines := strings.Split(stdout, "\n")
	require.Greater(t, len(lines), 1)
	assert.Contains(t, lines[1], "100 days since birth")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(lines[1]), "100"))
}

func TestMilestones_JSON(t *testing.T) {
	out := filepath.Join(t.TempDir(), "m.xlsx")

	stdout, err := run(t, "milestones", "--birth", "2000-01-01", "--format", "json", "--out", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, `"id": "days_100"`)
	assert.Contains(t, stdout, `"date": "2000-04-10"`)
}

func TestMilestones_ProfileTable(t *testing.T) {
	dir := t.TempDir()
	profile := filepath.Join(dir, "profile.yaml")
	require.NoError(t, os.WriteFile(profile, []byte(`
birth_date: "1990-06-15"
export_dir: "`+dir+`"
milestones:
  - id: five_k
    label: "Five thousand"
    offset_days: 5000
`), 0o600))

	stdout, err := run(t, "milestones", "--profile", profile)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Five thousand")
	assert.NotContains(t, stdout, "Hwangap", "a profile table replaces the defaults")
	assert.FileExists(t, filepath.Join(dir, config.FileMilestonesXLSX))
}

func TestMilestones_CalendarPathFollowsOut(t *testing.T) {
	tests := []struct {
		out  string
		want string
	}{
		{"days.xlsx", "days.ics"},
		{"result.XLSX", "result.ics"},
		{"out.dat", "out.ics"},
		{"noext", "noext.ics"},
	}

	for _, tt := range tests {
		t.Run(tt.out, func(t *testing.T) {
			dir := t.TempDir()
			_, err := run(t, "milestones", "--birth", "2000-01-01", "--ics", "--out", filepath.Join(dir, tt.out))
			require.NoError(t, err)

			assert.FileExists(t, filepath.Join(dir, tt.out))
			assert.FileExists(t, filepath.Join(dir, tt.want))
		})
	}
}

func TestRank_ProfileExportDirUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.Mkdir(filepath.Join(home, "Documents"), 0o755))

	profile := filepath.Join(t.TempDir(), "p.yaml")
	require.NoError(t, os.WriteFile(profile, []byte("export_dir: ~/Documents\n"), 0o600))

	_, err := run(t, "rank", "--profile", profile)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(home, "Documents", config.FileRankXLSX))
}

func TestMilestones_InvalidDate(t *testing.T) {
	_, err := run(t, "milestones", "--birth", "1990-13-45", "--out", filepath.Join(t.TempDir(), "x.xlsx"))
	require.Error(t, err)

	exitErr, ok := err.(cli.ExitCoder)
	require.True(t, ok, "validation errors carry an exit code")
	assert.Equal(t, config.ExitCodeError, exitErr.ExitCode())
	assert.Contains(t, err.Error(), engine.ErrInvalidDate.Error())
	assert.True(t, strings.HasPrefix(err.Error(), "Error: "), err.Error())
}

func TestMilestones_UnknownFormat(t *testing.T) {
	_, err := run(t, "milestones", "--birth", "2000-01-01", "--format", "xml", "--out", filepath.Join(t.TempDir(), "x.xlsx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrUnknownFormat)
}

// -----------------------------------------------------------------------------
// rank
// -----------------------------------------------------------------------------

func TestRank_TextAndExport(t *testing.T) {
	out := filepath.Join(t.TempDir(), config.FileRankXLSX)

	stdout, err := run(t, "rank", "--score=130", "--mean=100", "--std-dev=15", "--population=100", "--out", out)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Z score: 2.000")
	assert.Contains(t, stdout, "Percentile (at or below): 97.72%")
	assert.Contains(t, stdout, "Estimated rank: 3 / 100")
	assert.FileExists(t, out)
}

func TestRank_Defaults(t *testing.T) {
	out := filepath.Join(t.TempDir(), config.FileRankXLSX)

	stdout, err := run(t, "rank", "--out", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Z score: 0.000")
	assert.Contains(t, stdout, "Estimated rank: 50 / 100")
}

func TestRank_ProfileDefaultsAndOverride(t *testing.T) {
	dir := t.TempDir()
	profile := filepath.Join(dir, "p.yaml")
	require.NoError(t, os.WriteFile(profile, []byte("rank:\n  mean: 50\n  std_dev: 10\n  population: 2000\n"), 0o600))

	stdout, err := run(t, "rank", "--profile", profile, "--score=70", "--out", filepath.Join(dir, "r.xlsx"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "Z score: 2.000")
	assert.Contains(t, stdout, "/ 2,000")
}

func TestRank_JSON(t *testing.T) {
	stdout, err := run(t, "rank", "--format", "json", "--out", filepath.Join(t.TempDir(), "r.xlsx"))
	require.NoError(t, err)
	assert.Contains(t, stdout, `"estimated_rank": 50`)
}

func TestRank_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"Zero std dev", []string{"--std-dev=0"}, config.ErrStdDevPositive},
		{"Negative std dev", []string{"--std-dev=-1"}, config.ErrStdDevPositive},
		{"Zero population", []string{"--population=0"}, config.ErrPopulationMin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), config.FileRankXLSX)
			args := append([]string{"rank", "--out", out}, tt.args...)

			_, err := run(t, args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
			assert.NoFileExists(t, out, "no export may be produced for rejected input")
		})
	}
}
