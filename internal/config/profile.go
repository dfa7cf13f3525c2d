package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Profile is an optional user-authored YAML file supplying calculation defaults
// and, when Milestones is non-empty, a replacement milestone table.
type Profile struct {
	// BirthDate pre-fills the milestone page (YYYY-MM-DD).
	BirthDate string `yaml:"birth_date"`

	// Rank holds the defaults shown on the rank page.
	Rank RankDefaults `yaml:"rank"`

	// Milestones replaces the built-in table, in display order.
	Milestones []ProfileMilestone `yaml:"milestones"`

	// ExportDir is where spreadsheets are written when no dialog is involved.
	ExportDir string `yaml:"export_dir"`
}

// RankDefaults mirrors the rank page inputs.
type RankDefaults struct {
	Score      float64 `yaml:"score"`
	Mean       float64 `yaml:"mean"`
	StdDev     float64 `yaml:"std_dev"`
	Population int     `yaml:"population"`
}

// ProfileMilestone is one row of a custom milestone table.
type ProfileMilestone struct {
	ID          string `yaml:"id"`
	Label       string `yaml:"label"`
	OffsetDays  int    `yaml:"offset_days"`
	Years       int    `yaml:"years"` // Shorthand for OffsetDays = Years * DaysPerYear
	Description string `yaml:"description"`
}

// Offset resolves the effective day offset of the entry.
func (m ProfileMilestone) Offset() int {
	if m.OffsetDays == 0 && m.Years != 0 {
		return m.Years * DaysPerYear
	}
	return m.OffsetDays
}

// LoadProfile reads and parses the YAML profile at path.
// Missing optional fields are filled with the application defaults.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrProfileRead, err)
	}
	return ParseProfile(data)
}

// ParseProfile decodes and validates profile content.
func ParseProfile(data []byte) (*Profile, error) {
	p := defaultProfile()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrProfileParse, err)
	}

	if err := validateProfile(p); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrProfileInvalid, err)
	}

	dir, err := ExpandHome(p.ExportDir)
	if err != nil {
		return nil, err
	}
	p.ExportDir = dir

	return p, nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
// Other paths, including "~user" forms, are returned unchanged.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrHomeDir, err)
	}
	return filepath.Join(home, path[1:]), nil
}

// DefaultProfile returns the profile used when no file is configured.
func DefaultProfile() *Profile {
	return defaultProfile()
}

func defaultProfile() *Profile {
	return &Profile{
		BirthDate: DefaultBirthDate,
		Rank: RankDefaults{
			Score:      DefaultScore,
			Mean:       DefaultMean,
			StdDev:     DefaultStdDev,
			Population: DefaultPopulation,
		},
	}
}

// validateProfile checks structural constraints that would otherwise only fail at compute time.
func validateProfile(p *Profile) error {
	if p.BirthDate != "" {
		if _, err := time.Parse(DateFormatFullDash, p.BirthDate); err != nil {
			return fmt.Errorf("birth_date %q: %w", p.BirthDate, err)
		}
	}

	r := p.Rank
	if math.IsNaN(r.StdDev) || r.StdDev <= 0 {
		return errors.New("rank.std_dev: " + ErrStdDevPositive)
	}
	if r.Population < 1 {
		return errors.New("rank.population: " + ErrPopulationMin)
	}

	seen := make(map[string]bool, len(p.Milestones))
	for i, m := range p.Milestones {
		if m.Label == "" {
			return fmt.Errorf("milestones[%d]: label is required", i)
		}
		if m.OffsetDays < 0 || m.Years < 0 {
			return fmt.Errorf("milestones[%d] %q: %s", i, m.Label, ErrOffsetNegative)
		}
		if m.ID == "" {
			continue
		}
		if seen[m.ID] {
			return fmt.Errorf("milestones[%d]: duplicate id %q", i, m.ID)
		}
		seen[m.ID] = true
	}
	return nil
}
