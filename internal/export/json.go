package export

import (
	"io"

	json "github.com/goccy/go-json"
	"github.com/tartampluch/go-lifecalc/internal/config"
	"github.com/tartampluch/go-lifecalc/internal/engine"
)

// MilestoneJSON is the wire shape of one milestone record.
type MilestoneJSON struct {
	ID            string `json:"id,omitempty"`
	Label         string `json:"label"`
	Description   string `json:"description"`
	Date          string `json:"date"`
	Weekday       string `json:"weekday"`
	DaysRemaining int    `json:"days_remaining"`
}

// RankJSON is the wire shape of a rank computation, inputs included.
type RankJSON struct {
	Score         float64 `json:"score"`
	Mean          float64 `json:"mean"`
	StdDev        float64 `json:"std_dev"`
	Population    int     `json:"population"`
	ZScore        float64 `json:"z_score"`
	Percentile    float64 `json:"percentile"`
	EstimatedRank int     `json:"estimated_rank"`
}

// MilestonesToJSON converts records to their wire shape, keeping order.
func MilestonesToJSON(records []engine.MilestoneRecord) []MilestoneJSON {
	out := make([]MilestoneJSON, 0, len(records))
	for _, r := range records {
		out = append(out, MilestoneJSON{
			ID:            r.Spec.ID,
			Label:         r.Label,
			Description:   r.Description,
			Date:          r.Date.Format(config.DateFormatFullDash),
			Weekday:       r.WeekdayName,
			DaysRemaining: r.DaysRemaining,
		})
	}
	return out
}

// RankToJSON converts a rank computation to its wire shape.
func RankToJSON(in engine.RankInput, res engine.RankResult) RankJSON {
	return RankJSON{
		Score:         in.Score,
		Mean:          in.Mean,
		StdDev:        in.StdDev,
		Population:    in.Population,
		ZScore:        res.ZScore,
		Percentile:    res.PercentileUpper,
		EstimatedRank: res.EstimatedRank,
	}
}

// WriteJSON encodes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return wrap(config.ErrJSONEncode, err)
	}
	return nil
}
