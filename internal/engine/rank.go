package engine

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/tartampluch/go-lifecalc/internal/config"
)

// RankInput describes one score against a normally distributed population.
type RankInput struct {
	Score      float64
	Mean       float64
	StdDev     float64
	Population int
}

// RankResult is the outcome of ComputeRank.
type RankResult struct {
	ZScore float64

	// PercentileUpper is the standard normal CDF at ZScore, i.e. the share of the
	// population scoring at or below Score (not the share above it).
	PercentileUpper float64

	// EstimatedRank is 1 for the best score and never exceeds Population.
	EstimatedRank int
}

// Validate rejects inputs that would divide by a non-positive spread or rank an empty population.
func (in RankInput) Validate() error {
	for _, v := range []float64{in.Score, in.Mean, in.StdDev} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s", ErrInvalidInput, config.ErrNotFinite)
		}
	}
	if in.StdDev <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInput, config.ErrStdDevPositive)
	}
	if in.Population < 1 {
		return fmt.Errorf("%w: %s", ErrInvalidInput, config.ErrPopulationMin)
	}
	return nil
}

// ComputeRank estimates where Score falls in the population, assuming a normal distribution.
func ComputeRank(in RankInput) (RankResult, error) {
	if err := in.Validate(); err != nil {
		slog.Debug(config.MsgRankRejected,
			config.LogKeyComponent, config.CompEngine,
			config.LogKeyError, err)
		return RankResult{}, err
	}

	z := (in.Score - in.Mean) / in.StdDev
	cdf := NormalCDF(z)

	raw := math.Ceil((1 - cdf) * float64(in.Population))
	rank := clampRank(raw, in.Population)

	slog.Debug(config.MsgRankDone,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyZScore, z,
		config.LogKeyPercent, cdf,
		config.LogKeyRank, rank,
		config.LogKeyClamped, float64(rank) != raw)

	return RankResult{
		ZScore:          z,
		PercentileUpper: cdf,
		EstimatedRank:   rank,
	}, nil
}

// NormalCDF evaluates the standard normal cumulative distribution function.
func NormalCDF(z float64) float64 {
	return 0.5 * (1 + math.Erf(z/math.Sqrt2))
}

// clampRank bounds the ceiling result to [1, population].
func clampRank(raw float64, population int) int {
	if raw < 1 {
		return 1
	}
	if raw > float64(population) {
		return population
	}
	return int(raw)
}
