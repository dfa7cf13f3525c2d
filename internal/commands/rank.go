package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/tartampluch/go-lifecalc/internal/config"
	"github.com/tartampluch/go-lifecalc/internal/engine"
	"github.com/tartampluch/go-lifecalc/internal/export"
	"github.com/urfave/cli/v2"
)

// RankCommand prints the rank estimate for a score and exports it.
var RankCommand = &cli.Command{
	Name:   config.CmdRank,
	Usage:  config.CmdUsageRank,
	Action: runRank,
	Flags: []cli.Flag{
		&cli.Float64Flag{
			Name:  config.FlagScore,
			Usage: config.FlagDescScore,
			Value: config.DefaultScore,
		},
		&cli.Float64Flag{
			Name:  config.FlagMean,
			Usage: config.FlagDescMean,
			Value: config.DefaultMean,
		},
		&cli.Float64Flag{
			Name:  config.FlagStdDev,
			Usage: config.FlagDescStdDev,
			Value: config.DefaultStdDev,
		},
		&cli.IntFlag{
			Name:  config.FlagPopulation,
			Usage: config.FlagDescPopulation,
			Value: config.DefaultPopulation,
		},
		&cli.StringFlag{
			Name:  config.FlagFormat,
			Usage: config.FlagDescFormat,
			Value: config.FormatText,
		},
		profileFlag(),
		outFlag(),
	},
}

func runRank(c *cli.Context) error {
	p, err := loadProfile(c)
	if err != nil {
		return fail(err)
	}

	in := rankInput(c, p)
	res, err := engine.ComputeRank(in)
	if err != nil {
		slog.Warn(config.MsgRankRejected,
			config.LogKeyComponent, config.CompCLI,
			config.LogKeyError, err)
		return fail(err)
	}

	slog.Info(config.MsgRankDone,
		config.LogKeyComponent, config.CompCLI,
		config.LogKeyRank, res.EstimatedRank)

	w := c.App.Writer
	switch format := c.String(config.FlagFormat); format {
	case config.FormatText, config.FormatTable:
		err = printRank(w, in, res)
	case config.FormatJSON:
		err = export.WriteJSON(w, export.RankToJSON(in, res))
	default:
		return fail(fmt.Errorf("%s: %q", config.ErrUnknownFormat, format))
	}
	if err != nil {
		return err
	}

	if err := export.SaveFile(outputPath(c, p, config.FileRankXLSX), func(w io.Writer) error {
		return export.WriteRank(w, in, res, nil)
	}); err != nil {
		return fail(err)
	}
	return nil
}

// rankInput takes explicit flags first, then the profile defaults.
func rankInput(c *cli.Context, p *config.Profile) engine.RankInput {
	in := engine.RankInput{
		Score:      p.Rank.Score,
		Mean:       p.Rank.Mean,
		StdDev:     p.Rank.StdDev,
		Population: p.Rank.Population,
	}
	if c.IsSet(config.FlagScore) {
		in.Score = c.Float64(config.FlagScore)
	}
	if c.IsSet(config.FlagMean) {
		in.Mean = c.Float64(config.FlagMean)
	}
	if c.IsSet(config.FlagStdDev) {
		in.StdDev = c.Float64(config.FlagStdDev)
	}
	if c.IsSet(config.FlagPopulation) {
		in.Population = c.Int(config.FlagPopulation)
	}
	return in
}

// printRank writes the key/value result lines.
func printRank(w io.Writer, in engine.RankInput, res engine.RankResult) error {
	p := printer()
	_, err := fmt.Fprintf(w, config.OutRankResult,
		res.ZScore,
		res.PercentileUpper*100,
		p.Sprintf("%d", res.EstimatedRank),
		p.Sprintf("%d", in.Population),
	)
	return err
}
