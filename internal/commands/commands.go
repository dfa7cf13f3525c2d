// Package commands holds the headless command-line surface. Each command
// computes once, prints the result and writes the same export files the GUI offers.
package commands

import (
	"fmt"
	"path/filepath"

	"github.com/tartampluch/go-lifecalc/internal/config"
	"github.com/urfave/cli/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Commands lists every subcommand, for registration on the root app.
func Commands() []*cli.Command {
	return []*cli.Command{
		MilestonesCommand,
		RankCommand,
	}
}

func profileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  config.FlagProfile,
		Usage: config.FlagDescProfile,
	}
}

func outFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  config.FlagOut,
		Usage: config.FlagDescOut,
	}
}

// loadProfile returns the profile named by --profile, or the defaults.
func loadProfile(c *cli.Context) (*config.Profile, error) {
	path := c.String(config.FlagProfile)
	if path == "" {
		return config.DefaultProfile(), nil
	}
	return config.LoadProfile(path)
}

// outputPath resolves --out, falling back to the fixed file name inside the profile's export dir.
func outputPath(c *cli.Context, p *config.Profile, fixedName string) string {
	if out := c.String(config.FlagOut); out != "" {
		return out
	}
	return filepath.Join(p.ExportDir, fixedName)
}

// printer groups digits the way the English labels expect ("1,324").
func printer() *message.Printer {
	return message.NewPrinter(language.English)
}

// fail reports a validation problem as a message with the error exit code.
func fail(err error) error {
	return cli.Exit(fmt.Sprintf(config.OutError, err), config.ExitCodeError)
}
