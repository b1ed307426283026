package main

import (
	"os"

	"github.com/minotor-team/socialsim/social"
	"github.com/minotor-team/socialsim/social/impl"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"
)

func main() {
	app := &cli.App{
		Name:  "socialsim",
		Usage: "in-memory social network simulation",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "platform",
				Value:   "MinoTor",
				Usage:   "name of the social network",
				EnvVars: []string{"SOCIALSIM_PLATFORM"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "zerolog level (debug, info, warn, error)",
				EnvVars: []string{"SOCIALSIM_LOG_LEVEL"},
			},
			&cli.BoolFlag{
				Name:    "legacy-signup",
				Usage:   "accept any password and duplicate usernames",
				EnvVars: []string{"SOCIALSIM_LEGACY_SIGNUP"},
			},
			&cli.UintFlag{
				Name:    "min-password",
				Value:   4,
				Usage:   "minimum password length",
				EnvVars: []string{"SOCIALSIM_MIN_PASSWORD"},
			},
			&cli.UintFlag{
				Name:    "max-password",
				Value:   8,
				Usage:   "maximum password length",
				EnvVars: []string{"SOCIALSIM_MAX_PASSWORD"},
			},
			&cli.BoolFlag{
				Name:    "decode-images",
				Usage:   "read image posts as files when displaying them",
				EnvVars: []string{"SOCIALSIM_DECODE_IMAGES"},
			},
		},
		Before: setUpLogger,
		Commands: []*cli.Command{
			{
				Name:   "demo",
				Usage:  "run the scripted demo scenario",
				Action: demoAction,
			},
			{
				Name:  "simulate",
				Usage: "run rounds of publications among automated users",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "users", Value: 10, Usage: "number of users"},
					&cli.Int64Flag{Name: "seed", Value: 1, Usage: "random seed"},
					&cli.Float64Flag{Name: "follow-probability", Value: 0.3, Usage: "probability that a user follows another"},
					&cli.IntFlag{Name: "rounds", Value: 3, Usage: "number of publication rounds"},
				},
				Action: simulateAction,
			},
			{
				Name:   "shell",
				Usage:  "interact with the network from the terminal",
				Action: shellAction,
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Msg("socialsim failed")
	}
}

func setUpLogger(c *cli.Context) error {
	level, err := zerolog.ParseLevel(c.String("log-level"))
	if err != nil {
		return xerrors.Errorf("invalid log level: %v", err)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	return nil
}

// newNetwork creates the network of the run from the global flags.
func newNetwork(c *cli.Context) *impl.Network {
	conf := social.NewConfiguration(c.String("platform"))
	conf.ValidateSignUp = !c.Bool("legacy-signup")
	conf.MinPasswordLength = c.Uint("min-password")
	conf.MaxPasswordLength = c.Uint("max-password")
	if c.Bool("decode-images") {
		conf.ImageDisplayer = impl.NewFileImageDisplayer()
	}
	return impl.NewNetwork(conf)
}
