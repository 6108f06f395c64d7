package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"gobblet/communication/client"
	"gobblet/communication/server"
	"gobblet/display"
	"gobblet/engine"
	"gobblet/gamemaster"
	"gobblet/meta"
	"gobblet/player"
)

func main() {
	// A missing .env is fine, the flags and the environment still apply.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "could not load .env: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand().Run(ctx, os.Args); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("gobblet failed")
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:      "gobblet",
		Usage:     "Play Gobblet against the match server",
		ArgsUsage: "IDUL",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "url",
				Value:   meta.DEFAULT_URL,
				Usage:   "base URL of the match server",
				Sources: cli.EnvVars(meta.ENV_URL),
			},
			&cli.StringFlag{
				Name:    "secret",
				Usage:   "secret paired with your IDUL",
				Sources: cli.EnvVars(meta.ENV_SECRET),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "log requests and refused moves",
				Sources: cli.EnvVars(meta.ENV_DEBUG),
			},
			&cli.BoolFlag{
				Name:    "lister",
				Aliases: []string{"l"},
				Usage:   "list your matches instead of starting one",
			},
		},
		Before: setupLogging,
		Action: play,
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Run a local match server accepting --secret",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "addr",
						Value:   meta.DEFAULT_ADDR,
						Usage:   "address to listen on",
						Sources: cli.EnvVars(meta.ENV_ADDR),
					},
				},
				Action: serve,
			},
		},
	}
}

func setupLogging(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cmd.Bool("debug") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	return ctx, nil
}

func play(ctx context.Context, cmd *cli.Command) error {
	idul := cmd.Args().First()
	if idul == "" {
		return errors.New("an IDUL is required")
	}
	comm := client.NewClientCommunicator(cmd.String("url"), idul, cmd.String("secret"))

	if cmd.Bool("lister") {
		games, err := comm.ListGames(ctx)
		if err != nil {
			return err
		}
		fmt.Print(display.FormatGames(games))
		return nil
	}

	e := engine.NewEngine(comm, player.NewPrompter(os.Stdin, os.Stdout), os.Stdout)
	return e.Run(ctx)
}

func serve(ctx context.Context, cmd *cli.Command) error {
	secret := cmd.String("secret")
	if secret == "" {
		return errors.Errorf("serve needs --secret or %s", meta.ENV_SECRET)
	}
	sc := server.NewServerCommunicator(gamemaster.NewMaster(), secret)
	return sc.Start(ctx, cmd.String("addr"))
}
