package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/18thday/logchain/chain"
	"github.com/18thday/logchain/config"
	"github.com/18thday/logchain/core"
)

const version = "1.0.0"

func main() {
	if err := run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string) error {
	app := &cli.Command{
		Name:  "logchain",
		Usage: "Dispatch log messages through a severity handler chain",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Value: "", Usage: "config file path (.toml, .yaml)"},
		},
		Commands: []*cli.Command{
			{
				Name:  "version",
				Usage: "print version",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					fmt.Printf("logchain version %s\n", version)
					return nil
				},
			},
			{
				Name:  "demo",
				Usage: "Run the four demonstration scenarios through the default chain",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runDemo(cmd.String("config"))
				},
			},
			{
				Name:  "dispatch",
				Usage: "Dispatch a single message",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "kind", Aliases: []string{"k"}, Value: "warning", Usage: "classification (warning, error, fatal, unknown)"},
					&cli.StringFlag{Name: "message", Aliases: []string{"m"}, Value: "", Usage: "message text"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runDispatch(cmd.String("config"), cmd.String("kind"), cmd.String("message"))
				},
			},
		},
	}

	return app.Run(ctx, args)
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func buildChain(cfg config.Config) (*chain.Chain, error) {
	return chain.DefaultWithWriter(cfg.ErrorLog, cfg.DiagnosticsWriter(),
		chain.WithWriteErrorHook(func(err error) {
			log.Warn("error log write skipped", "err", err)
		}))
}

// runDemo replays the classic four-scenario sequence: an unknown
// message, a warning, a persisted error, and a fatal error.
func runDemo(configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	c, err := buildChain(cfg)
	if err != nil {
		return err
	}

	scenarios := []core.Message{
		core.NewMessage(core.Unknown, "some unknown message"),
		core.NewMessage(core.Warning, "real warning"),
		core.NewMessage(core.Error, "some_error"),
		core.NewMessage(core.FatalError, "fatal error"),
	}

	for _, msg := range scenarios {
		if err := c.Dispatch(msg); err != nil {
			fmt.Println(err)
		}
		if msg.Classification() == core.Error {
			data, readErr := os.ReadFile(cfg.ErrorLog)
			if readErr != nil {
				log.Warn("cannot read error log", "path", cfg.ErrorLog, "err", readErr)
				continue
			}
			fmt.Printf("error log contains: %s\n", strings.TrimSpace(string(data)))
		}
	}

	snap := c.Stats()
	log.Info("demo finished",
		"handled", snap.HandledTotal,
		"dropped", snap.DroppedTotal,
		"writeFailures", snap.WriteFailuresTotal)
	return nil
}

// runDispatch sends one message through the chain. Terminal signals
// are reported on stdout and distinguish the two kinds for scripting.
func runDispatch(configPath, kind, text string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	c, err := buildChain(cfg)
	if err != nil {
		return err
	}

	err = c.Dispatch(core.NewMessage(core.ParseClassification(kind), text))
	if err == nil {
		return nil
	}

	var fatal *chain.FatalError
	if errors.As(err, &fatal) {
		return cli.Exit(fmt.Sprintf("fatal: %s", fatal.Text), 1)
	}
	var unhandled *chain.UnhandledMessage
	if errors.As(err, &unhandled) {
		return cli.Exit(unhandled.Error(), 2)
	}
	return err
}
