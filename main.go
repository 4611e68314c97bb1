package main

import (
	"context"
	"embed"
	"fmt"
	"os"
	"strings"

	"BreakTimer/config"
	"BreakTimer/i18n"
	"BreakTimer/logging"
	"BreakTimer/ui"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
)

const appID = "io.github.breaktimer"

//go:embed assets/*
var content embed.FS

// loadIcon returns the embedded application icon. Fyne also attaches it to
// desktop notifications.
func loadIcon() (fyne.Resource, error) {
	iconBytes, err := content.ReadFile("assets/icon.png")
	if err != nil {
		return nil, err
	}
	return fyne.NewStaticResource("icon.png", iconBytes), nil
}

func main() {
	if err := newRootCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   config.DefaultPath(),
	}
}

func newRootCommand() *cli.Command {
	return &cli.Command{
		Name:  "breaktimer",
		Usage: "Reminds you to take a break at a fixed interval",
		Flags: []cli.Flag{
			configFlag(),
			&cli.DurationFlag{
				Name:    "interval",
				Aliases: []string{"i"},
				Usage:   "Reminder interval, overrides timer.interval",
			},
			&cli.StringFlag{
				Name:  "lang",
				Usage: "Interface language (en, pt, es, ru)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
			},
			&cli.BoolFlag{
				Name:  "reset-permission",
				Usage: "Forget the stored notification permission and ask again",
			},
		},
		Action: runApp,
		Commands: []*cli.Command{
			{
				Name:   "init",
				Usage:  "Write the example configuration file",
				Flags:  []cli.Flag{configFlag()},
				Action: initConfig,
			},
		},
	}
}

// loadConfig reads the config file and applies command line overrides.
func loadConfig(c *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if c.IsSet("interval") {
		cfg.Timer.Interval = c.Duration("interval")
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("lang") {
		cfg.UI.Language = c.String("lang")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyLanguage picks the UI language: --lang, then BREAKTIMER_LANG, then
// ui.language, then the detected locale.
func applyLanguage(c *cli.Command, cfg *config.Config) {
	switch {
	case c.IsSet("lang"):
		i18n.SetLang(cfg.UI.Language)
	case strings.TrimSpace(os.Getenv(i18n.LangEnv)) != "":
	case cfg.UI.Language != "":
		i18n.SetLang(cfg.UI.Language)
	}
}

func runApp(_ context.Context, c *cli.Command) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	logger := logging.New(os.Stderr, cfg.LogLevel())
	log.SetDefault(logger)
	applyLanguage(c, cfg)
	logger.Info("starting", "interval", cfg.Timer.Interval, "lang", i18n.GetLang())

	fyneApp := app.NewWithID(appID)
	if icon, err := loadIcon(); err == nil {
		fyneApp.SetIcon(icon)
	} else {
		logger.Warn("failed to load icon", "err", err)
	}
	fyneApp.Settings().SetTheme(ui.NewCustomTheme())

	a := NewAppManager(fyneApp, cfg, logger)
	if c.Bool("reset-permission") {
		a.notifier.ResetPermission()
		logger.Info("notification permission reset")
	}

	a.Run()
	return nil
}

func initConfig(_ context.Context, c *cli.Command) error {
	path := c.String("config")
	if err := config.CreateConfigFile(path); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "wrote %s\n", path)
	return nil
}
