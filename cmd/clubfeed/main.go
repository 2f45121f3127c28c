package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/clubfeed/pkg/club"
	"github.com/umputun/clubfeed/pkg/config"
	"github.com/umputun/clubfeed/pkg/feed"
	"github.com/umputun/clubfeed/pkg/football"
	"github.com/umputun/clubfeed/pkg/scheduler"
	"github.com/umputun/clubfeed/server"
)

// Opts with all CLI options
type Opts struct {
	Config  string `short:"c" long:"config" env:"CONFIG" description:"configuration file, compiled-in defaults if not set"`
	Listen  string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	APIKey  string `long:"api-key" env:"FOOTBALL_API_KEY" description:"football-data.org api key, overrides config"`
	Verbose bool   `short:"v" long:"verbose" description:"verbose mode"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	setupLog(opts.Debug, opts.Verbose, opts.APIKey)

	log.Printf("[INFO] starting clubfeed version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires all components and blocks until the server is stopped
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if opts.APIKey != "" {
		cfg.Football.APIKey = opts.APIKey
	}
	if cfg.Football.APIKey == "" {
		log.Printf("[WARN] football api key is not set, api requests will likely be rejected")
	}

	api := football.NewClient(football.Params{
		BaseURL:       cfg.Football.BaseURL,
		Token:         cfg.Football.APIKey,
		TeamID:        cfg.Football.TeamID,
		CompetitionID: cfg.Football.CompetitionID,
		Timeout:       cfg.Football.Timeout,
		Retries:       cfg.Football.Retries,
	})
	news := feed.NewSource(feed.NewFetcher(cfg.News.Timeout), cfg.News.URLs, cfg.News.UserAgent)

	sched := scheduler.NewScheduler(club.NewService(api, news), scheduler.Config{
		RefreshInterval: cfg.Schedule.RefreshInterval,
	})
	sched.Start(ctx)
	defer sched.Stop()

	srv := server.New(cfg, sched, revision, opts.Debug)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func setupLog(dbg, verbose bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(io.Discard), lgr.Err(io.Discard)}
	if verbose {
		logOpts = []lgr.Option{}
	}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	var secrets []string
	for _, s := range secs {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
