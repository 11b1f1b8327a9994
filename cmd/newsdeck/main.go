package main

import (
	"context"
	"errors"
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

	"github.com/umputun/newsdeck/pkg/config"
	"github.com/umputun/newsdeck/pkg/feed"
	"github.com/umputun/newsdeck/pkg/page"
	"github.com/umputun/newsdeck/pkg/render"
	"github.com/umputun/newsdeck/pkg/tui"
	"github.com/umputun/newsdeck/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" description:"configuration file, defaults are used if not set"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides server.listen"`
	Source string `short:"s" long:"source" env:"SOURCE" description:"feed document path or URL, overrides feed.source"`
	Site   string `long:"site" env:"SITE_DIR" description:"static site directory, overrides server.site_dir"`
	TUI    bool   `long:"tui" env:"TUI" description:"show feed in terminal instead of running web server"`

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
	// terminal view owns the screen, log output would break it
	setupLog(opts.Debug && !opts.TUI)

	log.Printf("[INFO] starting newsdeck version %s", revision)

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
		if opts.TUI {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run loads configuration and runs either web server or terminal view until ctx is canceled
func run(ctx context.Context, opts Opts) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	loader := newLoader(cfg)

	if opts.TUI {
		display := cfg.GetDisplayConfig()
		return tui.Run(ctx, tui.Params{
			Title:    display.Title,
			Source:   loader.Source(),
			Loader:   loader,
			Renderer: render.NewRenderer(render.NewDateFormatter(display.DateLayout, display.Timezone)),
			Options: page.Options{
				CollapseErrors:   display.CollapseErrors,
				CompactThreshold: display.CompactThreshold,
			},
		})
	}

	srv := server.New(cfg, loader, revision, opts.Debug)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// loadConfig reads config file if given, applies CLI overrides and validates the result
func loadConfig(opts Opts) (*config.Config, error) {
	cfg := config.Default()
	if opts.Config != "" {
		loaded, err := config.Load(opts.Config)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if opts.Source != "" {
		cfg.Feed.Source = opts.Source
	}
	if opts.Site != "" {
		cfg.Server.SiteDir = opts.Site
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if !cfg.IsRemoteSource() {
		if _, err := os.Stat(cfg.Server.SiteDir); errors.Is(err, os.ErrNotExist) {
			log.Printf("[WARN] site directory %s doesn't exist", cfg.Server.SiteDir)
		}
	}
	return cfg, nil
}

func newLoader(cfg *config.Config) *feed.Loader {
	fc := cfg.GetFeedConfig()
	return feed.NewLoader(feed.Params{
		Source:    fc.Source,
		SiteDir:   cfg.Server.SiteDir,
		Format:    feed.Format(fc.Format),
		Timeout:   fc.Timeout,
		Retries:   fc.Retries,
		UserAgent: fc.UserAgent,
		MaxSize:   fc.MaxSize,
	})
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(io.Discard), lgr.Err(io.Discard)}
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
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
