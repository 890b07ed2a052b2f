package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel"

	"lucid/internal/alerts"
	"lucid/internal/config"
	"lucid/internal/demo"
	"lucid/internal/events"
	"lucid/internal/telemetry"
	"lucid/internal/theme"
)

// options holds the parsed CLI flags.
type options struct {
	configPath  string
	theme       string
	logFile     string
	metricsAddr string
	noMouse     bool
	initConfig  bool
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.configPath, "config", "", "path to config.toml (default $XDG_CONFIG_HOME/lucid/config.toml)")
	flag.StringVar(&opts.theme, "theme", "", "theme mode: light, dark or auto (overrides the config file)")
	flag.StringVar(&opts.logFile, "log-file", "", "write debug logs to this file")
	flag.StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9464)")
	flag.BoolVar(&opts.noMouse, "no-mouse", false, "disable mouse support")
	flag.BoolVar(&opts.initConfig, "init-config", false, "write the default config file and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: lucid [flags]\n\n")
		fmt.Fprintf(os.Stderr, "lucid is a terminal demo of modal dialogs and toast notifications.\n")
		fmt.Fprintf(os.Stderr, "Press SPC to open the menu and q to quit.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	return opts
}

func run(opts options) error {
	if opts.initConfig {
		return writeDefaultConfig(opts.configPath)
	}

	logger := log.New(io.Discard, "", 0)
	if opts.logFile != "" {
		f, err := tea.LogToFile(opts.logFile, "lucid")
		if err != nil {
			return fmt.Errorf("log file %q: %w", opts.logFile, err)
		}
		defer f.Close()
		logger = log.Default()
	}

	file, path, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	logger.Printf("config: path=%s", path)

	mode, ok := file.ThemeMode()
	if !ok {
		logger.Printf("config: unknown theme %q, using %q", file.Theme, mode)
	}
	if opts.theme != "" {
		if mode, ok = theme.ParseMode(opts.theme); !ok {
			return fmt.Errorf("unknown theme %q (want light, dark or auto)", opts.theme)
		}
	}
	ctrl := theme.NewController(mode, logger)
	// Query the terminal before the program owns stdin.
	ctrl.Update(ctrl.DetectCmd()())

	ctx := context.Background()
	tracing, err := telemetry.NewTracing(ctx)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracing.Shutdown(shutdownCtx); err != nil {
			logger.Printf("telemetry: shutdown: %v", err)
		}
	}()
	otel.SetTracerProvider(tracing.Provider())

	reg := telemetry.NewRegistry()
	metrics := alerts.NewMetrics(reg)
	if opts.metricsAddr != "" {
		srv := telemetry.NewMetricsServer(opts.metricsAddr, reg)
		if err := srv.Start(); err != nil {
			return err
		}
		logger.Printf("telemetry: metrics on %s", srv.Addr())
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Stop(stopCtx)
		}()
	}

	ch := make(chan events.Event, 256)
	manager := alerts.New(file.Alerts(),
		alerts.WithLogger(logger),
		alerts.WithTheme(ctrl),
		alerts.WithEmitter(&events.ChanEmitter{Ch: ch}),
		alerts.WithMetrics(metrics),
		alerts.WithTracerProvider(tracing.Provider()),
	)
	app := demo.New(demo.Options{
		Manager:       manager,
		Theme:         ctrl,
		Events:        ch,
		WatchInterval: file.WatchInterval(),
	})

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if !opts.noMouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(app, programOpts...)
	app.Attach(p)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program: %w", err)
	}
	return nil
}

func writeDefaultConfig(path string) error {
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return fmt.Errorf("config: locate: %w", err)
		}
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config: %s already exists", path)
	}
	if err := config.Save(path, config.Defaults()); err != nil {
		return err
	}
	fmt.Printf("lucid: wrote %s\n", path)
	return nil
}

func main() {
	opts := parseFlags()
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "lucid: %v\n", err)
		os.Exit(1)
	}
}
