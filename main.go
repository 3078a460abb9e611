package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"github.com/mschuldt/bart-mode/internal/api/bart"
	"github.com/mschuldt/bart-mode/internal/board"
	"github.com/mschuldt/bart-mode/internal/config"
	"github.com/mschuldt/bart-mode/internal/display"
	"github.com/mschuldt/bart-mode/internal/notify"
	"github.com/mschuldt/bart-mode/internal/poller"
	"github.com/mschuldt/bart-mode/internal/render"
	"github.com/mschuldt/bart-mode/internal/stations"
)

var CLI struct {
	Config       string `help:"Path to config file" default:"bart.yaml" type:"path"`
	Station      string `help:"Station code to poll (overrides config)" short:"s"`
	Key          string `help:"BART API key (overrides config)"`
	Interval     int    `help:"Poll interval in seconds (overrides config)" short:"i"`
	Abbreviate   bool   `help:"Show abbreviated destination names" short:"a"`
	Once         bool   `help:"Fetch and print the board once, then exit"`
	ListStations bool   `help:"List station names and codes, then exit"`
}

func main() {
	kong.Parse(&CLI)

	// Log to stderr so the board owns stdout
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	if CLI.ListStations {
		for _, s := range stations.All {
			fmt.Printf("%-4s  %s\n", s.Code, s.Name)
		}
		return
	}

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		logger.WithField("error", err).Fatal("failed to load config")
	}
	applyOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		logger.WithField("error", err).Fatal("invalid configuration")
	}

	level, _ := logrus.ParseLevel(cfg.LogLevel)
	logger.SetLevel(level)

	client := bart.NewClient(cfg.APIKey)

	if CLI.Once {
		b, err := client.EstimatedDepartures(context.Background(), cfg.Station)
		if err != nil {
			logger.WithField("error", err).Fatal("failed to fetch departures")
		}
		for _, line := range render.Lines(b, cfg.Abbreviate) {
			fmt.Println(line)
		}
		return
	}

	surface := display.NewTerminal(os.Stdout)
	p := poller.New(client, surface, logger, poller.Options{
		Station:    cfg.Station,
		Interval:   cfg.Interval(),
		Abbreviate: cfg.Abbreviate,
		OnBoard:    buildAlertHook(cfg, logger),
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.WithField("signal", sig).Info("received signal, shutting down")
		cancel()
	}()

	logger.WithFields(logrus.Fields{
		"station":  cfg.Station,
		"interval": cfg.Interval(),
	}).Info("starting bart-mode")

	if err := p.Start(ctx); err != nil {
		logger.WithField("error", err).Fatal("failed to start poller")
	}

	go commandLoop(os.Stdin, p, logger, cancel)

	<-ctx.Done()
	p.Stop()
	logger.Info("bart-mode stopped")
}

func applyOverrides(cfg *config.Config) {
	if CLI.Station != "" {
		cfg.Station = CLI.Station
	}
	if CLI.Key != "" {
		cfg.APIKey = CLI.Key
	}
	if CLI.Interval > 0 {
		cfg.PollIntervalSeconds = CLI.Interval
	}
	if CLI.Abbreviate {
		cfg.Abbreviate = true
	}
}

func buildAlertHook(cfg *config.Config, logger *logrus.Logger) func(*board.Board) {
	if cfg.Alert == nil {
		return nil
	}
	token := os.Getenv("PUSHOVER_TOKEN")
	user := os.Getenv("PUSHOVER_USER")
	if token == "" || user == "" {
		logger.Warn("alert configured but PUSHOVER_TOKEN/PUSHOVER_USER not set, alerts disabled")
		return nil
	}
	watcher := notify.NewWatcher(
		notify.NewNotifier(token, user, logger),
		cfg.Alert.Destination,
		cfg.Alert.ThresholdMinutes,
		logger,
	)
	return watcher.Observe
}

// commandLoop reads line-oriented commands while the board is live:
// r refresh, a toggle abbreviations, s switch station, q quit.
func commandLoop(r io.Reader, p *poller.Poller, logger *logrus.Logger, quit func()) {
	scanner := bufio.NewScanner(r)
	readLine := func() (string, error) {
		if scanner.Scan() {
			return scanner.Text(), nil
		}
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	for scanner.Scan() {
		switch strings.TrimSpace(scanner.Text()) {
		case "r":
			p.Refresh()
		case "a":
			p.ToggleAbbreviate()
		case "s":
			code, err := stations.Select(readLine, os.Stderr)
			if err != nil {
				logger.WithField("error", err).Warn("station selection aborted")
				continue
			}
			p.SetStation(code)
		case "q":
			quit()
			return
		case "":
		default:
			fmt.Fprintln(os.Stderr, "commands: r refresh, a abbreviate, s station, q quit")
		}
	}
	// stdin closed: treat like quit
	quit()
}
