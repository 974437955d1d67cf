package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/agrzeslak/bohelper"
	"github.com/agrzeslak/bohelper/config"
	"github.com/agrzeslak/bohelper/console"
	"github.com/agrzeslak/bohelper/hexstr"
	"github.com/agrzeslak/bohelper/history"
	"github.com/agrzeslak/bohelper/patterns"
)

func main() {
	configFile := flag.String("config", "", "path to TOML configuration file")
	endianness := flag.String("endianness", "", "default endianness (big|little), overrides config")
	debug := flag.Bool("debug", false, "set log level to debug")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})))

	if err := run(*configFile, *endianness); err != nil {
		fmt.Fprintf(os.Stderr, "Error encountered: %v\n", err)
		os.Exit(1)
	}
}

func run(configFile, endiannessOverride string) error {
	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if endiannessOverride != "" {
		cfg.Endianness = endiannessOverride
	}

	defaultEndianness, err := hexstr.ParseEndianness(cfg.Endianness)
	if err != nil {
		return err
	}

	book, err := patterns.NewBook(cfg.Patterns, defaultEndianness)
	if err != nil {
		return err
	}

	out := console.NewOutputAdapter()

	var historyPort bohelper.HistoryPort
	if cfg.History != "" {
		store, err := history.Open(cfg.History)
		if err != nil {
			return err
		}
		defer store.Close()
		historyPort = store
		slog.Debug("history enabled", "path", cfg.History)
	}

	session := bohelper.NewSession(defaultEndianness, book, out, historyPort)
	keyboard := console.NewKeyboardAdapter(session, out, defaultEndianness)
	return keyboard.Start()
}
