// Command fieldcheck shows a terminal form with password, mobile number,
// code and amount inputs validated by the fieldcheck presets.
//
// Run:
//
//	go run ./cmd/fieldcheck
//
// Set FIELDCHECK_PRINT_SCHEMA=true to print the form's OpenAPI schema instead.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/Gobd/fieldcheck/internal/config"
	"github.com/Gobd/fieldcheck/internal/logger"
	"github.com/Gobd/fieldcheck/internal/tui"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewLogger("fieldcheck", os.Stderr, zerolog.InfoLevel).
			Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.PrintSchema {
		if err = printSchema(cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	log, closeLog, err := logger.NewFileLogger("fieldcheck", cfg.LogFile, cfg.Level())
	if err != nil {
		logger.NewLogger("fieldcheck", os.Stderr, zerolog.InfoLevel).
			Fatal().Err(err).Msg("create logger")
	}
	defer func() { _ = closeLog() }()

	values, err := tui.Run(cfg, log)
	if errors.Is(err, tui.ErrUserQuit) {
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("form run error")
		fmt.Fprintln(os.Stderr, err)
		return
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if name == "password" {
			fmt.Printf("%s: accepted\n", name)
			continue
		}
		fmt.Printf("%s: %s\n", name, values[name])
	}
}

func printSchema(cfg *config.Config) error {
	ref, err := tui.FormSchema(cfg)
	if err != nil {
		return fmt.Errorf("build schema: %w", err)
	}
	b, err := json.MarshalIndent(ref.Value, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	fmt.Println(string(b))
	return nil
}
