// Copyright © 2025 Texelslides contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelslides/main.go
// Summary: Command entry point: flags, logging, session lifecycle.
// Usage: Run `texelslides deck.json` to present a deck.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/framegrace/texelslides/config"
	"github.com/framegrace/texelslides/engine"
	"github.com/framegrace/texelslides/history"
	"github.com/framegrace/texelslides/render"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fs := flag.NewFlagSet("texelslides", flag.ContinueOnError)
	logPath := fs.String("log", "", "Log file path (default: under the config dir)")
	resume := fs.Bool("resume", false, "Reopen the deck at the last viewed slide")
	stats := fs.Bool("stats", false, "Print per-slide rehearsal stats for the deck and exit")
	noHistory := fs.Bool("no-history", false, "Do not record navigation history")

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: texelslides [flags] <deck.json>")
	}

	// History keys decks by absolute path so stats and resume survive being
	// launched from different directories.
	deckPath, err := filepath.Abs(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("resolve deck path: %w", err)
	}

	if *stats {
		return printStats(deckPath)
	}

	// The terminal is taken over by the presentation; logging goes to a file.
	if *logPath == "" {
		if *logPath, err = config.LogPath(); err != nil {
			return fmt.Errorf("resolve log path: %w", err)
		}
	}
	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	if err := config.Err(); err != nil {
		log.Printf("config: using defaults: %v", err)
	}

	eng, err := engine.New(deckPath, config.Theme())
	if err != nil {
		return err
	}

	var rec engine.Recorder
	var hist *history.Log
	if !*noHistory {
		if hist = openHistory(); hist != nil {
			defer hist.Close()
			rec = hist
		}
	}

	if *resume && hist != nil {
		if index, ok, err := hist.LastIndex(deckPath); err != nil {
			log.Printf("resume: %v", err)
		} else if ok {
			if err := eng.Jump(index); err != nil {
				log.Printf("resume to slide %d: %v", index, err)
			}
		}
	}

	surface, err := render.NewSurface()
	if err != nil {
		return err
	}
	defer surface.Fini()

	log.Printf("presenting %s (%d slides)", deckPath, eng.Count())
	return engine.NewSession(surface, eng, rec).Run()
}

// openHistory opens the history log, degrading to none on failure. Losing
// rehearsal stats is never worth refusing to present.
func openHistory() *history.Log {
	path, err := config.HistoryPath()
	if err != nil {
		log.Printf("history: %v", err)
		return nil
	}
	hist, err := history.Open(path)
	if err != nil {
		log.Printf("history: %v", err)
		return nil
	}
	return hist
}

func printStats(deckPath string) error {
	path, err := config.HistoryPath()
	if err != nil {
		return err
	}
	hist, err := history.Open(path)
	if err != nil {
		return err
	}
	defer hist.Close()

	stats, err := hist.DwellStats(deckPath)
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Printf("no history for %s\n", deckPath)
		return nil
	}

	fmt.Printf("%-7s %-8s %s\n", "slide", "visits", "time")
	for _, d := range stats {
		fmt.Printf("%-7d %-8d %s\n", d.Slide+1, d.Visits, d.Total.Round(time.Second))
	}
	return nil
}
