package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/orsextract/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	// Logger enables per-operation diagnostics when set.
	Logger *slog.Logger

	// DB receives a copy of every record when set.
	DB *sqlite.DB
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Mode     string `short:"m" enum:"sequential,concurrent" default:"sequential" help:"Processing mode (sequential, concurrent)"`
	Dir      string `short:"d" default:"./statutes" help:"Directory of statute pages"`
	Prefix   string `default:"ors_" help:"Only process files whose names start with this prefix"`
	BaseURL  string `name:"base-url" default:"https://oregon.public.law/" help:"Prefix for record URLs"`
	Output   string `short:"o" default:"output.jsonl" help:"Output JSON Lines file"`
	Encoding string `default:"utf-8" help:"Page encoding assumed in sequential mode"`
	Workers  int    `short:"w" default:"0" help:"Concurrent workers (0 uses every CPU)"`
	DB       string `name:"db" help:"Also index records into this SQLite database"`
	Verbose  bool   `short:"v" help:"Log each pipeline step to stderr"`
}

// ExtractCmd runs one extraction batch.
type ExtractCmd struct {
	Mode     string
	Dir      string
	Prefix   string
	BaseURL  string
	Output   string
	Encoding string
	Workers  int
}
