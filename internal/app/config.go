package app

import (
	"log"
	"strconv"
	"strings"

	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
)

const (
	// DefaultCellsPerRow is used when the first argument is missing or invalid.
	DefaultCellsPerRow = 100
	// DefaultRate is the default number of generations per second while running.
	DefaultRate = 10
	// MaxRate caps the generation rate.
	MaxRate = 60
	// DefaultWindowScale is the field edge in pixels; it also bounds the
	// number of cells per row so every cell is at least one pixel.
	DefaultWindowScale = 800
	// DefaultBarHeight is the height of the button strip under the field.
	DefaultBarHeight = 50
)

// Sentinel causes for rejected arguments.
var (
	ErrNotNumber   = errors.New("not an integer")
	ErrNonPositive = errors.New("zero or negative")
	ErrTooLarge    = errors.New("above the maximum")
	ErrIgnored     = errors.New("ignored")
)

// Config represents the command-line parameters for the application.
type Config struct {
	CellsPerRow int
	Rate        int
	WindowScale int
	BarHeight   int
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		CellsPerRow: DefaultCellsPerRow,
		Rate:        DefaultRate,
		WindowScale: DefaultWindowScale,
		BarHeight:   DefaultBarHeight,
	}
}

// CellSize returns the edge of one cell in pixels.
func (c *Config) CellSize() int {
	if c.CellsPerRow <= 0 {
		return c.WindowScale
	}
	return c.WindowScale / c.CellsPerRow
}

// FieldSize returns the edge of the drawn field in pixels.
func (c *Config) FieldSize() int { return c.CellSize() * c.CellsPerRow }

func newParser(cells, rate *string) *flaggy.Parser {
	p := flaggy.NewParser("gol")
	p.Description = "Conway's Game of Life"
	p.AdditionalHelpAppend = "\nUse the left mouse button to draw cells and the right mouse button to erase them."
	p.ShowVersionWithVersionFlag = false
	p.ShowHelpOnUnexpected = false
	p.AddPositionalValue(cells, "cells_per_row", 1, false, "number of cells per row of the N×N board")
	p.AddPositionalValue(rate, "iterations_per_second", 2, false, "number of generations per second while running")
	return p
}

// Parse reads `[cells_per_row] [iterations_per_second]` from args. Bad
// values never abort: each one is replaced by its default and reported in
// the returned warnings. `-h` prints usage and exits.
func (c *Config) Parse(args []string) []error {
	var cellsArg, rateArg string
	p := newParser(&cellsArg, &rateArg)
	if err := p.ParseArgs(escapeArgs(args)); err != nil {
		return []error{errors.Wrap(err, "arguments ignored")}
	}

	var warnings []error
	if len(p.TrailingArguments) > 0 {
		warnings = append(warnings, errors.Wrapf(ErrIgnored, "arguments after -- %q", p.TrailingArguments))
	}

	cellsArg, rateArg = strings.TrimSpace(cellsArg), strings.TrimSpace(rateArg)
	if cellsArg == "" {
		return warnings
	}
	n, err := parsePositive(cellsArg, c.WindowScale)
	if err != nil {
		warnings = append(warnings, fallback("cells_per_row", cellsArg, DefaultCellsPerRow, err))
		n = DefaultCellsPerRow
	}
	c.CellsPerRow = n

	if rateArg == "" {
		return warnings
	}
	r, err := parsePositive(rateArg, MaxRate)
	if err != nil {
		warnings = append(warnings, fallback("iterations_per_second", rateArg, DefaultRate, err))
		r = DefaultRate
	}
	c.Rate = r
	return warnings
}

// escapeArgs prefixes a space to every argument the flag parser would read
// as a flag, except "-h", "--help" and "--", so it lands in a positional
// value instead. The parser also takes bare "h" and "help" for the help
// flag. Parse trims the space again before validating.
func escapeArgs(args []string) []string {
	out := make([]string, len(args))
	final := false
	for i, a := range args {
		switch {
		case final:
		case a == "--":
			final = true
		case a == "-h", a == "--help":
		case strings.HasPrefix(a, "-"), a == "h", a == "help":
			a = " " + a
		}
		out[i] = a
	}
	return out
}

func parsePositive(s string, limit int) (int, error) {
	v, err := strconv.Atoi(s)
	switch {
	case err != nil:
		return 0, ErrNotNumber
	case v <= 0:
		return 0, ErrNonPositive
	case v > limit:
		return 0, errors.Wrapf(ErrTooLarge, "limit %d", limit)
	}
	return v, nil
}

func fallback(name, arg string, def int, cause error) error {
	return errors.Wrapf(cause, "%s %q rejected, defaulting to %d", name, arg, def)
}

// LogWarnings prints argument warnings to the standard logger.
func LogWarnings(warnings []error) {
	for _, w := range warnings {
		log.Printf("%s %v", aurora.Yellow("warning:"), w)
	}
}
