// Package rolltable parses rolltable command flags and renders tables.
package rolltable

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/louisbranch/rolltable/internal/core/dice"
	core "github.com/louisbranch/rolltable/internal/core/rolltable"
	entrypoint "github.com/louisbranch/rolltable/internal/platform/cmd"
	"github.com/louisbranch/rolltable/internal/platform/otel"
	"github.com/louisbranch/rolltable/internal/random"
	"github.com/louisbranch/rolltable/internal/tables"
	"go.opentelemetry.io/otel/attribute"
)

// Output formats.
const (
	OutputText     = "text"
	OutputYAML     = "yaml"
	OutputMarkdown = "markdown"
)

// Commands other than the built-in table names.
const (
	CommandCustom = "custom"
	CommandList   = "list"
)

// Config holds rolltable command configuration. Env tags are read with the
// ROLLTABLE_ prefix.
type Config struct {
	Frequency string `env:"FREQUENCY" envDefault:"default"`
	Die       int    `env:"DIE" envDefault:"20"`
	HideRolls bool   `env:"HIDE_ROLLS"`
	Collapsed bool   `env:"COLLAPSED" envDefault:"true"`
	Width     int    `env:"WIDTH" envDefault:"120"`
	Output    string `env:"OUTPUT" envDefault:"text"`
	Seed      int64  `env:"SEED"`

	Rolls   int
	Verbose bool

	// Command is the first positional argument; Args holds the rest.
	Command string
	Args    []string
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Frequency, "frequency", cfg.Frequency, "use the named frequency from each source")
	fs.IntVar(&cfg.Die, "die", cfg.Die, "the size of the die to build the table for")
	fs.BoolVar(&cfg.HideRolls, "hide-rolls", cfg.HideRolls, "do not show the Roll column")
	fs.BoolVar(&cfg.Collapsed, "collapsed", cfg.Collapsed, "collapse consecutive faces with the same entry")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "width of the text table (0 = fit content)")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "output format (text, yaml, markdown)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for reproducibility (0 = random)")
	fs.IntVar(&cfg.Rolls, "roll", 0, "roll the die N times and print the matching rows")
	fs.BoolVar(&cfg.Verbose, "v", false, "verbose output")
	fs.Usage = func() { usage(fs) }
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	if rest := fs.Args(); len(rest) > 0 {
		cfg.Command = rest[0]
		cfg.Args = rest[1:]
	}
	return cfg, nil
}

func usage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintf(w, "Usage: %s [flags] <command> [args]\n\nCommands:\n", fs.Name())
	fmt.Fprintf(w, "  %-20s %s\n", CommandCustom+" <file>...", "Create a roll table from one or more YAML sources")
	fmt.Fprintf(w, "  %-20s %s\n", CommandList, "List the built-in tables")
	for _, name := range tables.Names() {
		fmt.Fprintf(w, "  %-20s Create a roll table of %s\n", name, tables.Title(name))
	}
	fmt.Fprintln(w, "\nFlags:")
	fs.PrintDefaults()
}

// Run executes the rolltable command.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if err := validate(cfg); err != nil {
		return err
	}

	logger := log.New(io.Discard, "", 0)
	if cfg.Verbose {
		logger = log.New(errOut, "rolltable: ", 0)
	}

	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceRollTable, func(ctx context.Context) error {
		if cfg.Command == CommandList {
			return listTables(out)
		}
		return render(ctx, cfg, out, logger)
	})
}

func validate(cfg Config) error {
	switch cfg.Output {
	case OutputText, OutputYAML, OutputMarkdown:
	default:
		return fmt.Errorf("unknown output %q (valid outputs: text, yaml, markdown)", cfg.Output)
	}
	if cfg.Rolls < 0 {
		return fmt.Errorf("roll count must not be negative, got %d", cfg.Rolls)
	}
	switch cfg.Command {
	case "":
		return errors.New("a command is required (try list)")
	case CommandCustom:
		if len(cfg.Args) == 0 {
			return errors.New("custom requires at least one source file")
		}
	}
	return nil
}

func listTables(out io.Writer) error {
	fmt.Fprintln(out, "Available tables:")
	for _, name := range tables.Names() {
		fmt.Fprintf(out, "  %-20s %s\n", name, tables.Title(name))
	}
	return nil
}

func readSources(paths []string, logger *log.Logger) ([]string, error) {
	sources := make([]string, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read source: %w", err)
		}
		logger.Printf("loaded %s (%d bytes)", path, len(data))
		sources = append(sources, string(data))
	}
	return sources, nil
}

// build rolls the table named by the command: the custom source files or a
// built-in table.
func build(cfg Config, opts []core.TableOption, logger *log.Logger) (*core.Table, error) {
	if cfg.Command == CommandCustom {
		sources, err := readSources(cfg.Args, logger)
		if err != nil {
			return nil, err
		}
		return core.New(sources, opts...)
	}

	table, err := tables.Default().Table(cfg.Command, opts...)
	if errors.Is(err, tables.ErrUnknownTable) {
		return nil, fmt.Errorf("unknown command %q (valid: custom, list, %s)", cfg.Command, strings.Join(tables.Names(), ", "))
	}
	if err != nil {
		return nil, err
	}
	logger.Printf("loaded built-in table %s", cfg.Command)
	return table, nil
}

func render(ctx context.Context, cfg Config, out io.Writer, logger *log.Logger) (err error) {
	src, err := random.New(cfg.Seed)
	if err != nil {
		return fmt.Errorf("seed random source: %w", err)
	}
	logger.Printf("seed %d", src.Seed())

	_, span := otel.StartSpan(ctx, "rolltable.build",
		attribute.String("rolltable.command", cfg.Command),
		attribute.String("rolltable.frequency", cfg.Frequency),
		attribute.Int("rolltable.die", cfg.Die),
		attribute.Int64("rolltable.seed", src.Seed()),
	)
	table, err := build(cfg, []core.TableOption{
		core.WithFrequency(cfg.Frequency),
		core.WithDie(cfg.Die),
		core.WithHideRolls(cfg.HideRolls),
		core.WithSource(src),
	}, logger)
	otel.EndSpan(span, err)
	if err != nil {
		return fmt.Errorf("build table: %w", err)
	}

	_, span = otel.StartSpan(ctx, "rolltable.render", attribute.String("rolltable.output", cfg.Output))
	defer func() { otel.EndSpan(span, err) }()

	if cfg.Rolls > 0 {
		return printRolls(table, src, cfg.Rolls, out)
	}

	expanded := !cfg.Collapsed
	switch cfg.Output {
	case OutputYAML:
		text, err := table.YAML(expanded)
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, text)
		return err
	case OutputMarkdown:
		_, err = fmt.Fprintln(out, table.Markdown())
		return err
	default:
		_, err = fmt.Fprintln(out, table.Text(cfg.Width, expanded))
		return err
	}
}

// printRolls rolls the table's die count times and prints each matching row.
func printRolls(table *core.Table, src random.Source, count int, out io.Writer) error {
	result, err := dice.RollWithSource(src, []dice.Spec{{Sides: table.Die(), Count: count}})
	if err != nil {
		return fmt.Errorf("roll: %w", err)
	}
	for _, face := range result.Rolls[0].Results {
		row, ok := table.Lookup(face)
		if !ok {
			return fmt.Errorf("no row covers face %d", face)
		}
		if _, err := fmt.Fprintf(out, "%d: %s\n", face, strings.Join(row.Cells, " | ")); err != nil {
			return err
		}
	}
	return nil
}
