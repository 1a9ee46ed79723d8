// Package main provides the CLI entry point for toxlsx.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ukaji3/toxlsx-go/internal/logging"
	"github.com/ukaji3/toxlsx-go/pkg/toxlsx"
	"github.com/ukaji3/toxlsx-go/pkg/toxlsx/layout"
	"github.com/ukaji3/toxlsx-go/pkg/toxlsx/value"
)

const configEnv = "TOXLSX_CONFIG"

var (
	inputPath  string
	fromFormat string
	cwd        string
	configPath string
	boolMode   string
	dateLayout string
	parseDates bool
	printArea  bool
	verbose    bool

	errLabel = color.New(color.FgRed, color.Bold)
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errLabel.Fprint(os.Stderr, label(err)+":")
		fmt.Fprintf(os.Stderr, " %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "toxlsx <file_path> [sheet_name]",
		Short: "Convert a table or record to an Excel (.xlsx) file",
		Long: `toxlsx reads one JSON or YAML value and writes it to an .xlsx file.

Records become Key/Value tables, lists of records become tables with a header
row, and lists of records nested inside either are laid out inline.`,
		Example:       `  echo '[{"name": "bob"}]' | toxlsx people.xlsx`,
		Args:          cobra.RangeArgs(1, 2),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&inputPath, "input", "i", "", "Input file (default: stdin)")
	flags.StringVar(&fromFormat, "from", "", "Input format: json or yaml (default: by input extension, else json)")
	flags.StringVar(&cwd, "cwd", "", "Directory relative output paths resolve against (default: current directory)")
	flags.StringVar(&configPath, "config", "", "YAML options file (default: $"+configEnv+")")
	flags.StringVar(&boolMode, "bools", "", "Boolean rendering: text, number, or native")
	flags.StringVar(&dateLayout, "date-layout", "", "Go time layout for dates")
	flags.BoolVar(&parseDates, "parse-dates", false, "Treat RFC 3339 strings in JSON input as dates")
	flags.BoolVar(&printArea, "print-area", false, "Define a print area over the written cells")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")

	rootCmd.AddCommand(newInspectCmd())
	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		opts.SheetName = args[1]
	}

	v, err := readInput(opts)
	if err != nil {
		return err
	}

	dir := cwd
	if dir == "" {
		if dir, err = os.Getwd(); err != nil {
			return fmt.Errorf("%w: %v", toxlsx.ErrUnsupportedPath, err)
		}
	}

	res, err := toxlsx.WriteFile(v, dir, args[0], opts)
	if err != nil {
		return err
	}
	opts.Logger.Debug("done", "path", res.Path, "rows", res.Rows, "cols", res.Cols)
	return nil
}

// loadOptions layers defaults, the config file, and explicitly set flags.
func loadOptions(cmd *cobra.Command) (toxlsx.Options, error) {
	path := configPath
	if path == "" {
		path = os.Getenv(configEnv)
	}

	opts := toxlsx.DefaultOptions()
	if path != "" {
		var err error
		if opts, err = toxlsx.LoadOptions(path); err != nil {
			return opts, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("bools") {
		mode, err := layout.ParseBoolMode(boolMode)
		if err != nil {
			return opts, err
		}
		opts.Bools = mode
	}
	if flags.Changed("date-layout") {
		opts.DateLayout = dateLayout
	}
	if flags.Changed("print-area") {
		opts.PrintArea = &printArea
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	opts.Logger = logging.New(level)
	return opts, nil
}

func readInput(opts toxlsx.Options) (value.Value, error) {
	var r io.Reader = os.Stdin
	if inputPath != "" && inputPath != "-" {
		f, err := os.Open(inputPath)
		if err != nil {
			return value.Value{}, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	format := strings.ToLower(fromFormat)
	if format == "" {
		switch strings.ToLower(filepath.Ext(inputPath)) {
		case ".yaml", ".yml":
			format = "yaml"
		default:
			format = "json"
		}
	}

	decOpts := opts.DecodeOptions()
	decOpts.ParseDates = parseDates

	var (
		v   value.Value
		err error
	)
	switch format {
	case "json":
		v, err = value.DecodeJSON(r, decOpts)
	case "yaml", "yml":
		v, err = value.DecodeYAML(r, decOpts)
	default:
		return value.Value{}, fmt.Errorf("invalid input format: %s (must be json or yaml)", fromFormat)
	}
	if err != nil {
		return value.Value{}, fmt.Errorf("read input: %w", err)
	}
	return v, nil
}

// label names the error kind shown before the message.
func label(err error) string {
	switch {
	case errors.Is(err, toxlsx.ErrUnsupportedPath):
		return "unsupported path"
	case errors.Is(err, toxlsx.ErrWriteFailure):
		return "write failed"
	case errors.Is(err, toxlsx.ErrSaveFailure):
		return "save failed"
	}
	return "error"
}
