// Package main provides the CLI entry point for shape-tables.
package main

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shapestone/shape-tables/pkg/csv"
	"github.com/shapestone/shape-tables/pkg/properties"
)

var (
	logLevel  string
	logFormat string

	separator   string
	columnTypes string
	uniformType string
	columns     int
	showSchema  bool

	propSep string
	propKey string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "shape-tables",
		Short:        "Load typed CSV tables and properties files",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "Log format: console or json")

	csvCmd := &cobra.Command{
		Use:   "csv [file]",
		Short: "Load a CSV file and print its records",
		Long: `Load a CSV file into a typed table and print one record per line.

With --types every column gets its own type, otherwise all columns share
--uniform-type and the column count is --cols or inferred from the first record.`,
		Args: cobra.ExactArgs(1),
		RunE: runCSV,
	}
	csvCmd.Flags().StringVarP(&separator, "sep", "s", ",", "Field separator (a single character)")
	csvCmd.Flags().StringVarP(&columnTypes, "types", "t", "", "Comma-separated column types, e.g. int,string,double")
	csvCmd.Flags().StringVar(&uniformType, "uniform-type", "string", "Type shared by all columns when --types is not set")
	csvCmd.Flags().IntVar(&columns, "cols", 0, "Expected column count for uniform tables (0: infer)")
	csvCmd.Flags().BoolVar(&showSchema, "schema", false, "Print the Arrow schema instead of the records")

	propsCmd := &cobra.Command{
		Use:   "props [file]",
		Short: "Load a properties file and print its entries",
		Args:  cobra.ExactArgs(1),
		RunE:  runProps,
	}
	propsCmd.Flags().StringVarP(&propSep, "sep", "s", "=", "Key/value separator (a single character)")
	propsCmd.Flags().StringVarP(&propKey, "key", "k", "", "Print only the values of this key")

	rootCmd.AddCommand(csvCmd, propsCmd)
	return rootCmd
}

func runCSV(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(logLevel, logFormat)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	sep, err := parseSeparator(separator)
	if err != nil {
		return err
	}
	opts := csv.DefaultReaderOptions()
	opts.Separator = sep
	opts.Columns = columns
	opts.Logger = logger

	var table *csv.Table
	if columnTypes != "" {
		types, err := csv.ParseTypes(columnTypes, ",")
		if err != nil {
			return err
		}
		table, err = csv.ReadFile(args[0], types, opts)
		if err != nil {
			return err
		}
	} else {
		elem, err := csv.ParseType(uniformType)
		if err != nil {
			return err
		}
		table, err = csv.ReadUniformFile(args[0], elem, opts)
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if showSchema {
		schema, err := table.ArrowSchema(nil)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, schema)
		return nil
	}
	for _, row := range table.All() {
		fmt.Fprintln(out, strings.Join(row.Strings(), string(sep)))
	}
	return nil
}

func runProps(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(logLevel, logFormat)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	sep, err := parseSeparator(propSep)
	if err != nil {
		return err
	}
	opts := properties.DefaultReaderOptions()
	opts.Separator = sep
	opts.Logger = logger

	props, err := properties.ReadFile(args[0], opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if propKey != "" {
		if !props.Has(propKey) {
			return &properties.KeyError{Key: propKey}
		}
		for _, v := range props.Strings(propKey) {
			fmt.Fprintln(out, v)
		}
		return nil
	}
	for k, v := range props.All() {
		fmt.Fprintf(out, "%s%c%s\n", k, sep, v)
	}
	return nil
}

func parseSeparator(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("invalid separator %q: must be a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// newLogger builds a stderr logger. Unknown levels fall back to warn.
func newLogger(level, format string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()

	atom, err := zap.ParseAtomicLevel(level)
	if err != nil {
		atom = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.Level = atom

	switch format {
	case "console":
		cfg.Encoding = "console"
	case "json":
		cfg.Encoding = "json"
	default:
		return nil, fmt.Errorf("invalid log format: %s (must be console or json)", format)
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.Sampling = nil

	return cfg.Build()
}
