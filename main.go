package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"github.com/mcncl/hiveschema/internal/analyzer"
	"github.com/mcncl/hiveschema/internal/config"
	"github.com/mcncl/hiveschema/internal/errors"
	"github.com/mcncl/hiveschema/internal/generator"
	"github.com/mcncl/hiveschema/internal/models"
	"github.com/mcncl/hiveschema/internal/parser"
)

// CLI defines the command-line interface
type CLI struct {
	JSONFile  string `arg:"" optional:"" name:"json-file" help:"Path to the JSON document. Use '-' to read stdin, and '--' before a path starting with '-'."`
	TableName string `arg:"" optional:"" name:"table-name" help:"Name of the generated table. Defaults to 'x'."`

	Output   string `help:"Write the definition to this file instead of stdout." short:"o" type:"path"`
	Config   string `help:"Path to a config file. Defaults to .hiveschema.yml found in the current or a parent directory." short:"c" type:"path"`
	NullType string `help:"Type emitted for null values instead of failing." name:"null-type"`
	Debug    bool   `help:"Enable debug logging." short:"d"`
	Version  bool   `help:"Show version information." short:"v"`
}

// Version information
const (
	Version = "0.1.0"
)

const usageText = "  json-file: path to the JSON document to convert into a Hive table definition (put -- before a path starting with '-')\n" +
	"  table-name (optional): name of the generated table. Defaults to 'x'\n"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// printUsage replaces kong's generated help with the fixed two-line usage.
func printUsage(_ kong.HelpOptions, ctx *kong.Context) error {
	_, err := fmt.Fprint(ctx.Stdout, usageText)
	return err
}

// run parses args, performs one conversion and returns the process exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cli CLI
	exitCode := -1

	app, err := kong.New(&cli,
		kong.Name("hiveschema"),
		kong.Description("Generate a Hive CREATE TABLE definition from a sample JSON document"),
		kong.Help(printUsage),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exitCode = code }),
	)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}

	_, err = app.Parse(args)
	if exitCode >= 0 {
		// Help was printed.
		return exitCode
	}
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}

	if cli.Version {
		fmt.Fprintf(stdout, "hiveschema version %s\n", Version)
		return 0
	}

	logger := newLogger(stderr, cli.Debug)
	if err := execute(&cli, stdin, stdout, logger); err != nil {
		fmt.Fprintf(stderr, "%s\n", errors.UserFriendlyError(err))
		logger.Debugf("error detail: %v", err)
		return 1
	}
	return 0
}

func newLogger(out io.Writer, debug bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

// execute runs the conversion described by cli
func execute(cli *CLI, stdin io.Reader, stdout io.Writer, logger *logrus.Logger) error {
	if cli.JSONFile == "" {
		return errors.NewArgumentError("no JSON file specified", errors.ErrMissingArgument)
	}

	cfg, err := loadConfig(cli, logger)
	if err != nil {
		return err
	}
	if cfg.Dev.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	root, err := parseInput(cli.JSONFile, stdin)
	if err != nil {
		return err
	}
	logger.Debugf("parsed %s (top-level %s)", cli.JSONFile, root.Kind)

	tableName := cfg.ResolveTableName(cli.TableName, cli.JSONFile)
	gen := generator.NewGenerator(analyzer.NewAnalyzerWithConfig(cfg))
	columns, err := gen.Columns(root)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"table":   tableName,
		"columns": len(columns),
	}).Debug("inferred table schema")

	return writeOutput(generator.Render(tableName, columns), cli.Output, stdout, logger)
}

// loadConfig reads the explicit or discovered config file and applies CLI overrides
func loadConfig(cli *CLI, logger *logrus.Logger) (*config.Config, error) {
	configPath := cli.Config
	if configPath != "" {
		logger.Debugf("using config file %s", configPath)
	} else if configPath = config.FindConfigFile(); configPath != "" {
		logger.Infof("using config file %s", configPath)
	}
	return config.LoadConfigWithCLI(configPath, cli.NullType, cli.Debug)
}

// parseInput reads JSON from the file at path, or from stdin when path is "-"
func parseInput(path string, stdin io.Reader) (models.Value, error) {
	if path != "-" {
		return parser.ParseFile(path)
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return models.Value{}, errors.NewInputError("failed to read from stdin", err)
	}
	return parser.ParseString(string(data))
}

// writeOutput writes the definition to a file or stdout
func writeOutput(ddl, path string, stdout io.Writer, logger *logrus.Logger) error {
	if path != "" {
		if err := os.WriteFile(path, []byte(ddl+"\n"), 0644); err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", path), err)
		}
		logger.Infof("table definition written to %s", path)
		return nil
	}

	if _, err := fmt.Fprintln(stdout, ddl); err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}
