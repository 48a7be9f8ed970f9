// Package main provides the entry point for showrepo.
// showrepo lists the repositories bookmarked in a flat "--" separated text
// file as a table, with options to sort, filter, copy the URLs to the
// clipboard and save the table to a file.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"christopherharwell/showrepo/pkg/clipboard"
	"christopherharwell/showrepo/pkg/config"
	"christopherharwell/showrepo/pkg/console"
	"christopherharwell/showrepo/pkg/filter"
	"christopherharwell/showrepo/pkg/logging"
	"christopherharwell/showrepo/pkg/repofile"
	"christopherharwell/showrepo/pkg/table"
	"christopherharwell/showrepo/pkg/terminal"
	"christopherharwell/showrepo/pkg/types"
)

// errNoArguments is returned when showrepo is started without any flag.
var errNoArguments = errors.New("no arguments provided. Run 'showrepo --help' and retry")

// app holds the sinks a single invocation writes to.
type app struct {
	stdout  *os.File
	stderr  io.Writer
	clip    clipboard.Writer
	printer *console.Printer
}

// main is the entry point of the application.
// Every error has already been reported when execute returns, so main only
// turns it into exit status 1.
func main() {
	a := newApp(os.Stdout, os.Stderr, clipboard.System{})
	if err := a.execute(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

func newApp(stdout *os.File, stderr io.Writer, clip clipboard.Writer) *app {
	color := terminal.UseColor(types.Config{Color: types.ColorAuto}, stdout)
	return &app{
		stdout:  stdout,
		stderr:  stderr,
		clip:    clip,
		printer: console.New(stdout, stderr, color),
	}
}

// execute parses args, runs the command and reports any error.
//
// Parameters:
//   - args: Command line arguments without the program name
//
// Returns:
//   - error: The error that stopped the run, already printed to stderr
func (a *app) execute(args []string) error {
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	err := cmd.Execute()
	if err != nil {
		a.printer.Error(err.Error())
	}
	return err
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "showrepo",
		Short: "Display the repositories saved in a repositories file",
		Long: "showrepo reads a file with one repository per line, fields separated by \"--\"\n" +
			"(URL -- author/name -- OS -- language -- description), and prints it as a table.",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().NFlag() == 0 {
				return errNoArguments
			}

			configFile, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}
			cfg, err := config.LoadConfig(cmd.Flags(), configFile)
			if err != nil {
				return err
			}
			return a.run(cfg)
		},
	}

	f := cmd.Flags()
	f.StringP("filename", "f", config.DefaultFilename, "Filename containing repositories to display; usually the file generated by addRepo")
	f.StringP("search", "s", "", "Search for a word/string in the repository name or its description")
	f.StringP("only-language", "l", "", "Only show repositories in this language. Case insensitive")
	f.StringP("only-os", "x", "", "Only show repositories for this OS. Valid values: (A)ny, (L)inux, (W)indows")
	f.BoolP("copy", "c", false, "Copy the resulting repositories, after filtering, into the clipboard")
	f.StringP("output", "o", "", "Output filename to save the table")
	f.Int("first", 0, "Select the first N results/rows")
	f.Int("last", 0, "Select the last N results/rows")
	f.StringP("table-format", "t", config.DefaultTableFormat, fmt.Sprintf("Table format output. One of: %v", table.Formats))
	f.Bool("no-author", false, "Only show the repository name, without its author")
	f.Bool("sort-by-author", false, "Sort repositories alphabetically by author")
	f.Bool("sort-by-repo", false, "Sort repositories alphabetically by name, not considering authors")
	f.Bool("sort-by-language", false, "Sort repositories alphabetically by main programming language")
	f.Bool("show-stats", false, "Display statistics about the repositories (number of languages, distribution by OS)")
	f.Bool("no-color", false, "Do not display the table with colors")
	f.String("color", types.ColorAlways, "When to use colors: always, auto or never")
	f.String("log-level", "warn", "Diagnostic log level: debug, info, warn, error")
	f.String("log-format", "text", "Diagnostic log format: text or json")
	f.String("config", "", "Config file (default: showrepo.yaml in . or the user config directory)")

	return cmd
}

// run executes the load, filter, format and output stages for cfg.
func (a *app) run(cfg types.Config) error {
	logging.Setup(cfg.LogLevel, cfg.LogFormat, a.stderr)

	if err := cfg.Validate(); err != nil {
		return err
	}
	color := terminal.UseColor(cfg, a.stdout)
	a.printer.Color = color

	format, ok := table.ParseFormat(cfg.TableFormat)
	if !ok {
		a.printer.Warn(fmt.Sprintf("'%s' is not a supported table format. Using '%s' instead...", cfg.TableFormat, format))
	}

	path, err := repofile.Check(cfg.Filename)
	if err != nil {
		return err
	}
	width := terminal.Width(a.stdout)

	repos, err := repofile.Load(path)
	if err != nil {
		return err
	}
	if cfg.ShowStats {
		a.printer.Total(len(repos))
	}

	pipeline := &filter.Pipeline{Config: cfg, Reporter: a.printer, Clipboard: a.clip}
	result, err := pipeline.Run(repos)
	if err != nil {
		return err
	}

	var palette *table.Palette
	if color {
		palette = &table.ANSI
	}
	if err := table.Print(a.stdout, table.Build(result, width, palette), format); err != nil {
		return err
	}

	if cfg.Output != "" {
		if err := table.Save(cfg.Output, table.Build(result, width, nil), format); err != nil {
			return err
		}
		slog.Debug("table saved", "path", cfg.Output, "rows", len(result))
	}
	return nil
}
