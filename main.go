package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	dberror "sqlscan/pkg/error"
	"sqlscan/pkg/lexer"
	"sqlscan/pkg/loader"
	"sqlscan/pkg/logging"
	"sqlscan/pkg/ui"

	tea "github.com/charmbracelet/bubbletea"
)

type Configuration struct {
	Files     []string
	EOF       bool
	Quote     string
	Escapes   string
	Jobs      int
	Plain     bool
	TUI       bool
	LogLevel  string
	LogFile   string
	LogFormat string
}

func main() {
	os.Exit(run(parseArguments()))
}

func run(config Configuration) int {
	if err := initLogging(config); err != nil {
		fmt.Fprintf(os.Stderr, "sqlscan: %v\n", err)
		return 2
	}
	defer logging.Close()

	settings, err := buildSettings(config)
	if err != nil {
		logging.Error("invalid configuration", "error", err)
		fmt.Fprintf(os.Stderr, "sqlscan: %v\n", err)
		return 2
	}
	logging.Debug("starting", "files", len(config.Files), "eof", settings.EOF,
		"quote", string(settings.Quote), "escapes", settings.Escapes.String(), "jobs", config.Jobs)

	if config.TUI {
		if err := startInteractiveMode(config, settings); err != nil {
			logging.Error("inspector failed", "error", err)
			fmt.Fprintf(os.Stderr, "sqlscan: %v\n", err)
			return 1
		}
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	failed, err := dumpTokens(ctx, config, settings, os.Stdout, os.Stderr)
	if err != nil {
		logging.Error("dump aborted", "error", err)
		fmt.Fprintf(os.Stderr, "sqlscan: %v\n", err)
		return 1
	}
	logging.Info("dump finished", "inputs", max(len(config.Files), 1), "failed", failed)
	if failed > 0 {
		return 1
	}
	return 0
}

// parseArguments processes command-line flags
func parseArguments() Configuration {
	var config Configuration

	flag.BoolVar(&config.EOF, "eof", false, "Append an EOF sentinel token")
	flag.StringVar(&config.Quote, "quote", "'", "String literal delimiter (one character)")
	flag.StringVar(&config.Escapes, "escapes", "doubled", "String escapes: none, doubled or backslash")
	flag.IntVar(&config.Jobs, "jobs", 4, "Files scanned in parallel (0 = unbounded)")
	flag.BoolVar(&config.Plain, "plain", false, "Print the unstyled debug dump")
	flag.BoolVar(&config.TUI, "tui", false, "Start the interactive token inspector")
	flag.StringVar(&config.LogLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	flag.StringVar(&config.LogFile, "log-file", "", "Write logs to this file instead of stderr")
	flag.StringVar(&config.LogFormat, "log-format", "text", "Log format: text or json")

	flag.Parse()
	config.Files = flag.Args()

	return config
}

func initLogging(config Configuration) error {
	level, err := logging.ParseLevel(config.LogLevel)
	if err != nil {
		return err
	}
	return logging.Init(logging.Config{
		Level:      level,
		OutputPath: config.LogFile,
		Format:     config.LogFormat,
	})
}

func buildSettings(config Configuration) (ui.Settings, error) {
	escapes, err := lexer.ParseEscapePolicy(config.Escapes)
	if err != nil {
		return ui.Settings{}, err
	}
	if len(config.Quote) != 1 {
		return ui.Settings{}, fmt.Errorf("-quote must be a single byte, got %q", config.Quote)
	}
	return ui.Settings{EOF: config.EOF, Quote: config.Quote[0], Escapes: escapes}, nil
}

// startInteractiveMode launches the Bubble Tea inspector, preloaded with the
// first file if one was given.
func startInteractiveMode(config Configuration, settings ui.Settings) error {
	initial := ""
	if len(config.Files) > 0 {
		src, err := loader.ReadFile(config.Files[0])
		if err != nil {
			return err
		}
		initial = string(src)
	}

	p := tea.NewProgram(
		ui.NewModel(initial, settings),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

// dumpTokens scans every input and writes its tokens to out and its scan
// error, if any, to errOut. It returns the number of inputs that failed to scan.
func dumpTokens(ctx context.Context, config Configuration, settings ui.Settings, out, errOut io.Writer) (int, error) {
	opts := settings.Options()

	var results []loader.Result
	if len(config.Files) == 0 {
		res, err := loader.LexReader("<stdin>", os.Stdin, opts...)
		if err != nil {
			return 0, err
		}
		results = []loader.Result{res}
	} else {
		var err error
		results, err = loader.LexFiles(ctx, config.Files, config.Jobs, opts...)
		if err != nil {
			return 0, err
		}
	}

	failed := 0
	for _, res := range results {
		if res.Failed() {
			failed++
			reportFailure(errOut, res)
			continue
		}

		if config.Plain {
			fmt.Fprintf(out, "== %s\n", res.Path)
			if err := res.Tokens.Print(out); err != nil {
				return failed, err
			}
			continue
		}
		fmt.Fprintln(out, ui.RenderTitle(res.Path))
		fmt.Fprintln(out, ui.RenderTokens(res.Source, res.Tokens))
	}

	return failed, nil
}

func reportFailure(w io.Writer, res loader.Result) {
	fmt.Fprintln(w, ui.RenderScanError(res.Path, res.Source, res.ScanErr))

	err := res.Err()
	log := logging.WithError(err)
	log.Debug("scan failed", "file", res.Path)

	var dbErr *dberror.DBError
	if errors.As(err, &dbErr) {
		log.Debug("scan failure origin", "stack", dbErr.FormatStack())
	}
}
